package orderControllers

import (
	"errors"
	"log"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TimiiLehin01/Medbox-Express/geo"
	"github.com/TimiiLehin01/Medbox-Express/models"
)

// ErrOrderTaken reports a claim that lost the race: the order was assigned
// between the precondition read and the conditional write.
var ErrOrderTaken = errors.New("order already taken")

// claimOrder assigns the order to the rider with a single conditional
// UPDATE. Zero affected rows means another rider got there first.
func claimOrder(db *gorm.DB, orderID, riderID string) error {
	res := db.Model(&models.Order{}).
		Where("id = ? AND rider_id IS NULL AND status = ?", orderID, models.OrderStatusReady).
		Update("rider_id", riderID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderTaken
	}
	return nil
}

// AcceptOrderHandler lets a rider claim a READY, unassigned order. On
// success the rider is marked BUSY.
func AcceptOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		userID := c.GetString("user_id")

		var rider models.Rider
		if err := db.Where("user_id = ?", userID).First(&rider).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rider not found"})
			return
		}

		if !rider.Verified {
			c.JSON(http.StatusForbidden, gin.H{"error": "Rider is not verified"})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		if order.RiderID != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order already assigned to another rider"})
			return
		}
		if order.Status != models.OrderStatusReady {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order is not ready for pickup"})
			return
		}

		if err := claimOrder(db, order.ID, rider.ID); err != nil {
			if errors.Is(err, ErrOrderTaken) {
				c.JSON(http.StatusConflict, gin.H{"error": "Order already taken by another rider"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to accept order"})
			return
		}

		if err := db.Model(&rider).Update("availability", models.RiderBusy).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rider availability"})
			return
		}

		order.RiderID = &rider.ID
		log.Printf("✅ Order %s claimed by rider %s", order.ShortID(), rider.ID)
		c.JSON(http.StatusOK, order)
	}
}

type availableOrder struct {
	models.Order
	DistanceToPharmacy float64 `json:"distance_to_pharmacy"`
}

// AvailableOrdersHandler returns the READY, unassigned orders a rider can
// claim. When the rider has reported a location, each order is annotated
// with the distance to its pharmacy and the list is sorted closest first;
// otherwise orders come back newest first.
func AvailableOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var rider models.Rider
		if err := db.Where("user_id = ?", userID).First(&rider).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rider not found"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("status = ? AND rider_id IS NULL", models.OrderStatusReady).
			Preload("Consumer").
			Preload("Pharmacy").
			Preload("Items").
			Preload("Items.Product").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		hasLocation := rider.Latitude != nil && rider.Longitude != nil

		feed := make([]availableOrder, 0, len(orders))
		for _, order := range orders {
			distance := 0.0
			if hasLocation {
				distance = geo.DistanceKm(
					*rider.Latitude, *rider.Longitude,
					order.Pharmacy.Latitude, order.Pharmacy.Longitude,
				)
			}
			feed = append(feed, availableOrder{Order: order, DistanceToPharmacy: distance})
		}

		if hasLocation {
			sort.Slice(feed, func(i, j int) bool {
				return feed[i].DistanceToPharmacy < feed[j].DistanceToPharmacy
			})
		}

		c.JSON(http.StatusOK, feed)
	}
}
