package riderControllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TimiiLehin01/Medbox-Express/models"
)

type UpdateAvailabilityRequest struct {
	Availability string `json:"availability" binding:"required"`
}

type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude" binding:"required"`
	Longitude float64 `json:"longitude" binding:"required"`
}

func mapAvailability(value string) (models.RiderAvailability, error) {
	switch strings.ToUpper(value) {
	case string(models.RiderAvailable):
		return models.RiderAvailable, nil
	case string(models.RiderBusy):
		return models.RiderBusy, nil
	case string(models.RiderOffline):
		return models.RiderOffline, nil
	default:
		return "", errors.New("invalid availability status")
	}
}

// GetProfile returns the calling rider's profile with the user summary.
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rider models.Rider
		if err := db.
			Preload("User", func(tx *gorm.DB) *gorm.DB {
				return tx.Select("id", "name", "email", "phone", "status")
			}).
			Where("user_id = ?", c.GetString("user_id")).
			First(&rider).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rider not found"})
			return
		}
		c.JSON(http.StatusOK, rider)
	}
}

// UpdateAvailability changes the rider's availability. Going OFFLINE is
// refused while the rider still holds an order in READY or PICKED.
func UpdateAvailability(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateAvailabilityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		availability, err := mapAvailability(req.Availability)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var rider models.Rider
		if err := db.Where("user_id = ?", c.GetString("user_id")).First(&rider).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rider not found"})
			return
		}

		if availability == models.RiderOffline {
			var activeOrders int64
			if err := db.Model(&models.Order{}).
				Where("rider_id = ? AND status IN ?", rider.ID, []models.OrderStatus{
					models.OrderStatusReady,
					models.OrderStatusPicked,
				}).
				Count(&activeOrders).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update availability"})
				return
			}
			if activeOrders > 0 {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": "Cannot go offline while you have active deliveries. Please complete them first.",
				})
				return
			}
		}

		if err := db.Model(&rider).Update("availability", availability).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update availability"})
			return
		}

		log.Printf("✅ Rider %s availability updated to %s", rider.ID, availability)
		c.JSON(http.StatusOK, gin.H{"success": true, "availability": availability})
	}
}

// UpdateLocation stores the rider's last known coordinates.
func UpdateLocation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateLocationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var rider models.Rider
		if err := db.Where("user_id = ?", c.GetString("user_id")).First(&rider).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rider not found"})
			return
		}

		updates := map[string]interface{}{
			"latitude":  req.Latitude,
			"longitude": req.Longitude,
		}
		if err := db.Model(&rider).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update location"})
			return
		}

		c.JSON(http.StatusOK, rider)
	}
}

// GetEarnings returns the rider's earning ledger, newest first, plus
// summary figures.
func GetEarnings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rider models.Rider
		if err := db.Where("user_id = ?", c.GetString("user_id")).First(&rider).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rider not found"})
			return
		}

		var earnings []models.RiderEarning
		if err := db.
			Where("rider_id = ?", rider.ID).
			Order("date DESC").
			Find(&earnings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch earnings"})
			return
		}

		var totalEarnings float64
		for _, earning := range earnings {
			totalEarnings += earning.Amount
		}

		var deliveredOrders, activeOrders int64
		db.Model(&models.Order{}).
			Where("rider_id = ? AND status = ?", rider.ID, models.OrderStatusDelivered).
			Count(&deliveredOrders)
		db.Model(&models.Order{}).
			Where("rider_id = ? AND status IN ?", rider.ID, []models.OrderStatus{
				models.OrderStatusReady,
				models.OrderStatusPicked,
			}).
			Count(&activeOrders)

		c.JSON(http.StatusOK, gin.H{
			"totalEarnings":   totalEarnings,
			"deliveredOrders": deliveredOrders,
			"activeOrders":    activeOrders,
			"earnings":        earnings,
		})
	}
}
