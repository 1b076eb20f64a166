package orderControllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TimiiLehin01/Medbox-Express/models"
)

// -------- Request Structs --------

type CheckoutItem struct {
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	Price     float64 `json:"price"`
}

type CreateOrderRequest struct {
	PharmacyID        string         `json:"pharmacy_id" binding:"required"`
	Items             []CheckoutItem `json:"items" binding:"required,min=1,dive"`
	DeliveryAddress   string         `json:"delivery_address" binding:"required"`
	DeliveryLatitude  float64        `json:"delivery_latitude"`
	DeliveryLongitude float64        `json:"delivery_longitude"`
	PaymentMethod     string         `json:"payment_method"`
	Notes             string         `json:"notes"`
	PrescriptionURL   string         `json:"prescription_url"`
	Subtotal          float64        `json:"subtotal"`
	DeliveryFee       float64        `json:"delivery_fee"`
	Total             float64        `json:"total"`
}

// -------- Handlers --------

// CreateOrderHandler places a consumer checkout: the order and its item
// snapshots are written in a single transaction.
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		consumerID := c.GetString("user_id")

		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		items := make([]models.OrderItem, 0, len(req.Items))
		for _, item := range req.Items {
			items = append(items, models.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
			})
		}

		order := models.Order{
			ConsumerID:        consumerID,
			PharmacyID:        req.PharmacyID,
			Items:             items,
			Status:            models.OrderStatusPending,
			PaymentStatus:     models.PaymentStatusPending,
			PaymentMethod:     req.PaymentMethod,
			Notes:             req.Notes,
			PrescriptionURL:   req.PrescriptionURL,
			Subtotal:          req.Subtotal,
			DeliveryFee:       req.DeliveryFee,
			Total:             req.Total,
			DeliveryAddress:   req.DeliveryAddress,
			DeliveryLatitude:  req.DeliveryLatitude,
			DeliveryLongitude: req.DeliveryLongitude,
			CreatedAt:         time.Now(),
		}

		if err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&order).Error
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		log.Printf("✅ Created order %s for consumer %s", order.ShortID(), consumerID)
		c.JSON(http.StatusCreated, order)
	}
}

// ListOrdersHandler returns the caller's orders. What "their orders" means
// depends on the role: consumers see what they placed, pharmacies what they
// sell, riders what they deliver.
func ListOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		role := models.UserRole(c.GetString("role"))

		var orders []models.Order

		switch role {
		case models.RolePharmacy:
			var pharmacy models.Pharmacy
			if err := db.Where("user_id = ?", userID).First(&pharmacy).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Pharmacy not found"})
				return
			}
			if err := db.
				Where("pharmacy_id = ?", pharmacy.ID).
				Preload("Consumer").
				Preload("Items").
				Preload("Items.Product").
				Order("created_at DESC").
				Find(&orders).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
				return
			}

		case models.RoleRider:
			var rider models.Rider
			if err := db.Where("user_id = ?", userID).First(&rider).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Rider not found"})
				return
			}
			if err := db.
				Where("rider_id = ?", rider.ID).
				Preload("Pharmacy").
				Preload("Consumer").
				Preload("Items").
				Preload("Items.Product").
				Order("created_at DESC").
				Find(&orders).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
				return
			}

		default: // CONSUMER
			if err := db.
				Where("consumer_id = ?", userID).
				Preload("Pharmacy").
				Preload("Items").
				Preload("Items.Product").
				Order("created_at DESC").
				Find(&orders).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
				return
			}
		}

		c.JSON(http.StatusOK, orders)
	}
}

// GetOrderByIDHandler returns a single order with its items. Only the
// order's consumer, pharmacy, assigned rider, or an admin may read it.
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var order models.Order
		if err := db.
			Preload("Consumer").
			Preload("Pharmacy").
			Preload("Items").
			Preload("Items.Product").
			First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		if !isParticipant(db, &order, c.GetString("user_id"), models.UserRole(c.GetString("role"))) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view this order"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

func isParticipant(db *gorm.DB, order *models.Order, userID string, role models.UserRole) bool {
	switch role {
	case models.RoleAdmin:
		return true
	case models.RoleConsumer:
		return order.ConsumerID == userID
	case models.RolePharmacy:
		var pharmacy models.Pharmacy
		if err := db.Where("user_id = ?", userID).First(&pharmacy).Error; err != nil {
			return false
		}
		return pharmacy.ID == order.PharmacyID
	case models.RoleRider:
		var rider models.Rider
		if err := db.Where("user_id = ?", userID).First(&rider).Error; err != nil {
			return false
		}
		return order.RiderID != nil && *order.RiderID == rider.ID
	}
	return false
}
