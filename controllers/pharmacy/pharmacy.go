package pharmacyControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TimiiLehin01/Medbox-Express/models"
)

type UpdateProfileRequest struct {
	Name           *string  `json:"name"`
	Address        *string  `json:"address"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	OpenTime       *string  `json:"open_time"`
	CloseTime      *string  `json:"close_time"`
	DeliveryRadius *float64 `json:"delivery_radius"`
}

// GetPharmacies lists the pharmacy directory, name ascending.
func GetPharmacies(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pharmacies []models.Pharmacy
		if err := db.
			Preload("User", func(tx *gorm.DB) *gorm.DB {
				return tx.Select("id", "phone", "status")
			}).
			Preload("Products").
			Order("name ASC").
			Find(&pharmacies).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pharmacies"})
			return
		}
		c.JSON(http.StatusOK, pharmacies)
	}
}

// GetPharmacyByID returns one pharmacy with its catalog.
func GetPharmacyByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pharmacy models.Pharmacy
		if err := db.
			Preload("Products").
			First(&pharmacy, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Pharmacy not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pharmacy"})
			return
		}
		c.JSON(http.StatusOK, pharmacy)
	}
}

// GetProfile returns the calling pharmacy's own profile with products.
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pharmacy models.Pharmacy
		if err := db.
			Preload("User", func(tx *gorm.DB) *gorm.DB {
				return tx.Select("id", "name", "email", "phone", "status")
			}).
			Preload("Products").
			Where("user_id = ?", c.GetString("user_id")).
			First(&pharmacy).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pharmacy not found"})
			return
		}
		c.JSON(http.StatusOK, pharmacy)
	}
}

// UpdateProfile updates the calling pharmacy's own profile fields.
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pharmacy models.Pharmacy
		if err := db.Where("user_id = ?", c.GetString("user_id")).First(&pharmacy).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pharmacy not found"})
			return
		}

		var req UpdateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Address != nil {
			updates["address"] = *req.Address
		}
		if req.Latitude != nil {
			updates["latitude"] = *req.Latitude
		}
		if req.Longitude != nil {
			updates["longitude"] = *req.Longitude
		}
		if req.OpenTime != nil {
			updates["open_time"] = *req.OpenTime
		}
		if req.CloseTime != nil {
			updates["close_time"] = *req.CloseTime
		}
		if req.DeliveryRadius != nil {
			updates["delivery_radius"] = *req.DeliveryRadius
		}

		if len(updates) > 0 {
			if err := db.Model(&pharmacy).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pharmacy"})
				return
			}
		}

		c.JSON(http.StatusOK, pharmacy)
	}
}

// GetEarnings summarizes the calling pharmacy's delivered-order revenue
// and order counts.
func GetEarnings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pharmacy models.Pharmacy
		if err := db.Where("user_id = ?", c.GetString("user_id")).First(&pharmacy).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pharmacy not found"})
			return
		}

		var totalEarnings float64
		if err := db.Model(&models.Order{}).
			Where("pharmacy_id = ? AND status = ?", pharmacy.ID, models.OrderStatusDelivered).
			Select("COALESCE(SUM(subtotal), 0)").
			Scan(&totalEarnings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch earnings"})
			return
		}

		var totalOrders, completedOrders, pendingOrders, activeOrders int64
		db.Model(&models.Order{}).Where("pharmacy_id = ?", pharmacy.ID).Count(&totalOrders)
		db.Model(&models.Order{}).
			Where("pharmacy_id = ? AND status = ?", pharmacy.ID, models.OrderStatusDelivered).
			Count(&completedOrders)
		db.Model(&models.Order{}).
			Where("pharmacy_id = ? AND status = ?", pharmacy.ID, models.OrderStatusPending).
			Count(&pendingOrders)
		db.Model(&models.Order{}).
			Where("pharmacy_id = ? AND status IN ?", pharmacy.ID, []models.OrderStatus{
				models.OrderStatusAccepted,
				models.OrderStatusReady,
				models.OrderStatusPicked,
			}).
			Count(&activeOrders)

		c.JSON(http.StatusOK, gin.H{
			"totalEarnings":   totalEarnings,
			"totalOrders":     totalOrders,
			"completedOrders": completedOrders,
			"pendingOrders":   pendingOrders,
			"activeOrders":    activeOrders,
		})
	}
}
