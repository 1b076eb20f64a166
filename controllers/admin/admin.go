package adminControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TimiiLehin01/Medbox-Express/models"
)

// GetStats returns the back-office dashboard counters.
func GetStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var totalUsers, totalPharmacies, totalRiders, totalOrders int64
		var pendingPharmacies, pendingRiders int64
		var totalRevenue float64

		if err := db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}
		db.Model(&models.Pharmacy{}).Count(&totalPharmacies)
		db.Model(&models.Rider{}).Count(&totalRiders)
		db.Model(&models.Order{}).Count(&totalOrders)
		db.Model(&models.Pharmacy{}).Where("verified = ?", false).Count(&pendingPharmacies)
		db.Model(&models.Rider{}).Where("verified = ?", false).Count(&pendingRiders)
		db.Model(&models.Order{}).
			Where("payment_status = ?", models.PaymentStatusPaid).
			Select("COALESCE(SUM(total), 0)").
			Scan(&totalRevenue)

		log.Printf("📊 Admin stats: %d users, %d orders", totalUsers, totalOrders)
		c.JSON(http.StatusOK, gin.H{
			"totalUsers":        totalUsers,
			"totalPharmacies":   totalPharmacies,
			"totalRiders":       totalRiders,
			"totalOrders":       totalOrders,
			"pendingPharmacies": pendingPharmacies,
			"pendingRiders":     pendingRiders,
			"totalRevenue":      totalRevenue,
		})
	}
}

// GetAllUsers lists every account with its pharmacy or rider profile.
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Preload("Pharmacy").
			Preload("Rider").
			Order("created_at DESC").
			Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// GetAllOrders lists every order for back-office review.
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Consumer").
			Preload("Pharmacy").
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
