package adminControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TimiiLehin01/Medbox-Express/models"
)

// Verification workflow: granting the verified flag activates the linked
// user account, revoking it blocks the account.

type VerifyRequest struct {
	Verified *bool `json:"verified" binding:"required"`
}

// ListPendingPharmacies returns pharmacies awaiting verification.
func ListPendingPharmacies(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("User")
		if c.Query("pending") != "" {
			query = query.Where("verified = ?", false)
		}
		var pharmacies []models.Pharmacy
		if err := query.Order("created_at DESC").Find(&pharmacies).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pharmacies"})
			return
		}
		c.JSON(http.StatusOK, pharmacies)
	}
}

// ListPendingRiders returns riders awaiting verification.
func ListPendingRiders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("User")
		if c.Query("pending") != "" {
			query = query.Where("verified = ?", false)
		}
		var riders []models.Rider
		if err := query.Order("created_at DESC").Find(&riders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch riders"})
			return
		}
		c.JSON(http.StatusOK, riders)
	}
}

// VerifyPharmacy toggles a pharmacy's verified flag and cascades the
// owner's account status: ACTIVE when verified, BLOCKED when revoked.
func VerifyPharmacy(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VerifyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var pharmacy models.Pharmacy
		if err := db.First(&pharmacy, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Pharmacy not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pharmacy"})
			return
		}

		if err := applyVerification(db, &pharmacy, nil, *req.Verified); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify pharmacy"})
			return
		}

		pharmacy.Verified = *req.Verified
		log.Printf("✅ Pharmacy %s verified=%v", pharmacy.ID, *req.Verified)
		c.JSON(http.StatusOK, pharmacy)
	}
}

// VerifyRider toggles a rider's verified flag and cascades the owner's
// account status.
func VerifyRider(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VerifyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var rider models.Rider
		if err := db.First(&rider, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Rider not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch rider"})
			return
		}

		if err := applyVerification(db, nil, &rider, *req.Verified); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify rider"})
			return
		}

		rider.Verified = *req.Verified
		log.Printf("✅ Rider %s verified=%v", rider.ID, *req.Verified)
		c.JSON(http.StatusOK, rider)
	}
}

func applyVerification(db *gorm.DB, pharmacy *models.Pharmacy, rider *models.Rider, verified bool) error {
	status := models.UserStatusBlocked
	if verified {
		status = models.UserStatusActive
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var userID string
		if pharmacy != nil {
			userID = pharmacy.UserID
			if err := tx.Model(pharmacy).Update("verified", verified).Error; err != nil {
				return err
			}
		} else {
			userID = rider.UserID
			if err := tx.Model(rider).Update("verified", verified).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.User{}).Where("id = ?", userID).
			Update("status", status).Error
	})
}

type ApprovePharmacyRequest struct {
	PharmacyID string `json:"pharmacyId" binding:"required"`
}

type RejectPharmacyRequest struct {
	PharmacyID string `json:"pharmacyId" binding:"required"`
	Reason     string `json:"reason" binding:"required"`
}

type ApproveRiderRequest struct {
	RiderID string `json:"riderId" binding:"required"`
}

type RejectRiderRequest struct {
	RiderID string `json:"riderId" binding:"required"`
	Reason  string `json:"reason" binding:"required"`
}

// ApprovePharmacy grants verification from the review queue.
func ApprovePharmacy(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ApprovePharmacyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Pharmacy ID required"})
			return
		}

		var pharmacy models.Pharmacy
		if err := db.First(&pharmacy, "id = ?", req.PharmacyID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pharmacy not found"})
			return
		}

		if err := applyVerification(db, &pharmacy, nil, true); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve pharmacy"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Pharmacy approved successfully"})
	}
}

// RejectPharmacy blocks the pharmacy's account. The reason is required but
// only logged; no notification is sent.
func RejectPharmacy(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RejectPharmacyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Pharmacy ID and reason required"})
			return
		}

		var pharmacy models.Pharmacy
		if err := db.First(&pharmacy, "id = ?", req.PharmacyID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pharmacy not found"})
			return
		}

		if err := db.Model(&models.User{}).Where("id = ?", pharmacy.UserID).
			Update("status", models.UserStatusBlocked).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject pharmacy"})
			return
		}

		log.Printf("🚫 Pharmacy %s rejected: %s", pharmacy.ID, req.Reason)
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Pharmacy rejected"})
	}
}

// ApproveRider grants verification from the review queue.
func ApproveRider(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ApproveRiderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Rider ID required"})
			return
		}

		var rider models.Rider
		if err := db.First(&rider, "id = ?", req.RiderID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rider not found"})
			return
		}

		if err := applyVerification(db, nil, &rider, true); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve rider"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Rider approved successfully"})
	}
}

// RejectRider blocks the rider's account.
func RejectRider(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RejectRiderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Rider ID and reason required"})
			return
		}

		var rider models.Rider
		if err := db.First(&rider, "id = ?", req.RiderID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rider not found"})
			return
		}

		if err := db.Model(&models.User{}).Where("id = ?", rider.UserID).
			Update("status", models.UserStatusBlocked).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject rider"})
			return
		}

		log.Printf("🚫 Rider %s rejected: %s", rider.ID, req.Reason)
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Rider rejected"})
	}
}
