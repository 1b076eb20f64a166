package auth

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TimiiLehin01/Medbox-Express/models"
)

// Demo-mode profile switching: lets a tester jump between seeded accounts
// without passwords. Only active when DEMO_MODE=true, and the routes are
// additionally gated by the X-API-KEY middleware.

func demoEnabled() bool {
	return os.Getenv("DEMO_MODE") == "true"
}

type SwitchProfileRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// SwitchProfileHandler issues session cookies for the named account.
func SwitchProfileHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !demoEnabled() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Demo mode not enabled"})
			return
		}

		var req SwitchProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
			return
		}

		var user models.User
		if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found: " + req.Email})
			return
		}

		token, err := IssueJWT(&user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}
		setSessionCookies(c, token, user.Role)

		c.JSON(http.StatusOK, gin.H{
			"message": "Profile switched",
			"user": gin.H{
				"id":    user.ID,
				"name":  user.Name,
				"email": user.Email,
				"role":  user.Role,
			},
		})
	}
}

// ListProfilesHandler lists the accounts available for switching.
func ListProfilesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !demoEnabled() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Demo mode not enabled"})
			return
		}

		var users []models.User
		if err := db.
			Select("id", "name", "email", "role", "status").
			Order("role asc, created_at asc").
			Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profiles"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}
