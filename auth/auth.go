package auth

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/TimiiLehin01/Medbox-Express/middleware"
	"github.com/TimiiLehin01/Medbox-Express/models"
)

const sessionDuration = 7 * 24 * time.Hour

type SignupRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,min=10"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
}

type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// SignupHandler registers a new consumer, pharmacy, or rider account.
// Pharmacies and riders start in PENDING status and get an empty profile
// row that admin verification later unlocks.
func SignupHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		role := models.UserRole(req.Role)
		if role != models.RoleConsumer && role != models.RolePharmacy && role != models.RoleRider {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
			return
		}

		var existing models.User
		err := db.Where("email = ? OR phone = ?", req.Email, req.Phone).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists with this email or phone"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		status := models.UserStatusPending
		if role == models.RoleConsumer {
			status = models.UserStatusActive
		}

		user := models.User{
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			Password: string(hashed),
			Role:     role,
			Status:   status,
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			switch role {
			case models.RolePharmacy:
				return tx.Create(&models.Pharmacy{UserID: user.ID}).Error
			case models.RoleRider:
				return tx.Create(&models.Rider{UserID: user.ID}).Error
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		log.Printf("✅ User created: %s (%s)", user.Email, user.Role)
		c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "userId": user.ID})
	}
}

// SigninHandler checks credentials and sets the session cookies.
func SigninHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SigninRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		if user.Status == models.UserStatusBlocked {
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is blocked"})
			return
		}

		token, err := IssueJWT(&user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}
		setSessionCookies(c, token, user.Role)

		log.Printf("✅ Signin successful for %s (%s)", user.Email, user.Role)
		c.JSON(http.StatusOK, gin.H{
			"message": "Signin successful",
			"user": gin.H{
				"id":    user.ID,
				"name":  user.Name,
				"email": user.Email,
				"role":  user.Role,
			},
		})
	}
}

// SignoutHandler clears the session cookies.
func SignoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", false, true)
		c.SetCookie("user_role", "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
	}
}

// MeHandler returns the authenticated user's record.
func MeHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// IssueJWT signs a session token carrying the user's id, email and role.
func IssueJWT(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(sessionDuration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func setSessionCookies(c *gin.Context, token string, role models.UserRole) {
	secure := os.Getenv("GIN_MODE") == "release"
	maxAge := int(sessionDuration.Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, token, maxAge, "/", "", secure, true)
	c.SetCookie("user_role", string(role), maxAge, "/", "", secure, true)
}
