package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TimiiLehin01/Medbox-Express/auth"
	"github.com/TimiiLehin01/Medbox-Express/middleware"
)

// SetupAuthRoutes registers signup/signin plus the demo profile switcher.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", auth.SignupHandler(db))
		authGroup.POST("/signin", auth.SigninHandler(db))
		authGroup.POST("/signout", auth.SignoutHandler())
		authGroup.GET("/me", middleware.ValidateToken, auth.MeHandler(db))
	}

	// Demo-mode account switching, API-key gated
	devGroup := r.Group("/dev")
	devGroup.Use(middleware.ValidateAPIKey)
	{
		devGroup.POST("/switch-profile", auth.SwitchProfileHandler(db))
		devGroup.GET("/profiles", auth.ListProfilesHandler(db))
	}
}
