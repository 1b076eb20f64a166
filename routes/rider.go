package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	riderControllers "github.com/TimiiLehin01/Medbox-Express/controllers/rider"
	"github.com/TimiiLehin01/Medbox-Express/middleware"
	"github.com/TimiiLehin01/Medbox-Express/models"
)

func SetupRiderRoutes(r *gin.Engine, db *gorm.DB) {
	riders := r.Group("/riders")
	riders.Use(middleware.ValidateToken, middleware.RequireRoles(models.RoleRider))
	{
		riders.GET("/profile", riderControllers.GetProfile(db))
		riders.POST("/availability", riderControllers.UpdateAvailability(db))
		riders.POST("/location", riderControllers.UpdateLocation(db))
		riders.GET("/earnings", riderControllers.GetEarnings(db))
	}
}
