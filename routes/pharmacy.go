package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	pharmacyControllers "github.com/TimiiLehin01/Medbox-Express/controllers/pharmacy"
	"github.com/TimiiLehin01/Medbox-Express/middleware"
	"github.com/TimiiLehin01/Medbox-Express/models"
)

func SetupPharmacyRoutes(r *gin.Engine, db *gorm.DB) {
	pharmacies := r.Group("/pharmacies")
	{
		// Public directory
		pharmacies.GET("", pharmacyControllers.GetPharmacies(db))

		// Pharmacy self-service
		pharmacies.GET("/profile",
			middleware.ValidateToken,
			middleware.RequireRoles(models.RolePharmacy),
			pharmacyControllers.GetProfile(db))
		pharmacies.PUT("/profile",
			middleware.ValidateToken,
			middleware.RequireRoles(models.RolePharmacy),
			pharmacyControllers.UpdateProfile(db))
		pharmacies.GET("/earnings",
			middleware.ValidateToken,
			middleware.RequireRoles(models.RolePharmacy),
			pharmacyControllers.GetEarnings(db))

		pharmacies.GET("/:id", pharmacyControllers.GetPharmacyByID(db))
	}
}
