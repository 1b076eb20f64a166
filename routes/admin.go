package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminControllers "github.com/TimiiLehin01/Medbox-Express/controllers/admin"
	productControllers "github.com/TimiiLehin01/Medbox-Express/controllers/product"
	"github.com/TimiiLehin01/Medbox-Express/middleware"
	"github.com/TimiiLehin01/Medbox-Express/models"
)

// SetupAdminRoutes registers the back-office endpoints. All of them
// require an ADMIN session.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireRoles(models.RoleAdmin))
	{
		adminGroup.GET("/stats", adminControllers.GetStats(db))
		adminGroup.GET("/users", adminControllers.GetAllUsers(db))
		adminGroup.GET("/orders", adminControllers.GetAllOrders(db))

		// Verification queues and decisions
		adminGroup.GET("/pharmacies", adminControllers.ListPendingPharmacies(db))
		adminGroup.POST("/pharmacies/approve", adminControllers.ApprovePharmacy(db))
		adminGroup.POST("/pharmacies/reject", adminControllers.RejectPharmacy(db))
		adminGroup.GET("/riders", adminControllers.ListPendingRiders(db))
		adminGroup.POST("/riders/approve", adminControllers.ApproveRider(db))
		adminGroup.POST("/riders/reject", adminControllers.RejectRider(db))
		adminGroup.PATCH("/verify/pharmacy/:id", adminControllers.VerifyPharmacy(db))
		adminGroup.PATCH("/verify/rider/:id", adminControllers.VerifyRider(db))

		// Catalog export
		adminGroup.GET("/products/export-excel", productControllers.ExportProductsToExcel(db))
	}
}
