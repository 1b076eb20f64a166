package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/TimiiLehin01/Medbox-Express/controllers/product"
	"github.com/TimiiLehin01/Medbox-Express/middleware"
	"github.com/TimiiLehin01/Medbox-Express/models"
)

func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		// Public catalog browsing and search
		products.GET("", productControllers.GetProducts(db))
		products.GET("/:id", productControllers.GetProductByID(db))

		// Pharmacy-side catalog management
		products.POST("",
			middleware.ValidateToken,
			middleware.RequireRoles(models.RolePharmacy),
			productControllers.CreateProduct(db))
		products.PUT("/:id",
			middleware.ValidateToken,
			middleware.RequireRoles(models.RolePharmacy),
			productControllers.UpdateProduct(db))
		products.DELETE("/:id",
			middleware.ValidateToken,
			middleware.RequireRoles(models.RolePharmacy),
			productControllers.DeleteProduct(db))
	}
}
