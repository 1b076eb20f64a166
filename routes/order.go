package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/TimiiLehin01/Medbox-Express/controllers/order"
	"github.com/TimiiLehin01/Medbox-Express/middleware"
	"github.com/TimiiLehin01/Medbox-Express/models"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		// Consumer checkout
		orders.POST("",
			middleware.RequireRoles(models.RoleConsumer),
			orderControllers.CreateOrderHandler(db))

		// Role-dependent listing
		orders.GET("", orderControllers.ListOrdersHandler(db))

		// Rider matching feed
		orders.GET("/available",
			middleware.RequireRoles(models.RoleRider),
			orderControllers.AvailableOrdersHandler(db))

		// Single order, participants only
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))

		// Role-gated status transitions
		orders.PATCH("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))

		// Rider claiming a READY order
		orders.POST("/:orderID/accept",
			middleware.RequireRoles(models.RoleRider),
			orderControllers.AcceptOrderHandler(db))
	}
}
