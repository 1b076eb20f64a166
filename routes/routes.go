package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Order lifecycle (JWT-protected, role-gated per endpoint)
	SetupOrderRoutes(r, db)

	// Catalog browsing and pharmacy-side product management
	SetupProductRoutes(r, db)

	// Pharmacy directory and pharmacy self-service
	SetupPharmacyRoutes(r, db)

	// Rider self-service
	SetupRiderRoutes(r, db)

	// Admin back office
	SetupAdminRoutes(r, db)
}
