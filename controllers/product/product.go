package productControllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TimiiLehin01/Medbox-Express/models"
)

type ProductRequest struct {
	Name                 string  `json:"name" binding:"required"`
	Description          string  `json:"description"`
	Category             string  `json:"category"`
	Price                float64 `json:"price" binding:"required,gt=0"`
	Quantity             int     `json:"quantity"`
	PrescriptionRequired bool    `json:"prescription_required"`
	ExpiryDate           string  `json:"expiry_date"`
	ImageURL             string  `json:"image_url"`
}

// GetProducts lists the catalog, with optional pharmacy, category, and
// free-text search filters.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		category := c.Query("category")
		pharmacyID := c.Query("pharmacy_id")

		query := db.Model(&models.Product{}).Preload("Pharmacy")

		if pharmacyID != "" {
			query = query.Where("pharmacy_id = ?", pharmacyID)
		}
		if category != "" {
			query = query.Where("category = ?", category)
		}
		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where(
				"LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)",
				likePattern, likePattern,
			)
		}

		var products []models.Product
		if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, products)
	}
}

// GetProductByID returns a single product with its pharmacy summary.
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.Preload("Pharmacy").First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// CreateProduct adds a product to the calling pharmacy's catalog.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		pharmacy, ok := pharmacyForUser(c, db)
		if !ok {
			return
		}

		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		product := models.Product{
			PharmacyID:           pharmacy.ID,
			Name:                 req.Name,
			Description:          req.Description,
			Category:             req.Category,
			Price:                req.Price,
			Quantity:             req.Quantity,
			PrescriptionRequired: req.PrescriptionRequired,
			ImageURL:             req.ImageURL,
		}
		if req.ExpiryDate != "" {
			if expiry, err := time.Parse("2006-01-02", req.ExpiryDate); err == nil {
				product.ExpiryDate = &expiry
			}
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		log.Printf("✅ Product created: %s (%s)", product.Name, product.ID)
		c.JSON(http.StatusCreated, product)
	}
}

// UpdateProduct modifies one of the calling pharmacy's own products.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		pharmacy, ok := pharmacyForUser(c, db)
		if !ok {
			return
		}

		product, ok := ownedProduct(c, db, pharmacy)
		if !ok {
			return
		}

		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := map[string]interface{}{
			"name":                  req.Name,
			"description":           req.Description,
			"category":              req.Category,
			"price":                 req.Price,
			"quantity":              req.Quantity,
			"prescription_required": req.PrescriptionRequired,
			"image_url":             req.ImageURL,
		}
		if req.ExpiryDate != "" {
			if expiry, err := time.Parse("2006-01-02", req.ExpiryDate); err == nil {
				updates["expiry_date"] = expiry
			}
		}

		if err := db.Model(&product).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// DeleteProduct removes one of the calling pharmacy's own products.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		pharmacy, ok := pharmacyForUser(c, db)
		if !ok {
			return
		}

		product, ok := ownedProduct(c, db, pharmacy)
		if !ok {
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}

func pharmacyForUser(c *gin.Context, db *gorm.DB) (*models.Pharmacy, bool) {
	var pharmacy models.Pharmacy
	if err := db.Where("user_id = ?", c.GetString("user_id")).First(&pharmacy).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pharmacy profile not found"})
		return nil, false
	}
	return &pharmacy, true
}

func ownedProduct(c *gin.Context, db *gorm.DB, pharmacy *models.Pharmacy) (*models.Product, bool) {
	var product models.Product
	if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return nil, false
	}
	if product.PharmacyID != pharmacy.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only manage your own products"})
		return nil, false
	}
	return &product, true
}
