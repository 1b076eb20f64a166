package orderControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/TimiiLehin01/Medbox-Express/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Pharmacy{},
		&models.Rider{},
		&models.RiderEarning{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

// newRouter builds a router with the identity already resolved, the way
// the auth middleware would leave it.
func newRouter(db *gorm.DB, userID string, role models.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", string(role))
	})
	r.POST("/orders", CreateOrderHandler(db))
	r.GET("/orders", ListOrdersHandler(db))
	r.GET("/orders/available", AvailableOrdersHandler(db))
	r.GET("/orders/:orderID", GetOrderByIDHandler(db))
	r.PATCH("/orders/:orderID/status", UpdateOrderStatusHandler(db))
	r.POST("/orders/:orderID/accept", AcceptOrderHandler(db))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedUser(t *testing.T, db *gorm.DB, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{
		Name:     "Test " + string(role),
		Email:    fmt.Sprintf("%s-%d@example.com", strings.ToLower(string(role)), seq()),
		Phone:    fmt.Sprintf("080%08d", seq()),
		Password: "hashed",
		Role:     role,
		Status:   models.UserStatusActive,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedPharmacy(t *testing.T, db *gorm.DB, lat, lng float64) *models.Pharmacy {
	t.Helper()
	user := seedUser(t, db, models.RolePharmacy)
	pharmacy := &models.Pharmacy{
		UserID:    user.ID,
		Name:      "Pharmacy " + user.ID[:8],
		Address:   "12 Broad Street",
		Latitude:  lat,
		Longitude: lng,
		Verified:  true,
	}
	require.NoError(t, db.Create(pharmacy).Error)
	return pharmacy
}

func seedRider(t *testing.T, db *gorm.DB, verified bool) *models.Rider {
	t.Helper()
	user := seedUser(t, db, models.RoleRider)
	rider := &models.Rider{
		UserID:        user.ID,
		TransportType: "BIKE",
		Verified:      verified,
		Availability:  models.RiderAvailable,
	}
	require.NoError(t, db.Create(rider).Error)
	return rider
}

func seedOrder(t *testing.T, db *gorm.DB, consumerID, pharmacyID string, status models.OrderStatus) *models.Order {
	t.Helper()
	order := &models.Order{
		ConsumerID:      consumerID,
		PharmacyID:      pharmacyID,
		Status:          status,
		PaymentStatus:   models.PaymentStatusPending,
		Subtotal:        4000,
		DeliveryFee:     500,
		Total:           4500,
		DeliveryAddress: "4 Marina Road",
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

var seqCounter int

func seq() int {
	seqCounter++
	return seqCounter
}
