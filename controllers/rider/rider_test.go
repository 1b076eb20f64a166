package riderControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
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
		&models.Rider{},
		&models.RiderEarning{},
		&models.Order{},
	))
	return db
}

func newRouter(db *gorm.DB, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", string(models.RoleRider))
	})
	r.GET("/riders/profile", GetProfile(db))
	r.POST("/riders/availability", UpdateAvailability(db))
	r.POST("/riders/location", UpdateLocation(db))
	r.GET("/riders/earnings", GetEarnings(db))
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

func seedRider(t *testing.T, db *gorm.DB) *models.Rider {
	t.Helper()
	user := &models.User{
		Name:     "Test Rider",
		Email:    fmt.Sprintf("rider-%s@example.com", strings.ToLower(t.Name())),
		Phone:    fmt.Sprintf("081%08d", len(t.Name())),
		Password: "hashed",
		Role:     models.RoleRider,
		Status:   models.UserStatusActive,
	}
	require.NoError(t, db.Create(user).Error)
	rider := &models.Rider{
		UserID:        user.ID,
		TransportType: "BIKE",
		Verified:      true,
		Availability:  models.RiderAvailable,
	}
	require.NoError(t, db.Create(rider).Error)
	return rider
}

func TestUpdateAvailability_OfflineBlockedWithActiveDelivery(t *testing.T) {
	db := setupTestDB(t)
	rider := seedRider(t, db)

	order := &models.Order{
		ConsumerID:  "consumer-1",
		PharmacyID:  "pharmacy-1",
		RiderID:     &rider.ID,
		Status:      models.OrderStatusPicked,
		DeliveryFee: 500,
	}
	require.NoError(t, db.Create(order).Error)

	r := newRouter(db, rider.UserID)
	w := doJSON(t, r, http.MethodPost, "/riders/availability",
		UpdateAvailabilityRequest{Availability: "OFFLINE"})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var reloaded models.Rider
	require.NoError(t, db.First(&reloaded, "id = ?", rider.ID).Error)
	assert.Equal(t, models.RiderAvailable, reloaded.Availability)
}

func TestUpdateAvailability_OfflineAllowedWhenIdle(t *testing.T) {
	db := setupTestDB(t)
	rider := seedRider(t, db)

	// A delivered order does not hold the rider online.
	order := &models.Order{
		ConsumerID:  "consumer-1",
		PharmacyID:  "pharmacy-1",
		RiderID:     &rider.ID,
		Status:      models.OrderStatusDelivered,
		DeliveryFee: 500,
	}
	require.NoError(t, db.Create(order).Error)

	r := newRouter(db, rider.UserID)
	w := doJSON(t, r, http.MethodPost, "/riders/availability",
		UpdateAvailabilityRequest{Availability: "OFFLINE"})

	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.Rider
	require.NoError(t, db.First(&reloaded, "id = ?", rider.ID).Error)
	assert.Equal(t, models.RiderOffline, reloaded.Availability)
}

func TestUpdateAvailability_InvalidValue(t *testing.T) {
	db := setupTestDB(t)
	rider := seedRider(t, db)

	r := newRouter(db, rider.UserID)
	w := doJSON(t, r, http.MethodPost, "/riders/availability",
		UpdateAvailabilityRequest{Availability: "SLEEPING"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateLocation_StoresCoordinates(t *testing.T) {
	db := setupTestDB(t)
	rider := seedRider(t, db)

	r := newRouter(db, rider.UserID)
	w := doJSON(t, r, http.MethodPost, "/riders/location",
		UpdateLocationRequest{Latitude: 6.45, Longitude: 3.39})

	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.Rider
	require.NoError(t, db.First(&reloaded, "id = ?", rider.ID).Error)
	require.NotNil(t, reloaded.Latitude)
	require.NotNil(t, reloaded.Longitude)
	assert.InDelta(t, 6.45, *reloaded.Latitude, 1e-9)
	assert.InDelta(t, 3.39, *reloaded.Longitude, 1e-9)
}

func TestGetEarnings_Summary(t *testing.T) {
	db := setupTestDB(t)
	rider := seedRider(t, db)

	require.NoError(t, db.Create(&models.RiderEarning{
		RiderID: rider.ID, Amount: 500, Description: "Delivery fee for Order #aaaa1111",
	}).Error)
	require.NoError(t, db.Create(&models.RiderEarning{
		RiderID: rider.ID, Amount: 700, Description: "Delivery fee for Order #bbbb2222",
	}).Error)

	delivered := &models.Order{
		ConsumerID: "consumer-1", PharmacyID: "pharmacy-1",
		RiderID: &rider.ID, Status: models.OrderStatusDelivered,
	}
	require.NoError(t, db.Create(delivered).Error)

	r := newRouter(db, rider.UserID)
	w := doJSON(t, r, http.MethodGet, "/riders/earnings", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		TotalEarnings   float64               `json:"totalEarnings"`
		DeliveredOrders int64                 `json:"deliveredOrders"`
		ActiveOrders    int64                 `json:"activeOrders"`
		Earnings        []models.RiderEarning `json:"earnings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1200.0, resp.TotalEarnings)
	assert.Equal(t, int64(1), resp.DeliveredOrders)
	assert.Equal(t, int64(0), resp.ActiveOrders)
	assert.Len(t, resp.Earnings, 2)
}

func TestGetProfile_MissingRider(t *testing.T) {
	db := setupTestDB(t)

	r := newRouter(db, "no-such-user")
	w := doJSON(t, r, http.MethodGet, "/riders/profile", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
