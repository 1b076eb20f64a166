package orderControllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TimiiLehin01/Medbox-Express/models"
)

func TestRoleMayRequest(t *testing.T) {
	cases := []struct {
		role   models.UserRole
		target models.OrderStatus
		want   bool
	}{
		{models.RolePharmacy, models.OrderStatusAccepted, true},
		{models.RolePharmacy, models.OrderStatusReady, true},
		{models.RolePharmacy, models.OrderStatusCancelled, true},
		{models.RolePharmacy, models.OrderStatusPicked, false},
		{models.RolePharmacy, models.OrderStatusDelivered, false},
		{models.RolePharmacy, models.OrderStatusPending, false},
		{models.RoleRider, models.OrderStatusPicked, true},
		{models.RoleRider, models.OrderStatusDelivered, true},
		{models.RoleRider, models.OrderStatusAccepted, false},
		{models.RoleRider, models.OrderStatusCancelled, false},
		{models.RoleAdmin, models.OrderStatusPending, true},
		{models.RoleAdmin, models.OrderStatusDelivered, true},
		{models.RoleConsumer, models.OrderStatusCancelled, false},
		{models.RoleConsumer, models.OrderStatusDelivered, false},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, roleMayRequest(tc.role, tc.target),
			"role=%s target=%s", tc.role, tc.target)
	}
}

func TestUpdateStatus_PharmacyAcceptsOwnOrder(t *testing.T) {
	db := setupTestDB(t)
	consumer := seedUser(t, db, models.RoleConsumer)
	pharmacy := seedPharmacy(t, db, 6.45, 3.39)
	order := seedOrder(t, db, consumer.ID, pharmacy.ID, models.OrderStatusPending)

	r := newRouter(db, pharmacy.UserID, models.RolePharmacy)
	w := doJSON(t, r, http.MethodPatch, "/orders/"+order.ID+"/status",
		UpdateOrderStatusRequest{Status: "ACCEPTED"})

	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, "id = ?", order.ID).Error)
	assert.Equal(t, models.OrderStatusAccepted, reloaded.Status)
}

func TestUpdateStatus_ForeignPharmacyForbidden(t *testing.T) {
	db := setupTestDB(t)
	consumer := seedUser(t, db, models.RoleConsumer)
	owner := seedPharmacy(t, db, 6.45, 3.39)
	other := seedPharmacy(t, db, 6.60, 3.35)
	order := seedOrder(t, db, consumer.ID, owner.ID, models.OrderStatusPending)

	r := newRouter(db, other.UserID, models.RolePharmacy)
	w := doJSON(t, r, http.MethodPatch, "/orders/"+order.ID+"/status",
		UpdateOrderStatusRequest{Status: "ACCEPTED"})

	require.Equal(t, http.StatusForbidden, w.Code)

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, "id = ?", order.ID).Error)
	assert.Equal(t, models.OrderStatusPending, reloaded.Status)
}

func TestUpdateStatus_PharmacyCannotRequestRiderTargets(t *testing.T) {
	db := setupTestDB(t)
	consumer := seedUser(t, db, models.RoleConsumer)
	pharmacy := seedPharmacy(t, db, 6.45, 3.39)
	order := seedOrder(t, db, consumer.ID, pharmacy.ID, models.OrderStatusReady)

	r := newRouter(db, pharmacy.UserID, models.RolePharmacy)
	w := doJSON(t, r, http.MethodPatch, "/orders/"+order.ID+"/status",
		UpdateOrderStatusRequest{Status: "DELIVERED"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateStatus_UnassignedRiderForbidden(t *testing.T) {
	db := setupTestDB(t)
	consumer := seedUser(t, db, models.RoleConsumer)
	pharmacy := seedPharmacy(t, db, 6.45, 3.39)
	rider := seedRider(t, db, true)
	order := seedOrder(t, db, consumer.ID, pharmacy.ID, models.OrderStatusReady)

	r := newRouter(db, rider.UserID, models.RoleRider)
	w := doJSON(t, r, http.MethodPatch, "/orders/"+order.ID+"/status",
		UpdateOrderStatusRequest{Status: "PICKED"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	db := setupTestDB(t)
	consumer := seedUser(t, db, models.RoleConsumer)
	pharmacy := seedPharmacy(t, db, 6.45, 3.39)
	order := seedOrder(t, db, consumer.ID, pharmacy.ID, models.OrderStatusPending)

	r := newRouter(db, pharmacy.UserID, models.RolePharmacy)
	w := doJSON(t, r, http.MethodPatch, "/orders/"+order.ID+"/status",
		UpdateOrderStatusRequest{Status: "SHIPPED"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatus_OrderNotFound(t *testing.T) {
	db := setupTestDB(t)
	pharmacy := seedPharmacy(t, db, 6.45, 3.39)

	r := newRouter(db, pharmacy.UserID, models.RolePharmacy)
	w := doJSON(t, r, http.MethodPatch, "/orders/missing-id/status",
		UpdateOrderStatusRequest{Status: "ACCEPTED"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateStatus_DeliveredByRiderRecordsEarning(t *testing.T) {
	db := setupTestDB(t)
	consumer := seedUser(t, db, models.RoleConsumer)
	pharmacy := seedPharmacy(t, db, 6.45, 3.39)
	rider := seedRider(t, db, true)
	require.NoError(t, db.Model(rider).Update("availability", models.RiderBusy).Error)

	order := seedOrder(t, db, consumer.ID, pharmacy.ID, models.OrderStatusPicked)
	require.NoError(t, db.Model(order).Update("rider_id", rider.ID).Error)

	r := newRouter(db, rider.UserID, models.RoleRider)
	w := doJSON(t, r, http.MethodPatch, "/orders/"+order.ID+"/status",
		UpdateOrderStatusRequest{Status: "DELIVERED"})

	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, "id = ?", order.ID).Error)
	assert.Equal(t, models.OrderStatusDelivered, reloaded.Status)

	var earnings []models.RiderEarning
	require.NoError(t, db.Where("rider_id = ?", rider.ID).Find(&earnings).Error)
	require.Len(t, earnings, 1)
	assert.Equal(t, order.DeliveryFee, earnings[0].Amount)
	assert.Contains(t, earnings[0].Description, order.ShortID())

	var reloadedRider models.Rider
	require.NoError(t, db.First(&reloadedRider, "id = ?", rider.ID).Error)
	assert.Equal(t, models.RiderAvailable, reloadedRider.Availability)
}

func TestUpdateStatus_DeliveredByAdminSkipsEarning(t *testing.T) {
	db := setupTestDB(t)
	consumer := seedUser(t, db, models.RoleConsumer)
	pharmacy := seedPharmacy(t, db, 6.45, 3.39)
	rider := seedRider(t, db, true)
	admin := seedUser(t, db, models.RoleAdmin)

	order := seedOrder(t, db, consumer.ID, pharmacy.ID, models.OrderStatusPicked)
	require.NoError(t, db.Model(order).Update("rider_id", rider.ID).Error)

	r := newRouter(db, admin.ID, models.RoleAdmin)
	w := doJSON(t, r, http.MethodPatch, "/orders/"+order.ID+"/status",
		UpdateOrderStatusRequest{Status: "DELIVERED"})

	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.RiderEarning{}).Count(&count).Error)
	assert.Zero(t, count)
}
