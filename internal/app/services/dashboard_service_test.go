package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idriveapp/admin-gateway/internal/app/models"
)

func adminPerms() models.PermissionSet {
	return models.NewPermissionSet([]string{
		string(models.PermBookingsViewAll),
		string(models.PermUsersRead),
	})
}

func newDashboardService(backend *fakeBackend) *DashboardService {
	service := NewDashboardService(backend, testLogger())
	service.now = fixedNow
	return service
}

func TestDashboardService_Stats_FullPermissions(t *testing.T) {
	backend := &fakeBackend{
		classes: []models.Class{
			{ID: 1, ScheduledAt: "2025-09-05T10:00:00", Capacity: 5},
			{ID: 2, ScheduledAt: "05/09/2025 14:00", Capacity: 3},
			{ID: 3, ScheduledAt: "2025-08-20T10:00:00", Capacity: 2},
		},
		bookings: []models.Booking{
			{ID: 10, ClassID: 1, Status: models.BookingConfirmed},
			{ID: 11, ClassID: 1, Status: models.BookingPending},
			{ID: 12, ClassID: 2, Status: models.BookingCancelled},
		},
		users: []models.User{
			{ID: 1, RegisteredAt: "2025-09-02T09:00:00"},
			{ID: 2, RegisteredAt: "2025-07-15T09:00:00"},
		},
	}
	service := newDashboardService(backend)

	resp := service.Stats(context.Background(), testCred, adminPerms())

	assert.Equal(t, 2, resp.ClassesThisMonth)
	require.NotNil(t, resp.PendingBookings)
	assert.Equal(t, 1, *resp.PendingBookings)
	require.NotNil(t, resp.NewUsersThisMonth)
	assert.Equal(t, 1, *resp.NewUsersThisMonth)
	// 2 active bookings over 10 seats
	assert.InDelta(t, 20.0, resp.OccupancyRate, 0.01)
	assert.Empty(t, resp.Notices)
}

func TestDashboardService_Stats_WithoutPermissionsSkipsCollections(t *testing.T) {
	backend := &fakeBackend{
		classes: []models.Class{{ID: 1, ScheduledAt: "2025-09-05T10:00:00", Capacity: 5}},
	}
	service := newDashboardService(backend)

	resp := service.Stats(context.Background(), testCred, models.NewPermissionSet(nil))

	assert.Equal(t, 1, resp.ClassesThisMonth)
	assert.Nil(t, resp.PendingBookings)
	assert.Nil(t, resp.NewUsersThisMonth)
	assert.Zero(t, resp.OccupancyRate)
}

func TestDashboardService_Stats_DegradedCollections(t *testing.T) {
	backend := &fakeBackend{
		classesErr:  apiError(500, ""),
		bookingsErr: apiError(503, ""),
		usersErr:    apiError(503, ""),
	}
	service := newDashboardService(backend)

	resp := service.Stats(context.Background(), testCred, adminPerms())

	assert.Zero(t, resp.ClassesThisMonth)
	assert.Nil(t, resp.PendingBookings)
	assert.Nil(t, resp.NewUsersThisMonth)
	assert.Len(t, resp.Notices, 3)
}

func TestDashboardService_Stats_ZeroCapacity(t *testing.T) {
	backend := &fakeBackend{
		bookings: []models.Booking{{ID: 10, ClassID: 1, Status: models.BookingConfirmed}},
	}
	service := newDashboardService(backend)

	resp := service.Stats(context.Background(), testCred, adminPerms())

	assert.Zero(t, resp.OccupancyRate, "no seats means no occupancy, not a division by zero")
}
