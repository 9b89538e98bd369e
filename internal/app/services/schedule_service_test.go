package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idriveapp/admin-gateway/internal/app/models"
	"github.com/idriveapp/admin-gateway/internal/app/models/dto"
	"github.com/idriveapp/admin-gateway/internal/idrive"
	"github.com/idriveapp/admin-gateway/internal/pkg/apperrors"
)

var testCred = idrive.Credential{Token: "backend-token"}

func TestScheduleService_Snapshot_BothCollectionsLoaded(t *testing.T) {
	backend := &fakeBackend{
		classes:  []models.Class{{ID: 1, Name: "Primeros Auxilios", ScheduledAt: "2025-09-05T10:00:00", Capacity: 2}},
		bookings: []models.Booking{{ID: 10, ClassID: 1, Status: models.BookingConfirmed}},
	}
	service := NewScheduleService(backend, testLogger())

	snap := service.Snapshot(context.Background(), testCred)

	assert.Len(t, snap.Classes, 1)
	assert.Len(t, snap.Bookings, 1)
	assert.Empty(t, snap.Notices)
}

func TestScheduleService_Snapshot_ClassFetchFailureDegrades(t *testing.T) {
	backend := &fakeBackend{
		classesErr: apiError(500, ""),
		bookings:   []models.Booking{{ID: 10, ClassID: 1, Status: models.BookingConfirmed}},
	}
	service := NewScheduleService(backend, testLogger())

	snap := service.Snapshot(context.Background(), testCred)

	assert.Empty(t, snap.Classes)
	assert.Len(t, snap.Bookings, 1, "the healthy collection must still be used")
	require.Len(t, snap.Notices, 1)
	assert.Equal(t, noticeClassesUnavailable, snap.Notices[0])
}

func TestScheduleService_Snapshot_BookingFetchFailureDegrades(t *testing.T) {
	backend := &fakeBackend{
		classes:     []models.Class{{ID: 1, Name: "Conducción Defensiva", ScheduledAt: "2025-09-05T10:00:00", Capacity: 5}},
		bookingsErr: errors.New("connection refused"),
	}
	service := NewScheduleService(backend, testLogger())

	snap := service.Snapshot(context.Background(), testCred)

	assert.Len(t, snap.Classes, 1)
	assert.Empty(t, snap.Bookings)
	require.Len(t, snap.Notices, 1)
	assert.Equal(t, noticeBookingsUnavailable, snap.Notices[0])
}

func TestScheduleService_Events_ProjectsOccupancy(t *testing.T) {
	backend := &fakeBackend{
		classes: []models.Class{{ID: 1, Name: "Primeros Auxilios", ScheduledAt: "05/09/2025 10:00", Capacity: 2}},
		bookings: []models.Booking{
			{ID: 10, ClassID: 1, Status: models.BookingConfirmed},
			{ID: 11, ClassID: 1, Status: models.BookingCancelled},
		},
	}
	service := NewScheduleService(backend, testLogger())

	resp := service.Events(context.Background(), testCred)

	require.Len(t, resp.Events, 1)
	assert.Equal(t, "Primeros Auxilios (1/2)", resp.Events[0].Title)
	assert.Equal(t, "2025-09-05", resp.Events[0].Date)
	assert.Empty(t, resp.Notices)
}

func TestScheduleService_Day_ListsOccupancyAndFullness(t *testing.T) {
	backend := &fakeBackend{
		classes: []models.Class{
			{ID: 1, Name: "Primeros Auxilios", ScheduledAt: "2025-09-05T10:00:00", Capacity: 1},
			{ID: 2, Name: "Seguridad Vial (Módulo 1)", ScheduledAt: "2025-09-05T14:00:00", Capacity: 3},
			{ID: 3, Name: "Mecánica Básica (Módulo 1)", ScheduledAt: "2025-09-06T10:00:00", Capacity: 3},
		},
		bookings: []models.Booking{
			{ID: 10, ClassID: 1, Status: models.BookingConfirmed},
			{ID: 11, ClassID: 2, Status: models.BookingPending},
		},
	}
	service := NewScheduleService(backend, testLogger())

	day, err := service.Day(context.Background(), testCred, "2025-09-05")
	require.NoError(t, err)

	require.Len(t, day.Classes, 2)
	assert.Equal(t, int64(1), day.Classes[0].ID)
	assert.True(t, day.Classes[0].Full)
	assert.Equal(t, "10:00", day.Classes[0].TimeOfDay)
	assert.Equal(t, int64(2), day.Classes[1].ID)
	assert.False(t, day.Classes[1].Full)
	assert.Equal(t, 1, day.Classes[1].Registered)
}

func TestScheduleService_Day_RejectsMalformedDate(t *testing.T) {
	service := NewScheduleService(&fakeBackend{}, testLogger())

	_, err := service.Day(context.Background(), testCred, "05/09/2025")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidDate)
}

func TestScheduleService_Book_SurfacesBackendDetail(t *testing.T) {
	backend := &fakeBackend{
		createBookingErr: apiError(409, "La clase ya no tiene cupos disponibles"),
	}
	service := NewScheduleService(backend, testLogger())

	_, err := service.Book(context.Background(), testCred, dto.BookingRequest{Cedula: "1234567890", ClassID: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMutationFailure)
	assert.Equal(t, "La clase ya no tiene cupos disponibles", err.Error())
}

func TestScheduleService_Cancel_MapsNotFound(t *testing.T) {
	backend := &fakeBackend{cancelErr: apiError(404, "Agendamiento no encontrado")}
	service := NewScheduleService(backend, testLogger())

	err := service.Cancel(context.Background(), testCred, 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrBookingNotFound)
}

func TestScheduleService_Cancel_RecordsID(t *testing.T) {
	backend := &fakeBackend{}
	service := NewScheduleService(backend, testLogger())

	err := service.Cancel(context.Background(), testCred, 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), backend.cancelledID)
}

func TestScheduleService_ListBookings_FiltersCancelled(t *testing.T) {
	backend := &fakeBackend{
		bookings: []models.Booking{
			{ID: 1, ClassID: 1, Status: models.BookingConfirmed},
			{ID: 2, ClassID: 1, Status: models.BookingCancelled},
			{ID: 3, ClassID: 2, Status: models.BookingPending},
		},
	}
	service := NewScheduleService(backend, testLogger())

	resp := service.ListBookings(context.Background(), testCred)

	require.Len(t, resp.Bookings, 2)
	for _, b := range resp.Bookings {
		assert.True(t, b.Active(), "booking %d is cancelled and must not be listed", b.ID)
	}
	assert.Equal(t, int64(1), resp.Bookings[0].ID)
	assert.Equal(t, int64(3), resp.Bookings[1].ID)
}

func TestScheduleService_ListBookings_DegradesOnFailure(t *testing.T) {
	backend := &fakeBackend{bookingsErr: apiError(503, "")}
	service := NewScheduleService(backend, testLogger())

	resp := service.ListBookings(context.Background(), testCred)

	assert.Empty(t, resp.Bookings)
	require.Len(t, resp.Notices, 1)
}
