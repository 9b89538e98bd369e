package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idriveapp/admin-gateway/internal/app/models"
)

func fixedNow() time.Time {
	return time.Date(2025, 9, 1, 8, 0, 0, 0, time.Local)
}

func newStudentService(backend *fakeBackend) *StudentService {
	service := NewStudentService(backend, testLogger())
	service.now = fixedNow
	return service
}

func TestStudentService_MyClasses_Progress(t *testing.T) {
	backend := &fakeBackend{
		mine: []models.Booking{
			{ID: 1, ClassID: 1, Status: models.BookingConfirmed},
			{ID: 2, ClassID: 2, Status: models.BookingConfirmed},
			{ID: 3, ClassID: 3, Status: models.BookingPending},
			{ID: 4, ClassID: 4, Status: models.BookingCancelled},
		},
	}
	service := newStudentService(backend)

	resp := service.MyClasses(context.Background(), testCred)

	assert.Len(t, resp.Bookings, 4)
	assert.Equal(t, 2, resp.Progress.Completed)
	assert.Equal(t, models.RequiredModules, resp.Progress.Required)
	assert.InDelta(t, 15.4, resp.Progress.Percent, 0.01)
}

func TestStudentService_MyClasses_FetchFailureDegrades(t *testing.T) {
	backend := &fakeBackend{mineErr: apiError(503, "")}
	service := newStudentService(backend)

	resp := service.MyClasses(context.Background(), testCred)

	assert.Empty(t, resp.Bookings)
	assert.Equal(t, 0, resp.Progress.Completed)
	assert.Equal(t, models.RequiredModules, resp.Progress.Required)
}

func TestStudentService_Available_Filters(t *testing.T) {
	backend := &fakeBackend{
		classes: []models.Class{
			{ID: 1, Name: "Primeros Auxilios", ScheduledAt: "2025-09-05T10:00:00", Capacity: 2},
			{ID: 2, Name: "Conducción Defensiva", ScheduledAt: "2025-09-06T10:00:00", Capacity: 1},
			{ID: 3, Name: "Seguridad Vial (Módulo 1)", ScheduledAt: "2025-08-20T10:00:00", Capacity: 5},
			{ID: 4, Name: "Mecánica Básica (Módulo 1)", ScheduledAt: "2025-09-07T10:00:00", Capacity: 5},
			{ID: 5, Name: "Sistema Integrado de Transporte", ScheduledAt: "no es fecha", Capacity: 5},
		},
		bookings: []models.Booking{
			{ID: 10, ClassID: 2, StudentID: 99, Status: models.BookingConfirmed},
		},
		mine: []models.Booking{
			{ID: 11, ClassID: 4, Status: models.BookingPending},
		},
	}
	service := newStudentService(backend)

	resp := service.Available(context.Background(), testCred)

	// class 2 is full, class 3 already happened, class 4 is already booked
	// and class 5 has no parseable date
	require.Len(t, resp.Classes, 1)
	assert.Equal(t, int64(1), resp.Classes[0].ID)
	assert.Equal(t, "10:00", resp.Classes[0].TimeOfDay)
	assert.Empty(t, resp.Notices)
}

func TestStudentService_Available_CancelledBookingFreesClass(t *testing.T) {
	backend := &fakeBackend{
		classes: []models.Class{
			{ID: 4, Name: "Mecánica Básica (Módulo 1)", ScheduledAt: "2025-09-07T10:00:00", Capacity: 5},
		},
		mine: []models.Booking{
			{ID: 11, ClassID: 4, Status: models.BookingCancelled},
		},
	}
	service := newStudentService(backend)

	resp := service.Available(context.Background(), testCred)

	require.Len(t, resp.Classes, 1, "a cancelled booking must not block rebooking")
}

func TestStudentService_Available_ClassFetchFailure(t *testing.T) {
	backend := &fakeBackend{classesErr: apiError(500, "")}
	service := newStudentService(backend)

	resp := service.Available(context.Background(), testCred)

	assert.Empty(t, resp.Classes)
	require.Len(t, resp.Notices, 1)
	assert.Equal(t, noticeClassesUnavailable, resp.Notices[0])
}
