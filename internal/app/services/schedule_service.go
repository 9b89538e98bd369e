package services

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/idriveapp/admin-gateway/internal/app/models"
	"github.com/idriveapp/admin-gateway/internal/app/models/dto"
	"github.com/idriveapp/admin-gateway/internal/idrive"
	"github.com/idriveapp/admin-gateway/internal/pkg/apperrors"
	"github.com/idriveapp/admin-gateway/internal/pkg/calendar"
)

// User-facing notices for degraded collections. The calendar renders with
// whatever did load; these tell the user what is missing.
const (
	noticeClassesUnavailable  = "No se pudieron cargar las clases programadas."
	noticeBookingsUnavailable = "No se pudieron cargar los agendamientos."
)

// ScheduleBackend is the backend surface the schedule service consumes
type ScheduleBackend interface {
	Classes(ctx context.Context, cred idrive.Credential) ([]models.Class, error)
	Bookings(ctx context.Context, cred idrive.Credential) ([]models.Booking, error)
	CreateBooking(ctx context.Context, cred idrive.Credential, payload idrive.BookingPayload) (models.Booking, error)
	CancelBooking(ctx context.Context, cred idrive.Credential, id int64) error
}

// Snapshot is one consistent read of the scheduling state. Both collections
// are fetched concurrently; a failed fetch leaves its collection empty and
// records a notice rather than failing the whole view.
type Snapshot struct {
	Classes  []models.Class
	Bookings []models.Booking
	Notices  []string
}

// ScheduleService builds calendar views and manages bookings
type ScheduleService struct {
	backend ScheduleBackend
	logger  zerolog.Logger
}

// NewScheduleService creates a new ScheduleService
func NewScheduleService(backend ScheduleBackend, logger zerolog.Logger) *ScheduleService {
	return &ScheduleService{
		backend: backend,
		logger:  logger,
	}
}

// Snapshot fetches classes and bookings concurrently
func (s *ScheduleService) Snapshot(ctx context.Context, cred idrive.Credential) Snapshot {
	var (
		wg       sync.WaitGroup
		classes  []models.Class
		bookings []models.Booking
		classErr error
		bookErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		classes, classErr = s.backend.Classes(ctx, cred)
	}()
	go func() {
		defer wg.Done()
		bookings, bookErr = s.backend.Bookings(ctx, cred)
	}()
	wg.Wait()

	snap := Snapshot{Classes: classes, Bookings: bookings}
	if classErr != nil {
		s.logger.Warn().Err(classErr).Msg("Classes fetch failed, rendering empty collection")
		snap.Classes = nil
		snap.Notices = append(snap.Notices, noticeClassesUnavailable)
	}
	if bookErr != nil {
		s.logger.Warn().Err(bookErr).Msg("Bookings fetch failed, rendering empty collection")
		snap.Bookings = nil
		snap.Notices = append(snap.Notices, noticeBookingsUnavailable)
	}
	return snap
}

// Events projects the current schedule onto calendar events
func (s *ScheduleService) Events(ctx context.Context, cred idrive.Credential) dto.CalendarResponse {
	snap := s.Snapshot(ctx, cred)
	events, skipped := calendar.ProjectCounted(snap.Classes, snap.Bookings)
	if skipped > 0 {
		s.logger.Warn().Int("skipped", skipped).Msg("Classes with unparseable dates excluded from calendar")
	}
	return dto.CalendarResponse{
		Events:  events,
		Notices: snap.Notices,
	}
}

// Day lists the classes of one calendar day, with occupancy per class.
// The date must be a YYYY-MM-DD date key.
func (s *ScheduleService) Day(ctx context.Context, cred idrive.Credential, dateKey string) (dto.DayResponse, error) {
	if _, err := time.Parse(calendar.DateKeyLayout, dateKey); err != nil {
		return dto.DayResponse{}, apperrors.NewCustomError(apperrors.ErrInvalidDate, "date must use the YYYY-MM-DD format")
	}

	snap := s.Snapshot(ctx, cred)
	occupancy := calendar.OccupancyByClass(snap.Bookings)

	day := dto.DayResponse{Date: dateKey, Notices: snap.Notices}
	for _, class := range calendar.ClassesOn(dateKey, snap.Classes) {
		norm, err := calendar.Normalize(class.ScheduledAt)
		if err != nil {
			continue
		}
		registered := occupancy[class.ID]
		day.Classes = append(day.Classes, dto.DayClass{
			Class:      class,
			Registered: registered,
			TimeOfDay:  norm.TimeOfDay(),
			Full:       calendar.Full(class.Capacity, registered),
		})
	}
	return day, nil
}

// ListBookings returns the active bookings for the cancellation picker.
// Cancelled bookings no longer occupy a seat and are filtered out.
func (s *ScheduleService) ListBookings(ctx context.Context, cred idrive.Credential) dto.BookingListResponse {
	bookings, err := s.backend.Bookings(ctx, cred)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Bookings fetch failed, rendering empty collection")
		return dto.BookingListResponse{Notices: []string{noticeBookingsUnavailable}}
	}
	active := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Active() {
			active = append(active, b)
		}
	}
	return dto.BookingListResponse{Bookings: active}
}

// Book reserves a seat for the student identified by cedula
func (s *ScheduleService) Book(ctx context.Context, cred idrive.Credential, req dto.BookingRequest) (models.Booking, error) {
	booking, err := s.backend.CreateBooking(ctx, cred, idrive.BookingPayload{
		Cedula:  req.Cedula,
		ClassID: req.ClassID,
	})
	if err != nil {
		return models.Booking{}, mapBackendError(err, apperrors.ErrStudentNotFound)
	}
	s.logger.Info().Int64("bookingId", booking.ID).Int64("classId", req.ClassID).Msg("Booking created")
	return booking, nil
}

// Cancel releases the seat held by a booking
func (s *ScheduleService) Cancel(ctx context.Context, cred idrive.Credential, id int64) error {
	if err := s.backend.CancelBooking(ctx, cred, id); err != nil {
		return mapBackendError(err, apperrors.ErrBookingNotFound)
	}
	s.logger.Info().Int64("bookingId", id).Msg("Booking cancelled")
	return nil
}
