package services

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/idriveapp/admin-gateway/internal/app/models"
	"github.com/idriveapp/admin-gateway/internal/app/models/dto"
	"github.com/idriveapp/admin-gateway/internal/idrive"
	"github.com/idriveapp/admin-gateway/internal/pkg/calendar"
)

const noticeMyBookingsUnavailable = "No se pudieron cargar tus agendamientos."

// StudentBackend is the backend surface the student service consumes
type StudentBackend interface {
	MyBookings(ctx context.Context, cred idrive.Credential) ([]models.Booking, error)
	Classes(ctx context.Context, cred idrive.Credential) ([]models.Class, error)
	Bookings(ctx context.Context, cred idrive.Credential) ([]models.Booking, error)
}

// StudentService builds the student's own views: their bookings, progress
// through the theory catalog and the classes still open to them.
type StudentService struct {
	backend StudentBackend
	logger  zerolog.Logger
	now     func() time.Time
}

// NewStudentService creates a new StudentService
func NewStudentService(backend StudentBackend, logger zerolog.Logger) *StudentService {
	return &StudentService{
		backend: backend,
		logger:  logger,
		now:     time.Now,
	}
}

// MyClasses returns the student's bookings plus their catalog progress.
// Progress counts confirmed bookings against the thirteen required modules.
func (s *StudentService) MyClasses(ctx context.Context, cred idrive.Credential) dto.MyClassesResponse {
	bookings, err := s.backend.MyBookings(ctx, cred)
	if err != nil {
		s.logger.Warn().Err(err).Msg("My bookings fetch failed, rendering empty collection")
		return dto.MyClassesResponse{
			Progress: dto.ProgressResponse{Required: models.RequiredModules},
		}
	}

	completed := 0
	for _, b := range bookings {
		if b.Status == models.BookingConfirmed {
			completed++
		}
	}
	percent := math.Min(float64(completed)/float64(models.RequiredModules)*100, 100)

	return dto.MyClassesResponse{
		Bookings: bookings,
		Progress: dto.ProgressResponse{
			Completed: completed,
			Required:  models.RequiredModules,
			Percent:   math.Round(percent*10) / 10,
		},
	}
}

// Available lists the classes the student can still book: scheduled in the
// future, with seats left, and not already booked by them.
func (s *StudentService) Available(ctx context.Context, cred idrive.Credential) dto.AvailableClassesResponse {
	var (
		wg       sync.WaitGroup
		classes  []models.Class
		all      []models.Booking
		mine     []models.Booking
		classErr error
		allErr   error
		mineErr  error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		classes, classErr = s.backend.Classes(ctx, cred)
	}()
	go func() {
		defer wg.Done()
		all, allErr = s.backend.Bookings(ctx, cred)
	}()
	go func() {
		defer wg.Done()
		mine, mineErr = s.backend.MyBookings(ctx, cred)
	}()
	wg.Wait()

	var resp dto.AvailableClassesResponse
	if classErr != nil {
		s.logger.Warn().Err(classErr).Msg("Classes fetch failed, rendering empty collection")
		resp.Notices = append(resp.Notices, noticeClassesUnavailable)
		return resp
	}
	if allErr != nil {
		s.logger.Warn().Err(allErr).Msg("Bookings fetch failed, occupancy unknown")
		resp.Notices = append(resp.Notices, noticeBookingsUnavailable)
		all = nil
	}
	if mineErr != nil {
		s.logger.Warn().Err(mineErr).Msg("My bookings fetch failed, own bookings not excluded")
		resp.Notices = append(resp.Notices, noticeMyBookingsUnavailable)
		mine = nil
	}

	booked := make(map[int64]struct{}, len(mine))
	for _, b := range mine {
		if b.Active() {
			booked[b.ClassID] = struct{}{}
		}
	}
	occupancy := calendar.OccupancyByClass(all)
	now := s.now()

	for _, class := range classes {
		norm, err := calendar.Normalize(class.ScheduledAt)
		if err != nil || !norm.Time().After(now) {
			continue
		}
		if _, taken := booked[class.ID]; taken {
			continue
		}
		registered := occupancy[class.ID]
		if calendar.Full(class.Capacity, registered) {
			continue
		}
		resp.Classes = append(resp.Classes, dto.DayClass{
			Class:      class,
			Registered: registered,
			TimeOfDay:  norm.TimeOfDay(),
			Full:       false,
		})
	}
	return resp
}
