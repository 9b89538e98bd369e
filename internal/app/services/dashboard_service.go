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

const noticeUsersUnavailable = "No se pudieron cargar los usuarios."

// DashboardBackend is the backend surface the dashboard service consumes
type DashboardBackend interface {
	Classes(ctx context.Context, cred idrive.Credential) ([]models.Class, error)
	Bookings(ctx context.Context, cred idrive.Credential) ([]models.Booking, error)
	Users(ctx context.Context, cred idrive.Credential) ([]models.User, error)
}

// DashboardService aggregates the landing page statistics. Collections the
// caller has no permission to read are skipped, not errored: their stats
// come back nil so the UI hides the cards.
type DashboardService struct {
	backend DashboardBackend
	logger  zerolog.Logger
	now     func() time.Time
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(backend DashboardBackend, logger zerolog.Logger) *DashboardService {
	return &DashboardService{
		backend: backend,
		logger:  logger,
		now:     time.Now,
	}
}

// Stats computes the dashboard numbers for the current month
func (s *DashboardService) Stats(ctx context.Context, cred idrive.Credential, perms models.PermissionSet) dto.DashboardResponse {
	var (
		wg       sync.WaitGroup
		classes  []models.Class
		bookings []models.Booking
		users    []models.User
		classErr error
		bookErr  error
		userErr  error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		classes, classErr = s.backend.Classes(ctx, cred)
	}()
	if perms.Has(models.PermBookingsViewAll) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bookings, bookErr = s.backend.Bookings(ctx, cred)
		}()
	}
	if perms.Has(models.PermUsersRead) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			users, userErr = s.backend.Users(ctx, cred)
		}()
	}
	wg.Wait()

	var resp dto.DashboardResponse
	now := s.now()

	if classErr != nil {
		s.logger.Warn().Err(classErr).Msg("Classes fetch failed, rendering empty collection")
		resp.Notices = append(resp.Notices, noticeClassesUnavailable)
		classes = nil
	}
	totalCapacity := 0
	for _, class := range classes {
		totalCapacity += class.Capacity
		if norm, err := calendar.Normalize(class.ScheduledAt); err == nil && sameMonth(norm.Time(), now) {
			resp.ClassesThisMonth++
		}
	}

	if perms.Has(models.PermBookingsViewAll) {
		if bookErr != nil {
			s.logger.Warn().Err(bookErr).Msg("Bookings fetch failed, rendering empty collection")
			resp.Notices = append(resp.Notices, noticeBookingsUnavailable)
		} else {
			active, pending := 0, 0
			for _, b := range bookings {
				if b.Active() {
					active++
				}
				if b.Status == models.BookingPending {
					pending++
				}
			}
			if totalCapacity > 0 {
				resp.OccupancyRate = math.Round(float64(active)/float64(totalCapacity)*1000) / 10
			}
			resp.PendingBookings = &pending
		}
	}

	if perms.Has(models.PermUsersRead) {
		if userErr != nil {
			s.logger.Warn().Err(userErr).Msg("Users fetch failed, rendering empty collection")
			resp.Notices = append(resp.Notices, noticeUsersUnavailable)
		} else {
			newUsers := 0
			for _, u := range users {
				if norm, err := calendar.Normalize(u.RegisteredAt); err == nil && sameMonth(norm.Time(), now) {
					newUsers++
				}
			}
			resp.NewUsersThisMonth = &newUsers
		}
	}

	return resp
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
