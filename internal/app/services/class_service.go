package services

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/idriveapp/admin-gateway/internal/app/models"
	"github.com/idriveapp/admin-gateway/internal/app/models/dto"
	"github.com/idriveapp/admin-gateway/internal/idrive"
	"github.com/idriveapp/admin-gateway/internal/pkg/apperrors"
	"github.com/idriveapp/admin-gateway/internal/pkg/calendar"
)

const (
	noticeTeachersUnavailable = "No se pudieron cargar los profesores."
	noticeRoomsUnavailable    = "No se pudieron cargar los salones."

	defaultClassDuration = 120
)

// ClassBackend is the backend surface the class service consumes
type ClassBackend interface {
	Classes(ctx context.Context, cred idrive.Credential) ([]models.Class, error)
	CreateClass(ctx context.Context, cred idrive.Credential, payload idrive.ClassPayload) (models.Class, error)
	UpdateClass(ctx context.Context, cred idrive.Credential, id int64, payload idrive.ClassPayload) (models.Class, error)
	DeleteClass(ctx context.Context, cred idrive.Credential, id int64) error
	Users(ctx context.Context, cred idrive.Credential) ([]models.User, error)
	Rooms(ctx context.Context, cred idrive.Credential) ([]models.Room, error)
}

// ClassService handles theory class administration
type ClassService struct {
	backend ClassBackend
	logger  zerolog.Logger
}

// NewClassService creates a new ClassService
func NewClassService(backend ClassBackend, logger zerolog.Logger) *ClassService {
	return &ClassService{
		backend: backend,
		logger:  logger,
	}
}

// List returns every scheduled class
func (s *ClassService) List(ctx context.Context, cred idrive.Credential) ([]models.Class, error) {
	classes, err := s.backend.Classes(ctx, cred)
	if err != nil {
		return nil, mapBackendError(err, apperrors.ErrClassNotFound)
	}
	return classes, nil
}

// Catalog returns the fixed theoretical curriculum the create form offers
func (s *ClassService) Catalog() []models.TheoryModule {
	return models.TheoryCatalog
}

// FormOptions collects the reference data the class form needs. Teachers and
// rooms are fetched concurrently; a failed fetch degrades to an empty list
// with a notice.
func (s *ClassService) FormOptions(ctx context.Context, cred idrive.Credential) dto.ClassFormOptions {
	var (
		wg      sync.WaitGroup
		users   []models.User
		rooms   []models.Room
		userErr error
		roomErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		users, userErr = s.backend.Users(ctx, cred)
	}()
	go func() {
		defer wg.Done()
		rooms, roomErr = s.backend.Rooms(ctx, cred)
	}()
	wg.Wait()

	options := dto.ClassFormOptions{Rooms: rooms}
	if userErr != nil {
		s.logger.Warn().Err(userErr).Msg("Teachers fetch failed, rendering empty collection")
		options.Notices = append(options.Notices, noticeTeachersUnavailable)
	} else {
		options.Teachers = make([]models.User, 0, len(users))
		for _, u := range users {
			if u.IsTeacher() {
				options.Teachers = append(options.Teachers, u)
			}
		}
	}
	if roomErr != nil {
		s.logger.Warn().Err(roomErr).Msg("Rooms fetch failed, rendering empty collection")
		options.Rooms = nil
		options.Notices = append(options.Notices, noticeRoomsUnavailable)
	}
	return options
}

// Create schedules a new class. The name must match a catalog module; when
// the description is omitted the catalog description is applied.
func (s *ClassService) Create(ctx context.Context, cred idrive.Credential, req dto.ClassRequest) (models.Class, error) {
	payload, err := s.buildPayload(req)
	if err != nil {
		return models.Class{}, err
	}
	created, err := s.backend.CreateClass(ctx, cred, payload)
	if err != nil {
		return models.Class{}, mapBackendError(err, apperrors.ErrClassNotFound)
	}
	s.logger.Info().Int64("classId", created.ID).Str("name", created.Name).Msg("Class created")
	return created, nil
}

// Update rewrites an existing class
func (s *ClassService) Update(ctx context.Context, cred idrive.Credential, id int64, req dto.ClassRequest) (models.Class, error) {
	payload, err := s.buildPayload(req)
	if err != nil {
		return models.Class{}, err
	}
	updated, err := s.backend.UpdateClass(ctx, cred, id, payload)
	if err != nil {
		return models.Class{}, mapBackendError(err, apperrors.ErrClassNotFound)
	}
	s.logger.Info().Int64("classId", id).Msg("Class updated")
	return updated, nil
}

// Delete removes a class
func (s *ClassService) Delete(ctx context.Context, cred idrive.Credential, id int64) error {
	if err := s.backend.DeleteClass(ctx, cred, id); err != nil {
		return mapBackendError(err, apperrors.ErrClassNotFound)
	}
	s.logger.Info().Int64("classId", id).Msg("Class deleted")
	return nil
}

func (s *ClassService) buildPayload(req dto.ClassRequest) (idrive.ClassPayload, error) {
	module, ok := models.FindTheoryModule(req.Name)
	if !ok {
		return idrive.ClassPayload{}, apperrors.NewBadRequestError("La clase debe ser uno de los módulos teóricos del catálogo.")
	}
	if _, err := calendar.Normalize(req.ScheduledAt); err != nil {
		return idrive.ClassPayload{}, apperrors.NewCustomError(apperrors.ErrInvalidDate, "La fecha y hora de la clase no son válidas.")
	}

	description := req.Description
	if description == "" {
		description = module.Description
	}
	duration := req.DurationMinutes
	if duration == 0 {
		duration = defaultClassDuration
	}
	return idrive.ClassPayload{
		Name:            module.Name,
		Description:     description,
		ScheduledAt:     req.ScheduledAt,
		TeacherID:       req.TeacherID,
		RoomID:          req.RoomID,
		Capacity:        req.Capacity,
		DurationMinutes: duration,
	}, nil
}
