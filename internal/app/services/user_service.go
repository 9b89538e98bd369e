package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/idriveapp/admin-gateway/internal/app/models"
	"github.com/idriveapp/admin-gateway/internal/app/models/dto"
	"github.com/idriveapp/admin-gateway/internal/idrive"
	"github.com/idriveapp/admin-gateway/internal/pkg/apperrors"
)

// UserBackend is the backend surface the user service consumes
type UserBackend interface {
	Users(ctx context.Context, cred idrive.Credential) ([]models.User, error)
	CreateUser(ctx context.Context, cred idrive.Credential, payload idrive.UserPayload) (idrive.CreatedUser, error)
	UpdateUser(ctx context.Context, cred idrive.Credential, id int64, payload idrive.UserPayload) (models.User, error)
	DeleteUser(ctx context.Context, cred idrive.Credential, id int64) error
	Roles(ctx context.Context, cred idrive.Credential) ([]models.Role, error)
}

// UserService handles account administration
type UserService struct {
	backend UserBackend
	logger  zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(backend UserBackend, logger zerolog.Logger) *UserService {
	return &UserService{
		backend: backend,
		logger:  logger,
	}
}

// List returns every account
func (s *UserService) List(ctx context.Context, cred idrive.Credential) ([]models.User, error) {
	users, err := s.backend.Users(ctx, cred)
	if err != nil {
		return nil, mapBackendError(err, apperrors.ErrUserNotFound)
	}
	return users, nil
}

// Create registers a new account. The backend issues a temporary password,
// which is returned once so the admin can hand it over; it is never stored.
func (s *UserService) Create(ctx context.Context, cred idrive.Credential, req dto.CreateUserRequest) (idrive.CreatedUser, error) {
	created, err := s.backend.CreateUser(ctx, cred, idrive.UserPayload{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Cedula: req.Cedula,
		RoleID: req.RoleID,
	})
	if err != nil {
		return idrive.CreatedUser{}, mapBackendError(err, apperrors.ErrUserNotFound)
	}
	s.logger.Info().Int64("userId", created.ID).Int64("roleId", req.RoleID).Msg("User created")
	return created, nil
}

// Update rewrites an account
func (s *UserService) Update(ctx context.Context, cred idrive.Credential, id int64, req dto.UpdateUserRequest) (models.User, error) {
	updated, err := s.backend.UpdateUser(ctx, cred, id, idrive.UserPayload{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Cedula: req.Cedula,
		RoleID: req.RoleID,
		Status: req.Status,
	})
	if err != nil {
		return models.User{}, mapBackendError(err, apperrors.ErrUserNotFound)
	}
	s.logger.Info().Int64("userId", id).Msg("User updated")
	return updated, nil
}

// Delete removes an account
func (s *UserService) Delete(ctx context.Context, cred idrive.Credential, id int64) error {
	if err := s.backend.DeleteUser(ctx, cred, id); err != nil {
		return mapBackendError(err, apperrors.ErrUserNotFound)
	}
	s.logger.Info().Int64("userId", id).Msg("User deleted")
	return nil
}

// Roles lists the assignable roles
func (s *UserService) Roles(ctx context.Context, cred idrive.Credential) ([]models.Role, error) {
	roles, err := s.backend.Roles(ctx, cred)
	if err != nil {
		return nil, mapBackendError(err, nil)
	}
	return roles, nil
}
