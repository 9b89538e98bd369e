package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/idriveapp/admin-gateway/internal/app/models/dto"
	"github.com/idriveapp/admin-gateway/internal/idrive"
	"github.com/idriveapp/admin-gateway/internal/pkg/apperrors"
	"github.com/idriveapp/admin-gateway/internal/pkg/auth"
)

// AuthBackend is the backend surface the auth service consumes
type AuthBackend interface {
	Login(ctx context.Context, payload idrive.LoginPayload) (idrive.LoginResult, error)
	ChangePassword(ctx context.Context, cred idrive.Credential, newPassword string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// AuthService proxies authentication to the backend and mints gateway
// sessions. The backend's access token never reaches the browser; it rides
// inside the session token and is re-attached on every proxied call.
type AuthService struct {
	backend  AuthBackend
	sessions *auth.SessionService
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(backend AuthBackend, sessions *auth.SessionService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		backend:  backend,
		sessions: sessions,
		logger:   logger,
	}
}

// Login authenticates against the backend and returns a gateway session
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	result, err := s.backend.Login(ctx, idrive.LoginPayload{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if apiErr, ok := idrive.AsAPIError(err); ok && (apiErr.IsUnauthorized() || apiErr.StatusCode == 400) {
			return dto.LoginResponse{}, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Correo o contraseña incorrectos.")
		}
		return dto.LoginResponse{}, mapBackendError(err, apperrors.ErrUserNotFound)
	}

	token, expiresIn, err := s.sessions.Generate(result.UserID, result.Name, result.RoleID, result.Permissions, result.AccessToken)
	if err != nil {
		s.logger.Error().Err(err).Int64("userId", result.UserID).Msg("Session token generation failed")
		return dto.LoginResponse{}, apperrors.NewCustomError(err, "could not create the session")
	}

	s.logger.Info().Int64("userId", result.UserID).Int64("roleId", result.RoleID).Msg("User logged in")
	return dto.LoginResponse{
		AccessToken:           token,
		TokenType:             "Bearer",
		ExpiresIn:             int64(expiresIn),
		RequirePasswordChange: result.RequirePasswordChange,
		UserID:                result.UserID,
		Name:                  result.Name,
		RoleID:                result.RoleID,
		Permissions:           result.Permissions,
	}, nil
}

// ChangePassword sets a new password for the logged-in user. The backend
// validates the current password server-side during the forced-change flow,
// so only the new one is forwarded.
func (s *AuthService) ChangePassword(ctx context.Context, cred idrive.Credential, req dto.ChangePasswordRequest) error {
	if err := s.backend.ChangePassword(ctx, cred, req.NewPassword); err != nil {
		return mapBackendError(err, apperrors.ErrUserNotFound)
	}
	return nil
}

// RequestPasswordReset starts the emailed reset flow. A missing mailbox is
// reported as success so the endpoint cannot be used to enumerate accounts.
func (s *AuthService) RequestPasswordReset(ctx context.Context, req dto.ForgotPasswordRequest) error {
	if err := s.backend.RequestPasswordReset(ctx, req.Email); err != nil {
		if apiErr, ok := idrive.AsAPIError(err); ok && apiErr.IsNotFound() {
			s.logger.Info().Str("email", req.Email).Msg("Password reset requested for unknown mailbox")
			return nil
		}
		return mapBackendError(err, nil)
	}
	return nil
}

// ResetPassword completes the reset flow with the emailed code
func (s *AuthService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	if err := s.backend.ResetPassword(ctx, req.Code, req.NewPassword); err != nil {
		if apiErr, ok := idrive.AsAPIError(err); ok && (apiErr.IsNotFound() || apiErr.StatusCode == 400) {
			return apperrors.NewBadRequestError("El código de recuperación no es válido o ya expiró.")
		}
		return mapBackendError(err, nil)
	}
	return nil
}
