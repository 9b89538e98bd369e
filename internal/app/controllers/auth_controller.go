package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/idriveapp/admin-gateway/internal/app/models/dto"
	"github.com/idriveapp/admin-gateway/internal/app/services"
	"github.com/idriveapp/admin-gateway/internal/middleware"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Login handles user authentication
// @Summary Log in
// @Description Authenticates against the scheduling backend and returns a gateway session token. The response flags accounts that must change their temporary password before doing anything else.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse "Session created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 502 {object} dto.ErrorResponse "Backend unavailable"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Me returns the logged-in user's identity
// @Summary Current session
// @Description Returns the identity and permissions carried by the session token.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Session identity"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid session"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	perms, _ := middleware.PermissionsFrom(ctx)
	ctx.JSON(http.StatusOK, gin.H{
		"userId":      ctx.GetInt64(middleware.ContextUserID),
		"name":        ctx.GetString(middleware.ContextUserName),
		"roleId":      ctx.GetInt64(middleware.ContextRoleID),
		"permissions": perms.Strings(),
	})
}

// ChangePassword sets a new password for the logged-in user
// @Summary Change password
// @Description Replaces the current password. Used by the forced change after a first login with a temporary password.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChangePasswordRequest true "New password"
// @Success 200 {object} dto.SuccessResponse "Password changed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid session"
// @Router /auth/change-password [put]
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	cred, ok := credential(ctx)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.authService.ChangePassword(ctx.Request.Context(), cred, req); err != nil {
		c.logger.Warn().Err(err).Msg("Password change failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Contraseña actualizada correctamente."})
}

// ForgotPassword starts the password reset flow
// @Summary Request a password reset
// @Description Sends a reset code to the mailbox when it exists. Always answers success so mailboxes cannot be enumerated.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ForgotPasswordRequest true "Account mailbox"
// @Success 200 {object} dto.SuccessResponse "Reset requested"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Router /auth/forgot-password [post]
func (c *AuthController) ForgotPassword(ctx *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.authService.RequestPasswordReset(ctx.Request.Context(), req); err != nil {
		c.logger.Warn().Err(err).Msg("Password reset request failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Si el correo está registrado, recibirás un código de recuperación.",
	})
}

// ResetPassword completes the password reset flow
// @Summary Reset the password with an emailed code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Reset code and new password"
// @Success 200 {object} dto.SuccessResponse "Password reset"
// @Failure 400 {object} dto.ErrorResponse "Invalid or expired code"
// @Router /auth/reset-password [post]
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var req dto.ResetPasswordRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.authService.ResetPassword(ctx.Request.Context(), req); err != nil {
		c.logger.Warn().Err(err).Msg("Password reset failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Contraseña restablecida correctamente."})
}
