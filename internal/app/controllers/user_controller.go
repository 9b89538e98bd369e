package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/idriveapp/admin-gateway/internal/app/models/dto"
	"github.com/idriveapp/admin-gateway/internal/app/services"
	"github.com/idriveapp/admin-gateway/internal/middleware"
)

// UserController handles account administration
type UserController struct {
	userService *services.UserService
	logger      zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService, logger zerolog.Logger) *UserController {
	return &UserController{
		userService: userService,
		logger:      logger,
	}
}

// List returns every account
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.User "Users"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid session"
// @Failure 403 {object} dto.ErrorResponse "Missing permission"
// @Router /users [get]
func (c *UserController) List(ctx *gin.Context) {
	cred, ok := credential(ctx)
	if !ok {
		return
	}

	users, err := c.userService.List(ctx.Request.Context(), cred)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// Create registers a new account
// @Summary Create a user
// @Description Registers a new account. The backend issues a temporary password, returned once in the response for the admin to hand over.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUserRequest true "Account"
// @Success 201 {object} idrive.CreatedUser "Account with its temporary password"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 409 {object} dto.ErrorResponse "Duplicate mailbox or cedula"
// @Router /users [post]
func (c *UserController) Create(ctx *gin.Context) {
	cred, ok := credential(ctx)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	created, err := c.userService.Create(ctx.Request.Context(), cred, req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("User creation failed")
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// Update rewrites an account
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.UpdateUserRequest true "Account"
// @Success 200 {object} models.User "Account updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Unknown user"
// @Router /users/{id} [put]
func (c *UserController) Update(ctx *gin.Context) {
	cred, ok := credential(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	updated, err := c.userService.Update(ctx.Request.Context(), cred, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// Delete removes an account
// @Summary Delete a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.SuccessResponse "Account deleted"
// @Failure 404 {object} dto.ErrorResponse "Unknown user"
// @Router /users/{id} [delete]
func (c *UserController) Delete(ctx *gin.Context) {
	cred, ok := credential(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.userService.Delete(ctx.Request.Context(), cred, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Usuario eliminado."})
}

// Roles lists the assignable roles
// @Summary List roles
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Role "Roles"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid session"
// @Router /users/roles [get]
func (c *UserController) Roles(ctx *gin.Context) {
	cred, ok := credential(ctx)
	if !ok {
		return
	}

	roles, err := c.userService.Roles(ctx.Request.Context(), cred)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, roles)
}
