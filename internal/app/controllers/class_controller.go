package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/idriveapp/admin-gateway/internal/app/models/dto"
	"github.com/idriveapp/admin-gateway/internal/app/services"
	"github.com/idriveapp/admin-gateway/internal/middleware"
)

// ClassController handles theory class administration
type ClassController struct {
	classService *services.ClassService
	logger       zerolog.Logger
}

// NewClassController creates a new ClassController
func NewClassController(classService *services.ClassService, logger zerolog.Logger) *ClassController {
	return &ClassController{
		classService: classService,
		logger:       logger,
	}
}

// List returns every scheduled class
// @Summary List classes
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Class "Classes"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid session"
// @Router /classes [get]
func (c *ClassController) List(ctx *gin.Context) {
	cred, ok := credential(ctx)
	if !ok {
		return
	}

	classes, err := c.classService.List(ctx.Request.Context(), cred)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, classes)
}

// Catalog returns the fixed theoretical curriculum
// @Summary Theory module catalog
// @Description The thirteen theoretical modules a class can be scheduled for. The create form offers these and nothing else.
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.TheoryModule "Catalog"
// @Router /classes/catalog [get]
func (c *ClassController) Catalog(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.classService.Catalog())
}

// FormOptions returns the reference data the class form needs
// @Summary Class form options
// @Description Teachers and rooms for the class form selects. A failed fetch degrades to an empty list with a notice.
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ClassFormOptions "Form options"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid session"
// @Router /classes/form-options [get]
func (c *ClassController) FormOptions(ctx *gin.Context) {
	cred, ok := credential(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, c.classService.FormOptions(ctx.Request.Context(), cred))
}

// Create schedules a new class
// @Summary Create a class
// @Description Schedules a new theory class. The name must match a catalog module; an omitted description takes the catalog text.
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ClassRequest true "Class"
// @Success 201 {object} models.Class "Class created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format, unknown module or bad date"
// @Failure 403 {object} dto.ErrorResponse "Missing permission"
// @Failure 409 {object} dto.ErrorResponse "Backend refused the class"
// @Router /classes [post]
func (c *ClassController) Create(ctx *gin.Context) {
	cred, ok := credential(ctx)
	if !ok {
		return
	}

	var req dto.ClassRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	created, err := c.classService.Create(ctx.Request.Context(), cred, req)
	if err != nil {
		c.logger.Warn().Err(err).Str("name", req.Name).Msg("Class creation failed")
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// Update rewrites an existing class
// @Summary Update a class
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID"
// @Param request body dto.ClassRequest true "Class"
// @Success 200 {object} models.Class "Class updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Unknown class"
// @Router /classes/{id} [put]
func (c *ClassController) Update(ctx *gin.Context) {
	cred, ok := credential(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.ClassRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	updated, err := c.classService.Update(ctx.Request.Context(), cred, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// Delete removes a class
// @Summary Delete a class
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID"
// @Success 200 {object} dto.SuccessResponse "Class deleted"
// @Failure 404 {object} dto.ErrorResponse "Unknown class"
// @Router /classes/{id} [delete]
func (c *ClassController) Delete(ctx *gin.Context) {
	cred, ok := credential(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.classService.Delete(ctx.Request.Context(), cred, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Clase eliminada."})
}
