package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/idriveapp/admin-gateway/internal/app/services"
)

// MyClassesController handles the student's own views
type MyClassesController struct {
	studentService *services.StudentService
	logger         zerolog.Logger
}

// NewMyClassesController creates a new MyClassesController
func NewMyClassesController(studentService *services.StudentService, logger zerolog.Logger) *MyClassesController {
	return &MyClassesController{
		studentService: studentService,
		logger:         logger,
	}
}

// MyClasses returns the student's bookings and progress
// @Summary My classes
// @Description The logged-in student's bookings plus their progress through the thirteen required theory modules.
// @Tags my-classes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MyClassesResponse "Bookings and progress"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid session"
// @Failure 403 {object} dto.ErrorResponse "Missing permission"
// @Router /my-classes [get]
func (c *MyClassesController) MyClasses(ctx *gin.Context) {
	cred, ok := credential(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, c.studentService.MyClasses(ctx.Request.Context(), cred))
}

// Available lists the classes the student can still book
// @Summary Available classes
// @Description Classes scheduled in the future, with seats left, not already booked by the student.
// @Tags my-classes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AvailableClassesResponse "Available classes"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid session"
// @Router /my-classes/available [get]
func (c *MyClassesController) Available(ctx *gin.Context) {
	cred, ok := credential(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, c.studentService.Available(ctx.Request.Context(), cred))
}
