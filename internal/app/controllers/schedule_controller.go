package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/idriveapp/admin-gateway/internal/app/models/dto"
	"github.com/idriveapp/admin-gateway/internal/app/services"
	"github.com/idriveapp/admin-gateway/internal/middleware"
)

// ScheduleController handles calendar and booking operations
type ScheduleController struct {
	scheduleService *services.ScheduleService
	logger          zerolog.Logger
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(scheduleService *services.ScheduleService, logger zerolog.Logger) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
		logger:          logger,
	}
}

// Calendar returns the full schedule as calendar events
// @Summary Calendar events
// @Description Projects every scheduled class onto a calendar event, colored by fullness. When a source collection cannot be loaded the response carries a notice and renders the rest.
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CalendarResponse "Calendar events"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid session"
// @Failure 403 {object} dto.ErrorResponse "Missing permission"
// @Router /schedule/events [get]
func (c *ScheduleController) Calendar(ctx *gin.Context) {
	cred, ok := credential(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, c.scheduleService.Events(ctx.Request.Context(), cred))
}

// Day lists the classes of a single day
// @Summary Classes on a day
// @Description Lists the classes scheduled on the given day with their occupancy. The date is a YYYY-MM-DD date key.
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param date path string true "Day, YYYY-MM-DD"
// @Success 200 {object} dto.DayResponse "Day view"
// @Failure 400 {object} dto.ErrorResponse "Malformed date"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid session"
// @Router /schedule/days/{date} [get]
func (c *ScheduleController) Day(ctx *gin.Context) {
	cred, ok := credential(ctx)
	if !ok {
		return
	}

	day, err := c.scheduleService.Day(ctx.Request.Context(), cred, ctx.Param("date"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, day)
}

// ListBookings returns the active bookings
// @Summary Active bookings
// @Description Lists the bookings that still occupy a seat, for the cancellation picker.
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.BookingListResponse "Bookings"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid session"
// @Failure 403 {object} dto.ErrorResponse "Missing permission"
// @Router /schedule/bookings [get]
func (c *ScheduleController) ListBookings(ctx *gin.Context) {
	cred, ok := credential(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, c.scheduleService.ListBookings(ctx.Request.Context(), cred))
}

// Book reserves a seat for a student
// @Summary Book a class
// @Description Reserves a seat on a class for the student identified by cedula. Refusals from the backend, a full class for example, are surfaced verbatim.
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BookingRequest true "Booking"
// @Success 201 {object} models.Booking "Booking created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Unknown student or class"
// @Failure 409 {object} dto.ErrorResponse "Backend refused the booking"
// @Router /schedule/bookings [post]
func (c *ScheduleController) Book(ctx *gin.Context) {
	cred, ok := credential(ctx)
	if !ok {
		return
	}

	var req dto.BookingRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	booking, err := c.scheduleService.Book(ctx.Request.Context(), cred, req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("classId", req.ClassID).Msg("Booking failed")
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, booking)
}

// Cancel releases a booking
// @Summary Cancel a booking
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} dto.SuccessResponse "Booking cancelled"
// @Failure 400 {object} dto.ErrorResponse "Invalid identifier"
// @Failure 404 {object} dto.ErrorResponse "Unknown booking"
// @Router /schedule/bookings/{id} [delete]
func (c *ScheduleController) Cancel(ctx *gin.Context) {
	cred, ok := credential(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.scheduleService.Cancel(ctx.Request.Context(), cred, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Agendamiento cancelado."})
}
