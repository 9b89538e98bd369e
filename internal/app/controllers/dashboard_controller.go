package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/idriveapp/admin-gateway/internal/app/models"
	"github.com/idriveapp/admin-gateway/internal/app/services"
	"github.com/idriveapp/admin-gateway/internal/middleware"
)

// DashboardController handles the landing page statistics
type DashboardController struct {
	dashboardService *services.DashboardService
	logger           zerolog.Logger
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService, logger zerolog.Logger) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// Stats returns the dashboard numbers
// @Summary Dashboard statistics
// @Description Classes this month, new users, occupancy rate and pending bookings. Numbers whose source collection the caller cannot read are omitted rather than errored.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardResponse "Statistics"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid session"
// @Router /dashboard [get]
func (c *DashboardController) Stats(ctx *gin.Context) {
	cred, ok := credential(ctx)
	if !ok {
		return
	}

	perms, ok := middleware.PermissionsFrom(ctx)
	if !ok {
		perms = models.NewPermissionSet(nil)
	}
	ctx.JSON(http.StatusOK, c.dashboardService.Stats(ctx.Request.Context(), cred, perms))
}
