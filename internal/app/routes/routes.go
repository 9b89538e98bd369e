package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/idriveapp/admin-gateway/internal/app/controllers"
	"github.com/idriveapp/admin-gateway/internal/app/models"
	"github.com/idriveapp/admin-gateway/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	scheduleController *controllers.ScheduleController,
	classController *controllers.ClassController,
	userController *controllers.UserController,
	myClassesController *controllers.MyClassesController,
	dashboardController *controllers.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/forgot-password", authController.ForgotPassword)
		auth.POST("/reset-password", authController.ResetPassword)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.SessionAuth())
	{
		authenticated.GET("/auth/me", authController.Me)
		authenticated.PUT("/auth/change-password", authController.ChangePassword)

		authenticated.GET("/dashboard", dashboardController.Stats)

		// Schedule routes. The calendar and day views need the calendar
		// permission; the bookings table needs the broader one.
		schedule := authenticated.Group("/schedule")
		{
			calendarProtected := schedule.Group("")
			calendarProtected.Use(authMiddleware.PermissionRequired(models.PermCalendarView))
			{
				calendarProtected.GET("/events", scheduleController.Calendar)
				calendarProtected.GET("/days/:date", scheduleController.Day)
			}

			bookingsProtected := schedule.Group("/bookings")
			bookingsProtected.Use(authMiddleware.PermissionRequired(models.PermBookingsViewAll))
			{
				bookingsProtected.GET("", scheduleController.ListBookings)
				bookingsProtected.POST("", scheduleController.Book)
				bookingsProtected.DELETE("/:id", scheduleController.Cancel)
			}
		}

		// Class routes. Reads are open to any authenticated user so the
		// calendar pages can resolve details; writes need the create grant.
		classes := authenticated.Group("/classes")
		{
			classes.GET("", classController.List)
			classes.GET("/catalog", classController.Catalog)
			classes.GET("/form-options", classController.FormOptions)

			classesProtected := classes.Group("")
			classesProtected.Use(authMiddleware.PermissionRequired(models.PermClassesCreate))
			{
				classesProtected.POST("", classController.Create)
				classesProtected.PUT("/:id", classController.Update)
				classesProtected.DELETE("/:id", classController.Delete)
			}
		}

		// User administration routes
		users := authenticated.Group("/users")
		users.Use(authMiddleware.PermissionRequired(models.PermUsersRead))
		{
			users.GET("", userController.List)
			users.GET("/roles", userController.Roles)
			users.POST("", userController.Create)
			users.PUT("/:id", userController.Update)
			users.DELETE("/:id", userController.Delete)
		}

		// Student routes
		myClasses := authenticated.Group("/my-classes")
		myClasses.Use(authMiddleware.PermissionRequired(models.PermMyClassesView))
		{
			myClasses.GET("", myClassesController.MyClasses)
			myClasses.GET("/available", myClassesController.Available)
		}
	}
}
