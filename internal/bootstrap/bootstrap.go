package bootstrap

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/idriveapp/admin-gateway/internal/app/controllers"
	appRoutes "github.com/idriveapp/admin-gateway/internal/app/routes"
	appServices "github.com/idriveapp/admin-gateway/internal/app/services"
	"github.com/idriveapp/admin-gateway/internal/config"
	"github.com/idriveapp/admin-gateway/internal/idrive"
	appMiddleware "github.com/idriveapp/admin-gateway/internal/middleware"
	pkgAuth "github.com/idriveapp/admin-gateway/internal/pkg/auth"
	"github.com/idriveapp/admin-gateway/internal/pkg/helpers"
	"github.com/idriveapp/admin-gateway/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Backend             *idrive.Client
	SessionService      *pkgAuth.SessionService
	AuthService         *appServices.AuthService
	ScheduleService     *appServices.ScheduleService
	ClassService        *appServices.ClassService
	UserService         *appServices.UserService
	StudentService      *appServices.StudentService
	DashboardService    *appServices.DashboardService
	AuthController      *appControllers.AuthController
	ScheduleController  *appControllers.ScheduleController
	ClassController     *appControllers.ClassController
	UserController      *appControllers.UserController
	MyClassesController *appControllers.MyClassesController
	DashboardController *appControllers.DashboardController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes the backend client, services and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Backend = idrive.NewClient(idrive.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: helpers.ParseDuration(cfg.Backend.Timeout, 15*time.Second),
	}, logger.Component("idrive"))
	lgr.Info().Str("baseUrl", cfg.Backend.BaseURL).Msg("Backend client configured")

	deps.SessionService = pkgAuth.NewSessionService(pkgAuth.SessionConfig{
		SecretKey:   cfg.Session.Secret,
		Expiration:  helpers.ParseDuration(cfg.Session.Expiration, 8*time.Hour),
		TokenIssuer: cfg.Session.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Backend, deps.SessionService, logger.Component("auth"))
	deps.ScheduleService = appServices.NewScheduleService(deps.Backend, logger.Component("schedule"))
	deps.ClassService = appServices.NewClassService(deps.Backend, logger.Component("classes"))
	deps.UserService = appServices.NewUserService(deps.Backend, logger.Component("users"))
	deps.StudentService = appServices.NewStudentService(deps.Backend, logger.Component("my-classes"))
	deps.DashboardService = appServices.NewDashboardService(deps.Backend, logger.Component("dashboard"))

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.SessionService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.Logger)
	deps.ScheduleController = appControllers.NewScheduleController(deps.ScheduleService, deps.Logger)
	deps.ClassController = appControllers.NewClassController(deps.ClassService, deps.Logger)
	deps.UserController = appControllers.NewUserController(deps.UserService, deps.Logger)
	deps.MyClassesController = appControllers.NewMyClassesController(deps.StudentService, deps.Logger)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService, deps.Logger)

	if err := appMiddleware.RegisterValidators(); err != nil {
		lgr.Error().Err(err).Msg("Failed to register custom validators")
		return nil, err
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr), gin.Recovery())

	appRoutes.SetupSwagger(router)

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ScheduleController,
		deps.ClassController,
		deps.UserController,
		deps.MyClassesController,
		deps.DashboardController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
