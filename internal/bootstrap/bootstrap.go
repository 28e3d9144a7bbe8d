package bootstrap

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/svit/internhub/internal/app/controllers"
	appRoutes "github.com/svit/internhub/internal/app/routes"
	appServices "github.com/svit/internhub/internal/app/services"
	"github.com/svit/internhub/internal/config"
	"github.com/svit/internhub/internal/datastore"
	appMiddleware "github.com/svit/internhub/internal/middleware"
	pkgAuth "github.com/svit/internhub/internal/pkg/auth"
	"github.com/svit/internhub/internal/pkg/logger"
	"github.com/svit/internhub/internal/seed"
	"github.com/svit/internhub/internal/storage"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Storage           storage.Storage
	Store             *datastore.Store
	Watcher           *storage.Watcher // nil unless the file driver has watching enabled
	AuthService       *appServices.AuthService
	StudentService    *appServices.StudentService
	InternshipService *appServices.InternshipService
	SessionService    *appServices.CRTSessionService
	AuthController    *appControllers.AuthController
	StudentController *appControllers.StudentController
	InternshipCtrl    *appControllers.InternshipController
	SessionController *appControllers.CRTSessionController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	JWTService        *pkgAuth.JWTService
	Logger            zerolog.Logger
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

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStorage opens the durable substrate selected by configuration.
func SetupStorage(cfg *config.Config, lgr zerolog.Logger) (storage.Storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		lgr.Info().Msg("Using in-memory storage (state is lost on exit)")
		return storage.NewMemoryStorage(), nil
	case config.DriverFile:
		lgr.Info().Str("path", cfg.Storage.Path).Msg("Using file storage")
		return storage.NewFileStorage(cfg.Storage.Path)
	case config.DriverSQLite:
		lgr.Info().Str("path", cfg.Storage.Path).Msg("Using SQLite storage")
		return storage.NewSQLiteStorage(cfg.Storage.Path)
	case config.DriverPostgres:
		lgr.Info().Msg("Using PostgreSQL storage")
		return storage.NewPostgresStorage(cfg.Storage.DSN)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// BuildDependencies wires the store, services, controllers and middleware.
func BuildDependencies(cfg *config.Config, st storage.Storage, lgr zerolog.Logger) (*Dependencies, error) {
	store := datastore.New(st, lgr)

	users, err := seed.Users()
	if err != nil {
		return nil, fmt.Errorf("failed to seed portal users: %w", err)
	}

	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  cfg.AccessTokenExp(),
		RefreshTokenExp: cfg.RefreshTokenExp(),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	authService := appServices.NewAuthService(users, jwtService)
	studentService := appServices.NewStudentService(store)
	internshipService := appServices.NewInternshipService(store)
	sessionService := appServices.NewCRTSessionService(store)

	deps := &Dependencies{
		Storage:           st,
		Store:             store,
		AuthService:       authService,
		StudentService:    studentService,
		InternshipService: internshipService,
		SessionService:    sessionService,
		AuthController:    appControllers.NewAuthController(authService),
		StudentController: appControllers.NewStudentController(studentService, internshipService),
		InternshipCtrl:    appControllers.NewInternshipController(internshipService),
		SessionController: appControllers.NewCRTSessionController(sessionService),
		AuthMiddleware:    appMiddleware.NewAuthMiddleware(jwtService),
		JWTService:        jwtService,
		Logger:            lgr,
	}

	if cfg.Storage.Watch {
		if fileStorage, ok := st.(*storage.FileStorage); ok {
			watcher, err := storage.NewWatcher(fileStorage, func(key string) {
				lgr.Info().Str("key", key).Msg("Substrate changed externally, reloading collections")
				store.Reload()
			}, lgr)
			if err != nil {
				return nil, fmt.Errorf("failed to create storage watcher: %w", err)
			}
			deps.Watcher = watcher
		}
	}

	return deps, nil
}

// SetupRouter builds the gin engine with all routes and middleware.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.StudentController,
		deps.InternshipCtrl,
		deps.SessionController,
		deps.AuthMiddleware,
	)

	lgr.Info().Msg("Router configured")
	return router
}
