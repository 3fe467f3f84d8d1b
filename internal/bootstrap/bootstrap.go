package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/studytrack/api/internal/app/controllers"
	appRepos "github.com/studytrack/api/internal/app/repositories"
	appRoutes "github.com/studytrack/api/internal/app/routes"
	appServices "github.com/studytrack/api/internal/app/services"
	"github.com/studytrack/api/internal/config"
	"github.com/studytrack/api/internal/db"
	appMiddleware "github.com/studytrack/api/internal/middleware"
	"github.com/studytrack/api/internal/pkg/logger"
	"github.com/studytrack/api/internal/pkg/validation"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService      appServices.StudentService
	SubjectService      appServices.SubjectService
	SessionService      appServices.SessionService
	AnalyticsService    appServices.AnalyticsService
	StudentController   *appControllers.StudentController
	SubjectController   *appControllers.SubjectController
	SessionController   *appControllers.SessionController
	AnalyticsController *appControllers.AnalyticsController
	Repos               *appRepos.Repositories
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

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore establishes the document store connection and ensures indexes.
func SetupStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.Mongo, error) {
	lgr.Info().Str("database", cfg.Database.Name).Msg("Connecting to document store...")
	store, err := db.NewMongo(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to document store")
		return nil, err
	}
	lgr.Info().Msg("Document store connection established.")

	if err := db.EnsureIndexes(ctx, store); err != nil {
		lgr.Error().Err(err).Msg("Failed to ensure indexes")
		_ = store.Close(ctx)
		return nil, err
	}
	lgr.Info().Msg("Collection indexes ensured.")

	return store, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(store *db.Mongo, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(store)

	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.SubjectService = appServices.NewSubjectService(deps.Repos.SubjectRepository)
	deps.SessionService = appServices.NewSessionService(deps.Repos.SessionRepository)
	deps.AnalyticsService = appServices.NewAnalyticsService(
		deps.Repos.SessionRepository,
		deps.Repos.StudentRepository,
		deps.Repos.SubjectRepository,
	)

	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.SubjectController = appControllers.NewSubjectController(deps.SubjectService)
	deps.SessionController = appControllers.NewSessionController(deps.SessionService)
	deps.AnalyticsController = appControllers.NewAnalyticsController(deps.AnalyticsService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, store *db.Mongo, lgr zerolog.Logger) (*gin.Engine, error) {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := validation.RegisterRules(); err != nil {
		return nil, fmt.Errorf("failed to register validation rules: %w", err)
	}

	router := gin.Default()
	router.Use(appMiddleware.RequestID())

	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.SubjectController,
		deps.SessionController,
		deps.AnalyticsController,
		store,
	)

	return router, nil
}
