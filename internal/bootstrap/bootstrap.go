package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/avaldez/inscripciones/internal/app/controllers"
	appMigrations "github.com/avaldez/inscripciones/internal/app/migrations"
	appRepos "github.com/avaldez/inscripciones/internal/app/repositories"
	appRoutes "github.com/avaldez/inscripciones/internal/app/routes"
	appServices "github.com/avaldez/inscripciones/internal/app/services"
	"github.com/avaldez/inscripciones/internal/config"
	"github.com/avaldez/inscripciones/internal/db"
	appMiddleware "github.com/avaldez/inscripciones/internal/middleware"
	"github.com/avaldez/inscripciones/internal/pkg/logger"
	"github.com/avaldez/inscripciones/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CatalogService         *appServices.CatalogService
	RegistrationService    *appServices.RegistrationService
	CatalogController      *appControllers.CatalogController
	RegistrationController *appControllers.RegistrationController
	Repos                  *appRepos.Repositories
	Logger                 zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds the catalog.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Seed the catalog after migrations. Startup continues even if seeding
	// fails, the API still serves whatever catalog already exists.
	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed catalog data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(database *db.PostgresDB, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.CatalogService = appServices.NewCatalogService(
		deps.Repos.ProgramRepository,
		deps.Repos.AcademicYearRepository,
		deps.Repos.SubjectRepository,
	)
	deps.RegistrationService = appServices.NewRegistrationService(
		database,
		deps.Repos.StudentRepository,
		deps.Repos.RegistrationRepository,
		deps.Repos.RegistrationRepository,
	)

	deps.CatalogController = appControllers.NewCatalogController(deps.CatalogService)
	deps.RegistrationController = appControllers.NewRegistrationController(deps.RegistrationService, lgr)

	return deps
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
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))

	// The form and the admin dashboard are served from another origin
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	appRoutes.SetupRouter(router,
		deps.CatalogController,
		deps.RegistrationController,
	)

	return router
}
