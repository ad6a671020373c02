package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/muktarbdulkader/campus-connector/internal/app/controllers"
	appMigrations "github.com/muktarbdulkader/campus-connector/internal/app/migrations"
	appRepos "github.com/muktarbdulkader/campus-connector/internal/app/repositories"
	appRoutes "github.com/muktarbdulkader/campus-connector/internal/app/routes"
	appServices "github.com/muktarbdulkader/campus-connector/internal/app/services"
	"github.com/muktarbdulkader/campus-connector/internal/config"
	"github.com/muktarbdulkader/campus-connector/internal/db"
	appMiddleware "github.com/muktarbdulkader/campus-connector/internal/middleware"
	pkgAuth "github.com/muktarbdulkader/campus-connector/internal/pkg/auth"
	"github.com/muktarbdulkader/campus-connector/internal/pkg/helpers"
	"github.com/muktarbdulkader/campus-connector/internal/pkg/logger"
	"github.com/muktarbdulkader/campus-connector/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService        appServices.AuthService
	UserService        appServices.UserService
	ConnectionService  appServices.ConnectionService
	EventService       appServices.EventService
	GroupService       appServices.GroupService
	MarketplaceService appServices.MarketplaceService
	LostFoundService   appServices.LostFoundService
	RideService        appServices.RideService
	ExamService        appServices.ExamService
	DashboardService   appServices.DashboardService

	AuthController        *appControllers.AuthController
	UserController        *appControllers.UserController
	ConnectionController  *appControllers.ConnectionController
	EventController       *appControllers.EventController
	GroupController       *appControllers.GroupController
	MarketplaceController *appControllers.MarketplaceController
	LostFoundController   *appControllers.LostFoundController
	RideController        *appControllers.RideController
	ExamController        *appControllers.ExamController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Store          appRepos.RecordStore
	JWTService     *pkgAuth.JWTService
	Logger         zerolog.Logger
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

// SetupStore opens the record store selected by cfg.Store.Driver. The
// postgres driver runs migrations before returning; the memory driver is
// meant for development and tests and starts empty.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (appRepos.RecordStore, error) {
	switch strings.ToLower(cfg.Store.Driver) {
	case "memory":
		lgr.Info().Msg("Using in-memory record store")
		return appRepos.NewMemoryStore(), nil

	case "postgres":
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

		if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
			lgr.Error().Err(err).Msg("Database migration error")
			dbPool.Close()
			return nil, fmt.Errorf("database migrations failed: %w", err)
		}
		lgr.Info().Msg("Database migrations successfully applied.")

		return appRepos.NewPostgresStore(dbPool), nil

	default:
		return nil, fmt.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}

// BuildDependencies initializes the record store consumers, services, and controllers.
func BuildDependencies(cfg *config.Config, store appRepos.RecordStore, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, Store: store}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	// Services. The connection service feeds both recommendation surfaces
	// and the dashboard counters.
	deps.AuthService = appServices.NewAuthService(store, deps.JWTService, lgr)
	deps.UserService = appServices.NewUserService(store)
	deps.ConnectionService = appServices.NewConnectionService(store, lgr)
	deps.EventService = appServices.NewEventService(store)
	deps.GroupService = appServices.NewGroupService(store, deps.ConnectionService)
	deps.MarketplaceService = appServices.NewMarketplaceService(store)
	deps.LostFoundService = appServices.NewLostFoundService(store)
	deps.RideService = appServices.NewRideService(store)
	deps.ExamService = appServices.NewExamService(store, deps.ConnectionService)
	deps.DashboardService = appServices.NewDashboardService(store, deps.ConnectionService)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UserController = appControllers.NewUserController(deps.UserService, deps.DashboardService)
	deps.ConnectionController = appControllers.NewConnectionController(deps.ConnectionService)
	deps.EventController = appControllers.NewEventController(deps.EventService)
	deps.GroupController = appControllers.NewGroupController(deps.GroupService)
	deps.MarketplaceController = appControllers.NewMarketplaceController(deps.MarketplaceService)
	deps.LostFoundController = appControllers.NewLostFoundController(deps.LostFoundService)
	deps.RideController = appControllers.NewRideController(deps.RideService)
	deps.ExamController = appControllers.NewExamController(deps.ExamService)

	// Sample campus data for development installs. A non-empty store is
	// left untouched.
	if strings.ToLower(cfg.Server.Mode) != "production" {
		if err := seed.LoadSampleData(context.Background(), store, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to load sample data, proceeding anyway...")
		}
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

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.ConnectionController,
		deps.EventController,
		deps.GroupController,
		deps.MarketplaceController,
		deps.LostFoundController,
		deps.RideController,
		deps.ExamController,
		deps.AuthMiddleware,
	)

	return router
}
