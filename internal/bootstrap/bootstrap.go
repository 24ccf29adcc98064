package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/iac-center/praktika-backend/internal/app/controllers"
	appMigrations "github.com/iac-center/praktika-backend/internal/app/migrations"
	appRepos "github.com/iac-center/praktika-backend/internal/app/repositories"
	appRoutes "github.com/iac-center/praktika-backend/internal/app/routes"
	appServices "github.com/iac-center/praktika-backend/internal/app/services"
	"github.com/iac-center/praktika-backend/internal/config"
	"github.com/iac-center/praktika-backend/internal/db"
	appMiddleware "github.com/iac-center/praktika-backend/internal/middleware"
	pkgAuth "github.com/iac-center/praktika-backend/internal/pkg/auth"
	"github.com/iac-center/praktika-backend/internal/pkg/helpers"
	"github.com/iac-center/praktika-backend/internal/pkg/logger"
	"github.com/iac-center/praktika-backend/internal/pkg/notifier"
	"github.com/iac-center/praktika-backend/internal/pkg/telegram"
	"github.com/iac-center/praktika-backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         appServices.AuthService
	RegistrationService appServices.RegistrationService
	LifecycleService    appServices.LifecycleService
	DirectoryService    appServices.DirectoryService
	RoleResolver        appServices.RoleResolver

	AuthController      *appControllers.AuthController
	StudentController   *appControllers.StudentController
	DirectoryController *appControllers.DirectoryController
	AuthMiddleware      *appMiddleware.AuthMiddleware

	Repos      *appRepos.Repositories
	JWTService *pkgAuth.JWTService
	Telegram   *telegram.Client
	Dispatcher *notifier.Dispatcher
	Logger     zerolog.Logger
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

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
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
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seeding is convenience, not correctness.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Telegram = telegram.NewClient(telegram.ClientConfig{
		Token:   cfg.Telegram.BotToken,
		BaseURL: cfg.Telegram.BaseURL,
		Timeout: helpers.ParseDuration(cfg.Telegram.Timeout, 10*time.Second),
	})

	deps.Dispatcher = notifier.NewDispatcher(deps.Telegram, notifier.DispatcherConfig{
		QueueSize: cfg.Notifier.QueueSize,
		Logger:    lgr,
	})

	deps.RoleResolver = appServices.NewRoleResolver(cfg, deps.Repos.CuratorRepository)

	deps.AuthService = appServices.NewAuthService(deps.JWTService, deps.RoleResolver, cfg.Telegram.BotToken)
	deps.RegistrationService = appServices.NewRegistrationService(deps.Repos.StudentRepository, deps.Dispatcher)
	deps.LifecycleService = appServices.NewLifecycleService(
		deps.Repos.StudentRepository,
		deps.Repos.CuratorRepository,
		deps.Dispatcher,
		helpers.ParseDuration(cfg.Notifier.DeleteDelay, 3*time.Second),
	)
	deps.DirectoryService = appServices.NewDirectoryService(
		deps.Repos.CuratorRepository,
		deps.Repos.FacilityRepository,
		deps.Repos.ApprenticeshipTypeRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.RoleResolver)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.StudentController = appControllers.NewStudentController(deps.RegistrationService, deps.LifecycleService)
	deps.DirectoryController = appControllers.NewDirectoryController(deps.DirectoryService)

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
		deps.StudentController,
		deps.DirectoryController,
		deps.AuthMiddleware,
	)

	return router
}
