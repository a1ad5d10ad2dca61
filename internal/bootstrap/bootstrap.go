package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/alumnihub/internal/app/controllers"
	appMigrations "github.com/yigit/alumnihub/internal/app/migrations"
	appRepos "github.com/yigit/alumnihub/internal/app/repositories"
	mongorepo "github.com/yigit/alumnihub/internal/app/repositories/mongo"
	appRoutes "github.com/yigit/alumnihub/internal/app/routes"
	appServices "github.com/yigit/alumnihub/internal/app/services"
	"github.com/yigit/alumnihub/internal/config"
	"github.com/yigit/alumnihub/internal/db"
	appMiddleware "github.com/yigit/alumnihub/internal/middleware"
	pkgAuth "github.com/yigit/alumnihub/internal/pkg/auth"
	"github.com/yigit/alumnihub/internal/pkg/email"
	"github.com/yigit/alumnihub/internal/pkg/filestorage"
	"github.com/yigit/alumnihub/internal/pkg/helpers"
	"github.com/yigit/alumnihub/internal/pkg/logger"
)

// UploadsPath is the URL prefix local uploads are served under
const UploadsPath = "/uploads"

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService    appServices.AuthService
	JobService     appServices.JobService
	StoryService   appServices.StoryService
	PostService    appServices.PostService
	EventService   appServices.EventService
	InquiryService appServices.InquiryService

	Handlers appRoutes.Handlers

	Store       *Store
	JWTService  *pkgAuth.JWTService
	FileStorage filestorage.FileStorage
	Notifier    email.Notifier
	Logger      zerolog.Logger
}

// Store is an open repository backend
type Store struct {
	Driver string
	Repos  *appRepos.Repositories
	// Ping is nil for the memory driver
	Ping  func(ctx context.Context) error
	Close func(ctx context.Context) error
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.EqualFold(cfg.Logging.Format, "text"),
	})

	lgr := logger.Get()
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// OpenStore connects the configured database driver and brings its schema up to date
func OpenStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Store, error) {
	lgr.Info().Str("driver", cfg.Database.Driver).Msg("Opening data store...")

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		pg, err := db.NewPostgresDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		lgr.Info().Msg("Running database migrations...")
		if err := appMigrations.NewMigrator(pg.Pool).Migrate(ctx); err != nil {
			_ = pg.Close(ctx)
			return nil, fmt.Errorf("database migrations failed: %w", err)
		}
		return &Store{
			Driver: cfg.Database.Driver,
			Repos:  appRepos.NewPostgresRepositories(pg.Pool),
			Ping:   pg.Ping,
			Close:  pg.Close,
		}, nil

	case config.DriverMongo:
		mdb, err := db.NewMongoDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := mongorepo.EnsureIndexes(ctx, mdb.Database); err != nil {
			_ = mdb.Close(ctx)
			return nil, fmt.Errorf("failed to create mongo indexes: %w", err)
		}
		return &Store{
			Driver: cfg.Database.Driver,
			Repos:  appRepos.NewMongoRepositories(mdb.Database),
			Ping:   mdb.Ping,
			Close:  mdb.Close,
		}, nil

	case config.DriverMemory:
		lgr.Warn().Msg("Using the in-memory store, data is lost on restart")
		return &Store{
			Driver: cfg.Database.Driver,
			Repos:  appRepos.NewMemoryRepositories(),
			Close:  func(context.Context) error { return nil },
		}, nil
	}

	return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
}

// NewFileStorage builds the configured upload backend
func NewFileStorage(ctx context.Context, cfg *config.Config) (filestorage.FileStorage, error) {
	switch cfg.Storage.Type {
	case config.StorageS3:
		return filestorage.NewS3Storage(ctx, filestorage.S3Config{
			Bucket:    cfg.Storage.Bucket,
			Region:    cfg.Storage.Region,
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			PublicURL: cfg.Storage.PublicURL,
		})
	default:
		return filestorage.NewLocalStorage(cfg.Server.StoragePath, cfg.PublicBaseURL()+UploadsPath)
	}
}

// NewNotifier builds the inquiry mail notifier. Without SMTP settings it only logs.
func NewNotifier(cfg *config.Config, lgr zerolog.Logger) email.Notifier {
	return email.NewSMTPNotifier(email.SMTPConfig{
		Host:          cfg.SMTP.Host,
		Port:          cfg.SMTP.Port,
		Username:      cfg.SMTP.Username,
		Password:      cfg.SMTP.Password,
		FromName:      cfg.SMTP.FromName,
		FromEmail:     cfg.SMTP.FromEmail,
		NotifyAddress: cfg.SMTP.NotifyAddress,
	}, lgr.With().Str("component", "mailer").Logger())
}

// NewJWTService builds the token service from the jwt section
func NewJWTService(cfg *config.Config) *pkgAuth.JWTService {
	return pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 720*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})
}

// BuildDependencies initializes application services, controllers and middleware.
func BuildDependencies(cfg *config.Config, store *Store, storage filestorage.FileStorage, notifier email.Notifier, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{
		Store:       store,
		JWTService:  NewJWTService(cfg),
		FileStorage: storage,
		Notifier:    notifier,
		Logger:      lgr,
	}
	repos := store.Repos

	deps.AuthService = appServices.NewAuthService(repos.UserRepository, deps.JWTService, lgr)
	deps.JobService = appServices.NewJobService(repos.JobRepository, repos.UserRepository, lgr)
	deps.StoryService = appServices.NewStoryService(repos.StoryRepository, repos.UserRepository, storage, lgr)
	deps.PostService = appServices.NewPostService(repos.PostRepository, repos.UserRepository, storage, lgr)
	deps.EventService = appServices.NewEventService(repos.EventRepository, repos.UserRepository, lgr)
	deps.InquiryService = appServices.NewInquiryService(repos.InquiryRepository, notifier, lgr)

	deps.Handlers = appRoutes.Handlers{
		Auth:    appControllers.NewAuthController(deps.AuthService, lgr),
		Job:     appControllers.NewJobController(deps.JobService),
		Story:   appControllers.NewStoryController(deps.StoryService, storage),
		Post:    appControllers.NewPostController(deps.PostService, storage),
		Event:   appControllers.NewEventController(deps.EventService),
		Inquiry: appControllers.NewInquiryController(deps.InquiryService),
		Health:  appControllers.NewHealthController(store.Driver, store.Ping),

		AuthMiddleware:   appMiddleware.NewAuthMiddleware(deps.JWTService, repos.UserRepository),
		UploadMiddleware: appMiddleware.NewUploadMiddleware(storage, cfg.Server.MaxUploadMB),
	}

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	}

	if err := appMiddleware.RegisterBindingRules(); err != nil {
		return nil, fmt.Errorf("failed to register validation rules: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger())
	router.MaxMultipartMemory = int64(cfg.Server.MaxUploadMB) << 20

	if !cfg.IsProduction() {
		appRoutes.SetupSwagger(router)
	}

	if cfg.Storage.Type == config.StorageLocal {
		router.Static(UploadsPath, cfg.Server.StoragePath)
		lgr.Info().Str("path", cfg.Server.StoragePath).Msg("Static file serving configured for uploads directory")
	}

	appRoutes.SetupRouter(router, deps.Handlers)
	return router, nil
}
