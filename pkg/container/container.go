package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/phongnguyen123/treow-physio-sub000/internal/config"
	infraCache "github.com/phongnguyen123/treow-physio-sub000/internal/infrastructure/cache"
	"github.com/phongnguyen123/treow-physio-sub000/internal/infrastructure/database"
	"github.com/phongnguyen123/treow-physio-sub000/internal/infrastructure/email"
	"github.com/phongnguyen123/treow-physio-sub000/internal/infrastructure/queue"
	"github.com/phongnguyen123/treow-physio-sub000/internal/infrastructure/storage"
	"github.com/phongnguyen123/treow-physio-sub000/pkg/cache"
	"github.com/phongnguyen123/treow-physio-sub000/pkg/logger"
	"github.com/phongnguyen123/treow-physio-sub000/pkg/session"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/author"
	authorHandler "github.com/phongnguyen123/treow-physio-sub000/internal/domains/author/handler"
	authorRepo "github.com/phongnguyen123/treow-physio-sub000/internal/domains/author/repository"
	authorService "github.com/phongnguyen123/treow-physio-sub000/internal/domains/author/service"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/booking"
	bookingHandler "github.com/phongnguyen123/treow-physio-sub000/internal/domains/booking/handler"
	bookingRepo "github.com/phongnguyen123/treow-physio-sub000/internal/domains/booking/repository"
	bookingService "github.com/phongnguyen123/treow-physio-sub000/internal/domains/booking/service"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/newsletter"
	newsletterHandler "github.com/phongnguyen123/treow-physio-sub000/internal/domains/newsletter/handler"
	newsletterRepo "github.com/phongnguyen123/treow-physio-sub000/internal/domains/newsletter/repository"
	newsletterService "github.com/phongnguyen123/treow-physio-sub000/internal/domains/newsletter/service"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/post"
	postHandler "github.com/phongnguyen123/treow-physio-sub000/internal/domains/post/handler"
	postRepo "github.com/phongnguyen123/treow-physio-sub000/internal/domains/post/repository"
	postService "github.com/phongnguyen123/treow-physio-sub000/internal/domains/post/service"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/settings"
	settingsHandler "github.com/phongnguyen123/treow-physio-sub000/internal/domains/settings/handler"
	settingsRepo "github.com/phongnguyen123/treow-physio-sub000/internal/domains/settings/repository"
	settingsService "github.com/phongnguyen123/treow-physio-sub000/internal/domains/settings/service"

	authHandler "github.com/phongnguyen123/treow-physio-sub000/internal/domains/auth/handler"
	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/upload"
	uploadHandler "github.com/phongnguyen123/treow-physio-sub000/internal/domains/upload/handler"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application
// Struct này là "root" của dependency graph
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	// Lifecycle: Singleton (1 instance duy nhất trong app lifetime)

	Config   *config.Config
	DB       *database.PostgresDB // nil khi chạy JSON-file backend
	Cache    cache.Cache          // nil khi Redis không configure
	Queue    *queue.Client        // nil khi Redis không configure
	Sessions *session.Manager
	Mailer   email.Mailer
	Storage  upload.Storage

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================
	// Backend (PostgreSQL hay JSON-file) chọn một lần lúc startup

	PostRepo       post.Repository
	AuthorRepo     author.Repository
	BookingRepo    booking.Repository
	SubscriberRepo newsletter.Repository
	SettingsRepo   settings.Repository

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	PostService       post.Service
	AuthorService     author.Service
	BookingService    booking.Service
	NewsletterService newsletter.Service
	SettingsService   settings.Service
	UploadService     *upload.Service

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	PostHandler       *postHandler.PostHandler
	AuthorHandler     *authorHandler.AuthorHandler
	BookingHandler    *bookingHandler.BookingHandler
	NewsletterHandler *newsletterHandler.NewsletterHandler
	SettingsHandler   *settingsHandler.SettingsHandler
	UploadHandler     *uploadHandler.UploadHandler
	AuthHandler       *authHandler.AuthHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer tạo và initialize toàn bộ dependency graph
//
// Thứ tự initialization:
// 1. Config (không phụ thuộc gì)
// 2. Infrastructure (DB hoặc JSON-file, Cache, Queue, Mailer, Storage)
// 3. Repositories - phụ thuộc Infrastructure
// 4. Services - phụ thuộc Repositories
// 5. Handlers - phụ thuộc Services
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Init(cfg.App.Environment)
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE STORAGE BACKEND
	// ========================================
	// DATABASE_URL set → PostgreSQL, không → JSON files dưới DataDir
	if cfg.Database.Enabled() {
		log.Println("🗄️  Connecting to PostgreSQL...")

		poolCfg, err := config.LoadPoolConfig(cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to load database config: %w", err)
		}

		db := database.NewPostgresDB(poolCfg)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := db.Connect(ctx); err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.HealthCheck(context.Background()); err != nil {
			return nil, fmt.Errorf("database health check failed: %w", err)
		}

		c.DB = db
		log.Println("✅ Database connected")
	} else {
		log.Printf("📁 DATABASE_URL not set, using JSON-file store at %s/", cfg.Storage.DataDir)
	}

	// ========================================
	// STEP 3: INITIALIZE CACHE + QUEUE (OPTIONAL)
	// ========================================
	if cfg.Redis.Enabled() {
		log.Println("🔴 Connecting to Redis...")

		redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
		if rc, ok := redisCache.(*infraCache.RedisCache); ok {
			if err := rc.Connect(context.Background()); err != nil {
				// Redis failure không critical - log warning và continue
				log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
			} else {
				c.Cache = redisCache
				c.Queue = queue.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
				log.Println("✅ Redis connected")
			}
		}
	}

	// ========================================
	// STEP 4: SESSION MANAGER
	// ========================================
	c.Sessions = session.NewManager(cfg.Session.Secret, cfg.Session.TTL)

	// ========================================
	// STEP 5: INITIALIZE REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")
	c.initRepositories()
	log.Println("✅ Repositories initialized")

	// ========================================
	// STEP 6: MAILER + UPLOAD STORAGE
	// ========================================
	// Mailer cần SettingsService làm fallback nên init sau repositories
	c.SettingsService = settingsService.NewSettingsService(c.SettingsRepo)
	c.Mailer = email.NewSMTPMailer(
		email.Account{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		},
		c.smtpFallback,
	)

	if cfg.MinIO.Enabled() {
		log.Println("🪣 Connecting to MinIO...")
		minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
		if err != nil {
			return nil, fmt.Errorf("failed to init object storage: %w", err)
		}
		c.Storage = minioStorage
		log.Println("✅ Object storage ready")
	} else {
		c.Storage = storage.NewLocalStorage(cfg.Storage.UploadDir, cfg.App.BaseURL)
		log.Printf("📁 Uploads stored locally at %s/", cfg.Storage.UploadDir)
	}

	// ========================================
	// STEP 7: INITIALIZE SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")
	if err := c.initServices(); err != nil {
		return nil, fmt.Errorf("failed to init services: %w", err)
	}
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 8: INITIALIZE HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")
	c.initHandlers()
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	if c.DB != nil {
		pool := c.DB.Pool
		c.PostRepo = postRepo.NewPostgresRepository(pool, c.Cache)
		c.AuthorRepo = authorRepo.NewPostgresRepository(pool)
		c.BookingRepo = bookingRepo.NewPostgresRepository(pool)
		c.SubscriberRepo = newsletterRepo.NewPostgresRepository(pool)
		c.SettingsRepo = settingsRepo.NewPostgresRepository(pool)
		return
	}

	dataDir := c.Config.Storage.DataDir
	c.PostRepo = postRepo.NewJSONFileRepository(dataDir)
	c.AuthorRepo = authorRepo.NewJSONFileRepository(dataDir)
	c.BookingRepo = bookingRepo.NewJSONFileRepository(dataDir)
	c.SubscriberRepo = newsletterRepo.NewJSONFileRepository(dataDir)
	c.SettingsRepo = settingsRepo.NewJSONFileRepository(dataDir)
}

func (c *Container) initServices() error {
	cfg := c.Config

	c.PostService = postService.NewPostService(c.PostRepo)
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)

	validator, err := booking.NewValidator(cfg.Booking.PhoneRegex)
	if err != nil {
		return fmt.Errorf("invalid BOOKING_PHONE_REGEX: %w", err)
	}
	c.BookingService = bookingService.NewBookingService(c.BookingRepo, validator, c.Mailer, cfg.Admin.Emails)

	c.NewsletterService = newsletterService.NewNewsletterService(
		c.SubscriberRepo,
		c.Mailer,
		cfg.App.BaseURL,
		cfg.Booking.NewsletterSendDelay,
	)

	c.UploadService = upload.NewService(c.Storage)

	return nil
}

func (c *Container) initHandlers() {
	c.PostHandler = postHandler.NewPostHandler(c.PostService)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookingHandler = bookingHandler.NewBookingHandler(c.BookingService)
	c.NewsletterHandler = newsletterHandler.NewNewsletterHandler(c.NewsletterService, c.Queue)
	c.SettingsHandler = settingsHandler.NewSettingsHandler(c.SettingsService)
	c.UploadHandler = uploadHandler.NewUploadHandler(c.UploadService)
	c.AuthHandler = authHandler.NewAuthHandler(c.Config.Admin, c.Sessions)
}

// smtpFallback đọc SMTP account từ settings record đã persist,
// dùng khi environment không có SMTP config.
func (c *Container) smtpFallback(ctx context.Context) (email.Account, error) {
	smtp, err := c.SettingsService.SmtpAccount(ctx)
	if err != nil {
		return email.Account{}, err
	}
	return email.Account{
		Host:     smtp.Host,
		Port:     smtp.Port,
		Username: smtp.Username,
		Password: smtp.Password,
		From:     smtp.FromEmail,
	}, nil
}

// ========================================
// CLEANUP
// ========================================

// Cleanup đóng mọi connection, gọi khi shutdown
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container...")

	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			log.Printf("⚠️  Failed to close queue client: %v", err)
		}
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("⚠️  Failed to close Redis: %v", err)
			}
		}
	}

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("✅ Database connection closed")
	}

	log.Println("✅ Cleanup completed")
}
