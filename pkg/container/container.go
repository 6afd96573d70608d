package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"recipeblog-backend/internal/config"
	infraCache "recipeblog-backend/internal/infrastructure/cache"
	"recipeblog-backend/internal/infrastructure/database"
	"recipeblog-backend/pkg/cache"
	"recipeblog-backend/pkg/jwt"
	"recipeblog-backend/pkg/logger"

	// User domain imports
	"recipeblog-backend/internal/domains/user"
	userHandler "recipeblog-backend/internal/domains/user/handler"
	userRepo "recipeblog-backend/internal/domains/user/repository"
	userService "recipeblog-backend/internal/domains/user/service"

	// Blog domain imports
	blogHandler "recipeblog-backend/internal/domains/blog/handler"
	blogRepo "recipeblog-backend/internal/domains/blog/repository"
	blogService "recipeblog-backend/internal/domains/blog/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application and is the root
// of the dependency graph.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	// Shared across all domains, one instance for the app lifetime

	Config     *config.Config       // Application config
	DB         *database.PostgresDB // Database connection pool
	Cache      cache.Cache          // Redis cache (interface)
	JWTManager *jwt.Manager         // Token issue/verify

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================

	UserRepo user.Repository
	BlogRepo blogRepo.BlogRepository

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	UserService user.Service
	BlogService blogService.BlogService

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	UserHandler *userHandler.UserHandler
	BlogHandler *blogHandler.BlogHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the whole dependency graph.
//
// Initialization order matters:
// 1. Config (depends on nothing)
// 2. Infrastructure (DB, Cache, JWT) - depends on Config
// 3. Repositories - depend on Infrastructure
// 4. Services - depend on Repositories
// 5. Handlers - depend on Services
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
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

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

	// ========================================
	// STEP 3: INITIALIZE CACHE + JWT
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// Connect needs the concrete type, it is not part of the interface
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			// Redis failure is non-critical, reads fall through to Postgres
			log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
		} else {
			log.Println("✅ Redis connected")
		}
	}

	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.ExpiryHours)*time.Hour,
	)

	// ========================================
	// STEP 4: INITIALIZE REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")

	c.initRepositories()
	log.Println("✅ Repositories initialized")

	// ========================================
	// STEP 5: INITIALIZE SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")

	c.initServices()
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 6: INITIALIZE HANDLERS
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
	pool := c.DB.Pool

	// ----------------------------------------
	// USER REPOSITORY
	// ----------------------------------------
	c.UserRepo = userRepo.NewPostgresRepository(pool)

	// ----------------------------------------
	// BLOG REPOSITORY
	// ----------------------------------------
	// Single-post reads go through the cache
	c.BlogRepo = blogRepo.NewPostgresBlogRepository(pool, c.Cache)
}

func (c *Container) initServices() {
	// ----------------------------------------
	// USER SERVICE
	// ----------------------------------------
	c.UserService = userService.NewUserService(
		c.UserRepo,
		c.JWTManager,
	)

	// ----------------------------------------
	// BLOG SERVICE
	// ----------------------------------------
	// UserRepo is a cross-domain dependency for the author join
	c.BlogService = blogService.NewBlogService(
		c.BlogRepo,
		c.UserRepo,
	)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.BlogHandler = blogHandler.NewBlogHandler(c.BlogService)
}

// ========================================
// CLEANUP
// ========================================

// Cleanup releases resources during graceful shutdown
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("✅ Database connections closed")
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("⚠️  Failed to close Redis: %v", err)
			} else {
				log.Println("✅ Redis connections closed")
			}
		}
	}

	log.Println("✅ Container cleanup completed")
}
