package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"notesquiz/internal/adapter"
	"notesquiz/internal/cache"
	"notesquiz/internal/config"
	"notesquiz/internal/domain"
	"notesquiz/internal/handler"
	"notesquiz/internal/logger"
	"notesquiz/internal/middleware"
	"notesquiz/internal/repository"
	"notesquiz/internal/service"
	"notesquiz/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("request_id", requestID(c)),
		)

		return err
	}
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(middleware.RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// newQuizRepository constructs the persistence backend selected by the
// configuration. The store is built exactly once here and handed down; there
// is no package-level singleton.
func newQuizRepository(cfg *config.Config, appLogger *zap.Logger) domain.QuizRepository {
	switch cfg.Storage.Backend {
	case config.StorageBackendSQLite:
		store, err := repository.NewSQLiteQuizStore(cfg.Storage.SQLitePath)
		if err != nil {
			appLogger.Fatal("Failed to open SQLite store", zap.Error(err))
		}
		appLogger.Info("Using SQLite quiz store", zap.String("path", cfg.Storage.SQLitePath))
		return store
	default:
		store, err := repository.NewJSONQuizStore(cfg.Storage.JSONPath)
		if err != nil {
			appLogger.Fatal("Failed to open JSON store", zap.Error(err))
		}
		appLogger.Info("Using JSON quiz store", zap.String("path", store.Path()))
		return store
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Initialize storage
	quizRepository := newQuizRepository(cfg, appLogger)

	// Initialize the optional Redis-backed quiz cache
	var quizCache domain.Cache
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		quizCache = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
	} else {
		appLogger.Info("Redis cache disabled; serving reads from storage")
	}

	// Initialize services and handlers
	quizService := service.NewQuizService(quizRepository, quizCache, cfg.Quiz.CacheTTL)
	validator := validation.NewValidator(cfg.Quiz.MaxNotesLen, cfg.Quiz.MaxTitleLen)
	quizHandler := handler.NewQuizHandler(quizService, validator, cfg.Storage.Backend)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	// Routes
	app.Get("/", quizHandler.HealthCheck)

	apiGroup := app.Group("/api")
	apiGroup.Post("/quizzes", quizHandler.CreateQuiz)
	apiGroup.Get("/quizzes", quizHandler.ListQuizzes)
	apiGroup.Get("/quizzes/:id", quizHandler.GetQuiz)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
