// @title QuizDeck API
// @version 1.0
// @description REST API for managing quiz categories, quizzes, questions and options.
// @host localhost:8090
// @BasePath /
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quizdeck/internal/adapter"
	"quizdeck/internal/cache"
	"quizdeck/internal/config"
	"quizdeck/internal/database"
	"quizdeck/internal/handler"
	"quizdeck/internal/logger"
	"quizdeck/internal/middleware"
	"quizdeck/internal/repository"
	"quizdeck/internal/service"

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
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
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

	// Connect to database
	db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	categoryRepository := repository.NewCategoryDatabaseAdapter(db)
	quizRepository := repository.NewQuizDatabaseAdapter(db)
	questionRepository := repository.NewQuestionDatabaseAdapter(db)

	// Initialize Redis client
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	// Initialize services
	authService, err := service.NewAuthService(cfg)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	categoryService := service.NewCategoryService(categoryRepository, cacheAdapter, cfg)
	quizService := service.NewQuizService(quizRepository, categoryRepository, cacheAdapter, cfg)
	questionService := service.NewQuestionService(questionRepository, quizRepository, categoryRepository)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	quizHandler := handler.NewQuizHandler(quizService)
	questionHandler := handler.NewQuestionHandler(questionService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())
	app.Use(middleware.RequireJSON())

	// Admin gate for mutating endpoints
	protected := middleware.Protected(authService)
	adminOnly := middleware.AdminOnly(cfg.Admin.Username)

	// Auth
	app.Post("/login", authHandler.Login)

	// Categories
	app.Get("/category", categoryHandler.ListCategories)
	app.Post("/category", protected, adminOnly, categoryHandler.CreateCategory)
	app.Put("/category/:name", protected, adminOnly, categoryHandler.UpdateCategory)
	app.Delete("/category/:name", protected, adminOnly, categoryHandler.DeleteCategory)

	// Quizzes. The category listing route must come before the :id routes so
	// "category" is not captured as a quiz id.
	app.Get("/quiz", quizHandler.ListQuizzes)
	app.Post("/quiz", protected, adminOnly, quizHandler.CreateQuiz)
	app.Get("/quiz/category/:category", quizHandler.ListQuizzesByCategory)
	app.Get("/quiz/:id/questions", questionHandler.ListQuestionsByQuiz)
	app.Put("/quiz/:id", protected, adminOnly, quizHandler.UpdateQuiz)
	app.Delete("/quiz/:id", protected, adminOnly, quizHandler.DeleteQuiz)

	// Questions
	app.Get("/question", questionHandler.ListQuestions)
	app.Post("/question", protected, adminOnly, questionHandler.CreateQuestion)
	app.Get("/question/:id", questionHandler.GetQuestion)
	app.Put("/question/:id", protected, adminOnly, questionHandler.UpdateQuestion)
	app.Delete("/question/:id", protected, adminOnly, questionHandler.DeleteQuestion)

	// Composite and filtered reads
	app.Get("/category/:category/quiz/:quiz/all", questionHandler.GetQuizQuestionSet)
	app.Get("/category/:category/quiz/:quiz/questions", questionHandler.GetFilteredQuestions)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port))
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
