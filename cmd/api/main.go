package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"careerpath/api/internal/cache"
	"careerpath/api/internal/config"
	"careerpath/api/internal/handlers"
	"careerpath/api/internal/middleware"
	"careerpath/api/internal/repositories"
	"careerpath/api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	offerRepo := repositories.NewJobOfferRepository(db)
	analysisRepo := repositories.NewAnalysisRepository(db)
	cvRepo := repositories.NewUserCVRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize storage for offer document imports
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	pdfParser := services.NewPDFParserService()
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize Redis cache (optional, stats degrade without it)
	redisCache := cache.NewRedis(cfg.GetRedisAddr(), cfg.Redis.Password)

	// Initialize domain services
	generator := services.NewCareerGenerator(geminiService, cfg.Generation.MaxAttempts)
	careerService := services.NewCareerService(cvRepo, offerRepo, analysisRepo, generator)
	analysisService := services.NewJobAnalysisService(offerRepo, analysisRepo, geminiService)
	statsService := services.NewPopularStatsService(geminiService, redisCache, cfg.Redis.CacheTTL)
	log.Println("✅ Career services initialized")

	// Initialize handlers
	careerHandler := handlers.NewCareerHandler(careerService)
	analyzeHandler := handlers.NewAnalyzeHandler(analysisService)
	statsHandler := handlers.NewStatsHandler(statsService)
	offersHandler := handlers.NewOffersHandler(offerRepo, storageService, pdfParser)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "CareerPath API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Protected endpoints
	api.Use(middleware.JWTAuth(cfg.Auth.JWTSecret))
	api.Post("/career-analysis", careerHandler.HandleCareerAnalysis)
	api.Post("/job-analyze", analyzeHandler.HandleJobAnalyze)
	api.Post("/popular-stats", statsHandler.HandlePopularStats)
	api.Post("/job-offers", offersHandler.HandleCreateOffer)
	api.Get("/job-offers/count", offersHandler.HandleOfferCount)
	api.Patch("/job-offers/:id/status", offersHandler.HandleUpdateStatus)
	api.Post("/job-offers/:id/document", offersHandler.HandleImportDocument)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "CareerPath API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/career-analysis",
				"POST /api/v1/job-analyze",
				"POST /api/v1/popular-stats",
				"POST /api/v1/job-offers",
				"GET /api/v1/job-offers/count",
				"PATCH /api/v1/job-offers/:id/status",
				"POST /api/v1/job-offers/:id/document",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := redisCache.Close(); err != nil {
			log.Printf("⚠️ Failed to close Redis connection: %v", err)
		}
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
