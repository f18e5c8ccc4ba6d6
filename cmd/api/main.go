package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"apnedoctors/resume-verifier/internal/config"
	"apnedoctors/resume-verifier/internal/handlers"
	"apnedoctors/resume-verifier/internal/repositories"
	"apnedoctors/resume-verifier/internal/services"
)

func main() {
	cfg := config.Load()

	log, err := newLogger(cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	db, err := config.InitDatabase(cfg, log)
	if err != nil {
		log.Fatal("failed to initialize database", zap.Error(err))
	}

	verificationRepo := repositories.NewVerificationRepository(db)
	expertRepo := repositories.NewExpertRepository(db)

	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatal("failed to create upload directory", zap.Error(err))
	}

	ocrService := services.NewTesseractOCRService(cfg.Reference.OCRDPI)
	textExtractor := services.NewPDFTextExtractor(ocrService, log)

	embedder, err := services.NewGeminiEmbeddingService(
		cfg.Gemini.APIKey,
		cfg.Gemini.EmbedModel,
		cfg.Gemini.EmbedTimeout,
	)
	if err != nil {
		log.Fatal("failed to initialize embedding service", zap.Error(err))
	}

	// Reference state is built once here and shared read-only by all
	// requests. Failures degrade the pipeline instead of aborting startup.
	referenceStore := services.NewReferenceStore(
		cfg.Reference.StorePath,
		embedder.Dimension(),
		log,
	)
	profile := services.BuildReferenceProfile(
		context.Background(),
		cfg.Reference.ResumePath,
		textExtractor,
		embedder,
		referenceStore,
		log,
	)

	verifierCfg := services.DefaultVerifierConfig()
	signals := services.NewSignalExtractor(verifierCfg.RequiredCertifications)
	scorer := services.NewSimilarityScorer(embedder, profile.Embedding, verifierCfg.SimilarityThreshold, log)
	verifier := services.NewVerifierService(textExtractor, scorer, signals, verifierCfg, log)
	scheduler := services.NewSchedulerService(expertRepo)

	processor := services.NewProcessorService(verificationRepo, verifier, storageService, log)
	worker := services.NewWorker(verificationRepo, processor, cfg.Worker.Concurrency, log)
	worker.Start(context.Background())

	verifyHandler := handlers.NewVerifyHandler(
		verificationRepo,
		storageService,
		worker,
		cfg.Storage.MaxFileSize,
	)
	resultHandler := handlers.NewResultHandler(verificationRepo, scheduler)

	app := fiber.New(fiber.Config{
		AppName:      "Resume Verification API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":          "healthy",
			"reference_index": profile.Index.Size(),
			"time":            time.Now(),
		})
	})

	api.Post("/verify", verifyHandler.HandleVerify)
	api.Get("/result/:id", resultHandler.HandleGetResult)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Verification API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/verify",
				"GET /api/v1/result/:id",
			},
		})
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("shutting down server")
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			log.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
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
