// @title Quiz Binh API
// @version 1.0
// @description Exam management backend: document import, AI question generation and grading.
// @host localhost:8090
// @BasePath /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
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

	"github.com/dohuubinh-oss/quizBinhBE/internal/adapter"
	"github.com/dohuubinh-oss/quizBinhBE/internal/cache"
	"github.com/dohuubinh-oss/quizBinhBE/internal/config"
	"github.com/dohuubinh-oss/quizBinhBE/internal/database"
	"github.com/dohuubinh-oss/quizBinhBE/internal/dto"
	"github.com/dohuubinh-oss/quizBinhBE/internal/extractor"
	"github.com/dohuubinh-oss/quizBinhBE/internal/genai"
	"github.com/dohuubinh-oss/quizBinhBE/internal/handler"
	"github.com/dohuubinh-oss/quizBinhBE/internal/logger"
	"github.com/dohuubinh-oss/quizBinhBE/internal/middleware"
	"github.com/dohuubinh-oss/quizBinhBE/internal/repository"
	"github.com/dohuubinh-oss/quizBinhBE/internal/service"

	_ "github.com/dohuubinh-oss/quizBinhBE/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
	appLogger.Info("Connected to Redis")

	ctx := context.Background()
	geminiClient, err := genai.NewGeminiClient(ctx, cfg.Gemini)
	if err != nil {
		appLogger.Fatal("Failed to create Gemini client", zap.Error(err))
	}
	appLogger.Info("Gemini client initialized", zap.String("model", cfg.Gemini.Model))

	questionRepository := repository.NewQuestionDatabaseAdapter(db)
	examRepository := repository.NewExamDatabaseAdapter(db)

	snapshotService := service.NewExamSnapshotService(
		cacheAdapter, examRepository, questionRepository, cfg.Cache.ExamSnapshotTTL)
	examService := service.NewExamService(examRepository, questionRepository, snapshotService)
	importService := service.NewImportService(
		extractor.NewDocxExtractor(), geminiClient, questionRepository, examRepository)
	gradingService := service.NewGradingService(snapshotService)
	questionService := service.NewQuestionService(questionRepository, geminiClient)
	authService := service.NewAuthService(cfg.JWT)

	examHandler := handler.NewExamHandler(examService, importService, gradingService)
	questionHandler := handler.NewQuestionHandler(questionService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api")

	examGroup := apiGroup.Group("/exams")
	examGroup.Get("/", examHandler.ListExams)
	examGroup.Get("/:id", examHandler.GetExam)
	examGroup.Post("/", middleware.Protected(authService),
		middleware.RequireRoles(dto.RoleTeacher, dto.RoleAdmin), examHandler.CreateExam)
	examGroup.Patch("/:id", middleware.Protected(authService),
		middleware.RequireRoles(dto.RoleTeacher, dto.RoleAdmin), examHandler.UpdateExam)
	examGroup.Delete("/:id", middleware.Protected(authService),
		middleware.RequireRoles(dto.RoleTeacher, dto.RoleAdmin), examHandler.DeleteExam)
	examGroup.Post("/import-word", middleware.Protected(authService),
		middleware.RequireRoles(dto.RoleTeacher, dto.RoleAdmin), examHandler.ImportFromWord)
	examGroup.Post("/:id/grade", middleware.Protected(authService), examHandler.GradeExam)

	questionGroup := apiGroup.Group("/questions", middleware.Protected(authService))
	questionGroup.Post("/import", middleware.RequireRoles(dto.RoleAdmin), questionHandler.BulkImport)
	questionGroup.Post("/generate", middleware.RequireRoles(dto.RoleTeacher, dto.RoleAdmin), questionHandler.Generate)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
