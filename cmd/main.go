// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"go_roadmap_progress/internal/config"
	"go_roadmap_progress/internal/handlers"
	"go_roadmap_progress/internal/logging"
	"go_roadmap_progress/internal/middleware"
	"go_roadmap_progress/internal/repository"
	"go_roadmap_progress/internal/service"
)

func main() {
	log.Println("Config Loading...")
	configPath := os.Getenv("APP_CONFIG_PATH")
	if configPath == "" {
		configPath = "configs"
	}
	if err := config.LoadConfig(configPath); err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := logging.NewLogger(os.Stderr, &config.Cfg)
	slog.SetDefault(logger)
	defer logging.Flush()

	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion), slog.String("env", config.Cfg.Env))

	// 1. Database
	db, err := repository.NewDB(config.Cfg.Database.URL, config.Cfg.Env, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// 2. Dependency Injection
	contentRepo := repository.NewGormContentRepository()
	enrollRepo := repository.NewGormEnrollmentRepository()
	trackingRepo := repository.NewGormLessonTrackingRepository()
	quizAttemptRepo := repository.NewGormQuizAttemptRepository()
	challengeAttemptRepo := repository.NewGormChallengeAttemptRepository()

	executor := service.NewExecutor(&config.Cfg)

	enrollmentService := service.NewEnrollmentService(db, contentRepo, enrollRepo)
	lessonService := service.NewLessonService(db, contentRepo, enrollRepo, trackingRepo)
	quizService := service.NewQuizService(db, contentRepo, enrollRepo, trackingRepo, quizAttemptRepo)
	challengeService := service.NewChallengeService(db, contentRepo, enrollRepo, trackingRepo, challengeAttemptRepo, executor, config.Cfg.Grading.SubmissionTimeout)

	h := &handlers.Handlers{
		Enrollment: handlers.NewEnrollmentHandler(enrollmentService, logger),
		Lesson:     handlers.NewLessonHandler(lessonService, logger),
		Quiz:       handlers.NewQuizHandler(quizService, logger),
		Challenge:  handlers.NewChallengeHandler(challengeService, logger),
		Health:     handlers.NewHealthHandler(sqlDB, logger),
	}

	// 3. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	// 採点はリクエストのキャンセルと切り離して走るため、全体のタイムアウトはそれより長く取る
	requestTimeout := config.Cfg.Grading.SubmissionTimeout + 10*time.Second
	r.Use(chimiddleware.Timeout(requestTimeout))

	var auth func(http.Handler) http.Handler
	if config.Cfg.Auth.Enabled {
		slog.Info("Applying JWT authentication middleware")
		auth = middleware.JWTAuthMiddleware(&config.Cfg.JWT)
	} else {
		slog.Warn("Authentication is DISABLED. Using development user context middleware (X-User-ID)")
		auth = middleware.DevUserContextMiddleware
	}
	handlers.RegisterRoutes(r, h, auth)

	// 4. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: requestTimeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), config.Cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	slog.Info("Server exiting")
}
