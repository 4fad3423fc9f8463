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
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"violin_study_plan/internal/config"
	"violin_study_plan/internal/handlers"
	"violin_study_plan/internal/middleware"
	"violin_study_plan/internal/repository"
	"violin_study_plan/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Temporary logger until the config tells us the real level and format.
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
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

	if err := repository.Migrate(db); err != nil {
		slog.Error("Error running migrations", slog.Any("error", err))
		os.Exit(1)
	}

	// Dependency injection. Repositories are stateless; services share the
	// same *gorm.DB and wall clock.
	userRepo := repository.NewGormUserRepository()
	progressRepo := repository.NewGormProgressRepository()
	warmupRepo := repository.NewGormWarmupRepository()
	dailyLogRepo := repository.NewGormDailyLogRepository()
	settingsRepo := repository.NewGormSettingsRepository()
	catalogRepo := repository.NewGormCatalogRepository()
	activityRepo := repository.NewGormActivityRepository()

	limiter := service.NewMemoryLoginLimiter(
		config.Cfg.Auth.MaxLoginAttempts,
		time.Duration(config.Cfg.Auth.LockoutSeconds)*time.Second,
		time.Now,
	)

	authService := service.NewAuthService(db, userRepo, progressRepo, settingsRepo, limiter, &config.Cfg, time.Now)
	catalogService := service.NewCatalogService(db, catalogRepo, settingsRepo, time.Now)
	progressService := service.NewProgressService(db, progressRepo, warmupRepo, dailyLogRepo, catalogRepo, activityRepo, time.Now)
	dailyLogService := service.NewDailyLogService(db, dailyLogRepo, time.Now)
	statsService := service.NewStatsService(db, progressRepo, dailyLogRepo, catalogRepo, time.Now)
	settingsService := service.NewSettingsService(db, settingsRepo, time.Now)
	methodService := service.NewMethodService(db, catalogRepo, time.Now)
	exportService := service.NewExportService(db, userRepo, progressRepo, warmupRepo, dailyLogRepo, settingsRepo, activityRepo, time.Now)

	authHandler := handlers.NewAuthHandler(authService, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)
	progressHandler := handlers.NewProgressHandler(progressService, logger)
	dailyLogHandler := handlers.NewDailyLogHandler(dailyLogService, logger)
	statsHandler := handlers.NewStatsHandler(statsService, logger)
	settingsHandler := handlers.NewSettingsHandler(settingsService, logger)
	methodHandler := handlers.NewMethodHandler(methodService, logger)
	exportHandler := handlers.NewExportHandler(exportService, logger)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api", func(r chi.Router) {
		// --- Public routes ---
		r.Get("/", catalogHandler.Root)
		r.Post("/auth/login", authHandler.Login)
		r.Get("/session-types", catalogHandler.SessionTypes)
		r.Get("/session-info", catalogHandler.SessionInfo)
		r.Get("/lessons/{session_type}", catalogHandler.Lessons)
		r.Get("/methods", catalogHandler.Methods)
		r.Get("/level-thresholds", catalogHandler.LevelThresholds)
		r.Get("/warmup-checklist", catalogHandler.WarmupChecklist)

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuthMiddleware(&config.Cfg))

			r.Route("/auth", func(r chi.Router) {
				r.Get("/me", authHandler.Me)
				r.Get("/verify", authHandler.Verify)
				r.Post("/change-password", authHandler.ChangePassword)
				r.Post("/first-login-password", authHandler.FirstLoginPassword)
			})

			r.Route("/progress", func(r chi.Router) {
				r.Get("/", progressHandler.Get)
				r.Post("/practice", progressHandler.Practice)
				r.Post("/advance", progressHandler.Advance)
				r.Post("/jump", progressHandler.Jump)
				r.Post("/notes", progressHandler.Notes)
			})
			r.Post("/warmup/check", progressHandler.WarmupCheck)

			r.Route("/daily-logs", func(r chi.Router) {
				r.Get("/", dailyLogHandler.List)
				r.Post("/time", dailyLogHandler.LogTime)
				r.Get("/{date}", dailyLogHandler.Get)
				r.Post("/{date}/notes", dailyLogHandler.Notes)
			})

			r.Get("/stats", statsHandler.Stats)
			r.Get("/calendar", statsHandler.Calendar)

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", settingsHandler.Get)
				r.Put("/durations", settingsHandler.UpdateDurations)
			})

			r.Post("/methods", methodHandler.Create)
			r.Route("/methods/{method_id}", func(r chi.Router) {
				r.Put("/", methodHandler.Update)
				r.Delete("/", methodHandler.Delete)
				r.Get("/lessons", methodHandler.Lessons)
				r.Post("/lessons", methodHandler.CreateLesson)
				r.Post("/lessons/batch", methodHandler.CreateLessonsBatch)
				r.Post("/lessons/reorder", methodHandler.ReorderLessons)
			})
			r.Put("/lessons/{lesson_id}", methodHandler.UpdateLesson)
			r.Delete("/lessons/{lesson_id}", methodHandler.DeleteLesson)

			r.Get("/export", exportHandler.Export)
			r.Post("/import/preview", exportHandler.ImportPreview)
			r.Post("/import", exportHandler.Import)
			r.Post("/reset", exportHandler.Reset)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
