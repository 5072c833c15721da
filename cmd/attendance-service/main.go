package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ambutrack/attendance-backend/internal/attendance/client"
	"github.com/ambutrack/attendance-backend/internal/attendance/domain"
	"github.com/ambutrack/attendance-backend/internal/attendance/handler"
	"github.com/ambutrack/attendance-backend/internal/attendance/repository"
	"github.com/ambutrack/attendance-backend/internal/attendance/seed"
	"github.com/ambutrack/attendance-backend/internal/attendance/service"
	"github.com/ambutrack/attendance-backend/pkg/config"
	"github.com/ambutrack/attendance-backend/pkg/database"
	"github.com/ambutrack/attendance-backend/pkg/httputil"
	"github.com/ambutrack/attendance-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadWithValidation("attendance-service")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("attendance-service", cfg.Server.Environment)
	log.Info().Str("roster_source", cfg.Roster.Source).Msg("starting Attendance Service")

	// Build the roster source
	var db *database.DB
	var source service.RosterSource

	switch cfg.Roster.Source {
	case "seed":
		windowStart, err := time.Parse("2006-01-02", cfg.Seed.WindowStart)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid seed window start")
		}
		gen := seed.New(domain.DefaultShiftPolicy(), time.Now().UnixNano())
		source = seed.NewSource(gen, cfg.Seed.DriverCount, cfg.Seed.EMTCount, windowStart)

	case "file":
		source = repository.NewFileSource(cfg.Roster.FilePath)

	case "http":
		source = client.NewRosterClient(cfg.Roster.URL, cfg.Roster.FetchTimeout, log)

	case "postgres":
		db, err = database.New(&cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer db.Close()
		source = repository.NewRosterRepository(db)

	default:
		log.Fatal().Str("source", cfg.Roster.Source).Msg("unknown roster source")
	}

	// Initialize service; a failed load keeps the empty roster
	attendanceService := service.NewAttendanceService(source, log)
	attendanceService.Load(context.Background())

	// Initialize handlers
	attendanceHandler := handler.NewAttendanceHandler(attendanceService, log)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(httputil.RequestID)
	r.Use(httputil.Logger(log))
	r.Use(httputil.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		health := map[string]interface{}{
			"status":  "healthy",
			"service": "attendance-service",
			"roster": map[string]interface{}{
				"employees": attendanceService.Roster().Len(),
				"loaded_at": attendanceService.Roster().LoadedAt,
			},
		}
		if db != nil {
			health["database"] = db.Health(r.Context())
		}
		httputil.JSON(w, http.StatusOK, health)
	})

	// API routes
	r.Route("/api/v1/attendance", func(r chi.Router) {
		r.Route("/roster", func(r chi.Router) {
			r.Get("/", attendanceHandler.ListRoster)
			r.Get("/{id}", attendanceHandler.GetEmployee)
			r.Get("/{id}/calendar", attendanceHandler.MonthCalendar)
		})
		r.Get("/bulk", attendanceHandler.Bulk)
		r.Get("/payload", attendanceHandler.Payload)
	})

	// Create server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server
	go func() {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}

	log.Info().Msg("server stopped")
}
