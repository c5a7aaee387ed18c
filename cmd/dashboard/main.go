package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/example/admin-dashboard/internal/application"
	"github.com/example/admin-dashboard/internal/calendar"
	"github.com/example/admin-dashboard/internal/config"
	httptransport "github.com/example/admin-dashboard/internal/http"
	"github.com/example/admin-dashboard/internal/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	memory := store.NewMemory()
	now := time.Now
	idGenerator := uuid.NewString

	if err := bootstrapAdmin(ctx, memory, cfg.AdminPassword, now()); err != nil {
		logger.Error("failed to bootstrap admin account", "error", err)
		os.Exit(1)
	}

	if cfg.SeedDemoData {
		if err := store.SeedDemoData(ctx, memory); err != nil {
			logger.Error("failed to seed demo data", "error", err)
			os.Exit(1)
		}
		logger.Info("demo data seeded")
	}

	hours := calendar.HourRange{First: cfg.FirstHour, Last: cfg.LastHour}

	appointmentService := application.NewAppointmentServiceWithLogger(memory, idGenerator, now, logger)
	employeeService := application.NewEmployeeServiceWithLogger(memory, idGenerator, now, logger)
	calendarService := application.NewCalendarServiceWithLogger(memory, cfg.ReferenceDate, hours, logger)
	authService := application.NewAuthServiceWithLogger(memory, idGenerator, now, cfg.SessionTTL, logger)

	authHandler := httptransport.NewAuthHandler(authService, logger)
	appointmentHandler := httptransport.NewAppointmentHandler(appointmentService, logger)
	employeeHandler := httptransport.NewEmployeeHandler(employeeService, logger)
	calendarHandler := httptransport.NewCalendarHandler(calendarService, now, logger)

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Auth:         authHandler,
		Appointments: appointmentHandler,
		Employees:    employeeHandler,
		Calendar:     calendarHandler,
	})

	protected := httptransport.RequireSession(authService, logger)(router)
	handler := httptransport.RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.EqualFold(r.URL.Path, "/sessions") && r.Method == http.MethodPost {
			router.ServeHTTP(w, r)
			return
		}
		protected.ServeHTTP(w, r)
	}))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to shutdown server", "error", err)
		}
	}()

	logger.Info("dashboard API listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server encountered error", "error", err)
		os.Exit(1)
	}
}

// bootstrapAdmin creates the demo administrator account that the seeded
// frontend signs in with.
func bootstrapAdmin(ctx context.Context, memory *store.Memory, password string, now time.Time) error {
	hash, err := application.CreatePasswordHash(password, application.DefaultArgon2idParams)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	return memory.CreateUser(ctx, store.User{
		ID:           uuid.NewString(),
		Name:         "Alison Eyo",
		Email:        "alison.e@rayna.ui",
		PasswordHash: hash,
		Role:         "admin",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}
