package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/telswitch/isdnc/internal/config"
	"github.com/telswitch/isdnc/internal/handler"
	"github.com/telswitch/isdnc/internal/logging"
	"github.com/telswitch/isdnc/internal/middleware"
	"github.com/telswitch/isdnc/internal/repository"
	"github.com/telswitch/isdnc/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()
	logging.Setup(cfg.LogLevel, os.Stdout)

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database setup failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, service.NewLogMailer(), cfg.SessionSecret, cfg.SessionExpiry)
	authHandler := handler.NewAuthHandler(authService)

	dncRepo := repository.NewDNCRepository(db)
	lookupService := service.NewLookupService(dncRepo)
	lookupHandler := handler.NewLookupHandler(lookupService)

	r := chi.NewRouter()
	r.Use(middleware.RequestLogger)
	r.Use(middleware.Metrics)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, 10))
		r.Post("/api/v1/auth/register", authHandler.HandleRegister)
		r.Post("/api/v1/auth/login", authHandler.HandleLogin)
		r.Post("/api/v1/auth/forgot-password", authHandler.HandleForgotPassword)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionAuth(cfg.SessionSecret))
		r.Get("/api/v1/auth/me", authHandler.HandleMe)
		r.Post("/api/v1/dnc/lookup", lookupHandler.HandleLookup)
		r.Post("/api/v1/dnc/history", lookupHandler.HandleHistory)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
