package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/planetary/planetary-api/internal/config"
	"github.com/planetary/planetary-api/internal/handler"
	"github.com/planetary/planetary-api/internal/mail"
	"github.com/planetary/planetary-api/internal/middleware"
	"github.com/planetary/planetary-api/internal/repository"
	"github.com/planetary/planetary-api/internal/service"
)

func main() {
	seed := flag.Bool("seed", false, "seed the database with sample planets and a test user, then exit")
	drop := flag.Bool("drop", false, "drop all tables, then exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabasePath)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()

	if *drop {
		if err := repository.Drop(ctx, db); err != nil {
			slog.Error("dropping tables failed", "error", err)
			os.Exit(1)
		}
		slog.Info("database dropped")
		return
	}

	if err := repository.Migrate(ctx, db); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}

	if *seed {
		if err := repository.Seed(ctx, db); err != nil {
			slog.Error("seeding failed", "error", err)
			os.Exit(1)
		}
		slog.Info("database seeded")
		return
	}

	mailer, err := mail.NewSMTPSender(cfg)
	if err != nil {
		slog.Error("mail client setup failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, mailer, cfg.JWTSecret, cfg.JWTExpiry)
	authHandler := handler.NewAuthHandler(authService)

	planetRepo := repository.NewPlanetRepository(db)
	planetService := service.NewPlanetService(planetRepo)
	planetHandler := handler.NewPlanetHandler(planetService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/planets", planetHandler.HandleList)
	r.Get("/planet_details/{id:[0-9]+}", planetHandler.HandleDetails)
	r.Get("/retrieve_password/{email}", authHandler.HandleRetrievePassword)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/register", authHandler.HandleRegister)
		r.Post("/login", authHandler.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Post("/add_planet", planetHandler.HandleAdd)
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
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
