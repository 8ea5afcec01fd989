package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RayBDev/devconnector/internal/auth"
	"github.com/RayBDev/devconnector/internal/config"
	"github.com/RayBDev/devconnector/internal/db"
	"github.com/RayBDev/devconnector/internal/email"
	transport "github.com/RayBDev/devconnector/internal/http"
	"github.com/RayBDev/devconnector/internal/http/middleware"
	"github.com/RayBDev/devconnector/internal/repo"
	"github.com/RayBDev/devconnector/internal/services"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Env)

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	dbConn, err := db.Connect(ctx, cfg.DBURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	if err := db.Migrate(ctx, cfg.DBURL); err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	mailer, err := email.NewSMTPMailer(cfg.SMTP)
	if err != nil {
		logger.Error("failed to configure mailer", "error", err)
		os.Exit(1)
	}

	tokenIssuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.SessionTokenTTL, cfg.ResetTokenTTL)

	userRepo := repo.NewUserRepo(dbConn.Pool, cfg.RequestTimeout)
	profileRepo := repo.NewProfileRepo(dbConn.Pool, cfg.RequestTimeout)
	postRepo := repo.NewPostRepo(dbConn.Pool, cfg.RequestTimeout)

	authService := services.NewAuthService(userRepo, tokenIssuer, mailer, logger, cfg.PublicBaseURL)
	profileService := services.NewProfileService(profileRepo)
	postService := services.NewPostService(postRepo)

	router := transport.NewRouter(transport.Dependencies{
		Config:         cfg,
		TokenIssuer:    tokenIssuer,
		AuthService:    authService,
		ProfileService: profileService,
		PostService:    postService,
		Logger:         logger,
		RateLimiter:    middleware.NewRateLimiter(cfg.RateLimitPerMinute),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.RequestTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.RequestTimeout,
		IdleTimeout:       60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErrors:
		logger.Error("http server stopped unexpectedly", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Info("http server stopped")
}

func newLogger(env string) *slog.Logger {
	level := slog.LevelInfo
	if env != "prod" {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if env == "prod" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler)
}
