package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"qr-menu-api/analytics"
	"qr-menu-api/auth"
	"qr-menu-api/config"
	"qr-menu-api/db"
	"qr-menu-api/handlers"
	"qr-menu-api/mail"
	"qr-menu-api/routes"
	"qr-menu-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger := zap.Must(zap.NewProduction()).Sugar()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalw("invalid configuration", "error", err)
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	database, err := db.Connect(cfg.DBPath)
	if err != nil {
		logger.Fatalw("failed to connect to database", "error", err)
	}
	if err := db.Migrate(database); err != nil {
		logger.Fatalw("failed to migrate database", "error", err)
	}
	logger.Info("database connected and migrated")

	authSvc, err := auth.NewService(auth.Config{SecretKey: cfg.JWTSecret, Duration: 7 * 24 * time.Hour})
	if err != nil {
		logger.Fatalw("failed to create auth service", "error", err)
	}

	var mailer mail.Sender = mail.Noop{}
	if cfg.MailAPIURL != "" && cfg.MailAPIKey != "" {
		mailer = mail.NewAPISender(cfg.MailAPIURL, cfg.MailAPIKey)
	} else {
		logger.Warn("mail API not configured, emails will be discarded")
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Fatalw("failed to create upload directory", "error", err)
	}

	recorder := analytics.NewRecorder(database, logger)
	recorder.Start()

	lifecycle := services.NewLifecycleService(database, mailer, logger)
	h := handlers.New(database, authSvc, mailer, recorder, lifecycle, cfg, logger)

	r := gin.Default()

	// CORS for the dashboard and public menu frontends
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Admin-Secret, X-Webhook-Secret")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "QR Menu API"})
	})

	routes.SetupRoutes(r, h, authSvc, cfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit
		logger.Infow("signal caught", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)

		// Flush buffered analytics once no request can enqueue anymore
		recorder.Stop()

		shutdown <- err
	}()

	logger.Infow("server started", "addr", srv.Addr, "env", cfg.Env)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalw("server failed", "error", err)
	}
	if err := <-shutdown; err != nil {
		logger.Errorw("shutdown error", "error", err)
	}
	logger.Info("server stopped")
}
