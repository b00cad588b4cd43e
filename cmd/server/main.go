package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"servicemart/internal/auth"
	"servicemart/internal/catalog"
	"servicemart/internal/config"
	"servicemart/internal/handler"
	"servicemart/internal/repository/postgres"
	"servicemart/internal/router"
	"servicemart/internal/service"
	s3storage "servicemart/internal/storage/s3"
	"servicemart/internal/validator"
)

// @title ServiceMart Listings API
// @version 1.0
// @description Listing normalization, validation and management for the services marketplace dashboard.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	configureLogging(cfg.Log)

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	listingRepo := postgres.NewListingRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize services
	schemas := catalog.DefaultRegistry()
	listingValidator := validator.New(schemas, validator.BuiltinRules(time.Now))
	listingSvc := service.NewListingService(listingRepo, s3Client, listingValidator, &cfg.Listing)
	tokens := auth.NewTokenManager(&cfg.JWT)

	// Initialize handlers
	listingH := handler.NewListingHandler(listingSvc)
	catalogH := handler.NewCatalogHandler(schemas)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(tokens, cfg.CORS.AllowedOrigins, listingH, catalogH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		log.Printf("Received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Println("Server stopped")
	return nil
}

// configureLogging sets the standard logger's flags. Debug level adds the
// calling file and line.
func configureLogging(cfg config.LogConfig) {
	flags := log.LstdFlags | log.Lmicroseconds | log.LUTC
	if strings.EqualFold(cfg.Level, "debug") {
		flags |= log.Lshortfile
	}
	log.SetFlags(flags)
}
