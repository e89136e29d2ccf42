package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-cms/internal/auth"
	"clinic-cms/internal/config"
	"clinic-cms/internal/database"
	"clinic-cms/internal/docstore"
	"clinic-cms/internal/handler"
	"clinic-cms/internal/notify"
	"clinic-cms/internal/repository"
	"clinic-cms/internal/router"
	"clinic-cms/internal/seed"
	"clinic-cms/internal/service"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().
		Str("store_driver", cfg.Store.Driver).
		Msg("starting clinic CMS API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := database.OpenStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer closeCancel()
		if err := store.Close(closeCtx); err != nil {
			logger.Error().Err(err).Msg("failed to close store")
		}
	}()

	// Repositories
	adminRepo := repository.NewAdminRepository(store, logger)
	productRepo := repository.NewProductRepository(store, logger)
	blogRepo := repository.NewBlogRepository(store, logger)
	testimonialRepo := repository.NewTestimonialRepository(store, logger)
	appointmentRepo := repository.NewAppointmentRepository(store, logger)
	galleryRepo := repository.NewGalleryRepository(store, logger)
	contactRepo := repository.NewContactRepository(store, logger)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	notifier := notify.Nop()
	if cfg.Notify.Enabled {
		notifier, err = notify.NewSESNotifier(ctx, cfg.Notify.Region, cfg.Notify.From, cfg.Notify.To, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize notifier: %w", err)
		}
	}

	// Services
	listLimit := cfg.Store.ListLimit
	adminService := service.NewAdminService(adminRepo, tokens, logger)
	productService := service.NewProductService(productRepo, listLimit, logger)
	blogService := service.NewBlogService(blogRepo, listLimit, logger)
	testimonialService := service.NewTestimonialService(testimonialRepo, listLimit, logger)
	appointmentService := service.NewAppointmentService(appointmentRepo, notifier, listLimit, logger)
	galleryService := service.NewGalleryService(galleryRepo, listLimit, logger)
	contactService := service.NewContactService(contactRepo, notifier, listLimit, logger)

	if cfg.Seed.Enabled {
		targets := seed.Targets{
			Products:     productService,
			Blogs:        blogService,
			Testimonials: testimonialService,
			Gallery:      galleryService,
		}
		if err := seedContent(ctx, cfg, store, targets, logger); err != nil {
			return fmt.Errorf("failed to seed content: %w", err)
		}
	}

	mux := router.New(router.Handlers{
		Health:      handler.NewHealthHandler(cfg.Server.APIName, store, logger),
		Admin:       handler.NewAdminHandler(adminService, logger),
		Product:     handler.NewProductHandler(productService, logger),
		Blog:        handler.NewBlogHandler(blogService, logger),
		Testimonial: handler.NewTestimonialHandler(testimonialService, logger),
		Appointment: handler.NewAppointmentHandler(appointmentService, logger),
		Gallery:     handler.NewGalleryHandler(galleryService, logger),
		Contact:     handler.NewContactHandler(contactService, logger),
	}, router.Options{
		Verifier:         tokens,
		EnforceAuth:      cfg.Auth.Enforce,
		RegistrationOpen: cfg.Auth.RegistrationOpen,
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		RequestTimeout:   cfg.Server.RequestTimeout,
	}, logger)

	if !cfg.Auth.Enforce {
		logger.Info().Msg("admin routes are open; set AUTH_ENFORCE=true to require a bearer token")
	}

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Server.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// seedContent loads the configured bundle, from S3 when enabled, and imports
// it into empty collections.
func seedContent(ctx context.Context, cfg *config.Config, store docstore.Store, targets seed.Targets, logger zerolog.Logger) error {
	fileLoader := seed.NewFileLoader(logger)

	var s3Loader seed.Loader
	if cfg.S3.Enabled {
		l, err := seed.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		} else {
			s3Loader = l
		}
	} else {
		logger.Info().Msg("using local file system for seed bundle (S3 disabled)")
	}

	loader := seed.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, cfg.S3.Enabled, logger)

	bundle, err := loader.Load(ctx, cfg.Seed.File)
	if err != nil {
		return err
	}

	_, err = seed.NewImporter(store, targets, logger).Import(ctx, bundle)
	return err
}
