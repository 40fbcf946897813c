package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anonto42/nano-midea/relations/internal/events"
	"github.com/anonto42/nano-midea/relations/internal/repositories"
	"github.com/anonto42/nano-midea/relations/internal/router"
	"github.com/anonto42/nano-midea/relations/internal/services"
	"github.com/anonto42/nano-midea/relations/pkg/config"
	"github.com/anonto42/nano-midea/relations/pkg/logger"
	"github.com/anonto42/nano-midea/relations/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Pretty:      cfg.LogPretty,
		ServiceName: "relations",
	})
	log := logger.L()

	// Initialize database connections
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize databases")
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	if err := config.AutoMigrate(db.SQL); err != nil {
		log.Fatal().Err(err).Msg("failed to auto migrate models")
	}

	if cfg.MessageStore != config.MessageStorePostgres {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := repositories.NewMongoMessageRepository(db.Database()).EnsureIndexes(ctx)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create message indexes")
		}
	}

	var pub events.Publisher = events.NopPublisher{}
	if cfg.NatsURL != "" {
		nc, err := events.Connect(cfg.NatsURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to NATS")
		}
		defer nc.Drain()
		pub = events.NewNatsPublisher(nc)
		log.Info().Str("url", cfg.NatsURL).Msg("publishing events to NATS")
	}

	reg := services.NewRegistry(services.Backends{
		SQL:          db.SQL,
		Mongo:        db.Database(),
		MessageStore: cfg.MessageStore,
	})

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()

	config.SetupMiddleware(e)
	router.SetupRoutes(e, reg, pub)

	go func() {
		log.Info().Str("port", cfg.Port).Str("message_store", cfg.MessageStore).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server stopped")
}
