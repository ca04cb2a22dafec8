package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	httpapi "github.com/cjephuneh/tractor-whatsapp/internal/api/http"
	"github.com/cjephuneh/tractor-whatsapp/internal/application/conversation"
	"github.com/cjephuneh/tractor-whatsapp/internal/config"
	"github.com/cjephuneh/tractor-whatsapp/internal/domain/catalog"
	"github.com/cjephuneh/tractor-whatsapp/internal/domain/pricing"
	"github.com/cjephuneh/tractor-whatsapp/internal/domain/session"
	"github.com/cjephuneh/tractor-whatsapp/internal/infrastructure/memory"
	"github.com/cjephuneh/tractor-whatsapp/internal/infrastructure/postgres"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	policy, err := pricing.NewPolicy(cfg.OfferPolicy)
	if err != nil {
		log.Fatalf("policy error: %v", err)
	}

	ctx := context.Background()

	// stores
	var sessionRepo session.Repository
	var catalogRepo catalog.Repository
	switch cfg.StoreBackend {
	case config.StoreMemory:
		sessionRepo = memory.NewSessionStore()
		catalogRepo = memory.NewCatalogStore(memory.SeedItems())
		logger.Warn().Msg("using in-memory stores; sessions will not survive a restart")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db error: %v", err)
		}
		defer pool.Close()

		if err := postgres.RunMigrations(ctx, pool, cfg.MigrationsDir); err != nil {
			log.Fatalf("migration error: %v", err)
		}
		sessionRepo = postgres.NewSessionRepository(pool)
		catalogRepo = postgres.NewCatalogRepository(pool)
	}

	// services
	conversationSvc := conversation.NewService(sessionRepo, catalogRepo, policy, logger)

	// API server
	renderer := httpapi.NewTwiMLRenderer(cfg.ReplyMarker)
	apiServer := httpapi.NewServer(conversationSvc, renderer, logger)

	httpServer := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      apiServer.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// start server
	go func() {
		logger.Info().Str("addr", cfg.ServerAddr).Str("policy", policy.String()).Msg("http server started")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(ctxShutdown)
}
