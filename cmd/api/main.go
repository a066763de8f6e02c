package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mercato-core/config"
	"mercato-core/internal/adapter/events"
	"mercato-core/internal/adapter/gateway"
	httpHandler "mercato-core/internal/adapter/http/handler"
	pgStorage "mercato-core/internal/adapter/storage/postgres"
	redisStorage "mercato-core/internal/adapter/storage/redis"
	"mercato-core/internal/core/ports"
	"mercato-core/internal/service"
	"mercato-core/internal/worker"
	"mercato-core/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Mercato Lottery Engine")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	lotteryRepo := pgStorage.NewLotteryRepo(pool)
	ticketRepo := pgStorage.NewTicketRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)
	drawingRepo := pgStorage.NewDrawingRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	completionCache := redisStorage.NewCompletionCache(rdb)
	drawQueue := redisStorage.NewDrawQueue(rdb)

	// Event publisher: Kafka when brokers are configured, log fallback otherwise
	var publisher ports.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPub, err := events.NewKafkaPublisher(ctx, cfg.Kafka, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Kafka")
		}
		defer kafkaPub.Close()
		publisher = kafkaPub
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Msg("Kafka publisher connected")
	} else {
		publisher = events.NewLogPublisher(log)
		log.Warn().Msg("No Kafka brokers configured, events go to the log only")
	}

	// External collaborators
	paymentGateway := gateway.NewHTTPGateway(cfg.Gateway)
	var verifier ports.SellerVerifier
	if cfg.Verifier.BaseURL != "" {
		verifier = gateway.NewHTTPVerifier(cfg.Verifier)
	} else {
		verifier = gateway.NewStaticVerifier(true)
		log.Warn().Msg("No verifier configured, every seller passes KYC")
	}

	// Initialize business services
	lotterySvc := service.NewLotteryService(lotteryRepo, ticketRepo, verifier, publisher, transactor, cfg.Lottery, log)
	issuanceSvc := service.NewIssuanceService(lotteryRepo, ticketRepo, txRepo, paymentGateway, publisher, transactor, cfg.Lottery, log)
	ledgerSvc := service.NewLedgerService(txRepo, ticketRepo, lotteryRepo, paymentGateway, completionCache, publisher, transactor, cfg.Lottery, log)
	drawingSvc := service.NewDrawingService(lotteryRepo, ticketRepo, drawingRepo, publisher, transactor, log)

	// Background workers: expiration sweep + draw pool
	sweeper := worker.NewSweeper(lotteryRepo, drawQueue, cfg.Lottery.SweepInterval, log)
	if err := sweeper.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start expiration sweeper")
	}
	defer sweeper.Stop()

	drawer := worker.NewDrawer(drawingSvc, drawQueue, cfg.Lottery.DrawWorkers, cfg.Lottery.DrawMaxRetries, log)
	drawer.Start(ctx)
	defer drawer.Stop()

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		LotterySvc:     lotterySvc,
		IssuanceSvc:    issuanceSvc,
		LedgerSvc:      ledgerSvc,
		DrawingSvc:     drawingSvc,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
