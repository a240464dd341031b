// Booking gateway: fronts the tours marketplace backend with a session gate
// and a per-tour booking flow state machine.
//
// @title        Tours Booking Gateway API
// @version      1.0
// @description  Session-gated booking and payment flow for the tours marketplace.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tourkart/booking-gateway/internal/api"
	"github.com/tourkart/booking-gateway/internal/core/service"
	"github.com/tourkart/booking-gateway/internal/infrastructure/config"
	redisdb "github.com/tourkart/booking-gateway/internal/infrastructure/db/redis"
	"github.com/tourkart/booking-gateway/internal/infrastructure/queue"
	"github.com/tourkart/booking-gateway/internal/infrastructure/upstream"
	"github.com/tourkart/booking-gateway/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	// --- Collaborator clients ---
	catalog := upstream.NewCatalogClient(cfg.Upstream.CatalogURL, cfg.Upstream.Timeout, log)
	submitter := upstream.NewBookingSubmitter(cfg.Upstream.BookingURL, cfg.Upstream.Timeout, log)
	verifier := upstream.NewCredentialVerifier(cfg.Upstream.AuthURL, cfg.Upstream.Timeout, log)
	adminClient := upstream.NewAdminClient(cfg.Upstream.AdminURL, cfg.Upstream.Timeout, log)

	// --- Core services ---
	gate := service.NewSessionGate(cfg.JWTSecret, cfg.AdminIdentity, cfg.TokenTTL, log)
	submission := service.NewSubmissionService(submitter, redisdb.NewDedupChecker(rdb), log)

	dispatcher := queue.NewDispatcher(cfg.SubmitWorkers, submission, log)
	dispatcher.Start(ctx)

	flows := service.NewBookingFlowService(catalog, dispatcher, cfg.SubmitTimeout, log)
	admin := service.NewAdminService(adminClient, log)

	e := api.NewRouter(api.Deps{
		Gate:      gate,
		Verifier:  verifier,
		Catalog:   catalog,
		Flows:     flows,
		Admin:     admin,
		Redis:     rdb,
		JWTSecret: cfg.JWTSecret,
		Log:       log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("booking gateway started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("booking gateway stopped")
}
