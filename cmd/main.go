// jobmate-listing-service
//
// Read-only job feed backed by the Postgres jobs table:
//   - GET  /api/health : liveness
//   - GET  /api/jobs   : every posting, newest first, with formatted salary range
//   - POST /api/seed   : reset the table to the fixture set
//
// The HTTP listener only binds once the startup connector has reached the
// database; if it gives up, the process exits with status 1.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"jobmate/listing-service/internal/api"
	"jobmate/listing-service/internal/config"
	"jobmate/listing-service/internal/db"
	"jobmate/listing-service/internal/events"
	"jobmate/listing-service/internal/grpchealth"
	"jobmate/listing-service/internal/jobs"
	"jobmate/listing-service/internal/logging"
	"jobmate/listing-service/internal/scheduler"
)

// errNotConnected means the startup connector exhausted its attempts.
var errNotConnected = errors.New("database unreachable after all retries")

func main() {
	// ── Config ──────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("[listing-service] Config error: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	log := logging.C(logger, "main")
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── PostgreSQL ───────────────────────────────────────────────────────────
	pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("PostgreSQL: %v", err)
	}

	err = run(ctx, cfg, logger, jobs.NewPostgresStore(pool))
	pool.Close()

	switch {
	case errors.Is(err, errNotConnected):
		log.Error("Failed to connect to database after all retries. Exiting...")
		os.Exit(1)
	case err != nil:
		log.Errorf("Fatal: %v", err)
		os.Exit(1)
	}
	log.Info("Stopped.")
}

// run gates startup on the database, then serves until ctx is done.
// It returns errNotConnected without binding any listener when the
// connector gives up.
func run(ctx context.Context, cfg *config.Config, logger *logrus.Logger, store jobs.Store) error {
	log := logging.C(logger, "main")

	// ── Redis (optional) ─────────────────────────────────────────────────────
	var publisher jobs.EventPublisher
	if cfg.RedisURL != "" {
		rdb, err := db.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer rdb.Close()
		publisher = events.NewRedisPublisher(rdb)
		log.Info("Redis connected, seed events enabled")
	}

	listing := jobs.NewService(store, publisher, logging.C(logger, "jobs"))

	// ── Startup gate ─────────────────────────────────────────────────────────
	connector := db.NewConnector(listing, cfg.ConnectMaxAttempts, cfg.ConnectDelay, logging.C(logger, "connector"))
	if !connector.ConnectWithRetry(ctx) {
		return errNotConnected
	}

	// ── Reseed cron (optional) ───────────────────────────────────────────────
	if cfg.SeedSchedule != "" {
		sched := scheduler.New(listing, cfg.SeedSchedule, logging.C(logger, "scheduler"))
		if err := sched.Start(ctx); err != nil {
			return fmt.Errorf("scheduler: %w", err)
		}
		defer sched.Stop()
	}

	// ── gRPC health (optional) ───────────────────────────────────────────────
	if cfg.GRPCHealthPort != "" {
		lis, err := net.Listen("tcp", ":"+cfg.GRPCHealthPort)
		if err != nil {
			return fmt.Errorf("gRPC health listen: %w", err)
		}
		hs := grpchealth.New(logging.C(logger, "grpc-health"))
		hs.MarkServing()
		go func() {
			if err := hs.Serve(lis); err != nil {
				log.Errorf("gRPC health server error: %v", err)
			}
		}()
		defer hs.Stop()
	}

	// ── HTTP server ──────────────────────────────────────────────────────────
	apiLog := logging.C(logger, "api")
	router := api.NewRouter(api.NewHandler(listing, apiLog), apiLog)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	lis, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("http listen: %w", err)
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infof("Server running on port %s", cfg.Port)
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// ── Graceful shutdown ────────────────────────────────────────────────────
	select {
	case err := <-serveErr:
		return fmt.Errorf("http serve: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
