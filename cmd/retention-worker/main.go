package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bragboard/bragboard-service/internal/config"
	"github.com/bragboard/bragboard-service/internal/storage/postgres"
)

// RetentionWorker permanently purges shoutouts that have been soft-deleted
// longer than the configured retention window, along with their tags,
// reactions, comments and reports.
type RetentionWorker struct {
	storage   *postgres.Postgres
	interval  time.Duration
	retention time.Duration
	logger    *slog.Logger
}

func NewRetentionWorker(storage *postgres.Postgres, interval, retention time.Duration) *RetentionWorker {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	return &RetentionWorker{
		storage:   storage,
		interval:  interval,
		retention: retention,
		logger:    logger,
	}
}

func (rw *RetentionWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(rw.interval)
	defer ticker.Stop()

	rw.logger.Info("Retention worker started",
		"interval", rw.interval.String(),
		"retention", rw.retention.String())

	// Run once immediately on startup
	rw.purgeExpired(ctx)

	for {
		select {
		case <-ctx.Done():
			rw.logger.Info("Retention worker shutting down")
			return
		case <-ticker.C:
			rw.purgeExpired(ctx)
		}
	}
}

func (rw *RetentionWorker) purgeExpired(ctx context.Context) {
	startTime := time.Now()

	rw.logger.Info("Starting retention purge")

	cutoff := time.Now().UTC().Add(-rw.retention)
	count, err := rw.storage.PurgeDeletedShoutOuts(cutoff)
	if err != nil {
		rw.logger.Error("Failed to purge deleted shoutouts",
			"error", err.Error(),
			"duration_ms", time.Since(startTime).Milliseconds())
		return
	}

	duration := time.Since(startTime)

	rw.logger.Info("Completed retention purge",
		"shoutouts_purged", count,
		"cutoff", cutoff.Format(time.RFC3339),
		"duration_ms", duration.Milliseconds())
}

func main() {
	// Load config
	cfg := config.MustLoad()

	// Initialize database connection
	storage, err := postgres.NewPostgres(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	slog.Info("Connected to Postgres database")

	interval := time.Duration(cfg.Retention.IntervalMinutes) * time.Minute
	retention := time.Duration(cfg.Retention.PurgeAfterDays) * 24 * time.Hour
	worker := NewRetentionWorker(storage, interval, retention)

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		slog.Info("Received shutdown signal")
		cancel()
	}()

	worker.Start(ctx)

	slog.Info("Retention worker stopped")
}
