package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/pixelquest/riddlequest/internal/config"
	"github.com/pixelquest/riddlequest/internal/database"
	"github.com/pixelquest/riddlequest/internal/migrations"
	"github.com/pixelquest/riddlequest/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- SQLite ---
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}
	}
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	logger.Info("connected to sqlite", "path", cfg.DBPath)

	// --- Content ---
	if err := server.SeedContent(ctx, logger, db); err != nil {
		return fmt.Errorf("seeding content: %w", err)
	}
	store := server.NewSQLiteStore(db)
	content, err := server.LoadContent(ctx, store)
	if err != nil {
		return fmt.Errorf("loading game content: %w", err)
	}
	logger.Info("game content loaded",
		"riddles", content.Catalog.Len(),
		"rooms", len(content.Graph.Rooms()),
	)

	// --- HTTP Server ---
	sessions := server.NewRegistry(content)
	srv := server.New(cfg.HTTPAddr, logger, sessions, store, db, cfg.SPADir)

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
