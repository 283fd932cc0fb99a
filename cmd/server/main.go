package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lukemay/blankparty/internal/api"
	"github.com/lukemay/blankparty/internal/config"
	"github.com/lukemay/blankparty/internal/factory"
	redisstorage "github.com/lukemay/blankparty/internal/storage/redis"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "blankpartyd",
		Short: "Realtime word-matching party game server",
		Long: `blankpartyd hosts rooms for a realtime word-matching party game.

Players join a room by code over a websocket, fill in the blank on a
shared prompt each round, and score points for matching each other.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", ".", "Directory to search for config.yaml")

	return cmd
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := newLogger(cfg.Log.Level)
	slog.SetDefault(logger)

	factoryCfg := factory.Config{
		Logger:      logger,
		StorageType: cfg.Storage.Type,
	}
	if cfg.Storage.Type == factory.StorageTypeRedis {
		factoryCfg.RedisConfig = &redisstorage.Config{
			URL:          cfg.Storage.Redis.URL,
			PoolSize:     cfg.Storage.Redis.PoolSize,
			MinIdleConns: cfg.Storage.Redis.MinIdleConns,
			RoomTTL:      cfg.Storage.Redis.RoomTTL,
		}
	}

	app, err := factory.New(factoryCfg)
	if err != nil {
		return fmt.Errorf("creating application: %w", err)
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:   logger,
		Gateway:  app.Gateway,
		Registry: app.Registry,
		Metrics:  app.Metrics,
	})

	server := api.NewServer(router, api.ServerConfig{
		Host:            cfg.Server.Host,
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			return err
		}
	}

	logger.Info("server stopped")
	return nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
