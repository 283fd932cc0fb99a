package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/lukemay/blankparty/internal/broadcast"
	"github.com/lukemay/blankparty/internal/dependencies/clock"
	"github.com/lukemay/blankparty/internal/dependencies/random"
	"github.com/lukemay/blankparty/internal/dependencies/scheduler"
	"github.com/lukemay/blankparty/internal/monitor"
	"github.com/lukemay/blankparty/internal/services/bot"
	"github.com/lukemay/blankparty/internal/services/prompt"
	"github.com/lukemay/blankparty/internal/services/room"
	"github.com/lukemay/blankparty/internal/storage"
	"github.com/lukemay/blankparty/internal/storage/memory"
	redisstorage "github.com/lukemay/blankparty/internal/storage/redis"
	"github.com/lukemay/blankparty/internal/transport/ws"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock     clock.Clock
	Random    random.Random
	Scheduler scheduler.Scheduler

	// Services
	Registry      *room.Registry
	PromptService *prompt.Service
	BotService    *bot.Service
	Controller    *room.Controller
	HubManager    *broadcast.HubManager
	Metrics       *monitor.Metrics
	Gateway       *ws.Gateway
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// MetricsNamespace prefixes Prometheus metric names
	// If empty, defaults to "blankparty"
	MetricsNamespace string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	namespace := cfg.MetricsNamespace
	if namespace == "" {
		namespace = "blankparty"
	}

	return newWithDependencies(store, clock.New(), random.New(), scheduler.New(), namespace, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, sched scheduler.Scheduler, namespace string, logger *slog.Logger) *App {
	registry := room.NewRegistry(store, rnd)
	promptService := prompt.NewService(rnd)
	botService := bot.NewService(rnd)
	hubManager := broadcast.NewHubManager(logger)
	metrics := monitor.NewMetrics(namespace)

	controller := room.NewController(store, registry, promptService, botService, hubManager, clk, sched, logger)
	gateway := ws.NewGateway(controller, hubManager, metrics, logger)

	return &App{
		Storage:       store,
		Clock:         clk,
		Random:        rnd,
		Scheduler:     sched,
		Registry:      registry,
		PromptService: promptService,
		BotService:    botService,
		Controller:    controller,
		HubManager:    hubManager,
		Metrics:       metrics,
		Gateway:       gateway,
	}
}
