package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/gungle/gungle/internal/dependencies/clock"
	"github.com/gungle/gungle/internal/dependencies/idgen"
	"github.com/gungle/gungle/internal/services/catalog"
	"github.com/gungle/gungle/internal/services/daily"
	"github.com/gungle/gungle/internal/services/game"
	"github.com/gungle/gungle/internal/storage"
	"github.com/gungle/gungle/internal/storage/memory"
	redisstorage "github.com/gungle/gungle/internal/storage/redis"
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
	Clock clock.Clock
	IDGen idgen.Generator

	// Services
	CatalogService *catalog.Service
	DailySelector  *daily.Selector
	GameController *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// MaxGuesses caps the guesses per session (optional)
	// If zero, the game controller's default applies
	MaxGuesses int
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
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

	// Create external dependencies
	clk := clock.New()
	gen := idgen.New()

	return newWithDependencies(store, clk, gen, cfg.MaxGuesses, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, gen idgen.Generator, maxGuesses int, logger *slog.Logger) *App {
	// Create services
	catalogService := catalog.New(store, logger)
	dailySelector := daily.New(catalogService, clk, logger)
	gameController := game.NewController(store, catalogService, dailySelector, clk, gen, maxGuesses, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		IDGen:          gen,
		CatalogService: catalogService,
		DailySelector:  dailySelector,
		GameController: gameController,
	}
}
