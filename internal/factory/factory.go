package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/wordfeud-go/internal/cache"
	"github.com/mcoot/wordfeud-go/internal/client"
	"github.com/mcoot/wordfeud-go/internal/config"
	"github.com/mcoot/wordfeud-go/internal/storage"
	"github.com/mcoot/wordfeud-go/internal/storage/memory"
	redisstorage "github.com/mcoot/wordfeud-go/internal/storage/redis"
	"github.com/mcoot/wordfeud-go/internal/transport"
)

// App contains all wired client components
type App struct {
	// Storage backs the reference cache
	Storage storage.Storage

	Cache     *cache.Cache
	Transport transport.Transport
	Client    *client.Client

	closers []io.Closer
}

// New creates a new application with all dependencies wired. A nil logger
// discards output.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	var (
		store   storage.Storage
		closers []io.Closer
	)
	switch cfg.Cache.Backend {
	case config.BackendMemory:
		store = memory.New()
	case config.BackendRedis:
		redisStore, err := redisstorage.New(redisstorage.Config{
			URL:          cfg.Cache.Redis.URL,
			PoolSize:     cfg.Cache.Redis.PoolSize,
			MinIdleConns: cfg.Cache.Redis.MinIdleConns,
			KeyPrefix:    cfg.Cache.Redis.KeyPrefix,
		})
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		store = redisStore
		closers = append(closers, redisStore)
	default:
		return nil, errors.New("invalid cache backend: must be 'memory' or 'redis'")
	}

	tr := transport.NewHTTP(transport.Config{
		Scheme:    cfg.Scheme,
		Host:      cfg.Host,
		Root:      cfg.Root,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout,
	}, logger)

	app := newWithDependencies(store, tr, logger)
	app.closers = closers
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, tr transport.Transport, logger *slog.Logger) *App {
	refs := cache.New(store, logger)
	return &App{
		Storage:   store,
		Cache:     refs,
		Transport: tr,
		Client:    client.New(tr, refs, logger),
	}
}

// Close releases backend connections
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
