package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/wordfeud-go/internal/model"
	"github.com/mcoot/wordfeud-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface. Keys are
// written without a TTL.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = DefaultConfig().KeyPrefix
	}
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Board operations

func (s *Storage) SaveBoard(ctx context.Context, id model.ID, board json.RawMessage) error {
	return s.save(ctx, boardKey(s.cfg.KeyPrefix, id), board)
}

func (s *Storage) GetBoard(ctx context.Context, id model.ID) (json.RawMessage, error) {
	return s.get(ctx, boardKey(s.cfg.KeyPrefix, id), model.ErrBoardNotFound)
}

// Ruleset operations

func (s *Storage) SaveRuleset(ctx context.Context, id model.ID, tilePoints json.RawMessage) error {
	return s.save(ctx, rulesetKey(s.cfg.KeyPrefix, id), tilePoints)
}

func (s *Storage) GetRuleset(ctx context.Context, id model.ID) (json.RawMessage, error) {
	return s.get(ctx, rulesetKey(s.cfg.KeyPrefix, id), model.ErrRulesetNotFound)
}

func (s *Storage) save(ctx context.Context, key string, value json.RawMessage) error {
	// SETNX keeps the first stored value if two processes race
	return s.client.SetNX(ctx, key, []byte(value), 0).Err()
}

func (s *Storage) get(ctx context.Context, key string, notFound error) (json.RawMessage, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, notFound
		}
		return nil, err
	}
	if !json.Valid(data) {
		return nil, &model.MalformedResponseError{Reason: "corrupt cache entry " + key, Raw: string(data)}
	}
	return json.RawMessage(data), nil
}
