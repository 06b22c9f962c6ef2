package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"slices"

	"golang.org/x/sync/singleflight"

	"github.com/mcoot/wordfeud-go/internal/model"
	"github.com/mcoot/wordfeud-go/internal/storage"
)

// Fetch performs the network round trip for a reference entity
type Fetch func(ctx context.Context) (json.RawMessage, error)

// Cache is a read-through cache for board layouts and rulesets. An id is
// fetched at most once; concurrent first requests for the same id share one
// fetch. Entries are never evicted: boards and rulesets are assumed immutable
// on the server.
type Cache struct {
	store  storage.Storage
	group  singleflight.Group
	logger *slog.Logger
}

// New creates a Cache over the given storage
func New(store storage.Storage, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Cache{
		store:  store,
		logger: logger,
	}
}

type kind struct {
	name     string
	get      func(ctx context.Context, id model.ID) (json.RawMessage, error)
	save     func(ctx context.Context, id model.ID, v json.RawMessage) error
	notFound error
}

func (c *Cache) boards() kind {
	return kind{name: "board", get: c.store.GetBoard, save: c.store.SaveBoard, notFound: model.ErrBoardNotFound}
}

func (c *Cache) rulesets() kind {
	return kind{name: "ruleset", get: c.store.GetRuleset, save: c.store.SaveRuleset, notFound: model.ErrRulesetNotFound}
}

// GetBoard returns the cached board, calling fetch only on the first request for id
func (c *Cache) GetBoard(ctx context.Context, id model.ID, fetch Fetch) (json.RawMessage, error) {
	return c.getOrFetch(ctx, c.boards(), id, fetch)
}

// GetRuleset returns the cached tile points, calling fetch only on the first request for id
func (c *Cache) GetRuleset(ctx context.Context, id model.ID, fetch Fetch) (json.RawMessage, error) {
	return c.getOrFetch(ctx, c.rulesets(), id, fetch)
}

func (c *Cache) getOrFetch(ctx context.Context, k kind, id model.ID, fetch Fetch) (json.RawMessage, error) {
	if v, ok := c.lookup(ctx, k, id); ok {
		return v, nil
	}

	key := k.name + ":" + id.String()

	// The flight outlives any single caller so one cancelled waiter does not
	// fail the others.
	flightCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		// Another flight may have stored the entry after our lookup missed
		if v, ok := c.lookup(flightCtx, k, id); ok {
			return v, nil
		}

		c.logger.Debug("reference cache miss", slog.String("kind", k.name), slog.String("id", id.String()))

		v, err := fetch(flightCtx)
		if err != nil {
			return nil, err
		}
		if absent(v) {
			// Served but not stored; the next request fetches again
			return v, nil
		}
		if err := k.save(flightCtx, id, v); err != nil {
			c.logger.Warn("failed to store reference entity",
				slog.String("kind", k.name),
				slog.String("id", id.String()),
				slog.String("error", err.Error()),
			)
		}
		return v, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return slices.Clone(res.Val.(json.RawMessage)), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// absent reports whether a fetched entity is empty or JSON null
func absent(v json.RawMessage) bool {
	trimmed := bytes.TrimSpace(v)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func (c *Cache) lookup(ctx context.Context, k kind, id model.ID) (json.RawMessage, bool) {
	v, err := k.get(ctx, id)
	if err == nil {
		return v, true
	}
	if !errors.Is(err, k.notFound) {
		c.logger.Warn("reference cache lookup failed",
			slog.String("kind", k.name),
			slog.String("id", id.String()),
			slog.String("error", err.Error()),
		)
	}
	return nil, false
}
