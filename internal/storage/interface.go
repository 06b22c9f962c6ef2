package storage

import (
	"context"
	"encoding/json"

	"github.com/mcoot/wordfeud-go/internal/model"
)

// Storage persists reference entities. Entries are immutable once saved and
// never expire.
type Storage interface {
	// Board operations
	SaveBoard(ctx context.Context, id model.ID, board json.RawMessage) error
	GetBoard(ctx context.Context, id model.ID) (json.RawMessage, error)

	// Ruleset operations
	SaveRuleset(ctx context.Context, id model.ID, tilePoints json.RawMessage) error
	GetRuleset(ctx context.Context, id model.ID) (json.RawMessage, error)
}
