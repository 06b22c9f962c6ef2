package memory

import (
	"context"
	"encoding/json"
	"slices"
	"sync"

	"github.com/mcoot/wordfeud-go/internal/model"
	"github.com/mcoot/wordfeud-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface. It lives
// as long as the process.
type Storage struct {
	mu sync.RWMutex

	boards   map[model.ID]json.RawMessage
	rulesets map[model.ID]json.RawMessage
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		boards:   make(map[model.ID]json.RawMessage),
		rulesets: make(map[model.ID]json.RawMessage),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Board operations

func (s *Storage) SaveBoard(ctx context.Context, id model.ID, board json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boards[id] = slices.Clone(board)
	return nil
}

func (s *Storage) GetBoard(ctx context.Context, id model.ID) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	board, ok := s.boards[id]
	if !ok {
		return nil, model.ErrBoardNotFound
	}
	return slices.Clone(board), nil
}

// Ruleset operations

func (s *Storage) SaveRuleset(ctx context.Context, id model.ID, tilePoints json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rulesets[id] = slices.Clone(tilePoints)
	return nil
}

func (s *Storage) GetRuleset(ctx context.Context, id model.ID) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tilePoints, ok := s.rulesets[id]
	if !ok {
		return nil, model.ErrRulesetNotFound
	}
	return slices.Clone(tilePoints), nil
}

// Len returns the number of cached boards and rulesets
func (s *Storage) Len() (boards, rulesets int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.boards), len(s.rulesets)
}
