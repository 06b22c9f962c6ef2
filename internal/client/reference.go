package client

import (
	"context"
	"encoding/json"

	"github.com/mcoot/wordfeud-go/internal/model"
)

// GetBoard returns a board layout. Layouts are cached for the life of the
// client; the session is only used on the first fetch of an id.
func (c *Client) GetBoard(ctx context.Context, boardID model.ID, session string) (json.RawMessage, error) {
	if err := requireAll(requireID("board id", boardID), requireSession(session)); err != nil {
		return nil, err
	}
	return c.refs.GetBoard(ctx, boardID, func(ctx context.Context) (json.RawMessage, error) {
		return c.simpleGet(ctx, entityPath("board", boardID, ""), nil, session, "board")
	})
}

// GetRuleset returns a ruleset's tile points, cached like boards
func (c *Client) GetRuleset(ctx context.Context, rulesetID model.ID, session string) (json.RawMessage, error) {
	if err := requireAll(requireID("ruleset id", rulesetID), requireSession(session)); err != nil {
		return nil, err
	}
	return c.refs.GetRuleset(ctx, rulesetID, func(ctx context.Context) (json.RawMessage, error) {
		return c.simpleGet(ctx, entityPath("tile_points", rulesetID, ""), nil, session, "tile_points")
	})
}
