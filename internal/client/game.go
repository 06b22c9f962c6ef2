package client

import (
	"context"
	"encoding/json"

	"github.com/mcoot/wordfeud-go/internal/model"
)

type moveRequest struct {
	Move    any      `json:"move"`
	Ruleset model.ID `json:"ruleset"`
	Words   []string `json:"words"`
}

type swapRequest struct {
	Tiles []string `json:"tiles"`
}

type chatRequest struct {
	Message string `json:"message"`
}

// GetGame returns one game's state
func (c *Client) GetGame(ctx context.Context, gameID model.ID, session string) (json.RawMessage, error) {
	if err := requireAll(requireID("game id", gameID), requireSession(session)); err != nil {
		return nil, err
	}
	return c.simpleGet(ctx, gamePath(gameID, ""), nil, session, "game")
}

// GetChat returns a game's chat messages
func (c *Client) GetChat(ctx context.Context, gameID model.ID, session string) ([]json.RawMessage, error) {
	if err := requireAll(requireID("game id", gameID), requireSession(session)); err != nil {
		return nil, err
	}
	raw, err := c.simpleGet(ctx, gamePath(gameID, "chat"), nil, session, "messages")
	if err != nil {
		return nil, err
	}
	return decodeList(raw)
}

// Chat sends a chat message and returns what the server reports as sent
func (c *Client) Chat(ctx context.Context, gameID model.ID, message, session string) (json.RawMessage, error) {
	if err := requireAll(requireID("game id", gameID), requireSession(session)); err != nil {
		return nil, err
	}
	if message == "" {
		return nil, model.Missing("message", "No message given")
	}
	return c.simpleGet(ctx, gamePath(gameID, "chat/send"), chatRequest{Message: message}, session, "sent")
}

// Move submits a move and returns its score together with the refreshed game.
// move is passed through to the server as-is.
func (c *Client) Move(ctx context.Context, gameID, rulesetID model.ID, move any, words []string, session string) (*model.MoveResult, error) {
	if err := requireAll(requireID("game id", gameID), requireSession(session)); err != nil {
		return nil, err
	}

	r, err := c.execute(ctx, gamePath(gameID, "move"), moveRequest{Move: move, Ruleset: rulesetID, Words: words}, session)
	if err != nil {
		return nil, err
	}

	var res model.MoveResult
	if err := decode(r.content, &res); err != nil {
		return nil, err
	}

	game, err := c.GetGame(ctx, gameID, session)
	if err != nil {
		return nil, err
	}
	res.Game = game
	return &res, nil
}

// Swap exchanges tiles and returns the new tiles together with the refreshed game
func (c *Client) Swap(ctx context.Context, gameID model.ID, tiles []string, session string) (*model.SwapResult, error) {
	if err := requireAll(requireID("game id", gameID), requireSession(session)); err != nil {
		return nil, err
	}
	if len(tiles) == 0 {
		return nil, model.Missing("tiles", "No tiles given")
	}

	r, err := c.execute(ctx, gamePath(gameID, "swap"), swapRequest{Tiles: tiles}, session)
	if err != nil {
		return nil, err
	}

	var res model.SwapResult
	if err := decode(r.content, &res); err != nil {
		return nil, err
	}

	game, err := c.GetGame(ctx, gameID, session)
	if err != nil {
		return nil, err
	}
	res.Game = game
	return &res, nil
}

// Pass passes the turn and returns the refreshed game
func (c *Client) Pass(ctx context.Context, gameID model.ID, session string) (json.RawMessage, error) {
	return c.mutateAndRefetch(ctx, gameID, "pass", session)
}

// Resign resigns the game and returns the refreshed game
func (c *Client) Resign(ctx context.Context, gameID model.ID, session string) (json.RawMessage, error) {
	return c.mutateAndRefetch(ctx, gameID, "resign", session)
}

// mutateAndRefetch posts a body-less game action, then re-reads the game. The
// re-read is only issued once the action succeeded.
func (c *Client) mutateAndRefetch(ctx context.Context, gameID model.ID, action, session string) (json.RawMessage, error) {
	if err := requireAll(requireID("game id", gameID), requireSession(session)); err != nil {
		return nil, err
	}
	if _, err := c.execute(ctx, gamePath(gameID, action), nil, session); err != nil {
		return nil, err
	}
	return c.GetGame(ctx, gameID, session)
}
