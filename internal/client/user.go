package client

import (
	"context"
	"encoding/json"
)

// GetGames returns the user's games
func (c *Client) GetGames(ctx context.Context, session string) ([]json.RawMessage, error) {
	return c.getList(ctx, "user/games/", session, "games")
}

// GetRelationships returns the user's friends and blocked users
func (c *Client) GetRelationships(ctx context.Context, session string) ([]json.RawMessage, error) {
	return c.getList(ctx, "user/relationships/", session, "relationships")
}

// GetNotifications returns the user's notification entries
func (c *Client) GetNotifications(ctx context.Context, session string) ([]json.RawMessage, error) {
	return c.getList(ctx, "user/notifications/", session, "entries")
}

// GetStatus returns the user's status summary as sent by the server
func (c *Client) GetStatus(ctx context.Context, session string) (json.RawMessage, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	return c.simpleGet(ctx, "user/status/", nil, session, "")
}

func (c *Client) getList(ctx context.Context, path, session, property string) ([]json.RawMessage, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	raw, err := c.simpleGet(ctx, path, nil, session, property)
	if err != nil {
		return nil, err
	}
	return decodeList(raw)
}
