package client

import (
	"context"
	"encoding/json"

	"github.com/mcoot/wordfeud-go/internal/model"
)

type inviteRequest struct {
	Invitee   string   `json:"invitee,omitempty"`
	Ruleset   model.ID `json:"ruleset"`
	BoardType string   `json:"board_type"`
}

// InviteUser invites a named user to a new game
func (c *Client) InviteUser(ctx context.Context, user string, rulesetID model.ID, boardType, session string) (json.RawMessage, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	if user == "" {
		return nil, model.Missing("user", "No invitee given")
	}
	body := inviteRequest{Invitee: user, Ruleset: rulesetID, BoardType: boardType}
	return c.simpleGet(ctx, "invite/new/", body, session, "invitation")
}

// InviteRandom asks to be matched with a random opponent
func (c *Client) InviteRandom(ctx context.Context, rulesetID model.ID, boardType, session string) (json.RawMessage, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	body := inviteRequest{Ruleset: rulesetID, BoardType: boardType}
	return c.simpleGet(ctx, "random_request/create/", body, session, "request")
}

// AcceptInvite accepts an invitation and returns the id of the new game
func (c *Client) AcceptInvite(ctx context.Context, inviteID model.ID, session string) (model.ID, error) {
	if err := requireAll(requireID("invite id", inviteID), requireSession(session)); err != nil {
		return "", err
	}
	raw, err := c.simpleGet(ctx, entityPath("invite", inviteID, "accept"), nil, session, "id")
	if err != nil {
		return "", err
	}
	var gameID model.ID
	if err := decode(raw, &gameID); err != nil {
		return "", err
	}
	return gameID, nil
}

// RejectInvite declines an invitation
func (c *Client) RejectInvite(ctx context.Context, inviteID model.ID, session string) error {
	if err := requireAll(requireID("invite id", inviteID), requireSession(session)); err != nil {
		return err
	}
	_, err := c.execute(ctx, entityPath("invite", inviteID, "reject"), nil, session)
	return err
}
