package client

import (
	"context"
	"encoding/json"

	"github.com/mcoot/wordfeud-go/internal/future"
	"github.com/mcoot/wordfeud-go/internal/model"
)

// Async runs each operation in the background and delivers its outcome,
// including argument validation failures, through a Future.
type Async struct {
	c *Client
}

// Async returns the deferred-completion view of the client
func (c *Client) Async() *Async {
	return &Async{c: c}
}

// Login runs Client.Login in the background
func (a *Async) Login(ctx context.Context, user, password string) *future.Future[*model.LoginResult] {
	return future.Go(func() (*model.LoginResult, error) { return a.c.Login(ctx, user, password) })
}

// LoginWithID runs Client.LoginWithID in the background
func (a *Async) LoginWithID(ctx context.Context, id model.ID, password, session string) *future.Future[*model.LoginResult] {
	return future.Go(func() (*model.LoginResult, error) { return a.c.LoginWithID(ctx, id, password, session) })
}

// GetGames runs Client.GetGames in the background
func (a *Async) GetGames(ctx context.Context, session string) *future.Future[[]json.RawMessage] {
	return future.Go(func() ([]json.RawMessage, error) { return a.c.GetGames(ctx, session) })
}

// GetGame runs Client.GetGame in the background
func (a *Async) GetGame(ctx context.Context, gameID model.ID, session string) *future.Future[json.RawMessage] {
	return future.Go(func() (json.RawMessage, error) { return a.c.GetGame(ctx, gameID, session) })
}

// GetChat runs Client.GetChat in the background
func (a *Async) GetChat(ctx context.Context, gameID model.ID, session string) *future.Future[[]json.RawMessage] {
	return future.Go(func() ([]json.RawMessage, error) { return a.c.GetChat(ctx, gameID, session) })
}

// GetRelationships runs Client.GetRelationships in the background
func (a *Async) GetRelationships(ctx context.Context, session string) *future.Future[[]json.RawMessage] {
	return future.Go(func() ([]json.RawMessage, error) { return a.c.GetRelationships(ctx, session) })
}

// GetNotifications runs Client.GetNotifications in the background
func (a *Async) GetNotifications(ctx context.Context, session string) *future.Future[[]json.RawMessage] {
	return future.Go(func() ([]json.RawMessage, error) { return a.c.GetNotifications(ctx, session) })
}

// GetStatus runs Client.GetStatus in the background
func (a *Async) GetStatus(ctx context.Context, session string) *future.Future[json.RawMessage] {
	return future.Go(func() (json.RawMessage, error) { return a.c.GetStatus(ctx, session) })
}

// GetBoard runs Client.GetBoard in the background
func (a *Async) GetBoard(ctx context.Context, boardID model.ID, session string) *future.Future[json.RawMessage] {
	return future.Go(func() (json.RawMessage, error) { return a.c.GetBoard(ctx, boardID, session) })
}

// GetRuleset runs Client.GetRuleset in the background
func (a *Async) GetRuleset(ctx context.Context, rulesetID model.ID, session string) *future.Future[json.RawMessage] {
	return future.Go(func() (json.RawMessage, error) { return a.c.GetRuleset(ctx, rulesetID, session) })
}

// Move runs Client.Move in the background
func (a *Async) Move(ctx context.Context, gameID, rulesetID model.ID, move any, words []string, session string) *future.Future[*model.MoveResult] {
	return future.Go(func() (*model.MoveResult, error) {
		return a.c.Move(ctx, gameID, rulesetID, move, words, session)
	})
}

// Swap runs Client.Swap in the background
func (a *Async) Swap(ctx context.Context, gameID model.ID, tiles []string, session string) *future.Future[*model.SwapResult] {
	return future.Go(func() (*model.SwapResult, error) { return a.c.Swap(ctx, gameID, tiles, session) })
}

// Pass runs Client.Pass in the background
func (a *Async) Pass(ctx context.Context, gameID model.ID, session string) *future.Future[json.RawMessage] {
	return future.Go(func() (json.RawMessage, error) { return a.c.Pass(ctx, gameID, session) })
}

// Resign runs Client.Resign in the background
func (a *Async) Resign(ctx context.Context, gameID model.ID, session string) *future.Future[json.RawMessage] {
	return future.Go(func() (json.RawMessage, error) { return a.c.Resign(ctx, gameID, session) })
}

// Chat runs Client.Chat in the background
func (a *Async) Chat(ctx context.Context, gameID model.ID, message, session string) *future.Future[json.RawMessage] {
	return future.Go(func() (json.RawMessage, error) { return a.c.Chat(ctx, gameID, message, session) })
}

// InviteUser runs Client.InviteUser in the background
func (a *Async) InviteUser(ctx context.Context, user string, rulesetID model.ID, boardType, session string) *future.Future[json.RawMessage] {
	return future.Go(func() (json.RawMessage, error) {
		return a.c.InviteUser(ctx, user, rulesetID, boardType, session)
	})
}

// InviteRandom runs Client.InviteRandom in the background
func (a *Async) InviteRandom(ctx context.Context, rulesetID model.ID, boardType, session string) *future.Future[json.RawMessage] {
	return future.Go(func() (json.RawMessage, error) { return a.c.InviteRandom(ctx, rulesetID, boardType, session) })
}

// AcceptInvite runs Client.AcceptInvite in the background
func (a *Async) AcceptInvite(ctx context.Context, inviteID model.ID, session string) *future.Future[model.ID] {
	return future.Go(func() (model.ID, error) { return a.c.AcceptInvite(ctx, inviteID, session) })
}

// RejectInvite runs Client.RejectInvite; the Future carries only its error
func (a *Async) RejectInvite(ctx context.Context, inviteID model.ID, session string) *future.Future[struct{}] {
	return future.Go(func() (struct{}, error) { return struct{}{}, a.c.RejectInvite(ctx, inviteID, session) })
}
