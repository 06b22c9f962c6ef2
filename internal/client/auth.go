package client

import (
	"context"
	"log/slog"

	"github.com/mcoot/wordfeud-go/internal/model"
	"github.com/mcoot/wordfeud-go/internal/protocol"
)

type loginRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

type loginIDRequest struct {
	ID       model.ID `json:"id"`
	Password string   `json:"password"`
}

// Login authenticates with a username or an email address. The first call
// issues the session cookie; identity is then confirmed with LoginWithID
// carrying that session.
func (c *Client) Login(ctx context.Context, user, password string) (*model.LoginResult, error) {
	if user == "" {
		return nil, model.Missing("user", "No username/email given")
	}
	if password == "" {
		return nil, model.Missing("password", "No password given")
	}

	path := "user/login/"
	body := loginRequest{Password: protocol.HashPassword(password)}
	if protocol.IsEmail(user) {
		path = "user/login/email/"
		body.Email = user
	} else {
		body.Username = user
	}

	r, err := c.execute(ctx, path, body, "")
	if err != nil {
		return nil, err
	}

	var who struct {
		ID model.ID `json:"id"`
	}
	if err := decode(r.content, &who); err != nil {
		return nil, err
	}
	if who.ID.IsZero() {
		return nil, &model.MalformedResponseError{Reason: "login reply has no id", Raw: string(r.content)}
	}

	return c.LoginWithID(ctx, who.ID, password, protocol.ExtractSession(r.header))
}

// LoginWithID authenticates with a user id. A non-empty session is kept;
// otherwise the one issued by this call is returned.
func (c *Client) LoginWithID(ctx context.Context, id model.ID, password, session string) (*model.LoginResult, error) {
	if id.IsZero() {
		return nil, model.Missing("id", "No id given")
	}
	if password == "" {
		return nil, model.Missing("password", "No password given")
	}

	body := loginIDRequest{ID: id, Password: protocol.HashPassword(password)}
	r, err := c.execute(ctx, "user/login/id/", body, session)
	if err != nil {
		return nil, err
	}

	var user model.User
	if err := decode(r.content, &user); err != nil {
		return nil, err
	}

	if session == "" {
		session = protocol.ExtractSession(r.header)
	}

	c.logger.Debug("logged in", slog.String("user_id", user.ID.String()))

	return &model.LoginResult{SessionID: session, User: user}, nil
}
