package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/mcoot/wordfeud-go/internal/cache"
	"github.com/mcoot/wordfeud-go/internal/model"
	"github.com/mcoot/wordfeud-go/internal/protocol"
	"github.com/mcoot/wordfeud-go/internal/transport"
)

// Client exposes the service's operations. It is safe for concurrent use; the
// reference cache is the only state shared between calls.
type Client struct {
	transport transport.Transport
	refs      *cache.Cache
	logger    *slog.Logger
}

// New creates a Client. A nil logger discards output.
func New(tr transport.Transport, refs *cache.Cache, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Client{
		transport: tr,
		refs:      refs,
		logger:    logger,
	}
}

// reply is a successfully classified response
type reply struct {
	header  http.Header
	content json.RawMessage
}

// execute encodes body, sends it and classifies the response. The first error
// encountered is returned unchanged.
func (c *Client) execute(ctx context.Context, path string, body any, session string) (*reply, error) {
	text, n, err := protocol.Encode(body)
	if err != nil {
		return nil, err
	}

	resp, err := c.transport.Send(ctx, &transport.Request{
		Path:          path,
		Body:          text,
		ContentLength: n,
		Session:       session,
	})
	content, err := protocol.Classify(resp, err)
	if err != nil {
		c.logger.Debug("request failed",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	return &reply{header: resp.Header, content: content}, nil
}

// simpleGet executes a request and projects one property out of the content.
// An empty property returns the whole content.
func (c *Client) simpleGet(ctx context.Context, path string, body any, session, property string) (json.RawMessage, error) {
	r, err := c.execute(ctx, path, body, session)
	if err != nil {
		return nil, err
	}
	return project(r.content, property)
}

var jsonNull = json.RawMessage("null")

func project(content json.RawMessage, property string) (json.RawMessage, error) {
	if property == "" {
		return content, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(content, &obj); err != nil || obj == nil {
		return nil, &model.MalformedResponseError{Reason: "content is not an object", Raw: string(content), Err: err}
	}

	v, ok := obj[property]
	if !ok {
		return jsonNull, nil
	}
	return v, nil
}

// decode unmarshals content into v, reporting failure as a malformed response
func decode(content json.RawMessage, v any) error {
	if err := json.Unmarshal(content, v); err != nil {
		return &model.MalformedResponseError{Reason: "unexpected content", Raw: string(content), Err: err}
	}
	return nil
}

// decodeList splits a JSON array into its elements; null is an empty list
func decodeList(raw json.RawMessage) ([]json.RawMessage, error) {
	var items []json.RawMessage
	if err := decode(raw, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []json.RawMessage{}
	}
	return items, nil
}

func gamePath(gameID model.ID, action string) string {
	p := "game/" + url.PathEscape(gameID.String()) + "/"
	if action != "" {
		p += action + "/"
	}
	return p
}

func entityPath(root string, id model.ID, action string) string {
	p := fmt.Sprintf("%s/%s/", root, url.PathEscape(id.String()))
	if action != "" {
		p += action + "/"
	}
	return p
}

func requireSession(session string) error {
	if session == "" {
		return model.Missing("session", "No session given")
	}
	return nil
}

func requireID(field string, id model.ID) error {
	if id.IsZero() {
		return model.Missing(field, "No "+field+" given")
	}
	return nil
}

// requireAll returns the first failing guard
func requireAll(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
