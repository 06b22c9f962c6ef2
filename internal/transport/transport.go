package transport

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mcoot/wordfeud-go/internal/model"
)

// Request describes one call to the service. It is built fresh per call.
type Request struct {
	// Path is relative to the root segment, e.g. "game/123/"
	Path string
	// Body is the serialized JSON body, empty for no body
	Body string
	// ContentLength is the exact number of bytes Body occupies on the wire
	ContentLength int
	// Session is the session token, empty when not authenticated
	Session string
}

// Response is what came back from the server. A non-200 status is still a Response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       string
}

// Transport performs one POST to the service
type Transport interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// Config holds the fixed request parameters
type Config struct {
	// Scheme is "http" or "https"
	Scheme string
	// Host is the service host, optionally with a port
	Host string
	// Root is the path prefix every call is under, e.g. "/wf/"
	Root string
	// UserAgent is sent on every request
	UserAgent string
	// Timeout bounds a whole round trip; zero means no timeout
	Timeout time.Duration
}

// SessionCookie is the cookie carrying the session token in both directions
const SessionCookie = "sessionid"

// HTTPTransport sends requests over net/http
type HTTPTransport struct {
	cfg        Config
	httpClient *http.Client
}

// Ensure HTTPTransport implements Transport
var _ Transport = (*HTTPTransport)(nil)

// NewHTTP creates an HTTPTransport whose round trips are logged
func NewHTTP(cfg Config, logger *slog.Logger) *HTTPTransport {
	httpClient := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: NewLoggingRoundTripper(http.DefaultTransport, logger),
	}
	return NewHTTPWithClient(cfg, httpClient)
}

// NewHTTPWithClient creates an HTTPTransport with an existing client (for testing)
func NewHTTPWithClient(cfg Config, httpClient *http.Client) *HTTPTransport {
	if cfg.Scheme == "" {
		cfg.Scheme = "http"
	}
	return &HTTPTransport{
		cfg:        cfg,
		httpClient: httpClient,
	}
}

// URL returns the full URL for a relative path
func (t *HTTPTransport) URL(path string) string {
	return t.cfg.Scheme + "://" + t.cfg.Host + JoinPath(t.cfg.Root, path)
}

// JoinPath joins the root segment and a relative path, ending in a slash
func JoinPath(root, path string) string {
	var segments []string
	for _, part := range []string{root, path} {
		if trimmed := strings.Trim(part, "/"); trimmed != "" {
			segments = append(segments, trimmed)
		}
	}
	if len(segments) == 0 {
		return "/"
	}
	return "/" + strings.Join(segments, "/") + "/"
}

// Send performs the POST. Only connection and read failures are errors; the
// status code is left for the caller to classify.
func (t *HTTPTransport) Send(ctx context.Context, r *Request) (*Response, error) {
	if r.Path == "" {
		return nil, model.Missing("path", "You must specify a path")
	}
	if r.ContentLength != len(r.Body) {
		return nil, &model.EncodingError{
			Err: fmt.Errorf("content length %d does not match body of %d bytes", r.ContentLength, len(r.Body)),
		}
	}

	var body io.Reader = http.NoBody
	if r.Body != "" {
		body = strings.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.URL(r.Path), body)
	if err != nil {
		return nil, &model.TransportError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.ContentLength = int64(r.ContentLength)

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", t.cfg.UserAgent)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Length", strconv.Itoa(r.ContentLength))
	if r.Session != "" {
		req.Header.Set("Cookie", SessionCookie+"="+r.Session)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, &model.TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &model.TransportError{Err: fmt.Errorf("failed to read response: %w", err)}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       string(respBody),
	}, nil
}
