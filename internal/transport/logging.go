package transport

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// LoggingRoundTripper logs one line per round trip. Bodies and cookies are never logged.
type LoggingRoundTripper struct {
	next   http.RoundTripper
	logger *slog.Logger
}

// NewLoggingRoundTripper wraps next; a nil logger discards output
func NewLoggingRoundTripper(next http.RoundTripper, logger *slog.Logger) *LoggingRoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &LoggingRoundTripper{next: next, logger: logger}
}

// RoundTrip implements http.RoundTripper
func (l *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	requestID := uuid.NewString()

	resp, err := l.next.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		l.logger.Warn("http request failed",
			slog.String("request_id", requestID),
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	l.logger.Debug("http request",
		slog.String("request_id", requestID),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int64("size", req.ContentLength),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", duration),
	)

	return resp, nil
}
