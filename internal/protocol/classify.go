package protocol

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/wordfeud-go/internal/model"
	"github.com/mcoot/wordfeud-go/internal/transport"
)

// Envelope statuses
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the {status, content} wrapper of every reply
type Envelope struct {
	Status  *string         `json:"status"`
	Content json.RawMessage `json:"content"`
}

var errNoResponse = errors.New("no response")

type errorContent struct {
	Type json.RawMessage `json:"type"`
}

// Classify turns one transport outcome into the success content or exactly one
// of the pipeline errors. It never panics.
func Classify(resp *transport.Response, err error) (json.RawMessage, error) {
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, &model.TransportError{Err: errNoResponse}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &model.ProtocolError{StatusCode: resp.StatusCode}
	}

	var env Envelope
	if err := json.Unmarshal([]byte(resp.Body), &env); err != nil {
		return nil, &model.MalformedResponseError{Reason: "invalid envelope", Raw: resp.Body, Err: err}
	}
	if env.Status == nil || *env.Status == "" {
		return nil, &model.MalformedResponseError{Reason: "no status", Raw: resp.Body}
	}

	switch *env.Status {
	case StatusSuccess:
		return env.Content, nil
	case StatusError:
		return nil, &model.DomainError{Type: errorType(env.Content)}
	default:
		return nil, &model.MalformedResponseError{Reason: "unrecognised status", Raw: resp.Body}
	}
}

// errorType pulls content.type out of an error envelope. Non-string types are
// passed through as their JSON text.
func errorType(content json.RawMessage) string {
	var ec errorContent
	if err := json.Unmarshal(content, &ec); err != nil || len(ec.Type) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(ec.Type, &s); err == nil {
		return s
	}
	return string(ec.Type)
}
