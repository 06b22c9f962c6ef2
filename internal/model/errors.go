package model

import (
	"errors"
	"fmt"
)

// Error classes every failure in the pipeline belongs to. Check with errors.Is.
var (
	// ErrTransport means the request never produced an HTTP response
	ErrTransport = errors.New("transport failure")
	// ErrProtocol means the server answered with a non-200 status
	ErrProtocol = errors.New("protocol failure")
	// ErrMalformedResponse means the body was not a recognised envelope
	ErrMalformedResponse = errors.New("malformed response")
	// ErrDomain means the server understood the request and refused it
	ErrDomain = errors.New("domain error")
	// ErrValidation means a required argument was missing; no request was sent
	ErrValidation = errors.New("validation error")
	// ErrEncoding means the request body could not be serialized
	ErrEncoding = errors.New("encoding error")
)

// Storage errors
var (
	ErrBoardNotFound   = errors.New("board not found")
	ErrRulesetNotFound = errors.New("ruleset not found")
)

// TransportError wraps a connection-level failure
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// ProtocolError reports a non-200 HTTP status
type ProtocolError struct {
	StatusCode int
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("got status code %d", e.StatusCode)
}

func (e *ProtocolError) Is(target error) bool { return target == ErrProtocol }

// MalformedResponseError carries the raw body that failed to classify
type MalformedResponseError struct {
	Reason string
	Raw    string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed response: %s: %v: %s", e.Reason, e.Err, e.Raw)
	}
	return fmt.Sprintf("malformed response: %s: %s", e.Reason, e.Raw)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

func (e *MalformedResponseError) Is(target error) bool { return target == ErrMalformedResponse }

// DomainError is an explicit rejection by the server. Type is passed through
// verbatim; the set of values is owned by the server.
type DomainError struct {
	Type string
}

func (e *DomainError) Error() string {
	return "error: " + e.Type
}

func (e *DomainError) Is(target error) bool { return target == ErrDomain }

// ValidationError is raised client-side before any network call
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Missing builds the ValidationError for an absent required argument
func Missing(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// EncodingError wraps a serialization failure of a request body
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("failed to encode request body: %v", e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

func (e *EncodingError) Is(target error) bool { return target == ErrEncoding }

// IsDomainType reports whether err is a DomainError with the given type
func IsDomainType(err error, typ string) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Type == typ
}
