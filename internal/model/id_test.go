package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDMarshalsNumericAsNumber(t *testing.T) {
	data, err := json.Marshal(map[string]ID{"id": "12345"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":12345}`, string(data))
	assert.Equal(t, `{"id":12345}`, string(data))
}

func TestIDMarshalsTextAsString(t *testing.T) {
	for _, id := range []ID{"abc", "012", "-1", "1.5", ""} {
		data, err := json.Marshal(id)
		require.NoError(t, err)
		assert.Equal(t, `"`+string(id)+`"`, string(data), "id %q", id)
	}
}

func TestIDUnmarshalAcceptsNumberAndString(t *testing.T) {
	var v struct {
		A ID `json:"a"`
		B ID `json:"b"`
		C ID `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 42, "b": "x7", "c": null}`), &v))
	assert.Equal(t, ID("42"), v.A)
	assert.Equal(t, ID("x7"), v.B)
	assert.True(t, v.C.IsZero())
}

func TestIDUnmarshalRejectsObject(t *testing.T) {
	var id ID
	assert.Error(t, json.Unmarshal([]byte(`{"x":1}`), &id))
}

func TestIDFromInt(t *testing.T) {
	assert.Equal(t, ID("7"), IDFromInt(7))
}

func TestErrorClasses(t *testing.T) {
	cases := []struct {
		err      error
		sentinel error
	}{
		{&TransportError{Err: errors.New("dial")}, ErrTransport},
		{&ProtocolError{StatusCode: 502}, ErrProtocol},
		{&MalformedResponseError{Reason: "no status", Raw: "{}"}, ErrMalformedResponse},
		{&DomainError{Type: "wrong_password"}, ErrDomain},
		{Missing("password", "No password given"), ErrValidation},
		{&EncodingError{Err: errors.New("cycle")}, ErrEncoding},
	}

	all := []error{ErrTransport, ErrProtocol, ErrMalformedResponse, ErrDomain, ErrValidation, ErrEncoding}
	for _, tc := range cases {
		for _, s := range all {
			assert.Equal(t, s == tc.sentinel, errors.Is(tc.err, s), "%v vs %v", tc.err, s)
		}
	}
}

func TestIsDomainType(t *testing.T) {
	err := error(&DomainError{Type: "not_your_turn"})
	assert.True(t, IsDomainType(err, "not_your_turn"))
	assert.False(t, IsDomainType(err, "other"))
	assert.False(t, IsDomainType(ErrTransport, "not_your_turn"))
}
