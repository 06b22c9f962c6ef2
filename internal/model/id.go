package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID identifies a server-side entity (user, game, board, ruleset, invite).
// The service assigns them; this layer treats them as opaque text.
type ID string

// IDFromInt converts a numeric id
func IDFromInt(n int64) ID {
	return ID(fmt.Sprintf("%d", n))
}

// String returns the id text
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the id is empty
func (id ID) IsZero() bool {
	return id == ""
}

// numeric reports whether the id is a plain decimal integer
func (id ID) numeric() bool {
	if id == "" || len(id) > 18 {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}
	return len(id) == 1 || id[0] != '0'
}

// MarshalJSON writes numeric ids as JSON numbers so they round-trip the way the
// server issued them.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.numeric() {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// UnmarshalJSON accepts either a JSON string or a JSON number
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}
