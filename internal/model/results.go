package model

import "encoding/json"

// User is the identity the server returns on login
type User struct {
	ID       ID     `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginResult is the outcome of a completed login
type LoginResult struct {
	SessionID string `json:"session_id"`
	User      User   `json:"user"`
}

// MoveResult is the outcome of a submitted move, with the refreshed game
type MoveResult struct {
	NewTiles json.RawMessage `json:"new_tiles"`
	Points   json.RawMessage `json:"points"`
	MainWord json.RawMessage `json:"main_word"`
	Game     json.RawMessage `json:"game"`
}

// SwapResult is the outcome of a tile swap, with the refreshed game
type SwapResult struct {
	Updated  json.RawMessage `json:"updated"`
	NewTiles json.RawMessage `json:"new_tiles"`
	Game     json.RawMessage `json:"game"`
}
