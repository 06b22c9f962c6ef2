package fakeserver

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordfeud-go/internal/model"
	"github.com/mcoot/wordfeud-go/internal/protocol"
	"github.com/mcoot/wordfeud-go/internal/transport"
)

// Response helpers

func writeEnvelope(w http.ResponseWriter, status string, content any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]any{"status": status, "content": content})
}

func writeSuccess(w http.ResponseWriter, content any) {
	writeEnvelope(w, protocol.StatusSuccess, content)
}

func writeError(w http.ResponseWriter, typ string) {
	writeEnvelope(w, protocol.StatusError, map[string]string{"type": typ})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, ErrTypeBadRequest)
		return false
	}
	return true
}

func (s *Server) sessionUser(r *http.Request) (model.ID, bool) {
	c, err := r.Cookie(transport.SessionCookie)
	if err != nil {
		return "", false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.sessions[c.Value]
	return id, ok
}

func userContent(u *User) map[string]any {
	return map[string]any{"id": u.ID, "username": u.Username, "email": u.Email}
}

func bump(m map[string]any, key string) int {
	var n int
	switch v := m[key].(type) {
	case int:
		n = v
	case float64:
		n = int(v)
	}
	n++
	m[key] = n
	return n
}

// Login

type credentials struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	ID       model.ID `json:"id"`
	Password string   `json:"password"`
}

func (s *Server) handleLoginUsername(w http.ResponseWriter, r *http.Request) {
	s.login(w, r, ErrTypeUnknownUsername, func(c credentials, u *User) bool {
		return c.Username != "" && u.Username == c.Username
	})
}

func (s *Server) handleLoginEmail(w http.ResponseWriter, r *http.Request) {
	s.login(w, r, ErrTypeUnknownEmail, func(c credentials, u *User) bool {
		return c.Email != "" && strings.EqualFold(u.Email, c.Email)
	})
}

func (s *Server) handleLoginID(w http.ResponseWriter, r *http.Request) {
	s.login(w, r, ErrTypeUnknownUser, func(c credentials, u *User) bool {
		return u.ID == c.ID
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request, unknown string, match func(credentials, *User) bool) {
	var c credentials
	if !decodeBody(w, r, &c) {
		return
	}

	current, hasSession := s.sessionUser(r)

	s.mu.Lock()
	var user *User
	for _, u := range s.users {
		if match(c, u) {
			user = u
			break
		}
	}
	if user == nil {
		s.mu.Unlock()
		writeError(w, unknown)
		return
	}
	if user.password != c.Password {
		s.mu.Unlock()
		writeError(w, ErrTypeWrongPassword)
		return
	}
	var token string
	if !hasSession || current != user.ID {
		token = s.newSessionLocked(user.ID)
	}
	content := userContent(user)
	s.mu.Unlock()

	if token != "" {
		setSessionCookie(w, token)
	}
	writeSuccess(w, content)
}

// User

func (s *Server) handleGames(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	ids := make([]string, 0, len(s.games))
	for id := range s.games {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)
	games := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		games = append(games, s.games[model.ID(id)])
	}
	data, _ := json.Marshal(games)
	s.mu.Unlock()

	writeSuccess(w, map[string]any{"games": json.RawMessage(data)})
}

func (s *Server) handleRelationships(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	list := append([]json.RawMessage{}, s.relationships...)
	s.mu.Unlock()
	writeSuccess(w, map[string]any{"relationships": list})
}

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	list := append([]json.RawMessage{}, s.notifications...)
	s.mu.Unlock()
	writeSuccess(w, map[string]any{"entries": list})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	content := map[string]any{"games": len(s.games), "invites_received": len(s.invites)}
	s.mu.Unlock()
	writeSuccess(w, content)
}

// Games

// withGame runs fn with the game named in the route, holding the lock
func (s *Server) withGame(w http.ResponseWriter, r *http.Request, fn func(id model.ID, game map[string]any) any) {
	id := model.ID(mux.Vars(r)["id"])

	s.mu.Lock()
	game, ok := s.games[id]
	if !ok {
		s.mu.Unlock()
		writeError(w, ErrTypeGameNotFound)
		return
	}
	content := fn(id, game)
	data, err := json.Marshal(content)
	s.mu.Unlock()

	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeSuccess(w, json.RawMessage(data))
}

func (s *Server) handleGame(w http.ResponseWriter, r *http.Request) {
	s.withGame(w, r, func(_ model.ID, game map[string]any) any {
		return map[string]any{"game": game}
	})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	s.withGame(w, r, func(id model.ID, _ map[string]any) any {
		messages := append([]json.RawMessage{}, s.chats[id]...)
		return map[string]any{"messages": messages}
	})
}

func (s *Server) handleChatSend(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	sender, _ := s.sessionUser(r)

	s.withGame(w, r, func(id model.ID, _ map[string]any) any {
		msg, _ := json.Marshal(map[string]any{"sender": sender, "message": req.Message})
		s.chats[id] = append(s.chats[id], msg)
		return map[string]any{"sent": len(s.chats[id])}
	})
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Move    []json.RawMessage `json:"move"`
		Ruleset model.ID          `json:"ruleset"`
		Words   []string          `json:"words"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.Move) == 0 || len(req.Words) == 0 {
		writeError(w, ErrTypeIllegalMove)
		return
	}

	s.withGame(w, r, func(_ model.ID, game map[string]any) any {
		points := 0
		for _, word := range req.Words {
			points += utf8.RuneCountInString(word)
		}
		newTiles := make([]string, len(req.Move))
		for i := range newTiles {
			newTiles[i] = string(rune('A' + i%26))
		}
		bump(game, "move_count")
		game["last_move"] = map[string]any{"main_word": req.Words[0], "points": points, "ruleset": req.Ruleset}
		return map[string]any{"new_tiles": newTiles, "points": points, "main_word": req.Words[0]}
	})
}

func (s *Server) handleSwap(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Tiles []string `json:"tiles"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	s.withGame(w, r, func(_ model.ID, game map[string]any) any {
		newTiles := make([]string, len(req.Tiles))
		for i, t := range req.Tiles {
			newTiles[len(req.Tiles)-1-i] = t
		}
		updated := bump(game, "move_count")
		return map[string]any{"updated": updated, "new_tiles": newTiles}
	})
}

func (s *Server) handlePass(w http.ResponseWriter, r *http.Request) {
	s.withGame(w, r, func(_ model.ID, game map[string]any) any {
		bump(game, "move_count")
		bump(game, "passes")
		return map[string]any{}
	})
}

func (s *Server) handleResign(w http.ResponseWriter, r *http.Request) {
	s.withGame(w, r, func(_ model.ID, game map[string]any) any {
		bump(game, "move_count")
		game["is_running"] = false
		return map[string]any{}
	})
}

// Reference entities

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	s.serveReference(w, r, s.boards, "board")
}

func (s *Server) handleTilePoints(w http.ResponseWriter, r *http.Request) {
	s.serveReference(w, r, s.rulesets, "tile_points")
}

func (s *Server) serveReference(w http.ResponseWriter, r *http.Request, from map[model.ID]json.RawMessage, property string) {
	id := model.ID(mux.Vars(r)["id"])
	s.mu.Lock()
	v, ok := from[id]
	s.mu.Unlock()
	if !ok {
		writeError(w, ErrTypeNotFound)
		return
	}
	writeSuccess(w, map[string]any{property: v})
}

// Invitations

type inviteBody struct {
	Invitee   string   `json:"invitee"`
	Ruleset   model.ID `json:"ruleset"`
	BoardType string   `json:"board_type"`
}

func (s *Server) handleInviteNew(w http.ResponseWriter, r *http.Request) {
	var req inviteBody
	if !decodeBody(w, r, &req) {
		return
	}
	inviter, _ := s.sessionUser(r)

	s.mu.Lock()
	id := s.newIDLocked()
	invite := map[string]any{"id": id, "inviter": inviter, "invitee": req.Invitee, "ruleset": req.Ruleset, "board_type": req.BoardType}
	s.invites[id] = invite
	s.mu.Unlock()

	writeSuccess(w, map[string]any{"invitation": invite})
}

func (s *Server) handleRandomRequest(w http.ResponseWriter, r *http.Request) {
	var req inviteBody
	if !decodeBody(w, r, &req) {
		return
	}

	s.mu.Lock()
	id := s.newIDLocked()
	s.mu.Unlock()

	writeSuccess(w, map[string]any{"request": map[string]any{"id": id, "ruleset": req.Ruleset, "board_type": req.BoardType}})
}

func (s *Server) handleInviteAccept(w http.ResponseWriter, r *http.Request) {
	id := model.ID(mux.Vars(r)["id"])

	s.mu.Lock()
	if _, ok := s.invites[id]; !ok {
		s.mu.Unlock()
		writeError(w, ErrTypeNotFound)
		return
	}
	delete(s.invites, id)
	gameID := s.newIDLocked()
	s.games[gameID] = map[string]any{"id": gameID, "move_count": 0, "is_running": true}
	s.mu.Unlock()

	writeSuccess(w, map[string]any{"id": gameID})
}

func (s *Server) handleInviteReject(w http.ResponseWriter, r *http.Request) {
	id := model.ID(mux.Vars(r)["id"])

	s.mu.Lock()
	_, ok := s.invites[id]
	delete(s.invites, id)
	s.mu.Unlock()

	if !ok {
		writeError(w, ErrTypeNotFound)
		return
	}
	writeSuccess(w, map[string]any{})
}
