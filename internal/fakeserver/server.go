// Package fakeserver is an in-process implementation of the word-game
// service's envelope protocol, for tests and local development.
package fakeserver

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/mcoot/wordfeud-go/internal/model"
	"github.com/mcoot/wordfeud-go/internal/protocol"
	"github.com/mcoot/wordfeud-go/internal/transport"
)

// Root is the path prefix every route is served under
const Root = "/wf"

// Error types the fake server reports
const (
	ErrTypeWrongPassword   = "wrong_password"
	ErrTypeUnknownUsername = "unknown_username"
	ErrTypeUnknownEmail    = "unknown_email"
	ErrTypeUnknownUser     = "unknown_user"
	ErrTypeLoginRequired   = "login_required"
	ErrTypeGameNotFound    = "game_not_found"
	ErrTypeNotFound        = "not_found"
	ErrTypeBadRequest      = "bad_request"
	ErrTypeIllegalMove     = "illegal_tile_placement"
)

// User is an account known to the fake server
type User struct {
	ID       model.ID
	Username string
	Email    string
	password string
}

// Recorded is one request as the server received it
type Recorded struct {
	Path          string
	Header        http.Header
	ContentLength int64
	Body          string
	Session       string
}

// Fault replaces the next response on a path
type Fault struct {
	Status int
	Body   string
}

// Server holds the fake service state
type Server struct {
	mu sync.Mutex

	users         map[model.ID]*User
	sessions      map[string]model.ID
	games         map[model.ID]map[string]any
	chats         map[model.ID][]json.RawMessage
	boards        map[model.ID]json.RawMessage
	rulesets      map[model.ID]json.RawMessage
	invites       map[model.ID]map[string]any
	relationships []json.RawMessage
	notifications []json.RawMessage

	requests []Recorded
	hits     map[string]int
	faults   map[string]Fault
	nextID   int64

	logger *slog.Logger
}

// New creates an empty fake server. A nil logger discards output.
func New(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Server{
		users:    make(map[model.ID]*User),
		sessions: make(map[string]model.ID),
		games:    make(map[model.ID]map[string]any),
		chats:    make(map[model.ID][]json.RawMessage),
		boards:   make(map[model.ID]json.RawMessage),
		rulesets: make(map[model.ID]json.RawMessage),
		invites:  make(map[model.ID]map[string]any),
		hits:     make(map[string]int),
		faults:   make(map[string]Fault),
		nextID:   1000,
		logger:   logger,
	}
}

// Handler returns the router serving every route under Root
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	wf := r.PathPrefix(Root).Subrouter()
	wf.Use(Recovery(s.logger))
	wf.Use(Logging(s.logger))
	wf.Use(s.record)

	// Login routes need no session
	wf.HandleFunc("/user/login/", s.handleLoginUsername).Methods(http.MethodPost)
	wf.HandleFunc("/user/login/email/", s.handleLoginEmail).Methods(http.MethodPost)
	wf.HandleFunc("/user/login/id/", s.handleLoginID).Methods(http.MethodPost)

	// Everything else does
	authed := wf.NewRoute().Subrouter()
	authed.Use(s.requireSession)

	authed.HandleFunc("/user/games/", s.handleGames).Methods(http.MethodPost)
	authed.HandleFunc("/user/relationships/", s.handleRelationships).Methods(http.MethodPost)
	authed.HandleFunc("/user/notifications/", s.handleNotifications).Methods(http.MethodPost)
	authed.HandleFunc("/user/status/", s.handleStatus).Methods(http.MethodPost)

	authed.HandleFunc("/game/{id}/", s.handleGame).Methods(http.MethodPost)
	authed.HandleFunc("/game/{id}/chat/", s.handleChat).Methods(http.MethodPost)
	authed.HandleFunc("/game/{id}/chat/send/", s.handleChatSend).Methods(http.MethodPost)
	authed.HandleFunc("/game/{id}/move/", s.handleMove).Methods(http.MethodPost)
	authed.HandleFunc("/game/{id}/swap/", s.handleSwap).Methods(http.MethodPost)
	authed.HandleFunc("/game/{id}/pass/", s.handlePass).Methods(http.MethodPost)
	authed.HandleFunc("/game/{id}/resign/", s.handleResign).Methods(http.MethodPost)

	authed.HandleFunc("/board/{id}/", s.handleBoard).Methods(http.MethodPost)
	authed.HandleFunc("/tile_points/{id}/", s.handleTilePoints).Methods(http.MethodPost)

	authed.HandleFunc("/invite/new/", s.handleInviteNew).Methods(http.MethodPost)
	authed.HandleFunc("/random_request/create/", s.handleRandomRequest).Methods(http.MethodPost)
	authed.HandleFunc("/invite/{id}/accept/", s.handleInviteAccept).Methods(http.MethodPost)
	authed.HandleFunc("/invite/{id}/reject/", s.handleInviteReject).Methods(http.MethodPost)

	return r
}

// Seeding

// AddUser registers an account
func (s *Server) AddUser(id model.ID, username, email, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[id] = &User{ID: id, Username: username, Email: email, password: protocol.HashPassword(password)}
}

// AddGame stores a game; state must be a JSON object
func (s *Server) AddGame(id model.ID, state map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	game := map[string]any{"id": id, "move_count": 0, "is_running": true}
	for k, v := range state {
		game[k] = v
	}
	s.games[id] = game
}

// AddBoard stores a board layout
func (s *Server) AddBoard(id model.ID, board json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boards[id] = board
}

// AddRuleset stores a ruleset's tile points
func (s *Server) AddRuleset(id model.ID, tilePoints json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rulesets[id] = tilePoints
}

// AddInvite stores a pending invitation
func (s *Server) AddInvite(id model.ID, from string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invites[id] = map[string]any{"id": id, "inviter": from}
}

// AddNotification appends a notification entry
func (s *Server) AddNotification(entry json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, entry)
}

// AddRelationship appends a relationship entry
func (s *Server) AddRelationship(entry json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.relationships = append(s.relationships, entry)
}

// Session creates a valid session for a user without logging in
func (s *Server) Session(userID model.ID) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.newSessionLocked(userID)
}

// Fail makes the next request to path (e.g. "/wf/game/1/") answer with f
func (s *Server) Fail(path string, f Fault) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults[path] = f
}

// Inspection

// Requests returns every request received so far
func (s *Server) Requests() []Recorded {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Recorded, len(s.requests))
	copy(out, s.requests)
	return out
}

// Hits returns how many requests were made to path
func (s *Server) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

// Game returns a copy of a game's current state
func (s *Server) Game(id model.ID) (map[string]any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[id]
	if !ok {
		return nil, false
	}
	out := make(map[string]any, len(g))
	for k, v := range g {
		out[k] = v
	}
	return out, true
}

func (s *Server) newSessionLocked(userID model.ID) string {
	token := uuid.NewString()
	s.sessions[token] = userID
	return token
}

func (s *Server) newIDLocked() model.ID {
	s.nextID++
	return model.IDFromInt(s.nextID)
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{Name: transport.SessionCookie, Value: token, Path: "/", HttpOnly: true})
}
