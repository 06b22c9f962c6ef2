package factory

import (
	"net/http/httptest"
	"strings"

	"github.com/mcoot/wordfeud-go/internal/fakeserver"
	"github.com/mcoot/wordfeud-go/internal/storage/memory"
	"github.com/mcoot/wordfeud-go/internal/testutil"
	"github.com/mcoot/wordfeud-go/internal/transport"
)

// TestApp extends App with an in-process fake service
type TestApp struct {
	*App

	Fake   *fakeserver.Server
	Server *httptest.Server
}

// NewTestApp creates an App talking to a fresh fake server over HTTP.
// Call Close when done.
func NewTestApp() *TestApp {
	fake := fakeserver.New(testutil.NopLogger())
	srv := httptest.NewServer(fake.Handler())

	tr := transport.NewHTTP(transport.Config{
		Scheme:    "http",
		Host:      strings.TrimPrefix(srv.URL, "http://"),
		Root:      fakeserver.Root,
		UserAgent: "wf-test",
	}, testutil.NopLogger())

	return &TestApp{
		App:    newWithDependencies(memory.New(), tr, testutil.NopLogger()),
		Fake:   fake,
		Server: srv,
	}
}

// Close stops the fake server
func (t *TestApp) Close() error {
	t.Server.Close()
	return t.App.Close()
}

// SeedDefaults registers a user, a running game, a board and a ruleset
func (t *TestApp) SeedDefaults() {
	t.Fake.AddUser("1", "alice", "alice@example.com", "secret")
	t.Fake.AddUser("2", "bob", "bob@example.com", "hunter2")
	t.Fake.AddGame("100", map[string]any{"board": 0, "ruleset": 0, "players": []string{"alice", "bob"}})
	t.Fake.AddBoard("0", []byte(`[[0,0,1],[0,2,0],[1,0,0]]`))
	t.Fake.AddRuleset("0", []byte(`{"A":1,"B":4,"Q":10}`))
}
