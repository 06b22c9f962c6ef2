package fakeserver

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordfeud-go/internal/protocol"
	"github.com/mcoot/wordfeud-go/internal/testutil"
)

type ServerSuite struct {
	suite.Suite
	fake *Server
	srv  *httptest.Server
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) SetupTest() {
	s.fake = New(testutil.NopLogger())
	s.fake.AddUser("1", "alice", "alice@example.com", "pw")
	s.fake.AddGame("5", nil)
	s.srv = httptest.NewServer(s.fake.Handler())
}

func (s *ServerSuite) TearDownTest() {
	s.srv.Close()
}

func (s *ServerSuite) post(path, body, session string) (*http.Response, string) {
	req, err := http.NewRequest(http.MethodPost, s.srv.URL+path, strings.NewReader(body))
	s.Require().NoError(err)
	if session != "" {
		req.AddCookie(&http.Cookie{Name: "sessionid", Value: session})
	}
	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp, string(data)
}

func (s *ServerSuite) TestLoginIssuesCookie() {
	body := `{"username":"alice","password":"` + protocol.HashPassword("pw") + `"}`
	resp, data := s.post("/wf/user/login/", body, "")

	s.Equal(http.StatusOK, resp.StatusCode)
	s.JSONEq(`{"status":"success","content":{"id":1,"username":"alice","email":"alice@example.com"}}`, data)
	s.NotEmpty(protocol.ExtractSession(resp.Header))
}

func (s *ServerSuite) TestLoginWithOwnSessionIssuesNoCookie() {
	session := s.fake.Session("1")
	body := `{"id":1,"password":"` + protocol.HashPassword("pw") + `"}`
	resp, _ := s.post("/wf/user/login/id/", body, session)

	s.Empty(resp.Header.Values("Set-Cookie"))
}

func (s *ServerSuite) TestWrongPassword() {
	_, data := s.post("/wf/user/login/email/", `{"email":"ALICE@example.com","password":"x"}`, "")
	s.JSONEq(`{"status":"error","content":{"type":"wrong_password"}}`, data)
}

func (s *ServerSuite) TestRoutesNeedSession() {
	_, data := s.post("/wf/game/5/", "", "")
	s.JSONEq(`{"status":"error","content":{"type":"login_required"}}`, data)

	_, data = s.post("/wf/game/5/", "", s.fake.Session("1"))
	s.Contains(data, `"status":"success"`)
}

func (s *ServerSuite) TestFaultAppliesOnce() {
	s.fake.Fail("/wf/user/games/", Fault{Status: http.StatusTeapot, Body: "nope"})
	session := s.fake.Session("1")

	resp, data := s.post("/wf/user/games/", "", session)
	s.Equal(http.StatusTeapot, resp.StatusCode)
	s.Equal("nope", data)

	resp, _ = s.post("/wf/user/games/", "", session)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(2, s.fake.Hits("/wf/user/games/"))
}

func (s *ServerSuite) TestRecordsRequests() {
	s.post("/wf/user/login/", `{"username":"bob","password":"x"}`, "abc")

	reqs := s.fake.Requests()
	s.Require().Len(reqs, 1)
	s.Equal("/wf/user/login/", reqs[0].Path)
	s.Equal("abc", reqs[0].Session)
	s.Equal(int64(len(reqs[0].Body)), reqs[0].ContentLength)
}

func (s *ServerSuite) TestMoveUpdatesGame() {
	session := s.fake.Session("1")
	_, data := s.post("/wf/game/5/move/", `{"move":[[0,0,"A",false]],"ruleset":0,"words":["AB"]}`, session)
	s.JSONEq(`{"status":"success","content":{"new_tiles":["A"],"points":2,"main_word":"AB"}}`, data)

	game, ok := s.fake.Game("5")
	s.Require().True(ok)
	s.Equal(1, game["move_count"])
}
