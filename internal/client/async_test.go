package client

import (
	"context"
	"time"

	"github.com/mcoot/wordfeud-go/internal/future"
	"github.com/mcoot/wordfeud-go/internal/model"
)

func (s *ClientSuite) waitCtx() context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	s.T().Cleanup(cancel)
	return ctx
}

func (s *ClientSuite) TestAsyncLogin() {
	res, err := s.client.Async().Login(s.ctx, "alice", "hunter2").Wait(s.waitCtx())
	s.Require().NoError(err)
	s.Equal(model.ID("42"), res.User.ID)
}

func (s *ClientSuite) TestAsyncValidationFailureArrivesThroughFuture() {
	f := s.client.Async().Login(s.ctx, "alice", "")

	_, err := f.Wait(s.waitCtx())
	s.ErrorIs(err, model.ErrValidation)
	s.Empty(s.fake.Requests())
}

func (s *ClientSuite) TestAsyncDomainFailure() {
	_, err := s.client.Async().GetGame(s.ctx, "404", s.session).Wait(s.waitCtx())
	s.True(model.IsDomainType(err, "game_not_found"))
}

func (s *ClientSuite) TestAsyncRejectInvite() {
	s.fake.AddInvite("60", "bob")

	_, err := s.client.Async().RejectInvite(s.ctx, "60", s.session).Wait(s.waitCtx())
	s.NoError(err)
}

func (s *ClientSuite) TestAsyncChaining() {
	s.fake.AddInvite("61", "bob")

	accepted := s.client.Async().AcceptInvite(s.ctx, "61", s.session)
	game := future.Then(accepted, func(id model.ID) (*model.MoveResult, error) {
		return s.client.Move(s.ctx, id, "0", [][]any{{7, 7, "O", false}}, []string{"OX"}, s.session)
	})

	res, err := game.Wait(s.waitCtx())
	s.Require().NoError(err)
	s.JSONEq(`2`, string(res.Points))
	s.Contains(string(res.Game), `"move_count":1`)
}

func (s *ClientSuite) TestAsyncIndependentCallsRunConcurrently() {
	games := s.client.Async().GetGames(s.ctx, s.session)
	status := s.client.Async().GetStatus(s.ctx, s.session)
	board := s.client.Async().GetBoard(s.ctx, "9", s.session)

	_, err := games.Wait(s.waitCtx())
	s.NoError(err)
	_, err = status.Wait(s.waitCtx())
	s.NoError(err)
	_, err = board.Wait(s.waitCtx())
	s.True(model.IsDomainType(err, "not_found"))
}
