package leaderboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/snakesocial/snakesocial/internal/dependencies/mocks"
	"github.com/snakesocial/snakesocial/internal/model"
	"github.com/snakesocial/snakesocial/internal/storage/memory"
	"github.com/snakesocial/snakesocial/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestSubmitSucceeds() {
	entry, err := s.service.Submit(s.ctx, "alice", 42, model.ModeWalls)
	s.Require().NoError(err)

	s.NotEmpty(entry.ID)
	s.Equal("alice", entry.Username)
	s.Equal(42, entry.Score)
	s.Equal(model.ModeWalls, entry.Mode)
	s.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), entry.Date)
}

func (s *ServiceSuite) TestSubmitAcceptsZeroScore() {
	entry, err := s.service.Submit(s.ctx, "alice", 0, model.ModePassThrough)
	s.Require().NoError(err)
	s.Equal(0, entry.Score)
}

func (s *ServiceSuite) TestSubmitRejectsNegativeScore() {
	_, err := s.service.Submit(s.ctx, "alice", -1, model.ModeWalls)
	s.ErrorIs(err, model.ErrInvalidScore)

	entries, _ := s.service.List(s.ctx, nil)
	s.Empty(entries)
}

func (s *ServiceSuite) TestSubmitDoesNotRequireAnAccount() {
	// Usernames are display-name snapshots with no referential integrity
	entry, err := s.service.Submit(s.ctx, "no-such-account", 10, model.ModeWalls)
	s.Require().NoError(err)
	s.Equal("no-such-account", entry.Username)
}

func (s *ServiceSuite) TestSubmittedEntryRoundTrips() {
	submitted, err := s.service.Submit(s.ctx, "alice", 42, model.ModeWalls)
	s.Require().NoError(err)

	entries, err := s.service.List(s.ctx, nil)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal(submitted, entries[0])
}

func (s *ServiceSuite) TestListFiltersByModeAndOrdersByScore() {
	_, _ = s.service.Submit(s.ctx, "p1", 50, model.ModeWalls)
	_, _ = s.service.Submit(s.ctx, "p2", 80, model.ModeWalls)
	_, _ = s.service.Submit(s.ctx, "p3", 60, model.ModePassThrough)

	mode := model.ModeWalls
	walls, err := s.service.List(s.ctx, &mode)
	s.Require().NoError(err)
	s.Require().Len(walls, 2)
	s.Equal("p2", walls[0].Username)
	s.Equal(80, walls[0].Score)
	s.Equal("p1", walls[1].Username)
	s.Equal(50, walls[1].Score)

	all, err := s.service.List(s.ctx, nil)
	s.Require().NoError(err)
	s.Len(all, 3)
}

func (s *ServiceSuite) TestListOrdersTiesBySubmissionTime() {
	_, _ = s.service.Submit(s.ctx, "first", 70, model.ModeWalls)
	s.clock.Advance(time.Minute)
	_, _ = s.service.Submit(s.ctx, "second", 70, model.ModeWalls)

	entries, err := s.service.List(s.ctx, nil)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal("first", entries[0].Username)
	s.Equal("second", entries[1].Username)
}
