package armordraft_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	apperrors "github.com/KirkDiggler/mech-armor-api/internal/errors"
	armordraft "github.com/KirkDiggler/mech-armor-api/internal/repositories/armor_draft"
)

type RedisFailureTestSuite struct {
	suite.Suite
	mockClient *goredis.Client
	mock       redismock.ClientMock
	repo       armordraft.Repository
	ctx        context.Context
}

func TestRedisFailureSuite(t *testing.T) {
	suite.Run(t, new(RedisFailureTestSuite))
}

func (s *RedisFailureTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()

	repo, err := armordraft.NewRedis(&armordraft.RedisConfig{Client: s.mockClient})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisFailureTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *RedisFailureTestSuite) TestCreateExistsError() {
	s.mock.ExpectExists("armor:draft:draft_1").SetErr(errors.New("connection reset"))

	_, err := s.repo.Create(s.ctx, armordraft.CreateInput{Draft: testDraft("draft_1", 1)})
	s.Require().Error(err)
	s.True(apperrors.IsInternal(err))
	s.Contains(err.Error(), "failed to check draft existence")
}

func (s *RedisFailureTestSuite) TestGetErrors() {
	s.mock.ExpectGet("armor:draft:draft_1").SetErr(errors.New("connection reset"))
	_, err := s.repo.Get(s.ctx, armordraft.GetInput{ID: "draft_1"})
	s.True(apperrors.IsInternal(err))

	s.mock.ExpectGet("armor:draft:draft_2").SetVal("{not json")
	_, err = s.repo.Get(s.ctx, armordraft.GetInput{ID: "draft_2"})
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to unmarshal draft")
}

func (s *RedisFailureTestSuite) TestListErrors() {
	s.mock.ExpectSMembers("armor:drafts").SetErr(errors.New("connection reset"))
	_, err := s.repo.List(s.ctx, armordraft.ListInput{})
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to list draft ids")

	s.mock.ExpectSMembers("armor:drafts").SetVal([]string{"draft_1"})
	s.mock.ExpectGet("armor:draft:draft_1").SetErr(errors.New("timeout"))
	_, err = s.repo.List(s.ctx, armordraft.ListInput{})
	s.True(apperrors.IsInternal(err))
}
