package loadout_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
	"github.com/KirkDiggler/mech-armor-api/internal/errors"
	"github.com/KirkDiggler/mech-armor-api/internal/repositories/loadout"
	"github.com/KirkDiggler/mech-armor-api/internal/testutils"
)

type GormRepositoryTestSuite struct {
	suite.Suite
	db      *gorm.DB
	cleanup func()
	repo    loadout.Repository
	ctx     context.Context
}

func TestGormRepositorySuite(t *testing.T) {
	suite.Run(t, new(GormRepositoryTestSuite))
}

func (s *GormRepositoryTestSuite) SetupTest() {
	s.db, s.cleanup = testutils.CreateTestDB(s.T())

	repo, err := loadout.NewGorm(&loadout.GormConfig{DB: s.db})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *GormRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func testLoadout(id, draftID string, createdAt int64) *mech.Loadout {
	alloc := mech.NewAllocation()
	alloc[mech.LocationHead] = mech.LocationArmor{Front: 9}
	alloc[mech.LocationCenterTorso] = mech.LocationArmor{Front: 47, Rear: 14}
	return &mech.Loadout{
		ID:          id,
		DraftID:     draftID,
		Name:        "Atlas AS7-D",
		Mass:        100,
		ArmorTypeID: "standard",
		Tonnage:     19,
		Allocation:  alloc,
		TotalArmor:  alloc.Total(),
		CreatedAt:   createdAt,
	}
}

func (s *GormRepositoryTestSuite) TestNewGorm() {
	_, err := loadout.NewGorm(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = loadout.NewGorm(&loadout.GormConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *GormRepositoryTestSuite) TestSaveAndGet() {
	saved := testLoadout("loadout_1", "draft_1", 1700000000)
	_, err := s.repo.Save(s.ctx, loadout.SaveInput{Loadout: saved})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, loadout.GetInput{ID: "loadout_1"})
	s.Require().NoError(err)
	s.Equal(saved.Name, out.Loadout.Name)
	s.Equal(saved.DraftID, out.Loadout.DraftID)
	s.Equal(19.0, out.Loadout.Tonnage)
	s.Equal(70, out.Loadout.TotalArmor)
	s.Equal(int64(1700000000), out.Loadout.CreatedAt)
	s.True(saved.Allocation.Equal(out.Loadout.Allocation))
	s.Equal(mech.LocationArmor{Front: 47, Rear: 14}, out.Loadout.Allocation[mech.LocationCenterTorso])
}

func (s *GormRepositoryTestSuite) TestSaveOverwrites() {
	saved := testLoadout("loadout_1", "draft_1", 1700000000)
	_, err := s.repo.Save(s.ctx, loadout.SaveInput{Loadout: saved})
	s.Require().NoError(err)

	saved.Name = "Atlas AS7-K"
	saved.Allocation[mech.LocationHead] = mech.LocationArmor{Front: 8}
	_, err = s.repo.Save(s.ctx, loadout.SaveInput{Loadout: saved})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, loadout.GetInput{ID: "loadout_1"})
	s.Require().NoError(err)
	s.Equal("Atlas AS7-K", out.Loadout.Name)
	s.Equal(8, out.Loadout.Allocation[mech.LocationHead].Front)

	list, err := s.repo.List(s.ctx, loadout.ListInput{})
	s.Require().NoError(err)
	s.Len(list.Loadouts, 1)
}

func (s *GormRepositoryTestSuite) TestList() {
	for _, l := range []*mech.Loadout{
		testLoadout("a", "draft_1", 100),
		testLoadout("b", "draft_2", 300),
		testLoadout("c", "draft_1", 200),
	} {
		_, err := s.repo.Save(s.ctx, loadout.SaveInput{Loadout: l})
		s.Require().NoError(err)
	}

	s.Run("newest first", func() {
		out, err := s.repo.List(s.ctx, loadout.ListInput{})
		s.Require().NoError(err)
		s.Require().Len(out.Loadouts, 3)
		s.Equal("b", out.Loadouts[0].ID)
		s.Equal("c", out.Loadouts[1].ID)
		s.Equal("a", out.Loadouts[2].ID)
	})

	s.Run("by draft", func() {
		out, err := s.repo.List(s.ctx, loadout.ListInput{DraftID: "draft_1"})
		s.Require().NoError(err)
		s.Require().Len(out.Loadouts, 2)
		s.Equal("c", out.Loadouts[0].ID)
	})

	s.Run("limit", func() {
		out, err := s.repo.List(s.ctx, loadout.ListInput{Limit: 1})
		s.Require().NoError(err)
		s.Require().Len(out.Loadouts, 1)
		s.Equal("b", out.Loadouts[0].ID)
	})
}

func (s *GormRepositoryTestSuite) TestErrors() {
	_, err := s.repo.Save(s.ctx, loadout.SaveInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, loadout.SaveInput{Loadout: &mech.Loadout{}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, loadout.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, loadout.GetInput{ID: "missing"})
	s.True(errors.IsNotFound(err))
}

func TestOpen(t *testing.T) {
	_, err := loadout.Open("oracle", "whatever")
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}

	db, err := loadout.Open(loadout.DriverSQLite, "file:open_test?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	_ = sqlDB.Close()
}
