package armor_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/mech-armor-api/internal/catalog"
	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
	"github.com/KirkDiggler/mech-armor-api/internal/errors"
	"github.com/KirkDiggler/mech-armor-api/internal/orchestrators/armor"
	"github.com/KirkDiggler/mech-armor-api/internal/pkg/clock"
	"github.com/KirkDiggler/mech-armor-api/internal/pkg/idgen"
	armordraft "github.com/KirkDiggler/mech-armor-api/internal/repositories/armor_draft"
	armordraftmock "github.com/KirkDiggler/mech-armor-api/internal/repositories/armor_draft/mock"
	"github.com/KirkDiggler/mech-armor-api/internal/repositories/loadout"
	loadoutmock "github.com/KirkDiggler/mech-armor-api/internal/repositories/loadout/mock"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockDraftRepo   *armordraftmock.MockRepository
	mockLoadoutRepo *loadoutmock.MockRepository
	clock           *clock.Fixed
	orchestrator    armor.Service
	ctx             context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockDraftRepo = armordraftmock.NewMockRepository(s.ctrl)
	s.mockLoadoutRepo = loadoutmock.NewMockRepository(s.ctrl)
	s.clock = clock.NewFixed(time.Date(3025, 1, 1, 0, 0, 0, 0, time.UTC))
	s.ctx = context.Background()

	orch, err := armor.NewOrchestrator(&armor.Config{
		DraftRepo:          s.mockDraftRepo,
		LoadoutRepo:        s.mockLoadoutRepo,
		Catalog:            catalog.MustDefault(),
		DraftIDGenerator:   idgen.NewSequential("draft"),
		LoadoutIDGenerator: idgen.NewSequential("loadout"),
		Clock:              s.clock,
	})
	s.Require().NoError(err)
	s.orchestrator = orch
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func atlasDraft() *mech.ArmorDraft {
	draft := &mech.ArmorDraft{
		ID:          "draft_1",
		Name:        "Atlas",
		Mass:        100,
		ArmorTypeID: "standard",
		Tonnage:     19,
		Allocation:  mech.NewAllocation(),
	}
	draft.Record(armor.DefaultHistoryLimit)
	return draft
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := armor.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = armor.NewOrchestrator(&armor.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "DraftRepo")
	s.Contains(err.Error(), "Catalog")

	_, err = armor.NewOrchestrator(&armor.Config{
		DraftRepo:          s.mockDraftRepo,
		LoadoutRepo:        s.mockLoadoutRepo,
		Catalog:            catalog.MustDefault(),
		DraftIDGenerator:   idgen.NewSequential("draft"),
		LoadoutIDGenerator: idgen.NewSequential("loadout"),
		HistoryLimit:       -1,
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCreateDraft() {
	s.Run("stores a zeroed draft with clamped tonnage", func() {
		s.mockDraftRepo.EXPECT().
			Create(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input armordraft.CreateInput) (*armordraft.CreateOutput, error) {
				s.Equal("draft_1", input.Draft.ID)
				s.Equal(50.0, input.Draft.Tonnage)
				s.Equal("standard", input.Draft.ArmorTypeID)
				s.Equal(0, input.Draft.Allocation.Total())
				s.Len(input.Draft.History, 1)
				s.Equal(s.clock.Now().Unix(), input.Draft.CreatedAt)
				return &armordraft.CreateOutput{Draft: input.Draft}, nil
			})

		out, err := s.orchestrator.CreateDraft(s.ctx, &armor.CreateDraftInput{
			Name:    "Atlas",
			Mass:    100,
			Tonnage: 75,
		})
		s.Require().NoError(err)
		s.Equal(50.0, out.State.Draft.Tonnage)
		s.Equal(800, out.State.Statistics.TotalPoints)
		s.True(out.State.Validation.IsValid)
	})

	s.Run("rejects bad mass", func() {
		_, err := s.orchestrator.CreateDraft(s.ctx, &armor.CreateDraftInput{Mass: 250})
		s.True(errors.IsInvalidArgument(err))

		_, err = s.orchestrator.CreateDraft(s.ctx, &armor.CreateDraftInput{Mass: -5})
		s.True(errors.IsInvalidArgument(err))

		_, err = s.orchestrator.CreateDraft(s.ctx, &armor.CreateDraftInput{Mass: math.NaN()})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("rejects unknown armor type", func() {
		_, err := s.orchestrator.CreateDraft(s.ctx, &armor.CreateDraftInput{Mass: 50, ArmorTypeID: "unobtanium"})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("nil input", func() {
		_, err := s.orchestrator.CreateDraft(s.ctx, nil)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestGetDraftNotFound() {
	s.mockDraftRepo.EXPECT().
		Get(s.ctx, armordraft.GetInput{ID: "ghost"}).
		Return(nil, errors.NotFound("draft ghost not found"))

	_, err := s.orchestrator.GetDraft(s.ctx, &armor.GetDraftInput{DraftID: "ghost"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestGetDraftRole() {
	s.mockDraftRepo.EXPECT().
		Get(s.ctx, armordraft.GetInput{ID: "draft_1"}).
		Return(&armordraft.GetOutput{Draft: atlasDraft()}, nil)

	out, err := s.orchestrator.GetDraft(s.ctx, &armor.GetDraftInput{DraftID: "draft_1", Role: mech.RoleBrawler})
	s.Require().NoError(err)

	var roleWarnings int
	for _, w := range out.State.Validation.Warnings {
		if w.Message == "Below recommended 80% coverage for Brawler role" ||
			w.Message == "Below recommended 70% coverage for Brawler role" {
			roleWarnings++
		}
	}
	s.Equal(3, roleWarnings)

	_, err = s.orchestrator.GetDraft(s.ctx, &armor.GetDraftInput{DraftID: "draft_1", Role: "Tank"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestUnchangedEditIsNotSaved() {
	draft := atlasDraft()
	s.mockDraftRepo.EXPECT().
		Get(s.ctx, armordraft.GetInput{ID: "draft_1"}).
		Return(&armordraft.GetOutput{Draft: draft}, nil)

	out, err := s.orchestrator.UpdateLocation(s.ctx, &armor.UpdateLocationInput{
		DraftID:  "draft_1",
		Location: "HD",
		Change:   mech.FrontOnly(0),
	})
	s.Require().NoError(err)
	s.False(out.Changed)
}

func (s *OrchestratorTestSuite) TestUpdateLocationPersists() {
	s.mockDraftRepo.EXPECT().
		Get(s.ctx, armordraft.GetInput{ID: "draft_1"}).
		Return(&armordraft.GetOutput{Draft: atlasDraft()}, nil)
	s.mockDraftRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input armordraft.UpdateInput) (*armordraft.UpdateOutput, error) {
			s.Equal(mech.LocationArmor{Front: 9}, input.Draft.Allocation[mech.LocationHead])
			s.Len(input.Draft.History, 2)
			s.Equal(1, input.Draft.HistoryIndex)
			return &armordraft.UpdateOutput{Draft: input.Draft}, nil
		})

	out, err := s.orchestrator.UpdateLocation(s.ctx, &armor.UpdateLocationInput{
		DraftID:  "draft_1",
		Location: "Head",
		Change:   mech.Both(20, 5),
	})
	s.Require().NoError(err)
	s.True(out.Changed)
	s.Equal(9, out.State.Calculations.TotalArmor)
}

func (s *OrchestratorTestSuite) TestUpdateLocationErrors() {
	_, err := s.orchestrator.UpdateLocation(s.ctx, &armor.UpdateLocationInput{
		DraftID:  "draft_1",
		Location: "Tail",
		Change:   mech.FrontOnly(1),
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.UpdateLocation(s.ctx, &armor.UpdateLocationInput{
		DraftID:  "draft_1",
		Location: "Head",
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.UpdateLocation(s.ctx, &armor.UpdateLocationInput{
		Location: "Head",
		Change:   mech.FrontOnly(1),
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestUpdateFailure() {
	s.mockDraftRepo.EXPECT().
		Get(s.ctx, armordraft.GetInput{ID: "draft_1"}).
		Return(&armordraft.GetOutput{Draft: atlasDraft()}, nil)
	s.mockDraftRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("redis down"))

	_, err := s.orchestrator.Maximize(s.ctx, &armor.MaximizeInput{DraftID: "draft_1"})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *OrchestratorTestSuite) TestSaveLoadoutRefusesInvalidDraft() {
	draft := atlasDraft()
	draft.Allocation[mech.LocationHead] = mech.LocationArmor{Front: 12}
	draft.Allocation[mech.LocationLeftArm] = mech.LocationArmor{Front: 60}
	s.mockDraftRepo.EXPECT().
		Get(s.ctx, armordraft.GetInput{ID: "draft_1"}).
		Return(&armordraft.GetOutput{Draft: draft}, nil)

	_, err := s.orchestrator.SaveLoadout(s.ctx, &armor.SaveLoadoutInput{DraftID: "draft_1"})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal("Head: Armor (12) exceeds maximum (9)", errors.GetMessage(err))

	messages, ok := errors.GetMeta(err)["errors"].([]string)
	s.Require().True(ok)
	s.Equal([]string{
		"Head: Armor (12) exceeds maximum (9)",
		"Left Arm: Armor (60) exceeds maximum (50)",
	}, messages)
}

func (s *OrchestratorTestSuite) TestSaveLoadout() {
	draft := atlasDraft()
	draft.Allocation[mech.LocationHead] = mech.LocationArmor{Front: 9}
	s.mockDraftRepo.EXPECT().
		Get(s.ctx, armordraft.GetInput{ID: "draft_1"}).
		Return(&armordraft.GetOutput{Draft: draft}, nil)
	s.mockLoadoutRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input loadout.SaveInput) (*loadout.SaveOutput, error) {
			s.Equal("loadout_1", input.Loadout.ID)
			s.Equal("draft_1", input.Loadout.DraftID)
			s.Equal("Atlas AS7-D", input.Loadout.Name)
			s.Equal(9, input.Loadout.TotalArmor)
			return &loadout.SaveOutput{Loadout: input.Loadout}, nil
		})

	out, err := s.orchestrator.SaveLoadout(s.ctx, &armor.SaveLoadoutInput{DraftID: "draft_1", Name: "Atlas AS7-D"})
	s.Require().NoError(err)
	s.Equal("loadout_1", out.Loadout.ID)
	s.Equal(s.clock.Now().Unix(), out.Loadout.CreatedAt)
}

func (s *OrchestratorTestSuite) TestLoadoutReads() {
	s.mockLoadoutRepo.EXPECT().
		Get(s.ctx, loadout.GetInput{ID: "missing"}).
		Return(nil, errors.NotFound("loadout missing not found"))

	_, err := s.orchestrator.GetLoadout(s.ctx, &armor.GetLoadoutInput{LoadoutID: "missing"})
	s.True(errors.IsNotFound(err))

	_, err = s.orchestrator.GetLoadout(s.ctx, &armor.GetLoadoutInput{})
	s.True(errors.IsInvalidArgument(err))

	s.mockLoadoutRepo.EXPECT().
		List(s.ctx, loadout.ListInput{DraftID: "draft_1", Limit: 5}).
		Return(&loadout.ListOutput{Loadouts: []*mech.Loadout{{ID: "loadout_1"}}}, nil)

	list, err := s.orchestrator.ListLoadouts(s.ctx, &armor.ListLoadoutsInput{DraftID: "draft_1", Limit: 5})
	s.Require().NoError(err)
	s.Len(list.Loadouts, 1)

	_, err = s.orchestrator.ListLoadouts(s.ctx, &armor.ListLoadoutsInput{Limit: -1})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestListDraftsFailure() {
	s.mockDraftRepo.EXPECT().
		List(s.ctx, armordraft.ListInput{}).
		Return(nil, errors.Internal("boom"))

	_, err := s.orchestrator.ListDrafts(s.ctx, &armor.ListDraftsInput{})
	s.True(errors.IsInternal(err))
}

func (s *OrchestratorTestSuite) TestCatalogListing() {
	all, err := s.orchestrator.ListArmorTypes(s.ctx, &armor.ListArmorTypesInput{})
	s.Require().NoError(err)
	s.Len(all.ArmorTypes, 14)

	clan, err := s.orchestrator.ListArmorTypes(s.ctx, &armor.ListArmorTypesInput{
		TechBase:  mech.TechBaseClan,
		TechLevel: 2,
	})
	s.Require().NoError(err)
	s.Len(clan.ArmorTypes, 6)
	s.Equal("ferro_fibrous_clan", clan.ArmorTypes[0].ID)

	presets, err := s.orchestrator.ListPresets(s.ctx, &armor.ListPresetsInput{})
	s.Require().NoError(err)
	s.Len(presets.Presets, 6)
}
