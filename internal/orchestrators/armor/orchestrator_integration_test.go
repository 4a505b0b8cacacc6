package armor_test

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/mech-armor-api/internal/catalog"
	"github.com/KirkDiggler/mech-armor-api/internal/engine/interaction"
	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
	"github.com/KirkDiggler/mech-armor-api/internal/errors"
	"github.com/KirkDiggler/mech-armor-api/internal/orchestrators/armor"
	"github.com/KirkDiggler/mech-armor-api/internal/pkg/clock"
	"github.com/KirkDiggler/mech-armor-api/internal/pkg/idgen"
	armordraft "github.com/KirkDiggler/mech-armor-api/internal/repositories/armor_draft"
	"github.com/KirkDiggler/mech-armor-api/internal/repositories/loadout"
	"github.com/KirkDiggler/mech-armor-api/internal/testutils"
)

// OrchestratorIntegrationTestSuite runs the orchestrator against miniredis drafts, an
// in-memory sqlite loadout store and a real event bus
type OrchestratorIntegrationTestSuite struct {
	suite.Suite
	orchestrator armor.Service
	ctx          context.Context
	cleanups     []func()

	mu     sync.Mutex
	events []string
}

func TestOrchestratorIntegrationSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorIntegrationTestSuite))
}

func (s *OrchestratorIntegrationTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.events = nil

	redisClient, _, redisCleanup := testutils.CreateTestRedisServer(s.T())
	db, dbCleanup := testutils.CreateTestDB(s.T())
	s.cleanups = []func(){redisCleanup, dbCleanup}

	draftRepo, err := armordraft.NewRedis(&armordraft.RedisConfig{Client: redisClient})
	s.Require().NoError(err)

	loadoutRepo, err := loadout.NewGorm(&loadout.GormConfig{DB: db})
	s.Require().NoError(err)

	bus := events.NewBus()
	for _, eventType := range []string{
		armor.EventArmorChanged,
		armor.EventArmorDistributionApplied,
		armor.EventArmorLoadoutSaved,
	} {
		bus.SubscribeFunc(eventType, 100, func(_ context.Context, e events.Event) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.events = append(s.events, e.Type())
			return nil
		})
	}

	orch, err := armor.NewOrchestrator(&armor.Config{
		DraftRepo:          draftRepo,
		LoadoutRepo:        loadoutRepo,
		Catalog:            catalog.MustDefault(),
		DraftIDGenerator:   idgen.NewSequential("draft"),
		LoadoutIDGenerator: idgen.NewSequential("loadout"),
		Clock:              clock.NewFixed(time.Date(3025, 6, 1, 0, 0, 0, 0, time.UTC)),
		EventBus:           bus,
		HistoryLimit:       10,
	})
	s.Require().NoError(err)
	s.orchestrator = orch
}

func (s *OrchestratorIntegrationTestSuite) TearDownTest() {
	for _, cleanup := range s.cleanups {
		cleanup()
	}
}

func (s *OrchestratorIntegrationTestSuite) publishedEvents() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.events...)
}

func (s *OrchestratorIntegrationTestSuite) createAtlas(tonnage float64) string {
	out, err := s.orchestrator.CreateDraft(s.ctx, &armor.CreateDraftInput{
		Name:    "Atlas AS7-D",
		Mass:    100,
		Tonnage: tonnage,
	})
	s.Require().NoError(err)
	return out.State.Draft.ID
}

func (s *OrchestratorIntegrationTestSuite) TestPresetUndoRedo() {
	id := s.createAtlas(19)

	scaled, err := s.orchestrator.ApplyDistribution(s.ctx, &armor.ApplyDistributionInput{
		DraftID:  id,
		PresetID: "balanced",
	})
	s.Require().NoError(err)
	s.True(scaled.Scaled)
	s.Equal(379, scaled.TotalUsed)
	s.Equal(300, scaled.State.Calculations.TotalArmor)
	s.Equal(mech.LocationArmor{Front: 7}, scaled.State.Draft.Allocation[mech.LocationHead])
	s.Equal(mech.LocationArmor{Front: 44, Rear: 19}, scaled.State.Draft.Allocation[mech.LocationCenterTorso])

	_, err = s.orchestrator.SetTonnage(s.ctx, &armor.SetTonnageInput{DraftID: id, Tonnage: 26})
	s.Require().NoError(err)

	full, err := s.orchestrator.ApplyDistribution(s.ctx, &armor.ApplyDistributionInput{
		DraftID:  id,
		PresetID: "balanced",
	})
	s.Require().NoError(err)
	s.False(full.Scaled)
	s.Equal(379, full.State.Calculations.TotalArmor)
	s.Equal(mech.LocationArmor{Front: 56, Rear: 24}, full.State.Draft.Allocation[mech.LocationCenterTorso])

	undone, err := s.orchestrator.Undo(s.ctx, &armor.UndoInput{DraftID: id})
	s.Require().NoError(err)
	s.Equal(300, undone.State.Calculations.TotalArmor)
	s.Equal(26.0, undone.State.Draft.Tonnage)

	undone, err = s.orchestrator.Undo(s.ctx, &armor.UndoInput{DraftID: id})
	s.Require().NoError(err)
	s.Equal(0, undone.State.Calculations.TotalArmor)

	_, err = s.orchestrator.Undo(s.ctx, &armor.UndoInput{DraftID: id})
	s.True(errors.IsFailedPrecondition(err))

	redone, err := s.orchestrator.Redo(s.ctx, &armor.RedoInput{DraftID: id})
	s.Require().NoError(err)
	s.Equal(300, redone.State.Calculations.TotalArmor)

	// a new edit drops the redo tail
	_, err = s.orchestrator.UpdateLocation(s.ctx, &armor.UpdateLocationInput{
		DraftID:  id,
		Location: "LA",
		Change:   mech.FrontOnly(10),
	})
	s.Require().NoError(err)
	_, err = s.orchestrator.Redo(s.ctx, &armor.RedoInput{DraftID: id})
	s.True(errors.IsFailedPrecondition(err))

	s.Equal([]string{
		armor.EventArmorChanged, armor.EventArmorDistributionApplied,
		armor.EventArmorChanged,
		armor.EventArmorChanged, armor.EventArmorDistributionApplied,
		armor.EventArmorChanged,
		armor.EventArmorChanged,
		armor.EventArmorChanged,
		armor.EventArmorChanged,
	}, s.publishedEvents())
}

func (s *OrchestratorIntegrationTestSuite) TestCustomDistribution() {
	id := s.createAtlas(19)

	out, err := s.orchestrator.ApplyDistribution(s.ctx, &armor.ApplyDistributionInput{
		DraftID:  id,
		PresetID: mech.PresetCustom,
		Custom: mech.Allocation{
			mech.LocationHead:     {Front: 12},
			mech.LocationLeftLeg:  {Front: 20},
			mech.LocationRightLeg: {Front: 20},
		},
	})
	s.Require().NoError(err)
	s.Equal(52, out.TotalUsed)
	s.False(out.State.Validation.IsValid)
	s.Equal("Head", out.State.Validation.Errors[0].Location)

	_, err = s.orchestrator.ApplyDistribution(s.ctx, &armor.ApplyDistributionInput{DraftID: id})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.ApplyDistribution(s.ctx, &armor.ApplyDistributionInput{DraftID: id, PresetID: "turtle"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorIntegrationTestSuite) TestCustomDistribution_ClampsSides() {
	id := s.createAtlas(19)

	out, err := s.orchestrator.ApplyDistribution(s.ctx, &armor.ApplyDistributionInput{
		DraftID:  id,
		PresetID: mech.PresetCustom,
		Custom: mech.Allocation{
			mech.LocationHead:    {Front: 5, Rear: 4},
			mech.LocationLeftArm: {Front: -30, Rear: 7},
		},
	})
	s.Require().NoError(err)

	got, err := s.orchestrator.GetDraft(s.ctx, &armor.GetDraftInput{DraftID: id})
	s.Require().NoError(err)
	s.Equal(mech.LocationArmor{Front: 5}, got.State.Draft.Allocation[mech.LocationHead])
	s.Equal(mech.LocationArmor{}, got.State.Draft.Allocation[mech.LocationLeftArm])
	s.Equal(5, out.TotalUsed)
	s.Equal(5, got.State.Calculations.TotalArmor)
	s.True(got.State.Validation.IsValid)
}

func (s *OrchestratorIntegrationTestSuite) TestPreviewDoesNotSave() {
	id := s.createAtlas(19)

	preview, err := s.orchestrator.PreviewDistribution(s.ctx, &armor.PreviewDistributionInput{
		DraftID:  id,
		PresetID: "balanced",
	})
	s.Require().NoError(err)
	s.Equal(304, preview.TotalPoints)
	s.Equal(379, preview.TotalUsed)
	s.Equal(379, preview.Targets.Total())
	s.Equal(300, preview.Allocation.Total())
	s.True(preview.Scaled)

	got, err := s.orchestrator.GetDraft(s.ctx, &armor.GetDraftInput{DraftID: id})
	s.Require().NoError(err)
	s.Equal(0, got.State.Calculations.TotalArmor)
	s.Empty(s.publishedEvents())
}

func (s *OrchestratorIntegrationTestSuite) TestTonnageControl() {
	id := s.createAtlas(0)

	testCases := []struct {
		name     string
		input    float64
		expected float64
		message  string
	}{
		{name: "exact", input: 19, expected: 19},
		{name: "rounds to half ton", input: 19.3, expected: 19.5, message: "Must be in 0.5 ton increments"},
		{name: "clamps to half mass", input: 80, expected: 50, message: "Exceeds maximum (50 tons)"},
		{name: "clamps negative", input: -1, expected: 0, message: "Tonnage cannot be negative"},
		{name: "NaN keeps current", input: math.NaN(), expected: 0, message: "Invalid number"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.orchestrator.SetTonnage(s.ctx, &armor.SetTonnageInput{DraftID: id, Tonnage: tc.input})
			s.Require().NoError(err)
			s.Equal(tc.expected, out.State.Draft.Tonnage)
			s.Equal(tc.message, out.Message)
		})
	}

	up, err := s.orchestrator.AdjustTonnage(s.ctx, &armor.AdjustTonnageInput{DraftID: id, Steps: 3})
	s.Require().NoError(err)
	s.Equal(1.5, up.State.Draft.Tonnage)

	down, err := s.orchestrator.AdjustTonnage(s.ctx, &armor.AdjustTonnageInput{DraftID: id, Steps: -10})
	s.Require().NoError(err)
	s.Equal(0.0, down.State.Draft.Tonnage)
}

func (s *OrchestratorIntegrationTestSuite) TestArmorTypeSwapKeepsAllocation() {
	id := s.createAtlas(19)
	_, err := s.orchestrator.AutoAllocate(s.ctx, &armor.AutoAllocateInput{DraftID: id})
	s.Require().NoError(err)

	out, err := s.orchestrator.SetArmorType(s.ctx, &armor.SetArmorTypeInput{DraftID: id, ArmorTypeID: "ferro_fibrous"})
	s.Require().NoError(err)
	s.Equal("ferro_fibrous", out.State.ArmorType.ID)
	s.Equal(304, out.State.Calculations.TotalArmor)
	s.Equal(334, out.State.Statistics.TotalPoints)

	_, err = s.orchestrator.SetArmorType(s.ctx, &armor.SetArmorTypeInput{DraftID: id, ArmorTypeID: "paper"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorIntegrationTestSuite) TestAutoAllocate() {
	id := s.createAtlas(19)

	proportional, err := s.orchestrator.AutoAllocate(s.ctx, &armor.AutoAllocateInput{DraftID: id})
	s.Require().NoError(err)
	s.Equal(304, proportional.Points)
	s.Equal(304, proportional.State.Calculations.TotalArmor)
	s.True(proportional.State.Validation.IsValid)

	even, err := s.orchestrator.AutoAllocate(s.ctx, &armor.AutoAllocateInput{DraftID: id, Mode: armor.AutoAllocateEven})
	s.Require().NoError(err)
	s.Equal(mech.LocationArmor{Front: 66, Rear: 10}, even.State.Draft.Allocation[mech.LocationCenterTorso])
	s.Equal(295, even.State.Calculations.TotalArmor)

	_, err = s.orchestrator.AutoAllocate(s.ctx, &armor.AutoAllocateInput{DraftID: id, Mode: "random"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorIntegrationTestSuite) TestMaximizeAndSaveLoadout() {
	id := s.createAtlas(0)

	maxed, err := s.orchestrator.Maximize(s.ctx, &armor.MaximizeInput{DraftID: id})
	s.Require().NoError(err)
	s.Equal(26.0, maxed.State.Draft.Tonnage)
	s.Equal(416, maxed.Points)
	s.Equal(409, maxed.State.Calculations.TotalArmor)
	s.Equal(409, maxed.State.Calculations.TotalMax)
	s.True(maxed.State.Validation.IsValid)

	saved, err := s.orchestrator.SaveLoadout(s.ctx, &armor.SaveLoadoutInput{DraftID: id})
	s.Require().NoError(err)
	s.Equal("loadout_1", saved.Loadout.ID)
	s.Equal("Atlas AS7-D", saved.Loadout.Name)
	s.Equal(409, saved.Loadout.TotalArmor)

	got, err := s.orchestrator.GetLoadout(s.ctx, &armor.GetLoadoutInput{LoadoutID: "loadout_1"})
	s.Require().NoError(err)
	s.True(maxed.State.Draft.Allocation.Equal(got.Loadout.Allocation))
	s.Equal(26.0, got.Loadout.Tonnage)

	list, err := s.orchestrator.ListLoadouts(s.ctx, &armor.ListLoadoutsInput{DraftID: id})
	s.Require().NoError(err)
	s.Len(list.Loadouts, 1)

	s.Contains(s.publishedEvents(), armor.EventArmorLoadoutSaved)
}

func (s *OrchestratorIntegrationTestSuite) TestInteract() {
	id := s.createAtlas(19)

	dispatch := func(ev *interaction.Event) *armor.InteractOutput {
		out, err := s.orchestrator.Interact(s.ctx, &armor.InteractInput{DraftID: id, Event: ev})
		s.Require().NoError(err)
		return out
	}

	out := dispatch(&interaction.Event{Type: interaction.EventHover, Location: mech.LocationHead})
	s.Equal(mech.LocationHead, out.Interaction.Hovered)
	s.Equal(interaction.StateHovered, out.Interaction.States[mech.LocationHead])
	s.False(out.Changed)

	dispatch(&interaction.Event{Type: interaction.EventClick, Location: mech.LocationHead})
	out = dispatch(&interaction.Event{Type: interaction.EventClick, Location: mech.LocationHead})
	s.Equal(mech.LocationHead, out.Interaction.Editing)
	s.Equal("0", out.Interaction.EditFront)

	dispatch(&interaction.Event{Type: interaction.EventEditInput, Side: interaction.SideFront, Text: "12abc"})
	out = dispatch(&interaction.Event{Type: interaction.EventKey, Key: interaction.KeyEnter})
	s.True(out.Changed)
	s.Equal(mech.LocationArmor{Front: 9}, out.State.Draft.Allocation[mech.LocationHead])
	s.Equal(mech.LocationHead, out.Interaction.Selected)
	s.Empty(out.Interaction.Editing)

	out = dispatch(&interaction.Event{Type: interaction.EventKey, Key: interaction.KeyArrowDown})
	s.Equal(8, out.State.Draft.Allocation[mech.LocationHead].Front)

	// rear keys do nothing on a location without rear armor
	out = dispatch(&interaction.Event{Type: interaction.EventKey, Key: interaction.KeyArrowRight, Shift: true})
	s.False(out.Changed)

	out = dispatch(&interaction.Event{
		Type:     interaction.EventDragStart,
		Location: mech.LocationCenterTorso,
		Side:     interaction.SideFront,
		Y:        200,
		Mode:     interaction.DragPanel,
	})
	s.True(out.Interaction.Dragging)

	out = dispatch(&interaction.Event{Type: interaction.EventDragMove, Y: 100})
	s.True(out.Changed)
	s.Equal(20, out.State.Draft.Allocation[mech.LocationCenterTorso].Front)

	out = dispatch(&interaction.Event{Type: interaction.EventDragEnd})
	s.False(out.Interaction.Dragging)

	out = dispatch(&interaction.Event{
		Type:     interaction.EventIncrement,
		Location: mech.LocationCenterTorso,
		Side:     interaction.SideRear,
	})
	s.Equal(mech.LocationArmor{Front: 20, Rear: 1}, out.State.Draft.Allocation[mech.LocationCenterTorso])

	// every change above is one undo step
	undone, err := s.orchestrator.Undo(s.ctx, &armor.UndoInput{DraftID: id})
	s.Require().NoError(err)
	s.Equal(mech.LocationArmor{Front: 20}, undone.State.Draft.Allocation[mech.LocationCenterTorso])

	_, err = s.orchestrator.Interact(s.ctx, &armor.InteractInput{
		DraftID: id,
		Event:   &interaction.Event{Type: "teleport"},
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorIntegrationTestSuite) TestDeleteDraft() {
	id := s.createAtlas(19)
	_, err := s.orchestrator.Interact(s.ctx, &armor.InteractInput{
		DraftID: id,
		Event:   &interaction.Event{Type: interaction.EventClick, Location: mech.LocationHead},
	})
	s.Require().NoError(err)

	_, err = s.orchestrator.DeleteDraft(s.ctx, &armor.DeleteDraftInput{DraftID: id})
	s.Require().NoError(err)

	_, err = s.orchestrator.GetDraft(s.ctx, &armor.GetDraftInput{DraftID: id})
	s.True(errors.IsNotFound(err))

	_, err = s.orchestrator.DeleteDraft(s.ctx, &armor.DeleteDraftInput{DraftID: id})
	s.True(errors.IsNotFound(err))

	list, err := s.orchestrator.ListDrafts(s.ctx, &armor.ListDraftsInput{})
	s.Require().NoError(err)
	s.Empty(list.Drafts)
}

const atlasMTF = `Version:1.0
Atlas
AS7-D

Config:Biped
techbase:Inner Sphere
era:2755
rules level:2

Mass:100
Engine:300 Fusion Engine
Structure:IS Standard
Myomer:Standard

Armor:Standard(Inner Sphere)
LA Armor:34
RA Armor:34
LT Armor:32
RT Armor:32
CT Armor:47
HD Armor:9
LL Armor:41
RL Armor:41
RTL Armor:10
RTR Armor:10
RTC Armor:14
`

func (s *OrchestratorIntegrationTestSuite) TestImportMTF() {
	out, err := s.orchestrator.ImportMTF(s.ctx, &armor.ImportMTFInput{Content: atlasMTF, Name: "Atlas AS7-D"})
	s.Require().NoError(err)

	state := out.State
	s.Equal("Atlas AS7-D", state.Draft.Name)
	s.Equal(100.0, state.Draft.Mass)
	s.Equal("standard", state.Draft.ArmorTypeID)
	s.Equal(304, state.Calculations.TotalArmor)
	s.Equal(19.0, state.Draft.Tonnage)
	s.Equal(mech.LocationArmor{Front: 47, Rear: 14}, state.Draft.Allocation[mech.LocationCenterTorso])
	s.True(state.Validation.IsValid)

	_, err = s.orchestrator.ImportMTF(s.ctx, &armor.ImportMTFInput{Content: "Mass:50\nArmor:Adamantium\nHD Armor:9\n"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.ImportMTF(s.ctx, &armor.ImportMTFInput{})
	s.True(errors.IsInvalidArgument(err))
}
