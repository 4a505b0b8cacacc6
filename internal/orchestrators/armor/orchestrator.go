// Package armor implements the armor editor orchestrator. It owns each draft's allocation,
// tonnage, armor type and history, runs the engine after every change and persists the result.
package armor

//go:generate mockgen -destination=mock/mock_service.go -package=armormock github.com/KirkDiggler/mech-armor-api/internal/orchestrators/armor Service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"go.opentelemetry.io/otel/metric"

	"github.com/KirkDiggler/mech-armor-api/internal/catalog"
	"github.com/KirkDiggler/mech-armor-api/internal/engine/budget"
	"github.com/KirkDiggler/mech-armor-api/internal/engine/validation"
	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
	"github.com/KirkDiggler/mech-armor-api/internal/errors"
	"github.com/KirkDiggler/mech-armor-api/internal/pkg/clock"
	"github.com/KirkDiggler/mech-armor-api/internal/pkg/idgen"
	armordraft "github.com/KirkDiggler/mech-armor-api/internal/repositories/armor_draft"
	"github.com/KirkDiggler/mech-armor-api/internal/repositories/loadout"
)

const (
	// DefaultHistoryLimit is the undo depth when none is configured
	DefaultHistoryLimit = 50

	// DefaultSessionIdleTimeout matches the default draft TTL so an editor session never
	// outlives its draft by more than one idle period
	DefaultSessionIdleTimeout = armordraft.DefaultTTL

	// MaxMass is the heaviest unit a draft may describe
	MaxMass = 200
)

// Service defines the interface for armor editing operations
type Service interface {
	// Draft lifecycle
	CreateDraft(ctx context.Context, input *CreateDraftInput) (*CreateDraftOutput, error)
	GetDraft(ctx context.Context, input *GetDraftInput) (*GetDraftOutput, error)
	ListDrafts(ctx context.Context, input *ListDraftsInput) (*ListDraftsOutput, error)
	DeleteDraft(ctx context.Context, input *DeleteDraftInput) (*DeleteDraftOutput, error)

	// Budget
	SetArmorType(ctx context.Context, input *SetArmorTypeInput) (*SetArmorTypeOutput, error)
	SetTonnage(ctx context.Context, input *SetTonnageInput) (*SetTonnageOutput, error)
	AdjustTonnage(ctx context.Context, input *AdjustTonnageInput) (*AdjustTonnageOutput, error)

	// Allocation
	UpdateLocation(ctx context.Context, input *UpdateLocationInput) (*UpdateLocationOutput, error)
	ApplyDistribution(ctx context.Context, input *ApplyDistributionInput) (*ApplyDistributionOutput, error)
	PreviewDistribution(ctx context.Context, input *PreviewDistributionInput) (*PreviewDistributionOutput, error)
	Maximize(ctx context.Context, input *MaximizeInput) (*MaximizeOutput, error)
	AutoAllocate(ctx context.Context, input *AutoAllocateInput) (*AutoAllocateOutput, error)
	Undo(ctx context.Context, input *UndoInput) (*UndoOutput, error)
	Redo(ctx context.Context, input *RedoInput) (*RedoOutput, error)
	Interact(ctx context.Context, input *InteractInput) (*InteractOutput, error)

	// Catalog
	ListArmorTypes(ctx context.Context, input *ListArmorTypesInput) (*ListArmorTypesOutput, error)
	ListPresets(ctx context.Context, input *ListPresetsInput) (*ListPresetsOutput, error)

	// Loadouts
	SaveLoadout(ctx context.Context, input *SaveLoadoutInput) (*SaveLoadoutOutput, error)
	GetLoadout(ctx context.Context, input *GetLoadoutInput) (*GetLoadoutOutput, error)
	ListLoadouts(ctx context.Context, input *ListLoadoutsInput) (*ListLoadoutsOutput, error)
	ImportMTF(ctx context.Context, input *ImportMTFInput) (*ImportMTFOutput, error)
}

// Config holds the dependencies for the armor orchestrator
type Config struct {
	DraftRepo          armordraft.Repository
	LoadoutRepo        loadout.Repository
	Catalog            *catalog.Catalog
	DraftIDGenerator   idgen.Generator
	LoadoutIDGenerator idgen.Generator

	// Optional
	Clock        clock.Clock
	EventBus     events.EventBus
	Meter        metric.Meter
	HistoryLimit int
	// SessionIdleTimeout closes interaction sessions nobody has used for this long
	SessionIdleTimeout time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DraftRepo == nil {
		vb.RequiredField("DraftRepo")
	}
	if c.LoadoutRepo == nil {
		vb.RequiredField("LoadoutRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.DraftIDGenerator == nil {
		vb.RequiredField("DraftIDGenerator")
	}
	if c.LoadoutIDGenerator == nil {
		vb.RequiredField("LoadoutIDGenerator")
	}
	if c.HistoryLimit < 0 {
		vb.Field("HistoryLimit", "cannot be negative")
	}
	if c.SessionIdleTimeout < 0 {
		vb.Field("SessionIdleTimeout", "cannot be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	draftRepo    armordraft.Repository
	loadoutRepo  loadout.Repository
	catalog      *catalog.Catalog
	draftIDs     idgen.Generator
	loadoutIDs   idgen.Generator
	clock        clock.Clock
	eventBus     events.EventBus
	metrics      *metrics
	historyLimit int

	locks    draftLocks
	sessions *sessions
}

// NewOrchestrator creates a new armor orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	historyLimit := cfg.HistoryLimit
	if historyLimit == 0 {
		historyLimit = DefaultHistoryLimit
	}

	idle := cfg.SessionIdleTimeout
	if idle == 0 {
		idle = DefaultSessionIdleTimeout
	}

	m, err := newMetrics(cfg.Meter)
	if err != nil {
		return nil, err
	}

	return &orchestrator{
		draftRepo:    cfg.DraftRepo,
		loadoutRepo:  cfg.LoadoutRepo,
		catalog:      cfg.Catalog,
		draftIDs:     cfg.DraftIDGenerator,
		loadoutIDs:   cfg.LoadoutIDGenerator,
		clock:        clk,
		eventBus:     cfg.EventBus,
		metrics:      m,
		historyLimit: historyLimit,
		sessions:     newSessions(clk, idle),
	}, nil
}

// draftLocks serializes read-modify-write cycles per draft. An entry lives only while
// someone holds or waits on it.
type draftLocks struct {
	mu    sync.Mutex
	locks map[string]*draftLock
}

type draftLock struct {
	mu   sync.Mutex
	refs int
}

func (l *draftLocks) lock(id string) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*draftLock)
	}
	m, ok := l.locks[id]
	if !ok {
		m = &draftLock{}
		l.locks[id] = m
	}
	m.refs++
	l.mu.Unlock()

	m.mu.Lock()
	return func() {
		m.mu.Unlock()

		l.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}

func (l *draftLocks) held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}

func (o *orchestrator) loadDraft(ctx context.Context, draftID string) (*mech.ArmorDraft, error) {
	if draftID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}

	out, err := o.draftRepo.Get(ctx, armordraft.GetInput{ID: draftID})
	if err != nil {
		if errors.IsNotFound(err) {
			// expired or deleted elsewhere
			o.sessions.close(draftID)
		}
		return nil, errors.Wrapf(err, "failed to get draft %s", draftID)
	}
	return out.Draft, nil
}

func (o *orchestrator) armorTypeOf(draft *mech.ArmorDraft) (*mech.ArmorType, error) {
	armorType, err := o.catalog.ArmorType(draft.ArmorTypeID)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal,
			"draft "+draft.ID+" references an unknown armor type")
	}
	return armorType, nil
}

// lookupArmorType resolves a caller supplied armor type. Unknown ids are a bad request.
func (o *orchestrator) lookupArmorType(id string) (*mech.ArmorType, error) {
	if id == "" {
		id = catalog.DefaultArmorTypeID
	}
	armorType, err := o.catalog.ArmorType(id)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "unknown armor type")
	}
	return armorType, nil
}

// evaluate runs the engine over a draft
func (o *orchestrator) evaluate(draft *mech.ArmorDraft, armorType *mech.ArmorType, role mech.Role) *DraftState {
	calc := budget.Recompute(draft.Allocation, draft.Mass)
	result := validation.Validate(&validation.Input{
		Locations:       calc.Locations,
		ArmorTonnage:    draft.Tonnage,
		MaxArmorTonnage: budget.MaxArmorTonnage(draft.Mass),
		Role:            role,
	})

	return &DraftState{
		Draft:        draft,
		ArmorType:    armorType,
		Calculations: calc,
		Validation:   result,
		Statistics:   budget.Stats(draft.Allocation, draft.Mass, draft.Tonnage, armorType),
	}
}

// mutation is one change to a loaded draft. It edits the draft in place.
type mutation func(draft *mech.ArmorDraft, armorType *mech.ArmorType) error

// mutate loads a draft under its lock, applies fn and persists the draft when anything
// changed. A changed allocation is recorded in the undo history.
func (o *orchestrator) mutate(ctx context.Context, draftID, op string, fn mutation) (*DraftState, bool, error) {
	return o.apply(ctx, draftID, op, true, fn)
}

// travel is mutate for moves through the history itself
func (o *orchestrator) travel(ctx context.Context, draftID, op string, fn mutation) (*DraftState, bool, error) {
	return o.apply(ctx, draftID, op, false, fn)
}

func (o *orchestrator) apply(ctx context.Context, draftID, op string, record bool, fn mutation) (*DraftState, bool, error) {
	if draftID == "" {
		return nil, false, errors.InvalidArgument("draft ID is required")
	}

	unlock := o.locks.lock(draftID)
	defer unlock()

	draft, err := o.loadDraft(ctx, draftID)
	if err != nil {
		return nil, false, err
	}

	armorType, err := o.armorTypeOf(draft)
	if err != nil {
		return nil, false, err
	}

	before := draft.Clone()
	if err := fn(draft, armorType); err != nil {
		return nil, false, err
	}

	allocationChanged := !before.Allocation.Equal(draft.Allocation)
	changed := allocationChanged ||
		before.Tonnage != draft.Tonnage ||
		before.ArmorTypeID != draft.ArmorTypeID ||
		before.HistoryIndex != draft.HistoryIndex

	if draft.ArmorTypeID != before.ArmorTypeID {
		if armorType, err = o.armorTypeOf(draft); err != nil {
			return nil, false, err
		}
	}

	state, err := o.commit(ctx, draft, armorType, op, changed, record && allocationChanged)
	if err != nil {
		return nil, false, err
	}
	return state, changed, nil
}

// commit persists a mutated draft and reports the change. It expects the draft lock held.
func (o *orchestrator) commit(ctx context.Context, draft *mech.ArmorDraft, armorType *mech.ArmorType,
	op string, changed, record bool) (*DraftState, error) {
	if !changed {
		return o.evaluate(draft, armorType, ""), nil
	}

	if record {
		draft.Record(o.historyLimit)
	}
	draft.UpdatedAt = o.clock.Now().Unix()

	if _, err := o.draftRepo.Update(ctx, armordraft.UpdateInput{Draft: draft}); err != nil {
		return nil, errors.Wrapf(err, "failed to update draft %s", draft.ID)
	}

	state := o.evaluate(draft, armorType, "")

	o.metrics.mutation(ctx, op, len(state.Validation.Errors))
	o.publish(ctx, EventArmorChanged, draft, map[string]any{
		"operation":   op,
		"total_armor": state.Calculations.TotalArmor,
		"tonnage":     draft.Tonnage,
		"is_valid":    state.Validation.IsValid,
	})

	slog.Info("Armor draft updated",
		"draft_id", draft.ID,
		"operation", op,
		"armor_type", draft.ArmorTypeID,
		"tonnage", draft.Tonnage,
		"total_armor", state.Calculations.TotalArmor,
		"errors", len(state.Validation.Errors),
		"warnings", len(state.Validation.Warnings),
	)

	return state, nil
}

func parseLocation(s string) (mech.Location, error) {
	loc, ok := mech.ParseLocation(s)
	if !ok {
		return "", errors.InvalidArgumentf("unknown location %q", s)
	}
	return loc, nil
}
