package armor

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/mech-armor-api/internal/engine/budget"
	"github.com/KirkDiggler/mech-armor-api/internal/engine/interaction"
	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
	"github.com/KirkDiggler/mech-armor-api/internal/errors"
	armordraft "github.com/KirkDiggler/mech-armor-api/internal/repositories/armor_draft"
)

const (
	opSetArmorType   = "set_armor_type"
	opSetTonnage     = "set_tonnage"
	opAdjustTonnage  = "adjust_tonnage"
	opUpdateLocation = "update_location"
	opDistribution   = "apply_distribution"
	opMaximize       = "maximize"
	opAutoAllocate   = "auto_allocate"
	opUndo           = "undo"
	opRedo           = "redo"
	opInteract       = "interact"
)

// CreateDraft creates a new draft with an all-zero allocation
func (o *orchestrator) CreateDraft(ctx context.Context, input *CreateDraftInput) (*CreateDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, err := o.createDraft(ctx, input.Name, input.Mass, input.ArmorTypeID, input.Tonnage, nil)
	if err != nil {
		return nil, err
	}

	return &CreateDraftOutput{State: state}, nil
}

func (o *orchestrator) createDraft(ctx context.Context, name string, mass float64, armorTypeID string,
	tonnage float64, alloc mech.Allocation) (*DraftState, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRangeFloat("mass", mass, 0, MaxMass, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	armorType, err := o.lookupArmorType(armorTypeID)
	if err != nil {
		return nil, err
	}

	if alloc == nil {
		alloc = mech.NewAllocation()
	}

	now := o.clock.Now().Unix()
	draft := &mech.ArmorDraft{
		ID:          o.draftIDs.Generate(),
		Name:        name,
		Mass:        mass,
		ArmorTypeID: armorType.ID,
		Tonnage:     budget.NormalizeTonnage(tonnage, 0, mass),
		Allocation:  alloc,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	draft.Record(o.historyLimit)

	if _, err := o.draftRepo.Create(ctx, armordraft.CreateInput{Draft: draft}); err != nil {
		return nil, errors.Wrap(err, "failed to create draft")
	}

	slog.Info("Armor draft created",
		"draft_id", draft.ID,
		"mass", draft.Mass,
		"armor_type", draft.ArmorTypeID,
		"tonnage", draft.Tonnage,
	)

	return o.evaluate(draft, armorType, ""), nil
}

// GetDraft returns a draft and its derived calculations, findings and statistics
func (o *orchestrator) GetDraft(ctx context.Context, input *GetDraftInput) (*GetDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Role != "" && !input.Role.IsValid() {
		return nil, errors.InvalidArgumentf("unknown role %q", input.Role)
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	armorType, err := o.armorTypeOf(draft)
	if err != nil {
		return nil, err
	}

	return &GetDraftOutput{State: o.evaluate(draft, armorType, input.Role)}, nil
}

// ListDrafts returns every live draft
func (o *orchestrator) ListDrafts(ctx context.Context, input *ListDraftsInput) (*ListDraftsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.draftRepo.List(ctx, armordraft.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list drafts")
	}

	return &ListDraftsOutput{Drafts: out.Drafts}, nil
}

// DeleteDraft removes a draft and closes its interaction session
func (o *orchestrator) DeleteDraft(ctx context.Context, input *DeleteDraftInput) (*DeleteDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.DraftID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}

	unlock := o.locks.lock(input.DraftID)
	defer unlock()

	if _, err := o.draftRepo.Delete(ctx, armordraft.DeleteInput{ID: input.DraftID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete draft %s", input.DraftID)
	}
	o.sessions.close(input.DraftID)

	slog.Info("Armor draft deleted", "draft_id", input.DraftID)

	return &DeleteDraftOutput{}, nil
}

// SetArmorType swaps the armor material. The allocation is left untouched.
func (o *orchestrator) SetArmorType(ctx context.Context, input *SetArmorTypeInput) (*SetArmorTypeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ArmorTypeID == "" {
		return nil, errors.InvalidArgument("armor type ID is required")
	}

	armorType, err := o.lookupArmorType(input.ArmorTypeID)
	if err != nil {
		return nil, err
	}

	state, _, err := o.mutate(ctx, input.DraftID, opSetArmorType, func(draft *mech.ArmorDraft, _ *mech.ArmorType) error {
		draft.ArmorTypeID = armorType.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &SetArmorTypeOutput{State: state}, nil
}

// SetTonnage sets the armor tonnage, rounded to a half ton and clamped to half the unit mass
func (o *orchestrator) SetTonnage(ctx context.Context, input *SetTonnageInput) (*SetTonnageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var message string
	state, _, err := o.mutate(ctx, input.DraftID, opSetTonnage, func(draft *mech.ArmorDraft, _ *mech.ArmorType) error {
		message = budget.CheckTonnage(input.Tonnage, draft.Mass)
		draft.Tonnage = budget.NormalizeTonnage(input.Tonnage, draft.Tonnage, draft.Mass)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &SetTonnageOutput{State: state, Message: message}, nil
}

// AdjustTonnage moves the tonnage by whole half ton steps
func (o *orchestrator) AdjustTonnage(ctx context.Context, input *AdjustTonnageInput) (*AdjustTonnageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Steps == 0 {
		return nil, errors.InvalidArgument("steps cannot be zero")
	}

	state, _, err := o.mutate(ctx, input.DraftID, opAdjustTonnage, func(draft *mech.ArmorDraft, _ *mech.ArmorType) error {
		draft.Tonnage = budget.StepTonnage(draft.Tonnage, input.Steps, draft.Mass)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &AdjustTonnageOutput{State: state}, nil
}

// UpdateLocation applies a partial front/rear change to one location, clamped to its maximum
func (o *orchestrator) UpdateLocation(ctx context.Context, input *UpdateLocationInput) (*UpdateLocationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	loc, err := parseLocation(input.Location)
	if err != nil {
		return nil, err
	}
	if input.Change.IsEmpty() {
		return nil, errors.InvalidArgument("change must set front or rear")
	}

	state, changed, err := o.mutate(ctx, input.DraftID, opUpdateLocation, func(draft *mech.ArmorDraft, _ *mech.ArmorType) error {
		applyChange(draft, loc, input.Change)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateLocationOutput{State: state, Changed: changed}, nil
}

// applyChange is the single write path for per-location edits
func applyChange(draft *mech.ArmorDraft, loc mech.Location, change mech.ArmorChange) {
	draft.Allocation[loc] = interaction.Apply(
		draft.Allocation[loc],
		change,
		budget.MaxArmorForLocation(loc, draft.Mass),
		budget.HasRearArmor(loc),
	)
}

// Undo restores the previous allocation snapshot
func (o *orchestrator) Undo(ctx context.Context, input *UndoInput) (*UndoOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, _, err := o.travel(ctx, input.DraftID, opUndo, func(draft *mech.ArmorDraft, _ *mech.ArmorType) error {
		if !draft.Undo() {
			return errors.FailedPrecondition("nothing to undo")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UndoOutput{State: state}, nil
}

// Redo reapplies the snapshot undone last
func (o *orchestrator) Redo(ctx context.Context, input *RedoInput) (*RedoOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, _, err := o.travel(ctx, input.DraftID, opRedo, func(draft *mech.ArmorDraft, _ *mech.ArmorType) error {
		if !draft.Redo() {
			return errors.FailedPrecondition("nothing to redo")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &RedoOutput{State: state}, nil
}
