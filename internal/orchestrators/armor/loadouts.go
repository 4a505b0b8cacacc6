package armor

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/mech-armor-api/internal/engine/budget"
	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
	"github.com/KirkDiggler/mech-armor-api/internal/errors"
	"github.com/KirkDiggler/mech-armor-api/internal/mtf"
	"github.com/KirkDiggler/mech-armor-api/internal/repositories/loadout"
)

// SaveLoadout stores the draft's current configuration. Drafts with validation errors are
// refused; warnings do not block.
func (o *orchestrator) SaveLoadout(ctx context.Context, input *SaveLoadoutInput) (*SaveLoadoutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.DraftID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}

	unlock := o.locks.lock(input.DraftID)
	defer unlock()

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	armorType, err := o.armorTypeOf(draft)
	if err != nil {
		return nil, err
	}

	state := o.evaluate(draft, armorType, "")
	if !state.Validation.IsValid {
		messages := make([]string, 0, len(state.Validation.Errors))
		for _, finding := range state.Validation.Errors {
			messages = append(messages, finding.Location+": "+finding.Message)
		}
		return nil, errors.FailedPrecondition(messages[0]).WithMeta("errors", messages)
	}

	name := input.Name
	if name == "" {
		name = draft.Name
	}

	saved := &mech.Loadout{
		ID:          o.loadoutIDs.Generate(),
		DraftID:     draft.ID,
		Name:        name,
		Mass:        draft.Mass,
		ArmorTypeID: draft.ArmorTypeID,
		Tonnage:     draft.Tonnage,
		Allocation:  draft.Allocation.Clone(),
		TotalArmor:  state.Calculations.TotalArmor,
		CreatedAt:   o.clock.Now().Unix(),
	}

	if _, err := o.loadoutRepo.Save(ctx, loadout.SaveInput{Loadout: saved}); err != nil {
		return nil, errors.Wrap(err, "failed to save loadout")
	}

	o.publish(ctx, EventArmorLoadoutSaved, draft, map[string]any{
		"loadout_id":  saved.ID,
		"total_armor": saved.TotalArmor,
	})

	slog.Info("Armor loadout saved",
		"loadout_id", saved.ID,
		"draft_id", draft.ID,
		"total_armor", saved.TotalArmor,
		"warnings", len(state.Validation.Warnings),
	)

	return &SaveLoadoutOutput{Loadout: saved}, nil
}

// GetLoadout retrieves a saved loadout
func (o *orchestrator) GetLoadout(ctx context.Context, input *GetLoadoutInput) (*GetLoadoutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.LoadoutID == "" {
		return nil, errors.InvalidArgument("loadout ID is required")
	}

	out, err := o.loadoutRepo.Get(ctx, loadout.GetInput{ID: input.LoadoutID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get loadout %s", input.LoadoutID)
	}

	return &GetLoadoutOutput{Loadout: out.Loadout}, nil
}

// ListLoadouts lists saved loadouts, newest first
func (o *orchestrator) ListLoadouts(ctx context.Context, input *ListLoadoutsInput) (*ListLoadoutsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgument("limit cannot be negative")
	}

	out, err := o.loadoutRepo.List(ctx, loadout.ListInput{
		DraftID: input.DraftID,
		Limit:   input.Limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list loadouts")
	}

	return &ListLoadoutsOutput{Loadouts: out.Loadouts}, nil
}

// ImportMTF creates a draft from the armor block of a MegaMek unit file. The tonnage is the
// half ton that covers the imported points.
func (o *orchestrator) ImportMTF(ctx context.Context, input *ImportMTFInput) (*ImportMTFOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Content == "" {
		return nil, errors.InvalidArgument("content is required")
	}

	unit, err := mtf.ParseString(input.Content)
	if err != nil {
		return nil, err
	}

	armorType, err := o.catalog.ArmorTypeByName(unit.ArmorName)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "unsupported armor type in unit file")
	}

	name := input.Name
	if name == "" {
		name = unit.Name()
	}

	tonnage := budget.CeilToHalfTon(float64(unit.Allocation.Total()) / armorType.PointsPerTon)

	state, err := o.createDraft(ctx, name, unit.Mass, armorType.ID, tonnage, unit.Allocation)
	if err != nil {
		return nil, err
	}

	slog.Info("Unit file imported",
		"draft_id", state.Draft.ID,
		"unit", name,
		"armor_type", armorType.ID,
		"total_armor", state.Calculations.TotalArmor,
	)

	return &ImportMTFOutput{State: state}, nil
}
