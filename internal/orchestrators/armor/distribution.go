package armor

import (
	"context"

	"github.com/KirkDiggler/mech-armor-api/internal/engine/budget"
	"github.com/KirkDiggler/mech-armor-api/internal/engine/distribution"
	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
	"github.com/KirkDiggler/mech-armor-api/internal/errors"
)

func (o *orchestrator) lookupPreset(id string) (*mech.Preset, error) {
	preset, err := o.catalog.Preset(id)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "unknown preset")
	}
	return preset, nil
}

// ApplyDistribution replaces the allocation with a preset fitted to the current budget, or
// with a caller supplied map
func (o *orchestrator) ApplyDistribution(ctx context.Context, input *ApplyDistributionInput) (*ApplyDistributionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	custom := input.PresetID == "" || input.PresetID == mech.PresetCustom
	if custom && input.Custom == nil {
		return nil, errors.InvalidArgument("custom distribution requires an allocation")
	}

	var preset *mech.Preset
	if !custom {
		var err error
		if preset, err = o.lookupPreset(input.PresetID); err != nil {
			return nil, err
		}
	}

	var result *distribution.Result
	state, _, err := o.mutate(ctx, input.DraftID, opDistribution, func(draft *mech.ArmorDraft, armorType *mech.ArmorType) error {
		if custom {
			draft.Allocation = distribution.ApplyCustom(input.Custom)
			return nil
		}
		result = distribution.ApplyPreset(preset, draft.Mass, budget.PointsForTonnage(draft.Tonnage, armorType))
		draft.Allocation = result.Allocation
		return nil
	})
	if err != nil {
		return nil, err
	}

	presetID := mech.PresetCustom
	out := &ApplyDistributionOutput{State: state}
	if result != nil {
		presetID = preset.ID
		out.TotalUsed = result.TotalUsed
		out.Scaled = result.Scaled
	} else {
		out.TotalUsed = state.Draft.Allocation.Total()
	}

	o.metrics.presetApplied(ctx, presetID)
	o.publish(ctx, EventArmorDistributionApplied, state.Draft, map[string]any{
		"preset":      presetID,
		"scaled":      out.Scaled,
		"total_armor": state.Calculations.TotalArmor,
	})

	return out, nil
}

// PreviewDistribution computes what a preset would do to a draft without saving anything
func (o *orchestrator) PreviewDistribution(ctx context.Context, input *PreviewDistributionInput) (*PreviewDistributionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	preset, err := o.lookupPreset(input.PresetID)
	if err != nil {
		return nil, err
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	armorType, err := o.armorTypeOf(draft)
	if err != nil {
		return nil, err
	}

	totalPoints := budget.PointsForTonnage(draft.Tonnage, armorType)
	result := distribution.ApplyPreset(preset, draft.Mass, totalPoints)

	return &PreviewDistributionOutput{
		Preset:      preset,
		Targets:     result.Targets,
		Allocation:  result.Allocation,
		TotalUsed:   result.TotalUsed,
		TotalPoints: totalPoints,
		Scaled:      result.Scaled,
	}, nil
}

// Maximize buys enough tonnage to reach every location maximum and fills them
func (o *orchestrator) Maximize(ctx context.Context, input *MaximizeInput) (*MaximizeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var points int
	state, _, err := o.mutate(ctx, input.DraftID, opMaximize, func(draft *mech.ArmorDraft, armorType *mech.ArmorType) error {
		result := distribution.Maximize(draft.Mass, armorType)
		draft.Tonnage = result.Tonnage
		draft.Allocation = result.Allocation
		points = result.Points
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &MaximizeOutput{State: state, Points: points}, nil
}

// AutoAllocate spreads the points the current tonnage buys across all locations
func (o *orchestrator) AutoAllocate(ctx context.Context, input *AutoAllocateInput) (*AutoAllocateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	mode := input.Mode
	if mode == "" {
		mode = AutoAllocateProportional
	}
	if mode != AutoAllocateProportional && mode != AutoAllocateEven {
		return nil, errors.InvalidArgumentf("unknown auto-allocate mode %q", input.Mode)
	}

	var points int
	state, _, err := o.mutate(ctx, input.DraftID, opAutoAllocate, func(draft *mech.ArmorDraft, armorType *mech.ArmorType) error {
		points = budget.PointsForTonnage(draft.Tonnage, armorType)
		if mode == AutoAllocateEven {
			draft.Allocation = distribution.AutoAllocateEvenly(draft.Mass, points)
		} else {
			draft.Allocation = distribution.AutoAllocate(draft.Mass, points)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &AutoAllocateOutput{State: state, Points: points}, nil
}
