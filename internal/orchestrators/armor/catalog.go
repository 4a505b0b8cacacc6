package armor

import (
	"context"

	"github.com/KirkDiggler/mech-armor-api/internal/errors"
)

// ListArmorTypes lists the armor catalog, filtered by tech base and rules level when a base is given
func (o *orchestrator) ListArmorTypes(_ context.Context, input *ListArmorTypesInput) (*ListArmorTypesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.TechBase == "" {
		return &ListArmorTypesOutput{ArmorTypes: o.catalog.ArmorTypes()}, nil
	}

	return &ListArmorTypesOutput{
		ArmorTypes: o.catalog.AvailableArmorTypes(input.TechBase, input.TechLevel),
	}, nil
}

// ListPresets lists the distribution presets
func (o *orchestrator) ListPresets(_ context.Context, input *ListPresetsInput) (*ListPresetsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return &ListPresetsOutput{Presets: o.catalog.Presets()}, nil
}
