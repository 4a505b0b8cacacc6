// Package validation reports rule violations in an armor allocation. Maximums arrive as
// input data on each location; this package never derives them itself.
package validation

import (
	"fmt"
	"math"
	"strconv"

	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
)

const (
	// LocationTotal labels findings about the unit as a whole
	LocationTotal = "Total"

	lowRearRatio       = 0.1
	imbalanceTolerance = 5
)

// Input is everything a validation pass looks at
type Input struct {
	Locations       []mech.LocationAllocation
	ArmorTonnage    float64
	MaxArmorTonnage float64
	// Role adds recommended minimum coverage warnings when set
	Role mech.Role
}

// Validate runs every rule independently. Locations are visited in canonical order, followed
// by any extra locations in the order given. Warnings never affect IsValid.
func Validate(input *Input) *mech.ValidationResult {
	result := &mech.ValidationResult{
		Errors:   []mech.Finding{},
		Warnings: []mech.Finding{},
	}
	if input == nil {
		result.IsValid = true
		return result
	}

	byLocation := index(input.Locations)

	for _, loc := range ordered(input.Locations) {
		total := loc.Total()

		if total > loc.Max {
			result.Errors = append(result.Errors, mech.Finding{
				Location: loc.Location.String(),
				Type:     mech.FindingExcess,
				Message:  fmt.Sprintf("Armor (%d) exceeds maximum (%d)", total, loc.Max),
				Severity: mech.SeverityError,
			})
		}

		// A torso with zero rear is not flagged here; only a thin, non-zero rear is.
		if loc.HasRear && loc.Front > 0 {
			ratio := float64(loc.Rear) / float64(loc.Front+loc.Rear)
			if ratio < lowRearRatio && loc.Rear > 0 {
				result.Warnings = append(result.Warnings, mech.Finding{
					Location: loc.Location.String(),
					Type:     mech.FindingBalance,
					Message:  fmt.Sprintf("Very low rear armor coverage (%d%%)", int(math.Floor(ratio*100+0.5))),
					Severity: mech.SeverityWarning,
				})
			}
		}

		if total == 0 && loc.Location != mech.LocationHead {
			result.Warnings = append(result.Warnings, mech.Finding{
				Location: loc.Location.String(),
				Type:     mech.FindingInvalid,
				Message:  "No armor allocated",
				Severity: mech.SeverityWarning,
			})
		}
	}

	for _, pair := range mech.SymmetricPairs {
		left := byLocation[pair.Left].Total()
		right := byLocation[pair.Right].Total()
		if abs(left-right) > imbalanceTolerance {
			result.Warnings = append(result.Warnings, mech.Finding{
				Location: fmt.Sprintf("%s/%s", pair.Left, pair.Right),
				Type:     mech.FindingBalance,
				Message:  fmt.Sprintf("Armor imbalance: %s (%d) vs %s (%d)", pair.Left, left, pair.Right, right),
				Severity: mech.SeverityWarning,
			})
		}
	}

	if input.ArmorTonnage > input.MaxArmorTonnage {
		result.Errors = append(result.Errors, mech.Finding{
			Location: LocationTotal,
			Type:     mech.FindingExcess,
			Message: fmt.Sprintf("Total armor tonnage (%s) exceeds maximum (%s)",
				formatNumber(input.ArmorTonnage), formatNumber(input.MaxArmorTonnage)),
			Severity: mech.SeverityError,
		})
	}

	if input.Role != "" {
		result.Warnings = append(result.Warnings, RoleMinimums(input.Locations, input.Role)...)
	}

	result.IsValid = len(result.Errors) == 0
	return result
}

// index keys locations by name. Later duplicates win.
func index(locations []mech.LocationAllocation) map[mech.Location]mech.LocationAllocation {
	out := make(map[mech.Location]mech.LocationAllocation, len(locations))
	for _, loc := range locations {
		out[loc.Location] = loc
	}
	return out
}

func ordered(locations []mech.LocationAllocation) []mech.LocationAllocation {
	byLocation := index(locations)
	out := make([]mech.LocationAllocation, 0, len(byLocation))
	for _, loc := range mech.Locations {
		if l, ok := byLocation[loc]; ok {
			out = append(out, l)
		}
	}
	for _, l := range locations {
		if !l.Location.IsValid() {
			out = append(out, l)
		}
	}
	return out
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
