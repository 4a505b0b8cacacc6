// Package budget maps unit mass and armor type onto armor point limits. It is the single
// source of per-location maximums; nothing else may encode the formulas.
package budget

import (
	"fmt"
	"math"
	"strconv"

	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
)

// HalfTon is the tonnage granularity for armor
const HalfTon = 0.5

// MaxArmorForLocation returns the most armor points loc may carry on a unit of the given mass.
// Locations outside the biped set fall back to the generic 0.2 factor.
func MaxArmorForLocation(loc mech.Location, mass float64) int {
	switch loc {
	case mech.LocationHead:
		if mass > 100 {
			return 12
		}
		return 9
	case mech.LocationCenterTorso:
		return floor(mass * 2 * 0.4)
	case mech.LocationLeftTorso, mech.LocationRightTorso:
		return floor(mass * 2 * 0.3)
	case mech.LocationLeftArm, mech.LocationRightArm, mech.LocationLeftLeg, mech.LocationRightLeg:
		return floor(mass * 2 * 0.25)
	default:
		return floor(mass * 2 * 0.2)
	}
}

// HasRearArmor is true exactly for the three torso locations
func HasRearArmor(loc mech.Location) bool {
	switch loc {
	case mech.LocationCenterTorso, mech.LocationLeftTorso, mech.LocationRightTorso:
		return true
	default:
		return false
	}
}

// PointsForTonnage converts tonnage into whole armor points.
// It panics when the armor type has no positive points-per-ton; that is a caller bug.
func PointsForTonnage(tonnage float64, armor *mech.ArmorType) int {
	return floor(tonnage * pointsPerTon(armor))
}

// MaxArmorTonnage is half the unit's mass
func MaxArmorTonnage(mass float64) float64 {
	return mass * 0.5
}

// MaxLocations returns the maximum for every location in canonical order
func MaxLocations(mass float64) map[mech.Location]int {
	out := make(map[mech.Location]int, len(mech.Locations))
	for _, loc := range mech.Locations {
		out[loc] = MaxArmorForLocation(loc, mass)
	}
	return out
}

// TotalMax sums the maximum of all eight locations
func TotalMax(mass float64) int {
	total := 0
	for _, loc := range mech.Locations {
		total += MaxArmorForLocation(loc, mass)
	}
	return total
}

// Recompute derives the calculations read model from an allocation and the unit mass
func Recompute(alloc mech.Allocation, mass float64) mech.Calculations {
	calc := mech.Calculations{
		Locations: make([]mech.LocationAllocation, 0, len(mech.Locations)),
	}

	for _, loc := range mech.Locations {
		armor := alloc[loc]
		maxArmor := MaxArmorForLocation(loc, mass)
		total := armor.Total()

		coverage := 0.0
		if maxArmor > 0 {
			coverage = float64(total) / float64(maxArmor) * 100
		}

		if total > maxArmor {
			calc.Errors = append(calc.Errors,
				fmt.Sprintf("%s: Armor (%d) exceeds maximum (%d)", loc, total, maxArmor))
		}

		calc.Locations = append(calc.Locations, mech.LocationAllocation{
			Location: loc,
			Front:    armor.Front,
			Rear:     armor.Rear,
			Max:      maxArmor,
			HasRear:  HasRearArmor(loc),
			Coverage: coverage,
		})
		calc.TotalArmor += total
		calc.TotalMax += maxArmor
	}

	if calc.TotalMax > 0 {
		calc.OverallCoverage = float64(calc.TotalArmor) / float64(calc.TotalMax) * 100
	}
	calc.IsValid = len(calc.Errors) == 0

	return calc
}

// Stats reports how the tonnage budget is spent by alloc
func Stats(alloc mech.Allocation, mass, tonnage float64, armor *mech.ArmorType) mech.Statistics {
	ppt := pointsPerTon(armor)
	totalPoints := PointsForTonnage(tonnage, armor)
	allocated := alloc.Total()
	unallocated := totalPoints - allocated

	stats := mech.Statistics{
		TotalPoints:       totalPoints,
		AllocatedPoints:   allocated,
		UnallocatedPoints: unallocated,
		MaxTonnage:        MaxArmorTonnage(mass),
		ArmorWeight:       ArmorWeight(allocated, armor),
	}
	if unallocated > 0 {
		stats.WastedPoints = math.Mod(float64(unallocated), ppt)
	}
	if totalMax := TotalMax(mass); totalMax > 0 {
		stats.Efficiency = float64(allocated) / float64(totalMax) * 100
	}

	return stats
}

// ArmorWeight is the tonnage needed to carry points of the given type, rounded up to a half ton
func ArmorWeight(points int, armor *mech.ArmorType) float64 {
	return CeilToHalfTon(float64(points) / pointsPerTon(armor) * armor.EffectiveWeightMultiplier())
}

// RoundToHalfTon rounds to the nearest half ton with halves rounding up
func RoundToHalfTon(tons float64) float64 {
	return jsRound(tons*2) / 2
}

// CeilToHalfTon rounds up to the next half ton
func CeilToHalfTon(tons float64) float64 {
	return math.Ceil(tons*2) / 2
}

// NormalizeTonnage turns raw user input into a legal tonnage: rounded to a half ton and
// clamped to [0, mass/2]. Non-finite input leaves current in place.
func NormalizeTonnage(input, current, mass float64) float64 {
	if math.IsNaN(input) || math.IsInf(input, 0) {
		return current
	}
	return clampFloat(RoundToHalfTon(input), 0, MaxArmorTonnage(mass))
}

// StepTonnage moves current by steps half tons and clamps the result
func StepTonnage(current float64, steps int, mass float64) float64 {
	return clampFloat(current+float64(steps)*HalfTon, 0, MaxArmorTonnage(mass))
}

// CheckTonnage returns a user facing problem with a tonnage entry, or "" when it is acceptable
func CheckTonnage(tons, mass float64) string {
	maxTons := MaxArmorTonnage(mass)
	switch {
	case math.IsNaN(tons) || math.IsInf(tons, 0):
		return "Invalid number"
	case tons < 0:
		return "Tonnage cannot be negative"
	case tons > maxTons:
		return fmt.Sprintf("Exceeds maximum (%s tons)", FormatNumber(maxTons))
	case math.Mod(tons*2, 1) != 0:
		return "Must be in 0.5 ton increments"
	}
	return ""
}

// FormatNumber prints a float the shortest way that round-trips: 19 for 19.0, 9.5 for 9.5
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func pointsPerTon(armor *mech.ArmorType) float64 {
	if armor == nil || !(armor.PointsPerTon > 0) {
		panic("budget: armor type must have positive points per ton")
	}
	return armor.PointsPerTon
}

func floor(v float64) int {
	return int(math.Floor(v))
}

// jsRound rounds half up, including for negative values (-2.5 -> -2)
func jsRound(v float64) float64 {
	return math.Floor(v + 0.5)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
