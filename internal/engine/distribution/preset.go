// Package distribution produces complete allocations in one shot: from a preset, from the
// maximize action, or from one of the auto-allocation splits. Every producer returns all eight
// locations and never puts more on a location than its maximum.
package distribution

import (
	"math"

	"github.com/KirkDiggler/mech-armor-api/internal/engine/budget"
	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
)

// Result is a preset applied against a point budget
type Result struct {
	Allocation mech.Allocation
	// Targets is the unscaled preset allocation
	Targets mech.Allocation
	// TotalUsed is the point total of Targets
	TotalUsed int
	Scaled    bool
}

// Targets computes the preset's allocation for a unit of the given mass, before any budget
// scaling. Left and right sides always receive identical values.
func Targets(preset *mech.Preset, mass float64) mech.Allocation {
	headMax := budget.MaxArmorForLocation(mech.LocationHead, mass)
	ctMax := budget.MaxArmorForLocation(mech.LocationCenterTorso, mass)
	stMax := budget.MaxArmorForLocation(mech.LocationLeftTorso, mass)
	armMax := budget.MaxArmorForLocation(mech.LocationLeftArm, mass)
	legMax := budget.MaxArmorForLocation(mech.LocationLeftLeg, mass)

	ct := splitTorso(ctMax, preset.CenterTorsoFront, preset.CenterTorsoRear)
	st := splitTorso(stMax, preset.SideTorsoFront, preset.SideTorsoRear)
	arm := mech.LocationArmor{Front: floor(float64(armMax) * preset.Arms)}
	leg := mech.LocationArmor{Front: floor(float64(legMax) * preset.Legs)}

	return mech.Allocation{
		mech.LocationHead:        {Front: floor(float64(headMax) * preset.Head)},
		mech.LocationCenterTorso: ct,
		mech.LocationLeftTorso:   st,
		mech.LocationRightTorso:  st,
		mech.LocationLeftArm:     arm,
		mech.LocationRightArm:    arm,
		mech.LocationLeftLeg:     leg,
		mech.LocationRightLeg:    leg,
	}
}

// ApplyPreset fits the preset into totalPoints. When the targets exceed the budget every side
// of every location is scaled by totalPoints/totalUsed and floored; the floored result may
// land a few points under the budget and is not topped up.
func ApplyPreset(preset *mech.Preset, mass float64, totalPoints int) *Result {
	if totalPoints < 0 {
		totalPoints = 0
	}

	targets := Targets(preset, mass)
	totalUsed := targets.Total()

	result := &Result{
		Allocation: targets.Clone(),
		Targets:    targets,
		TotalUsed:  totalUsed,
	}

	if totalUsed > totalPoints {
		scale := float64(totalPoints) / float64(totalUsed)
		for loc, armor := range result.Allocation {
			result.Allocation[loc] = mech.LocationArmor{
				Front: floor(float64(armor.Front) * scale),
				Rear:  floor(float64(armor.Rear) * scale),
			}
		}
		result.Scaled = true
	}

	return result
}

// ApplyCustom takes a caller supplied allocation. Missing locations become zero and locations
// outside the biped set are dropped. Negative sides are raised to zero and rear armor is
// dropped where the location has no rear facing; values over a location's maximum are kept
// for validation to report.
func ApplyCustom(custom mech.Allocation) mech.Allocation {
	alloc := mech.NewAllocation()
	for _, loc := range mech.Locations {
		armor, ok := custom[loc]
		if !ok {
			continue
		}
		armor.Front = max(armor.Front, 0)
		armor.Rear = max(armor.Rear, 0)
		if !budget.HasRearArmor(loc) {
			armor.Rear = 0
		}
		alloc[loc] = armor
	}
	return alloc
}

// splitTorso sizes a torso as a share of its maximum and splits it front/rear. Rear takes the
// residual so front+rear equals the sized total exactly.
func splitTorso(maxArmor int, frontFrac, rearFrac float64) mech.LocationArmor {
	share := frontFrac + rearFrac
	if share <= 0 {
		return mech.LocationArmor{}
	}
	total := floor(float64(maxArmor) * share)
	front := floor(float64(total) * (frontFrac / share))
	return mech.LocationArmor{Front: front, Rear: total - front}
}

func floor(v float64) int {
	return int(math.Floor(v))
}
