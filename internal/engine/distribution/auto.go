package distribution

import (
	"github.com/KirkDiggler/mech-armor-api/internal/engine/budget"
	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
)

// torso rear share used by the proportional auto-allocation
const autoRearShare = 0.25

// MaximizeResult is the outcome of the maximize action
type MaximizeResult struct {
	Tonnage    float64
	Points     int
	Allocation mech.Allocation
}

// Maximize buys enough tonnage to cover every location maximum, rounding up to the next half
// ton, then auto-allocates the resulting points. The tonnage is not capped at half the unit
// mass; heavy armor types that cannot fit are left for validation to report.
func Maximize(mass float64, armor *mech.ArmorType) *MaximizeResult {
	maxPoints := budget.TotalMax(mass)
	tonnage := budget.CeilToHalfTon(float64(maxPoints) / armor.PointsPerTon)
	points := budget.PointsForTonnage(tonnage, armor)

	return &MaximizeResult{
		Tonnage:    tonnage,
		Points:     points,
		Allocation: AutoAllocate(mass, points),
	}
}

var (
	autoOrder = []mech.Location{
		mech.LocationCenterTorso,
		mech.LocationLeftTorso,
		mech.LocationRightTorso,
		mech.LocationLeftArm,
		mech.LocationRightArm,
		mech.LocationLeftLeg,
		mech.LocationRightLeg,
	}

	leftoverPairs = []mech.SymmetricPair{
		{Left: mech.LocationLeftTorso, Right: mech.LocationRightTorso},
		{Left: mech.LocationLeftLeg, Right: mech.LocationRightLeg},
		{Left: mech.LocationLeftArm, Right: mech.LocationRightArm},
	}
)

// AutoAllocate spreads points in proportion to each location's maximum. The head is favored
// (five times its proportional share), torsos keep a quarter of their points on the rear, and
// whatever floors away is handed out afterwards in symmetric pairs where possible.
func AutoAllocate(mass float64, points int) mech.Allocation {
	alloc := mech.NewAllocation()
	if points <= 0 {
		return alloc
	}

	maxes := budget.MaxLocations(mass)
	maxTotal := budget.TotalMax(mass)
	headMax := maxes[mech.LocationHead]

	percent := 1.0
	if maxTotal > 0 {
		percent = min(1, float64(points)/float64(maxTotal))
	}
	head := min(floor(percent*float64(headMax)*5), headMax, points)
	alloc[mech.LocationHead] = mech.LocationArmor{Front: head}

	remaining := points - head
	remainingPercent := 0.0
	if remainingMax := maxTotal - headMax; remainingMax > 0 {
		remainingPercent = float64(remaining) / float64(remainingMax)
	}

	for _, loc := range autoOrder {
		allocated := min(floor(float64(maxes[loc])*remainingPercent), remaining, maxes[loc])
		if budget.HasRearArmor(loc) {
			rear := floor(float64(allocated) * autoRearShare)
			alloc[loc] = mech.LocationArmor{Front: allocated - rear, Rear: rear}
		} else {
			alloc[loc] = mech.LocationArmor{Front: allocated}
		}
		remaining -= allocated
	}

	if remaining > 0 {
		allocateLeftover(alloc, maxes, remaining)
	}

	return alloc
}

func allocateLeftover(alloc mech.Allocation, maxes map[mech.Location]int, points int) {
	canAdd := func(loc mech.Location) bool {
		return alloc[loc].Total() < maxes[loc]
	}
	bump := func(loc mech.Location) {
		armor := alloc[loc]
		armor.Front++
		alloc[loc] = armor
	}

	for points >= 1 {
		if points >= 2 {
			paired := false
			for _, pair := range leftoverPairs {
				if canAdd(pair.Left) && canAdd(pair.Right) {
					bump(pair.Left)
					bump(pair.Right)
					points -= 2
					paired = true
					break
				}
			}
			if paired {
				continue
			}
		}

		if alloc[mech.LocationHead].Front < maxes[mech.LocationHead] {
			bump(mech.LocationHead)
			points--
			continue
		}

		if loc, ok := lowerSide(alloc); ok && canAdd(loc) {
			bump(loc)
			points--
			continue
		}

		if canAdd(mech.LocationCenterTorso) {
			bump(mech.LocationCenterTorso)
			points--
			continue
		}

		break
	}
}

// lowerSide finds the first unbalanced symmetric pair and returns its lighter side
func lowerSide(alloc mech.Allocation) (mech.Location, bool) {
	for _, pair := range mech.SymmetricPairs {
		left, right := alloc[pair.Left].Total(), alloc[pair.Right].Total()
		if left < right {
			return pair.Left, true
		}
		if right < left {
			return pair.Right, true
		}
	}
	return "", false
}

// evenShares is the fixed split used by AutoAllocateEvenly, as fractions of the point budget
var evenShares = map[mech.Location]float64{
	mech.LocationHead:        0.05,
	mech.LocationCenterTorso: 0.25,
	mech.LocationLeftTorso:   0.15,
	mech.LocationRightTorso:  0.15,
	mech.LocationLeftArm:     0.1,
	mech.LocationRightArm:    0.1,
	mech.LocationLeftLeg:     0.1,
	mech.LocationRightLeg:    0.1,
}

const (
	evenRearShare = 0.2
	evenRearCap   = 10
)

// AutoAllocateEvenly applies a fixed percentage split of points, clamped per location. Torsos
// put a fifth of their share on the rear, capped at ten points.
func AutoAllocateEvenly(mass float64, points int) mech.Allocation {
	alloc := mech.NewAllocation()
	if points <= 0 {
		return alloc
	}

	for _, loc := range mech.Locations {
		share := min(budget.MaxArmorForLocation(loc, mass), floor(float64(points)*evenShares[loc]))
		if budget.HasRearArmor(loc) {
			rear := min(floor(float64(share)*evenRearShare), evenRearCap)
			alloc[loc] = mech.LocationArmor{Front: share - rear, Rear: rear}
		} else {
			alloc[loc] = mech.LocationArmor{Front: share}
		}
	}

	return alloc
}
