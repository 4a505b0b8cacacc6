package mech

// LocationArmor is the front/rear point pair stored for one location
type LocationArmor struct {
	Front int `json:"front"`
	Rear  int `json:"rear"`
}

// Total returns front plus rear
func (a LocationArmor) Total() int {
	return a.Front + a.Rear
}

// Allocation maps every location to its armor. Missing entries read as zero.
type Allocation map[Location]LocationArmor

// NewAllocation returns an allocation with all eight locations at zero
func NewAllocation() Allocation {
	alloc := make(Allocation, len(Locations))
	for _, loc := range Locations {
		alloc[loc] = LocationArmor{}
	}
	return alloc
}

// Clone returns an independent copy
func (a Allocation) Clone() Allocation {
	out := make(Allocation, len(a))
	for loc, armor := range a {
		out[loc] = armor
	}
	return out
}

// Total sums front and rear across all locations
func (a Allocation) Total() int {
	total := 0
	for _, armor := range a {
		total += armor.Total()
	}
	return total
}

// Equal compares two allocations location by location, treating missing entries as zero
func (a Allocation) Equal(other Allocation) bool {
	for _, loc := range Locations {
		if a[loc] != other[loc] {
			return false
		}
	}
	return true
}

// ArmorChange is a partial update to one location. A nil side is left unchanged.
type ArmorChange struct {
	Front *int `json:"front,omitempty"`
	Rear  *int `json:"rear,omitempty"`
}

// FrontOnly builds a change touching only the front side
func FrontOnly(v int) ArmorChange {
	return ArmorChange{Front: &v}
}

// RearOnly builds a change touching only the rear side
func RearOnly(v int) ArmorChange {
	return ArmorChange{Rear: &v}
}

// Both builds a change setting both sides
func Both(front, rear int) ArmorChange {
	return ArmorChange{Front: &front, Rear: &rear}
}

// IsEmpty reports whether the change touches nothing
func (c ArmorChange) IsEmpty() bool {
	return c.Front == nil && c.Rear == nil
}

// LocationAllocation is the derived per-location view used for display and validation
type LocationAllocation struct {
	Location Location `json:"location"`
	Front    int      `json:"front"`
	Rear     int      `json:"rear"`
	Max      int      `json:"max"`
	HasRear  bool     `json:"has_rear"`
	Coverage float64  `json:"coverage"`
}

// Total returns front plus rear
func (l LocationAllocation) Total() int {
	return l.Front + l.Rear
}

// Calculations is the aggregate read model. It is always recomputed, never stored.
type Calculations struct {
	Locations       []LocationAllocation `json:"locations"`
	TotalArmor      int                  `json:"total_armor"`
	TotalMax        int                  `json:"total_max"`
	OverallCoverage float64              `json:"overall_coverage"`
	IsValid         bool                 `json:"is_valid"`
	Errors          []string             `json:"errors,omitempty"`
}

// Location returns the entry for loc, or false when it is absent
func (c *Calculations) Location(loc Location) (LocationAllocation, bool) {
	for _, l := range c.Locations {
		if l.Location == loc {
			return l, true
		}
	}
	return LocationAllocation{}, false
}

// Statistics summarizes how a tonnage budget is being spent
type Statistics struct {
	TotalPoints       int     `json:"total_points"`
	AllocatedPoints   int     `json:"allocated_points"`
	UnallocatedPoints int     `json:"unallocated_points"`
	WastedPoints      float64 `json:"wasted_points"`
	Efficiency        float64 `json:"efficiency"`
	MaxTonnage        float64 `json:"max_tonnage"`
	ArmorWeight       float64 `json:"armor_weight"`
}
