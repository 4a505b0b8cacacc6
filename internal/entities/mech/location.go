// Package mech holds the armor data model shared by the engine, the repositories and the
// orchestrator.
package mech

// Location identifies one of the fixed body regions that can carry armor
type Location string

// Biped locations
const (
	LocationHead        Location = "Head"
	LocationCenterTorso Location = "Center Torso"
	LocationLeftTorso   Location = "Left Torso"
	LocationRightTorso  Location = "Right Torso"
	LocationLeftArm     Location = "Left Arm"
	LocationRightArm    Location = "Right Arm"
	LocationLeftLeg     Location = "Left Leg"
	LocationRightLeg    Location = "Right Leg"
)

// Locations is the canonical iteration order. Validation findings and every listing follow it.
var Locations = []Location{
	LocationHead,
	LocationCenterTorso,
	LocationLeftTorso,
	LocationRightTorso,
	LocationLeftArm,
	LocationRightArm,
	LocationLeftLeg,
	LocationRightLeg,
}

var abbreviations = map[Location]string{
	LocationHead:        "HD",
	LocationCenterTorso: "CT",
	LocationLeftTorso:   "LT",
	LocationRightTorso:  "RT",
	LocationLeftArm:     "LA",
	LocationRightArm:    "RA",
	LocationLeftLeg:     "LL",
	LocationRightLeg:    "RL",
}

// Abbreviation returns the two letter label used on record sheets
func (l Location) Abbreviation() string {
	if abbr, ok := abbreviations[l]; ok {
		return abbr
	}
	return string(l)
}

// IsValid reports whether l is one of the eight biped locations
func (l Location) IsValid() bool {
	_, ok := abbreviations[l]
	return ok
}

// String implements fmt.Stringer
func (l Location) String() string {
	return string(l)
}

// ParseLocation accepts a full name ("Left Arm") or an abbreviation ("LA")
func ParseLocation(s string) (Location, bool) {
	if Location(s).IsValid() {
		return Location(s), true
	}
	for loc, abbr := range abbreviations {
		if abbr == s {
			return loc, true
		}
	}
	return "", false
}

// SymmetricPair is a left/right pair checked for balance and kept equal by presets
type SymmetricPair struct {
	Left  Location
	Right Location
}

// SymmetricPairs lists the pairs in the order balance findings are reported
var SymmetricPairs = []SymmetricPair{
	{Left: LocationLeftTorso, Right: LocationRightTorso},
	{Left: LocationLeftArm, Right: LocationRightArm},
	{Left: LocationLeftLeg, Right: LocationRightLeg},
}
