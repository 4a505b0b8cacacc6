package mech

// TechBase is the technology lineage an armor type belongs to
type TechBase string

// Tech bases
const (
	TechBaseInnerSphere TechBase = "Inner Sphere"
	TechBaseClan        TechBase = "Clan"
	TechBaseBoth        TechBase = "Both"
)

// ArmorType is an immutable catalog entry describing an armor material
type ArmorType struct {
	ID               string   `json:"id" yaml:"id"`
	Name             string   `json:"name" yaml:"name"`
	PointsPerTon     float64  `json:"points_per_ton" yaml:"points_per_ton"`
	CriticalSlots    int      `json:"critical_slots" yaml:"critical_slots"`
	TechBase         TechBase `json:"tech_base" yaml:"tech_base"`
	MinTechLevel     int      `json:"min_tech_level" yaml:"min_tech_level"`
	CostMultiplier   float64  `json:"cost_multiplier" yaml:"cost_multiplier"`
	WeightMultiplier float64  `json:"weight_multiplier,omitempty" yaml:"weight_multiplier"`
	Description      string   `json:"description,omitempty" yaml:"description"`
	SpecialRules     []string `json:"special_rules,omitempty" yaml:"special_rules"`
}

// EffectiveWeightMultiplier treats an unset multiplier as 1
func (a *ArmorType) EffectiveWeightMultiplier() float64 {
	if a.WeightMultiplier <= 0 {
		return 1
	}
	return a.WeightMultiplier
}

// AvailableTo reports whether a unit of the given tech base and rules level may mount this type
func (a *ArmorType) AvailableTo(base TechBase, techLevel int) bool {
	if a.TechBase != TechBaseBoth && a.TechBase != base {
		return false
	}
	return a.MinTechLevel <= techLevel
}

// Preset is a named proportional template. Fractions are of each location's own maximum.
type Preset struct {
	ID               string  `json:"id" yaml:"id"`
	Name             string  `json:"name" yaml:"name"`
	Description      string  `json:"description" yaml:"description"`
	Head             float64 `json:"head" yaml:"head"`
	CenterTorsoFront float64 `json:"center_torso_front" yaml:"center_torso_front"`
	CenterTorsoRear  float64 `json:"center_torso_rear" yaml:"center_torso_rear"`
	SideTorsoFront   float64 `json:"side_torso_front" yaml:"side_torso_front"`
	SideTorsoRear    float64 `json:"side_torso_rear" yaml:"side_torso_rear"`
	Arms             float64 `json:"arms" yaml:"arms"`
	Legs             float64 `json:"legs" yaml:"legs"`
}

// PresetCustom is the pseudo-preset whose allocation is supplied by the caller
const PresetCustom = "custom"
