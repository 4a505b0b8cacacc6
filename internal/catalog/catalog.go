// Package catalog holds the armor type and distribution preset tables. The default tables are
// embedded YAML; LoadFrom accepts replacement tables in the same format.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
	"github.com/KirkDiggler/mech-armor-api/internal/errors"
)

//go:embed data/armor_types.yaml
var armorTypesYAML []byte

//go:embed data/presets.yaml
var presetsYAML []byte

// DefaultArmorTypeID is the armor type new drafts start with
const DefaultArmorTypeID = "standard"

type armorTypeFile struct {
	ArmorTypes []*mech.ArmorType `yaml:"armor_types"`
}

type presetFile struct {
	Presets []*mech.Preset `yaml:"presets"`
}

// Catalog is a read-only lookup over armor types and presets. Listing preserves file order.
type Catalog struct {
	armorTypes []*mech.ArmorType
	armorByID  map[string]*mech.ArmorType
	presets    []*mech.Preset
	presetByID map[string]*mech.Preset
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	errDefault     error
)

// Default returns the catalog built from the embedded tables
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, errDefault = Load()
	})
	return defaultCatalog, errDefault
}

// MustDefault is Default for callers that cannot proceed without the tables
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded tables are invalid: %v", err))
	}
	return c
}

// Load parses the embedded tables
func Load() (*Catalog, error) {
	return LoadFrom(bytes.NewReader(armorTypesYAML), bytes.NewReader(presetsYAML))
}

// LoadFrom parses armor type and preset tables from the given readers
func LoadFrom(armorTypes, presets io.Reader) (*Catalog, error) {
	var af armorTypeFile
	if err := yaml.NewDecoder(armorTypes).Decode(&af); err != nil {
		return nil, errors.Wrap(err, "failed to decode armor types")
	}

	var pf presetFile
	if err := yaml.NewDecoder(presets).Decode(&pf); err != nil {
		return nil, errors.Wrap(err, "failed to decode presets")
	}

	c := &Catalog{
		armorByID:  make(map[string]*mech.ArmorType, len(af.ArmorTypes)),
		presetByID: make(map[string]*mech.Preset, len(pf.Presets)),
	}

	for i, at := range af.ArmorTypes {
		if at == nil || at.ID == "" {
			return nil, errors.InvalidArgumentf("armor type %d has no id", i)
		}
		if at.PointsPerTon <= 0 {
			return nil, errors.InvalidArgumentf("armor type %s: points per ton must be positive", at.ID)
		}
		if _, dup := c.armorByID[at.ID]; dup {
			return nil, errors.AlreadyExistsf("armor type %s is defined twice", at.ID)
		}
		c.armorByID[at.ID] = at
		c.armorTypes = append(c.armorTypes, at)
	}

	for i, p := range pf.Presets {
		if p == nil || p.ID == "" {
			return nil, errors.InvalidArgumentf("preset %d has no id", i)
		}
		if p.ID == mech.PresetCustom {
			return nil, errors.InvalidArgumentf("preset id %q is reserved", mech.PresetCustom)
		}
		if err := validatePreset(p); err != nil {
			return nil, err
		}
		if _, dup := c.presetByID[p.ID]; dup {
			return nil, errors.AlreadyExistsf("preset %s is defined twice", p.ID)
		}
		c.presetByID[p.ID] = p
		c.presets = append(c.presets, p)
	}

	return c, nil
}

func validatePreset(p *mech.Preset) error {
	fractions := map[string]float64{
		"head":               p.Head,
		"center_torso_front": p.CenterTorsoFront,
		"center_torso_rear":  p.CenterTorsoRear,
		"side_torso_front":   p.SideTorsoFront,
		"side_torso_rear":    p.SideTorsoRear,
		"arms":               p.Arms,
		"legs":               p.Legs,
	}

	vb := errors.NewValidationBuilder()
	for name, f := range fractions {
		if f < 0 || f > 1 {
			vb.Field(name, "must be between 0 and 1")
		}
	}
	if p.CenterTorsoFront+p.CenterTorsoRear > 1 {
		vb.Field("center_torso", "front and rear must not exceed 1 combined")
	}
	if p.SideTorsoFront+p.SideTorsoRear > 1 {
		vb.Field("side_torso", "front and rear must not exceed 1 combined")
	}
	if err := vb.Build(); err != nil {
		return errors.Wrapf(err, "preset %s", p.ID)
	}
	return nil
}

// ArmorType looks up an armor type by id
func (c *Catalog) ArmorType(id string) (*mech.ArmorType, error) {
	at, ok := c.armorByID[id]
	if !ok {
		return nil, errors.NotFoundf("armor type %s not found", id)
	}
	return at, nil
}

// ArmorTypeByName looks up an armor type by id or display name, ignoring case. Names written
// by other tools sometimes carry a suffix such as "(Inner Sphere)", which is dropped first.
func (c *Catalog) ArmorTypeByName(name string) (*mech.ArmorType, error) {
	key := normalizeName(name)
	if key == "" {
		return nil, errors.InvalidArgument("armor type name is required")
	}
	for _, at := range c.armorTypes {
		if normalizeName(at.ID) == key || normalizeName(at.Name) == key {
			return at, nil
		}
	}
	if i := strings.Index(key, "("); i > 0 {
		return c.ArmorTypeByName(key[:i])
	}
	return nil, errors.NotFoundf("armor type %q not found", name)
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	s = strings.TrimSuffix(s, " armor")
	return strings.Join(strings.Fields(s), " ")
}

// ArmorTypes returns every armor type in catalog order
func (c *Catalog) ArmorTypes() []*mech.ArmorType {
	out := make([]*mech.ArmorType, len(c.armorTypes))
	copy(out, c.armorTypes)
	return out
}

// AvailableArmorTypes filters armor types by tech base and rules level. The result is sorted
// by points per ton, highest first, then by name.
func (c *Catalog) AvailableArmorTypes(base mech.TechBase, techLevel int) []*mech.ArmorType {
	var out []*mech.ArmorType
	for _, at := range c.armorTypes {
		if at.AvailableTo(base, techLevel) {
			out = append(out, at)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].PointsPerTon != out[j].PointsPerTon {
			return out[i].PointsPerTon > out[j].PointsPerTon
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Preset looks up a preset by id
func (c *Catalog) Preset(id string) (*mech.Preset, error) {
	p, ok := c.presetByID[id]
	if !ok {
		return nil, errors.NotFoundf("preset %s not found", id)
	}
	return p, nil
}

// Presets returns every preset in catalog order
func (c *Catalog) Presets() []*mech.Preset {
	out := make([]*mech.Preset, len(c.presets))
	copy(out, c.presets)
	return out
}
