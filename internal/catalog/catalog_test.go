package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/mech-armor-api/internal/catalog"
	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
	"github.com/KirkDiggler/mech-armor-api/internal/errors"
)

type CatalogTestSuite struct {
	suite.Suite
	catalog *catalog.Catalog
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) SetupTest() {
	c, err := catalog.Load()
	s.Require().NoError(err)
	s.catalog = c
}

func (s *CatalogTestSuite) TestEmbeddedTables() {
	s.Len(s.catalog.ArmorTypes(), 14)
	s.Len(s.catalog.Presets(), 6)

	def, err := catalog.Default()
	s.Require().NoError(err)
	s.Same(def, catalog.MustDefault())
}

func (s *CatalogTestSuite) TestArmorType() {
	standard, err := s.catalog.ArmorType(catalog.DefaultArmorTypeID)
	s.Require().NoError(err)
	s.Equal("Standard", standard.Name)
	s.Equal(16.0, standard.PointsPerTon)
	s.Equal(mech.TechBaseBoth, standard.TechBase)

	hardened, err := s.catalog.ArmorType("hardened")
	s.Require().NoError(err)
	s.Equal(8.0, hardened.PointsPerTon)
	s.Equal(2.0, hardened.WeightMultiplier)
	s.Equal([]string{"Reduces damage by 1 point per hit", "No critical hits through armor"},
		hardened.SpecialRules)

	_, err = s.catalog.ArmorType("mithril")
	s.True(errors.IsNotFound(err))
}

func (s *CatalogTestSuite) TestArmorTypeByName() {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "display name", input: "Ferro-Fibrous", expected: "ferro_fibrous"},
		{name: "case and spacing", input: "  heavy   ferro-fibrous ", expected: "heavy_ferro_fibrous"},
		{name: "id", input: "ferro_lamellor", expected: "ferro_lamellor"},
		{name: "clan variant", input: "Ferro-Fibrous (Clan)", expected: "ferro_fibrous_clan"},
		{name: "tech base suffix", input: "Standard(Inner Sphere)", expected: "standard"},
		{name: "armor suffix", input: "Standard Armor", expected: "standard"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			at, err := s.catalog.ArmorTypeByName(tc.input)
			s.Require().NoError(err)
			s.Equal(tc.expected, at.ID)
		})
	}

	_, err := s.catalog.ArmorTypeByName("")
	s.True(errors.IsInvalidArgument(err))
	_, err = s.catalog.ArmorTypeByName("Mithril")
	s.True(errors.IsNotFound(err))
}

func (s *CatalogTestSuite) TestAvailableArmorTypes() {
	s.Run("clan level 2", func() {
		types := s.catalog.AvailableArmorTypes(mech.TechBaseClan, 2)
		ids := make([]string, len(types))
		for i, at := range types {
			ids[i] = at.ID
		}
		s.Equal([]string{"ferro_fibrous_clan", "standard", "heavy_industrial", "industrial", "primitive", "commercial"}, ids)
	})

	s.Run("inner sphere level 3 sorted by density", func() {
		types := s.catalog.AvailableArmorTypes(mech.TechBaseInnerSphere, 3)
		s.Equal("heavy_ferro_fibrous", types[0].ID)
		for i := 1; i < len(types); i++ {
			s.GreaterOrEqual(types[i-1].PointsPerTon, types[i].PointsPerTon)
		}
		for _, at := range types {
			s.NotEqual(mech.TechBaseClan, at.TechBase)
		}
	})
}

func (s *CatalogTestSuite) TestPresets() {
	ids := make([]string, 0)
	for _, p := range s.catalog.Presets() {
		ids = append(ids, p.ID)
	}
	s.Equal([]string{"balanced", "striker", "brawler", "sniper", "juggernaut", "scout"}, ids)

	scout, err := s.catalog.Preset("scout")
	s.Require().NoError(err)
	s.Equal("Scout", scout.Name)
	s.Equal(0.9, scout.Head)
	s.Equal(0.25, scout.CenterTorsoRear)

	_, err = s.catalog.Preset(mech.PresetCustom)
	s.True(errors.IsNotFound(err))
}

func (s *CatalogTestSuite) TestLoadFromRejectsBadTables() {
	goodArmor := "armor_types:\n  - id: standard\n    points_per_ton: 16\n"
	goodPresets := "presets:\n  - id: flat\n    head: 1\n"

	testCases := []struct {
		name    string
		armor   string
		presets string
		check   func(error) bool
	}{
		{
			name:    "zero density",
			armor:   "armor_types:\n  - id: paper\n    points_per_ton: 0\n",
			presets: goodPresets,
			check:   errors.IsInvalidArgument,
		},
		{
			name:    "duplicate armor",
			armor:   goodArmor + "  - id: standard\n    points_per_ton: 16\n",
			presets: goodPresets,
			check:   errors.IsAlreadyExists,
		},
		{
			name:    "fraction above one",
			armor:   goodArmor,
			presets: "presets:\n  - id: greedy\n    arms: 1.5\n",
			check:   errors.IsInvalidArgument,
		},
		{
			name:    "torso split above one",
			armor:   goodArmor,
			presets: "presets:\n  - id: greedy\n    center_torso_front: 0.8\n    center_torso_rear: 0.4\n",
			check:   errors.IsInvalidArgument,
		},
		{
			name:    "reserved id",
			armor:   goodArmor,
			presets: "presets:\n  - id: custom\n",
			check:   errors.IsInvalidArgument,
		},
		{
			name:    "malformed yaml",
			armor:   "armor_types: [",
			presets: goodPresets,
			check:   errors.IsInternal,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := catalog.LoadFrom(strings.NewReader(tc.armor), strings.NewReader(tc.presets))
			s.Require().Error(err)
			s.True(tc.check(err), err.Error())
		})
	}

	c, err := catalog.LoadFrom(strings.NewReader(goodArmor), strings.NewReader(goodPresets))
	s.Require().NoError(err)
	s.Len(c.ArmorTypes(), 1)
}
