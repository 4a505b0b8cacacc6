package mtf_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
	"github.com/KirkDiggler/mech-armor-api/internal/errors"
	"github.com/KirkDiggler/mech-armor-api/internal/mtf"
)

const atlas = `Version:1.0
Atlas
AS7-D

Config:Biped
TechBase:Inner Sphere
Era:2755
Rules Level:1

Mass:100
Engine:300 Fusion Engine
Structure:Standard
Myomer:Standard

Heat Sinks:20 Single
Walk MP:3
Jump MP:0

Armor:Standard(Inner Sphere)
LA Armor:34
RA Armor:34
LT Armor:32
RT Armor:32
CT Armor:47
HD Armor:9
LL Armor:41
RL Armor:41
RTL Armor:10
RTR Armor:10
RTC Armor:14

Weapons:7
AC/20, Right Torso

Left Arm:
Shoulder
Upper Arm Actuator
`

type MTFTestSuite struct {
	suite.Suite
}

func TestMTFSuite(t *testing.T) {
	suite.Run(t, new(MTFTestSuite))
}

func (s *MTFTestSuite) TestParseMegaMekFile() {
	unit, err := mtf.ParseString("chassis:Atlas\nmodel:AS7-D\n" + atlas)
	s.Require().NoError(err)

	s.Equal("Atlas AS7-D", unit.Name())
	s.Equal(100.0, unit.Mass)
	s.Equal("Inner Sphere", unit.TechBase)
	s.Equal("Standard(Inner Sphere)", unit.ArmorName)

	s.Equal(mech.LocationArmor{Front: 9}, unit.Allocation[mech.LocationHead])
	s.Equal(mech.LocationArmor{Front: 47, Rear: 14}, unit.Allocation[mech.LocationCenterTorso])
	s.Equal(mech.LocationArmor{Front: 32, Rear: 10}, unit.Allocation[mech.LocationLeftTorso])
	s.Equal(mech.LocationArmor{Front: 32, Rear: 10}, unit.Allocation[mech.LocationRightTorso])
	s.Equal(mech.LocationArmor{Front: 34}, unit.Allocation[mech.LocationLeftArm])
	s.Equal(mech.LocationArmor{Front: 41}, unit.Allocation[mech.LocationRightLeg])
	s.Equal(304, unit.Allocation.Total())
}

func (s *MTFTestSuite) TestParseLongNamesAndPatchwork() {
	text := `chassis:Patchy
Armor:Patchwork
Mass:55
Head:9
Center Torso:Ferro-Fibrous(Inner Sphere):20
Center Torso Rear:6
left arm:12abc
Right Leg:-4
`
	unit, err := mtf.ParseString(text)
	s.Require().NoError(err)

	s.Equal("Patchy", unit.Name())
	s.Equal(55.0, unit.Mass)
	s.Equal(mech.LocationArmor{Front: 20, Rear: 6}, unit.Allocation[mech.LocationCenterTorso])
	s.Equal(mech.LocationArmor{Front: 12}, unit.Allocation[mech.LocationLeftArm])
	s.Equal(mech.LocationArmor{}, unit.Allocation[mech.LocationRightLeg])
	s.Len(unit.Allocation, len(mech.Locations))
}

func (s *MTFTestSuite) TestDefaults() {
	unit, err := mtf.ParseString("HD Armor:3\n")
	s.Require().NoError(err)

	s.Equal(float64(mtf.DefaultMass), unit.Mass)
	s.Equal("Standard", unit.ArmorName)
}

func (s *MTFTestSuite) TestNoArmor() {
	_, err := mtf.ParseString("chassis:Empty\nMass:20\n")
	s.True(errors.IsInvalidArgument(err))

	_, err = mtf.ParseString("")
	s.True(errors.IsInvalidArgument(err))
}
