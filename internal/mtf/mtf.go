// Package mtf reads the armor block of a MegaMek .mtf unit file. Everything outside the
// header, the armor type and the per-location armor values is ignored.
package mtf

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
	"github.com/KirkDiggler/mech-armor-api/internal/errors"
)

// DefaultMass is used when the file carries no usable mass line
const DefaultMass = 25

// Unit is the armor-relevant part of an .mtf file
type Unit struct {
	Chassis  string
	Model    string
	Mass     float64
	TechBase string
	// ArmorName is the armor type as written, e.g. "Ferro-Fibrous(Inner Sphere)"
	ArmorName  string
	Allocation mech.Allocation
}

// Name is chassis and model joined for display
func (u *Unit) Name() string {
	return strings.TrimSpace(u.Chassis + " " + u.Model)
}

type armorKey struct {
	location mech.Location
	rear     bool
}

// both the MegaMek short keys and the long names other editors export
var armorKeys = map[string]armorKey{
	"hd armor":  {location: mech.LocationHead},
	"ct armor":  {location: mech.LocationCenterTorso},
	"lt armor":  {location: mech.LocationLeftTorso},
	"rt armor":  {location: mech.LocationRightTorso},
	"la armor":  {location: mech.LocationLeftArm},
	"ra armor":  {location: mech.LocationRightArm},
	"ll armor":  {location: mech.LocationLeftLeg},
	"rl armor":  {location: mech.LocationRightLeg},
	"rtc armor": {location: mech.LocationCenterTorso, rear: true},
	"rtl armor": {location: mech.LocationLeftTorso, rear: true},
	"rtr armor": {location: mech.LocationRightTorso, rear: true},
}

func init() {
	for _, loc := range mech.Locations {
		long := strings.ToLower(string(loc))
		armorKeys[long] = armorKey{location: loc}
		if loc == mech.LocationCenterTorso || loc == mech.LocationLeftTorso || loc == mech.LocationRightTorso {
			armorKeys[long+" rear"] = armorKey{location: loc, rear: true}
		}
	}
}

// Parse reads an .mtf file. It fails with InvalidArgument when the text holds no armor
// values at all.
func Parse(r io.Reader) (*Unit, error) {
	unit := &Unit{Allocation: mech.NewAllocation()}
	found := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		colon := strings.Index(line, ":")
		if colon <= 0 {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(line[:colon]))
		value := strings.TrimSpace(line[colon+1:])
		if value == "" {
			// section header such as "Left Arm:"
			continue
		}

		switch key {
		case "chassis":
			unit.Chassis = value
		case "model":
			unit.Model = value
		case "techbase":
			unit.TechBase = value
		case "mass":
			unit.Mass = parseNumber(value)
		case "armor":
			unit.ArmorName = value
		default:
			ak, ok := armorKeys[key]
			if !ok {
				continue
			}
			points := armorPoints(value)
			armor := unit.Allocation[ak.location]
			if ak.rear {
				armor.Rear = points
			} else {
				armor.Front = points
			}
			unit.Allocation[ak.location] = armor
			found++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read mtf")
	}

	if found == 0 {
		return nil, errors.InvalidArgument("no armor values found")
	}
	if unit.Mass <= 0 {
		unit.Mass = DefaultMass
	}
	if unit.ArmorName == "" {
		unit.ArmorName = "Standard"
	}

	return unit, nil
}

// ParseString is Parse over a string
func ParseString(text string) (*Unit, error) {
	return Parse(strings.NewReader(text))
}

// armorPoints reads a location value. Patchwork entries look like
// "Ferro-Fibrous(Inner Sphere):26"; the points follow the last colon.
func armorPoints(value string) int {
	if i := strings.LastIndex(value, ":"); i >= 0 {
		value = value[i+1:]
	}
	return max(0, int(parseNumber(value)))
}

// parseNumber reads the leading number of a field, 0 when there is none
func parseNumber(value string) float64 {
	value = strings.TrimSpace(value)
	end := 0
	for end < len(value) && (value[end] == '.' || value[end] == '-' || (value[end] >= '0' && value[end] <= '9')) {
		end++
	}
	n, err := strconv.ParseFloat(value[:end], 64)
	if err != nil {
		return 0
	}
	return n
}
