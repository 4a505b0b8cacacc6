package validation

import (
	"fmt"

	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
)

type roleMinimum struct {
	location mech.Location
	coverage float64
}

var roleMinimums = map[mech.Role][]roleMinimum{
	mech.RoleBrawler: {
		{location: mech.LocationCenterTorso, coverage: 80},
		{location: mech.LocationLeftTorso, coverage: 70},
		{location: mech.LocationRightTorso, coverage: 70},
	},
	mech.RoleSniper: {
		{location: mech.LocationCenterTorso, coverage: 60},
		{location: mech.LocationLeftTorso, coverage: 50},
		{location: mech.LocationRightTorso, coverage: 50},
	},
	mech.RoleScout: {
		{location: mech.LocationCenterTorso, coverage: 50},
		{location: mech.LocationLeftLeg, coverage: 60},
		{location: mech.LocationRightLeg, coverage: 60},
	},
}

// Roles lists the roles that carry coverage recommendations
func Roles() []mech.Role {
	return []mech.Role{mech.RoleBrawler, mech.RoleSniper, mech.RoleScout}
}

// RoleMinimums warns about locations below the recommended coverage for role.
// Unknown roles produce no findings.
func RoleMinimums(locations []mech.LocationAllocation, role mech.Role) []mech.Finding {
	findings := []mech.Finding{}
	byLocation := index(locations)

	for _, minimum := range roleMinimums[role] {
		loc, ok := byLocation[minimum.location]
		if !ok || loc.Coverage >= minimum.coverage {
			continue
		}
		findings = append(findings, mech.Finding{
			Location: minimum.location.String(),
			Type:     mech.FindingInvalid,
			Message:  fmt.Sprintf("Below recommended %d%% coverage for %s role", int(minimum.coverage), role),
			Severity: mech.SeverityWarning,
		})
	}

	return findings
}

// CheckLocation validates a single proposed front/rear pair. It returns "" when the pair is
// acceptable.
func CheckLocation(front, rear, maxArmor int, hasRear bool) string {
	total := front + rear
	switch {
	case total > maxArmor:
		return fmt.Sprintf("Total armor (%d) exceeds maximum (%d)", total, maxArmor)
	case front < 0 || rear < 0:
		return "Armor values cannot be negative"
	case !hasRear && rear > 0:
		return "This location does not have rear armor"
	}
	return ""
}
