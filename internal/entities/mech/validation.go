package mech

import "strings"

// FindingType classifies a validation finding
type FindingType string

// Finding types
const (
	FindingExcess  FindingType = "excess"
	FindingInvalid FindingType = "invalid"
	FindingBalance FindingType = "balance"
)

// Severity separates blocking errors from advisory warnings
type Severity string

// Severities
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is one validation error or warning. Location is a location name, a pair such as
// "Left Torso/Right Torso", or "Total".
type Finding struct {
	Location string      `json:"location"`
	Type     FindingType `json:"type"`
	Message  string      `json:"message"`
	Severity Severity    `json:"severity"`
}

// ValidationResult is the feedback read model. IsValid is true iff Errors is empty.
type ValidationResult struct {
	IsValid  bool      `json:"is_valid"`
	Errors   []Finding `json:"errors"`
	Warnings []Finding `json:"warnings"`
}

// Role is a combat role with recommended minimum coverage
type Role string

// Roles
const (
	RoleBrawler Role = "Brawler"
	RoleSniper  Role = "Sniper"
	RoleScout   Role = "Scout"
)

// IsValid reports whether r is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleBrawler, RoleSniper, RoleScout:
		return true
	}
	return false
}

// ParseRole accepts a role name in any case ("brawler", "Brawler")
func ParseRole(s string) (Role, bool) {
	for _, r := range []Role{RoleBrawler, RoleSniper, RoleScout} {
		if strings.EqualFold(string(r), s) {
			return r, true
		}
	}
	return "", false
}
