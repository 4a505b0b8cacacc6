package interaction

import (
	"strings"

	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
)

// Apply folds a change into a location's current armor. This is the single place where
// interaction values are clamped against the location maximum:
//   - both sides: front to [0,max], then rear to [0,max-front]
//   - front only: front to [0,max-rear]
//   - rear only: rear to [0,max-front]
//
// Locations without rear armor always come back with rear 0.
func Apply(current mech.LocationArmor, change mech.ArmorChange, maxArmor int, hasRear bool) mech.LocationArmor {
	if !hasRear {
		current.Rear = 0
	}
	next := current

	switch {
	case change.Front != nil && change.Rear != nil:
		next.Front = clamp(*change.Front, 0, maxArmor)
		next.Rear = clamp(*change.Rear, 0, maxArmor-next.Front)
	case change.Front != nil:
		next.Front = clamp(*change.Front, 0, maxArmor-current.Rear)
	case change.Rear != nil:
		next.Rear = clamp(*change.Rear, 0, maxArmor-current.Front)
	}

	if !hasRear {
		next.Rear = 0
	}
	return next
}

// ParseInt reads the leading integer of a free-form field the way a browser number input
// does: leading spaces and a sign are accepted, parsing stops at the first non-digit, and
// anything without digits is 0.
func ParseInt(text string) int {
	s := strings.TrimLeft(text, " \t\r\n")
	negative := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		negative = s[0] == '-'
		s = s[1:]
	}

	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		if n > maxParsed {
			n = maxParsed
		}
	}

	if negative {
		return -n
	}
	return n
}

// no location comes close; this only keeps absurd input from overflowing
const maxParsed = 1 << 20

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
