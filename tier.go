package tracker

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Tier is a subscription level controlling content visibility. Tiers form a
// total order: Free < VIP < VVIP.
type Tier int

const (
	Free Tier = iota
	VIP
	VVIP
)

// Allows reports whether a user at tier t may see content requiring the given
// minimum tier. The predicate is pure; rendering the locked state is entirely
// the caller's business.
func (t Tier) Allows(required Tier) bool { return t >= required }

func (t Tier) String() string {
	switch t {
	case Free:
		return "FREE"
	case VIP:
		return "VIP"
	case VVIP:
		return "VVIP"
	default:
		return "unknown"
	}
}

// ParseTier parses a tier name, case-insensitively.
func ParseTier(s string) (Tier, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "FREE":
		return Free, nil
	case "VIP":
		return VIP, nil
	case "VVIP":
		return VVIP, nil
	}
	return Free, fmt.Errorf("unknown tier %q: want FREE, VIP or VVIP", s)
}

// MarshalJSON persists the tier by name, the way the original client stored it.
func (t Tier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Tier) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseTier(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
