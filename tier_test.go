package tracker

import (
	"encoding/json"
	"testing"
)

func TestTier_Allows(t *testing.T) {
	testCases := []struct {
		name     string
		tier     Tier
		requires Tier
		want     bool
	}{
		{"mid tier sees free content", VIP, Free, true},
		{"free tier denied mid content", Free, VIP, false},
		{"top tier sees mid content", VVIP, VIP, true},
		{"same tier sees its own content", VIP, VIP, true},
		{"free tier sees free content", Free, Free, true},
		{"mid tier denied top content", VIP, VVIP, false},
		{"top tier sees free content", VVIP, Free, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.tier.Allows(tc.requires); got != tc.want {
				t.Errorf("%s.Allows(%s) = %v, want %v", tc.tier, tc.requires, got, tc.want)
			}
		})
	}
}

func TestParseTier(t *testing.T) {
	for _, tier := range []Tier{Free, VIP, VVIP} {
		got, err := ParseTier(tier.String())
		if err != nil || got != tier {
			t.Errorf("ParseTier(%q) = %v, %v, want %v", tier.String(), got, err, tier)
		}
	}
	if got, err := ParseTier(" vip "); err != nil || got != VIP {
		t.Errorf("ParseTier is not case-insensitive: %v, %v", got, err)
	}
	if _, err := ParseTier("PRO"); err == nil {
		t.Error("ParseTier(PRO) should fail: the tracker uses the FREE/VIP/VVIP scheme only")
	}
}

func TestTier_JSONRoundTrip(t *testing.T) {
	for _, tier := range []Tier{Free, VIP, VVIP} {
		b, err := json.Marshal(tier)
		if err != nil {
			t.Fatal(err)
		}
		var got Tier
		if err := json.Unmarshal(b, &got); err != nil {
			t.Fatal(err)
		}
		if got != tier {
			t.Errorf("round-trip of %s gave %s", tier, got)
		}
	}
}
