package cmd

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/stockempire/tracker"
)

func TestParseConfirmation(t *testing.T) {
	testCases := []struct {
		answer string
		want   bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"YES\n", true},
		{"  y  \n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"", false},
		{"yep\n", false},
	}
	for _, tc := range testCases {
		if got := parseConfirmation(tc.answer); got != tc.want {
			t.Errorf("parseConfirmation(%q) = %v, want %v", tc.answer, got, tc.want)
		}
	}
}

func TestFindHolding(t *testing.T) {
	p := tracker.NewPortfolio()
	apple, err := p.Add("AAPL", "Apple", decimal.NewFromInt(1), decimal.NewFromInt(100), tracker.US)
	if err != nil {
		t.Fatal(err)
	}

	if h, ok := findHolding(p, apple.ID); !ok || h.ID != apple.ID {
		t.Error("lookup by id failed")
	}
	if h, ok := findHolding(p, "aapl"); !ok || h.ID != apple.ID {
		t.Error("lookup by lowercase symbol failed")
	}
	if _, ok := findHolding(p, "TSLA"); ok {
		t.Error("unknown key must not match")
	}
}
