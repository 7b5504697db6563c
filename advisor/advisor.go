// Package advisor generates the "AI" commentary shown around the portfolio
// numbers. It is presentation-layer content: the tracker core never imports
// it, and anything smarter than templates can replace Templated behind the
// Provider interface.
package advisor

import (
	"fmt"

	"github.com/stockempire/tracker"
)

// Provider produces a short health-check commentary for a portfolio report.
type Provider interface {
	HealthCheck(report tracker.Report) string
}

// Templated is the stock commentary engine. It picks from a fixed set of
// phrasings, seeded by the portfolio composition, so the text is stable across
// renders of the same portfolio and changes when the portfolio does.
type Templated struct{}

var healthChecks = []string{
	"Your exposure is concentrated in a narrow set of positions. Adding assets with low correlation to %s would reduce overall volatility.",
	"Current allocation leans heavily on %s. Consider trimming the position or hedging before the next earnings window.",
	"Portfolio momentum is driven primarily by %s. Diversifying across markets would smooth the drawdown profile.",
	"Risk concentration around %s is above the comfort band. Rebalancing toward defensive assets is recommended.",
}

// HealthCheck implements Provider.
func (Templated) HealthCheck(report tracker.Report) string {
	if len(report.Holdings) == 0 {
		return "Your portfolio is empty. Add a position to receive a risk read-out."
	}
	// Seed on the symbols so the read-out is deterministic for a composition.
	var seed int
	for _, h := range report.Holdings {
		seed += hashString(h.Symbol)
	}
	anchor := report.Holdings[abs(seed)%len(report.Holdings)].Symbol
	return fmt.Sprintf(healthChecks[abs(seed)%len(healthChecks)], anchor)
}

// hashString is the deterministic string hash the quote simulator uses.
func hashString(s string) int {
	h := 0
	for _, r := range s {
		h = int(r) + ((h << 5) - h)
	}
	return h
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
