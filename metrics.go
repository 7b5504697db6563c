package tracker

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// MarketTab filters a report to one market, or to all of them.
type MarketTab string

const (
	TabAll MarketTab = "ALL"
	TabKR  MarketTab = "KR"
	TabUS  MarketTab = "US"
)

// ParseTab parses a market tab, case-insensitively.
func ParseTab(s string) (MarketTab, error) {
	switch MarketTab(strings.ToUpper(strings.TrimSpace(s))) {
	case TabAll:
		return TabAll, nil
	case TabKR:
		return TabKR, nil
	case TabUS:
		return TabUS, nil
	}
	return "", fmt.Errorf("unknown tab %q: want ALL, KR or US", s)
}

func (t MarketTab) accepts(m Market) bool {
	return t == TabAll || Market(t) == m
}

// HoldingMetrics is one holding with its derived figures.
type HoldingMetrics struct {
	Holding
	Price       Money
	CostBasis   Money
	MarketValue Money
	PnL         Money
	PnLPercent  Percent
}

// MarketTotals aggregates the selected holdings of a single market. Totals are
// never summed across currencies: a won amount and a dollar amount have no
// meaningful raw sum, so an ALL report carries one entry per market instead.
type MarketTotals struct {
	Market     Market
	Value      Money
	PnL        Money
	PnLPercent Percent
}

// Report is the derived view of a portfolio snapshot under one market tab.
// It holds no state of its own and is recomputed from the current snapshot on
// every read.
type Report struct {
	Tab         MarketTab
	Holdings    []HoldingMetrics
	Totals      []MarketTotals
	LastUpdated time.Time
}

// Valuate computes the derived metrics for a holdings snapshot filtered by the
// active tab. Pure: it reads the snapshot and nothing else.
func Valuate(holdings []Holding, tab MarketTab) Report {
	selected := lo.Filter(holdings, func(h Holding, _ int) bool { return tab.accepts(h.Market) })

	report := Report{Tab: tab}
	for _, h := range selected {
		report.Holdings = append(report.Holdings, valuate(h))
	}

	byMarket := lo.GroupBy(selected, func(h Holding) Market { return h.Market })
	for _, market := range []Market{KR, US} {
		if !tab.accepts(market) {
			continue
		}
		group, ok := byMarket[market]
		if !ok && tab == TabAll {
			// Only the explicitly selected market reports an empty total.
			continue
		}
		report.Totals = append(report.Totals, totals(market, group))
	}
	return report
}

// valuate computes the per-holding figures:
//
//	pnl        = quantity * (currentPrice - avgPrice)
//	pnlPercent = pnl / (quantity * avgPrice) * 100
//
// The percentage is 0.00 when the cost basis is zero. Creation invariants make
// that impossible for holdings built through Add, but the guard stays: the
// snapshot may come from a hand-edited file.
func valuate(h Holding) HoldingMetrics {
	cost := h.CostBasis()
	value := h.MarketValue()
	pnl := value.Sub(cost)

	var percent Percent
	if !cost.IsZero() {
		percent = Percent(pnl.Amount().Div(cost.Amount()).Mul(decimal.NewFromInt(100)).InexactFloat64())
	}
	return HoldingMetrics{
		Holding:     h,
		Price:       h.Price(),
		CostBasis:   cost,
		MarketValue: value,
		PnL:         pnl,
		PnLPercent:  percent,
	}
}

// totals aggregates one market's holdings:
//
//	totalValue      = Σ quantity * currentPrice
//	totalPnL        = Σ pnl
//	totalPnLPercent = totalPnL / (totalValue - totalPnL) * 100
//
// The denominator is the invested capital; when it is zero the percentage is
// 0.00.
func totals(market Market, group []Holding) MarketTotals {
	currency := market.Currency()
	value := lo.Reduce(group, func(acc decimal.Decimal, h Holding, _ int) decimal.Decimal {
		return acc.Add(h.Quantity.Mul(h.CurrentPrice))
	}, decimal.Zero)
	pnl := lo.Reduce(group, func(acc decimal.Decimal, h Holding, _ int) decimal.Decimal {
		return acc.Add(h.Quantity.Mul(h.CurrentPrice.Sub(h.AvgPrice)))
	}, decimal.Zero)

	var percent Percent
	if invested := value.Sub(pnl); !invested.IsZero() {
		percent = Percent(pnl.Div(invested).Mul(decimal.NewFromInt(100)).InexactFloat64())
	}
	return MarketTotals{
		Market:     market,
		Value:      M(value, currency),
		PnL:        M(pnl, currency),
		PnLPercent: percent,
	}
}
