package tracker

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Market identifies the exchange a holding trades on. It is fixed at creation
// and determines both the currency the position is denominated in and the
// quote source variant queried to refresh it.
type Market string

const (
	KR Market = "KR"
	US Market = "US"
)

// ParseMarket parses a market tag, case-insensitively.
func ParseMarket(s string) (Market, error) {
	switch Market(strings.ToUpper(strings.TrimSpace(s))) {
	case KR:
		return KR, nil
	case US:
		return US, nil
	}
	return "", fmt.Errorf("unknown market %q: want KR or US", s)
}

// Currency returns the ISO code positions on this market are denominated in.
func (m Market) Currency() string {
	if m == KR {
		return "KRW"
	}
	return "USD"
}

// Holding is one user-entered position: a symbol, the quantity held, and the
// average cost basis per unit. CurrentPrice is the only mutable field; it is
// overwritten by each successful reconciliation fetch and defaults to AvgPrice
// at creation. The JSON field names are the persisted wire format and must not
// change.
type Holding struct {
	ID           string          `json:"id"`
	Symbol       string          `json:"symbol"`
	Name         string          `json:"name"`
	Quantity     decimal.Decimal `json:"quantity"`
	AvgPrice     decimal.Decimal `json:"avgPrice"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
	Market       Market          `json:"market"`
}

// NewHolding validates the user input and builds a holding: the symbol is
// uppercased, a fresh unique id is assigned, and the current price starts at
// the cost basis until the first reconciliation replaces it.
func NewHolding(symbol, name string, quantity, avgPrice decimal.Decimal, market Market) (Holding, error) {
	h := Holding{
		ID:           uuid.NewString(),
		Symbol:       strings.ToUpper(strings.TrimSpace(symbol)),
		Name:         strings.TrimSpace(name),
		Quantity:     quantity,
		AvgPrice:     avgPrice,
		CurrentPrice: avgPrice,
		Market:       market,
	}
	if err := h.Validate(); err != nil {
		return Holding{}, err
	}
	return h, nil
}

// Validate checks the creation invariants. The message is user-facing: it is
// what the add form surfaces on rejection.
func (h Holding) Validate() error {
	if h.Symbol == "" {
		return fmt.Errorf("symbol is required")
	}
	if h.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !h.Quantity.IsPositive() {
		return fmt.Errorf("quantity must be a positive number, got %s", h.Quantity)
	}
	if !h.AvgPrice.IsPositive() {
		return fmt.Errorf("average price must be a positive number, got %s", h.AvgPrice)
	}
	if h.Market != KR && h.Market != US {
		return fmt.Errorf("unknown market %q: want KR or US", h.Market)
	}
	return nil
}

// CostBasis returns the total acquisition cost of the position.
func (h Holding) CostBasis() Money {
	return M(h.Quantity.Mul(h.AvgPrice), h.Market.Currency())
}

// MarketValue returns the position value at the current price.
func (h Holding) MarketValue() Money {
	return M(h.Quantity.Mul(h.CurrentPrice), h.Market.Currency())
}

// Price returns the current per-unit price as money.
func (h Holding) Price() Money {
	return M(h.CurrentPrice, h.Market.Currency())
}

// Equal reports field-for-field equality. Decimal fields are compared by
// value, not representation, so a holding equals its persisted round-trip.
func (h Holding) Equal(o Holding) bool {
	return h.ID == o.ID &&
		h.Symbol == o.Symbol &&
		h.Name == o.Name &&
		h.Market == o.Market &&
		h.Quantity.Equal(o.Quantity) &&
		h.AvgPrice.Equal(o.AvgPrice) &&
		h.CurrentPrice.Equal(o.CurrentPrice)
}
