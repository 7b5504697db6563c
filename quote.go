package tracker

import (
	"context"

	"github.com/shopspring/decimal"
)

// QuoteProvider fetches the latest price for a symbol on a given market.
// Implementations issue one request per call, no retries: each reconciliation
// tick is a fresh independent attempt. Any failure (network, bad status,
// malformed body, non-positive price) is an error; the caller treats it as
// "no update for this holding".
type QuoteProvider interface {
	Latest(ctx context.Context, symbol string, market Market) (decimal.Decimal, error)
}

// QuoteFunc adapts a function to the QuoteProvider interface.
type QuoteFunc func(ctx context.Context, symbol string, market Market) (decimal.Decimal, error)

func (f QuoteFunc) Latest(ctx context.Context, symbol string, market Market) (decimal.Decimal, error) {
	return f(ctx, symbol, market)
}
