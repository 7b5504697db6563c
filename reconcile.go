package tracker

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DefaultInterval is the documented polling period of the reconciliation loop.
const DefaultInterval = 10 * time.Second

// ErrRefreshInFlight is returned by RefreshOnce when a tick is already
// running. The manual refresh trigger treats it as "button disabled".
var ErrRefreshInFlight = errors.New("refresh already in flight")

// Reconciler periodically re-fetches the current price of every holding and
// merges the results into the portfolio. Holdings whose fetch fails keep their
// previous price; the tick completes when every request has settled.
//
// Ticks never overlap: the in-flight guard rejects a tick while one is
// running, which also rules out a slow tick overwriting the prices of a later
// one.
type Reconciler struct {
	portfolio *Portfolio
	quotes    QuoteProvider

	// AfterTick, when set, runs after every completed tick, partial failures
	// included. The watch command uses it to re-render.
	AfterTick func()

	inFlight atomic.Bool

	mu          sync.Mutex
	lastUpdated time.Time
}

// NewReconciler builds a reconciler over the given portfolio and quote source.
func NewReconciler(p *Portfolio, quotes QuoteProvider) *Reconciler {
	return &Reconciler{portfolio: p, quotes: quotes}
}

// LastUpdated returns the completion time of the most recent tick, or the zero
// time before the first one. It is stamped on completion regardless of partial
// failures: staleness is how fetch errors surface.
func (r *Reconciler) LastUpdated() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastUpdated
}

// RefreshOnce performs one reconciliation tick: a concurrent fetch per
// holding, then a single merge of the successes. An empty portfolio is a
// no-op. The returned error aggregates the per-holding failures; the merge has
// already happened when it is non-nil.
func (r *Reconciler) RefreshOnce(ctx context.Context) error {
	holdings := r.portfolio.Holdings()
	if len(holdings) == 0 {
		return nil
	}
	if !r.inFlight.CompareAndSwap(false, true) {
		return ErrRefreshInFlight
	}
	defer r.inFlight.Store(false)

	var mu sync.Mutex
	prices := make(map[string]decimal.Decimal, len(holdings))
	var errs []error

	var g errgroup.Group
	for _, h := range holdings {
		g.Go(func() error {
			price, err := r.quotes.Latest(ctx, h.Symbol, h.Market)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				// One failed quote must not block the others.
				errs = append(errs, fmt.Errorf("%s: %w", h.Symbol, err))
				return nil
			}
			prices[h.ID] = price
			return nil
		})
	}
	g.Wait()

	r.portfolio.ApplyPrices(prices)

	r.mu.Lock()
	r.lastUpdated = time.Now()
	r.mu.Unlock()

	if r.AfterTick != nil {
		r.AfterTick()
	}
	return errors.Join(errs...)
}

// Run executes one tick immediately and then one per interval until the
// context is cancelled. Partial failures are logged and the loop keeps going.
func (r *Reconciler) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if err := r.RefreshOnce(ctx); err != nil {
		log.Printf("refresh: %v", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.RefreshOnce(ctx); err != nil && !errors.Is(err, ErrRefreshInFlight) {
				log.Printf("refresh: %v", err)
			}
		}
	}
}
