package tracker

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// countingQuotes serves fixed prices per symbol and records how often each one
// was asked for. Symbols without a price fail.
type countingQuotes struct {
	mu     sync.Mutex
	prices map[string]decimal.Decimal
	calls  map[string]int
}

func newCountingQuotes(prices map[string]decimal.Decimal) *countingQuotes {
	return &countingQuotes{prices: prices, calls: make(map[string]int)}
}

func (q *countingQuotes) Latest(_ context.Context, symbol string, _ Market) (decimal.Decimal, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.calls[symbol]++
	price, ok := q.prices[symbol]
	if !ok {
		return decimal.Zero, errors.New("quote unavailable")
	}
	return price, nil
}

func (q *countingQuotes) count(symbol string) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.calls[symbol]
}

func TestRefreshOnce_PartialFailureKeepsOthersFresh(t *testing.T) {
	p := NewPortfolio()
	samsung, err := p.Add("005930", "Samsung Electronics", d("10"), d("70000"), KR)
	if err != nil {
		t.Fatal(err)
	}
	apple, err := p.Add("AAPL", "Apple", d("5"), d("150"), US)
	if err != nil {
		t.Fatal(err)
	}

	quotes := newCountingQuotes(map[string]decimal.Decimal{
		"AAPL": d("180.5"),
	})
	r := NewReconciler(p, quotes)

	err = r.RefreshOnce(context.Background())
	if err == nil {
		t.Fatal("expected an aggregate error for the failed symbol")
	}
	if !strings.Contains(err.Error(), "005930") {
		t.Errorf("error should name the failed symbol, got %q", err)
	}

	got, _ := p.Get(apple.ID)
	if !got.CurrentPrice.Equal(d("180.5")) {
		t.Errorf("AAPL price = %s, want 180.5", got.CurrentPrice)
	}
	got, _ = p.Get(samsung.ID)
	if !got.CurrentPrice.Equal(d("70000")) {
		t.Errorf("failed fetch must keep the previous price, got %s", got.CurrentPrice)
	}

	if r.LastUpdated().IsZero() {
		t.Error("a partially failed tick still stamps LastUpdated")
	}
}

func TestRefreshOnce_EmptyPortfolioIsNoop(t *testing.T) {
	quotes := newCountingQuotes(nil)
	r := NewReconciler(NewPortfolio(), quotes)
	if err := r.RefreshOnce(context.Background()); err != nil {
		t.Fatalf("empty portfolio tick should succeed, got %v", err)
	}
	if !r.LastUpdated().IsZero() {
		t.Error("an empty tick fetches nothing and must not stamp LastUpdated")
	}
}

func TestRefreshOnce_RejectsOverlappingTick(t *testing.T) {
	p := NewPortfolio()
	if _, err := p.Add("AAPL", "Apple", d("1"), d("150"), US); err != nil {
		t.Fatal(err)
	}

	release := make(chan struct{})
	started := make(chan struct{})
	var startedOnce sync.Once
	slow := QuoteFunc(func(context.Context, string, Market) (decimal.Decimal, error) {
		startedOnce.Do(func() { close(started) })
		<-release
		return d("180"), nil
	})
	r := NewReconciler(p, slow)

	done := make(chan error, 1)
	go func() { done <- r.RefreshOnce(context.Background()) }()
	<-started

	if err := r.RefreshOnce(context.Background()); !errors.Is(err, ErrRefreshInFlight) {
		t.Errorf("overlapping tick: got %v, want ErrRefreshInFlight", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first tick failed: %v", err)
	}
	if err := r.RefreshOnce(context.Background()); err != nil {
		t.Errorf("guard must clear after the tick completes, got %v", err)
	}
}

func TestRun_TicksUntilCancelled(t *testing.T) {
	p := NewPortfolio()
	if _, err := p.Add("AAPL", "Apple", d("1"), d("150"), US); err != nil {
		t.Fatal(err)
	}
	quotes := newCountingQuotes(map[string]decimal.Decimal{"AAPL": d("180")})
	r := NewReconciler(p, quotes)

	var mu sync.Mutex
	ticks := 0
	r.AfterTick = func() {
		mu.Lock()
		ticks++
		mu.Unlock()
	}

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		r.Run(ctx, 5*time.Millisecond)
		close(stopped)
	}()

	deadline := time.After(2 * time.Second)
	for {
		mu.Lock()
		n := ticks
		mu.Unlock()
		if n >= 3 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("only %d ticks after 2s", n)
		case <-time.After(time.Millisecond):
		}
	}
	cancel()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}

	if quotes.count("AAPL") < 3 {
		t.Errorf("expected at least 3 fetches, got %d", quotes.count("AAPL"))
	}
}
