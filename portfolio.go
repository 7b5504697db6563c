package tracker

import (
	"log"
	"slices"
	"sync"

	"github.com/shopspring/decimal"
)

// Portfolio is the ordered collection of holdings, unique by id, insertion
// order preserved for display. It owns its store exclusively: every committed
// mutation writes through. Safe for concurrent use; the reconciliation loop
// merges prices from its own goroutine while the UI surface reads and mutates
// from another.
type Portfolio struct {
	mu       sync.RWMutex
	holdings []Holding
	store    *Store
}

// OpenPortfolio hydrates a portfolio from its store. This is the only read of
// persisted storage in the portfolio's lifetime; afterwards the in-memory list
// is authoritative.
func OpenPortfolio(store *Store) (*Portfolio, error) {
	holdings, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Portfolio{holdings: holdings, store: store}, nil
}

// NewPortfolio returns an in-memory portfolio without persistence.
func NewPortfolio() *Portfolio { return &Portfolio{} }

// Holdings returns a snapshot of the current list, in insertion order.
func (p *Portfolio) Holdings() []Holding {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.holdings)
}

// Len returns the number of holdings.
func (p *Portfolio) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.holdings)
}

// Get returns the holding with this id.
func (p *Portfolio) Get(id string) (Holding, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, h := range p.holdings {
		if h.ID == id {
			return h, true
		}
	}
	return Holding{}, false
}

// Add validates the new position and appends it to the end of the list. On
// rejection nothing is mutated and the returned error carries the user-facing
// validation message.
func (p *Portfolio) Add(symbol, name string, quantity, avgPrice decimal.Decimal, market Market) (Holding, error) {
	h, err := NewHolding(symbol, name, quantity, avgPrice, market)
	if err != nil {
		return Holding{}, err
	}
	p.mu.Lock()
	p.holdings = append(p.holdings, h)
	p.mu.Unlock()
	p.persist()
	return h, nil
}

// Remove deletes the holding with this id. The confirmed flag carries the
// user's explicit confirmation: without it Remove is a no-op. Removing an
// unknown id is also a no-op. Reports whether a holding was removed.
func (p *Portfolio) Remove(id string, confirmed bool) bool {
	if !confirmed {
		return false
	}
	p.mu.Lock()
	before := len(p.holdings)
	p.holdings = slices.DeleteFunc(p.holdings, func(h Holding) bool { return h.ID == id })
	removed := len(p.holdings) != before
	p.mu.Unlock()
	if removed {
		p.persist()
	}
	return removed
}

// ApplyPrices merges fresh prices into the portfolio, keyed by holding id.
// Unknown ids and non-positive prices are ignored; holdings absent from the
// map keep their previous price. The whole merge persists at most once.
// Reports the number of holdings updated.
func (p *Portfolio) ApplyPrices(prices map[string]decimal.Decimal) int {
	p.mu.Lock()
	var merged int
	for i := range p.holdings {
		price, ok := prices[p.holdings[i].ID]
		if !ok || !price.IsPositive() {
			continue
		}
		if !p.holdings[i].CurrentPrice.Equal(price) {
			p.holdings[i].CurrentPrice = price
			merged++
		}
	}
	p.mu.Unlock()
	if merged > 0 {
		p.persist()
	}
	return merged
}

// persist writes through to the store, if any. A failed write is logged and
// otherwise ignored: persistence staleness must never break the tracker.
func (p *Portfolio) persist() {
	if p.store == nil {
		return
	}
	if err := p.store.Save(p.Holdings()); err != nil {
		log.Printf("could not persist portfolio: %v", err)
	}
}
