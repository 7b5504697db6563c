// Package tracker implements the Stock Empire portfolio tracker: a persisted
// list of user-entered holdings, a reconciliation loop that periodically
// refreshes their prices from an external quote endpoint, derived profit and
// loss metrics, and the tier gate controlling access to paid content.
//
// The package is local-first: the portfolio lives in a single JSON file owned
// by the process that opened it, and every committed mutation writes through.
// No failure in this package is allowed to crash the caller; quote fetch
// errors degrade to stale prices, and a corrupted portfolio file degrades to
// an empty portfolio.
package tracker
