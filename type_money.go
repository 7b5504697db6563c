package tracker

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money couples an exact decimal amount with its currency. Arithmetic stays on
// decimals to keep P&L exact; formatting goes through the currency's own
// grouping and symbol, so KRW amounts render as won-prefixed integers and USD
// amounts as dollar-prefixed two-decimal groupings.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M builds a money value in the given ISO currency.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// Amount returns the underlying decimal amount in major units.
func (m Money) Amount() decimal.Decimal { return m.value }

// Currency returns the ISO currency code.
func (m Money) Currency() string { return m.cur }

func (m Money) IsZero() bool     { return m.value.IsZero() }
func (m Money) IsPositive() bool { return m.value.IsPositive() }
func (m Money) IsNegative() bool { return m.value.IsNegative() }

func (m Money) Equal(n Money) bool { return m.cur == n.cur && m.value.Equal(n.value) }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// currency returns the money's full currency description.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the formatted representation, e.g. "₩1,234" or "$1,234.56".
func (m Money) String() string {
	c := m.currency()
	minor := m.value.Shift(int32(c.Fraction))
	return c.Formatter().Format(minor.IntPart())
}

// SignedString is like String with an explicit sign; zero renders as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}
