package tracker

import "fmt"

// Percent is a percentage value, e.g. a P&L return.
type Percent float64

// Equal compares with a fixed precision, the display resolution.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// Fixed returns the bare two-decimal representation, e.g. "20.00".
func (p Percent) Fixed() string {
	return fmt.Sprintf("%.2f", p)
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

// SignedString renders with an explicit sign; zero renders as "-".
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}
