package tracker

import "testing"

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		value string
		cur   string
		want  string
	}{
		{"1234", "KRW", "₩1,234"},
		{"700000", "KRW", "₩700,000"},
		{"1234.56", "USD", "$1,234.56"},
		{"180.5", "USD", "$180.50"},
		{"-1234.56", "USD", "-$1,234.56"},
		{"0", "KRW", "₩0"},
	}
	for _, tc := range testCases {
		if got := M(d(tc.value), tc.cur).String(); got != tc.want {
			t.Errorf("M(%s, %s).String() = %q, want %q", tc.value, tc.cur, got, tc.want)
		}
	}
}

func TestMoney_SignedString(t *testing.T) {
	testCases := []struct {
		value string
		cur   string
		want  string
	}{
		{"200", "USD", "+$200.00"},
		{"-50.5", "USD", "-$50.50"},
		{"0", "USD", "-"},
		{"150000", "KRW", "+₩150,000"},
	}
	for _, tc := range testCases {
		if got := M(d(tc.value), tc.cur).SignedString(); got != tc.want {
			t.Errorf("M(%s, %s).SignedString() = %q, want %q", tc.value, tc.cur, got, tc.want)
		}
	}
}

func TestMoney_AddKeepsCurrency(t *testing.T) {
	sum := M(d("100"), "KRW").Add(M(d("50"), "KRW"))
	if !sum.Equal(M(d("150"), "KRW")) {
		t.Errorf("got %s", sum)
	}
	// the zero Money is a neutral element whatever the currency.
	sum = Money{}.Add(M(d("50"), "USD"))
	if sum.Currency() != "USD" {
		t.Errorf("zero value must adopt the other currency, got %q", sum.Currency())
	}
}

func TestMoney_AddPanicsOnCurrencyMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding KRW to USD must panic")
		}
	}()
	M(d("100"), "KRW").Add(M(d("100"), "USD"))
}

func TestPercent_Strings(t *testing.T) {
	testCases := []struct {
		p      Percent
		fixed  string
		str    string
		signed string
	}{
		{20, "20.00", "20.00%", "+20.00%"},
		{-7.5, "-7.50", "-7.50%", "-7.50%"},
		{0, "0.00", "0.00%", "-"},
		{0.005, "0.01", "0.01%", "+0.01%"},
	}
	for _, tc := range testCases {
		if got := tc.p.Fixed(); got != tc.fixed {
			t.Errorf("Percent(%v).Fixed() = %q, want %q", float64(tc.p), got, tc.fixed)
		}
		if got := tc.p.String(); got != tc.str {
			t.Errorf("Percent(%v).String() = %q, want %q", float64(tc.p), got, tc.str)
		}
		if got := tc.p.SignedString(); got != tc.signed {
			t.Errorf("Percent(%v).SignedString() = %q, want %q", float64(tc.p), got, tc.signed)
		}
	}
}
