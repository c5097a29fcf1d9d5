package cart

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestClampQty(t *testing.T) {
	t.Parallel()
	cases := map[string]int{
		"":      1,
		"abc":   1,
		"0":     1,
		"-3":    1,
		"1":     1,
		" 12 ":  12,
		"99":    99,
		"100":   99,
		"1.5":   1,
		"99999": 99,
	}
	for raw, want := range cases {
		if got := ClampQty(raw); got != want {
			t.Fatalf("ClampQty(%q) = %d, want %d", raw, got, want)
		}
	}
}

func TestButtonRules(t *testing.T) {
	t.Parallel()
	if CanDecrement(1) || !CanDecrement(2) {
		t.Fatal("decrement should be disabled only at 1")
	}
	if !CanIncrement(98) || CanIncrement(MaxLineQty) {
		t.Fatal("increment should be disabled at the cap")
	}
}

func TestStatePureReaders(t *testing.T) {
	t.Parallel()
	var empty State
	if empty.Count() != 0 || !empty.Subtotal().IsZero() || !empty.Total().IsZero() {
		t.Fatal("expected zero values for an empty state")
	}

	s := State{
		{Product: chair(), Qty: 2},
		{Product: sofa(), Qty: 1},
	}
	if s.Count() != 3 {
		t.Fatalf("expected count 3, got %d", s.Count())
	}
	if !s.Total().Equal(decimal.RequireFromString("1158.8")) {
		t.Fatalf("unexpected total %s", s.Total())
	}
}
