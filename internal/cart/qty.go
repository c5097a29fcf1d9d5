package cart

import (
	"strconv"
	"strings"
)

// MaxLineQty caps the quantity a shopper can pick in the quantity inputs.
// AddItem itself does not enforce it.
const MaxLineQty = 99

// ClampQty parses a quantity field. Invalid input yields 1; the result is
// always within [1, MaxLineQty].
func ClampQty(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	if n > MaxLineQty {
		return MaxLineQty
	}
	return n
}

// CanIncrement reports whether the increment button is enabled for qty.
func CanIncrement(qty int) bool {
	return qty < MaxLineQty
}

// CanDecrement reports whether the decrement button is enabled for qty. At 1
// the shopper removes the line instead.
func CanDecrement(qty int) bool {
	return qty > 1
}
