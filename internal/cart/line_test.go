package cart

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/storefront/internal/catalog"
)

func TestLineMarshalIsFlatWithNumericPrice(t *testing.T) {
	t.Parallel()
	line := Line{
		Product: catalog.Product{ID: "1", Name: "Nordic Oak Chair", Category: "Chairs", Price: decimal.RequireFromString("129.9")},
		Qty:     3,
	}

	raw, err := json.Marshal(State{line})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var records []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected one record, got %s", raw)
	}
	if got := string(records[0]["price"]); got != "129.9" {
		t.Fatalf("expected numeric price, got %s", got)
	}
	if got := string(records[0]["qty"]); got != "3" {
		t.Fatalf("expected qty 3, got %s", got)
	}
	if got := string(records[0]["name"]); got != `"Nordic Oak Chair"` {
		t.Fatalf("expected product fields at top level, got %s", raw)
	}

	var back State
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back[0].Qty != 3 || !back[0].Price.Equal(line.Price) || back[0].ID != "1" {
		t.Fatalf("round trip mismatch: %+v", back[0])
	}
}
