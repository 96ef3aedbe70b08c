package engine

import (
	"errors"
	"testing"

	"foliosim/types"

	"github.com/shopspring/decimal"
)

func TestInstantFill_FillsAtSnapshotPrice(t *testing.T) {
	snapshot := types.NewMarketSnapshot(day(3), map[string]decimal.Decimal{
		"AAPL": decimal.RequireFromString("123.45"),
	})
	order := types.NewOrder("AAPL", decimal.RequireFromString("7"), types.SideTypeBuy)

	fill, filled, err := NewInstantFill().Execute(order, snapshot)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !filled {
		t.Fatal("Execute() returned no fill")
	}
	if fill.Symbol != "AAPL" || fill.Side != types.SideTypeBuy {
		t.Errorf("fill = %+v, wrong symbol or side", fill)
	}
	if !fill.Quantity.Equal(order.Quantity) {
		t.Errorf("fill quantity = %s, want %s", fill.Quantity, order.Quantity)
	}
	if !fill.Price.Equal(decimal.RequireFromString("123.45")) {
		t.Errorf("fill price = %s, want 123.45", fill.Price)
	}
	if !fill.Timestamp.Equal(day(3)) {
		t.Errorf("fill timestamp = %v, want %v", fill.Timestamp, day(3))
	}
}

func TestInstantFill_MissingSymbol(t *testing.T) {
	snapshot := types.NewMarketSnapshot(day(0), map[string]decimal.Decimal{
		"AAPL": decimal.RequireFromString("100"),
	})
	order := types.NewOrder("GOOG", decimal.RequireFromString("1"), types.SideTypeBuy)

	// Default policy: a missing price is a data problem and fails loudly.
	_, filled, err := NewInstantFill().Execute(order, snapshot)
	if !errors.Is(err, MissingPriceErr) {
		t.Fatalf("Execute() error = %v, want MissingPriceErr", err)
	}
	if filled {
		t.Fatal("Execute() reported a fill alongside an error")
	}

	// Skip policy: same case becomes a silent no-fill.
	_, filled, err = NewInstantFillSkipMissing().Execute(order, snapshot)
	if err != nil {
		t.Fatalf("Execute() error = %v, want nil under skip policy", err)
	}
	if filled {
		t.Fatal("Execute() filled an order with no market price")
	}
}
