package allocation

import (
	"errors"
	"testing"
	"time"

	"foliosim/types"

	"github.com/shopspring/decimal"
)

func weights(pairs map[string]string) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(pairs))
	for symbol, weight := range pairs {
		out[symbol] = decimal.RequireFromString(weight)
	}
	return out
}

func TestValidateWeights(t *testing.T) {
	tests := []struct {
		name    string
		weights map[string]string
		wantErr error
	}{
		{
			name:    "exact sum",
			weights: map[string]string{"A": "0.6", "B": "0.4"},
		},
		{
			name:    "sum inside tolerance low",
			weights: map[string]string{"A": "0.5", "B": "0.49"},
		},
		{
			name:    "sum inside tolerance high",
			weights: map[string]string{"A": "0.5", "B": "0.51"},
		},
		{
			name:    "sum too low",
			weights: map[string]string{"A": "0.5", "B": "0.48"},
			wantErr: InvalidWeightsErr,
		},
		{
			name:    "sum too high",
			weights: map[string]string{"A": "0.5", "B": "0.52"},
			wantErr: InvalidWeightsErr,
		},
		{
			name:    "empty weights sum to zero",
			weights: map[string]string{},
			wantErr: InvalidWeightsErr,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateWeights(weights(tc.weights))
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("validateWeights() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func testView(cash string, positions, priceMap map[string]string) types.PortfolioView {
	view := types.PortfolioView{
		Cash:      decimal.RequireFromString(cash),
		Positions: make(map[string]decimal.Decimal),
		Prices:    make(map[string]decimal.Decimal),
		Time:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	for symbol, qty := range positions {
		view.Positions[symbol] = decimal.RequireFromString(qty)
	}
	for symbol, price := range priceMap {
		view.Prices[symbol] = decimal.RequireFromString(price)
	}
	return view
}

func TestOrdersToTargets(t *testing.T) {
	t.Run("splits cash toward targets in sorted symbol order", func(t *testing.T) {
		view := testView("10000", nil, map[string]string{"A": "100", "B": "100"})
		orders := ordersToTargets(view, weights(map[string]string{"B": "0.4", "A": "0.6"}))

		if len(orders) != 2 {
			t.Fatalf("orders = %d, want 2", len(orders))
		}
		if orders[0].Symbol != "A" || orders[1].Symbol != "B" {
			t.Fatalf("order symbols = %s,%s, want A,B", orders[0].Symbol, orders[1].Symbol)
		}
		if orders[0].Side != types.SideTypeBuy || !orders[0].Quantity.Equal(decimal.RequireFromString("60")) {
			t.Errorf("order A = %+v, want buy 60", orders[0])
		}
		if orders[1].Side != types.SideTypeBuy || !orders[1].Quantity.Equal(decimal.RequireFromString("40")) {
			t.Errorf("order B = %+v, want buy 40", orders[1])
		}
	})

	t.Run("sells overweight positions", func(t *testing.T) {
		// A is worth 6000 of a 10000 portfolio against a 0.5 target.
		view := testView("4000", map[string]string{"A": "60"}, map[string]string{"A": "100", "B": "100"})
		orders := ordersToTargets(view, weights(map[string]string{"A": "0.5", "B": "0.5"}))

		if len(orders) != 2 {
			t.Fatalf("orders = %d, want 2", len(orders))
		}
		if orders[0].Side != types.SideTypeSell || !orders[0].Quantity.Equal(decimal.RequireFromString("10")) {
			t.Errorf("order A = %+v, want sell 10", orders[0])
		}
		if orders[1].Side != types.SideTypeBuy || !orders[1].Quantity.Equal(decimal.RequireFromString("50")) {
			t.Errorf("order B = %+v, want buy 50", orders[1])
		}
	})

	t.Run("skips symbols without a current price", func(t *testing.T) {
		view := testView("10000", nil, map[string]string{"A": "100"})
		orders := ordersToTargets(view, weights(map[string]string{"A": "0.6", "B": "0.4"}))

		if len(orders) != 1 {
			t.Fatalf("orders = %d, want 1", len(orders))
		}
		if orders[0].Symbol != "A" {
			t.Errorf("order symbol = %s, want A", orders[0].Symbol)
		}
	})

	t.Run("drops deltas at or below the minimum trade value", func(t *testing.T) {
		// Position is worth 9999.50: the 0.50 delta is below the $1 floor.
		view := testView("0.50", map[string]string{"A": "99.995"}, map[string]string{"A": "100"})
		orders := ordersToTargets(view, weights(map[string]string{"A": "1.0"}))

		if len(orders) != 0 {
			t.Fatalf("orders = %d, want 0", len(orders))
		}
	})
}
