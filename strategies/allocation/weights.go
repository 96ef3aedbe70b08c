// Package allocation holds the reference weight-target strategies: buy and
// hold, and periodic rebalancing. Both take a symbol -> target weight map and
// trade toward the implied target values.
package allocation

import (
	"errors"
	"sort"

	"foliosim/types"

	"github.com/shopspring/decimal"
)

var InvalidWeightsErr = errors.New("target weights must sum to 1.0")
var InvalidFrequencyErr = errors.New("unknown rebalance frequency")

// Orders below this notional value are dropped: they are noise relative to
// any realistic portfolio and would churn forever on rounding drift.
var minTradeValue = decimal.NewFromInt(1)

// weightSumTolerance is how far the weight sum may stray from 1.0.
var weightSumTolerance = decimal.NewFromFloat(0.01)

func validateWeights(weights map[string]decimal.Decimal) error {
	sum := decimal.Zero
	for _, weight := range weights {
		sum = sum.Add(weight)
	}
	if sum.Sub(decimal.NewFromInt(1)).Abs().GreaterThan(weightSumTolerance) {
		return InvalidWeightsErr
	}
	return nil
}

// ordersToTargets emits the orders that move each position toward
// target_weight x total_value. Symbols without a current price are skipped:
// they cannot be traded at this step. Symbols are processed in sorted order
// so the batch is deterministic.
func ordersToTargets(view types.PortfolioView, weights map[string]decimal.Decimal) []types.Order {
	totalValue := view.TotalValue()

	symbols := make([]string, 0, len(weights))
	for symbol := range weights {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	var orders []types.Order
	for _, symbol := range symbols {
		price, ok := view.Prices[symbol]
		if !ok || !price.GreaterThan(decimal.Zero) {
			continue
		}

		targetValue := weights[symbol].Mul(totalValue)
		delta := targetValue.Sub(view.PositionValue(symbol))
		if !delta.Abs().GreaterThan(minTradeValue) {
			continue
		}

		quantity := delta.Abs().Div(price)
		side := types.SideTypeBuy
		if delta.IsNegative() {
			side = types.SideTypeSell
		}
		orders = append(orders, types.NewOrder(symbol, quantity, side))
	}
	return orders
}
