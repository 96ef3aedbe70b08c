package engine

import (
	"errors"
	"fmt"

	"foliosim/types"
)

var MissingPriceErr = errors.New("no price for symbol in current snapshot")

// executionModel turns an order into a fill against the current snapshot.
// The boolean reports whether a fill happened: (fill, true, nil) on a fill,
// (zero, false, nil) for a no-fill, and a non-nil error when the order
// cannot be handled at all. The no-fill path exists so that models with
// liquidity or cash constraints can reject orders without aborting the run.
type executionModel interface {
	Execute(order types.Order, snapshot types.MarketSnapshot) (types.Fill, bool, error)
}

// InstantFill fills the full order quantity at the snapshot's price for the
// symbol, with zero slippage and zero fees. It does not check cash: the
// reference model leaves buying-power policy to the caller.
//
// When the symbol has no price in the current snapshot the default model
// returns MissingPriceErr, which fails the run; a missing price during
// execution means the input data or the strategy is wrong and should
// surface. NewInstantFillSkipMissing turns that case into a silent no-fill
// instead.
type InstantFill struct {
	skipMissing bool
}

func NewInstantFill() *InstantFill {
	return &InstantFill{}
}

func NewInstantFillSkipMissing() *InstantFill {
	return &InstantFill{skipMissing: true}
}

func (m *InstantFill) Execute(order types.Order, snapshot types.MarketSnapshot) (types.Fill, bool, error) {
	price, ok := snapshot.Prices[order.Symbol]
	if !ok {
		if m.skipMissing {
			return types.Fill{}, false, nil
		}
		return types.Fill{}, false, fmt.Errorf("symbol %s: %w", order.Symbol, MissingPriceErr)
	}
	fill := types.NewFill(order.Symbol, order.Quantity, order.Side, price, snapshot.Timestamp)
	return fill, true, nil
}
