package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// PortfolioView is the read-only view of the simulation state handed to
// strategies. It is a defensive copy: mutating it has no effect on the run.
type PortfolioView struct {
	Cash      decimal.Decimal
	Positions map[string]decimal.Decimal
	Prices    map[string]decimal.Decimal
	Time      time.Time
}

// TotalValue returns cash plus the mark-to-market value of all positions.
// A position whose symbol has no known price contributes zero.
func (v PortfolioView) TotalValue() decimal.Decimal {
	value := v.Cash
	for symbol, qty := range v.Positions {
		price, ok := v.Prices[symbol]
		if !ok {
			continue
		}
		value = value.Add(qty.Mul(price))
	}
	return value
}

// PositionValue returns the mark-to-market value of a single position, or
// zero when the position or its price is unknown.
func (v PortfolioView) PositionValue(symbol string) decimal.Decimal {
	qty, ok := v.Positions[symbol]
	if !ok {
		return decimal.Zero
	}
	price, ok := v.Prices[symbol]
	if !ok {
		return decimal.Zero
	}
	return qty.Mul(price)
}
