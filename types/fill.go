package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fill is the simulated realization of an Order against a snapshot. Fills
// are appended to the simulation's fill log and never mutated afterwards.
type Fill struct {
	Symbol    string          `json:"symbol"`
	Quantity  decimal.Decimal `json:"quantity"`
	Side      Side            `json:"side"`
	Price     decimal.Decimal `json:"price"`
	Timestamp time.Time       `json:"timestamp"`
}

func NewFill(symbol string, quantity decimal.Decimal, side Side, price decimal.Decimal, timestamp time.Time) Fill {
	return Fill{
		Symbol:    symbol,
		Quantity:  quantity,
		Side:      side,
		Price:     price,
		Timestamp: timestamp,
	}
}
