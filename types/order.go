package types

import (
	"github.com/shopspring/decimal"
)

type Side string

const (
	SideTypeBuy  Side = "BUY"
	SideTypeSell Side = "SELL"
)

// Order is a trading intention produced by a strategy. Quantity is always
// positive; the direction lives in Side. Orders exist for a single
// simulation step and are consumed exactly once by an execution model.
type Order struct {
	Symbol   string          `json:"symbol"`
	Quantity decimal.Decimal `json:"quantity"`
	Side     Side            `json:"side"`
}

func NewOrder(symbol string, quantity decimal.Decimal, side Side) Order {
	return Order{
		Symbol:   symbol,
		Quantity: quantity,
		Side:     side,
	}
}
