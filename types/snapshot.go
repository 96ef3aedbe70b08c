package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketSnapshot is a single time-stepped observation of prices across
// tradable symbols. Drivers hand out snapshots in strictly increasing
// timestamp order; consumers must not mutate Prices.
type MarketSnapshot struct {
	Timestamp time.Time                  `json:"timestamp"`
	Prices    map[string]decimal.Decimal `json:"prices"`
}

func NewMarketSnapshot(timestamp time.Time, prices map[string]decimal.Decimal) MarketSnapshot {
	return MarketSnapshot{
		Timestamp: timestamp,
		Prices:    prices,
	}
}
