package engine

import (
	"errors"
	"time"

	"foliosim/types"

	"github.com/shopspring/decimal"
)

var MisalignedDataErr = errors.New("price series length does not match timestamp sequence")
var UnorderedTimestampsErr = errors.New("timestamps must be strictly increasing")

// driver produces a lazy, finite, non-restartable sequence of market
// snapshots in strictly increasing timestamp order. Replaying requires a
// fresh driver instance.
type driver interface {
	Next() (types.MarketSnapshot, bool)
}

// HistoricalDriver replays a pre-aligned set of price series. Alignment
// (inner join on timestamps) is the data layer's job; the driver validates
// the contract instead of tolerating misaligned input.
type HistoricalDriver struct {
	timestamps []time.Time
	series     map[string][]decimal.Decimal
	cursor     int
}

func NewHistoricalDriver(timestamps []time.Time, series map[string][]decimal.Decimal) (*HistoricalDriver, error) {
	for _, prices := range series {
		if len(prices) != len(timestamps) {
			return nil, MisalignedDataErr
		}
	}
	for i := 1; i < len(timestamps); i++ {
		if !timestamps[i].After(timestamps[i-1]) {
			return nil, UnorderedTimestampsErr
		}
	}
	return &HistoricalDriver{
		timestamps: timestamps,
		series:     series,
	}, nil
}

// Next returns the snapshot at the cursor and advances it. At step i only
// prices known as of timestamp i are exposed, so no look-ahead is possible.
func (d *HistoricalDriver) Next() (types.MarketSnapshot, bool) {
	if d.cursor >= len(d.timestamps) {
		return types.MarketSnapshot{}, false
	}
	prices := make(map[string]decimal.Decimal, len(d.series))
	for symbol, series := range d.series {
		prices[symbol] = series[d.cursor]
	}
	snapshot := types.NewMarketSnapshot(d.timestamps[d.cursor], prices)
	d.cursor++
	return snapshot, true
}

// Len reports the total number of steps the driver will produce.
func (d *HistoricalDriver) Len() int {
	return len(d.timestamps)
}
