package repository

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// AlignSeries inner-joins per-symbol price series on their timestamps,
// producing the pre-aligned input the simulation driver requires: one sorted
// timestamp sequence and equal-length price series for every symbol. Only
// timestamps present in every series survive. Returns ErrNoOverlap when the
// series share no timestamps at all.
func AlignSeries(series map[string][]PricePoint) ([]time.Time, map[string][]decimal.Decimal, error) {
	if len(series) == 0 {
		return nil, nil, ErrNoOverlap
	}

	counts := make(map[time.Time]int)
	for _, points := range series {
		seen := make(map[time.Time]bool, len(points))
		for _, p := range points {
			// Duplicate timestamps within one series count once.
			if !seen[p.Time] {
				seen[p.Time] = true
				counts[p.Time]++
			}
		}
	}

	var timestamps []time.Time
	for ts, n := range counts {
		if n == len(series) {
			timestamps = append(timestamps, ts)
		}
	}
	if len(timestamps) == 0 {
		return nil, nil, ErrNoOverlap
	}
	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i].Before(timestamps[j]) })

	index := make(map[time.Time]int, len(timestamps))
	for i, ts := range timestamps {
		index[ts] = i
	}

	aligned := make(map[string][]decimal.Decimal, len(series))
	for symbol, points := range series {
		prices := make([]decimal.Decimal, len(timestamps))
		for _, p := range points {
			if i, ok := index[p.Time]; ok {
				prices[i] = p.Price
			}
		}
		aligned[symbol] = prices
	}

	return timestamps, aligned, nil
}
