package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func day(n int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func point(n int, price string) PricePoint {
	return PricePoint{Time: day(n), Price: decimal.RequireFromString(price)}
}

func TestAlignSeries(t *testing.T) {
	t.Run("keeps only common timestamps, sorted", func(t *testing.T) {
		series := map[string][]PricePoint{
			"A": {point(0, "100"), point(1, "101"), point(2, "102"), point(3, "103")},
			"B": {point(3, "203"), point(1, "201"), point(2, "202")}, // unordered, no day 0
		}

		timestamps, aligned, err := AlignSeries(series)
		if err != nil {
			t.Fatalf("AlignSeries() error = %v", err)
		}

		want := []time.Time{day(1), day(2), day(3)}
		if len(timestamps) != len(want) {
			t.Fatalf("timestamps = %d, want %d", len(timestamps), len(want))
		}
		for i, ts := range want {
			if !timestamps[i].Equal(ts) {
				t.Errorf("timestamp %d = %v, want %v", i, timestamps[i], ts)
			}
		}

		wantA := []string{"101", "102", "103"}
		wantB := []string{"201", "202", "203"}
		for i := range want {
			if !aligned["A"][i].Equal(decimal.RequireFromString(wantA[i])) {
				t.Errorf("A[%d] = %s, want %s", i, aligned["A"][i], wantA[i])
			}
			if !aligned["B"][i].Equal(decimal.RequireFromString(wantB[i])) {
				t.Errorf("B[%d] = %s, want %s", i, aligned["B"][i], wantB[i])
			}
		}
	})

	t.Run("series lengths always match the timestamp count", func(t *testing.T) {
		series := map[string][]PricePoint{
			"A": {point(0, "100"), point(1, "101")},
			"B": {point(1, "201"), point(2, "202")},
		}
		timestamps, aligned, err := AlignSeries(series)
		if err != nil {
			t.Fatalf("AlignSeries() error = %v", err)
		}
		for symbol, prices := range aligned {
			if len(prices) != len(timestamps) {
				t.Errorf("%s length = %d, want %d", symbol, len(prices), len(timestamps))
			}
		}
	})

	t.Run("disjoint series report no overlap", func(t *testing.T) {
		series := map[string][]PricePoint{
			"A": {point(0, "100")},
			"B": {point(1, "201")},
		}
		_, _, err := AlignSeries(series)
		if !errors.Is(err, ErrNoOverlap) {
			t.Fatalf("AlignSeries() error = %v, want ErrNoOverlap", err)
		}
	})

	t.Run("empty input reports no overlap", func(t *testing.T) {
		_, _, err := AlignSeries(nil)
		if !errors.Is(err, ErrNoOverlap) {
			t.Fatalf("AlignSeries() error = %v, want ErrNoOverlap", err)
		}
	})
}
