package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PricePoint is one observation of a symbol's closing price.
type PricePoint struct {
	Time  time.Time
	Price decimal.Decimal
}

const dailyClosesQuery = `
SELECT bucket, close
FROM candles_daily
WHERE asset_id = $1 AND bucket >= $2 AND bucket <= $3
ORDER BY bucket ASC`

// GetDailyCloses returns the asset's daily closing prices over [start, end],
// ordered by time ascending.
func (db *Database) GetDailyCloses(assetId int, start, end time.Time, ctx context.Context) ([]PricePoint, error) {
	rows, err := db.conn.Query(ctx, dailyClosesQuery, assetId, start, end)
	if err != nil {
		return nil, fmt.Errorf("query daily closes: %w", err)
	}
	defer rows.Close()

	var points []PricePoint
	for rows.Next() {
		var p PricePoint
		if err := rows.Scan(&p.Time, &p.Price); err != nil {
			return nil, fmt.Errorf("scan daily close: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, ErrNoPrices
	}
	return points, nil
}
