package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Metric keys present in BacktestResult.Metrics.
const (
	MetricTotalReturn = "total_return"
	MetricCAGR        = "cagr"
	MetricVolatility  = "volatility"
	MetricSharpeRatio = "sharpe_ratio"
	MetricMaxDrawdown = "max_drawdown"
)

// BacktestResult is the terminal record of a single backtest run. It is a
// plain data aggregate so it can be persisted or diffed across runs without
// re-running the simulation. EquityCurve holds the total portfolio value at
// every step; PeriodReturns has one entry fewer.
type BacktestResult struct {
	InitialValue      decimal.Decimal              `json:"initialValue"`
	FinalValue        decimal.Decimal              `json:"finalValue"`
	EquityCurve       []decimal.Decimal            `json:"equityCurve"`
	PeriodReturns     []decimal.Decimal            `json:"periodReturns"`
	Timestamps        []time.Time                  `json:"timestamps"`
	Fills             []Fill                       `json:"fills"`
	PositionSnapshots []map[string]decimal.Decimal `json:"positionSnapshots"`
	Metrics           map[string]decimal.Decimal   `json:"metrics"`
}
