package engine

import (
	"math"
	"sync"
	"time"

	"foliosim/types"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

func (e *Engine) buildResult(
	timestamps []time.Time,
	equityCurve []decimal.Decimal,
	positionSnapshots []map[string]decimal.Decimal,
) *types.BacktestResult {
	initialValue := e.portfolioConfig.initialCash
	finalValue := initialValue
	if len(equityCurve) > 0 {
		finalValue = equityCurve[len(equityCurve)-1]
	}

	returns := periodReturns(equityCurve)

	result := &types.BacktestResult{
		InitialValue:      initialValue,
		FinalValue:        finalValue,
		EquityCurve:       equityCurve,
		PeriodReturns:     returns,
		Timestamps:        timestamps,
		Fills:             append([]types.Fill(nil), e.state.fills...),
		PositionSnapshots: positionSnapshots,
		Metrics:           make(map[string]decimal.Decimal),
	}

	var totalReturn, cagr, volatility, sharpe, maxDrawdown decimal.Decimal

	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		totalReturn = calcTotalReturn(initialValue, finalValue, &wg)
	}()
	go func() {
		cagr = calcCAGR(initialValue, finalValue, timestamps, &wg)
	}()
	go func() {
		volatility = calcVolatility(returns, e.reportingConfig.periodsPerYear, &wg)
	}()
	go func() {
		sharpe = calcSharpeRatio(returns, e.reportingConfig.sharpeRiskFreeRate, e.reportingConfig.periodsPerYear, &wg)
	}()
	go func() {
		maxDrawdown = calcMaxDrawdown(equityCurve, &wg)
	}()
	wg.Wait()

	result.Metrics[types.MetricTotalReturn] = totalReturn
	result.Metrics[types.MetricCAGR] = cagr
	result.Metrics[types.MetricVolatility] = volatility
	result.Metrics[types.MetricSharpeRatio] = sharpe
	result.Metrics[types.MetricMaxDrawdown] = maxDrawdown

	return result
}

// periodReturns computes simple returns between consecutive equity values.
// A non-positive previous value yields a zero return for that period.
func periodReturns(equityCurve []decimal.Decimal) []decimal.Decimal {
	if len(equityCurve) < 2 {
		return nil
	}
	returns := make([]decimal.Decimal, 0, len(equityCurve)-1)
	for i := 1; i < len(equityCurve); i++ {
		prev := equityCurve[i-1]
		if !prev.GreaterThan(decimal.Zero) {
			returns = append(returns, decimal.Zero)
			continue
		}
		returns = append(returns, equityCurve[i].Div(prev).Sub(one))
	}
	return returns
}

func calcTotalReturn(initialValue, finalValue decimal.Decimal, wg *sync.WaitGroup) decimal.Decimal {
	defer wg.Done()
	if !initialValue.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}
	return finalValue.Div(initialValue).Sub(one)
}

func calcCAGR(initialValue, finalValue decimal.Decimal, timestamps []time.Time, wg *sync.WaitGroup) decimal.Decimal {
	defer wg.Done()
	if len(timestamps) < 2 {
		return decimal.Zero
	}
	if !initialValue.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}

	duration := timestamps[len(timestamps)-1].Sub(timestamps[0])
	if duration <= 0 {
		return decimal.Zero
	}
	// 365.25 days per year to account for leap years
	years := duration.Hours() / (24.0 * 365.25)

	ratio := finalValue.Div(initialValue)
	if !ratio.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}

	cagrFloat := math.Pow(ratio.InexactFloat64(), 1.0/years) - 1.0
	return decimal.NewFromFloat(cagrFloat)
}

func calcVolatility(returns []decimal.Decimal, periodsPerYear int, wg *sync.WaitGroup) decimal.Decimal {
	defer wg.Done()
	if len(returns) < 2 {
		return decimal.Zero
	}

	std := stddev(toFloats(returns))
	annualized := std * math.Sqrt(float64(periodsPerYear))
	return decimal.NewFromFloat(annualized)
}

func calcSharpeRatio(
	returns []decimal.Decimal,
	annualRiskFree decimal.Decimal,
	periodsPerYear int,
	wg *sync.WaitGroup,
) decimal.Decimal {
	defer wg.Done()
	if len(returns) < 2 {
		// Need at least 2 periods to compute stddev
		return decimal.Zero
	}

	// Convert annual risk-free to per-period:
	// rf_period = (1 + rf_annual)^(1/n) - 1
	rfAnnualFloat := annualRiskFree.InexactFloat64()
	rfPeriodFloat := math.Pow(1.0+rfAnnualFloat, 1.0/float64(periodsPerYear)) - 1.0

	excess := make([]float64, 0, len(returns))
	for _, r := range returns {
		excess = append(excess, r.InexactFloat64()-rfPeriodFloat)
	}

	std := stddev(excess)
	if std == 0 {
		return decimal.Zero
	}

	sharpePeriod := mean(excess) / std
	sharpeAnnual := sharpePeriod * math.Sqrt(float64(periodsPerYear))
	return decimal.NewFromFloat(sharpeAnnual)
}

// calcMaxDrawdown returns the largest peak-to-trough decline as a fraction
// of the peak.
func calcMaxDrawdown(equityCurve []decimal.Decimal, wg *sync.WaitGroup) decimal.Decimal {
	defer wg.Done()
	if len(equityCurve) == 0 {
		return decimal.Zero
	}

	peak := decimal.Zero
	maxDDPct := decimal.Zero

	for i, equity := range equityCurve {
		if i == 0 || equity.GreaterThan(peak) || peak.IsZero() {
			peak = equity
		}
		if peak.GreaterThan(decimal.Zero) {
			dd := peak.Sub(equity).Div(peak)
			if dd.GreaterThan(maxDDPct) {
				maxDDPct = dd
			}
		}
	}
	return maxDDPct
}

func toFloats(values []decimal.Decimal) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		out = append(out, v.InexactFloat64())
	}
	return out
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stddev is the sample standard deviation.
func stddev(values []float64) float64 {
	m := mean(values)
	var varianceSum float64
	for _, v := range values {
		diff := v - m
		varianceSum += diff * diff
	}
	return math.Sqrt(varianceSum / float64(len(values)-1))
}
