package allocation

import (
	"time"

	"foliosim/types"

	"github.com/shopspring/decimal"
)

// DefaultDriftTolerance is the fractional weight drift that triggers a
// rebalance when the caller does not supply one.
var DefaultDriftTolerance = decimal.NewFromFloat(0.05)

// Rebalancing trades back to its target weights when a position has drifted
// past the tolerance, at most once per calendar period. The last-rebalance
// timestamp is private to the instance: construct a fresh strategy per run.
type Rebalancing struct {
	weights   map[string]decimal.Decimal
	frequency types.Frequency
	tolerance decimal.Decimal

	rebalanced    bool
	lastRebalance time.Time
}

// NewRebalancing validates the weights and frequency. A zero tolerance
// selects DefaultDriftTolerance.
func NewRebalancing(weights map[string]decimal.Decimal, frequency types.Frequency, tolerance decimal.Decimal) (*Rebalancing, error) {
	if err := validateWeights(weights); err != nil {
		return nil, err
	}
	switch frequency {
	case types.Daily, types.Weekly, types.Monthly:
	default:
		return nil, InvalidFrequencyErr
	}
	if tolerance.IsZero() {
		tolerance = DefaultDriftTolerance
	}
	return &Rebalancing{
		weights:   weights,
		frequency: frequency,
		tolerance: tolerance,
	}, nil
}

// ShouldRebalance is true when the calendar period has advanced since the
// last rebalance (or none has happened yet) and at least one target weight
// has drifted past the tolerance. Portfolios worth less than a dollar never
// rebalance: the weight math is all division noise down there.
func (s *Rebalancing) ShouldRebalance(view types.PortfolioView) bool {
	totalValue := view.TotalValue()
	if totalValue.LessThan(minTradeValue) {
		return false
	}

	if s.rebalanced && !periodAdvanced(s.lastRebalance, view.Time, s.frequency) {
		return false
	}

	for symbol, target := range s.weights {
		weight := view.PositionValue(symbol).Div(totalValue)
		if weight.Sub(target).Abs().GreaterThan(s.tolerance) {
			return true
		}
	}
	return false
}

func (s *Rebalancing) GenerateOrders(view types.PortfolioView) []types.Order {
	if !s.ShouldRebalance(view) {
		return nil
	}
	s.rebalanced = true
	s.lastRebalance = view.Time
	return ordersToTargets(view, s.weights)
}

// periodAdvanced reports whether cur falls in a later calendar period than
// prev. Weekly and monthly compare (year, week) and (year, month) tuples, so
// either element differing counts. That handles year boundaries: week 1 of
// the next year differs from week 52 even though 1 < 52.
func periodAdvanced(prev, cur time.Time, frequency types.Frequency) bool {
	switch frequency {
	case types.Daily:
		py, pm, pd := prev.Date()
		cy, cm, cd := cur.Date()
		return py != cy || pm != cm || pd != cd
	case types.Weekly:
		py, pw := prev.ISOWeek()
		cy, cw := cur.ISOWeek()
		return py != cy || pw != cw
	case types.Monthly:
		return prev.Year() != cur.Year() || prev.Month() != cur.Month()
	}
	return false
}
