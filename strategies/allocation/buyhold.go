package allocation

import (
	"foliosim/types"

	"github.com/shopspring/decimal"
)

// BuyAndHold invests the whole portfolio toward its target weights on the
// first decision call and never trades again. The one-shot flag is private
// to the instance: construct a fresh strategy per backtest run.
type BuyAndHold struct {
	weights  map[string]decimal.Decimal
	invested bool
}

func NewBuyAndHold(weights map[string]decimal.Decimal) (*BuyAndHold, error) {
	if err := validateWeights(weights); err != nil {
		return nil, err
	}
	return &BuyAndHold{
		weights: weights,
	}, nil
}

func (s *BuyAndHold) GenerateOrders(view types.PortfolioView) []types.Order {
	if s.invested {
		return nil
	}
	s.invested = true
	return ordersToTargets(view, s.weights)
}

func (s *BuyAndHold) ShouldRebalance(view types.PortfolioView) bool {
	return false
}
