package engine

import (
	"foliosim/types"
)

// Strategy is a decision function from the current portfolio view to a batch
// of orders. Strategies never mutate simulation state: they read the view
// and return intentions. Any bookkeeping ("already invested", "last
// rebalance") is private to the strategy instance, so a fresh instance must
// be constructed per run.
type Strategy interface {
	GenerateOrders(view types.PortfolioView) []types.Order

	// ShouldRebalance reports whether a periodic strategy wants to trade at
	// this step. Non-periodic strategies return false and gate inside
	// GenerateOrders instead.
	ShouldRebalance(view types.PortfolioView) bool
}
