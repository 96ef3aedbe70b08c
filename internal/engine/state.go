package engine

import (
	"errors"
	"time"

	"foliosim/types"

	"github.com/shopspring/decimal"
)

var UnknownSideErr = errors.New("unknown fill side")
var ShortSellNotAllowedErr = errors.New("short sell not allowed, fill would make position negative")

// simulationState is the mutable aggregate owned exclusively by the
// simulation loop. Strategies only ever see a PortfolioView copy of it.
// Negative cash is allowed here: buying-power policy belongs to the
// execution model, not the bookkeeping.
type simulationState struct {
	curTime   time.Time
	cash      decimal.Decimal
	positions map[string]decimal.Decimal
	prices    map[string]decimal.Decimal
	fills     []types.Fill
}

func newSimulationState(initialCash decimal.Decimal) *simulationState {
	return &simulationState{
		cash:      initialCash,
		positions: make(map[string]decimal.Decimal),
		prices:    make(map[string]decimal.Decimal),
	}
}

// observe advances the state's clock and merges the snapshot's prices.
// Symbols absent from the snapshot keep their last known price so open
// positions stay valued.
func (s *simulationState) observe(snapshot types.MarketSnapshot) {
	s.curTime = snapshot.Timestamp
	for symbol, price := range snapshot.Prices {
		s.prices[symbol] = price
	}
}

// applyFill updates cash and positions by exactly the fill's quantity and
// value, and appends the fill to the log.
func (s *simulationState) applyFill(fill types.Fill) error {
	value := fill.Price.Mul(fill.Quantity)

	switch fill.Side {
	case types.SideTypeBuy:
		s.cash = s.cash.Sub(value)
		s.positions[fill.Symbol] = s.positions[fill.Symbol].Add(fill.Quantity)
	case types.SideTypeSell:
		newQty := s.positions[fill.Symbol].Sub(fill.Quantity)
		if newQty.IsNegative() {
			return ShortSellNotAllowedErr
		}
		s.cash = s.cash.Add(value)
		s.positions[fill.Symbol] = newQty
	default:
		return UnknownSideErr
	}

	s.fills = append(s.fills, fill)
	return nil
}

// totalValue is cash plus the mark-to-market value of every position at the
// latest known prices. Positions without a known price contribute zero.
func (s *simulationState) totalValue() decimal.Decimal {
	value := s.cash
	for symbol, qty := range s.positions {
		price, ok := s.prices[symbol]
		if !ok {
			continue
		}
		value = value.Add(qty.Mul(price))
	}
	return value
}

func (s *simulationState) view() types.PortfolioView {
	positions := make(map[string]decimal.Decimal, len(s.positions))
	for symbol, qty := range s.positions {
		positions[symbol] = qty
	}
	prices := make(map[string]decimal.Decimal, len(s.prices))
	for symbol, price := range s.prices {
		prices[symbol] = price
	}
	return types.PortfolioView{
		Cash:      s.cash,
		Positions: positions,
		Prices:    prices,
		Time:      s.curTime,
	}
}

func (s *simulationState) positionSnapshot() map[string]decimal.Decimal {
	snapshot := make(map[string]decimal.Decimal, len(s.positions))
	for symbol, qty := range s.positions {
		snapshot[symbol] = qty
	}
	return snapshot
}
