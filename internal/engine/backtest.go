package engine

import (
	"time"

	"foliosim/types"

	"github.com/schollz/progressbar/v3"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Engine replays a driver's snapshot sequence through a strategy and an
// execution model, tracking the portfolio as it goes. One Engine instance
// runs one backtest: the driver is not restartable and the strategy carries
// private state, so a new run needs fresh instances of all three.
type Engine struct {
	driver          driver
	strategy        Strategy
	execution       executionModel
	portfolioConfig *PortfolioConfig
	reportingConfig *ReportingConfig
	state           *simulationState
	log             *zap.Logger
}

func NewEngine(
	d driver,
	strat Strategy,
	execution executionModel,
	portfolioConfig *PortfolioConfig,
	reportingConfig *ReportingConfig,
	log *zap.Logger,
) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		driver:          d,
		strategy:        strat,
		execution:       execution,
		portfolioConfig: portfolioConfig,
		reportingConfig: reportingConfig,
		state:           newSimulationState(portfolioConfig.initialCash),
		log:             log,
	}
}

// Run drives the simulation to driver exhaustion and assembles the result.
//
// Per step: pull the next snapshot, advance the state's clock and prices,
// ask the strategy for orders against the updated state (so decisions only
// ever see prices known at or before the current step), route each order
// through the execution model in the order the strategy returned them, apply
// the fills, and record equity and positions. A no-fill moves on to the next
// order in the same step; an execution or bookkeeping error aborts the run.
// Given identical driver output and configuration the run is fully
// deterministic.
func (e *Engine) Run() (*types.BacktestResult, error) {
	bar := initProgressBar(e.driverLen())
	e.log.Info("starting backtest",
		zap.String("initial_cash", e.portfolioConfig.initialCash.String()))

	var timestamps []time.Time
	var equityCurve []decimal.Decimal
	var positionSnapshots []map[string]decimal.Decimal

	for {
		snapshot, ok := e.driver.Next()
		if !ok {
			break
		}
		e.state.observe(snapshot)

		orders := e.strategy.GenerateOrders(e.state.view())
		for _, order := range orders {
			fill, filled, err := e.execution.Execute(order, snapshot)
			if err != nil {
				return nil, err
			}
			if !filled {
				continue
			}
			if err := e.state.applyFill(fill); err != nil {
				return nil, err
			}
		}

		timestamps = append(timestamps, e.state.curTime)
		equityCurve = append(equityCurve, e.state.totalValue())
		positionSnapshots = append(positionSnapshots, e.state.positionSnapshot())
		bar.Add(1)
	}

	result := e.buildResult(timestamps, equityCurve, positionSnapshots)
	e.log.Info("backtest complete",
		zap.Int("steps", len(equityCurve)),
		zap.Int("fills", len(result.Fills)),
		zap.String("final_value", result.FinalValue.String()))
	return result, nil
}

// driverLen reports the total step count when the driver knows it, -1
// otherwise (renders as a spinner).
func (e *Engine) driverLen() int {
	if sized, ok := e.driver.(interface{ Len() int }); ok {
		return sized.Len()
	}
	return -1
}

func initProgressBar(maxTicks int) *progressbar.ProgressBar {
	return progressbar.NewOptions(maxTicks,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetDescription("Backtesting in progress..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
