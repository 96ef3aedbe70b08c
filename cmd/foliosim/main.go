package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"foliosim/internal/config"
	"foliosim/internal/engine"
	"foliosim/internal/repository"
	"foliosim/strategies/allocation"
	"foliosim/types"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the run configuration")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	logger, err := newLogger(cfg.Logging.Level)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("backtest failed", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	zapCfg := zap.NewDevelopmentConfig()
	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, fmt.Errorf("logging.level: %w", err)
		}
		zapCfg.Level = lvl
	}
	return zapCfg.Build()
}

func run(cfg *config.Config, logger *zap.Logger) error {
	db, err := repository.NewDatabase(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("connect datasource: %w", err)
	}
	defer db.Close()

	start, _ := cfg.StartTime()
	end, _ := cfg.EndTime()

	timestamps, series, err := loadAlignedSeries(&db, cfg.Backtest.Symbols, start, end, logger)
	if err != nil {
		return err
	}

	driver, err := engine.NewHistoricalDriver(timestamps, series)
	if err != nil {
		return err
	}

	strat, err := buildStrategy(cfg.Strategy)
	if err != nil {
		return err
	}

	initialCash, err := decimal.NewFromString(cfg.Backtest.InitialCash)
	if err != nil {
		return fmt.Errorf("backtest.initial_cash: %w", err)
	}

	eng := engine.NewEngine(
		driver,
		strat,
		engine.NewInstantFill(),
		engine.NewPortfolioConfig(initialCash),
		engine.NewReportingConfig(decimal.NewFromFloat(cfg.Report.RiskFreeRate), cfg.Report.PeriodsPerYear),
		logger,
	)

	result, err := eng.Run()
	if err != nil {
		return err
	}

	printResult(result)

	if cfg.Report.EquityCSV != "" {
		if err := engine.WriteEquityCurveCSVFile(cfg.Report.EquityCSV, result); err != nil {
			return err
		}
	}
	if cfg.Report.FillsCSV != "" {
		if err := engine.WriteFillsCSVFile(cfg.Report.FillsCSV, result); err != nil {
			return err
		}
	}
	return nil
}

// loadAlignedSeries fetches every symbol's daily closes and inner-joins them
// on timestamp into the driver's input shape.
func loadAlignedSeries(
	db *repository.Database,
	symbols []string,
	start, end time.Time,
	logger *zap.Logger,
) ([]time.Time, map[string][]decimal.Decimal, error) {
	ctx := context.Background()

	series := make(map[string][]repository.PricePoint, len(symbols))
	for _, symbol := range symbols {
		asset, err := db.GetAssetByTicker(symbol, ctx)
		if err != nil {
			return nil, nil, err
		}
		points, err := db.GetDailyCloses(asset.Id, start, end, ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("load closes for %s: %w", symbol, err)
		}
		logger.Debug("loaded price series",
			zap.String("symbol", symbol),
			zap.Int("points", len(points)))
		series[symbol] = points
	}

	timestamps, aligned, err := repository.AlignSeries(series)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("aligned price series",
		zap.Int("symbols", len(aligned)),
		zap.Int("steps", len(timestamps)))
	return timestamps, aligned, nil
}

func buildStrategy(cfg config.Strategy) (engine.Strategy, error) {
	weights := make(map[string]decimal.Decimal, len(cfg.Weights))
	for symbol, weight := range cfg.Weights {
		weights[symbol] = decimal.NewFromFloat(weight)
	}

	switch cfg.Kind {
	case "buyhold":
		strat, err := allocation.NewBuyAndHold(weights)
		if err != nil {
			return nil, err
		}
		return strat, nil
	case "rebalance":
		frequency := types.ConvertFrequency[cfg.Frequency]
		strat, err := allocation.NewRebalancing(weights, frequency, decimal.NewFromFloat(cfg.Tolerance))
		if err != nil {
			return nil, err
		}
		return strat, nil
	}
	return nil, fmt.Errorf("unknown strategy kind %q", cfg.Kind)
}

func printResult(result *types.BacktestResult) {
	fmt.Println("===== Backtest Report =====")
	if len(result.Timestamps) > 0 {
		fmt.Printf("Start Date:            %s\n", result.Timestamps[0].Format("2006-01-02"))
		fmt.Printf("End Date:              %s\n", result.Timestamps[len(result.Timestamps)-1].Format("2006-01-02"))
	}
	fmt.Printf("Steps:                 %d\n", len(result.EquityCurve))
	fmt.Printf("Fills:                 %d\n", len(result.Fills))

	fmt.Println("\n-- Performance --")
	fmt.Printf("Initial Value:         %s\n", result.InitialValue)
	fmt.Printf("Final Value:           %s\n", result.FinalValue)
	fmt.Printf("Total Return:          %s\n", result.Metrics[types.MetricTotalReturn])
	fmt.Printf("CAGR:                  %s\n", result.Metrics[types.MetricCAGR])

	fmt.Println("\n-- Risk --")
	fmt.Printf("Volatility:            %s\n", result.Metrics[types.MetricVolatility])
	fmt.Printf("Sharpe Ratio:          %s\n", result.Metrics[types.MetricSharpeRatio])
	fmt.Printf("Max Drawdown:          %s\n", result.Metrics[types.MetricMaxDrawdown])

	fmt.Println("===========================")
}
