// Package config loads the YAML run configuration for the backtester CLI.
package config

import (
	"fmt"
	"os"
	"time"

	"foliosim/types"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for a backtest run.
type Config struct {
	Database Database `yaml:"database"`
	Backtest Backtest `yaml:"backtest"`
	Strategy Strategy `yaml:"strategy"`
	Report   Report   `yaml:"report"`
	Logging  Logging  `yaml:"logging"`
}

// Database holds the market-data store connection.
type Database struct {
	URL string `yaml:"url"`
}

// Backtest holds the run parameters: which symbols, over which dates, with
// how much starting cash.
type Backtest struct {
	Symbols     []string `yaml:"symbols"`
	Start       string   `yaml:"start"` // 2006-01-02
	End         string   `yaml:"end"`   // 2006-01-02
	InitialCash string   `yaml:"initial_cash"`
}

// Strategy selects and parameterizes the strategy. Kind is "buyhold" or
// "rebalance"; Frequency and Tolerance only apply to "rebalance".
type Strategy struct {
	Kind      string             `yaml:"kind"`
	Weights   map[string]float64 `yaml:"weights"`
	Frequency string             `yaml:"frequency"`
	Tolerance float64            `yaml:"tolerance"`
}

// Report configures metric computation and optional CSV exports.
type Report struct {
	RiskFreeRate   float64 `yaml:"risk_free_rate"`
	PeriodsPerYear int     `yaml:"periods_per_year"`
	EquityCSV      string  `yaml:"equity_csv"`
	FillsCSV       string  `yaml:"fills_csv"`
}

// Logging configures the application logger.
type Logging struct {
	Level string `yaml:"level"`
}

// Load reads and validates the YAML configuration file at the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("database.url is required")
	}
	if len(c.Backtest.Symbols) == 0 {
		return fmt.Errorf("backtest.symbols is required")
	}
	if _, err := c.StartTime(); err != nil {
		return fmt.Errorf("backtest.start: %w", err)
	}
	if _, err := c.EndTime(); err != nil {
		return fmt.Errorf("backtest.end: %w", err)
	}
	switch c.Strategy.Kind {
	case "buyhold", "rebalance":
	default:
		return fmt.Errorf("strategy.kind must be buyhold or rebalance, got %q", c.Strategy.Kind)
	}
	if c.Strategy.Kind == "rebalance" {
		if _, ok := types.ConvertFrequency[c.Strategy.Frequency]; !ok {
			return fmt.Errorf("strategy.frequency %q is not supported", c.Strategy.Frequency)
		}
	}
	return nil
}

func (c *Config) StartTime() (time.Time, error) {
	return time.Parse("2006-01-02", c.Backtest.Start)
}

func (c *Config) EndTime() (time.Time, error) {
	return time.Parse("2006-01-02", c.Backtest.End)
}
