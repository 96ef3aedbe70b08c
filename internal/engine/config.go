package engine

import (
	"github.com/shopspring/decimal"
)

type PortfolioConfig struct {
	initialCash decimal.Decimal
}

func NewPortfolioConfig(initialCash decimal.Decimal) *PortfolioConfig {
	return &PortfolioConfig{
		initialCash: initialCash,
	}
}

type ReportingConfig struct {
	sharpeRiskFreeRate decimal.Decimal
	periodsPerYear     int
}

// NewReportingConfig configures metric computation. periodsPerYear is the
// annualization factor for volatility and Sharpe; 252 fits daily bars.
// Values <= 0 fall back to 252.
func NewReportingConfig(sharpeRiskFreeRate decimal.Decimal, periodsPerYear int) *ReportingConfig {
	if periodsPerYear <= 0 {
		periodsPerYear = 252
	}
	return &ReportingConfig{
		sharpeRiskFreeRate: sharpeRiskFreeRate,
		periodsPerYear:     periodsPerYear,
	}
}
