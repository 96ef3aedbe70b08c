package engine

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"foliosim/types"
)

// WriteEquityCurveCSVFile writes the equity curve to a CSV file at the given path.
func WriteEquityCurveCSVFile(path string, result *types.BacktestResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create equity file: %w", err)
	}
	defer f.Close()

	return WriteEquityCurveCSV(f, result)
}

// WriteEquityCurveCSV writes the equity curve to any io.Writer as CSV.
// You can pass os.Stdout for debugging, or a file.
func WriteEquityCurveCSV(w io.Writer, result *types.BacktestResult) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"timestamp", // RFC3339
		"equity",
		"period_return",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, ts := range result.Timestamps {
		periodReturn := ""
		if i > 0 && i-1 < len(result.PeriodReturns) {
			periodReturn = result.PeriodReturns[i-1].String()
		}
		row := []string{
			ts.Format(time.RFC3339),
			result.EquityCurve[i].String(),
			periodReturn,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write equity row %d: %w", i, err)
		}
	}
	return nil
}

// WriteFillsCSVFile writes the fill log to a CSV file at the given path.
func WriteFillsCSVFile(path string, result *types.BacktestResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create fills file: %w", err)
	}
	defer f.Close()

	return WriteFillsCSV(f, result)
}

// WriteFillsCSV writes the fill log to any io.Writer as CSV.
func WriteFillsCSV(w io.Writer, result *types.BacktestResult) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"timestamp", // RFC3339
		"symbol",
		"side",
		"quantity",
		"price",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, fill := range result.Fills {
		row := []string{
			fill.Timestamp.Format(time.RFC3339),
			fill.Symbol,
			string(fill.Side),
			fill.Quantity.String(),
			fill.Price.String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write fill row %d: %w", i, err)
		}
	}
	return nil
}
