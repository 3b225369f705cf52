// Package screener runs the valuation pipeline across a ticker universe
// and reports tickers whose undervaluation is more than one standard
// deviation above the population mean.
package screener

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"stock-screener/internal/data"
	"stock-screener/internal/model"
	"stock-screener/internal/valuation"
)

// Screener screens a ticker universe sequentially, one blocking fetch at
// a time. Results and progress output follow input ticker order.
type Screener struct {
	provider data.Provider
	calc     *valuation.Calculator
	out      io.Writer
}

// Report is the outcome of one screening run.
type Report struct {
	// Records holds the retained tickers in input order.
	Records []model.ScreeningRecord `json:"records"`
	// Outliers are the records above mean + one standard deviation,
	// still in input order.
	Outliers []model.ScreeningRecord `json:"outliers"`
	Stats    Stats                   `json:"stats"`
	Skipped  int                     `json:"skipped"`
}

// New creates a screener writing progress lines to stdout.
func New(provider data.Provider, calc *valuation.Calculator) *Screener {
	return &Screener{
		provider: provider,
		calc:     calc,
		out:      os.Stdout,
	}
}

// SetOutput redirects progress output, e.g. to io.Discard for API runs
// or a buffer in tests.
func (s *Screener) SetOutput(w io.Writer) {
	s.out = w
}

// Run screens the given tickers. Per-ticker failures are logged and
// counted as skips; they never abort the scan. The returned report's
// outlier list is empty when no retained record has a positive percent
// difference.
func (s *Screener) Run(ctx context.Context, tickers []string) (*Report, error) {
	records := make([]model.ScreeningRecord, 0, len(tickers))
	skipped := 0

	for _, ticker := range tickers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("screening canceled: %w", err)
		}

		snap, err := s.provider.Snapshot(ctx, ticker)
		if err != nil {
			log.Printf("[Screener] %s: %v", ticker, err)
			fmt.Fprintf(s.out, "Price data not available for %s. Skipping.\n", ticker)
			skipped++
			continue
		}

		res, err := s.calc.Valuate(snap)
		if err != nil {
			log.Printf("[Screener] %s: %v", ticker, err)
			fmt.Fprintf(s.out, "Fair price is negative or not available for %s. Skipping.\n", ticker)
			skipped++
			continue
		}

		// A fair price of zero would make the percent difference
		// undefined; fold it into the negative/unavailable skip.
		if res.FairPrice <= 0 {
			fmt.Fprintf(s.out, "Fair price is negative or not available for %s. Skipping.\n", ticker)
			skipped++
			continue
		}

		pct := model.PercentDifference(res.FairPrice, res.CurrentPrice)

		fmt.Fprintf(s.out, "%s: Current Price = $%.2f, Fair Price = $%.2f, Percentage Difference = %.2f%%\n",
			ticker, res.CurrentPrice, res.FairPrice, pct)

		if pct < 0 {
			fmt.Fprintf(s.out, "Skipping %s: Fair price is less than current price.\n", ticker)
			skipped++
			continue
		}

		records = append(records, model.ScreeningRecord{
			Ticker:       ticker,
			CurrentPrice: res.CurrentPrice,
			FairPrice:    res.FairPrice,
			PercentDiff:  pct,
		})
	}

	outliers, stats := AboveThreshold(records)

	return &Report{
		Records:  records,
		Outliers: outliers,
		Stats:    stats,
		Skipped:  skipped,
	}, nil
}
