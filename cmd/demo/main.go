package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"stock-screener/internal/config"
	"stock-screener/internal/data"
	"stock-screener/internal/model"
	"stock-screener/internal/screener"
	"stock-screener/internal/valuation"
)

// Demo:
// - Load stock snapshots from sample_snapshots.json (built-in fallback set
//   if the file is missing)
// - Value each one with the DCF / Graham / Monte Carlo blend
// - Run a screening pass over the whole set to show how models fit together
func main() {
	dataPath := flag.String("data", "sample_snapshots.json", "Path to snapshot fixture JSON")
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	seed := flag.Int64("seed", 42, "Monte Carlo seed for reproducible runs")
	outCSV := flag.String("out", "", "Optional path to write records CSV (e.g. results/screen.csv)")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		cfg = loaded
	}
	cfg.MonteCarlo.Seed = *seed

	var provider *data.FixtureProvider
	if _, err := os.Stat(*dataPath); err == nil {
		provider, err = data.LoadFixtureProvider(*dataPath)
		if err != nil {
			panic(err)
		}
		fmt.Printf("Loaded %d snapshots from %s\n\n", len(provider.Tickers()), *dataPath)
	} else {
		provider = data.NewFixtureProvider(sampleSnapshots())
		fmt.Printf("No fixture file at %s; using %d built-in snapshots\n\n", *dataPath, len(provider.Tickers()))
	}

	calc := valuation.NewCalculator(cfg)
	calc.SetRand(rand.New(rand.NewSource(*seed)))

	ctx := context.Background()
	for _, ticker := range provider.Tickers() {
		snap, err := provider.Snapshot(ctx, ticker)
		if err != nil {
			panic(err)
		}
		res, err := calc.Valuate(snap)
		if err != nil {
			fmt.Printf("%-6s valuation failed: %v\n", ticker, err)
			continue
		}
		fmt.Printf(
			"%-6s price=%8.2f  dcf=%8.2f  graham=%8.2f  mc=%8.2f  fair=%8.2f  diff=%6.2f%%\n",
			res.Ticker,
			res.CurrentPrice,
			res.DCFValue,
			res.GrahamNumber,
			res.MonteCarloValue,
			res.FairPrice,
			model.PercentDifference(res.FairPrice, res.CurrentPrice),
		)
	}

	fmt.Println("\nScreening the full set...")
	scr := screener.New(provider, calc)
	report, err := scr.Run(ctx, provider.Tickers())
	if err != nil {
		panic(err)
	}

	fmt.Printf("\nTotal skipped tickers: %d\n", report.Skipped)
	fmt.Println("Tickers with Percentage Difference Over 1 Standard Deviations:")
	for _, r := range report.Outliers {
		fmt.Printf("%s: Current Price = $%.2f, Fair Price = $%.2f, Percentage Difference = %.2f%%\n",
			r.Ticker, r.CurrentPrice, r.FairPrice, r.PercentDiff)
	}

	if *outCSV != "" {
		if err := screener.WriteRecordsCSV(*outCSV, report.Records); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}

	fmt.Printf("\nDone. Retained %d of %d tickers.\n", len(report.Records), len(provider.Tickers()))
}

// sampleSnapshots is a small fixed universe so the demo runs offline.
// Figures are plausible but not live quotes.
func sampleSnapshots() []model.StockSnapshot {
	return []model.StockSnapshot{
		{
			Ticker:            "AAPL",
			CompanyName:       "Apple Inc.",
			CurrentPrice:      192.50,
			FreeCashFlow:      99_584_000_000,
			SharesOutstanding: 15_550_000_000,
			EPS:               6.13,
			BookValue:         4.00,
			Sector:            "Technology",
		},
		{
			Ticker:            "MSFT",
			CompanyName:       "Microsoft Corporation",
			CurrentPrice:      415.30,
			FreeCashFlow:      70_583_000_000,
			SharesOutstanding: 7_430_000_000,
			EPS:               11.53,
			BookValue:         32.00,
			Sector:            "Technology",
		},
		{
			Ticker:            "JNJ",
			CompanyName:       "Johnson & Johnson",
			CurrentPrice:      158.10,
			FreeCashFlow:      17_773_000_000,
			SharesOutstanding: 2_410_000_000,
			EPS:               5.20,
			BookValue:         30.00,
			Sector:            "Healthcare",
		},
		{
			Ticker:            "JPM",
			CompanyName:       "JPMorgan Chase & Co.",
			CurrentPrice:      198.40,
			FreeCashFlow:      15_000_000_000,
			SharesOutstanding: 2_880_000_000,
			EPS:               16.23,
			BookValue:         104.45,
			Sector:            "Financials",
		},
		{
			Ticker:            "XOM",
			CompanyName:       "Exxon Mobil Corporation",
			CurrentPrice:      113.90,
			FreeCashFlow:      36_100_000_000,
			SharesOutstanding: 3_980_000_000,
			EPS:               8.89,
			BookValue:         51.00,
			Sector:            "Energy",
		},
		{
			Ticker:            "PG",
			CompanyName:       "The Procter & Gamble Company",
			CurrentPrice:      166.20,
			FreeCashFlow:      14_300_000_000,
			SharesOutstanding: 2_360_000_000,
			EPS:               6.02,
			BookValue:         19.80,
			Sector:            "Consumer Staples",
		},
	}
}
