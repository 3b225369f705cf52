package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"stock-screener/internal/config"
	"stock-screener/internal/data"
	"stock-screener/internal/model"
	"stock-screener/internal/screener"
	"stock-screener/internal/valuation"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "value":
		cmdValue(os.Args[2:])
	case "screen":
		cmdScreen(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli value --ticker AAPL [--inflation 0.03] [--growth 0.05] [--discount 0.08] [--years 10]")
	fmt.Println("  cli screen --index sp500 [--tickers data/tickers_sp500.json] [--out results/screen.csv]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - value blends DCF (0.6), Graham number (0.3) and Monte Carlo (0.1) into a fair price")
	fmt.Println("  - screen reports tickers more than one standard deviation above the mean undervaluation")
	fmt.Println("  - indices: sp500, nasdaq100, dowjones, russell1000, taiwan50")
}

func cmdValue(args []string) {
	fs := flag.NewFlagSet("value", flag.ExitOnError)
	ticker := fs.String("ticker", "", "Stock ticker symbol (required)")
	inflation := fs.Float64("inflation", 0.03, "Yearly inflation rate")
	growth := fs.Float64("growth", 0.05, "Expected benchmark growth rate")
	discount := fs.Float64("discount", 0.08, "Discount rate")
	years := fs.Int("years", 10, "Number of years for projection")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	seed := fs.Int64("seed", 0, "Monte Carlo seed (0 = time-based)")
	_ = fs.Parse(args)

	if *ticker == "" {
		fmt.Println("--ticker is required")
		os.Exit(2)
	}

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(2)
	}
	// Flags the user actually set win over the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "inflation":
			cfg.Valuation.InflationRate = *inflation
		case "growth":
			cfg.Valuation.GrowthRate = *growth
		case "discount":
			cfg.Valuation.DiscountRate = *discount
		case "years":
			cfg.Valuation.ProjectionYears = *years
		case "seed":
			cfg.MonteCarlo.Seed = *seed
		}
	})
	if *cfgPath == "" {
		cfg.Valuation.InflationRate = *inflation
		cfg.Valuation.GrowthRate = *growth
		cfg.Valuation.DiscountRate = *discount
		cfg.Valuation.ProjectionYears = *years
	}

	client := data.NewYahooClient("")
	snap, err := client.Snapshot(context.Background(), *ticker)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	calc := valuation.NewCalculator(cfg)
	res, err := calc.Valuate(snap)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Current price of %s: $%.2f\n", res.Ticker, res.CurrentPrice)
	fmt.Printf("The DCF value of %s is $%.2f\n", res.Ticker, res.DCFValue)
	fmt.Printf("The Graham number for %s is $%.2f\n", res.Ticker, res.GrahamNumber)
	fmt.Printf("The Monte-Carlo future move value for %s is $%.2f\n", res.Ticker, res.MonteCarloValue)
	fmt.Printf("The fair price for %s is $%.2f\n", res.Ticker, res.FairPrice)
}

func cmdScreen(args []string) {
	fs := flag.NewFlagSet("screen", flag.ExitOnError)
	index := fs.String("index", "", "Index to screen: sp500, nasdaq100, dowjones, russell1000, taiwan50 (required)")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	tickersPath := fs.String("tickers", "", "Path to a saved ticker-list JSON (skips scraping)")
	limit := fs.Int("limit", 0, "Optional: limit to first N tickers (0=all)")
	outPath := fs.String("out", "", "Optional path to write retained records CSV")
	_ = fs.Parse(args)

	if *index == "" {
		fmt.Println("--index is required")
		os.Exit(2)
	}
	idx, err := model.ParseIndex(*index)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(2)
	}

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(2)
	}

	ctx := context.Background()

	var tickers []string
	if *tickersPath != "" {
		list, err := data.LoadTickerList(*tickersPath)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		tickers = list.Symbols
	} else {
		tickers, err = data.NewIndexClient("").Tickers(ctx, idx)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}
	if *limit > 0 && *limit < len(tickers) {
		tickers = tickers[:*limit]
	}

	fmt.Printf("Screening %d tickers from %s...\n", len(tickers), idx.DisplayName())

	scr := screener.New(data.NewYahooClient(""), valuation.NewCalculator(cfg))
	report, err := scr.Run(ctx, tickers)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("\nTotal skipped tickers: %d\n", report.Skipped)
	fmt.Println("Tickers with Percentage Difference Over 1 Standard Deviations:")
	for _, r := range report.Outliers {
		fmt.Printf("%s: Current Price = $%.2f, Fair Price = $%.2f, Percentage Difference = %.2f%%\n",
			r.Ticker, r.CurrentPrice, r.FairPrice, r.PercentDiff)
	}

	if *outPath != "" {
		if err := screener.WriteRecordsCSV(*outPath, report.Records); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("\nWrote %d rows to %s\n", len(report.Records), *outPath)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
