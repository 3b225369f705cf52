package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"stock-screener/internal/data"
	"stock-screener/internal/model"

	"github.com/joho/godotenv"
)

func main() {
	var (
		indexName  = flag.String("index", "sp500", "Index to refresh: sp500, nasdaq100, dowjones, russell1000, taiwan50")
		outputPath = flag.String("output", "", "Output file path (default: ./data/tickers_<index>.json)")
	)
	flag.Parse()

	_ = godotenv.Load()

	index, err := model.ParseIndex(*indexName)
	if err != nil {
		log.Fatalf("Invalid index: %v", err)
	}

	if *outputPath == "" {
		*outputPath = data.DefaultTickersPath(index)
	}

	client := data.NewIndexClient("")

	fmt.Printf("Updating tickers for %s from %s\n", index.DisplayName(), data.IndexSourceURL(index))

	tickers, err := client.Tickers(context.Background(), index)
	if err != nil {
		log.Fatalf("Failed to fetch tickers: %v", err)
	}

	fmt.Printf("Found %d tickers\n", len(tickers))

	list := &data.TickerList{
		Index:     string(index),
		UpdatedAt: time.Now().Format(time.RFC3339),
		Symbols:   tickers,
	}

	if err := data.SaveTickerList(list, *outputPath); err != nil {
		log.Fatalf("Failed to save tickers: %v", err)
	}

	fmt.Printf("Saved %d tickers to %s\n", len(tickers), *outputPath)
}
