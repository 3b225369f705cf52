package data

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"stock-screener/internal/model"
)

func TestSaveLoadTickerList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tickers_sp500.json")

	list := &TickerList{
		Index:     "sp500",
		UpdatedAt: "2026-08-24T00:00:00Z",
		Symbols:   []string{"MMM", "AOS", "ABT"},
	}
	if err := SaveTickerList(list, path); err != nil {
		t.Fatalf("SaveTickerList failed: %v", err)
	}

	got, err := LoadTickerList(path)
	if err != nil {
		t.Fatalf("LoadTickerList failed: %v", err)
	}
	if got.Index != "sp500" || got.UpdatedAt != list.UpdatedAt {
		t.Errorf("unexpected metadata: %+v", got)
	}
	if len(got.Symbols) != 3 || got.Symbols[0] != "MMM" {
		t.Errorf("unexpected symbols: %v", got.Symbols)
	}
}

func TestLoadTickerList_Missing(t *testing.T) {
	if _, err := LoadTickerList(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDefaultTickersPath(t *testing.T) {
	t.Setenv("TICKERS_DIR", "")
	if got := DefaultTickersPath(model.IndexSP500); got != filepath.Join("./data", "tickers_sp500.json") {
		t.Errorf("unexpected default path %q", got)
	}

	t.Setenv("TICKERS_DIR", "/tmp/universe")
	if got := DefaultTickersPath(model.IndexNasdaq100); got != filepath.Join("/tmp/universe", "tickers_nasdaq100.json") {
		t.Errorf("unexpected path %q", got)
	}
}

func TestFixtureProvider(t *testing.T) {
	provider := NewFixtureProvider([]model.StockSnapshot{
		{Ticker: "AAPL", CurrentPrice: 190},
		{Ticker: "MSFT", CurrentPrice: 415},
	})

	snap, err := provider.Snapshot(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if snap.CurrentPrice != 190 {
		t.Errorf("unexpected snapshot: %+v", snap)
	}

	if _, err := provider.Snapshot(context.Background(), "NOPE"); !errors.Is(err, model.ErrDataUnavailable) {
		t.Errorf("expected ErrDataUnavailable, got %v", err)
	}

	tickers := provider.Tickers()
	if len(tickers) != 2 || tickers[0] != "AAPL" || tickers[1] != "MSFT" {
		t.Errorf("expected input order, got %v", tickers)
	}
}
