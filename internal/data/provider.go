package data

import (
	"context"

	"stock-screener/internal/model"
)

// Provider is the narrow seam between the valuation/screening logic and
// the market-data source: one ticker in, one snapshot out. Production
// code uses YahooClient; tests and the offline demo use FixtureProvider.
type Provider interface {
	Snapshot(ctx context.Context, ticker string) (*model.StockSnapshot, error)
}
