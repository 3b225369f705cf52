package data

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"stock-screener/internal/model"
)

// SnapshotFile is the JSON shape of a snapshot fixture file.
type SnapshotFile struct {
	UpdatedAt string                `json:"updated_at"`
	Snapshots []model.StockSnapshot `json:"snapshots"`
}

// LoadSnapshots loads a snapshot fixture file.
func LoadSnapshots(path string) (*SnapshotFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f SnapshotFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// FixtureProvider serves snapshots from a fixed in-memory set. It
// implements Provider for the offline demo and for tests, keeping the
// valuation and screening logic runnable without network access.
type FixtureProvider struct {
	byTicker map[string]model.StockSnapshot
	order    []string
}

// NewFixtureProvider builds a provider over a snapshot slice.
func NewFixtureProvider(snaps []model.StockSnapshot) *FixtureProvider {
	p := &FixtureProvider{
		byTicker: make(map[string]model.StockSnapshot, len(snaps)),
		order:    make([]string, 0, len(snaps)),
	}
	for _, s := range snaps {
		if _, dup := p.byTicker[s.Ticker]; !dup {
			p.order = append(p.order, s.Ticker)
		}
		p.byTicker[s.Ticker] = s
	}
	return p
}

// LoadFixtureProvider builds a provider from a snapshot fixture file.
func LoadFixtureProvider(path string) (*FixtureProvider, error) {
	f, err := LoadSnapshots(path)
	if err != nil {
		return nil, err
	}
	return NewFixtureProvider(f.Snapshots), nil
}

// Snapshot returns the fixture for a ticker, or ErrDataUnavailable.
func (p *FixtureProvider) Snapshot(_ context.Context, ticker string) (*model.StockSnapshot, error) {
	s, ok := p.byTicker[ticker]
	if !ok {
		return nil, fmt.Errorf("no fixture for %s: %w", ticker, model.ErrDataUnavailable)
	}
	out := s
	return &out, nil
}

// Tickers returns the fixture tickers in file order.
func (p *FixtureProvider) Tickers() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}
