// Package valuation implements the three fair-value estimators (DCF,
// Graham number, Monte Carlo projection) and their weighted blend.
package valuation

import (
	"math/rand"
	"time"

	"stock-screener/internal/config"
	"stock-screener/internal/model"
)

// Calculator runs the valuation pipeline for a snapshot. All tables and
// parameters are plain configuration; nothing is hidden in package
// globals, so tests can substitute their own.
type Calculator struct {
	params   config.ValuationConfig
	mc       config.MonteCarloConfig
	weights  config.WeightsConfig
	sectors  map[string]config.SectorMultiples
	fallback config.SectorMultiples

	rng *rand.Rand
}

// NewCalculator builds a calculator from config. A non-zero monte_carlo
// seed makes simulation results reproducible; seed 0 seeds from the
// clock.
func NewCalculator(cfg *config.Config) *Calculator {
	seed := cfg.MonteCarlo.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Calculator{
		params:   cfg.Valuation,
		mc:       cfg.MonteCarlo,
		weights:  cfg.Weights,
		sectors:  cfg.Sectors,
		fallback: cfg.DefaultMultiples,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// SetRand replaces the simulation's random source. Tests inject a seeded
// source here to make Monte Carlo output deterministic.
func (c *Calculator) SetRand(r *rand.Rand) {
	c.rng = r
}

// Params returns the active DCF parameters.
func (c *Calculator) Params() config.ValuationConfig { return c.params }

// Valuate runs all three estimators for a snapshot and blends them into
// a single fair price. DCF errors (invalid parameters, unusable share
// count) propagate; the Graham and Monte Carlo estimators cannot fail.
func (c *Calculator) Valuate(snap *model.StockSnapshot) (*model.ValuationResult, error) {
	dcf, err := c.DCFValue(snap)
	if err != nil {
		return nil, err
	}
	graham := c.GrahamNumber(snap)
	mc := c.MonteCarloValue(snap.CurrentPrice)

	return &model.ValuationResult{
		Ticker:          snap.Ticker,
		CurrentPrice:    snap.CurrentPrice,
		DCFValue:        dcf,
		GrahamNumber:    graham,
		MonteCarloValue: mc,
		FairPrice:       c.Blend(dcf, graham, mc),
		Sector:          snap.Sector,
	}, nil
}

func (c *Calculator) multiplesFor(sector string) config.SectorMultiples {
	if m, ok := c.sectors[sector]; ok {
		return m
	}
	return c.fallback
}
