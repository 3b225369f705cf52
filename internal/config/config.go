package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"stock-screener/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load the sector multiple table from a separate YAML file.
	// Entries in Sectors override entries loaded from SectorFile.
	SectorFile string `yaml:"sector_file"`

	Valuation  ValuationConfig            `yaml:"valuation"`
	MonteCarlo MonteCarloConfig           `yaml:"monte_carlo"`
	Weights    WeightsConfig              `yaml:"weights"`
	Sectors    map[string]SectorMultiples `yaml:"sectors"`

	// DefaultMultiples is used for sectors missing from the table
	// (including the provider's "Unknown").
	DefaultMultiples SectorMultiples `yaml:"default_multiples"`
}

// ValuationConfig holds the DCF projection parameters. Rates are
// fractional annual rates.
type ValuationConfig struct {
	InflationRate   float64 `yaml:"inflation_rate"`
	GrowthRate      float64 `yaml:"growth_rate"`
	DiscountRate    float64 `yaml:"discount_rate"`
	ProjectionYears int     `yaml:"projection_years"`
}

// MonteCarloConfig holds the price-simulation parameters. Seed 0 means
// the simulator is seeded from the clock; any other value makes runs
// reproducible.
type MonteCarloConfig struct {
	Simulations  int     `yaml:"simulations"`
	HorizonYears int     `yaml:"horizon_years"`
	Drift        float64 `yaml:"drift"`
	Volatility   float64 `yaml:"volatility"`
	Seed         int64   `yaml:"seed"`
}

// WeightsConfig holds the blend weights. They are applied as-is, without
// normalization.
type WeightsConfig struct {
	DCF        float64 `yaml:"dcf"`
	Graham     float64 `yaml:"graham"`
	MonteCarlo float64 `yaml:"monte_carlo"`
}

// SectorMultiples are the sector-average price multiples used by the
// Graham estimator.
type SectorMultiples struct {
	AveragePE float64 `yaml:"average_pe" json:"average_pe"`
	AveragePB float64 `yaml:"average_pb" json:"average_pb"`
}

// Default returns the built-in configuration matching the documented
// defaults.
func Default() *Config {
	return &Config{
		Valuation: ValuationConfig{
			InflationRate:   0.03,
			GrowthRate:      0.05,
			DiscountRate:    0.08,
			ProjectionYears: 10,
		},
		MonteCarlo: MonteCarloConfig{
			Simulations:  1000,
			HorizonYears: 10,
			Drift:        0.10,
			Volatility:   0.20,
			Seed:         0,
		},
		Weights: WeightsConfig{
			DCF:        0.6,
			Graham:     0.3,
			MonteCarlo: 0.1,
		},
		Sectors: map[string]SectorMultiples{
			"Technology":             {AveragePE: 25, AveragePB: 5},
			"Healthcare":             {AveragePE: 20, AveragePB: 4},
			"Financials":             {AveragePE: 15, AveragePB: 1.5},
			"Consumer Discretionary": {AveragePE: 18, AveragePB: 3},
			"Consumer Staples":       {AveragePE: 17, AveragePB: 2.5},
			"Energy":                 {AveragePE: 10, AveragePB: 1.2},
			"Utilities":              {AveragePE: 19, AveragePB: 2.2},
			"Materials":              {AveragePE: 12, AveragePB: 1.8},
			"Industrials":            {AveragePE: 16, AveragePB: 2.0},
			"Real Estate":            {AveragePE: 22, AveragePB: 3.5},
		},
		DefaultMultiples: SectorMultiples{AveragePE: 20, AveragePB: 3},
	}
}

// Load reads, merges and validates a config file. Unset sections fall
// back to the built-in defaults.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, err
	}
	// If sector_file is set, load it and keep any explicit entries from
	// the main file as overrides.
	if c.SectorFile != "" {
		sectorPath := c.SectorFile
		if !filepath.IsAbs(sectorPath) {
			// Prefer interpreting relative paths as relative to the config
			// file directory, but fall back to the provided path if that
			// doesn't exist.
			cand := filepath.Join(filepath.Dir(path), sectorPath)
			if _, err := os.Stat(cand); err == nil {
				sectorPath = cand
			}
		}
		loaded, err := loadSectorFile(sectorPath)
		if err != nil {
			return nil, err
		}
		c.Sectors = MergeSectors(loaded, c.Sectors)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	v := c.Valuation
	if v.DiscountRate <= v.GrowthRate {
		return fmt.Errorf("discount rate (%.4f) must be greater than growth rate (%.4f): %w",
			v.DiscountRate, v.GrowthRate, model.ErrInvalidParameter)
	}
	if v.ProjectionYears <= 0 {
		return fmt.Errorf("projection years must be positive: %w", model.ErrInvalidParameter)
	}
	if v.InflationRate <= -1 {
		return fmt.Errorf("inflation rate must be greater than -1: %w", model.ErrInvalidParameter)
	}
	mc := c.MonteCarlo
	if mc.Simulations <= 0 {
		return fmt.Errorf("monte carlo simulations must be positive: %w", model.ErrInvalidParameter)
	}
	if mc.HorizonYears <= 0 {
		return fmt.Errorf("monte carlo horizon must be positive: %w", model.ErrInvalidParameter)
	}
	if mc.Volatility < 0 {
		return fmt.Errorf("monte carlo volatility cannot be negative: %w", model.ErrInvalidParameter)
	}
	w := c.Weights
	if w.DCF < 0 || w.Graham < 0 || w.MonteCarlo < 0 {
		return fmt.Errorf("blend weights cannot be negative: %w", model.ErrInvalidParameter)
	}
	if w.DCF+w.Graham+w.MonteCarlo <= 0 {
		return fmt.Errorf("blend weights must sum to a positive value: %w", model.ErrInvalidParameter)
	}
	if c.DefaultMultiples.AveragePE <= 0 || c.DefaultMultiples.AveragePB <= 0 {
		return fmt.Errorf("default sector multiples must be positive: %w", model.ErrInvalidParameter)
	}
	for sector, m := range c.Sectors {
		if m.AveragePE <= 0 || m.AveragePB <= 0 {
			return fmt.Errorf("sector %q multiples must be positive: %w", sector, model.ErrInvalidParameter)
		}
	}
	return nil
}

type sectorFileWrapper struct {
	Sectors map[string]SectorMultiples `yaml:"sectors"`
}

func loadSectorFile(path string) (map[string]SectorMultiples, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var w sectorFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return nil, err
	}
	return w.Sectors, nil
}

// MergeSectors overlays override entries onto base, returning a new map.
func MergeSectors(base, override map[string]SectorMultiples) map[string]SectorMultiples {
	out := make(map[string]SectorMultiples, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}
