package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"stock-screener/internal/model"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Valuation.DiscountRate != 0.08 {
		t.Errorf("expected default discount rate 0.08, got %.4f", cfg.Valuation.DiscountRate)
	}
	if cfg.Valuation.ProjectionYears != 10 {
		t.Errorf("expected default projection years 10, got %d", cfg.Valuation.ProjectionYears)
	}
	if cfg.MonteCarlo.Simulations != 1000 {
		t.Errorf("expected 1000 simulations, got %d", cfg.MonteCarlo.Simulations)
	}
	if cfg.Weights.DCF != 0.6 || cfg.Weights.Graham != 0.3 || cfg.Weights.MonteCarlo != 0.1 {
		t.Errorf("unexpected default weights: %+v", cfg.Weights)
	}
	if len(cfg.Sectors) != 10 {
		t.Errorf("expected 10 sectors in default table, got %d", len(cfg.Sectors))
	}
	if m := cfg.Sectors["Technology"]; m.AveragePE != 25 || m.AveragePB != 5 {
		t.Errorf("unexpected Technology multiples: %+v", m)
	}
	if cfg.DefaultMultiples.AveragePE != 20 || cfg.DefaultMultiples.AveragePB != 3 {
		t.Errorf("unexpected default multiples: %+v", cfg.DefaultMultiples)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
valuation:
  discount_rate: 0.10
monte_carlo:
  seed: 42
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Valuation.DiscountRate != 0.10 {
		t.Errorf("expected discount rate 0.10, got %.4f", cfg.Valuation.DiscountRate)
	}
	if cfg.Valuation.GrowthRate != 0.05 {
		t.Errorf("expected default growth rate to survive, got %.4f", cfg.Valuation.GrowthRate)
	}
	if cfg.MonteCarlo.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.MonteCarlo.Seed)
	}
	if cfg.MonteCarlo.Simulations != 1000 {
		t.Errorf("expected default simulations to survive, got %d", cfg.MonteCarlo.Simulations)
	}
}

func TestLoad_InvalidRates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
valuation:
  growth_rate: 0.10
  discount_rate: 0.08
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, model.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for growth >= discount, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_SectorFileOverlay(t *testing.T) {
	dir := t.TempDir()

	sectorsPath := filepath.Join(dir, "sectors.yaml")
	sectors := `
sectors:
  Technology: { average_pe: 30, average_pb: 6 }
  Shipping: { average_pe: 8, average_pb: 1.1 }
`
	if err := os.WriteFile(sectorsPath, []byte(sectors), 0644); err != nil {
		t.Fatal(err)
	}

	cfgPath := filepath.Join(dir, "config.yaml")
	// The main file references the sector file by a path relative to its
	// own directory, and overrides one of its entries.
	content := `
sector_file: sectors.yaml
sectors:
  Technology: { average_pe: 40, average_pb: 7 }
`
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if m := cfg.Sectors["Technology"]; m.AveragePE != 40 || m.AveragePB != 7 {
		t.Errorf("main-file entry must override sector file, got %+v", m)
	}
	if m := cfg.Sectors["Shipping"]; m.AveragePE != 8 || m.AveragePB != 1.1 {
		t.Errorf("sector-file entry missing, got %+v", m)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero projection years", func(c *Config) { c.Valuation.ProjectionYears = 0 }},
		{"zero simulations", func(c *Config) { c.MonteCarlo.Simulations = 0 }},
		{"negative volatility", func(c *Config) { c.MonteCarlo.Volatility = -0.1 }},
		{"negative weight", func(c *Config) { c.Weights.Graham = -0.3 }},
		{"all-zero weights", func(c *Config) { c.Weights = WeightsConfig{} }},
		{"bad default multiples", func(c *Config) { c.DefaultMultiples.AveragePE = 0 }},
		{"bad sector multiples", func(c *Config) {
			c.Sectors["Energy"] = SectorMultiples{AveragePE: -1, AveragePB: 1}
		}},
	}
	for _, tc := range cases {
		cfg := Default()
		tc.mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, model.ErrInvalidParameter) {
			t.Errorf("%s: expected ErrInvalidParameter, got %v", tc.name, err)
		}
	}
}

func TestMergeSectors(t *testing.T) {
	base := map[string]SectorMultiples{
		"A": {AveragePE: 1, AveragePB: 1},
		"B": {AveragePE: 2, AveragePB: 2},
	}
	override := map[string]SectorMultiples{
		"B": {AveragePE: 9, AveragePB: 9},
		"C": {AveragePE: 3, AveragePB: 3},
	}

	out := MergeSectors(base, override)
	if len(out) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(out))
	}
	if out["B"].AveragePE != 9 {
		t.Errorf("expected override to win for B, got %+v", out["B"])
	}
	if base["B"].AveragePE != 2 {
		t.Errorf("merge must not mutate base, got %+v", base["B"])
	}
}
