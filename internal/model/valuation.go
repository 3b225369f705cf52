package model

// ValuationResult is the outcome of running the full pipeline for one
// ticker. Computed, reported, discarded; nothing is persisted.
type ValuationResult struct {
	Ticker          string  `json:"ticker"`
	CurrentPrice    float64 `json:"current_price"`
	DCFValue        float64 `json:"dcf_value"`
	GrahamNumber    float64 `json:"graham_number"`
	MonteCarloValue float64 `json:"monte_carlo_value"`
	FairPrice       float64 `json:"fair_price"`
	Sector          string  `json:"sector,omitempty"`
}

// ScreeningRecord is one retained row of a screening run.
//
// PercentDiff = (fair - current) / fair * 100. The denominator is the
// fair price, not the current price; the outlier thresholds are
// calibrated to this form, so keep it.
type ScreeningRecord struct {
	Ticker       string  `json:"ticker"`
	CurrentPrice float64 `json:"current_price"`
	FairPrice    float64 `json:"fair_price"`
	PercentDiff  float64 `json:"percent_difference"`
}

// PercentDifference computes the screening percent difference for a
// fair/current price pair. Callers must ensure fair != 0.
func PercentDifference(fair, current float64) float64 {
	return (fair - current) / fair * 100
}
