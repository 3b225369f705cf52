package screener

import (
	"math"

	"stock-screener/internal/model"
)

// Stats summarizes the percent-difference distribution of a screening
// run. Mean and StdDev are computed over records with a strictly
// positive percent difference; StdDev is the population (not sample)
// standard deviation.
type Stats struct {
	Positive  int     `json:"positive"`
	Mean      float64 `json:"mean"`
	StdDev    float64 `json:"std_dev"`
	Threshold float64 `json:"threshold"`
}

// AboveThreshold returns the records whose percent difference exceeds
// mean + one standard deviation, preserving input order. With no
// positive-difference records it returns an empty list and zero stats
// rather than computing statistics on an empty set.
func AboveThreshold(records []model.ScreeningRecord) ([]model.ScreeningRecord, Stats) {
	positives := make([]float64, 0, len(records))
	for _, r := range records {
		if r.PercentDiff > 0 {
			positives = append(positives, r.PercentDiff)
		}
	}
	if len(positives) == 0 {
		return []model.ScreeningRecord{}, Stats{}
	}

	sum := 0.0
	for _, v := range positives {
		sum += v
	}
	mean := sum / float64(len(positives))

	variance := 0.0
	for _, v := range positives {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(positives))

	stats := Stats{
		Positive:  len(positives),
		Mean:      mean,
		StdDev:    math.Sqrt(variance),
	}
	stats.Threshold = stats.Mean + stats.StdDev

	out := make([]model.ScreeningRecord, 0, len(records))
	for _, r := range records {
		if r.PercentDiff > stats.Threshold {
			out = append(out, r)
		}
	}
	return out, stats
}
