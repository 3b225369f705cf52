package valuation

import (
	"log"
	"math"

	"stock-screener/internal/model"
)

// GrahamNumber combines EPS and book value per share with the
// sector-average price multiples into a single heuristic valuation:
//
//	sqrt(avgPE * EPS * avgPB * bookValue)
//
// Non-positive EPS or book value is substituted with 1 so the product
// stays positive. That substitution is a guard, not a financially
// rigorous treatment; it is kept for continuity and flagged with a
// warning instead of being corrected.
func (c *Calculator) GrahamNumber(snap *model.StockSnapshot) float64 {
	eps := snap.EPS
	book := snap.BookValue

	if eps <= 0 || book <= 0 {
		log.Printf("[Valuation] Warning: EPS or book value is non-positive for %s; computing Graham number with available data",
			snap.Ticker)
	}
	if eps <= 0 {
		eps = 1
	}
	if book <= 0 {
		book = 1
	}

	m := c.multiplesFor(snap.Sector)
	return math.Sqrt(m.AveragePE * eps * m.AveragePB * book)
}
