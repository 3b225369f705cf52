package models

// ValueRequest is the request body for running a single-ticker valuation.
// Unset rate/horizon fields fall back to the server's configuration.
type ValueRequest struct {
	Ticker          string   `json:"ticker" binding:"required"`
	InflationRate   *float64 `json:"inflation_rate,omitempty"`
	GrowthRate      *float64 `json:"growth_rate,omitempty"`
	DiscountRate    *float64 `json:"discount_rate,omitempty"`
	ProjectionYears *int     `json:"projection_years,omitempty"`
}

// ScreenRequest is the request body for screening an index.
type ScreenRequest struct {
	Index string `json:"index" binding:"required"`

	// Tickers overrides the scraped universe when provided; useful for
	// partial scans and offline runs.
	Tickers []string `json:"tickers,omitempty"`

	// Limit caps the number of tickers screened (0 = all).
	Limit int `json:"limit,omitempty"`

	// IncludeRecords includes every retained record in the response,
	// not just the outliers.
	IncludeRecords bool `json:"include_records,omitempty"`
}
