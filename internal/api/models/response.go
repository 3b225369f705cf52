package models

import (
	"stock-screener/internal/model"
	"stock-screener/internal/screener"
)

// ValuationResponse is the response for a single-ticker valuation.
type ValuationResponse struct {
	Ticker          string  `json:"ticker"`
	CurrentPrice    float64 `json:"current_price"`
	DCFValue        float64 `json:"dcf_value"`
	GrahamNumber    float64 `json:"graham_number"`
	MonteCarloValue float64 `json:"monte_carlo_value"`
	FairPrice       float64 `json:"fair_price"`
	Sector          string  `json:"sector,omitempty"`
}

// ScreenResponse is the response for a screening run.
type ScreenResponse struct {
	ID       string                  `json:"id"`
	Index    string                  `json:"index"`
	Summary  ScreenSummary           `json:"summary"`
	Outliers []model.ScreeningRecord `json:"outliers"`
	Records  []model.ScreeningRecord `json:"records,omitempty"`
}

// ScreenSummary aggregates one screening run.
type ScreenSummary struct {
	TotalTickers int            `json:"total_tickers"`
	Retained     int            `json:"retained"`
	Skipped      int            `json:"skipped"`
	Stats        screener.Stats `json:"stats"`
}

// IndexInfo describes one supported market index.
type IndexInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Source string `json:"source"`
}

// SectorInfo describes the price multiples used for one sector.
type SectorInfo struct {
	Sector    string  `json:"sector"`
	AveragePE float64 `json:"average_pe"`
	AveragePB float64 `json:"average_pb"`
}

// HistoryResponse is the response for a historical close series.
type HistoryResponse struct {
	Ticker string             `json:"ticker"`
	Range  string             `json:"range"`
	Points []model.ClosePoint `json:"points"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
