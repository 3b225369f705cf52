package model

import "time"

// StockSnapshot is one ticker's fetched fundamentals at a point in time.
// All fields come from the market-data provider; nothing here is computed.
//
// FreeCashFlow is the trailing total figure in the listing currency, not
// per share. BookValue and EPS are per share.
type StockSnapshot struct {
	Ticker            string    `json:"ticker"`
	CompanyName       string    `json:"company_name,omitempty"`
	CurrentPrice      float64   `json:"current_price"`
	FreeCashFlow      float64   `json:"free_cash_flow"`
	SharesOutstanding float64   `json:"shares_outstanding"`
	EPS               float64   `json:"eps"`
	BookValue         float64   `json:"book_value"`
	Sector            string    `json:"sector"`
	FetchTime         time.Time `json:"fetch_time,omitempty"`
}

// ClosePoint is one daily close from the historical price series.
type ClosePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}
