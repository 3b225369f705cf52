package data

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"stock-screener/internal/model"
)

// YahooClient fetches prices and fundamentals from the Yahoo Finance
// public API. It implements Provider.
type YahooClient struct {
	BaseURL   string
	Client    *http.Client
	UserAgent string
}

// NewYahooClient creates a new Yahoo Finance client.
// If baseURL is empty, defaults to "https://query1.finance.yahoo.com".
func NewYahooClient(baseURL string) *YahooClient {
	if baseURL == "" {
		baseURL = "https://query1.finance.yahoo.com"
	}
	return &YahooClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
	}
}

// YahooError represents an error response from the Yahoo Finance API.
type YahooError struct {
	StatusCode int
	Code       string
	Message    string
	RetryAfter string // For rate limit errors
}

func (e *YahooError) Error() string {
	return e.Message
}

type rawValue struct {
	Raw float64 `json:"raw"`
	Fmt string  `json:"fmt"`
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency           string  `json:"currency"`
				Symbol             string  `json:"symbol"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			FinancialData *struct {
				FreeCashflow *rawValue `json:"freeCashflow"`
			} `json:"financialData"`
			DefaultKeyStatistics *struct {
				SharesOutstanding *rawValue `json:"sharesOutstanding"`
				TrailingEps       *rawValue `json:"trailingEps"`
				BookValue         *rawValue `json:"bookValue"`
			} `json:"defaultKeyStatistics"`
			SummaryProfile *struct {
				Sector string `json:"sector"`
			} `json:"summaryProfile"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

// Snapshot fetches the latest close plus the fundamentals the valuation
// pipeline needs. A missing free-cash-flow or share-count field maps to
// model.ErrDataUnavailable; a missing EPS, book value or sector does not,
// because the Graham estimator guards those itself.
func (c *YahooClient) Snapshot(ctx context.Context, ticker string) (*model.StockSnapshot, error) {
	if ticker == "" {
		return nil, fmt.Errorf("ticker is required: %w", model.ErrInvalidParameter)
	}

	// Check cache first (only if enabled for development).
	if cache := GetCache(); cache != nil {
		if cached, found := cache.Get(snapshotCacheKey(ticker)); found {
			log.Printf("[Yahoo] Cache hit: snapshot for %s", ticker)
			return cached, nil
		}
	}

	price, err := c.Quote(ctx, ticker)
	if err != nil {
		return nil, err
	}

	var qs quoteSummaryResponse
	q := url.Values{}
	q.Set("modules", "financialData,defaultKeyStatistics,summaryProfile")
	if err := c.getJSON(ctx, "/v10/finance/quoteSummary/"+url.PathEscape(ticker), q, &qs); err != nil {
		return nil, err
	}
	if qs.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("quote summary for %s failed (%s): %w",
			ticker, qs.QuoteSummary.Error.Code, model.ErrDataUnavailable)
	}
	if len(qs.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("no fundamentals found for %s: %w", ticker, model.ErrDataUnavailable)
	}
	res := qs.QuoteSummary.Result[0]

	snap := &model.StockSnapshot{
		Ticker:       ticker,
		CurrentPrice: price,
		Sector:       "Unknown",
		FetchTime:    time.Now(),
	}

	if res.FinancialData == nil || res.FinancialData.FreeCashflow == nil {
		return nil, fmt.Errorf("free cash flow data is not available for %s: %w",
			ticker, model.ErrDataUnavailable)
	}
	snap.FreeCashFlow = res.FinancialData.FreeCashflow.Raw

	if res.DefaultKeyStatistics == nil || res.DefaultKeyStatistics.SharesOutstanding == nil ||
		res.DefaultKeyStatistics.SharesOutstanding.Raw <= 0 {
		return nil, fmt.Errorf("shares outstanding not available for %s: %w",
			ticker, model.ErrDataUnavailable)
	}
	snap.SharesOutstanding = res.DefaultKeyStatistics.SharesOutstanding.Raw

	if res.DefaultKeyStatistics.TrailingEps != nil {
		snap.EPS = res.DefaultKeyStatistics.TrailingEps.Raw
	}
	if res.DefaultKeyStatistics.BookValue != nil {
		snap.BookValue = res.DefaultKeyStatistics.BookValue.Raw
	}
	if res.SummaryProfile != nil && res.SummaryProfile.Sector != "" {
		snap.Sector = res.SummaryProfile.Sector
	}

	if cache := GetCache(); cache != nil {
		cache.Set(snapshotCacheKey(ticker), snap)
		log.Printf("[Yahoo] Cached snapshot for %s", ticker)
	}

	return snap, nil
}

// Quote fetches the latest close price for a ticker.
func (c *YahooClient) Quote(ctx context.Context, ticker string) (float64, error) {
	q := url.Values{}
	q.Set("range", "1d")
	q.Set("interval", "1d")

	var chart chartResponse
	if err := c.getJSON(ctx, "/v8/finance/chart/"+url.PathEscape(ticker), q, &chart); err != nil {
		return 0, err
	}
	if chart.Chart.Error != nil {
		return 0, fmt.Errorf("chart for %s failed (%s): %w",
			ticker, chart.Chart.Error.Code, model.ErrDataUnavailable)
	}
	if len(chart.Chart.Result) == 0 {
		return 0, fmt.Errorf("no price data found for %s: %w", ticker, model.ErrDataUnavailable)
	}
	price := chart.Chart.Result[0].Meta.RegularMarketPrice
	if price <= 0 {
		return 0, fmt.Errorf("price data not available for %s: %w", ticker, model.ErrDataUnavailable)
	}
	return price, nil
}

// History fetches the historical daily close series for a ticker.
// rangeStr is a Yahoo chart range like "1mo", "1y", "5y", "max".
func (c *YahooClient) History(ctx context.Context, ticker, rangeStr string) ([]model.ClosePoint, error) {
	if rangeStr == "" {
		rangeStr = "1y"
	}
	q := url.Values{}
	q.Set("range", rangeStr)
	q.Set("interval", "1d")

	var chart chartResponse
	if err := c.getJSON(ctx, "/v8/finance/chart/"+url.PathEscape(ticker), q, &chart); err != nil {
		return nil, err
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("chart for %s failed (%s): %w",
			ticker, chart.Chart.Error.Code, model.ErrDataUnavailable)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no historical data found for %s: %w", ticker, model.ErrDataUnavailable)
	}

	res := chart.Chart.Result[0]
	closes := res.Indicators.Quote[0].Close
	points := make([]model.ClosePoint, 0, len(res.Timestamp))
	for i, ts := range res.Timestamp {
		if i >= len(closes) || closes[i] == 0 {
			continue
		}
		points = append(points, model.ClosePoint{
			Date:  time.Unix(ts, 0).UTC(),
			Close: closes[i],
		})
	}
	return points, nil
}

// getJSON performs a GET against the Yahoo API and decodes the response,
// converting non-200 statuses into typed YahooErrors.
func (c *YahooClient) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u, err := url.Parse(c.BaseURL + path)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	startTime := time.Now()
	resp, err := c.Client.Do(req)
	duration := time.Since(startTime)
	if err != nil {
		log.Printf("[Yahoo] Request failed: %v (path=%s, duration: %v)", err, path, duration)
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	log.Printf("[Yahoo] Response: %d %s (path=%s, duration: %v)",
		resp.StatusCode, resp.Status, path, duration)

	switch resp.StatusCode {
	case http.StatusOK:
		// Success, continue
	case http.StatusNotFound:
		return &YahooError{
			StatusCode: resp.StatusCode,
			Code:       "NOT_FOUND",
			Message:    fmt.Sprintf("Yahoo Finance has no data at %s", path),
		}
	case http.StatusUnauthorized, http.StatusForbidden:
		return &YahooError{
			StatusCode: resp.StatusCode,
			Code:       "UNAUTHORIZED",
			Message:    "Yahoo Finance rejected the request",
		}
	case http.StatusTooManyRequests:
		retryAfter := resp.Header.Get("Retry-After")
		log.Printf("[Yahoo] Error: 429 Rate Limit Exceeded - Retry after: %s (path=%s)", retryAfter, path)
		return &YahooError{
			StatusCode: resp.StatusCode,
			Code:       "RATE_LIMIT_EXCEEDED",
			Message:    fmt.Sprintf("Rate limit exceeded. Retry after: %s", retryAfter),
			RetryAfter: retryAfter,
		}
	default:
		return &YahooError{
			StatusCode: resp.StatusCode,
			Code:       "API_ERROR",
			Message:    fmt.Sprintf("API returned status %d: %s", resp.StatusCode, resp.Status),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
