package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stock-screener/internal/api/models"
	"stock-screener/internal/config"
	"stock-screener/internal/data"
	"stock-screener/internal/model"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testProvider() *data.FixtureProvider {
	return data.NewFixtureProvider([]model.StockSnapshot{
		{
			Ticker:            "AAPL",
			CurrentPrice:      190,
			FreeCashFlow:      99e9,
			SharesOutstanding: 15.5e9,
			EPS:               6.13,
			BookValue:         4.0,
			Sector:            "Technology",
		},
		{
			Ticker:            "OVER",
			CurrentPrice:      1e6,
			FreeCashFlow:      100,
			SharesOutstanding: 1,
			EPS:               1,
			BookValue:         1,
			Sector:            "Technology",
		},
	})
}

func testRouterConfig() *config.Config {
	cfg := config.Default()
	cfg.MonteCarlo.Seed = 42
	return cfg
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRunValuation(t *testing.T) {
	router := gin.New()
	router.POST("/value", NewValueHandler(testProvider(), testRouterConfig()).RunValuation)

	w := postJSON(t, router, "/value", map[string]any{"ticker": "AAPL"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.ValuationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Ticker != "AAPL" {
		t.Errorf("expected ticker AAPL, got %s", resp.Ticker)
	}
	if resp.CurrentPrice != 190 {
		t.Errorf("expected current price 190, got %.2f", resp.CurrentPrice)
	}
	if resp.DCFValue <= 0 || resp.GrahamNumber <= 0 || resp.FairPrice <= 0 {
		t.Errorf("expected positive valuations: %+v", resp)
	}
	if resp.Sector != "Technology" {
		t.Errorf("expected sector Technology, got %s", resp.Sector)
	}
}

func TestRunValuation_MissingTicker(t *testing.T) {
	router := gin.New()
	router.POST("/value", NewValueHandler(testProvider(), testRouterConfig()).RunValuation)

	w := postJSON(t, router, "/value", map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error.Code != "INVALID_REQUEST" {
		t.Errorf("expected INVALID_REQUEST, got %s", resp.Error.Code)
	}
}

func TestRunValuation_InvalidOverride(t *testing.T) {
	router := gin.New()
	router.POST("/value", NewValueHandler(testProvider(), testRouterConfig()).RunValuation)

	// Growth above discount makes the projection diverge.
	w := postJSON(t, router, "/value", map[string]any{
		"ticker":      "AAPL",
		"growth_rate": 0.12,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error.Code != "INVALID_PARAMETER" {
		t.Errorf("expected INVALID_PARAMETER, got %s", resp.Error.Code)
	}
}

func TestRunValuation_UnknownTicker(t *testing.T) {
	router := gin.New()
	router.POST("/value", NewValueHandler(testProvider(), testRouterConfig()).RunValuation)

	w := postJSON(t, router, "/value", map[string]any{"ticker": "NOPE"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error.Code != "DATA_UNAVAILABLE" {
		t.Errorf("expected DATA_UNAVAILABLE, got %s", resp.Error.Code)
	}
}

func TestRunScreen(t *testing.T) {
	router := gin.New()
	handler := NewScreenHandler(testProvider(), nil, testRouterConfig())
	router.POST("/screen", handler.RunScreen)

	w := postJSON(t, router, "/screen", map[string]any{
		"index":           "sp500",
		"tickers":         []string{"AAPL", "OVER", "MISSING"},
		"include_records": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.ScreenResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID == "" {
		t.Error("expected a run ID")
	}
	if resp.Index != "sp500" {
		t.Errorf("expected index sp500, got %s", resp.Index)
	}
	if resp.Summary.TotalTickers != 3 {
		t.Errorf("expected 3 total tickers, got %d", resp.Summary.TotalTickers)
	}
	// AAPL retained; OVER is overpriced, MISSING has no data.
	if resp.Summary.Retained != 1 || resp.Summary.Skipped != 2 {
		t.Errorf("expected 1 retained and 2 skipped, got %+v", resp.Summary)
	}
	if len(resp.Records) != 1 || resp.Records[0].Ticker != "AAPL" {
		t.Errorf("expected AAPL record, got %+v", resp.Records)
	}
}

func TestRunScreen_InvalidIndex(t *testing.T) {
	router := gin.New()
	router.POST("/screen", NewScreenHandler(testProvider(), nil, testRouterConfig()).RunScreen)

	w := postJSON(t, router, "/screen", map[string]any{"index": "ftse100"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error.Code != "INVALID_PARAMETER" {
		t.Errorf("expected INVALID_PARAMETER, got %s", resp.Error.Code)
	}
}

func TestRunScreen_Limit(t *testing.T) {
	router := gin.New()
	router.POST("/screen", NewScreenHandler(testProvider(), nil, testRouterConfig()).RunScreen)

	w := postJSON(t, router, "/screen", map[string]any{
		"index":   "sp500",
		"tickers": []string{"AAPL", "OVER"},
		"limit":   1,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.ScreenResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Summary.TotalTickers != 1 {
		t.Errorf("expected limit to cap the universe at 1, got %d", resp.Summary.TotalTickers)
	}
}

func TestListIndices(t *testing.T) {
	router := gin.New()
	router.GET("/indices", ListIndices)

	req := httptest.NewRequest(http.MethodGet, "/indices", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Indices []models.IndexInfo `json:"indices"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Indices) != 5 {
		t.Fatalf("expected 5 indices, got %d", len(resp.Indices))
	}
	if resp.Indices[0].ID != "sp500" || resp.Indices[0].Source == "" {
		t.Errorf("unexpected first index: %+v", resp.Indices[0])
	}
}

func TestListSectors(t *testing.T) {
	router := gin.New()
	router.GET("/sectors", NewSectorHandler(testRouterConfig()).ListSectors)

	req := httptest.NewRequest(http.MethodGet, "/sectors", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Sectors []models.SectorInfo `json:"sectors"`
		Default models.SectorInfo   `json:"default"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Sectors) != 10 {
		t.Errorf("expected 10 sectors, got %d", len(resp.Sectors))
	}
	// Sorted by name.
	for i := 1; i < len(resp.Sectors); i++ {
		if resp.Sectors[i-1].Sector > resp.Sectors[i].Sector {
			t.Errorf("sectors not sorted: %s before %s", resp.Sectors[i-1].Sector, resp.Sectors[i].Sector)
		}
	}
	if resp.Default.AveragePE != 20 || resp.Default.AveragePB != 3 {
		t.Errorf("unexpected default multiples: %+v", resp.Default)
	}
}
