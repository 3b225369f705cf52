package handlers

import (
	"io"
	"net/http"

	"stock-screener/internal/api/models"
	"stock-screener/internal/config"
	"stock-screener/internal/data"
	"stock-screener/internal/model"
	"stock-screener/internal/screener"
	"stock-screener/internal/valuation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ScreenHandler handles index screening requests.
type ScreenHandler struct {
	provider data.Provider
	indices  *data.IndexClient
	cfg      *config.Config
}

// NewScreenHandler creates a screen handler. Nil arguments default to
// the live clients and built-in configuration.
func NewScreenHandler(provider data.Provider, indices *data.IndexClient, cfg *config.Config) *ScreenHandler {
	if provider == nil {
		provider = data.NewYahooClient("")
	}
	if indices == nil {
		indices = data.NewIndexClient("")
	}
	if cfg == nil {
		cfg = config.Default()
	}
	return &ScreenHandler{provider: provider, indices: indices, cfg: cfg}
}

// RunScreen handles POST /api/v1/screen. The run is synchronous; large
// indices mean hundreds of sequential upstream round trips.
func (h *ScreenHandler) RunScreen(c *gin.Context) {
	var req models.ScreenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	index, err := model.ParseIndex(req.Index)
	if err != nil {
		respondError(c, err)
		return
	}

	tickers := req.Tickers
	if len(tickers) == 0 {
		tickers, err = h.indices.Tickers(c.Request.Context(), index)
		if err != nil {
			respondError(c, err)
			return
		}
	}
	if req.Limit > 0 && req.Limit < len(tickers) {
		tickers = tickers[:req.Limit]
	}

	scr := screener.New(h.provider, valuation.NewCalculator(h.cfg))
	scr.SetOutput(io.Discard)

	report, err := scr.Run(c.Request.Context(), tickers)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := models.ScreenResponse{
		ID:    uuid.NewString(),
		Index: string(index),
		Summary: models.ScreenSummary{
			TotalTickers: len(tickers),
			Retained:     len(report.Records),
			Skipped:      report.Skipped,
			Stats:        report.Stats,
		},
		Outliers: report.Outliers,
	}
	if req.IncludeRecords {
		resp.Records = report.Records
	}

	c.JSON(http.StatusOK, resp)
}
