package handlers

import (
	"errors"
	"net/http"

	"stock-screener/internal/api/models"
	"stock-screener/internal/config"
	"stock-screener/internal/data"
	"stock-screener/internal/model"
	"stock-screener/internal/valuation"

	"github.com/gin-gonic/gin"
)

// ValueHandler handles single-ticker valuation requests.
type ValueHandler struct {
	provider data.Provider
	cfg      *config.Config
}

// NewValueHandler creates a value handler. A nil provider defaults to the
// live Yahoo client; a nil config defaults to the built-in defaults.
func NewValueHandler(provider data.Provider, cfg *config.Config) *ValueHandler {
	if provider == nil {
		provider = data.NewYahooClient("")
	}
	if cfg == nil {
		cfg = config.Default()
	}
	return &ValueHandler{provider: provider, cfg: cfg}
}

// RunValuation handles POST /api/v1/value.
func (h *ValueHandler) RunValuation(c *gin.Context) {
	var req models.ValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	cfg := *h.cfg
	if req.InflationRate != nil {
		cfg.Valuation.InflationRate = *req.InflationRate
	}
	if req.GrowthRate != nil {
		cfg.Valuation.GrowthRate = *req.GrowthRate
	}
	if req.DiscountRate != nil {
		cfg.Valuation.DiscountRate = *req.DiscountRate
	}
	if req.ProjectionYears != nil {
		cfg.Valuation.ProjectionYears = *req.ProjectionYears
	}
	if err := cfg.Validate(); err != nil {
		respondError(c, err)
		return
	}

	snap, err := h.provider.Snapshot(c.Request.Context(), req.Ticker)
	if err != nil {
		respondError(c, err)
		return
	}

	res, err := valuation.NewCalculator(&cfg).Valuate(snap)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ValuationResponse{
		Ticker:          res.Ticker,
		CurrentPrice:    res.CurrentPrice,
		DCFValue:        res.DCFValue,
		GrahamNumber:    res.GrahamNumber,
		MonteCarloValue: res.MonteCarloValue,
		FairPrice:       res.FairPrice,
		Sector:          res.Sector,
	})
}

// respondError maps pipeline errors onto HTTP statuses: invalid
// parameters to 400, missing data to 404, upstream rate limiting to 429
// and other upstream failures to 502.
func respondError(c *gin.Context, err error) {
	var yerr *data.YahooError
	if errors.As(err, &yerr) {
		status := http.StatusBadGateway
		details := map[string]interface{}{"status_code": yerr.StatusCode}
		if yerr.Code == "RATE_LIMIT_EXCEEDED" {
			status = http.StatusTooManyRequests
			details["retry_after"] = yerr.RetryAfter
		}
		if yerr.Code == "NOT_FOUND" {
			status = http.StatusNotFound
		}
		c.JSON(status, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    yerr.Code,
				Message: yerr.Message,
				Details: details,
			},
		})
		return
	}

	switch {
	case errors.Is(err, model.ErrInvalidParameter):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_PARAMETER",
				Message: err.Error(),
			},
		})
	case errors.Is(err, model.ErrDataUnavailable):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "DATA_UNAVAILABLE",
				Message: err.Error(),
			},
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: err.Error(),
			},
		})
	}
}
