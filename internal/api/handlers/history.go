package handlers

import (
	"net/http"

	"stock-screener/internal/api/models"
	"stock-screener/internal/data"

	"github.com/gin-gonic/gin"
)

// HistoryHandler serves historical close series.
type HistoryHandler struct {
	client *data.YahooClient
}

// NewHistoryHandler creates a history handler; a nil client defaults to
// the live Yahoo client.
func NewHistoryHandler(client *data.YahooClient) *HistoryHandler {
	if client == nil {
		client = data.NewYahooClient("")
	}
	return &HistoryHandler{client: client}
}

// GetHistory handles GET /api/v1/history/:ticker.
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	ticker := c.Param("ticker")
	rangeStr := c.DefaultQuery("range", "1y")

	points, err := h.client.History(c.Request.Context(), ticker, rangeStr)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.HistoryResponse{
		Ticker: ticker,
		Range:  rangeStr,
		Points: points,
	})
}
