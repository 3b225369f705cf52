package handlers

import (
	"net/http"
	"sort"

	"stock-screener/internal/api/models"
	"stock-screener/internal/config"
	"stock-screener/internal/data"
	"stock-screener/internal/model"

	"github.com/gin-gonic/gin"
)

// ListIndices handles GET /api/v1/indices.
func ListIndices(c *gin.Context) {
	indices := make([]models.IndexInfo, 0, len(model.AllIndices()))
	for _, idx := range model.AllIndices() {
		indices = append(indices, models.IndexInfo{
			ID:     string(idx),
			Name:   idx.DisplayName(),
			Source: data.IndexSourceURL(idx),
		})
	}
	c.JSON(http.StatusOK, gin.H{"indices": indices})
}

// SectorHandler serves the sector multiple table in use.
type SectorHandler struct {
	cfg *config.Config
}

// NewSectorHandler creates a sector handler; a nil config defaults to
// the built-in table.
func NewSectorHandler(cfg *config.Config) *SectorHandler {
	if cfg == nil {
		cfg = config.Default()
	}
	return &SectorHandler{cfg: cfg}
}

// ListSectors handles GET /api/v1/sectors.
func (h *SectorHandler) ListSectors(c *gin.Context) {
	sectors := make([]models.SectorInfo, 0, len(h.cfg.Sectors)+1)
	for name, m := range h.cfg.Sectors {
		sectors = append(sectors, models.SectorInfo{
			Sector:    name,
			AveragePE: m.AveragePE,
			AveragePB: m.AveragePB,
		})
	}
	sort.Slice(sectors, func(i, j int) bool { return sectors[i].Sector < sectors[j].Sector })

	c.JSON(http.StatusOK, gin.H{
		"sectors": sectors,
		"default": models.SectorInfo{
			Sector:    "Default",
			AveragePE: h.cfg.DefaultMultiples.AveragePE,
			AveragePB: h.cfg.DefaultMultiples.AveragePB,
		},
	})
}
