package handlers

import (
	"net/http"

	"github.com/faustyna77/Automation-Energy-Sales/internal/models"
	"github.com/faustyna77/Automation-Energy-Sales/internal/service"
	"github.com/gin-gonic/gin"
)

// AnalyzeHandler exposes the price analyzer. It is the only endpoint that
// does not touch Supabase.
type AnalyzeHandler struct {
	analyzer *service.Analyzer
}

func NewAnalyzeHandler(analyzer *service.Analyzer) *AnalyzeHandler {
	return &AnalyzeHandler{analyzer: analyzer}
}

// POST /analyze
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.analyzer.Analyze(*req.Price, req.Thresholds))
}
