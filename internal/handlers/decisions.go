package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/faustyna77/Automation-Energy-Sales/internal/middleware"
	"github.com/faustyna77/Automation-Energy-Sales/internal/models"
	"github.com/faustyna77/Automation-Energy-Sales/internal/supabase"
	"github.com/gin-gonic/gin"
)

// DecisionHandlers keeps the per-user journal of buy/sell decisions in the
// decisions table.
type DecisionHandlers struct {
	store *supabase.Client
}

func NewDecisionHandlers(store *supabase.Client) *DecisionHandlers {
	return &DecisionHandlers{store: store}
}

// POST /decision
func (h *DecisionHandlers) AddDecision(c *gin.Context) {
	var req models.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	record := models.DecisionRecord{
		UserID:    c.GetString(middleware.UserIDKey),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Action:    req.Action,
		Reason:    req.Reason,
		Price:     *req.Price,
		Volume:    *req.Volume,
	}

	if err := h.store.InsertDecision(c.Request.Context(), record); err != nil {
		relayError(c, err)
		return
	}

	slog.Info("Decision saved",
		"user_id", record.UserID,
		"action", record.Action,
		"price", record.Price,
	)
	c.JSON(http.StatusOK, gin.H{"status": "decision saved"})
}

// GET /decisions
func (h *DecisionHandlers) ListDecisions(c *gin.Context) {
	body, err := h.store.ListDecisions(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		relayError(c, err)
		return
	}

	relayJSON(c, body)
}
