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

// UploadHandlers stores imported market data files in the uploads table.
type UploadHandlers struct {
	store *supabase.Client
}

func NewUploadHandlers(store *supabase.Client) *UploadHandlers {
	return &UploadHandlers{store: store}
}

// POST /upload
func (h *UploadHandlers) AddUpload(c *gin.Context) {
	var req models.UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	record := models.UploadRecord{
		UserID:     c.GetString(middleware.UserIDKey),
		UploadedAt: time.Now().UTC().Format(time.RFC3339),
		Filename:   req.Filename,
		RawData:    req.RawData,
	}

	if err := h.store.InsertUpload(c.Request.Context(), record); err != nil {
		relayError(c, err)
		return
	}

	slog.Info("Upload saved", "user_id", record.UserID, "filename", record.Filename)
	c.JSON(http.StatusOK, gin.H{"status": "upload saved"})
}

// GET /uploads
func (h *UploadHandlers) ListUploads(c *gin.Context) {
	body, err := h.store.ListUploads(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		relayError(c, err)
		return
	}

	relayJSON(c, body)
}
