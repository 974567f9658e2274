package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/faustyna77/Automation-Energy-Sales/internal/supabase"
	"github.com/gin-gonic/gin"
)

// relayError answers an upstream failure: Supabase's own status and body
// are passed through untouched, a call that never completed becomes 502.
func relayError(c *gin.Context, err error) {
	var upstream *supabase.UpstreamError
	if errors.As(err, &upstream) {
		contentType := upstream.ContentType
		if contentType == "" {
			contentType = "application/json"
		}
		c.Data(upstream.StatusCode, contentType, upstream.Body)
		return
	}

	slog.Error("Supabase call failed", "error", err)
	c.JSON(http.StatusBadGateway, gin.H{"error": "upstream unreachable"})
}

// relayJSON passes a successful upstream body through untouched.
func relayJSON(c *gin.Context, body []byte) {
	c.Data(http.StatusOK, "application/json", body)
}
