package handlers

import (
	"log/slog"
	"net/http"

	"github.com/faustyna77/Automation-Energy-Sales/internal/middleware"
	"github.com/faustyna77/Automation-Energy-Sales/internal/models"
	"github.com/faustyna77/Automation-Energy-Sales/internal/supabase"
	"github.com/gin-gonic/gin"
)

// AuthHandlers forwards signup and login to the Supabase auth API and
// answers identity questions from the verified token.
type AuthHandlers struct {
	store *supabase.Client
}

func NewAuthHandlers(store *supabase.Client) *AuthHandlers {
	return &AuthHandlers{store: store}
}

// POST /register
func (h *AuthHandlers) Register(c *gin.Context) {
	var req models.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("Invalid registration request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	body, err := h.store.SignUp(c.Request.Context(), req)
	if err != nil {
		relayError(c, err)
		return
	}

	slog.Info("User registered", "email", req.Email)
	relayJSON(c, body)
}

// POST /login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req models.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	body, err := h.store.SignIn(c.Request.Context(), req)
	if err != nil {
		relayError(c, err)
		return
	}

	relayJSON(c, body)
}

// GET /me
func (h *AuthHandlers) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(middleware.UserIDKey)})
}
