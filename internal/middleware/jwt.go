package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/faustyna77/Automation-Energy-Sales/internal/service"
	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key the verified caller id is stored under.
const UserIDKey = "user_id"

type JWTMiddleware struct {
	verifier *service.TokenVerifier
}

func NewJWTMiddleware(verifier *service.TokenVerifier) *JWTMiddleware {
	return &JWTMiddleware{verifier: verifier}
}

// RequireAuth aborts the request before any handler or upstream work
// happens unless a valid bearer token is presented. A missing token or a
// token without a subject is 401; a token that fails verification is 403.
func (m *JWTMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
			c.Abort()
			return
		}

		userID, err := m.verifier.ValidateToken(token)
		if err != nil {
			if errors.Is(err, service.ErrNoSubject) {
				slog.Warn("Token without subject claim")
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			} else {
				slog.Warn("Token verification failed", "error", err)
				c.JSON(http.StatusForbidden, gin.H{"error": "authorization failed"})
			}
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

func (m *JWTMiddleware) extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if bearerToken != "" {
		tokenParts := strings.Split(bearerToken, " ")
		if len(tokenParts) == 2 && strings.ToLower(tokenParts[0]) == "bearer" {
			return tokenParts[1]
		}
	}
	return ""
}
