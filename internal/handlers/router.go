package handlers

import (
	"time"

	"github.com/faustyna77/Automation-Energy-Sales/internal/config"
	"github.com/faustyna77/Automation-Energy-Sales/internal/middleware"
	"github.com/faustyna77/Automation-Energy-Sales/internal/service"
	"github.com/faustyna77/Automation-Energy-Sales/internal/supabase"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router bundles the handler groups behind one gin engine.
type Router struct {
	auth      *AuthHandlers
	decisions *DecisionHandlers
	uploads   *UploadHandlers
	analyze   *AnalyzeHandler
	jwt       *middleware.JWTMiddleware
}

// NewRouter builds every collaborator from the configuration. The
// Supabase client and the token verifier are constructed once, here, and
// handed to the handlers; nothing reads the environment afterwards.
func NewRouter(cfg *config.Config) *Router {
	store := supabase.New(cfg.Supabase)

	return &Router{
		auth:      NewAuthHandlers(store),
		decisions: NewDecisionHandlers(store),
		uploads:   NewUploadHandlers(store),
		analyze:   NewAnalyzeHandler(service.NewAnalyzer()),
		jwt:       middleware.NewJWTMiddleware(service.NewTokenVerifier(cfg.Supabase.JWTSecret)),
	}
}

// SetupRoutes wires middleware and endpoints into a ready engine.
func (rt *Router) SetupRoutes() *gin.Engine {
	r := gin.New()

	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())
	r.Use(cors.New(cors.Config{
		// The dashboard may be served from anywhere, so the origin is
		// echoed per request; a literal "*" would break credentialed
		// requests.
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.POST("/register", rt.auth.Register)
	r.POST("/login", rt.auth.Login)
	r.POST("/analyze", rt.analyze.Analyze)

	protected := r.Group("", rt.jwt.RequireAuth())
	{
		protected.GET("/me", rt.auth.Me)
		protected.POST("/decision", rt.decisions.AddDecision)
		protected.GET("/decisions", rt.decisions.ListDecisions)
		protected.POST("/upload", rt.uploads.AddUpload)
		protected.GET("/uploads", rt.uploads.ListUploads)
	}

	r.GET("/health", Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
