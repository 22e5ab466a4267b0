package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/twprice/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterOptions holds the HTTP-level settings applied by NewRouter.
type RouterOptions struct {
	RequestTimeout     time.Duration
	CORSAllowedOrigins []string
	RateLimitPerMinute int
}

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler, CORS, RateLimiter, Timeout).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures the price routes under /api with no-cache headers.
//
// Note:
//   - Health endpoints (/, /healthz) are registered in app.InitializeApp().
func NewRouter(handler *Handler, opts RouterOptions) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.CORS(opts.CORSAllowedOrigins),
		middleware.RateLimiter(opts.RateLimitPerMinute),
		middleware.Timeout(opts.RequestTimeout),
	)

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── Prices ───────────────────────────────────
	prices := router.Group("/api", middleware.NoCache())
	{
		prices.POST("/prices", handler.GetPrices)
		prices.POST("/kr/prices", handler.GetKoreaPrices)
	}

	return router
}
