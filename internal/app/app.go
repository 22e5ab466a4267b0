package app

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/twprice/config"
	"github.com/guttosm/twprice/internal/api"
	"github.com/guttosm/twprice/internal/market"
	"github.com/guttosm/twprice/internal/provider"
	"github.com/guttosm/twprice/internal/provider/naver"
	"github.com/guttosm/twprice/internal/provider/yahoo"
	"github.com/guttosm/twprice/internal/service"
)

// marketDataFactory is an indirection used by NewPriceResolver; overridden in
// tests to avoid real upstream calls.
var marketDataFactory = func(cfg config.Config) provider.MarketData {
	return yahoo.New(
		yahoo.WithTimeout(cfg.Provider.Timeout),
		yahoo.WithHistoryWindow(cfg.Resolver.HistorySessions, cfg.Resolver.HistoryPaddingDays),
	)
}

// NewPriceResolver builds the Taiwan price resolver from configuration.
// It is shared by the HTTP server and the quote command.
func NewPriceResolver(cfg config.Config) service.PriceResolver {
	symbols := market.Symbols{
		PrimarySuffix:   cfg.Resolver.PrimarySuffix,
		AlternateSuffix: cfg.Resolver.AlternateSuffix,
	}
	return service.NewPriceResolver(marketDataFactory(cfg), symbols, cfg.Resolver.Concurrency)
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the Yahoo-backed price resolver.
//   - Builds the Naver-backed Korean quote service.
//   - Creates the HTTP handler layer and configures the Gin router.
//   - Registers the banner and liveness endpoints.
//   - Provides a cleanup function to release outbound connections.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	resolver := NewPriceResolver(cfg)

	naverClient := naver.New(cfg.Provider.Timeout, naver.WithBaseURL(cfg.Provider.NaverBaseURL))
	korea := service.NewKoreaQuoteService(naverClient)

	handler := api.NewHandler(resolver, korea)

	router := api.NewRouter(handler, api.RouterOptions{
		RequestTimeout:     cfg.Server.RequestTimeout,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
	})

	api.NewHealthHandler().Register(router)

	cleanup := func() {
		naverClient.Close()
	}

	return router, cleanup, nil
}
