package provider

import (
	"context"
	"math"

	"github.com/shopspring/decimal"
)

// Quoter returns the last traded price for an exchange-qualified symbol.
//
// ok == false means the provider answered but had no usable price.
// A non-nil error means the call itself failed (transport, status, parse).
type Quoter interface {
	Name() string
	LiveQuote(ctx context.Context, symbol string) (price decimal.Decimal, ok bool, err error)
}

// MarketData is the capability the price resolver needs from an upstream
// market data source.
//
//go:generate mockgen -package=service -destination=../service/mock_market_data_test.go -source=provider.go MarketData
type MarketData interface {
	Quoter
	// RecentDailyClose returns the closing price of the most recent daily bar.
	RecentDailyClose(ctx context.Context, symbol string) (price decimal.Decimal, ok bool, err error)
}

// Usable reports whether a raw price can be handed to callers: finite and
// strictly positive.
func Usable(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
