package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/twprice/internal/domain/models"
	"github.com/guttosm/twprice/internal/logger"
	"github.com/guttosm/twprice/internal/market"
	"github.com/guttosm/twprice/internal/provider"
)

// PriceResolver resolves ticker codes to their latest traded price.
type PriceResolver interface {
	// Resolve returns one entry per unique code. It never fails as a whole:
	// codes whose every source errors or has no quote map to an unresolved result.
	Resolve(ctx context.Context, codes []string) map[string]models.PriceResult
}

// attempt is one step of the fallback chain.
type attempt struct {
	source models.Source
	symbol func(code string) string
	fetch  func(ctx context.Context, symbol string) (decimal.Decimal, bool, error)
}

type priceResolver struct {
	md          provider.MarketData
	symbols     market.Symbols
	concurrency int
	log         zerolog.Logger
}

// NewPriceResolver builds a resolver over md. concurrency bounds how many
// codes are looked up at once; values below 1 mean sequential.
func NewPriceResolver(md provider.MarketData, symbols market.Symbols, concurrency int) PriceResolver {
	if concurrency < 1 {
		concurrency = 1
	}
	return &priceResolver{
		md:          md,
		symbols:     symbols,
		concurrency: concurrency,
		log:         logger.Component("resolver"),
	}
}

func (r *priceResolver) chain() []attempt {
	return []attempt{
		{source: models.SourcePrimary, symbol: r.symbols.Primary, fetch: r.md.LiveQuote},
		{source: models.SourceAlternate, symbol: r.symbols.Alternate, fetch: r.md.LiveQuote},
		{source: models.SourceHistory, symbol: r.symbols.Primary, fetch: r.md.RecentDailyClose},
	}
}

func (r *priceResolver) Resolve(ctx context.Context, codes []string) map[string]models.PriceResult {
	unique := market.Unique(codes)
	results := make([]models.PriceResult, len(unique))

	// Each goroutine owns one slot, so no locking is needed.
	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for i, code := range unique {
		i, code := i, code
		g.Go(func() error {
			results[i] = r.resolveOne(ctx, code)
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string]models.PriceResult, len(results))
	for _, res := range results {
		out[res.Code] = res
	}
	return out
}

// resolveOne walks the chain until a step yields a price.
func (r *priceResolver) resolveOne(ctx context.Context, code string) models.PriceResult {
	for _, step := range r.chain() {
		symbol := step.symbol(code)
		price, ok, err := step.fetch(ctx, symbol)
		if err != nil {
			r.log.Debug().Err(err).Str("code", code).Str("symbol", symbol).Str("step", string(step.source)).Msg("lookup failed")
			continue
		}
		if !ok {
			continue
		}
		return models.PriceResult{
			Code:   code,
			Price:  RoundPrice(price),
			Found:  true,
			Source: step.source,
		}
	}

	r.log.Debug().Str("code", code).Msg("no price from any source")
	return models.Unresolved(code)
}

// RoundPrice rounds to 2 decimal places, half away from zero.
func RoundPrice(p decimal.Decimal) decimal.Decimal {
	return p.Round(2)
}
