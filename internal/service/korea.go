package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/guttosm/twprice/internal/domain/models"
	"github.com/guttosm/twprice/internal/logger"
	"github.com/guttosm/twprice/internal/provider"
)

// KoreaQuoteService looks up KRX prices one symbol at a time.
type KoreaQuoteService interface {
	Quote(ctx context.Context, symbols []string) map[string]models.KoreaQuote
}

type koreaQuoteService struct {
	q   provider.Quoter
	log zerolog.Logger
}

func NewKoreaQuoteService(q provider.Quoter) KoreaQuoteService {
	return &koreaQuoteService{q: q, log: logger.Component("korea")}
}

// Quote resolves symbols sequentially to keep the load on the upstream site low.
// Failures are reported per symbol.
func (s *koreaQuoteService) Quote(ctx context.Context, symbols []string) map[string]models.KoreaQuote {
	out := make(map[string]models.KoreaQuote, len(symbols))
	for _, sym := range symbols {
		price, ok, err := s.q.LiveQuote(ctx, sym)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Str("symbol", sym).Str("provider", s.q.Name()).Msg("price lookup failed")
			out[sym] = models.KoreaQuote{OK: false, Error: err.Error()}
		case !ok:
			out[sym] = models.KoreaQuote{OK: false, Error: "price not available"}
		default:
			out[sym] = models.KoreaQuote{OK: true, Price: price.InexactFloat64()}
		}
	}
	return out
}
