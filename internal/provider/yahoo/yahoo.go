package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"

	"github.com/guttosm/twprice/internal/market"
	"github.com/guttosm/twprice/internal/provider"
)

// quoteGetter is an indirection for unit testing; defaults to quote.Get.
var quoteGetter = quote.Get

// closesGetter returns the daily closes for symbol in [start, end], oldest first.
// It is an indirection for unit testing.
var closesGetter = func(ctx context.Context, symbol string, start, end time.Time) ([]decimal.Decimal, error) {
	params := &chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	}
	params.Context = &ctx

	iter := chart.Get(params)
	var closes []decimal.Decimal
	for iter.Next() {
		closes = append(closes, iter.Bar().Close)
	}
	return closes, iter.Err()
}

// Client implements provider.MarketData on top of Yahoo Finance.
type Client struct {
	historySessions int
	historyPadding  int
	now             func() time.Time
}

var _ provider.MarketData = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHistoryWindow sets how many trading sessions the daily-close fallback
// looks back over, plus extra calendar days of padding.
func WithHistoryWindow(sessions, padDays int) Option {
	return func(c *Client) {
		c.historySessions = sessions
		c.historyPadding = padDays
	}
}

// WithClock overrides the time source used to compute the history window.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// WithTimeout installs an HTTP client with the given timeout for all
// finance-go calls. The finance-go backend is process wide.
func WithTimeout(d time.Duration) Option {
	return func(_ *Client) {
		if d > 0 {
			finance.SetHTTPClient(&http.Client{Timeout: d})
		}
	}
}

// New creates a Yahoo Finance client.
func New(options ...Option) *Client {
	c := &Client{
		historySessions: 1,
		historyPadding:  10,
		now:             time.Now,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Name implements provider.Quoter.
func (c *Client) Name() string { return "yahoo" }

// LiveQuote returns the regular market price for symbol.
func (c *Client) LiveQuote(ctx context.Context, symbol string) (decimal.Decimal, bool, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, false, err
	}

	q, err := quoteGetter(symbol)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("yahoo quote %s: %w", symbol, err)
	}
	if q == nil || !provider.Usable(q.RegularMarketPrice) {
		return decimal.Zero, false, nil
	}
	return decimal.NewFromFloat(q.RegularMarketPrice), true, nil
}

// RecentDailyClose returns the close of the latest daily bar with a positive close.
func (c *Client) RecentDailyClose(ctx context.Context, symbol string) (decimal.Decimal, bool, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, false, err
	}

	end := c.now()
	start := market.HistoryWindowStart(c.historySessions, c.historyPadding, end)

	closes, err := closesGetter(ctx, symbol, start, end)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("yahoo chart %s: %w", symbol, err)
	}
	for i := len(closes) - 1; i >= 0; i-- {
		if closes[i].IsPositive() {
			return closes[i], true, nil
		}
	}
	return decimal.Zero, false, nil
}
