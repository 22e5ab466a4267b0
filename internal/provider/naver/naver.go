package naver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/twprice/internal/market"
	"github.com/guttosm/twprice/internal/provider"
)

const (
	defaultBaseURL = "https://finance.naver.com"
	userAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
	maxBodyBytes   = 2 << 20
)

var (
	// ErrInvalidCode is returned when a symbol has no 6-digit KRX code.
	ErrInvalidCode = errors.New("invalid code")
	// ErrPriceNotFound is returned when the quote page lacks the current price block.
	ErrPriceNotFound = errors.New("current price not found")

	todayBlock = regexp.MustCompile(`<p\s+class="no_today"[^>]*>([\s\S]*?)</p>`)
	blindSpan  = regexp.MustCompile(`<span[^>]*class="blind"[^>]*>([\d,]+)</span>`)
)

// HTTPClient describes an HTTP client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client scrapes the current price of KRX listings from Naver Finance.
type Client struct {
	baseURL    string
	httpClient HTTPClient
}

var _ provider.Quoter = (*Client)(nil)

// Option is a configuration option for the Naver client.
type Option func(*Client)

// WithBaseURL sets the base URL of the Naver Finance site.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a Naver client with a pooled transport and the given request timeout.
func New(timeout time.Duration, options ...Option) *Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 3 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          20,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   3 * time.Second,
		ResponseHeaderTimeout: 5 * time.Second,
	}
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: timeout, Transport: transport},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Name implements provider.Quoter.
func (c *Client) Name() string { return "naver" }

// LiveQuote returns the current price shown on the Naver quote page for symbol.
// Unlike the Yahoo client, a page without a price is reported as an error so
// callers can surface the reason.
func (c *Client) LiveQuote(ctx context.Context, symbol string) (decimal.Decimal, bool, error) {
	code, ok := market.KoreanCode(symbol)
	if !ok {
		return decimal.Zero, false, fmt.Errorf("%w: %s", ErrInvalidCode, symbol)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/item/sise.nhn?code="+code, nil)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Referer", c.baseURL+"/")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("fetch %s: %w", code, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, false, fmt.Errorf("fetch %s: unexpected status %d", code, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("read %s: %w", code, err)
	}

	price, err := parsePrice(string(body))
	if err != nil {
		return decimal.Zero, false, err
	}
	return price, true, nil
}

// parsePrice extracts the first blind span inside the no_today block.
func parsePrice(html string) (decimal.Decimal, error) {
	block := todayBlock.FindStringSubmatch(html)
	if block == nil {
		return decimal.Zero, ErrPriceNotFound
	}
	m := blindSpan.FindStringSubmatch(block[1])
	if m == nil {
		return decimal.Zero, fmt.Errorf("%w: no price in no_today block", ErrPriceNotFound)
	}

	raw := strings.ReplaceAll(m[1], ",", "")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || !provider.Usable(v) {
		return decimal.Zero, fmt.Errorf("invalid price: %q", raw)
	}
	return decimal.NewFromFloat(v), nil
}

// Close releases idle connections held by the default transport.
func (c *Client) Close() {
	if hc, ok := c.httpClient.(*http.Client); ok {
		hc.CloseIdleConnections()
	}
}
