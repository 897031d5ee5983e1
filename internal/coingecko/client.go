// Package coingecko implements a client for the CoinGecko public REST API
// (free/keyless endpoints only).
package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"

	"github.com/cryptoctl/cryptoctl/internal/netutil"
)

// DefaultBaseURL is the public v3 API root.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// Config holds the client knobs surfaced through the settings file.
type Config struct {
	BaseURL       string
	Timeout       time.Duration
	RatePerMinute int
}

// APIError is returned when the API answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("coingecko: %s returned HTTP %d", e.Endpoint, e.StatusCode)
}

// Client talks to the CoinGecko API with free-tier rate limiting and a
// circuit breaker around the round trip. All methods honor the context.
type Client struct {
	baseURL string
	client  *http.Client
	limiter *netutil.QuotaLimiter
	breaker *gobreaker.CircuitBreaker
}

// NewClient creates a client. Zero-valued config fields fall back to the
// free-tier defaults (public base URL, 10s timeout, 50 calls/minute).
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: netutil.NewQuotaLimiter(cfg.RatePerMinute),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "coingecko",
			MaxRequests: 1,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
}

// ListCoins fetches the full coin catalog (id, symbol, name per entry).
func (c *Client) ListCoins(ctx context.Context) ([]Coin, error) {
	var coins []Coin
	if err := c.get(ctx, "/coins/list", nil, &coins); err != nil {
		return nil, err
	}
	return coins, nil
}

// SupportedCurrencies fetches the vs-currency codes prices can be
// denominated in.
func (c *Client) SupportedCurrencies(ctx context.Context) ([]string, error) {
	var currencies []string
	if err := c.get(ctx, "/simple/supported_vs_currencies", nil, &currencies); err != nil {
		return nil, err
	}
	return currencies, nil
}

// SimplePrice fetches current spot prices for the given coin ids in the
// given vs-currencies.
func (c *Client) SimplePrice(ctx context.Context, ids, vsCurrencies []string) (SimplePrices, error) {
	params := url.Values{}
	params.Set("ids", strings.Join(ids, ","))
	params.Set("vs_currencies", strings.Join(vsCurrencies, ","))

	var prices SimplePrices
	if err := c.get(ctx, "/simple/price", params, &prices); err != nil {
		return nil, err
	}
	return prices, nil
}

// CoinByID fetches descriptive metadata and market data for one coin.
func (c *Client) CoinByID(ctx context.Context, id string) (*CoinInfo, error) {
	params := url.Values{}
	params.Set("localization", "false")
	params.Set("tickers", "false")
	params.Set("market_data", "true")
	params.Set("community_data", "false")
	params.Set("developer_data", "false")
	params.Set("sparkline", "false")

	var info CoinInfo
	if err := c.get(ctx, "/coins/"+url.PathEscape(id), params, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// History fetches the snapshot for one coin on one day. The date is in the
// API's dd-mm-yyyy form.
func (c *Client) History(ctx context.Context, id, date string) (*HistoricalData, error) {
	params := url.Values{}
	params.Set("date", date)
	params.Set("localization", "false")

	var data HistoricalData
	if err := c.get(ctx, "/coins/"+url.PathEscape(id)+"/history", params, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// MarketChart fetches the trailing price series for the past `days` days.
func (c *Client) MarketChart(ctx context.Context, id, vsCurrency string, days int) (*MarketChart, error) {
	params := url.Values{}
	params.Set("vs_currency", vsCurrency)
	params.Set("days", strconv.Itoa(days))

	var chart MarketChart
	if err := c.get(ctx, "/coins/"+url.PathEscape(id)+"/market_chart", params, &chart); err != nil {
		return nil, err
	}
	return &chart, nil
}

// get performs one rate-limited GET through the circuit breaker and
// unmarshals the body into out.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	fullURL := c.baseURL + endpoint
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	start := time.Now()
	body, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, &APIError{StatusCode: resp.StatusCode, Endpoint: endpoint}
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response: %w", err)
		}
		return data, nil
	})
	if err != nil {
		return err
	}

	log.Debug().
		Str("endpoint", endpoint).
		Dur("latency", time.Since(start)).
		Msg("coingecko request")

	if err := json.Unmarshal(body.([]byte), out); err != nil {
		return fmt.Errorf("failed to unmarshal %s response: %w", endpoint, err)
	}
	return nil
}
