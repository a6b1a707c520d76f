package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"ton_portfolio/internal/domain/entity"

	"github.com/tidwall/gjson"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// TonAPIClient fetches token price histories.
type TonAPIClient struct {
	client  *fasthttp.Client
	baseURL string
	timeout time.Duration
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewTonAPIClient creates a new TonAPIClient.
func NewTonAPIClient(baseURL string, timeout time.Duration, limiter *rate.Limiter, logger *zap.Logger) *TonAPIClient {
	return &TonAPIClient{
		client:  &fasthttp.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		limiter: limiter,
		logger:  logger.Named("TonAPIClient"),
	}
}

// PriceHistory returns the price points for symbol at the given interval.
// A response without a prices array is an error carrying the API error text.
func (c *TonAPIClient) PriceHistory(ctx context.Context, symbol string, interval string) ([]entity.PriceData, error) {
	if symbol == "" {
		return nil, fmt.Errorf("symbol cannot be empty")
	}

	query := url.Values{}
	query.Set("symbol", symbol)
	query.Set("interval", interval)
	requestURL := fmt.Sprintf("%s/tokens/price_history?%s", c.baseURL, query.Encode())

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodGet)

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	c.logger.Debug("Requesting price history", zap.String("url", requestURL))

	if err := do(ctx, c.client, c.limiter, c.timeout, req, resp); err != nil {
		c.logger.Error("Failed to execute price history request", zap.String("url", requestURL), zap.Error(err))
		return nil, fmt.Errorf("failed to execute request to %s: %w", requestURL, err)
	}

	rawBody := resp.Body()
	if !gjson.ValidBytes(rawBody) {
		return nil, fmt.Errorf("price history response from %s is not valid JSON (status %d)", requestURL, resp.StatusCode())
	}

	prices := gjson.GetBytes(rawBody, "prices")
	if !prices.Exists() || !prices.IsArray() {
		apiErr := gjson.GetBytes(rawBody, "error").String()
		if apiErr == "" {
			apiErr = fmt.Sprintf("status %d", resp.StatusCode())
		}
		return nil, fmt.Errorf("price history for %s unavailable: %s", symbol, apiErr)
	}

	var points []entity.PriceData
	if err := json.Unmarshal([]byte(prices.Raw), &points); err != nil {
		return nil, fmt.Errorf("failed to unmarshal prices for %s: %w", symbol, err)
	}

	c.logger.Debug("Received price history", zap.String("symbol", symbol), zap.Int("points", len(points)))
	return points, nil
}
