package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ton_portfolio/internal/domain/entity"
	rpc "ton_portfolio/internal/entity"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// StonFiClient fetches wallet balances from the ston.fi JSON-RPC endpoint.
type StonFiClient struct {
	client        *fasthttp.Client
	rpcURL        string
	timeout       time.Duration
	loadCommunity bool
	limiter       *rate.Limiter
	logger        *zap.Logger
}

// NewStonFiClient creates a new StonFiClient.
func NewStonFiClient(rpcURL string, timeout time.Duration, loadCommunity bool, limiter *rate.Limiter, logger *zap.Logger) *StonFiClient {
	return &StonFiClient{
		client:        &fasthttp.Client{},
		rpcURL:        strings.TrimRight(rpcURL, "/"),
		timeout:       timeout,
		loadCommunity: loadCommunity,
		limiter:       limiter,
		logger:        logger.Named("StonFiClient"),
	}
}

// BalanceList returns every asset ston.fi reports for walletAddress, zero balances included.
func (c *StonFiClient) BalanceList(ctx context.Context, walletAddress string) ([]entity.Token, error) {
	if walletAddress == "" {
		return nil, fmt.Errorf("wallet address cannot be empty")
	}

	body, err := json.Marshal(rpc.RPCRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  rpc.BalanceListMethod,
		Params: rpc.BalanceListParams{
			OptimizeLoad:  true,
			LoadCommunity: c.loadCommunity,
			WalletAddress: walletAddress,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode balance_list request: %w", err)
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(c.rpcURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBodyRaw(body)

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	c.logger.Debug("Requesting balance list", zap.String("url", c.rpcURL), zap.String("wallet", walletAddress))

	if err := do(ctx, c.client, c.limiter, c.timeout, req, resp); err != nil {
		c.logger.Error("Failed to execute balance_list request", zap.String("url", c.rpcURL), zap.Error(err))
		return nil, fmt.Errorf("failed to execute request to %s: %w", c.rpcURL, err)
	}

	rawBody := resp.Body()
	if resp.StatusCode() != fasthttp.StatusOK {
		c.logger.Error("ston.fi balance_list request failed",
			zap.Int("statusCode", resp.StatusCode()),
			zap.ByteString("responseBody", rawBody))
		return nil, fmt.Errorf("balance_list request to %s failed with status %d", c.rpcURL, resp.StatusCode())
	}

	var decoded rpc.BalanceListResponse
	if err := json.Unmarshal(rawBody, &decoded); err != nil {
		c.logger.Error("Failed to unmarshal balance_list response",
			zap.ByteString("responseBody", rawBody), zap.Error(err))
		return nil, fmt.Errorf("failed to unmarshal balance_list response: %w", err)
	}
	if decoded.Error != nil {
		return nil, fmt.Errorf("balance_list: %w", decoded.Error)
	}
	if decoded.Result == nil || decoded.Result.Assets == nil {
		return nil, fmt.Errorf("balance_list response has no result.assets")
	}

	c.logger.Debug("Received balance list",
		zap.String("wallet", walletAddress),
		zap.Int("assetCount", len(decoded.Result.Assets)))
	return decoded.Result.Assets, nil
}
