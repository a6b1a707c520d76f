package client

import (
	"context"
	stdjson "encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type capturedRPC struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  struct {
		OptimizeLoad  bool   `json:"optimize_load"`
		LoadCommunity bool   `json:"load_community"`
		WalletAddress string `json:"wallet_address"`
	} `json:"params"`
}

func TestStonFiClient_BalanceList(t *testing.T) {
	var got capturedRPC
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, stdjson.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":{"assets":[
			{"display_name":"Toncoin","balance":"1500000000","decimals":9,"image_url":"https://img/ton.png","symbol":"TON"},
			{"display_name":"Dust","balance":"0","decimals":9,"image_url":"https://img/dust.png","contract_address":"EQdust"}
		]}}`))
	}))
	defer server.Close()

	c := NewStonFiClient(server.URL, 2*time.Second, false, nil, zap.NewNop())
	tokens, err := c.BalanceList(context.Background(), "0:abcd")
	require.NoError(t, err)

	assert.Equal(t, "2.0", got.JSONRPC)
	assert.Equal(t, 1, got.ID)
	assert.Equal(t, "asset.balance_list", got.Method)
	assert.True(t, got.Params.OptimizeLoad)
	assert.False(t, got.Params.LoadCommunity)
	assert.Equal(t, "0:abcd", got.Params.WalletAddress)

	require.Len(t, tokens, 2)
	assert.Equal(t, "Toncoin", tokens[0].DisplayName)
	assert.Equal(t, "1500000000", tokens[0].Balance)
	assert.Equal(t, 9, tokens[0].Decimals)
	assert.Equal(t, "TON", tokens[0].Symbol)
	assert.Equal(t, "EQdust", tokens[1].ContractAddress)
}

func TestStonFiClient_Errors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{"http status", http.StatusBadGateway, `{}`},
		{"rpc error", http.StatusOK, `{"jsonrpc":"2.0","id":1,"error":{"code":-32602,"message":"bad wallet"}}`},
		{"missing assets", http.StatusOK, `{"jsonrpc":"2.0","id":1,"result":{}}`},
		{"malformed body", http.StatusOK, `not json`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			c := NewStonFiClient(server.URL, 2*time.Second, false, nil, zap.NewNop())
			tokens, err := c.BalanceList(context.Background(), "EQwallet")
			assert.Error(t, err)
			assert.Nil(t, tokens)
		})
	}
}

func TestStonFiClient_EmptyWallet(t *testing.T) {
	c := NewStonFiClient("http://127.0.0.1:1", time.Second, false, nil, zap.NewNop())
	_, err := c.BalanceList(context.Background(), "")
	assert.Error(t, err)
}

func TestStonFiClient_CancelledContext(t *testing.T) {
	c := NewStonFiClient("http://127.0.0.1:1", time.Second, false, NewLimiter(1, 1), zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.BalanceList(ctx, "EQwallet")
	assert.Error(t, err)
}
