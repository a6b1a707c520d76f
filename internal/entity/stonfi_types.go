package entity

import (
	"fmt"

	domain "ton_portfolio/internal/domain/entity"
)

// BalanceListMethod is the ston.fi JSON-RPC method returning wallet assets.
const BalanceListMethod = "asset.balance_list"

// RPCRequest is a JSON-RPC 2.0 request envelope.
type RPCRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

// BalanceListParams are the params of asset.balance_list.
type BalanceListParams struct {
	OptimizeLoad  bool   `json:"optimize_load"`
	LoadCommunity bool   `json:"load_community"`
	WalletAddress string `json:"wallet_address"`
}

// RPCError is the error member of a JSON-RPC response.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// BalanceListResponse is the asset.balance_list response envelope.
type BalanceListResponse struct {
	JSONRPC string             `json:"jsonrpc"`
	ID      int                `json:"id"`
	Result  *BalanceListResult `json:"result"`
	Error   *RPCError          `json:"error"`
}

// BalanceListResult holds the wallet assets.
type BalanceListResult struct {
	Assets []domain.Token `json:"assets"`
}
