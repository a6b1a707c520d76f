package port

import (
	"context"

	"ton_portfolio/internal/domain/entity"
)

// BalanceSource fetches the token holdings of a wallet.
type BalanceSource interface {
	BalanceList(ctx context.Context, walletAddress string) ([]entity.Token, error)
}

// PriceHistorySource fetches historical prices for a token symbol.
type PriceHistorySource interface {
	PriceHistory(ctx context.Context, symbol string, interval string) ([]entity.PriceData, error)
}

// AddressFormatter renders wallet and contract addresses for display.
type AddressFormatter interface {
	Format(address string) string
	FormatContract(address string) string
}
