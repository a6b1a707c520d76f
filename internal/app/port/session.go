package port

import (
	"context"
	"errors"

	"ton_portfolio/internal/domain/entity"
)

// ErrTokenNotFound is returned when a token index does not match a displayed row.
var ErrTokenNotFound = errors.New("token not found")

// ErrNotConnected is returned by actions that need a connected wallet.
var ErrNotConnected = errors.New("wallet not connected")

// SessionService owns the wallet page view state.
type SessionService interface {
	Start(ctx context.Context)
	Stop()
	View() entity.ViewState
	WalletAction(ctx context.Context, address string) error
	SelectToken(ctx context.Context, index int) error
	CopyAddress() (entity.Notice, error)
	Subscribe() (<-chan entity.ViewState, func())
}

// ChartService provides the price chart series for a token.
type ChartService interface {
	Chart(contractAddress string) entity.ChartData
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteText(text string) error
}

// NoticeBoard keeps short-lived acknowledgements.
type NoticeBoard interface {
	Post(notice entity.Notice)
	Current() (entity.Notice, bool)
	Clear()
}
