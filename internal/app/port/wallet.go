package port

import (
	"context"

	"ton_portfolio/internal/domain/entity"
)

// WalletConnector is the wallet-connect collaborator the session reacts to.
type WalletConnector interface {
	// Status returns the current connection status and account.
	Status() entity.WalletStatus

	// Connected reports whether a wallet is connected.
	Connected() bool

	// OpenModal completes a connection with the address returned by the wallet.
	OpenModal(ctx context.Context, address string) error

	// Disconnect drops the current wallet session.
	Disconnect(ctx context.Context) error

	// OnStatusChange registers a listener called on every status change.
	// The returned function removes the listener.
	OnStatusChange(listener func(entity.WalletStatus)) (unsubscribe func())
}

// SessionStore persists the connected account between restarts.
type SessionStore interface {
	Load() (string, error)
	Save(address string) error
	Clear() error
}
