package walletconnect

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"ton_portfolio/internal/app/port"
	"ton_portfolio/internal/domain/entity"
)

// Connector is an in-process wallet connector. OpenModal completes with the
// account the wallet handed back; the session store keeps it across restarts.
type Connector struct {
	store  port.SessionStore
	logger port.Logger

	mu        sync.Mutex
	status    entity.WalletStatus
	listeners map[int]func(entity.WalletStatus)
	nextID    int
}

// NewConnector creates a disconnected Connector. store may be nil.
func NewConnector(store port.SessionStore, logger port.Logger) *Connector {
	return &Connector{
		store:     store,
		logger:    logger,
		listeners: make(map[int]func(entity.WalletStatus)),
	}
}

// Restore reconnects the account kept by the session store, without notifying listeners.
func (c *Connector) Restore() error {
	if c.store == nil {
		return nil
	}
	addr, err := c.store.Load()
	if err != nil {
		return fmt.Errorf("restore wallet session: %w", err)
	}
	if addr == "" {
		return nil
	}

	c.mu.Lock()
	c.status = entity.WalletStatus{Connected: true, Address: addr}
	c.mu.Unlock()
	c.logger.Info("Wallet session restored")
	return nil
}

func (c *Connector) Status() entity.WalletStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func (c *Connector) Connected() bool {
	return c.Status().Connected
}

// Account returns the connected address, or "" while disconnected.
func (c *Connector) Account() string {
	return c.Status().Address
}

// OpenModal connects the wallet identified by address.
func (c *Connector) OpenModal(ctx context.Context, address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return fmt.Errorf("wallet returned an empty account address")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	if c.status.Connected && c.status.Address == address {
		c.mu.Unlock()
		return nil
	}
	c.status = entity.WalletStatus{Connected: true, Address: address}
	c.mu.Unlock()

	if c.store != nil {
		if err := c.store.Save(address); err != nil {
			c.logger.Warn("Failed to persist wallet session", "error", err)
		}
	}
	c.notify(entity.WalletStatus{Connected: true, Address: address})
	return nil
}

// Disconnect drops the wallet session. Disconnecting twice is a no-op.
func (c *Connector) Disconnect(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	if !c.status.Connected {
		c.mu.Unlock()
		return nil
	}
	c.status = entity.WalletStatus{}
	c.mu.Unlock()

	if c.store != nil {
		if err := c.store.Clear(); err != nil {
			c.logger.Warn("Failed to clear wallet session", "error", err)
		}
	}
	c.notify(entity.WalletStatus{})
	return nil
}

func (c *Connector) OnStatusChange(listener func(entity.WalletStatus)) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = listener
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.listeners, id)
			c.mu.Unlock()
		})
	}
}

// notify calls listeners in registration order outside the lock.
func (c *Connector) notify(status entity.WalletStatus) {
	c.mu.Lock()
	ids := make([]int, 0, len(c.listeners))
	for id := range c.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(entity.WalletStatus), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, c.listeners[id])
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(status)
	}
}
