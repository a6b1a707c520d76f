package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ton_portfolio/internal/app/port"
	"ton_portfolio/internal/domain/entity"
	"ton_portfolio/internal/infrastructure/configloader"
	"ton_portfolio/internal/pkg/metrics"
	"ton_portfolio/internal/pkg/utils"
)

const (
	copySuccessMessage = "Adresse copiée dans le presse-papiers !"
	copyFailureMessage = "Erreur lors de la copie de l'adresse"
)

var _ port.SessionService = (*SessionServiceImpl)(nil)

// SessionServiceImpl implements port.SessionService. It reacts to wallet
// status changes and owns everything the wallet page displays.
type SessionServiceImpl struct {
	connector port.WalletConnector
	balances  port.BalanceSource
	prices    port.PriceHistorySource
	formatter port.AddressFormatter
	clipboard port.Clipboard
	notices   port.NoticeBoard
	logger    port.Logger
	cfg       *configloader.Config

	baseCtx     context.Context
	unsubscribe func()

	mu            sync.Mutex
	loading       bool
	walletAddress string
	tokens        []entity.Token
	selectedIndex int
	selected      *entity.Token
	priceHistory  []entity.PriceData

	subMu       sync.Mutex
	subscribers map[int]chan entity.ViewState
	nextSubID   int
}

// NewSessionService creates a new instance of SessionServiceImpl.
// The view starts in the loading state until Start runs the initial wallet check.
func NewSessionService(
	connector port.WalletConnector,
	balances port.BalanceSource,
	prices port.PriceHistorySource,
	formatter port.AddressFormatter,
	clipboard port.Clipboard,
	notices port.NoticeBoard,
	l port.Logger,
	config *configloader.Config,
) *SessionServiceImpl {
	return &SessionServiceImpl{
		connector:     connector,
		balances:      balances,
		prices:        prices,
		formatter:     formatter,
		clipboard:     clipboard,
		notices:       notices,
		logger:        l,
		cfg:           config,
		baseCtx:       context.Background(),
		loading:       true,
		selectedIndex: -1,
		subscribers:   make(map[int]chan entity.ViewState),
	}
}

// Start performs the initial connection check and subscribes to status changes.
// ctx bounds the fetches triggered by status changes.
func (s *SessionServiceImpl) Start(ctx context.Context) {
	s.baseCtx = ctx

	if status := s.connector.Status(); status.Connected && status.Address != "" {
		s.handleWalletConnection(status.Address)
	} else {
		s.handleWalletDisconnection()
	}

	s.unsubscribe = s.connector.OnStatusChange(func(status entity.WalletStatus) {
		if status.Connected && status.Address != "" {
			s.handleWalletConnection(status.Address)
		} else {
			s.handleWalletDisconnection()
		}
	})
}

// Stop removes the status-change subscription and closes view subscribers.
func (s *SessionServiceImpl) Stop() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}

	s.subMu.Lock()
	for id, ch := range s.subscribers {
		close(ch)
		delete(s.subscribers, id)
	}
	s.subMu.Unlock()
}

func (s *SessionServiceImpl) handleWalletConnection(address string) {
	s.mu.Lock()
	changed := s.walletAddress != address
	if changed {
		s.walletAddress = address
		s.tokens = nil
		s.clearSelectionLocked()
	}
	s.loading = false
	s.mu.Unlock()

	metrics.WalletStatusChanges.WithLabelValues("connected").Inc()
	s.logger.Info("Wallet connected successfully", "address", address)
	s.publish()

	if changed {
		s.fetchTokens(address)
	}
}

func (s *SessionServiceImpl) handleWalletDisconnection() {
	s.mu.Lock()
	s.walletAddress = ""
	s.tokens = nil
	s.clearSelectionLocked()
	s.loading = false
	s.mu.Unlock()

	if s.notices != nil {
		s.notices.Clear()
	}
	metrics.WalletStatusChanges.WithLabelValues("disconnected").Inc()
	metrics.DisplayedTokens.Set(0)
	s.logger.Info("Wallet disconnected successfully")
	s.publish()
}

func (s *SessionServiceImpl) clearSelectionLocked() {
	s.selected = nil
	s.selectedIndex = -1
	s.priceHistory = nil
}

// fetchTokens loads the balance list once and keeps only non-zero entries.
// Failures leave an empty list. Results for a wallet that is no longer
// connected are dropped.
func (s *SessionServiceImpl) fetchTokens(address string) {
	ctx, cancel := context.WithTimeout(s.baseCtx, s.cfg.StonFiTimeout())
	defer cancel()

	started := time.Now()
	assets, err := s.balances.BalanceList(ctx, address)
	metrics.ObserveUpstream("balance_list", started, err)

	var tokens []entity.Token
	if err != nil {
		s.logger.Error("Error fetching assets", "address", address, "error", err)
	} else {
		tokens = utils.FilterNonZero(assets)
		s.logger.Debug("Assets filtered", "received", len(assets), "nonZero", len(tokens))
	}

	s.mu.Lock()
	if s.walletAddress != address {
		s.mu.Unlock()
		s.logger.Debug("Discarding balances for a wallet that is no longer connected", "address", address)
		return
	}
	s.tokens = tokens
	s.mu.Unlock()

	metrics.DisplayedTokens.Set(float64(len(tokens)))
	s.publish()
}

// WalletAction disconnects a connected wallet, otherwise connects address.
func (s *SessionServiceImpl) WalletAction(ctx context.Context, address string) error {
	if s.connector.Connected() {
		s.mu.Lock()
		s.loading = true
		s.mu.Unlock()
		s.publish()

		if err := s.connector.Disconnect(ctx); err != nil {
			s.mu.Lock()
			s.loading = false
			s.mu.Unlock()
			s.publish()
			return fmt.Errorf("disconnect wallet: %w", err)
		}
		return nil
	}

	if err := s.connector.OpenModal(ctx, address); err != nil {
		return fmt.Errorf("connect wallet: %w", err)
	}
	return nil
}

// SelectToken shows the price history of the token at index.
// Tokens without a symbol are ignored.
func (s *SessionServiceImpl) SelectToken(ctx context.Context, index int) error {
	s.mu.Lock()
	if index < 0 || index >= len(s.tokens) {
		s.mu.Unlock()
		return fmt.Errorf("%w: index %d", port.ErrTokenNotFound, index)
	}
	token := s.tokens[index]
	address := s.walletAddress
	if token.Symbol == "" {
		s.mu.Unlock()
		s.logger.Info("Token symbol unavailable", "token", token.DisplayName)
		return nil
	}
	if s.selectedIndex != index {
		s.priceHistory = nil
	}
	s.selected = &token
	s.selectedIndex = index
	s.mu.Unlock()
	s.publish()

	history := s.fetchPriceHistory(ctx, token.Symbol)

	s.mu.Lock()
	if s.walletAddress != address || s.selectedIndex != index {
		s.mu.Unlock()
		return nil
	}
	s.priceHistory = history
	s.mu.Unlock()
	s.publish()
	return nil
}

func (s *SessionServiceImpl) fetchPriceHistory(ctx context.Context, symbol string) []entity.PriceData {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.TonAPITimeout())
	defer cancel()

	started := time.Now()
	points, err := s.prices.PriceHistory(ctx, symbol, s.cfg.TonAPI.Interval)
	metrics.ObserveUpstream("price_history", started, err)
	if err != nil {
		s.logger.Error("Error fetching price history", "symbol", symbol, "error", err)
		return nil
	}
	return points
}

// CopyAddress copies the full wallet address and posts an acknowledgement.
// A clipboard failure is reported through the notice, not the error.
func (s *SessionServiceImpl) CopyAddress() (entity.Notice, error) {
	s.mu.Lock()
	address := s.walletAddress
	s.mu.Unlock()
	if address == "" {
		return entity.Notice{}, port.ErrNotConnected
	}

	n := entity.Notice{Level: entity.NoticeSuccess, Message: copySuccessMessage, CreatedAt: time.Now()}
	if err := s.clipboard.WriteText(address); err != nil {
		s.logger.Error("Error copying address", "error", err)
		n = entity.Notice{Level: entity.NoticeError, Message: copyFailureMessage, CreatedAt: time.Now()}
	}
	if s.notices != nil {
		s.notices.Post(n)
	}
	s.publish()
	return n, nil
}

// View returns the rendered page state.
func (s *SessionServiceImpl) View() entity.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *SessionServiceImpl) viewLocked() entity.ViewState {
	v := entity.ViewState{
		Loading:      s.loading,
		Tokens:       []entity.TokenRow{},
		PriceHistory: []entity.PriceRow{},
	}
	if s.loading || s.walletAddress == "" {
		return v
	}

	v.Connected = true
	v.WalletAddress = s.walletAddress
	v.DisplayAddress = s.formatter.Format(s.walletAddress)
	v.Tokens = RenderTokenRows(s.tokens, s.formatter, s.cfg.View.BalancePrecision)

	if s.selected != nil {
		row := renderTokenRow(s.selectedIndex, *s.selected, s.formatter, s.cfg.View.BalancePrecision)
		v.SelectedToken = &row
		v.PriceHistory = RenderPriceRows(s.priceHistory, s.cfg.View.PriceHistoryRows)
	}

	if s.notices != nil {
		if n, ok := s.notices.Current(); ok {
			v.Notice = &n
		}
	}
	return v
}

// Subscribe returns a channel receiving the view after every change.
// Slow readers only see the most recent view.
func (s *SessionServiceImpl) Subscribe() (<-chan entity.ViewState, func()) {
	ch := make(chan entity.ViewState, 1)

	s.subMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = ch
	s.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.subMu.Lock()
			if c, ok := s.subscribers[id]; ok {
				close(c)
				delete(s.subscribers, id)
			}
			s.subMu.Unlock()
		})
	}
}

// publish snapshots the view under subMu so deliveries follow state order.
func (s *SessionServiceImpl) publish() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	if len(s.subscribers) == 0 {
		return
	}

	view := s.View()
	for _, ch := range s.subscribers {
		select {
		case ch <- view:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- view
		}
	}
}
