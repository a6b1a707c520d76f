package walletconnect

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ton_portfolio/internal/domain/entity"
	"ton_portfolio/internal/infrastructure/sessionstore"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func TestConnector_ConnectDisconnectNotifies(t *testing.T) {
	c := NewConnector(nil, nopLogger{})
	ctx := context.Background()

	var seen []entity.WalletStatus
	unsubscribe := c.OnStatusChange(func(s entity.WalletStatus) { seen = append(seen, s) })

	require.NoError(t, c.OpenModal(ctx, " 0:abc "))
	assert.True(t, c.Connected())
	assert.Equal(t, "0:abc", c.Account())

	require.NoError(t, c.OpenModal(ctx, "0:abc"))

	require.NoError(t, c.Disconnect(ctx))
	require.NoError(t, c.Disconnect(ctx))
	assert.False(t, c.Connected())
	assert.Empty(t, c.Account())

	require.Len(t, seen, 2)
	assert.Equal(t, entity.WalletStatus{Connected: true, Address: "0:abc"}, seen[0])
	assert.Equal(t, entity.WalletStatus{}, seen[1])

	unsubscribe()
	unsubscribe()
	require.NoError(t, c.OpenModal(ctx, "0:def"))
	assert.Len(t, seen, 2)
}

func TestConnector_ListenersInRegistrationOrder(t *testing.T) {
	c := NewConnector(nil, nopLogger{})
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		c.OnStatusChange(func(entity.WalletStatus) { order = append(order, i) })
	}

	require.NoError(t, c.OpenModal(context.Background(), "0:abc"))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestConnector_RejectsEmptyAddress(t *testing.T) {
	c := NewConnector(nil, nopLogger{})
	assert.Error(t, c.OpenModal(context.Background(), "  "))
	assert.False(t, c.Connected())
}

func TestConnector_PersistsAndRestoresSession(t *testing.T) {
	store := sessionstore.NewFileStore(filepath.Join(t.TempDir(), "session.txt"), nil)

	first := NewConnector(store, nopLogger{})
	require.NoError(t, first.OpenModal(context.Background(), "EQwallet"))

	restored := NewConnector(store, nopLogger{})
	require.NoError(t, restored.Restore())
	assert.Equal(t, entity.WalletStatus{Connected: true, Address: "EQwallet"}, restored.Status())

	require.NoError(t, restored.Disconnect(context.Background()))
	again := NewConnector(store, nopLogger{})
	require.NoError(t, again.Restore())
	assert.False(t, again.Connected())
}
