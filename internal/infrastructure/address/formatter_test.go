package address

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tonaddr "github.com/xssnick/tonutils-go/address"
)

func testAccount() *tonaddr.Address {
	data := make([]byte, 32)
	for i := range data {
		data[i] = byte(i * 7)
	}
	return tonaddr.NewAddress(0, 0, data)
}

func testAddress(t *testing.T) (friendly string, raw string) {
	t.Helper()
	a := testAccount()
	return a.Bounce(true).Testnet(false).String(), "0:" + hex.EncodeToString(a.Data())
}

func TestCanonical_FriendlyAndRawAgree(t *testing.T) {
	friendly, raw := testAddress(t)
	a := testAccount()

	nonBounceable := a.Bounce(false).Testnet(false).String()
	testnet := a.Bounce(true).Testnet(true).String()
	testnetNonBounceable := a.Bounce(false).Testnet(true).String()
	require.True(t, strings.HasPrefix(friendly, "EQ"), friendly)
	require.True(t, strings.HasPrefix(nonBounceable, "UQ"), nonBounceable)
	require.True(t, strings.HasPrefix(testnet, "kQ"), testnet)

	for _, in := range []string{friendly, raw, nonBounceable, testnet, testnetNonBounceable} {
		got, err := Canonical(in)
		require.NoError(t, err, in)
		assert.Equal(t, friendly, got, in)
	}
}

func TestFormatter_FormatIgnoresAddressFlags(t *testing.T) {
	friendly, _ := testAddress(t)
	f := NewFormatter(nil)

	want := friendly[:4] + "..." + friendly[len(friendly)-4:]
	assert.Equal(t, want, f.Format(testAccount().Bounce(false).String()))
	assert.Equal(t, want, f.Format(testAccount().Testnet(true).String()))
}

func TestFormatter_Format(t *testing.T) {
	friendly, raw := testAddress(t)
	f := NewFormatter(nil)

	want := friendly[:4] + "..." + friendly[len(friendly)-4:]
	assert.Equal(t, want, f.Format(friendly))
	assert.Equal(t, want, f.Format(raw))
}

func TestFormatter_Placeholders(t *testing.T) {
	f := NewFormatter(nil)

	assert.Equal(t, UnknownAddress, f.Format(""))
	assert.Equal(t, InvalidAddress, f.Format("not-an-address"))
	assert.Equal(t, InvalidAddress, f.Format("0:zz"))
	assert.Equal(t, UnavailableAddress, f.FormatContract(""))
	assert.Equal(t, InvalidAddress, f.FormatContract("garbage"))
}

func TestShorten(t *testing.T) {
	assert.Equal(t, "abcd...wxyz", Shorten("abcdefghijklmnopqrstuvwxyz"))
	assert.Equal(t, "short", Shorten("short"))
}
