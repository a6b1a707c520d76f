package configloader

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, DefaultStonFiRPCURL, cfg.StonFi.RPCURL)
	assert.Equal(t, DefaultTonAPIBaseURL, cfg.TonAPI.BaseURL)
	assert.Equal(t, DefaultPriceInterval, cfg.TonAPI.Interval)
	assert.Equal(t, 5, cfg.View.PriceHistoryRows)
	assert.Equal(t, 6, cfg.View.BalancePrecision)
	assert.Equal(t, 10*time.Second, cfg.StonFiTimeout())
	assert.Equal(t, 10*time.Second, cfg.TonAPITimeout())
	assert.Equal(t, 5*time.Second, cfg.NoticeTTL())
}

func TestLoad_OverridesAndInheritedTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	body := `
server:
  port: "9090"
stonfi:
  rpcURL: http://localhost:1234
  requestTimeoutMillis: 2500
view:
  priceHistoryRows: 3
session:
  restoreOnStart: true
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "http://localhost:1234", cfg.StonFi.RPCURL)
	assert.Equal(t, 2500*time.Millisecond, cfg.TonAPITimeout())
	assert.Equal(t, 3, cfg.View.PriceHistoryRows)
	assert.True(t, cfg.Session.RestoreOnStart)
	assert.Equal(t, DefaultSessionFile, cfg.Session.FilePath)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unterminated"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
