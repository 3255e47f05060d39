package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultRPCEndpoint, cfg.RPC.Endpoint)
	assert.Equal(t, DefaultWSEndpoint, cfg.RPC.WSEndpoint)
	assert.Equal(t, 30*time.Second, cfg.RPC.RequestTimeout.Std())
	assert.Equal(t, DefaultKeypairPath, cfg.Wallet.KeypairPath)
	assert.Equal(t, QueryEnabled, cfg.Wallet.Query)
	assert.Equal(t, "info", cfg.Log.Level)

	require.NoError(t, cfg.Validate())
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
rpc:
  endpoint: https://example.test/rpc
  request_timeout: 5s
wallet:
  query: disabled
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.test/rpc", cfg.RPC.Endpoint)
	assert.Equal(t, 5*time.Second, cfg.RPC.RequestTimeout.Std())
	assert.Equal(t, QueryDisabled, cfg.Wallet.Query)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Fields the file omits keep their defaults
	assert.Equal(t, DefaultWSEndpoint, cfg.RPC.WSEndpoint)
	assert.Equal(t, DefaultKeypairPath, cfg.Wallet.KeypairPath)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidQueryMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("wallet:\n  query: maybe\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wallet.query")
}

func TestLoad_BadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rpc:\n  request_timeout: soon\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.RPC.Endpoint = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Wallet.Query = "on"
	assert.Error(t, cfg.Validate())
}
