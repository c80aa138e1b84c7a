package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_RequiresStoreSettings(t *testing.T) {
	t.Setenv("STORE_URL", "")
	t.Setenv("STORE_KEY", "")

	_, err := Load(newFlagSet(t))
	require.ErrorIs(t, err, ErrMissingStore)
	assert.Contains(t, err.Error(), "STORE_URL")
	assert.Contains(t, err.Error(), "STORE_KEY")

	t.Setenv("STORE_URL", "grpc://127.0.0.1:50051")
	_, err = Load(newFlagSet(t))
	require.ErrorIs(t, err, ErrMissingStore)
	assert.NotContains(t, err.Error(), "STORE_URL")
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("STORE_URL", "grpc://store:50051")
	t.Setenv("STORE_KEY", "anon")
	t.Setenv("STORE_IGNORED", "x")
	t.Setenv("STUDYDESK_LISTEN", ":9090")
	t.Setenv("STUDYDESK_TIMEZONE", "UTC")

	cfg, err := Load(newFlagSet(t))
	require.NoError(t, err)

	assert.Equal(t, "grpc://store:50051", cfg.StoreURL)
	assert.Equal(t, "anon", cfg.StoreKey)
	assert.Equal(t, ":9090", cfg.Listen)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "json", cfg.LogFormat)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoad_FileThenFlags(t *testing.T) {
	t.Setenv("STORE_URL", "")
	t.Setenv("STORE_KEY", "")

	path := filepath.Join(t.TempDir(), "web.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"store_url: grpc://file:1\n"+
			"store_key: file-key\n"+
			"listen: \":7000\"\n"+
			"request_timeout: 3s\n"), 0o600))

	cfg, err := Load(newFlagSet(t, "-c", path, "--listen", ":7001", "--log-format", "text"))
	require.NoError(t, err)

	assert.Equal(t, "grpc://file:1", cfg.StoreURL)
	assert.Equal(t, ":7001", cfg.Listen)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("STORE_URL", "grpc://x:1")
	t.Setenv("STORE_KEY", "k")

	_, err := Load(newFlagSet(t, "--log-format", "xml"))
	require.Error(t, err)

	_, err = Load(newFlagSet(t, "--timezone", "Mars/Olympus"))
	require.Error(t, err)
}

func TestLocation_DefaultsToLocal(t *testing.T) {
	loc, err := (&Config{}).Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}
