package rpc_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rust-bitcoin/corepc/pkg/rpc"
)

func TestReadCookieFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	user, pass, err := rpc.ReadCookieFile(write("ok", "__cookie__:abc:def\nignored\n"))
	require.NoError(t, err)
	assert.Equal(t, "__cookie__", user)
	assert.Equal(t, "abc:def", pass)

	_, _, err = rpc.ReadCookieFile(write("empty", ""))
	assert.ErrorIs(t, err, rpc.ErrInvalidCookieFile)

	_, _, err = rpc.ReadCookieFile(write("nocolon", "justauser\n"))
	assert.ErrorIs(t, err, rpc.ErrInvalidCookieFile)

	_, _, err = rpc.ReadCookieFile(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, rpc.ErrInvalidCookieFile)
}

func TestConfig_Credentials(t *testing.T) {
	t.Parallel()

	user, pass, err := rpc.Config{User: "u", Password: "p"}.Credentials()
	require.NoError(t, err)
	assert.Equal(t, []string{"u", "p"}, []string{user, pass})

	user, _, err = rpc.Config{}.Credentials()
	require.NoError(t, err)
	assert.Empty(t, user)

	err = rpc.Config{URL: "http://127.0.0.1:18443", User: "u", CookieFile: "/x/.cookie"}.Validate()
	assert.ErrorIs(t, err, rpc.ErrInvalidConfig)
}

func TestLoadConfig(t *testing.T) {
	dotenv := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte("COREPC_RPC_URL=http://127.0.0.1:38332\nCOREPC_RPC_TIMEOUT=3s\n"), 0o600))
	t.Setenv("COREPC_RPC_USER", "alice")
	t.Setenv("COREPC_RPC_PASSWORD", "secret")
	// godotenv does not override variables that are already set.
	t.Setenv("COREPC_RPC_URL", "")
	require.NoError(t, os.Unsetenv("COREPC_RPC_URL"))
	t.Setenv("COREPC_RPC_TIMEOUT", "")
	require.NoError(t, os.Unsetenv("COREPC_RPC_TIMEOUT"))

	cfg, err := rpc.LoadConfig(dotenv)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:38332", cfg.URL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "alice", cfg.User)
	assert.Equal(t, "secret", cfg.Password)
}
