package node

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/rust-bitcoin/corepc/pkg/rpc"
)

// TestRealBitcoind needs a bitcoind of the built-for release in BITCOIND_EXE.
func TestRealBitcoind(t *testing.T) {
	if os.Getenv("BITCOIND_EXE") == "" {
		t.Skip("BITCOIND_EXE not set")
	}
	ctx := context.Background()

	n := NewForTest(t, DefaultConf())
	require.NoError(t, n.Client.CheckExpectedServerVersion(ctx))

	wallet, err := n.WalletClient("default")
	require.NoError(t, err)
	addr, err := wallet.GetNewAddress(ctx)
	require.NoError(t, err)

	hashes, err := n.Client.GenerateToAddress(ctx, 101, addr)
	require.NoError(t, err)
	assert.Len(t, hashes, 101)

	count, err := n.Client.GetBlockCount(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 101, count)

	info, err := n.Client.GetBlockchainInfo(ctx)
	require.NoError(t, err)
	m, err := info.IntoModel()
	require.NoError(t, err)
	assert.EqualValues(t, 101, m.Blocks)
}

// TestDockerBitcoind runs the typed client against a containerised daemon.
func TestDockerBitcoind(t *testing.T) {
	if os.Getenv("COREPC_TEST_DOCKER") != "1" {
		t.Skip("COREPC_TEST_DOCKER not set")
	}
	ctx := context.Background()

	const rpcPort = "18443/tcp"
	container, err := testcontainers.Run(ctx,
		fmt.Sprintf("bitcoin/bitcoin:%s", Version.Release()),
		testcontainers.WithCmd(
			"bitcoind", "-regtest", "-printtoconsole",
			"-rpcbind=0.0.0.0", "-rpcallowip=0.0.0.0/0",
			"-rpcuser=corepc", "-rpcpassword=corepc",
		),
		testcontainers.WithExposedPorts(rpcPort),
		testcontainers.WithWaitStrategy(
			wait.ForListeningPort(rpcPort).WithStartupTimeout(2*time.Minute),
		))
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminate bitcoind container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, rpcPort)
	require.NoError(t, err)

	c, err := NewClient(rpc.Config{
		URL:      fmt.Sprintf("http://%s:%s", host, port.Port()),
		User:     "corepc",
		Password: "corepc",
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return checkReady(ctx, c) == nil
	}, time.Minute, 250*time.Millisecond)
	require.NoError(t, c.CheckExpectedServerVersion(ctx))
}
