package v30_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/v29"
	"github.com/rust-bitcoin/corepc/pkg/client/v30"
	"github.com/rust-bitcoin/corepc/pkg/rpc"
	"github.com/rust-bitcoin/corepc/pkg/rpc/rpctest"
)

func TestServerVersion(t *testing.T) {
	transport := rpctest.NewMockTransport()
	transport.RegisterHandler("getnetworkinfo", rpctest.Static(map[string]any{"version": 300000}))
	c := v30.NewFromBase(client.NewBaseWithTransport(client.V30, transport))

	assert.Equal(t, client.V30, c.Version())
	require.NoError(t, c.CheckExpectedServerVersion(context.Background()))

	transport.RegisterHandler("getnetworkinfo", rpctest.Static(map[string]any{"version": 290100}))
	require.ErrorIs(t, c.CheckExpectedServerVersion(context.Background()), client.ErrUnexpectedServerVersion)
}

func TestSameShapesAsV29(t *testing.T) {
	for _, name := range []string{"GetBlockchainInfo", "GetMiningInfo", "GetNetworkInfo", "GetBlockVerboseOne", "CreateWallet"} {
		m29, ok := reflect.TypeOf(&v29.Client{}).MethodByName(name)
		require.True(t, ok, name)
		m30, ok := reflect.TypeOf(&v30.Client{}).MethodByName(name)
		require.True(t, ok, name)
		assert.Equal(t, m29.Type.Out(0), m30.Type.Out(0), name)
	}
}

func TestNew(t *testing.T) {
	c, err := v30.New(rpc.Config{URL: "http://127.0.0.1:18443", User: "user", Password: "pass"})
	require.NoError(t, err)
	assert.Equal(t, client.V30, c.Version())

	_, err = v30.New(rpc.Config{URL: "::"})
	require.ErrorIs(t, err, rpc.ErrInvalidConfig)
}
