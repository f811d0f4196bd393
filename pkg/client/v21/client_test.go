package v21_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/v21"
	"github.com/rust-bitcoin/corepc/pkg/rpc/rpctest"
)

func TestGetNetworkInfoConnectionsByDirection(t *testing.T) {
	transport := rpctest.NewMockTransport()
	c := v21.NewFromBase(client.NewBaseWithTransport(client.V21, transport))
	transport.RegisterHandler("getnetworkinfo", rpctest.Static(json.RawMessage(`{
		"version": 210200, "subversion": "/Satoshi:0.21.2/", "protocolversion": 70016,
		"localservices": "0000000000000409", "localservicesnames": ["NETWORK", "WITNESS"],
		"localrelay": true, "timeoffset": 0, "networkactive": true,
		"connections": 3, "connections_in": 1, "connections_out": 2,
		"networks": [], "relayfee": 0.00001, "incrementalfee": 0.00001, "localaddresses": [],
		"warnings": ""
	}`)))

	info, err := c.GetNetworkInfo(context.Background())
	require.NoError(t, err)
	m, err := info.IntoModel()
	require.NoError(t, err)
	require.NotNil(t, m.ConnectionsIn)
	require.NotNil(t, m.ConnectionsOut)
	assert.Equal(t, uint32(1), *m.ConnectionsIn)
	assert.Equal(t, uint32(2), *m.ConnectionsOut)
	assert.Equal(t, uint32(3), m.Connections)
	assert.Equal(t, client.V21, c.Version())
}
