package v26_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/v17"
	"github.com/rust-bitcoin/corepc/pkg/client/v25"
	"github.com/rust-bitcoin/corepc/pkg/client/v26"
	"github.com/rust-bitcoin/corepc/pkg/rpc/rpctest"
)

func setup(t *testing.T) (*v26.Client, *rpctest.MockTransport) {
	t.Helper()
	transport := rpctest.NewMockTransport()
	return v26.NewFromBase(client.NewBaseWithTransport(client.V26, transport)), transport
}

func TestGetPrioritisedTransactions(t *testing.T) {
	c, transport := setup(t)
	txid := "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"
	transport.RegisterHandler("getprioritisedtransactions", rpctest.Static(map[string]any{
		txid: map[string]any{"fee_delta": 10000, "in_mempool": false},
	}))

	res, err := c.GetPrioritisedTransactions(context.Background())
	require.NoError(t, err)
	require.Contains(t, res, txid)
	assert.Equal(t, int64(10000), res[txid].FeeDelta)
	assert.Nil(t, res[txid].ModifiedFee)
}

func TestGetPrioritisedTransactionsIntroducedInV26(t *testing.T) {
	_, ok := reflect.TypeOf(&v25.Client{}).MethodByName("GetPrioritisedTransactions")
	assert.False(t, ok)
	_, ok = reflect.TypeOf(&v26.Client{}).MethodByName("GetPrioritisedTransactions")
	assert.True(t, ok)
}

func TestAddNodeV2(t *testing.T) {
	c, transport := setup(t)
	transport.RegisterHandler("addnode", rpctest.Static(nil))

	require.NoError(t, c.AddNodeV2(context.Background(), "127.0.0.1:18444", v17.AddNodeOneTry, true))
	require.NoError(t, c.AddNode(context.Background(), "127.0.0.1:18445", v17.AddNodeAdd))

	reqs := transport.Requests()
	require.Len(t, reqs, 2)
	require.Len(t, reqs[0].Params, 3)
	assert.Equal(t, "true", string(reqs[0].Params[2]))
	assert.Len(t, reqs[1].Params, 2)
}

func TestCreateWalletWarnings(t *testing.T) {
	c, transport := setup(t)
	transport.RegisterHandler("createwallet", rpctest.Static(map[string]any{
		"name":     "w1",
		"warnings": []string{"Empty string given as passphrase, wallet will not be encrypted."},
	}))

	res, err := c.CreateWallet(context.Background(), "w1")
	require.NoError(t, err)
	m, err := res.IntoModel()
	require.NoError(t, err)
	assert.Equal(t, "w1", m.Name)
	assert.Len(t, m.Warnings, 1)

	transport.RegisterHandler("createwallet", rpctest.Static(map[string]any{"name": "w2"}))
	res, err = c.CreateWallet(context.Background(), "w2")
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
}
