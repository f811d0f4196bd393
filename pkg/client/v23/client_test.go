package v23_test

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/model"
	"github.com/rust-bitcoin/corepc/pkg/client/v22"
	"github.com/rust-bitcoin/corepc/pkg/client/v23"
	"github.com/rust-bitcoin/corepc/pkg/rpc/rpctest"
)

const tipHash = "0f9188f13cb7b2c71f2a335e3a4fc328bf5beb436012afca590b1a11466e2206"

func setup(t *testing.T) (*v23.Client, *rpctest.MockTransport) {
	t.Helper()
	transport := rpctest.NewMockTransport()
	return v23.NewFromBase(client.NewBaseWithTransport(client.V23, transport)), transport
}

func TestGetBlockchainInfoTime(t *testing.T) {
	c, transport := setup(t)
	transport.RegisterHandler("getblockchaininfo", rpctest.Static(json.RawMessage(`{
		"chain": "regtest", "blocks": 1, "headers": 1, "bestblockhash": "`+tipHash+`",
		"difficulty": 4.656542373906925e-10, "time": 1700000600, "mediantime": 1700000000,
		"verificationprogress": 1, "initialblockdownload": false,
		"chainwork": "0000000000000000000000000000000000000000000000000000000000000004",
		"size_on_disk": 577, "pruned": false, "warnings": ""
	}`)))

	info, err := c.GetBlockchainInfo(context.Background())
	require.NoError(t, err)
	m, err := info.IntoModel()
	require.NoError(t, err)
	require.NotNil(t, m.Time)
	assert.Equal(t, uint32(1700000600), *m.Time)
	assert.Empty(t, m.Softforks)
}

func TestSaveMempoolReturnsFilename(t *testing.T) {
	c, transport := setup(t)
	transport.RegisterHandler("savemempool", rpctest.Static(map[string]any{"filename": "/data/regtest/mempool.dat"}))

	res, err := c.SaveMempool(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/data/regtest/mempool.dat", res.Filename)
}

func TestGetDeploymentInfo(t *testing.T) {
	c, transport := setup(t)
	transport.RegisterHandler("getdeploymentinfo", rpctest.Static(json.RawMessage(`{
		"hash": "`+tipHash+`",
		"height": 0,
		"deployments": {
			"segwit": {"type": "buried", "active": true, "height": 0},
			"taproot": {
				"type": "bip9",
				"active": true,
				"height": 0,
				"bip9": {
					"start_time": -1, "timeout": 9223372036854775807, "min_activation_height": 0,
					"status": "active", "since": 0, "status_next": "active"
				}
			}
		}
	}`)))

	info, err := c.GetDeploymentInfoAt(context.Background(), tipHash)
	require.NoError(t, err)
	sf, err := info.Softforks()
	require.NoError(t, err)
	assert.Equal(t, model.SoftforkBuried, sf["segwit"].Type)
	require.NotNil(t, sf["taproot"].BIP9)
	assert.Equal(t, model.BIP9Active, sf["taproot"].BIP9.Status)

	reqs := transport.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, `"`+tipHash+`"`, string(reqs[0].Params[0]))
}

func TestGetDeploymentInfoIntroducedInV23(t *testing.T) {
	_, ok := reflect.TypeOf(&v22.Client{}).MethodByName("GetDeploymentInfo")
	assert.False(t, ok)
	_, ok = reflect.TypeOf(&v23.Client{}).MethodByName("GetDeploymentInfo")
	assert.True(t, ok)

	m, _ := reflect.TypeOf(&v22.Client{}).MethodByName("SaveMempool")
	assert.Equal(t, 1, m.Type.NumOut(), "savemempool returns null before v23")
	m, _ = reflect.TypeOf(&v23.Client{}).MethodByName("SaveMempool")
	assert.Equal(t, 2, m.Type.NumOut())
}
