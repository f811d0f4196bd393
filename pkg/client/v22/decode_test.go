package v22_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/v17"
	"github.com/rust-bitcoin/corepc/pkg/client/v19"
	"github.com/rust-bitcoin/corepc/pkg/client/v21"
	"github.com/rust-bitcoin/corepc/pkg/client/v22"
	"github.com/rust-bitcoin/corepc/pkg/rpc/rpctest"
)

const (
	txid    = "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"
	tipHash = "0f9188f13cb7b2c71f2a335e3a4fc328bf5beb436012afca590b1a11466e2206"
	address = "bcrt1qw508d6qejxtdg4y5r3zarvary0c5xw7kygt080"
)

func ptr[T any](v T) *T { return &v }

func TestDecodeResults(t *testing.T) {
	tcs := []struct {
		name   string
		method string
		want   any
		call   func(context.Context, *v22.Client) (any, error)
	}{
		{
			name:   "getrawtransaction single address",
			method: "getrawtransaction",
			want: v17.GetRawTransactionVerbose{
				Txid:     txid,
				Hash:     txid,
				Size:     110,
				VSize:    83,
				Weight:   332,
				Version:  2,
				LockTime: 0,
				Vin:      []v17.TxIn{{Coinbase: ptr("510101"), TxInWitness: []string{"00"}, Sequence: 4294967295}},
				Vout: []v17.TxOut{{
					Value: 50,
					N:     0,
					ScriptPubKey: v17.ScriptPubKey{
						Asm:     "0 751e76e8199196d454941c45d1b3a323f1433bd6",
						Hex:     "0014751e76e8199196d454941c45d1b3a323f1433bd6",
						Type:    "witness_v0_keyhash",
						Address: ptr(address),
					},
				}},
				Hex:           "020000000001",
				BlockHash:     ptr(tipHash),
				Confirmations: ptr(int64(1)),
				Time:          ptr(int64(1700000600)),
				BlockTime:     ptr(int64(1700000600)),
			},
			call: func(ctx context.Context, c *v22.Client) (any, error) {
				return c.GetRawTransactionVerbose(ctx, txid)
			},
		},
		{
			name:   "getnetworkinfo",
			method: "getnetworkinfo",
			want: v21.GetNetworkInfo{
				GetNetworkInfo: v19.GetNetworkInfo{
					NetworkInfoCore: v17.NetworkInfoCore{
						Version:         220000,
						Subversion:      "/Satoshi:22.0.0/",
						ProtocolVersion: 70016,
						LocalServices:   "0000000000000409",
						LocalRelay:      true,
						Connections:     0,
						NetworkActive:   true,
						Networks:        []v17.GetNetworkInfoNetwork{{Name: "ipv6", Reachable: true}},
						RelayFee:        0.00001,
						IncrementalFee:  0.00001,
						LocalAddresses:  []v17.GetNetworkInfoAddress{{Address: "fd00::2", Port: 18444, Score: 1}},
					},
					LocalServicesNames: []string{"NETWORK", "WITNESS"},
					Warnings:           "",
				},
				ConnectionsIn:  0,
				ConnectionsOut: 0,
			},
			call: func(ctx context.Context, c *v22.Client) (any, error) { return c.GetNetworkInfo(ctx) },
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			transport := rpctest.NewMockTransport()
			transport.RegisterHandler(tc.method, rpctest.Static(tc.want))
			c := v22.NewFromBase(client.NewBaseWithTransport(client.V22, transport))

			got, err := tc.call(context.Background(), c)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
