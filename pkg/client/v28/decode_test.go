package v28_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/model"
	"github.com/rust-bitcoin/corepc/pkg/client/v17"
	"github.com/rust-bitcoin/corepc/pkg/client/v28"
	"github.com/rust-bitcoin/corepc/pkg/rpc/rpctest"
)

func ptr[T any](v T) *T { return &v }

func TestDecodeResults(t *testing.T) {
	warnings := []string{"This is a pre-release test build", "unknown new rules activated"}

	tcs := []struct {
		name      string
		method    string
		want      any
		call      func(context.Context, *v28.Client) (any, error)
		into      func(any) (any, error)
		wantModel any
	}{
		{
			name:   "getblockchaininfo warnings array",
			method: "getblockchaininfo",
			want: v28.GetBlockchainInfo{
				BlockchainInfoCore: v17.BlockchainInfoCore{
					Chain:                "testnet4",
					Blocks:               50000,
					Headers:              50010,
					BestBlockHash:        tipHash,
					Difficulty:           1,
					MedianTime:           1700000000,
					VerificationProgress: 0.5,
					InitialBlockDownload: true,
					ChainWork:            "00000000000000000000000000000000000000000000000000000000deadbeef",
					SizeOnDisk:           2097152,
					Pruned:               true,
					PruneHeight:          ptr(int64(40000)),
					AutomaticPruning:     ptr(true),
					PruneTargetSize:      ptr(int64(576716800)),
				},
				Time:     1700000600,
				Warnings: warnings,
			},
			call: func(ctx context.Context, c *v28.Client) (any, error) { return c.GetBlockchainInfo(ctx) },
			into: func(v any) (any, error) { return v.(v28.GetBlockchainInfo).IntoModel() },
			wantModel: model.GetBlockchainInfo{
				Chain:                model.Testnet4,
				Blocks:               50000,
				Headers:              50010,
				BestBlockHash:        tipHash,
				Difficulty:           1,
				Time:                 ptr(uint32(1700000600)),
				MedianTime:           1700000000,
				VerificationProgress: 0.5,
				InitialBlockDownload: true,
				ChainWork:            "00000000000000000000000000000000000000000000000000000000deadbeef",
				SizeOnDisk:           2097152,
				Pruned:               true,
				PruneHeight:          ptr(uint32(40000)),
				AutomaticPruning:     ptr(true),
				PruneTargetSize:      ptr(uint64(576716800)),
				Warnings:             warnings,
			},
		},
		{
			name:   "getmininginfo warnings array",
			method: "getmininginfo",
			want: v28.GetMiningInfo{
				MiningInfoCore: v17.MiningInfoCore{
					Blocks:             50000,
					CurrentBlockWeight: ptr(int64(3992)),
					CurrentBlockTx:     ptr(int64(1)),
					Difficulty:         1,
					NetworkHashPS:      7158278.826666667,
					PooledTx:           4,
					Chain:              "testnet4",
				},
				Warnings: warnings,
			},
			call: func(ctx context.Context, c *v28.Client) (any, error) { return c.GetMiningInfo(ctx) },
			into: func(v any) (any, error) { return v.(v28.GetMiningInfo).IntoModel() },
			wantModel: model.GetMiningInfo{
				Blocks:             50000,
				CurrentBlockWeight: ptr(uint64(3992)),
				CurrentBlockTx:     ptr(uint32(1)),
				Difficulty:         1,
				NetworkHashPS:      7158278.826666667,
				PooledTx:           4,
				Chain:              model.Testnet4,
				Warnings:           warnings,
			},
		},
		{
			name:   "getnetworkinfo warnings array",
			method: "getnetworkinfo",
			want: v28.GetNetworkInfo{
				NetworkInfoCore: v17.NetworkInfoCore{
					Version:         280100,
					Subversion:      "/Satoshi:28.1.0/",
					ProtocolVersion: 70016,
					LocalServices:   "0000000000000c09",
					LocalRelay:      true,
					TimeOffset:      0,
					Connections:     10,
					NetworkActive:   true,
					Networks: []v17.GetNetworkInfoNetwork{
						{Name: "cjdns", Limited: true},
						{Name: "ipv4", Reachable: true},
					},
					RelayFee:       0.000001,
					IncrementalFee: 0.000001,
					LocalAddresses: []v17.GetNetworkInfoAddress{{Address: "203.0.113.7", Port: 48333, Score: 3}},
				},
				LocalServicesNames: []string{"NETWORK", "WITNESS", "NETWORK_LIMITED", "P2P_V2"},
				ConnectionsIn:      2,
				ConnectionsOut:     8,
				Warnings:           warnings,
			},
			call: func(ctx context.Context, c *v28.Client) (any, error) { return c.GetNetworkInfo(ctx) },
			into: func(v any) (any, error) { return v.(v28.GetNetworkInfo).IntoModel() },
			wantModel: model.GetNetworkInfo{
				Version:            280100,
				Subversion:         "/Satoshi:28.1.0/",
				ProtocolVersion:    70016,
				LocalServices:      "0000000000000c09",
				LocalServicesNames: []string{"NETWORK", "WITNESS", "NETWORK_LIMITED", "P2P_V2"},
				LocalRelay:         true,
				Connections:        10,
				ConnectionsIn:      ptr(uint32(2)),
				ConnectionsOut:     ptr(uint32(8)),
				NetworkActive:      true,
				Networks: []model.GetNetworkInfoNetwork{
					{Name: "cjdns", Limited: true},
					{Name: "ipv4", Reachable: true},
				},
				RelayFee:       100,
				IncrementalFee: 100,
				LocalAddresses: []model.GetNetworkInfoAddress{{Address: "203.0.113.7", Port: 48333, Score: 3}},
				Warnings:       warnings,
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			transport := rpctest.NewMockTransport()
			transport.RegisterHandler(tc.method, rpctest.Static(tc.want))
			c := v28.NewFromBase(client.NewBaseWithTransport(client.V28, transport))

			got, err := tc.call(context.Background(), c)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			m, err := tc.into(got)
			require.NoError(t, err)
			assert.Equal(t, tc.wantModel, m)
		})
	}
}
