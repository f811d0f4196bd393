package v30_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/model"
	"github.com/rust-bitcoin/corepc/pkg/client/v17"
	"github.com/rust-bitcoin/corepc/pkg/client/v28"
	"github.com/rust-bitcoin/corepc/pkg/client/v29"
	"github.com/rust-bitcoin/corepc/pkg/client/v30"
	"github.com/rust-bitcoin/corepc/pkg/rpc/rpctest"
)

const (
	tipHash = "0f9188f13cb7b2c71f2a335e3a4fc328bf5beb436012afca590b1a11466e2206"
	target  = "7fffff0000000000000000000000000000000000000000000000000000000000"
)

func ptr[T any](v T) *T { return &v }

func TestDecodeResults(t *testing.T) {
	const (
		txid      = "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"
		chainWork = "0000000000000000000000000000000000000000000000000000000000000192"
	)

	tcs := []struct {
		name      string
		method    string
		want      any
		call      func(context.Context, *v30.Client) (any, error)
		into      func(any) (any, error)
		wantModel any
	}{
		{
			name:   "getblockchaininfo bits and target",
			method: "getblockchaininfo",
			want: v29.GetBlockchainInfo{
				GetBlockchainInfo: v28.GetBlockchainInfo{
					BlockchainInfoCore: v17.BlockchainInfoCore{
						Chain:                "regtest",
						Blocks:               200,
						Headers:              200,
						BestBlockHash:        tipHash,
						Difficulty:           4.656542373906925e-10,
						MedianTime:           1700000000,
						VerificationProgress: 1,
						InitialBlockDownload: false,
						ChainWork:            chainWork,
						SizeOnDisk:           61234,
						Pruned:               true,
						PruneHeight:          ptr(int64(0)),
						AutomaticPruning:     ptr(false),
						PruneTargetSize:      ptr(int64(0)),
					},
					Time:     1700000600,
					Warnings: []string{"This is a pre-release test build"},
				},
				Bits:   "207fffff",
				Target: target,
			},
			call: func(ctx context.Context, c *v30.Client) (any, error) { return c.GetBlockchainInfo(ctx) },
			into: func(v any) (any, error) { return v.(v29.GetBlockchainInfo).IntoModel() },
			wantModel: model.GetBlockchainInfo{
				Chain:                model.Regtest,
				Blocks:               200,
				Headers:              200,
				BestBlockHash:        tipHash,
				Bits:                 "207fffff",
				Target:               target,
				Difficulty:           4.656542373906925e-10,
				Time:                 ptr(uint32(1700000600)),
				MedianTime:           1700000000,
				VerificationProgress: 1,
				ChainWork:            chainWork,
				SizeOnDisk:           61234,
				Pruned:               true,
				PruneHeight:          ptr(uint32(0)),
				AutomaticPruning:     ptr(false),
				PruneTargetSize:      ptr(uint64(0)),
				Warnings:             []string{"This is a pre-release test build"},
			},
		},
		{
			name:   "getmininginfo next block",
			method: "getmininginfo",
			want: v29.GetMiningInfo{
				GetMiningInfo: v28.GetMiningInfo{
					MiningInfoCore: v17.MiningInfoCore{
						Blocks:             200,
						CurrentBlockWeight: ptr(int64(4000)),
						CurrentBlockTx:     ptr(int64(1)),
						Difficulty:         4.656542373906925e-10,
						NetworkHashPS:      0.0001,
						PooledTx:           2,
						Chain:              "regtest",
					},
					Warnings: []string{"This is a pre-release test build"},
				},
				Bits:   "207fffff",
				Target: target,
				Next: v29.NextBlockInfo{
					Height:     201,
					Bits:       "207fffff",
					Difficulty: 4.656542373906925e-10,
					Target:     target,
				},
			},
			call: func(ctx context.Context, c *v30.Client) (any, error) { return c.GetMiningInfo(ctx) },
			into: func(v any) (any, error) { return v.(v29.GetMiningInfo).IntoModel() },
			wantModel: model.GetMiningInfo{
				Blocks:             200,
				CurrentBlockWeight: ptr(uint64(4000)),
				CurrentBlockTx:     ptr(uint32(1)),
				Bits:               "207fffff",
				Target:             target,
				Difficulty:         4.656542373906925e-10,
				NetworkHashPS:      0.0001,
				PooledTx:           2,
				Chain:              model.Regtest,
				Next: &model.NextBlockInfo{
					Height:     201,
					Bits:       "207fffff",
					Difficulty: 4.656542373906925e-10,
					Target:     target,
				},
				Warnings: []string{"This is a pre-release test build"},
			},
		},
		{
			name:   "getblock target",
			method: "getblock",
			want: v29.GetBlockVerboseOne{
				GetBlockVerboseOne: v17.GetBlockVerboseOne{
					Hash:              tipHash,
					Confirmations:     1,
					Size:              250,
					StrippedSize:      214,
					Weight:            892,
					Height:            200,
					Version:           536870912,
					VersionHex:        "20000000",
					MerkleRoot:        txid,
					Tx:                []string{txid},
					Time:              1700000600,
					MedianTime:        1700000000,
					Nonce:             1,
					Bits:              "207fffff",
					Difficulty:        4.656542373906925e-10,
					ChainWork:         chainWork,
					NTx:               1,
					PreviousBlockHash: ptr(txid),
					NextBlockHash:     ptr(txid),
				},
				Target: target,
			},
			call: func(ctx context.Context, c *v30.Client) (any, error) { return c.GetBlockVerboseOne(ctx, tipHash) },
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			transport := rpctest.NewMockTransport()
			transport.RegisterHandler(tc.method, rpctest.Static(tc.want))
			c := v30.NewFromBase(client.NewBaseWithTransport(client.V30, transport))

			got, err := tc.call(context.Background(), c)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			if tc.into == nil {
				return
			}
			m, err := tc.into(got)
			require.NoError(t, err)
			assert.Equal(t, tc.wantModel, m)
		})
	}
}
