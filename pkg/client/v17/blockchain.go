package v17

import (
	"context"

	"github.com/rust-bitcoin/corepc/pkg/client"
)

// BlockchainInfoCore holds the getblockchaininfo fields every version reports.
type BlockchainInfoCore struct {
	Chain                string  `json:"chain"`
	Blocks               int64   `json:"blocks"`
	Headers              int64   `json:"headers"`
	BestBlockHash        string  `json:"bestblockhash"`
	Difficulty           float64 `json:"difficulty"`
	MedianTime           int64   `json:"mediantime"`
	VerificationProgress float64 `json:"verificationprogress"`
	InitialBlockDownload bool    `json:"initialblockdownload"`
	ChainWork            string  `json:"chainwork"`
	SizeOnDisk           int64   `json:"size_on_disk"`
	Pruned               bool    `json:"pruned"`
	PruneHeight          *int64  `json:"pruneheight,omitempty"`
	AutomaticPruning     *bool   `json:"automatic_pruning,omitempty"`
	PruneTargetSize      *int64  `json:"prune_target_size,omitempty"`
}

// GetBlockchainInfo is the result of getblockchaininfo.
type GetBlockchainInfo struct {
	BlockchainInfoCore
	Softforks     []Softfork              `json:"softforks"`
	BIP9Softforks map[string]BIP9Softfork `json:"bip9_softforks"`
	Warnings      string                  `json:"warnings"`
}

// Softfork is an entry of the softforks array, an ISM deployment.
type Softfork struct {
	ID      string         `json:"id"`
	Version int64          `json:"version"`
	Reject  SoftforkReject `json:"reject"`
}

// SoftforkReject reports whether blocks below the fork version are rejected.
type SoftforkReject struct {
	Status bool `json:"status"`
}

// BIP9Softfork is a value of the bip9_softforks map.
type BIP9Softfork struct {
	Status     string          `json:"status"`
	Bit        *int64          `json:"bit,omitempty"`
	StartTime  int64           `json:"startTime"`
	Timeout    int64           `json:"timeout"`
	Since      int64           `json:"since"`
	Statistics *BIP9Statistics `json:"statistics,omitempty"`
}

// BIP9Statistics is the signalling tally of a started deployment.
type BIP9Statistics struct {
	Period    int64 `json:"period"`
	Threshold int64 `json:"threshold"`
	Elapsed   int64 `json:"elapsed"`
	Count     int64 `json:"count"`
	Possible  bool  `json:"possible"`
}

// GetMempoolInfo is the result of getmempoolinfo.
type GetMempoolInfo struct {
	Loaded        *bool   `json:"loaded,omitempty"`
	Size          int64   `json:"size"`
	Bytes         int64   `json:"bytes"`
	Usage         int64   `json:"usage"`
	MaxMempool    int64   `json:"maxmempool"`
	MempoolMinFee float64 `json:"mempoolminfee"`
	MinRelayTxFee float64 `json:"minrelaytxfee"`
}

// GetBlockHeaderVerbose is the result of getblockheader with verbose=true.
type GetBlockHeaderVerbose struct {
	Hash              string  `json:"hash"`
	Confirmations     int64   `json:"confirmations"`
	Height            int64   `json:"height"`
	Version           int64   `json:"version"`
	VersionHex        string  `json:"versionHex"`
	MerkleRoot        string  `json:"merkleroot"`
	Time              int64   `json:"time"`
	MedianTime        int64   `json:"mediantime"`
	Nonce             int64   `json:"nonce"`
	Bits              string  `json:"bits"`
	Difficulty        float64 `json:"difficulty"`
	ChainWork         string  `json:"chainwork"`
	NTx               int64   `json:"nTx"`
	PreviousBlockHash *string `json:"previousblockhash,omitempty"`
	NextBlockHash     *string `json:"nextblockhash,omitempty"`
}

// GetBlockVerboseOne is the result of getblock with verbosity 1.
type GetBlockVerboseOne struct {
	Hash              string   `json:"hash"`
	Confirmations     int64    `json:"confirmations"`
	Size              int64    `json:"size"`
	StrippedSize      int64    `json:"strippedsize"`
	Weight            int64    `json:"weight"`
	Height            int64    `json:"height"`
	Version           int64    `json:"version"`
	VersionHex        string   `json:"versionHex"`
	MerkleRoot        string   `json:"merkleroot"`
	Tx                []string `json:"tx"`
	Time              int64    `json:"time"`
	MedianTime        int64    `json:"mediantime"`
	Nonce             int64    `json:"nonce"`
	Bits              string   `json:"bits"`
	Difficulty        float64  `json:"difficulty"`
	ChainWork         string   `json:"chainwork"`
	NTx               int64    `json:"nTx"`
	PreviousBlockHash *string  `json:"previousblockhash,omitempty"`
	NextBlockHash     *string  `json:"nextblockhash,omitempty"`
}

// GetBestBlockHash returns the hash of the tip of the most-work chain.
func (c *Client) GetBestBlockHash(ctx context.Context) (string, error) {
	return client.Do[string](ctx, c.Base, "getbestblockhash")
}

// GetBlockCount returns the height of the active chain tip.
func (c *Client) GetBlockCount(ctx context.Context) (int64, error) {
	return client.Do[int64](ctx, c.Base, "getblockcount")
}

// GetBlockHash returns the hash of the active chain block at height.
func (c *Client) GetBlockHash(ctx context.Context, height int64) (string, error) {
	if err := client.CheckVar("height", height, "gte=0"); err != nil {
		return "", err
	}
	return client.Do[string](ctx, c.Base, "getblockhash", height)
}

// GetBlockVerboseZero returns the serialized block as hex.
func (c *Client) GetBlockVerboseZero(ctx context.Context, hash string) (string, error) {
	if err := client.CheckVar("blockhash", hash, "len=64,hexadecimal"); err != nil {
		return "", err
	}
	return client.Do[string](ctx, c.Base, "getblock", hash, 0)
}

// GetBlockVerboseOne returns the decoded block with txids only.
func (c *Client) GetBlockVerboseOne(ctx context.Context, hash string) (GetBlockVerboseOne, error) {
	if err := client.CheckVar("blockhash", hash, "len=64,hexadecimal"); err != nil {
		return GetBlockVerboseOne{}, err
	}
	return client.Do[GetBlockVerboseOne](ctx, c.Base, "getblock", hash, 1)
}

// GetBlockHeader returns the serialized header as hex.
func (c *Client) GetBlockHeader(ctx context.Context, hash string) (string, error) {
	if err := client.CheckVar("blockhash", hash, "len=64,hexadecimal"); err != nil {
		return "", err
	}
	return client.Do[string](ctx, c.Base, "getblockheader", hash, false)
}

// GetBlockHeaderVerbose returns the decoded header.
func (c *Client) GetBlockHeaderVerbose(ctx context.Context, hash string) (GetBlockHeaderVerbose, error) {
	if err := client.CheckVar("blockhash", hash, "len=64,hexadecimal"); err != nil {
		return GetBlockHeaderVerbose{}, err
	}
	return client.Do[GetBlockHeaderVerbose](ctx, c.Base, "getblockheader", hash, true)
}

// GetBlockchainInfo returns the chain state summary.
func (c *Client) GetBlockchainInfo(ctx context.Context) (GetBlockchainInfo, error) {
	return client.Do[GetBlockchainInfo](ctx, c.Base, "getblockchaininfo")
}

// GetDifficulty returns the proof-of-work difficulty as a multiple of the minimum.
func (c *Client) GetDifficulty(ctx context.Context) (float64, error) {
	return client.Do[float64](ctx, c.Base, "getdifficulty")
}

// GetMempoolInfo returns mempool size and fee floor.
func (c *Client) GetMempoolInfo(ctx context.Context) (GetMempoolInfo, error) {
	return client.Do[GetMempoolInfo](ctx, c.Base, "getmempoolinfo")
}

// GetRawMempool returns the txids in the mempool.
func (c *Client) GetRawMempool(ctx context.Context) ([]string, error) {
	return client.Do[[]string](ctx, c.Base, "getrawmempool")
}

// SaveMempool dumps the mempool to disk. The daemon returns null.
func (c *Client) SaveMempool(ctx context.Context) error {
	return c.Call(ctx, "savemempool", nil)
}
