package v17

import (
	"fmt"

	"github.com/rust-bitcoin/corepc/pkg/client/model"
)

// IntoModelCore converts the fields shared by every getblockchaininfo shape.
func (r BlockchainInfoCore) IntoModelCore() (model.GetBlockchainInfo, error) {
	var (
		out model.GetBlockchainInfo
		err error
	)
	if out.Chain, err = model.ParseNetwork(r.Chain); err != nil {
		return out, err
	}
	if out.Blocks, err = model.ToU32(r.Blocks, "blocks"); err != nil {
		return out, err
	}
	if out.Headers, err = model.ToU32(r.Headers, "headers"); err != nil {
		return out, err
	}
	if out.BestBlockHash, err = model.ParseHash(r.BestBlockHash, "bestblockhash"); err != nil {
		return out, err
	}
	if out.MedianTime, err = model.ToU32(r.MedianTime, "mediantime"); err != nil {
		return out, err
	}
	if out.SizeOnDisk, err = model.ToU64(r.SizeOnDisk, "size_on_disk"); err != nil {
		return out, err
	}
	if out.PruneHeight, err = model.ToU32Ptr(r.PruneHeight, "pruneheight"); err != nil {
		return out, err
	}
	if r.PruneTargetSize != nil {
		size, err := model.ToU64(*r.PruneTargetSize, "prune_target_size")
		if err != nil {
			return out, err
		}
		out.PruneTargetSize = &size
	}
	out.Difficulty = r.Difficulty
	out.VerificationProgress = r.VerificationProgress
	out.InitialBlockDownload = r.InitialBlockDownload
	out.ChainWork = r.ChainWork
	out.Pruned = r.Pruned
	out.AutomaticPruning = r.AutomaticPruning
	return out, nil
}

// IntoModel converts to the version-independent shape.
func (r GetBlockchainInfo) IntoModel() (model.GetBlockchainInfo, error) {
	out, err := r.IntoModelCore()
	if err != nil {
		return out, err
	}

	out.Softforks = make(map[string]model.Softfork, len(r.Softforks)+len(r.BIP9Softforks))
	for _, sf := range r.Softforks {
		out.Softforks[sf.ID] = model.Softfork{Type: model.SoftforkBuried, Active: sf.Reject.Status}
	}
	for name, sf := range r.BIP9Softforks {
		bip9, err := ConvertBIP9(sf.Status, sf.Bit, sf.StartTime, sf.Timeout, sf.Since)
		if err != nil {
			return out, fmt.Errorf("bip9_softforks.%s: %w", name, err)
		}
		out.Softforks[name] = model.Softfork{
			Type:   model.SoftforkBIP9,
			Active: bip9.Status == model.BIP9Active,
			BIP9:   bip9,
		}
	}
	out.Warnings = Warnings(r.Warnings)
	return out, nil
}

// ConvertBIP9 builds the canonical version bits state from its wire fields.
func ConvertBIP9(status string, bit *int64, start, timeout, since int64) (*model.BIP9Softfork, error) {
	st, err := model.ParseBIP9Status(status)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, status)
	}
	out := &model.BIP9Softfork{Status: st, StartTime: start, Timeout: timeout}
	if out.Since, err = model.ToU32(since, "since"); err != nil {
		return nil, err
	}
	if bit != nil {
		if *bit < 0 || *bit > 28 {
			return nil, fmt.Errorf("%w: bit=%d", model.ErrOutOfRange, *bit)
		}
		b := uint8(*bit)
		out.Bit = &b
	}
	return out, nil
}

// Warnings turns the single warnings string of older daemons into a list.
func Warnings(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}

// IntoModelCore converts the fields shared by every getnetworkinfo shape.
func (r NetworkInfoCore) IntoModelCore() (model.GetNetworkInfo, error) {
	var (
		out model.GetNetworkInfo
		err error
	)
	if out.Version, err = model.ToU32(r.Version, "version"); err != nil {
		return out, err
	}
	if out.ProtocolVersion, err = model.ToU32(r.ProtocolVersion, "protocolversion"); err != nil {
		return out, err
	}
	if out.Connections, err = model.ToU32(r.Connections, "connections"); err != nil {
		return out, err
	}
	if out.RelayFee, err = model.AmountFromBTC(r.RelayFee); err != nil {
		return out, fmt.Errorf("relayfee: %w", err)
	}
	if out.IncrementalFee, err = model.AmountFromBTC(r.IncrementalFee); err != nil {
		return out, fmt.Errorf("incrementalfee: %w", err)
	}
	out.Subversion = r.Subversion
	out.LocalServices = r.LocalServices
	out.LocalRelay = r.LocalRelay
	out.TimeOffset = r.TimeOffset
	out.NetworkActive = r.NetworkActive

	out.Networks = make([]model.GetNetworkInfoNetwork, 0, len(r.Networks))
	for _, n := range r.Networks {
		out.Networks = append(out.Networks, model.GetNetworkInfoNetwork{
			Name:                      n.Name,
			Limited:                   n.Limited,
			Reachable:                 n.Reachable,
			Proxy:                     n.Proxy,
			ProxyRandomizeCredentials: n.ProxyRandomizeCredentials,
		})
	}
	out.LocalAddresses = make([]model.GetNetworkInfoAddress, 0, len(r.LocalAddresses))
	for i, a := range r.LocalAddresses {
		if a.Port < 0 || a.Port > 65535 {
			return out, fmt.Errorf("%w: localaddresses[%d].port=%d", model.ErrOutOfRange, i, a.Port)
		}
		score, err := model.ToU32(a.Score, "score")
		if err != nil {
			return out, err
		}
		out.LocalAddresses = append(out.LocalAddresses, model.GetNetworkInfoAddress{
			Address: a.Address,
			Port:    uint16(a.Port),
			Score:   score,
		})
	}
	return out, nil
}

// IntoModel converts to the version-independent shape.
func (r GetNetworkInfo) IntoModel() (model.GetNetworkInfo, error) {
	out, err := r.IntoModelCore()
	if err != nil {
		return out, err
	}
	out.Warnings = Warnings(r.Warnings)
	return out, nil
}

// IntoModelCore converts the fields shared by every getmininginfo shape.
func (r MiningInfoCore) IntoModelCore() (model.GetMiningInfo, error) {
	var (
		out model.GetMiningInfo
		err error
	)
	if out.Blocks, err = model.ToU32(r.Blocks, "blocks"); err != nil {
		return out, err
	}
	if r.CurrentBlockWeight != nil {
		w, err := model.ToU64(*r.CurrentBlockWeight, "currentblockweight")
		if err != nil {
			return out, err
		}
		out.CurrentBlockWeight = &w
	}
	if out.CurrentBlockTx, err = model.ToU32Ptr(r.CurrentBlockTx, "currentblocktx"); err != nil {
		return out, err
	}
	if out.PooledTx, err = model.ToU32(r.PooledTx, "pooledtx"); err != nil {
		return out, err
	}
	if out.Chain, err = model.ParseNetwork(r.Chain); err != nil {
		return out, err
	}
	out.Difficulty = r.Difficulty
	out.NetworkHashPS = r.NetworkHashPS
	return out, nil
}

func (r GetMiningInfo) IntoModel() (model.GetMiningInfo, error) {
	out, err := r.IntoModelCore()
	if err != nil {
		return out, err
	}
	out.Warnings = Warnings(r.Warnings)
	return out, nil
}

// IntoModel converts the BTC/kvB fee rate to an Amount.
func (r EstimateSmartFee) IntoModel() (model.EstimateSmartFee, error) {
	var (
		out model.EstimateSmartFee
		err error
	)
	if out.FeeRate, err = model.AmountPtrFromBTC(r.FeeRate); err != nil {
		return out, fmt.Errorf("feerate: %w", err)
	}
	if out.Blocks, err = model.ToU32(r.Blocks, "blocks"); err != nil {
		return out, err
	}
	out.Errors = r.Errors
	return out, nil
}

func (r GetBalance) IntoModel() (model.GetBalance, error) {
	a, err := model.AmountFromBTC(float64(r))
	if err != nil {
		return model.GetBalance{}, fmt.Errorf("balance: %w", err)
	}
	return model.GetBalance{Balance: a}, nil
}

// IntoModel fails on the first output that does not convert.
func (r ListUnspent) IntoModel() (model.ListUnspent, error) {
	out := make(model.ListUnspent, 0, len(r))
	for i, u := range r {
		m, err := u.IntoModel()
		if err != nil {
			return nil, fmt.Errorf("listunspent[%d]: %w", i, err)
		}
		out = append(out, m)
	}
	return out, nil
}

func (r UnspentOutput) IntoModel() (model.UnspentOutput, error) {
	var (
		out model.UnspentOutput
		err error
	)
	if out.Txid, err = model.ParseHash(r.Txid, "txid"); err != nil {
		return out, err
	}
	if out.Vout, err = model.ToU32(r.Vout, "vout"); err != nil {
		return out, err
	}
	if out.Amount, err = model.AmountFromBTC(r.Amount); err != nil {
		return out, fmt.Errorf("amount: %w", err)
	}
	if out.Confirmations, err = model.ToU32(r.Confirmations, "confirmations"); err != nil {
		return out, err
	}
	out.Address = deref(r.Address)
	out.Label = deref(r.Label)
	out.RedeemScript = deref(r.RedeemScript)
	out.ScriptPubKey = r.ScriptPubKey
	out.Spendable = r.Spendable
	out.Solvable = r.Solvable
	out.Safe = r.Safe
	return out, nil
}

// IntoModel wraps the single warning in a list.
func (r CreateWallet) IntoModel() (model.CreateWallet, error) {
	return model.CreateWallet{Name: r.Name, Warnings: Warnings(r.Warning)}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
