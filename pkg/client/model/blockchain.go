package model

// GetBlockchainInfo is the canonical result of getblockchaininfo.
type GetBlockchainInfo struct {
	Chain                Network
	Blocks               uint32
	Headers              uint32
	BestBlockHash        string
	Bits                 string
	Target               string
	Difficulty           float64
	Time                 *uint32
	MedianTime           uint32
	VerificationProgress float64
	InitialBlockDownload bool
	ChainWork            string
	SizeOnDisk           uint64
	Pruned               bool
	PruneHeight          *uint32
	AutomaticPruning     *bool
	PruneTargetSize      *uint64
	// Softforks is empty from v23, where deployments moved to getdeploymentinfo.
	Softforks map[string]Softfork
	Warnings  []string
}

// SoftforkType distinguishes buried deployments from version bits ones.
type SoftforkType string

const (
	SoftforkBuried SoftforkType = "buried"
	SoftforkBIP9   SoftforkType = "bip9"
)

// Softfork describes one deployment.
type Softfork struct {
	Type   SoftforkType
	Active bool
	Height *uint32
	BIP9   *BIP9Softfork
}

// BIP9Status is the state of a version bits deployment.
type BIP9Status string

const (
	BIP9Defined  BIP9Status = "defined"
	BIP9Started  BIP9Status = "started"
	BIP9LockedIn BIP9Status = "locked_in"
	BIP9Active   BIP9Status = "active"
	BIP9Failed   BIP9Status = "failed"
)

// ParseBIP9Status accepts the status strings bitcoind reports.
func ParseBIP9Status(s string) (BIP9Status, error) {
	switch st := BIP9Status(s); st {
	case BIP9Defined, BIP9Started, BIP9LockedIn, BIP9Active, BIP9Failed:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

// BIP9Softfork is the version bits state of a deployment.
type BIP9Softfork struct {
	Status    BIP9Status
	Bit       *uint8
	StartTime int64
	Timeout   int64
	Since     uint32
}

// GetBlockFilter is the canonical result of getblockfilter.
type GetBlockFilter struct {
	Filter []byte
	Header string
}
