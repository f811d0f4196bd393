package model

// GetMiningInfo is the canonical result of getmininginfo.
type GetMiningInfo struct {
	Blocks             uint32
	CurrentBlockWeight *uint64
	CurrentBlockTx     *uint32
	Bits               string
	Target             string
	Difficulty         float64
	NetworkHashPS      float64
	PooledTx           uint32
	Chain              Network
	Next               *NextBlockInfo
	Warnings           []string
}

// NextBlockInfo describes the block being built, reported from v29.
type NextBlockInfo struct {
	Height     uint32
	Bits       string
	Difficulty float64
	Target     string
}

// EstimateSmartFee is the canonical result of estimatesmartfee.
type EstimateSmartFee struct {
	// FeeRate is per kvB. It is nil when the daemon has too little data.
	FeeRate *Amount
	Errors  []string
	Blocks  uint32
}
