package model

// GetNetworkInfo is the canonical result of getnetworkinfo.
type GetNetworkInfo struct {
	Version            uint32
	Subversion         string
	ProtocolVersion    uint32
	LocalServices      string
	LocalServicesNames []string
	LocalRelay         bool
	TimeOffset         int64
	Connections        uint32
	ConnectionsIn      *uint32
	ConnectionsOut     *uint32
	NetworkActive      bool
	Networks           []GetNetworkInfoNetwork
	// RelayFee and IncrementalFee are rates per kvB.
	RelayFee       Amount
	IncrementalFee Amount
	LocalAddresses []GetNetworkInfoAddress
	Warnings       []string
}

// GetNetworkInfoNetwork is one entry of getnetworkinfo.networks.
type GetNetworkInfoNetwork struct {
	Name                      string
	Limited                   bool
	Reachable                 bool
	Proxy                     string
	ProxyRandomizeCredentials bool
}

// GetNetworkInfoAddress is one entry of getnetworkinfo.localaddresses.
type GetNetworkInfoAddress struct {
	Address string
	Port    uint16
	Score   uint32
}
