package v17

import (
	"context"

	"github.com/rust-bitcoin/corepc/pkg/client"
)

// NetworkInfoCore holds the getnetworkinfo fields every version reports.
type NetworkInfoCore struct {
	Version         int64                   `json:"version"`
	Subversion      string                  `json:"subversion"`
	ProtocolVersion int64                   `json:"protocolversion"`
	LocalServices   string                  `json:"localservices"`
	LocalRelay      bool                    `json:"localrelay"`
	TimeOffset      int64                   `json:"timeoffset"`
	Connections     int64                   `json:"connections"`
	NetworkActive   bool                    `json:"networkactive"`
	Networks        []GetNetworkInfoNetwork `json:"networks"`
	RelayFee        float64                 `json:"relayfee"`
	IncrementalFee  float64                 `json:"incrementalfee"`
	LocalAddresses  []GetNetworkInfoAddress `json:"localaddresses"`
}

// GetNetworkInfo is the result of getnetworkinfo.
type GetNetworkInfo struct {
	NetworkInfoCore
	Warnings string `json:"warnings"`
}

// GetNetworkInfoNetwork describes one reachable network type.
type GetNetworkInfoNetwork struct {
	Name                      string `json:"name"`
	Limited                   bool   `json:"limited"`
	Reachable                 bool   `json:"reachable"`
	Proxy                     string `json:"proxy"`
	ProxyRandomizeCredentials bool   `json:"proxy_randomize_credentials"`
}

// GetNetworkInfoAddress is an address the node advertises.
type GetNetworkInfoAddress struct {
	Address string `json:"address"`
	Port    int64  `json:"port"`
	Score   int64  `json:"score"`
}

// GetNetTotals is the result of getnettotals.
type GetNetTotals struct {
	TotalBytesRecv int64        `json:"totalbytesrecv"`
	TotalBytesSent int64        `json:"totalbytessent"`
	TimeMillis     int64        `json:"timemillis"`
	UploadTarget   UploadTarget `json:"uploadtarget"`
}

// UploadTarget is the state of the -maxuploadtarget cycle.
type UploadTarget struct {
	Timeframe             int64 `json:"timeframe"`
	Target                int64 `json:"target"`
	TargetReached         bool  `json:"target_reached"`
	ServeHistoricalBlocks bool  `json:"serve_historical_blocks"`
	BytesLeftInCycle      int64 `json:"bytes_left_in_cycle"`
	TimeLeftInCycle       int64 `json:"time_left_in_cycle"`
}

// PeerInfo is one entry of getpeerinfo. Fields that come and go between releases are optional.
type PeerInfo struct {
	ID             int64    `json:"id"`
	Addr           string   `json:"addr"`
	AddrBind       *string  `json:"addrbind,omitempty"`
	AddrLocal      *string  `json:"addrlocal,omitempty"`
	Services       string   `json:"services"`
	RelayTxes      *bool    `json:"relaytxes,omitempty"`
	LastSend       int64    `json:"lastsend"`
	LastRecv       int64    `json:"lastrecv"`
	BytesSent      int64    `json:"bytessent"`
	BytesRecv      int64    `json:"bytesrecv"`
	ConnTime       int64    `json:"conntime"`
	TimeOffset     int64    `json:"timeoffset"`
	PingTime       *float64 `json:"pingtime,omitempty"`
	MinPing        *float64 `json:"minping,omitempty"`
	Version        int64    `json:"version"`
	Subver         string   `json:"subver"`
	Inbound        bool     `json:"inbound"`
	StartingHeight *int64   `json:"startingheight,omitempty"`
	SyncedHeaders  *int64   `json:"synced_headers,omitempty"`
	SyncedBlocks   *int64   `json:"synced_blocks,omitempty"`
}

// AddedNodeInfo is one entry of getaddednodeinfo.
type AddedNodeInfo struct {
	AddedNode string             `json:"addednode"`
	Connected bool               `json:"connected"`
	Addresses []AddedNodeAddress `json:"addresses"`
}

// AddedNodeAddress is a resolved address of an added node.
type AddedNodeAddress struct {
	Address   string `json:"address"`
	Connected string `json:"connected"`
}

// Banned is one entry of listbanned.
type Banned struct {
	Address     string  `json:"address"`
	BannedUntil int64   `json:"banned_until"`
	BanCreated  int64   `json:"ban_created"`
	BanReason   *string `json:"ban_reason,omitempty"`
}

// AddNodeCommand is the command argument of addnode.
type AddNodeCommand string

const (
	AddNodeAdd    AddNodeCommand = "add"
	AddNodeRemove AddNodeCommand = "remove"
	AddNodeOneTry AddNodeCommand = "onetry"
)

// SetBanCommand is the command argument of setban.
type SetBanCommand string

const (
	SetBanAdd    SetBanCommand = "add"
	SetBanRemove SetBanCommand = "remove"
)

// GetConnectionCount returns the number of peer connections.
func (c *Client) GetConnectionCount(ctx context.Context) (int64, error) {
	return client.Do[int64](ctx, c.Base, "getconnectioncount")
}

// GetNetTotals returns traffic counters.
func (c *Client) GetNetTotals(ctx context.Context) (GetNetTotals, error) {
	return client.Do[GetNetTotals](ctx, c.Base, "getnettotals")
}

// GetNetworkInfo returns the p2p state of the node.
func (c *Client) GetNetworkInfo(ctx context.Context) (GetNetworkInfo, error) {
	return client.Do[GetNetworkInfo](ctx, c.Base, "getnetworkinfo")
}

// GetPeerInfo returns one entry per connected peer.
func (c *Client) GetPeerInfo(ctx context.Context) ([]PeerInfo, error) {
	return client.Do[[]PeerInfo](ctx, c.Base, "getpeerinfo")
}

// GetAddedNodeInfo lists nodes added with AddNode.
func (c *Client) GetAddedNodeInfo(ctx context.Context) ([]AddedNodeInfo, error) {
	return client.Do[[]AddedNodeInfo](ctx, c.Base, "getaddednodeinfo")
}

// AddNode adds, removes or tries once to connect to a peer given as host:port.
func (c *Client) AddNode(ctx context.Context, node string, cmd AddNodeCommand) error {
	if err := CheckAddNode(node, cmd); err != nil {
		return err
	}
	return c.Call(ctx, "addnode", nil, node, cmd)
}

// CheckAddNode validates addnode arguments. Newer versions reuse it for their extended form.
func CheckAddNode(node string, cmd AddNodeCommand) error {
	if err := client.CheckVar("node", node, "required"); err != nil {
		return err
	}
	return client.CheckVar("command", string(cmd), "oneof=add remove onetry")
}

// SetBan bans or unbans a subnet. A zero banTime uses the daemon default of 24h.
func (c *Client) SetBan(ctx context.Context, subnet string, cmd SetBanCommand, banTime int64) error {
	if err := client.CheckVar("subnet", subnet, "required"); err != nil {
		return err
	}
	if err := client.CheckVar("command", string(cmd), "oneof=add remove"); err != nil {
		return err
	}
	if err := client.CheckVar("bantime", banTime, "gte=0"); err != nil {
		return err
	}
	if cmd == SetBanRemove {
		return c.Call(ctx, "setban", nil, subnet, cmd)
	}
	return c.Call(ctx, "setban", nil, subnet, cmd, banTime)
}

// ListBanned returns the ban list.
func (c *Client) ListBanned(ctx context.Context) ([]Banned, error) {
	return client.Do[[]Banned](ctx, c.Base, "listbanned")
}

// ClearBanned empties the ban list.
func (c *Client) ClearBanned(ctx context.Context) error {
	return c.Call(ctx, "clearbanned", nil)
}

// DisconnectNode drops the peer at address.
func (c *Client) DisconnectNode(ctx context.Context, address string) error {
	if err := client.CheckVar("address", address, "required"); err != nil {
		return err
	}
	return c.Call(ctx, "disconnectnode", nil, address)
}

// DisconnectNodeByID drops the peer with the id getpeerinfo reports.
func (c *Client) DisconnectNodeByID(ctx context.Context, id int64) error {
	if err := client.CheckVar("nodeid", id, "gte=0"); err != nil {
		return err
	}
	return c.Call(ctx, "disconnectnode", nil, "", id)
}

// Ping queues a ping to every peer. Results show up in getpeerinfo.
func (c *Client) Ping(ctx context.Context) error {
	return c.Call(ctx, "ping", nil)
}

// SetNetworkActive toggles all p2p activity and returns the new state.
func (c *Client) SetNetworkActive(ctx context.Context, active bool) (bool, error) {
	return client.Do[bool](ctx, c.Base, "setnetworkactive", active)
}
