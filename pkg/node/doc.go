// Package node runs a bitcoind in regtest for tests and local tooling.
//
// A Node resolves a daemon binary, spawns it in a private working directory on freshly
// allocated ports, waits until its RPC interface answers, and tears everything down on Stop.
// The typed client it hands out is chosen at build time with the corepc_v17 .. corepc_v30
// build tags; without a tag the newest supported version is used.
//
//	n := node.NewForTest(t, node.DefaultConf())
//	info, err := n.Client.GetBlockchainInfo(ctx)
package node
