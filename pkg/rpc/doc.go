// Package rpc is the JSON-RPC substrate under every versioned bitcoind client.
//
// It knows nothing about daemon versions. It owns three things:
//
//   - the envelope codec: NewRequest/EncodeRequest build {"jsonrpc","id","method","params"}
//     and DecodeResponse checks the id and splits result from error;
//   - the Transport capability, "send bytes, get bytes", with an HTTP implementation that
//     handles basic auth, cookie files, timeouts, TLS and proxies;
//   - Client, which allocates request ids atomically and runs the
//     encode, send, decode and unmarshal pipeline either blocking (Call) or in the
//     background (Go).
//
// Result payloads are decoded with Unmarshal, which ignores unknown fields but rejects a
// payload that lacks a field the target struct requires. A field is optional when it is a
// pointer or carries the omitempty option.
//
// # Errors
//
// Every error returned by this package matches exactly one class with errors.Is:
//
//	errors.Is(err, rpc.ErrTransport) // connection refused, timeout, TLS, HTTP status
//	errors.Is(err, rpc.ErrCodec)     // malformed JSON, id mismatch, missing field
//	errors.Is(err, rpc.ErrRPC)       // the daemon answered with an error object
//
// Daemon errors are returned as *RPCError with the code and message exactly as sent:
//
//	var rpcErr *rpc.RPCError
//	if errors.As(err, &rpcErr) && rpcErr.Code == rpc.CodeInWarmup {
//	    // retry later
//	}
package rpc
