// Package rpctest provides an in-memory daemon for exercising clients without bitcoind.
package rpctest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/rust-bitcoin/corepc/pkg/rpc"
)

// MockHandler answers one method. Returning a non-nil *rpc.RPCError produces an error response.
type MockHandler func(params []json.RawMessage) (any, *rpc.RPCError)

var _ rpc.Transport = (*MockTransport)(nil)

// MockTransport is an in-memory daemon that routes requests to registered handlers.
type MockTransport struct {
	mu       sync.Mutex
	handlers map[string]MockHandler
	requests []rpc.Request
	rewriteID func(id uint64) any
}

// NewMockTransport returns a transport that answers Method not found for every method.
func NewMockTransport() *MockTransport {
	return &MockTransport{handlers: make(map[string]MockHandler)}
}

// RegisterHandler routes method to h, replacing any previous handler.
func (m *MockTransport) RegisterHandler(method string, h MockHandler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[method] = h
}

// RewriteID makes every response carry f(id) instead of the request id.
func (m *MockTransport) RewriteID(f func(id uint64) any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rewriteID = f
}

// Requests returns the requests seen so far, in arrival order.
func (m *MockTransport) Requests() []rpc.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]rpc.Request(nil), m.requests...)
}

// Send dispatches body to the registered handler without a network round trip.
func (m *MockTransport) Send(ctx context.Context, body []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", rpc.ErrCanceled, err)
	}

	var req rpc.Request
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.requests = append(m.requests, req)
	h, ok := m.handlers[req.Method]
	rewrite := m.rewriteID
	m.mu.Unlock()

	var id any = req.ID
	if rewrite != nil {
		id = rewrite(req.ID)
	}

	if !ok {
		return json.Marshal(map[string]any{
			"result": nil,
			"error":  rpc.RPCError{Code: rpc.CodeMethodNotFound, Message: "Method not found"},
			"id":     id,
		})
	}

	result, rpcErr := h(req.Params)
	if rpcErr != nil {
		return json.Marshal(map[string]any{"result": nil, "error": rpcErr, "id": id})
	}
	return json.Marshal(map[string]any{"result": result, "error": nil, "id": id})
}

// Static answers every call with v.
func Static(v any) MockHandler {
	return func([]json.RawMessage) (any, *rpc.RPCError) { return v, nil }
}

// Fail answers every call with an RPC error.
func Fail(code int, message string) MockHandler {
	return func([]json.RawMessage) (any, *rpc.RPCError) {
		return nil, &rpc.RPCError{Code: code, Message: message}
	}
}

// ServeHTTP lets the mock stand in for the daemon's HTTP endpoint. RPC errors are sent with
// status 500 as bitcoind does.
func (m *MockTransport) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	resp, err := m.Send(r.Context(), body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	status := http.StatusOK
	if json.Unmarshal(resp, &envelope) == nil && len(envelope.Error) > 0 && string(envelope.Error) != "null" {
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(resp)
}
