package rpc

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// JSON-RPC dialects understood by bitcoind. 2.0 is accepted from v28 on.
const (
	Version1 = "1.0"
	Version2 = "2.0"
)

// Request is a JSON-RPC request envelope. Params are positional.
type Request struct {
	JSONRPC string            `json:"jsonrpc"`
	ID      uint64            `json:"id"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
}

// NewRequest marshals params in order into a Request.
func NewRequest(version string, id uint64, method string, params ...any) (Request, error) {
	raw := make([]json.RawMessage, 0, len(params))
	for i, p := range params {
		b, err := json.Marshal(p)
		if err != nil {
			return Request{}, fmt.Errorf("%w: param %d of %s: %w", ErrCodec, i, method, err)
		}
		raw = append(raw, b)
	}

	return Request{
		JSONRPC: version,
		ID:      id,
		Method:  method,
		Params:  raw,
	}, nil
}

// EncodeRequest returns the wire bytes of req.
func EncodeRequest(req Request) ([]byte, error) {
	if req.Params == nil {
		req.Params = []json.RawMessage{}
	}
	b, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: encode %s: %w", ErrCodec, req.Method, err)
	}
	return b, nil
}

// Response is a decoded response envelope. Exactly one of Result and Error is meaningful:
// Error is nil on success, and Result may then be the JSON literal null.
type Response struct {
	ID     uint64
	Result json.RawMessage
	Error  *RPCError
}

// Err returns the daemon error, or nil.
func (r *Response) Err() error {
	if r.Error == nil {
		return nil
	}
	return r.Error
}

type wireResponse struct {
	Result json.RawMessage `json:"result"`
	Error  json.RawMessage `json:"error"`
	ID     json.RawMessage `json:"id"`
}

// DecodeResponse parses a response envelope and checks it answers the request with expectedID.
func DecodeResponse(data []byte, expectedID uint64) (*Response, error) {
	var wire wireResponse
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}

	if wire.ID == nil {
		return nil, ErrMissingID
	}
	if isNull(wire.ID) {
		return nil, fmt.Errorf("%w: got null, want %d", ErrIDMismatch, expectedID)
	}
	var id uint64
	if err := json.Unmarshal(wire.ID, &id); err != nil {
		return nil, fmt.Errorf("%w: got %s, want %d", ErrIDMismatch, wire.ID, expectedID)
	}
	if id != expectedID {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrIDMismatch, id, expectedID)
	}

	res := &Response{ID: id}
	hasError := wire.Error != nil && !isNull(wire.Error)
	hasResult := wire.Result != nil && !isNull(wire.Result)

	switch {
	case hasError && hasResult:
		return nil, ErrAmbiguous
	case hasError:
		var rpcErr RPCError
		if err := json.Unmarshal(wire.Error, &rpcErr); err != nil {
			return nil, fmt.Errorf("%w: error object: %w", ErrMalformedJSON, err)
		}
		res.Error = &rpcErr
	case wire.Result == nil:
		return nil, fmt.Errorf("%w: result", ErrMissingField)
	default:
		res.Result = wire.Result
	}

	return res, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
