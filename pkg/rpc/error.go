package rpc

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error classes.
var (
	ErrTransport = errors.New("transport error")
	ErrCodec     = errors.New("codec error")
	ErrRPC       = errors.New("rpc error")
)

// Transport errors
var (
	ErrConnectionRefused = fmt.Errorf("%w: connection refused", ErrTransport)
	ErrTimeout           = fmt.Errorf("%w: timeout", ErrTransport)
	ErrTLS               = fmt.Errorf("%w: tls handshake failed", ErrTransport)
	ErrCanceled          = fmt.Errorf("%w: canceled", ErrTransport)
)

// Codec errors
var (
	ErrMalformedJSON = fmt.Errorf("%w: malformed json", ErrCodec)
	ErrTypeMismatch  = fmt.Errorf("%w: type mismatch", ErrCodec)
	ErrMissingID     = fmt.Errorf("%w: response has no id", ErrCodec)
	ErrIDMismatch    = fmt.Errorf("%w: response id does not match request", ErrCodec)
	ErrMissingField  = fmt.Errorf("%w: missing field", ErrCodec)
	ErrAmbiguous     = fmt.Errorf("%w: response carries both result and error", ErrCodec)
)

// Configuration errors
var (
	ErrInvalidConfig     = errors.New("invalid rpc config")
	ErrInvalidCookieFile = errors.New("invalid cookie file")
)

// Error codes returned by bitcoind.
const (
	CodeMiscError          = -1
	CodeTypeError          = -3
	CodeWalletError        = -4
	CodeInvalidAddressKey  = -5
	CodeInvalidParameter   = -8
	CodeClientNotConnected = -9
	CodeWalletNotFound     = -18
	CodeVerifyRejected     = -26
	CodeInWarmup           = -28
	CodeMethodNotFound     = -32601
	CodeParseError         = -32700
)

// RPCError is an error object returned by the daemon. It is never reinterpreted.
type RPCError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// Is reports true for ErrRPC.
func (e *RPCError) Is(target error) bool {
	return target == ErrRPC
}

// HTTPStatusError is returned by HTTPTransport for a non-2xx response.
type HTTPStatusError struct {
	StatusCode int
	Status     string
	// Body holds the response body; bitcoind sends JSON-RPC error objects with status 404 and 500.
	Body []byte
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("%s: http status %s", ErrTransport, e.Status)
}

// Is reports true for ErrTransport.
func (e *HTTPStatusError) Is(target error) bool {
	return target == ErrTransport
}
