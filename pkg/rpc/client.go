package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/rust-bitcoin/corepc/pkg/log"
)

const tracerName = "github.com/rust-bitcoin/corepc/pkg/rpc"

// Client dispatches JSON-RPC calls over a Transport. It is safe for concurrent use: ids come
// from an atomic counter and no decode state is shared between calls.
type Client struct {
	transport Transport
	version   string
	nextID    atomic.Uint64

	lg      log.Logger
	metrics *Metrics
	limiter *rate.Limiter
	tracer  trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithJSONRPCVersion selects the "jsonrpc" member sent with every request. Default Version1.
func WithJSONRPCVersion(version string) Option {
	return func(c *Client) { c.version = version }
}

// WithLogger sets the logger. Without it the logger is taken from each call's context.
func WithLogger(lg log.Logger) Option {
	return func(c *Client) { c.lg = lg }
}

// WithMetrics records call counts and latencies.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithRateLimit makes every call wait for a token before it is sent.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(limit, burst) }
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Client) { c.tracer = tracer }
}

// NewClient returns a Client sending through transport.
func NewClient(transport Transport, opts ...Option) *Client {
	c := &Client{
		transport: transport,
		version:   Version1,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.tracer == nil {
		c.tracer = otel.Tracer(tracerName)
	}
	return c
}

// Transport returns the underlying transport.
func (c *Client) Transport() Transport {
	return c.transport
}

// NextID reserves a request id.
func (c *Client) NextID() uint64 {
	return c.nextID.Add(1)
}

// Call sends method with positional params and blocks until the response arrives or ctx is
// done. A non-nil result receives the decoded payload. Errors are prefixed with the method.
func (c *Client) Call(ctx context.Context, method string, params []any, result any) error {
	raw, err := c.CallRaw(ctx, method, params...)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	if err := Unmarshal(raw, result); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

// CallRaw is Call without result decoding.
func (c *Client) CallRaw(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	id := c.NextID()

	ctx, span := c.tracer.Start(ctx, "bitcoind."+method, trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("rpc.system", "jsonrpc"),
			attribute.String("rpc.method", method),
			attribute.Int64("rpc.jsonrpc.request_id", int64(id)),
		))
	defer span.End()

	lg := c.lg
	if lg == nil {
		lg = log.FromContext(ctx)
	}
	ctx = log.SetContextLogger(ctx, lg.WithName("rpc"))
	lg = log.FromContext(ctx)

	res, status, elapsed, err := c.roundTrip(ctx, id, method, params)
	c.observe(method, status, elapsed)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if status == statusRPC {
			lg.Debug("rpc returned error", "method", method, "id", id, "error", err)
		} else {
			lg.Warn("rpc call failed", "method", method, "id", id, "error", err)
		}
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	lg.Debug("rpc call", "method", method, "id", id, "elapsed", elapsed, "size", len(res))
	return res, nil
}

func (c *Client) roundTrip(ctx context.Context, id uint64, method string, params []any) (json.RawMessage, string, time.Duration, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, statusCanceled, 0, fmt.Errorf("%w: %w", ErrCanceled, err)
		}
	}

	req, err := NewRequest(c.version, id, method, params...)
	if err != nil {
		return nil, statusCodec, 0, err
	}
	body, err := EncodeRequest(req)
	if err != nil {
		return nil, statusCodec, 0, err
	}

	if c.metrics != nil {
		c.metrics.InFlight.Inc()
		defer c.metrics.InFlight.Dec()
	}

	start := time.Now()
	data, err := c.transport.Send(ctx, body)
	elapsed := time.Since(start)
	if err != nil {
		// bitcoind reports most RPC errors with a 404 or 500 status and a JSON-RPC body.
		var statusErr *HTTPStatusError
		if errors.As(err, &statusErr) && len(statusErr.Body) > 0 {
			if res, decErr := DecodeResponse(statusErr.Body, id); decErr == nil && res.Error != nil {
				return nil, statusRPC, elapsed, res.Error
			}
		}
		if errors.Is(err, ErrCanceled) {
			return nil, statusCanceled, elapsed, err
		}
		return nil, statusTransport, elapsed, err
	}

	res, err := DecodeResponse(data, id)
	if err != nil {
		return nil, statusCodec, elapsed, err
	}
	if res.Error != nil {
		return nil, statusRPC, elapsed, res.Error
	}
	return res.Result, statusOK, elapsed, nil
}

func (c *Client) observe(method, status string, elapsed time.Duration) {
	if c.metrics == nil {
		return
	}
	c.metrics.Calls.WithLabelValues(method, status).Inc()
	if elapsed > 0 {
		c.metrics.CallDuration.WithLabelValues(method).Observe(elapsed.Seconds())
	}
}

// Call is an in-flight asynchronous call started with Go.
type Call struct {
	Method string
	Params []any
	Result any
	Error  error
	Done   chan *Call
}

// Go starts method in a goroutine and returns immediately. The call is delivered on done
// exactly once; done must be buffered, a nil done allocates a channel of one. Cancelling ctx
// aborts the request and releases its connection.
func (c *Client) Go(ctx context.Context, method string, params []any, result any, done chan *Call) *Call {
	if done == nil {
		done = make(chan *Call, 1)
	} else if cap(done) == 0 {
		panic("rpc: done channel is unbuffered")
	}

	call := &Call{
		Method: method,
		Params: params,
		Result: result,
		Done:   done,
	}
	go func() {
		call.Error = c.Call(ctx, method, params, result)
		call.Done <- call
	}()
	return call
}
