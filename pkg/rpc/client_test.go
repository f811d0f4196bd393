package rpc_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/rust-bitcoin/corepc/pkg/rpc"
	"github.com/rust-bitcoin/corepc/pkg/rpc/rpctest"
)

var testCtx = context.Background()

func setupClient(opts ...rpc.Option) (*rpc.Client, *rpctest.MockTransport) {
	transport := rpctest.NewMockTransport()
	transport.RegisterHandler("getblockcount", func([]json.RawMessage) (any, *rpc.RPCError) {
		return 101, nil
	})
	transport.RegisterHandler("getblockhash", func(params []json.RawMessage) (any, *rpc.RPCError) {
		var height int64
		if err := json.Unmarshal(params[0], &height); err != nil || height > 101 {
			return nil, &rpc.RPCError{Code: rpc.CodeInvalidParameter, Message: "Block height out of range"}
		}
		return "0f9188f13cb7b2c71f2a335e3a4fc328bf5beb436012afca590b1a11466e2206", nil
	})
	transport.RegisterHandler("ping", func([]json.RawMessage) (any, *rpc.RPCError) {
		return nil, nil
	})
	return rpc.NewClient(transport, opts...), transport
}

func TestClient_Call(t *testing.T) {
	t.Parallel()

	client, transport := setupClient()

	var count int64
	require.NoError(t, client.Call(testCtx, "getblockcount", nil, &count))
	assert.Equal(t, int64(101), count)

	var hash string
	require.NoError(t, client.Call(testCtx, "getblockhash", []any{0}, &hash))
	assert.Len(t, hash, 64)

	require.NoError(t, client.Call(testCtx, "ping", nil, nil))

	reqs := transport.Requests()
	require.Len(t, reqs, 3)
	assert.Equal(t, []uint64{1, 2, 3}, []uint64{reqs[0].ID, reqs[1].ID, reqs[2].ID})
	assert.Equal(t, rpc.Version1, reqs[0].JSONRPC)
	assert.JSONEq(t, `0`, string(reqs[1].Params[0]))
}

func TestClient_RPCError(t *testing.T) {
	t.Parallel()

	client, _ := setupClient()

	var hash string
	err := client.Call(testCtx, "getblockhash", []any{1000}, &hash)
	require.ErrorIs(t, err, rpc.ErrRPC)

	var rpcErr *rpc.RPCError
	require.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, rpc.CodeInvalidParameter, rpcErr.Code)
	assert.Equal(t, "Block height out of range", rpcErr.Message)
	assert.Contains(t, err.Error(), "getblockhash")

	err = client.Call(testCtx, "getnothing", nil, nil)
	require.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, rpc.CodeMethodNotFound, rpcErr.Code)
}

func TestClient_IDMismatch(t *testing.T) {
	t.Parallel()

	client, transport := setupClient()
	transport.RewriteID(func(id uint64) any { return id + 1 })

	var count int64
	err := client.Call(testCtx, "getblockcount", nil, &count)
	assert.ErrorIs(t, err, rpc.ErrIDMismatch)
	assert.Zero(t, count)
}

func TestClient_MissingID(t *testing.T) {
	t.Parallel()

	client := rpc.NewClient(rpc.TransportFunc(func(context.Context, []byte) ([]byte, error) {
		return []byte(`{"result":101,"error":null}`), nil
	}))

	var count int64
	err := client.Call(testCtx, "getblockcount", nil, &count)
	assert.ErrorIs(t, err, rpc.ErrMissingID)
	assert.ErrorIs(t, err, rpc.ErrCodec)
}

func TestClient_ConcurrentIDsAreUnique(t *testing.T) {
	t.Parallel()

	client, transport := setupClient()

	const callers = 32
	var wg sync.WaitGroup
	for j := 0; j < callers; j++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var count int64
			assert.NoError(t, client.Call(testCtx, "getblockcount", nil, &count))
		}()
	}
	wg.Wait()

	seen := make(map[uint64]bool)
	for _, req := range transport.Requests() {
		assert.False(t, seen[req.ID], "duplicate id %d", req.ID)
		seen[req.ID] = true
	}
	assert.Len(t, seen, callers)
}

func TestClient_Go(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	transport := rpctest.NewMockTransport()
	transport.RegisterHandler("getblockcount", func([]json.RawMessage) (any, *rpc.RPCError) {
		<-release
		return 7, nil
	})
	transport.RegisterHandler("uptime", func([]json.RawMessage) (any, *rpc.RPCError) {
		return 42, nil
	})
	client := rpc.NewClient(transport)

	var count, uptime int64
	done := make(chan *rpc.Call, 2)
	slow := client.Go(testCtx, "getblockcount", nil, &count, done)
	fast := client.Go(testCtx, "uptime", nil, &uptime, done)

	// The second call completes while the first is still blocked.
	first := <-done
	assert.Same(t, fast, first)
	assert.NoError(t, first.Error)
	assert.Equal(t, int64(42), uptime)

	close(release)
	second := <-done
	assert.Same(t, slow, second)
	assert.NoError(t, second.Error)
	assert.Equal(t, int64(7), count)
}

func TestClient_GoCanceled(t *testing.T) {
	t.Parallel()

	client := rpc.NewClient(rpc.TransportFunc(func(ctx context.Context, _ []byte) ([]byte, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}))

	ctx, cancel := context.WithCancel(testCtx)
	call := client.Go(ctx, "getblockcount", nil, nil, nil)
	cancel()

	select {
	case c := <-call.Done:
		assert.ErrorIs(t, c.Error, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("canceled call did not complete")
	}
}

func TestClient_GoUnbufferedPanics(t *testing.T) {
	t.Parallel()

	client, _ := setupClient()
	assert.Panics(t, func() {
		client.Go(testCtx, "ping", nil, nil, make(chan *rpc.Call))
	})
}

func TestClient_Metrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	metrics := rpc.NewMetricsWithRegistry(reg)
	client, _ := setupClient(rpc.WithMetrics(metrics))

	var count int64
	require.NoError(t, client.Call(testCtx, "getblockcount", nil, &count))
	require.NoError(t, client.Call(testCtx, "getblockcount", nil, &count))
	_ = client.Call(testCtx, "getblockhash", []any{1000}, nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Calls.WithLabelValues("getblockcount", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Calls.WithLabelValues("getblockhash", "rpc_error")))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.InFlight))
}

func TestClient_RateLimit(t *testing.T) {
	t.Parallel()

	client, _ := setupClient(rpc.WithRateLimit(rate.Every(time.Hour), 1))

	require.NoError(t, client.Call(testCtx, "ping", nil, nil))

	ctx, cancel := context.WithTimeout(testCtx, 50*time.Millisecond)
	defer cancel()
	err := client.Call(ctx, "ping", nil, nil)
	assert.ErrorIs(t, err, rpc.ErrCanceled)
}

func TestClient_JSONRPC2(t *testing.T) {
	t.Parallel()

	client, transport := setupClient(rpc.WithJSONRPCVersion(rpc.Version2))
	require.NoError(t, client.Call(testCtx, "ping", nil, nil))
	assert.Equal(t, rpc.Version2, transport.Requests()[0].JSONRPC)
}
