package rpc_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rust-bitcoin/corepc/pkg/rpc"
)

func TestEncodeRequest(t *testing.T) {
	t.Parallel()

	req, err := rpc.NewRequest(rpc.Version1, 7, "getblockhash", 101)
	require.NoError(t, err)

	body, err := rpc.EncodeRequest(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"jsonrpc":"1.0","id":7,"method":"getblockhash","params":[101]}`, string(body))

	req, err = rpc.NewRequest(rpc.Version2, 8, "getblockcount")
	require.NoError(t, err)
	body, err = rpc.EncodeRequest(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":8,"method":"getblockcount","params":[]}`, string(body))
}

func TestNewRequest_UnencodableParam(t *testing.T) {
	t.Parallel()

	_, err := rpc.NewRequest(rpc.Version1, 1, "x", make(chan int))
	assert.ErrorIs(t, err, rpc.ErrCodec)
}

func TestDecodeResponse(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name      string
		body      string
		id        uint64
		expResult string
		expRPC    *rpc.RPCError
		expErr    error
	}{
		{
			name:      "result",
			body:      `{"result":101,"error":null,"id":3}`,
			id:        3,
			expResult: `101`,
		},
		{
			name:      "null result",
			body:      `{"result":null,"error":null,"id":3}`,
			id:        3,
			expResult: `null`,
		},
		{
			name:      "json-rpc 2.0 result",
			body:      `{"jsonrpc":"2.0","result":"00ff","id":3}`,
			id:        3,
			expResult: `"00ff"`,
		},
		{
			name:   "rpc error",
			body:   `{"result":null,"error":{"code":-8,"message":"Block height out of range"},"id":4}`,
			id:     4,
			expRPC: &rpc.RPCError{Code: -8, Message: "Block height out of range"},
		},
		{
			name:   "missing id",
			body:   `{"result":1,"error":null}`,
			id:     1,
			expErr: rpc.ErrMissingID,
		},
		{
			name:   "id mismatch",
			body:   `{"result":1,"error":null,"id":2}`,
			id:     1,
			expErr: rpc.ErrIDMismatch,
		},
		{
			name:   "null id",
			body:   `{"result":null,"error":{"code":-32700,"message":"Parse error"},"id":null}`,
			id:     1,
			expErr: rpc.ErrIDMismatch,
		},
		{
			name:   "string id",
			body:   `{"result":1,"error":null,"id":"1"}`,
			id:     1,
			expErr: rpc.ErrIDMismatch,
		},
		{
			name:   "no result member",
			body:   `{"error":null,"id":1}`,
			id:     1,
			expErr: rpc.ErrMissingField,
		},
		{
			name:   "both result and error",
			body:   `{"result":1,"error":{"code":-1,"message":"x"},"id":1}`,
			id:     1,
			expErr: rpc.ErrAmbiguous,
		},
		{
			name:   "malformed",
			body:   `{"result":`,
			id:     1,
			expErr: rpc.ErrMalformedJSON,
		},
		{
			name:   "html",
			body:   `<html>401</html>`,
			id:     1,
			expErr: rpc.ErrMalformedJSON,
		},
	}

	for _, tc := range tcs {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			res, err := rpc.DecodeResponse([]byte(tc.body), tc.id)
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
				assert.ErrorIs(t, err, rpc.ErrCodec)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.id, res.ID)

			if tc.expRPC != nil {
				assert.Equal(t, tc.expRPC, res.Error)
				assert.ErrorIs(t, res.Err(), rpc.ErrRPC)
				return
			}
			assert.NoError(t, res.Err())
			assert.JSONEq(t, tc.expResult, string(res.Result))
		})
	}
}

func TestRPCError(t *testing.T) {
	t.Parallel()

	var err error = &rpc.RPCError{Code: rpc.CodeInWarmup, Message: "Loading block index…", Data: json.RawMessage(`{"x":1}`)}
	assert.EqualError(t, err, "rpc error -28: Loading block index…")
	assert.ErrorIs(t, err, rpc.ErrRPC)
	assert.NotErrorIs(t, err, rpc.ErrTransport)
	assert.NotErrorIs(t, err, rpc.ErrCodec)
}
