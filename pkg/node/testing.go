package node

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewForTest starts a node and stops it when t finishes. It fails t if the node cannot start.
func NewForTest(t testing.TB, conf Conf, opts ...Option) *Node {
	t.Helper()

	n, err := New(conf, opts...)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := n.Stop(context.Background()); err != nil {
			t.Errorf("stop bitcoind: %v", err)
		}
	})
	require.NoError(t, n.Start(context.Background()))
	return n
}
