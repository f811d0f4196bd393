package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateTransitions(t *testing.T) {
	allowed := [][2]State{
		{StateUnresolved, StateBinaryResolved},
		{StateBinaryResolved, StateSpawned},
		{StateSpawned, StateReady},
		{StateSpawned, StateBinaryResolved},
		{StateReady, StateStopped},
		{StateUnresolved, StateStopped},
		{StateSpawned, StateFailed},
	}
	for _, tr := range allowed {
		assert.True(t, canTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}

	denied := [][2]State{
		{StateUnresolved, StateReady},
		{StateBinaryResolved, StateReady},
		{StateReady, StateSpawned},
		{StateStopped, StateReady},
		{StateFailed, StateStopped},
		{StateStopped, StateFailed},
	}
	for _, tr := range denied {
		assert.False(t, canTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "binary_resolved", StateBinaryResolved.String())
	assert.Equal(t, "unknown", State(42).String())
	assert.True(t, StateFailed.Terminal())
	assert.False(t, StateReady.Terminal())
}
