package node

// State is the lifecycle position of a Node.
type State int

const (
	StateUnresolved State = iota
	StateBinaryResolved
	StateSpawned
	StateReady
	StateStopped
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUnresolved:
		return "unresolved"
	case StateBinaryResolved:
		return "binary_resolved"
	case StateSpawned:
		return "spawned"
	case StateReady:
		return "ready"
	case StateStopped:
		return "stopped"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == StateStopped || s == StateFailed
}

// canTransition allows the forward path, Failed from any non-terminal state, and a retry
// from Spawned back to BinaryResolved.
func canTransition(from, to State) bool {
	if from.Terminal() {
		return false
	}
	switch to {
	case StateFailed:
		return true
	case StateBinaryResolved:
		return from == StateUnresolved || from == StateSpawned
	case StateSpawned:
		return from == StateBinaryResolved
	case StateReady:
		return from == StateSpawned
	case StateStopped:
		return true
	default:
		return false
	}
}
