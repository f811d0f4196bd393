package node

import (
	"errors"
	"fmt"
)

var (
	// ErrResolution is the class of errors finding a daemon binary.
	ErrResolution     = errors.New("bitcoind resolution failed")
	ErrBinaryNotFound = fmt.Errorf("%w: binary not found", ErrResolution)

	// ErrSupervisor is the class of errors running the daemon.
	ErrSupervisor       = errors.New("bitcoind supervisor failed")
	ErrSpawn            = fmt.Errorf("%w: spawn", ErrSupervisor)
	ErrReadinessTimeout = fmt.Errorf("%w: readiness deadline exceeded", ErrSupervisor)
	ErrProcessExited    = fmt.Errorf("%w: process exited", ErrSupervisor)
	ErrShutdown         = fmt.Errorf("%w: shutdown", ErrSupervisor)
	ErrInvalidState     = fmt.Errorf("%w: invalid state", ErrSupervisor)
	ErrInvalidConf      = errors.New("invalid node conf")
)
