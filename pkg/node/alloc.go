package node

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// Ports and directories held by supervisors in this process. A port found free is free only until
// its listener closes, so every allocation is checked against these sets.
var (
	allocMu       sync.Mutex
	reservedPorts = make(map[int]struct{})
	reservedDirs  = make(map[string]struct{})
)

const maxPortTries = 64

// reservePort returns a free loopback port no other supervisor in this process holds.
func reservePort() (int, error) {
	for try := 0; try < maxPortTries; try++ {
		l, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			return 0, fmt.Errorf("%w: listen for a free port: %w", ErrSpawn, err)
		}
		port := l.Addr().(*net.TCPAddr).Port
		l.Close()

		allocMu.Lock()
		_, taken := reservedPorts[port]
		if !taken {
			reservedPorts[port] = struct{}{}
		}
		allocMu.Unlock()
		if !taken {
			return port, nil
		}
	}
	return 0, fmt.Errorf("%w: no free port after %d tries", ErrSpawn, maxPortTries)
}

func releasePort(port int) {
	if port == 0 {
		return
	}
	allocMu.Lock()
	delete(reservedPorts, port)
	allocMu.Unlock()
}

// createWorkDir makes a fresh uniquely named directory under root.
func createWorkDir(root string) (string, error) {
	if root == "" {
		root = os.TempDir()
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSpawn, err)
	}
	for try := 0; try < 8; try++ {
		dir := filepath.Join(root, "corepc-node-"+uuid.NewString())
		allocMu.Lock()
		_, taken := reservedDirs[dir]
		if !taken {
			reservedDirs[dir] = struct{}{}
		}
		allocMu.Unlock()
		if taken {
			continue
		}
		err := os.Mkdir(dir, 0o700)
		if err == nil {
			return dir, nil
		}
		releaseDir(dir)
		if !os.IsExist(err) {
			return "", fmt.Errorf("%w: create working dir: %w", ErrSpawn, err)
		}
	}
	return "", fmt.Errorf("%w: could not create a unique working dir under %s", ErrSpawn, root)
}

// claimStaticDir registers a caller-chosen directory, failing if another supervisor uses it.
func claimStaticDir(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSpawn, err)
	}
	allocMu.Lock()
	defer allocMu.Unlock()
	if _, taken := reservedDirs[abs]; taken {
		return fmt.Errorf("%w: %s is used by another node", ErrSpawn, abs)
	}
	if err := os.MkdirAll(abs, 0o700); err != nil {
		return fmt.Errorf("%w: create static dir: %w", ErrSpawn, err)
	}
	reservedDirs[abs] = struct{}{}
	return nil
}

func releaseDir(dir string) {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	allocMu.Lock()
	delete(reservedDirs, dir)
	allocMu.Unlock()
}
