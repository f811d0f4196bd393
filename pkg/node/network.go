package node

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rust-bitcoin/corepc/pkg/client/v17"
)

// Network is a set of nodes connected in a chain: node i peers with node i-1.
type Network struct {
	Nodes []*Node
}

// StartNetwork starts count nodes with p2p enabled and connects each to its predecessor.
// On error every node already started is stopped.
func StartNetwork(ctx context.Context, count int, conf Conf, opts ...Option) (*Network, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: network of %d nodes", ErrInvalidConf, count)
	}
	conf.P2P = P2P{Mode: P2PYes}

	nw := &Network{Nodes: make([]*Node, count)}
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < count; i++ {
		i := i
		g.Go(func() error {
			n, err := Start(gctx, conf, opts...)
			if err != nil {
				return fmt.Errorf("node %d: %w", i, err)
			}
			nw.Nodes[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Join(err, nw.Stop(context.Background()))
	}

	for i := 1; i < count; i++ {
		if err := connect(ctx, nw.Nodes[i], nw.Nodes[i-1], conf.ReadinessInterval, conf.ReadinessTimeout); err != nil {
			return nil, errors.Join(fmt.Errorf("connect node %d: %w", i, err), nw.Stop(context.Background()))
		}
	}
	return nw, nil
}

// connect asks n to dial peer and waits until n reports a connection.
func connect(ctx context.Context, n, peer *Node, interval, timeout time.Duration) error {
	addr, ok := peer.P2PAddr()
	if !ok {
		return fmt.Errorf("%w: peer is not listening", ErrInvalidState)
	}
	if err := n.Client.AddNode(ctx, addr, v17.AddNodeOneTry); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		count, err := n.Client.GetConnectionCount(ctx)
		if err == nil && count > 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: no peer connection to %s: %v", ErrReadinessTimeout, addr, err)
		case <-ticker.C:
		}
	}
}

// Stop stops every node concurrently and joins their errors.
func (nw *Network) Stop(ctx context.Context) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, n := range nw.Nodes {
		n := n
		if n == nil {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := n.Stop(ctx); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return errors.Join(errs...)
}
