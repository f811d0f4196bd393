package node

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/log"
	"github.com/rust-bitcoin/corepc/pkg/node/download"
	"github.com/rust-bitcoin/corepc/pkg/rpc"
)

const localhost = "127.0.0.1"

// Node supervises one bitcoind process. Start and Stop must not run concurrently; the
// accessors and Client are safe to use from any goroutine once Start has returned.
type Node struct {
	// Client talks to the daemon with cookie authentication. It is nil until the node is ready.
	Client *Client

	id       string
	conf     Conf
	resolver Resolver
	lg       log.Logger
	metrics  *Metrics
	rpcOpts  []rpc.Option
	envSet   bool

	mu      sync.Mutex
	state   State
	exe     string
	workDir string
	dirHeld bool
	rpcPort int
	p2pPort int
	cmd     *exec.Cmd
	exited  chan struct{}
	waitErr error
	stdout  *tailBuffer
	stderr  *tailBuffer

	stopOnce sync.Once
	stopErr  error
}

// Option configures the supervisor rather than the daemon.
type Option func(*Node)

// WithLogger sets the supervisor logger. Daemon output is logged under it when
// ViewStdout is set.
func WithLogger(lg log.Logger) Option {
	return func(n *Node) { n.lg = lg }
}

func WithMetrics(m *Metrics) Option {
	return func(n *Node) { n.metrics = m }
}

// WithEnv supplies the environment. New then leaves the process environment unread.
func WithEnv(env Env) Option {
	return func(n *Node) {
		n.resolver.Env = env
		n.envSet = true
	}
}

// WithFetcher sets the download collaborator. Without it one is built from the Env.
func WithFetcher(f Fetcher) Option {
	return func(n *Node) { n.resolver.Fetcher = f }
}

// WithRPCOptions is passed to every client the node builds.
func WithRPCOptions(opts ...rpc.Option) Option {
	return func(n *Node) { n.rpcOpts = append(n.rpcOpts, opts...) }
}

// New validates conf and prepares a node. Nothing is resolved or spawned until Start.
func New(conf Conf, opts ...Option) (*Node, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	n := &Node{
		id:     uuid.NewString(),
		conf:   conf,
		lg:     log.NewNoopLogger(),
		stdout: &tailBuffer{},
		stderr: &tailBuffer{},
	}

	for _, opt := range opts {
		opt(n)
	}
	if !n.envSet {
		env, err := LoadEnv("")
		if err != nil {
			return nil, err
		}
		n.resolver.Env = env
	}
	if n.conf.TempDirRoot == "" {
		n.conf.TempDirRoot = n.resolver.Env.TempDirRoot
	}
	if n.resolver.Fetcher == nil {
		// Without a cache dir resolution still works from an explicit path or PATH.
		if d, err := n.resolver.Env.Downloader(download.WithLogger(n.lg)); err == nil {
			n.resolver.Fetcher = d
		} else {
			n.lg.Warn("download disabled", "error", err)
		}
	}
	n.lg = n.lg.WithName("node").WithKV("node", n.id[:8])
	return n, nil
}

// Start resolves the daemon for conf, runs it and returns once it answers RPC calls. On error
// the partially started node has already been torn down.
func Start(ctx context.Context, conf Conf, opts ...Option) (*Node, error) {
	n, err := New(conf, opts...)
	if err != nil {
		return nil, err
	}
	if err := n.Start(ctx); err != nil {
		_ = n.Stop(context.Background())
		return nil, err
	}
	return n, nil
}

// Start runs the node through resolution, spawn and readiness.
func (n *Node) Start(ctx context.Context) error {
	if st := n.State(); st != StateUnresolved {
		return fmt.Errorf("%w: start from %s", ErrInvalidState, st)
	}
	started := time.Now()

	exe, err := n.resolver.Resolve(ctx, Version, n.conf.Executable)
	if err != nil {
		return n.fail(err)
	}
	n.mu.Lock()
	n.exe = exe
	n.mu.Unlock()
	n.setState(StateBinaryResolved)
	n.lg.Debug("bitcoind resolved", "exe", exe, "version", Version.String())

	for attempt := 1; ; attempt++ {
		err = n.spawn()
		if err == nil {
			err = n.waitReady(ctx)
		}
		if err == nil {
			break
		}
		n.teardown()
		if attempt >= n.conf.Attempts || ctx.Err() != nil || !errors.Is(err, ErrProcessExited) {
			return n.fail(err)
		}
		n.lg.Warn("bitcoind exited during startup, retrying", "attempt", attempt, "error", err)
		n.setState(StateBinaryResolved)
	}

	if n.conf.Wallet != "" {
		if _, err := n.Client.CreateWallet(ctx, n.conf.Wallet); err != nil {
			n.teardown()
			return n.fail(fmt.Errorf("create wallet %q: %w", n.conf.Wallet, err))
		}
	}

	n.setState(StateReady)
	if n.metrics != nil {
		n.metrics.Starts.WithLabelValues("ok").Inc()
		n.metrics.StartDuration.Observe(time.Since(started).Seconds())
		n.metrics.Running.Inc()
	}
	n.lg.Info("bitcoind ready", "rpc", n.RPCURL(), "workdir", n.WorkDir(), "elapsed", time.Since(started))
	return nil
}

func (n *Node) fail(err error) error {
	n.setState(StateFailed)
	if n.metrics != nil {
		n.metrics.Starts.WithLabelValues("error").Inc()
	}
	n.lg.Error("bitcoind failed to start", "error", err)
	return err
}

func (n *Node) setState(to State) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !canTransition(n.state, to) {
		return
	}
	n.lg.Debug("state", "from", n.state.String(), "to", to.String())
	n.state = to
}

func (n *Node) spawn() error {
	if err := n.allocate(); err != nil {
		return err
	}

	cmd := exec.Command(n.exe, n.daemonArgs()...)
	cmd.Dir = n.workDir
	cmd.Env = append(os.Environ(), n.conf.Env...)
	stdout, stderr := io.Writer(n.stdout), io.Writer(n.stderr)
	var lines []*log.LineWriter
	if n.conf.ViewStdout {
		out := log.NewLineWriter(n.lg.WithName("stdout"), log.LevelInfo)
		errw := log.NewLineWriter(n.lg.WithName("stderr"), log.LevelWarn)
		lines = append(lines, out, errw)
		stdout = io.MultiWriter(stdout, out)
		stderr = io.MultiWriter(stderr, errw)
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSpawn, n.exe, err)
	}
	if n.metrics != nil {
		n.metrics.StartAttempts.Inc()
	}

	exited := make(chan struct{})
	n.mu.Lock()
	n.cmd = cmd
	n.exited = exited
	n.mu.Unlock()
	go func() {
		err := cmd.Wait()
		for _, lw := range lines {
			lw.Flush()
		}
		n.mu.Lock()
		n.waitErr = err
		n.mu.Unlock()
		close(exited)
	}()

	n.setState(StateSpawned)
	n.lg.Debug("bitcoind spawned", "pid", cmd.Process.Pid, "rpcport", n.rpcPort, "p2pport", n.p2pPort)
	return nil
}

func (n *Node) allocate() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.dirHeld {
		if n.conf.StaticDir != "" {
			if err := claimStaticDir(n.conf.StaticDir); err != nil {
				return err
			}
			abs, _ := filepath.Abs(n.conf.StaticDir)
			n.workDir = abs
		} else {
			dir, err := createWorkDir(n.conf.TempDirRoot)
			if err != nil {
				return err
			}
			n.workDir = dir
		}
		n.dirHeld = true
	}

	port, err := reservePort()
	if err != nil {
		return err
	}
	n.rpcPort = port
	if n.listensP2P() {
		if n.p2pPort, err = reservePort(); err != nil {
			return err
		}
	}
	return nil
}

func (n *Node) listensP2P() bool {
	switch n.conf.P2P.Mode {
	case P2PYes:
		return true
	case P2PConnect:
		return n.conf.P2P.Listen
	default:
		return false
	}
}

// v2TransportSince is the first release accepting -v2transport.
const v2TransportSince = client.V26

func (n *Node) daemonArgs() []string {
	args := append([]string(nil), n.conf.Args...)
	args = append(args,
		"-datadir="+n.workDir,
		"-rpcport="+strconv.Itoa(n.rpcPort),
		"-rpcbind="+localhost,
		"-rpcallowip="+localhost,
	)
	if n.listensP2P() {
		args = append(args,
			"-listen=1",
			"-bind="+net.JoinHostPort(localhost, strconv.Itoa(n.p2pPort)),
			"-listenonion=0",
		)
	} else {
		args = append(args, "-listen=0")
	}
	if n.conf.P2P.Mode == P2PConnect {
		args = append(args, "-connect="+n.conf.P2P.Connect)
	}
	if n.conf.V2Transport && Version >= v2TransportSince {
		args = append(args, "-v2transport=1")
	}
	return args
}

func (n *Node) waitReady(ctx context.Context) error {
	rctx, cancel := context.WithTimeout(ctx, n.conf.ReadinessTimeout)
	defer cancel()
	ticker := time.NewTicker(n.conf.ReadinessInterval)
	defer ticker.Stop()

	n.mu.Lock()
	exited := n.exited
	n.mu.Unlock()

	var (
		c       *Client
		lastErr error
	)
	for {
		select {
		case <-exited:
			return n.exitError()
		default:
		}

		if c == nil {
			c, lastErr = n.readyClient()
		}
		if c != nil {
			lastErr = checkReady(rctx, c)
			if lastErr == nil {
				n.Client = c
				return nil
			}
			if !transient(lastErr) {
				return fmt.Errorf("%w: readiness check: %w", ErrSupervisor, lastErr)
			}
			var status *rpc.HTTPStatusError
			if errors.As(lastErr, &status) && status.StatusCode == 401 {
				c = nil
			}
		}

		select {
		case <-exited:
			return n.exitError()
		case <-rctx.Done():
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("%w: wait for readiness: %w", ErrSupervisor, err)
			}
			return fmt.Errorf("%w: %s elapsed, last error: %v", ErrReadinessTimeout, n.conf.ReadinessTimeout, lastErr)
		case <-ticker.C:
		}
	}
}

// readyClient builds the client once the daemon has written its cookie.
func (n *Node) readyClient() (*Client, error) {
	if _, err := os.Stat(n.CookieFile()); err != nil {
		return nil, err
	}
	return n.newClient(n.RPCURL())
}

func checkReady(ctx context.Context, c *Client) error {
	info, err := c.GetBlockchainInfo(ctx)
	if err != nil {
		return err
	}
	_, err = info.IntoModel()
	return err
}

// transient reports whether a starting daemon may still answer err with success later.
func transient(err error) bool {
	if errors.Is(err, rpc.ErrTransport) {
		return true
	}
	var rpcErr *rpc.RPCError
	return errors.As(err, &rpcErr) && rpcErr.Code == rpc.CodeInWarmup
}

func (n *Node) exitError() error {
	n.mu.Lock()
	werr := n.waitErr
	n.mu.Unlock()
	return fmt.Errorf("%w: %v: stderr: %s", ErrProcessExited, werr, lastLines(n.stderr.String(), 5))
}

func (n *Node) newClient(rpcURL string) (*Client, error) {
	opts := append([]rpc.Option{rpc.WithLogger(n.lg)}, n.rpcOpts...)
	return NewClient(rpc.Config{
		URL:        rpcURL,
		CookieFile: n.CookieFile(),
		Timeout:    rpc.DefaultTimeout,
	}, opts...)
}

// WalletClient returns a client whose calls go to the wallet named name.
func (n *Node) WalletClient(name string) (*Client, error) {
	if n.State() != StateReady {
		return nil, fmt.Errorf("%w: wallet client in state %s", ErrInvalidState, n.State())
	}
	return n.newClient(n.WalletURL(name))
}

// Stop shuts the daemon down and removes its working directory unless it is a static one.
// Stop is idempotent; later calls return the result of the first.
func (n *Node) Stop(ctx context.Context) error {
	n.stopOnce.Do(func() { n.stopErr = n.stop(ctx) })
	return n.stopErr
}

func (n *Node) stop(ctx context.Context) error {
	n.mu.Lock()
	st := n.state
	cmd, exited := n.cmd, n.exited
	n.mu.Unlock()

	var errs []error
	how := "none"
	if cmd != nil {
		select {
		case <-exited:
			if st == StateReady {
				errs = append(errs, n.exitError())
			}
		default:
			how = n.shutdown(ctx, st)
			n.mu.Lock()
			werr := n.waitErr
			n.mu.Unlock()
			if how != "kill" && werr != nil {
				errs = append(errs, fmt.Errorf("%w: exit after %s: %w", ErrShutdown, how, werr))
			}
		}
	}
	if err := n.release(); err != nil {
		errs = append(errs, err)
	}

	if n.metrics != nil {
		if st == StateReady {
			n.metrics.Running.Dec()
		}
		n.metrics.Stops.WithLabelValues(how).Inc()
	}
	n.setState(StateStopped)
	err := errors.Join(errs...)
	n.lg.Info("bitcoind stopped", "how", how, "error", err)
	return err
}

// shutdown asks the daemon to exit, escalating from the stop RPC to SIGTERM to SIGKILL.
func (n *Node) shutdown(ctx context.Context, st State) string {
	n.mu.Lock()
	cmd, exited := n.cmd, n.exited
	n.mu.Unlock()

	how := ""
	if st == StateReady && n.Client != nil {
		sctx, cancel := context.WithTimeout(ctx, n.conf.ShutdownGrace)
		if _, err := n.Client.Stop(sctx); err == nil {
			how = "rpc"
		} else {
			n.lg.Debug("stop rpc failed", "error", err)
		}
		cancel()
	}
	if how == "" {
		if err := cmd.Process.Signal(syscall.SIGTERM); err == nil {
			how = "signal"
		}
	}

	grace := time.NewTimer(n.conf.ShutdownGrace)
	defer grace.Stop()
	select {
	case <-exited:
		return how
	case <-grace.C:
	case <-ctx.Done():
	}

	n.lg.Warn("bitcoind did not exit in time, killing", "grace", n.conf.ShutdownGrace)
	_ = cmd.Process.Kill()
	<-exited
	return "kill"
}

// teardown kills the current process and frees what the attempt allocated.
func (n *Node) teardown() {
	n.mu.Lock()
	cmd, exited := n.cmd, n.exited
	n.mu.Unlock()
	if cmd != nil {
		select {
		case <-exited:
		default:
			_ = cmd.Process.Kill()
			<-exited
		}
	}
	if err := n.release(); err != nil {
		n.lg.Warn("teardown", "error", err)
	}
}

func (n *Node) release() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	releasePort(n.rpcPort)
	releasePort(n.p2pPort)
	n.p2pPort = 0
	n.rpcPort = 0
	n.cmd = nil

	if !n.dirHeld {
		return nil
	}
	n.dirHeld = false
	releaseDir(n.workDir)
	if n.conf.StaticDir != "" {
		return nil
	}
	if err := os.RemoveAll(n.workDir); err != nil {
		return fmt.Errorf("%w: remove %s: %w", ErrShutdown, n.workDir, err)
	}
	return nil
}

// State returns the current lifecycle state.
func (n *Node) State() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// ID is unique per Node and names its working directory.
func (n *Node) ID() string {
	return n.id
}

// Exe is the resolved daemon binary.
func (n *Node) Exe() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.exe
}

// WorkDir is the daemon's data directory. It is kept after Stop for inspection, but removed
// from disk unless StaticDir was set.
func (n *Node) WorkDir() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.workDir
}

// CookieFile is where the daemon writes its RPC credentials.
func (n *Node) CookieFile() string {
	return filepath.Join(n.WorkDir(), n.conf.Chain(), ".cookie")
}

// RPCURL is the base URL of the daemon RPC endpoint. It is empty before Start.
func (n *Node) RPCURL() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return "http://" + localhost + ":" + strconv.Itoa(n.rpcPort)
}

// WalletURL is the endpoint of wallet-scoped calls for the named wallet.
func (n *Node) WalletURL(name string) string {
	return n.RPCURL() + "/wallet/" + url.PathEscape(name)
}

// P2PAddr is the host:port peers can connect to. It reports false when p2p is not listening.
func (n *Node) P2PAddr() (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.p2pPort == 0 {
		return "", false
	}
	return localhost + ":" + strconv.Itoa(n.p2pPort), true
}

// Params collects what other processes need to reach the daemon.
type Params struct {
	RPCURL     string `yaml:"rpc_url"`
	CookieFile string `yaml:"cookie_file"`
	P2PAddr    string `yaml:"p2p_addr,omitempty"`
	WorkDir    string `yaml:"work_dir"`
	Version    string `yaml:"version"`
}

// Params collects the connection parameters of a running node.
func (n *Node) Params() Params {
	p2p, _ := n.P2PAddr()
	return Params{
		RPCURL:     n.RPCURL(),
		CookieFile: n.CookieFile(),
		P2PAddr:    p2p,
		WorkDir:    n.WorkDir(),
		Version:    Version.String(),
	}
}

// Stdout is the tail of what the daemon printed to stdout.
func (n *Node) Stdout() string {
	return n.stdout.String()
}

// Stderr is the tail of what the daemon printed to stderr.
func (n *Node) Stderr() string {
	return n.stderr.String()
}

// lastLines returns at most n trailing lines of s.
func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}

// NewClient connects to an already running daemon using the client of the built-for release.
func NewClient(cfg rpc.Config, opts ...rpc.Option) (*Client, error) {
	b, err := client.NewBase(Version, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return newClient(b), nil
}
