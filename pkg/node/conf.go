package node

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// P2PMode selects how the daemon's peer-to-peer port is set up.
type P2PMode int

const (
	// P2PNo disables listening.
	P2PNo P2PMode = iota
	// P2PYes listens on an allocated port.
	P2PYes
	// P2PConnect listens on an allocated port only if Listen is set, and connects to Connect.
	P2PConnect
)

// P2P configures peer-to-peer networking.
type P2P struct {
	Mode    P2PMode
	Connect string `validate:"required_if=Mode 2"`
	Listen  bool
}

// Conf configures one daemon.
type Conf struct {
	// Args are passed to the daemon before the generated ones.
	Args []string
	// Executable skips binary resolution.
	Executable string
	// ViewStdout logs every line the daemon prints.
	ViewStdout bool
	P2P        P2P
	// Wallet is created once the daemon is ready. Empty means no wallet.
	Wallet string
	// StaticDir is used as the data directory and kept after Stop.
	StaticDir string
	// TempDirRoot is where the working directory is created; empty means the OS default.
	TempDirRoot string
	// V2Transport enables BIP324 connections. Requires v26 or newer.
	V2Transport bool
	// Env is appended to the supervisor's environment.
	Env []string

	Attempts          int           `validate:"gte=1"`
	ReadinessTimeout  time.Duration `validate:"gt=0"`
	ReadinessInterval time.Duration `validate:"gt=0,ltefield=ReadinessTimeout"`
	ShutdownGrace     time.Duration `validate:"gt=0"`
}

// DefaultConf mirrors what tests usually want: regtest, a default wallet, no p2p.
func DefaultConf() Conf {
	return Conf{
		Args:              []string{"-regtest", "-fallbackfee=0.0001"},
		Wallet:            "default",
		Attempts:          3,
		ReadinessTimeout:  30 * time.Second,
		ReadinessInterval: 100 * time.Millisecond,
		ShutdownGrace:     10 * time.Second,
	}
}

var confValidator = validator.New()

// Validate checks conf against the daemon version the package was built for.
func (c Conf) Validate() error {
	if err := confValidator.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConf, err)
	}
	if c.P2P.Connect != "" {
		if _, _, err := net.SplitHostPort(c.P2P.Connect); err != nil {
			return fmt.Errorf("%w: p2p connect address: %w", ErrInvalidConf, err)
		}
	}
	if c.V2Transport && Version < v2TransportSince {
		return fmt.Errorf("%w: v2transport needs v26 or newer, built for %s", ErrInvalidConf, Version)
	}
	for _, a := range c.Args {
		if !strings.HasPrefix(a, "-") {
			return fmt.Errorf("%w: daemon argument %q must start with '-'", ErrInvalidConf, a)
		}
		for _, owned := range ownedArgs {
			if strings.HasPrefix(a, owned+"=") || a == owned {
				return fmt.Errorf("%w: %s is set by the supervisor", ErrInvalidConf, owned)
			}
		}
	}
	return nil
}

// Chain is the data directory subfolder the daemon uses for the selected network.
func (c Conf) Chain() string {
	chain := "main"
	for _, a := range c.Args {
		switch {
		case a == "-regtest" || a == "-regtest=1" || a == "-chain=regtest":
			chain = "regtest"
		case a == "-signet" || a == "-signet=1" || a == "-chain=signet":
			chain = "signet"
		case a == "-testnet4" || a == "-testnet4=1" || a == "-chain=testnet4":
			chain = "testnet4"
		case a == "-testnet" || a == "-testnet=1" || a == "-chain=test":
			chain = "testnet3"
		}
	}
	if chain == "main" {
		return ""
	}
	return chain
}

// Arguments the supervisor generates itself.
var ownedArgs = []string{
	"-datadir", "-rpcport", "-rpcbind", "-port", "-bind", "-listen", "-listenonion", "-connect",
	"-rpcuser", "-rpcpassword",
}
