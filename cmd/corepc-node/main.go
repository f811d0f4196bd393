// Command corepc-node runs a supervised bitcoind and inspects running daemons.
//
//	corepc-node start [flags]   run a node until interrupted, printing its connection params
//	corepc-node info            query the daemon configured by COREPC_RPC_* variables
//	corepc-node fetch           download and cache the release this binary was built for
//	corepc-node version         print the supported release
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gopkg.in/yaml.v3"

	"github.com/rust-bitcoin/corepc/pkg/log"
	"github.com/rust-bitcoin/corepc/pkg/node"
	"github.com/rust-bitcoin/corepc/pkg/node/download"
	"github.com/rust-bitcoin/corepc/pkg/rpc"
)

const dotenvPath = ".env"

func main() {
	var logConf log.Config
	if err := cleanenv.ReadEnv(&logConf); err != nil {
		fmt.Fprintln(os.Stderr, "read log config:", err)
		os.Exit(2)
	}
	logger := log.NewZapLogger(logConf).WithName("corepc-node")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch name := os.Args[1]; name {
	case "start":
		err = runStart(ctx, logger, os.Args[2:])
	case "info":
		err = runInfo(ctx, logger)
	case "fetch":
		err = runFetch(ctx, logger)
	case "version":
		err = runVersion()
	default:
		usage()
		logger.Fatal("unknown command", "name", name)
	}
	if err != nil {
		logger.Fatal("command failed", "command", os.Args[1], "error", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: corepc-node start|info|fetch|version")
}

type argList []string

func (a *argList) String() string     { return strings.Join(*a, " ") }
func (a *argList) Set(v string) error { *a = append(*a, v); return nil }

func runStart(ctx context.Context, logger log.Logger, args []string) error {
	conf := node.DefaultConf()
	var (
		extra       argList
		p2p         bool
		metricsAddr string
	)
	fs := flag.NewFlagSet("start", flag.ContinueOnError)
	fs.Var(&extra, "arg", "extra daemon argument, repeatable")
	fs.StringVar(&conf.Executable, "exe", "", "bitcoind to run instead of resolving one")
	fs.StringVar(&conf.Wallet, "wallet", conf.Wallet, "wallet created once ready, empty for none")
	fs.StringVar(&conf.StaticDir, "datadir", "", "data directory kept after stop")
	fs.BoolVar(&conf.ViewStdout, "view-stdout", false, "log the daemon's output")
	fs.BoolVar(&conf.V2Transport, "v2transport", false, "enable BIP324 connections")
	fs.BoolVar(&p2p, "p2p", false, "listen for peers on an allocated port")
	fs.DurationVar(&conf.ReadinessTimeout, "timeout", conf.ReadinessTimeout, "readiness deadline")
	fs.StringVar(&metricsAddr, "metrics", ":4242", "prometheus listen address, empty to disable")
	if err := fs.Parse(args); err != nil {
		return err
	}
	conf.Args = append(conf.Args, extra...)
	if p2p {
		conf.P2P = node.P2P{Mode: node.P2PYes}
	}

	env, err := node.LoadEnv(dotenvPath)
	if err != nil {
		return err
	}
	opts := []node.Option{node.WithLogger(logger), node.WithEnv(env)}

	var metricsServer *http.Server
	if metricsAddr != "" {
		opts = append(opts,
			node.WithMetrics(node.NewMetrics()),
			node.WithRPCOptions(rpc.WithMetrics(rpc.NewMetrics())),
		)
		metricsMux := http.NewServeMux()
		metricsMux.Handle("/metrics", promhttp.Handler())
		metricsServer = &http.Server{Addr: metricsAddr, Handler: metricsMux}
		go func() {
			logger.Info("Prometheus metrics available", "listenAddr", metricsAddr, "endpoint", "/metrics")
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failure", "error", err)
			}
		}()
	}

	n, err := node.Start(ctx, conf, opts...)
	if err != nil {
		return err
	}
	if err := printYAML(n.Params()); err != nil {
		logger.Error("print params", "error", err)
	}

	<-ctx.Done()
	logger.Info("shutting down")

	stopCtx, cancel := context.WithTimeout(context.Background(), conf.ShutdownGrace+5*time.Second)
	defer cancel()
	err = n.Stop(stopCtx)
	if metricsServer != nil {
		if serr := metricsServer.Shutdown(stopCtx); serr != nil {
			logger.Error("failed to shut down metrics server", "error", serr)
		}
	}
	logger.Info("shutdown complete")
	return err
}

type infoOutput struct {
	Blockchain any `yaml:"blockchain"`
	Network    any `yaml:"network"`
}

func runInfo(ctx context.Context, logger log.Logger) error {
	cfg, err := rpc.LoadConfig(dotenvPath)
	if err != nil {
		return err
	}
	c, err := node.NewClient(cfg, rpc.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := c.CheckExpectedServerVersion(ctx); err != nil {
		logger.Warn("server version", "error", err)
	}

	bci, err := c.GetBlockchainInfo(ctx)
	if err != nil {
		return err
	}
	chain, err := bci.IntoModel()
	if err != nil {
		return err
	}
	ni, err := c.GetNetworkInfo(ctx)
	if err != nil {
		return err
	}
	network, err := ni.IntoModel()
	if err != nil {
		return err
	}
	return printYAML(infoOutput{Blockchain: chain, Network: network})
}

func runFetch(ctx context.Context, logger log.Logger) error {
	env, err := node.LoadEnv(dotenvPath)
	if err != nil {
		return err
	}
	d, err := env.Downloader(download.WithLogger(logger))
	if err != nil {
		return err
	}
	platform, err := download.CurrentPlatform()
	if err != nil {
		return err
	}
	bin, err := d.Download(ctx, node.Version, platform)
	if err != nil {
		return err
	}
	fmt.Println(bin)
	return nil
}

type versionOutput struct {
	Version        string `yaml:"version"`
	Release        string `yaml:"release"`
	ServerVersions []int  `yaml:"server_versions"`
}

func runVersion() error {
	return printYAML(versionOutput{
		Version:        node.Version.String(),
		Release:        node.Version.Release(),
		ServerVersions: node.Version.ExpectedServerVersions(),
	})
}

func printYAML(v any) error {
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
