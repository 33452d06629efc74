// SPDX-License-Identifier: MIT

// Command socialnet reads social network commands, one per line, from stdin
// or a file and prints each result to stdout. Logs go to stderr.
//
// Usage:
//
//	socialnet [-config socialnet.yaml] [-input commands.txt] [-log-level debug]
//	          [-clock counter|monotonic] [-metrics-addr :9090]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/socialnet/command"
	"github.com/katalvlaran/socialnet/config"
	"github.com/katalvlaran/socialnet/metrics"
	"github.com/katalvlaran/socialnet/socialnet"
)

const shutdownTimeout = 5 * time.Second

type flags struct {
	configPath  string
	input       string
	logLevel    string
	clock       string
	metricsAddr string
}

func parseFlags(args []string) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("socialnet", flag.ContinueOnError)
	fs.StringVar(&f.configPath, "config", "", "path to a YAML config file")
	fs.StringVar(&f.input, "input", "", "command file, '-' for stdin (overrides config)")
	fs.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	fs.StringVar(&f.clock, "clock", "", "post key source: counter or monotonic (overrides config)")
	fs.StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (overrides config)")
	err := fs.Parse(args)

	return f, err
}

// apply copies the flags that were set over cfg.
func (f flags) apply(cfg *config.Config) {
	if f.input != "" {
		cfg.Input.Path = f.input
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.clock != "" {
		cfg.Clock.Mode = f.clock
	}
	if f.metricsAddr != "" {
		cfg.Metrics.Addr = f.metricsAddr
	}
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "socialnet:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}

	loader := config.NewLoader()
	cfg, err := loader.Load(f.configPath)
	if err != nil {
		return err
	}
	f.apply(cfg)
	if err := loader.Validate(cfg); err != nil {
		return err
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	var clock socialnet.Clock = socialnet.NewCounterClock()
	if cfg.Clock.Mode == config.ClockMonotonic {
		clock = socialnet.NewMonotonicClock()
	}
	network := socialnet.New(socialnet.WithLogger(logger.Named("network")), socialnet.WithClock(clock))
	rec := metrics.NewRecorder(cfg.Metrics.Namespace)

	in := stdin
	if cfg.Input.Path != config.StdinPath {
		file, err := os.Open(cfg.Input.Path)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer file.Close()
		in = file
	}

	// bind before reading any command so a taken port fails the run at once
	var ln net.Listener
	if cfg.Metrics.Addr != "" {
		ln, err = net.Listen("tcp", cfg.Metrics.Addr)
		if err != nil {
			return fmt.Errorf("metrics listen: %w", err)
		}
	}

	logger.Info("simulator started",
		zap.String("input", cfg.Input.Path),
		zap.String("clock", cfg.Clock.Mode),
		zap.String("metrics_addr", cfg.Metrics.Addr))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	if ln != nil {
		srv := newMetricsServer(rec)
		g.Go(func() error {
			logger.Info("metrics server listening", zap.String("addr", ln.Addr().String()))
			if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			sctx, scancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer scancel()
			return srv.Shutdown(sctx)
		})
	}

	g.Go(func() error {
		// the loop ending stops the metrics server
		defer cancel()
		ex := command.NewExecutor(network, stdout,
			command.WithLogger(logger.Named("command")),
			command.WithRecorder(rec))
		return ex.Run(in)
	})

	if err := g.Wait(); err != nil {
		logger.Error("simulator stopped", zap.Error(err))
		return err
	}

	st := network.Stats()
	logger.Info("simulator finished",
		zap.Int("users", st.Users),
		zap.Int("friendships", st.Friendships),
		zap.Int("posts", st.Posts))

	return nil
}

func newMetricsServer(rec *metrics.Recorder) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", rec.Handler())

	return &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
}
