package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"
	"golang.org/x/sync/errgroup"

	"github.com/dualwatch/dualwatch/internal/adapter/httpsrv"
	"github.com/dualwatch/dualwatch/internal/adapter/icmp"
	"github.com/dualwatch/dualwatch/internal/adapter/prometheus"
	"github.com/dualwatch/dualwatch/internal/adapter/resolve"
	"github.com/dualwatch/dualwatch/internal/common/logging"
	"github.com/dualwatch/dualwatch/internal/ports"
	"github.com/dualwatch/dualwatch/internal/usecase"
)

type Ping struct {
	Interval    time.Duration `name:"interval" env:"PING_INTERVAL" default:"15s" help:"Interval between ping attempts (e.g. 15s, 1m)."`
	Timeout     time.Duration `name:"timeout" env:"PING_TIMEOUT" default:"5s" help:"Maximum time to wait for a single echo reply."`
	Hysteresis  int           `name:"hysteresis" env:"PING_HYSTERESIS" default:"3" help:"Consecutive failed pings before an address family is declared down."`
	PayloadSize int           `name:"payload-size" env:"PING_PAYLOAD_SIZE" default:"256" help:"Echo request payload size in bytes."`
	Privileged  bool          `name:"privileged" env:"PING_PRIVILEGED" help:"Use raw ICMP sockets (requires elevated privileges)."`
	Resolver    string        `name:"resolver" env:"PING_RESOLVER" default:"1.1.1.1:53" help:"DNS server used to resolve the target's A and AAAA records."`
}

type Metrics struct {
	Addr string `name:"addr" env:"METRICS_ADDR" default:"" help:"HTTP address to serve Prometheus metrics. Disabled when empty."`
	Path string `name:"path" env:"METRICS_PATH" default:"/metrics" help:"Path to serve Prometheus metrics."`
}

type Log struct {
	Dir string `name:"dir" short:"o" env:"LOG_DIR" type:"existingdir" help:"Directory for rotated log files. Logs go to stderr only when unset."`
}

type CLI struct {
	Ping    Ping    `embed:"" prefix:"ping."`
	Metrics Metrics `embed:"" prefix:"metrics."`
	Log     Log     `embed:"" prefix:"log."`
	Verbose int     `short:"v" type:"counter" help:"Increase log verbosity (-v: debug, -vv: trace)."`
	Target  string  `arg:"" optional:"" default:"google.com" help:"Hostname or URL whose dual-stack reachability is watched."`
}

const (
	resolveTimeout   = 5 * time.Second
	probeConcurrency = 2
	signalBuffer     = 1
	shutdownTimeout  = 5 * time.Second
)

func run(cli *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger, closeLogs, err := logging.New(cli.Verbose, cli.Log.Dir)
	if err != nil {
		return err
	}

	defer func() { _ = closeLogs.Close() }()

	logger.InfoContext(ctx, "Logging started")

	resolver := resolve.New(logger, cli.Ping.Resolver, resolveTimeout)

	v4, v6, err := resolver.Resolve(ctx, cli.Target)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to resolve target", logging.Error(err))
		return err
	}

	logger.InfoContext(ctx, "Pinging "+v4.String()+" for IPv4", slog.String("target", cli.Target))
	logger.InfoContext(ctx, "Pinging "+v6.String()+" for IPv6", slog.String("target", cli.Target))

	client, err := icmp.New(logger, cli.Ping.Privileged, cli.Ping.PayloadSize, probeConcurrency)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create ICMP client", logging.Error(err))
		return err
	}

	exporter, err := prometheus.NewExporter()
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create prometheus exporter", logging.Error(err))
		return err
	}

	publisher := prometheus.NewReachabilityPublisher(logger, exporter)
	probe := icmp.NewProbe(client)
	clk := clock.New()

	v4Signals := make(chan bool, signalBuffer)
	v6Signals := make(chan bool, signalBuffer)

	v4Prober := usecase.NewProber(logger, probe, publisher, clk, usecase.ProberConfig{
		Family:    ports.FamilyV4,
		Target:    v4,
		Interval:  cli.Ping.Interval,
		Timeout:   cli.Ping.Timeout,
		Threshold: cli.Ping.Hysteresis,
	}, v4Signals)

	v6Prober := usecase.NewProber(logger, probe, publisher, clk, usecase.ProberConfig{
		Family:    ports.FamilyV6,
		Target:    v6,
		Interval:  cli.Ping.Interval,
		Timeout:   cli.Ping.Timeout,
		Threshold: cli.Ping.Hysteresis,
	}, v6Signals)

	aggregator := usecase.NewAggregator(logger, publisher, clk, v4Signals, v6Signals)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return v4Prober.Run(gctx) })
	g.Go(func() error { return v6Prober.Run(gctx) })
	g.Go(func() error { return aggregator.Run(gctx) })

	if cli.Metrics.Addr != "" {
		srv := httpsrv.NewServer(cli.Metrics.Addr, cli.Metrics.Path, exporter.Handler())

		g.Go(func() error {
			logger.InfoContext(gctx, "Serving metrics", slog.String("address", srv.ListenAddr()))
			return srv.Start()
		})

		g.Go(func() error {
			<-gctx.Done()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			return srv.Shutdown(shutdownCtx)
		})
	}

	err = g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.ErrorContext(ctx, "Pipeline failed", logging.Error(err))
		return err
	}

	logger.InfoContext(ctx, "Logging stopped")

	return nil
}

func (c *CLI) Validate() error {
	var errs []error

	p := &c.Ping

	if p.Interval < time.Second {
		errs = append(errs, fmt.Errorf("--ping.interval: must be at least one second"))
	}

	if p.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("--ping.timeout: must be greater than zero"))
	}

	if p.Timeout > 0 && p.Interval <= p.Timeout {
		errs = append(errs, fmt.Errorf("--ping.interval: must be greater than --ping.timeout"))
	}

	if p.Hysteresis < 1 {
		errs = append(errs, fmt.Errorf("--ping.hysteresis: must be at least one"))
	}

	if p.PayloadSize < 1 || p.PayloadSize > 1024 {
		errs = append(errs, fmt.Errorf("--ping.payload-size: must be between 1 and 1024"))
	}

	if !isHostPort(p.Resolver) {
		errs = append(errs, fmt.Errorf("--ping.resolver: must be a host:port address (e.g. 1.1.1.1:53)"))
	}

	if c.Metrics.Addr != "" && !isTCPAddr(c.Metrics.Addr) {
		errs = append(errs, fmt.Errorf("--metrics.addr: must be a valid tcp listening address (e.g. 0.0.0.0:8080)"))
	}

	if c.Target == "" {
		errs = append(errs, errors.New("target must not be empty"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
