package cli

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/frobware/go-nas/lock"
	"github.com/frobware/go-nas/manager"
	"github.com/frobware/go-nas/metrics"
	"github.com/frobware/go-nas/server"
	"github.com/frobware/go-nas/store/sqlite"
)

// ServeCmd starts the gRPC daemon.
type ServeCmd struct {
	Socket         string `name:"socket" help:"Override server.socket from the config."`
	MetricsAddress string `name:"metrics-address" help:"Override server.metrics_address."`
}

// Run holds the writer lock for the daemon's lifetime, replays the
// store onto the driver and serves until SIGINT or SIGTERM.
func (c *ServeCmd) Run(cli *CLI, ctx context.Context) error {
	cfg, err := cli.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger, closer, err := cli.LoggerFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer closer.Close()

	dirs, err := cfg.RuntimeDirs()
	if err != nil {
		return err
	}
	if err := dirs.EnsureDirectories(); err != nil {
		return err
	}

	return lock.Run(ctx, dirs.Lock(), func(ctx context.Context, scope lock.WriterScope) error {
		logger.InfoContext(ctx, "writer lock held", "path", scope.Path())

		st, err := sqlite.New(ctx, cfg.StorePath(dirs), logger)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer st.Close()

		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		driver, err := cli.newDriver(cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to create driver: %w", err)
		}
		logger.InfoContext(ctx, "driver ready", "kind", cfg.Driver.Kind)

		ifaces, err := cfg.Interfaces.Registry(cfg.Switches)
		if err != nil {
			return err
		}
		mgr, err := manager.New(cfg.Switches, st, driver, logger,
			manager.WithMaxIDs(cfg.Objects.MaxIDs),
			manager.WithObserver(metrics.New(reg)),
			manager.WithInterfaces(ifaces),
		)
		if err != nil {
			return err
		}
		if err := mgr.Restore(ctx, scope); err != nil {
			logger.WarnContext(ctx, "some stored vlans were not restored", "error", err)
		}

		runCfg := server.RunConfig{
			SocketPath:     cfg.SocketPath(dirs),
			MetricsAddress: cfg.Server.MetricsAddress,
			Gatherer:       reg,
		}
		if c.Socket != "" {
			runCfg.SocketPath = c.Socket
		}
		if c.MetricsAddress != "" {
			runCfg.MetricsAddress = c.MetricsAddress
		}
		return server.New(mgr, scope, logger).Run(ctx, runCfg)
	})
}
