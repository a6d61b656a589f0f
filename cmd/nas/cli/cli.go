// Package cli provides the Kong-based command-line interface for nas.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"time"

	"github.com/alecthomas/kong"

	"github.com/frobware/go-nas/client"
	"github.com/frobware/go-nas/config"
	"github.com/frobware/go-nas/lock"
	"github.com/frobware/go-nas/logging"
	"github.com/frobware/go-nas/ndi"
	"github.com/frobware/go-nas/ndi/linuxbr"
	"github.com/frobware/go-nas/ndi/sim"
)

// CLI is the root command structure for nas.
type CLI struct {
	Config      string        `name:"config" help:"Config file path (default $NAS_CONFIG or ${default_config_path})."`
	RuntimeDir  string        `name:"runtime-dir" help:"Override runtime.dir from the config."`
	DB          string        `name:"db" help:"Override the SQLite database path."`
	Log         string        `name:"log" help:"Log spec (e.g. 'info,commit=debug'). Overrides $NAS_LOG."`
	Remote      string        `name:"remote" short:"r" help:"Daemon endpoint (unix:///path, /path or host:port). Talks gRPC instead of running in-process."`
	Faults      []sim.Fault   `name:"fault" help:"Inject a simulated driver failure, OP:NPU[:always] (can be repeated)."`
	LockTimeout time.Duration `name:"lock-timeout" help:"How long a mutation waits for the writer lock." default:"30s"`

	Serve  ServeCmd  `cmd:"" help:"Start the gRPC daemon."`
	Switch SwitchCmd `cmd:"" help:"Inspect switches."`
	VLAN   VLANCmd   `cmd:"" name:"vlan" help:"Create, modify, delete and list VLANs."`
	Intf   IntfCmd   `cmd:"" name:"interface" help:"Inspect the interface registry."`

	// Out receives command output. Nil means os.Stdout.
	Out io.Writer `kong:"-"`
}

// KongOptions returns the Kong configuration options for the CLI.
func KongOptions() []kong.Option {
	return []kong.Option{
		kong.Name("nas"),
		kong.Description("Transactional VLAN programming across switch NPUs."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.TypeMapper(reflect.TypeOf(sim.Fault{}), faultMapper()),
		kong.Vars{
			"default_config_path": config.DefaultConfigPath,
		},
	}
}

// Execute parses args and runs the selected command.
func Execute(ctx context.Context, args []string, out io.Writer) error {
	c := CLI{Out: out}
	parser, err := kong.New(&c, KongOptions()...)
	if err != nil {
		return fmt.Errorf("create parser: %w", err)
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	kctx.BindTo(ctx, (*context.Context)(nil))
	return kctx.Run(&c)
}

// LoadConfig loads the config file and applies the flag overrides.
func (c *CLI) LoadConfig() (config.Config, error) {
	cfg, err := config.Load(config.Path(c.Config))
	if err != nil {
		return cfg, err
	}
	if c.RuntimeDir != "" {
		cfg.Runtime.Dir = c.RuntimeDir
	}
	if c.DB != "" {
		cfg.Store.Path = c.DB
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *CLI) newLogger(cfg config.Config, spec string, out io.Writer) (*slog.Logger, io.Closer, error) {
	format, err := logging.ParseFormat(cfg.Logging.Format)
	if err != nil {
		return nil, nil, err
	}
	return logging.New(logging.Options{
		CLISpec:    spec,
		EnvSpec:    os.Getenv(logging.EnvVar),
		ConfigSpec: cfg.Logging.ToSpec(),
		Format:     format,
		Output:     out,
		File:       cfg.Logging.FileOptions(),
	})
}

// Logger creates a logger for one-shot commands. They default to
// warn unless --log or $NAS_LOG says otherwise, and never write to
// the daemon's log file.
func (c *CLI) Logger(cfg config.Config) (*slog.Logger, io.Closer, error) {
	spec := c.Log
	if spec == "" && os.Getenv(logging.EnvVar) == "" {
		spec = "warn"
	}
	cfg.Logging.File = config.LogFileConfig{}
	return c.newLogger(cfg, spec, os.Stderr)
}

// LoggerFromConfig creates a logger for the daemon, honouring the
// configured level and log file.
func (c *CLI) LoggerFromConfig(cfg config.Config) (*slog.Logger, io.Closer, error) {
	return c.newLogger(cfg, c.Log, os.Stdout)
}

// newDriver builds the configured driver. --fault only applies to the
// simulated one.
func (c *CLI) newDriver(cfg config.Config, logger *slog.Logger) (ndi.Driver, error) {
	switch cfg.Driver.Kind {
	case config.DriverLinuxBridge:
		if len(c.Faults) > 0 {
			return nil, fmt.Errorf("--fault needs driver kind %q", config.DriverSim)
		}
		lb := cfg.Driver.LinuxBridge
		return linuxbr.New(linuxbr.Targets(cfg.Switches.NPUs(), lb.BridgePrefix, lb.NetnsDir), logger)
	default:
		d := sim.New(sim.WithLogger(logger))
		for _, f := range c.Faults {
			d.Inject(f)
		}
		return d, nil
	}
}

// session is a client together with the logger backing it.
type session struct {
	client.Client
	logger *slog.Logger
	closer io.Closer
}

func (s *session) Close() error {
	err := s.Client.Close()
	s.closer.Close()
	return err
}

// open connects to the daemon, or builds an in-process client that
// mutates under scope.
func (c *CLI) open(ctx context.Context, cfg config.Config, scope lock.WriterScope) (*session, error) {
	logger, closer, err := c.Logger(cfg)
	if err != nil {
		return nil, err
	}

	var cl client.Client
	if c.Remote != "" {
		if len(c.Faults) > 0 {
			closer.Close()
			return nil, fmt.Errorf("--fault only applies to the in-process driver")
		}
		cl, err = client.Dial(c.Remote, client.WithLogger(logger))
	} else {
		var driver ndi.Driver
		if driver, err = c.newDriver(cfg, logger); err == nil {
			cl, err = client.Open(ctx, scope,
				client.WithConfig(cfg),
				client.WithLogger(logger),
				client.WithDriver(driver),
			)
		}
	}
	if err != nil {
		closer.Close()
		return nil, fmt.Errorf("create client: %w", err)
	}
	return &session{Client: cl, logger: logger, closer: closer}, nil
}

// RunWithLock opens a client and runs fn with it. In-process clients
// replay the store on open, which writes, so every local command runs
// under the writer lock of the runtime tree; a running daemon holds
// that lock and local commands then time out. Remote calls are
// serialised by the daemon and skip the lock.
func (c *CLI) RunWithLock(ctx context.Context, fn func(context.Context, client.Client) error) error {
	cfg, err := c.LoadConfig()
	if err != nil {
		return err
	}
	run := func(ctx context.Context, scope lock.WriterScope) error {
		s, err := c.open(ctx, cfg, scope)
		if err != nil {
			return err
		}
		defer s.Close()
		return fn(ctx, s)
	}
	if c.Remote != "" {
		return run(ctx, nil)
	}

	dirs, err := cfg.RuntimeDirs()
	if err != nil {
		return err
	}
	if err := dirs.EnsureDirectories(); err != nil {
		return err
	}
	lockCtx, cancel := context.WithTimeout(ctx, c.LockTimeout)
	defer cancel()
	return lock.Run(lockCtx, dirs.Lock(), func(_ context.Context, scope lock.WriterScope) error {
		return run(ctx, scope)
	})
}

func (c *CLI) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// WriteOut writes b to the output, treating a short write as an
// error.
func (c *CLI) WriteOut(b []byte) error {
	n, err := c.out().Write(b)
	if err != nil {
		return err
	}
	if n != len(b) {
		return io.ErrShortWrite
	}
	return nil
}

// PrintOut writes s to the output.
func (c *CLI) PrintOut(s string) error {
	return c.WriteOut([]byte(s))
}

// PrintOutf formats and writes to the output.
func (c *CLI) PrintOutf(format string, args ...any) error {
	return c.PrintOut(fmt.Sprintf(format, args...))
}
