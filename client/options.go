package client

import (
	"log/slog"

	"github.com/frobware/go-nas/commit"
	"github.com/frobware/go-nas/config"
	"github.com/frobware/go-nas/logging"
	"github.com/frobware/go-nas/ndi"
)

// DefaultSocketPath returns the daemon socket for the default
// configuration.
func DefaultSocketPath() string {
	cfg := config.DefaultConfig()
	dirs, err := cfg.RuntimeDirs()
	if err != nil {
		panic(err)
	}
	return cfg.SocketPath(dirs)
}

// Option configures client behaviour.
type Option interface {
	applyDial(*dialOptions)
	applyOpen(*openOptions)
}

type dialOptions struct {
	logger *slog.Logger
}

type openOptions struct {
	logger   *slog.Logger
	config   config.Config
	driver   ndi.Driver
	observer commit.Observer
}

type funcOption struct {
	dial func(*dialOptions)
	open func(*openOptions)
}

func (f *funcOption) applyDial(o *dialOptions) {
	if f.dial != nil {
		f.dial(o)
	}
}

func (f *funcOption) applyOpen(o *openOptions) {
	if f.open != nil {
		f.open(o)
	}
}

// WithLogger sets the logger. If not specified, output is discarded.
func WithLogger(l *slog.Logger) Option {
	return &funcOption{
		dial: func(o *dialOptions) { o.logger = l },
		open: func(o *openOptions) { o.logger = l },
	}
}

// WithConfig sets the configuration for Open. It has no effect on
// Dial.
func WithConfig(cfg config.Config) Option {
	return &funcOption{
		open: func(o *openOptions) { o.config = cfg },
	}
}

// WithDriver replaces the simulated driver Open uses by default.
func WithDriver(d ndi.Driver) Option {
	return &funcOption{
		open: func(o *openOptions) { o.driver = d },
	}
}

// WithObserver reports commit outcomes of an Open client to obs.
func WithObserver(obs commit.Observer) Option {
	return &funcOption{
		open: func(o *openOptions) { o.observer = obs },
	}
}

// Dial connects to a nas daemon at address, which is one of:
//   - "host:port" for TCP
//   - "unix:///path/to/socket"
//   - "/path/to/socket"
//
// The returned client must be closed when no longer needed.
func Dial(address string, opts ...Option) (Client, error) {
	o := &dialOptions{logger: logging.Discard()}
	for _, opt := range opts {
		opt.applyDial(o)
	}
	return newRemote(address, o.logger)
}
