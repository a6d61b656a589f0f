// Package config handles nas daemon configuration.
//
// Configuration is loaded with overlay semantics:
//
//  1. Start with built-in defaults (embedded from default.toml)
//  2. Overlay with config file values (if the file exists)
//  3. CLI flags and environment variables override at runtime
//     (handled by the CLI layer)
//
// The TOML decoder only sets fields present in the file, so
// unspecified fields keep their defaults. A config file that exists
// but does not parse is an error.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/frobware/go-nas"
	"github.com/frobware/go-nas/logging"
)

//go:embed default.toml
var defaultConfigTOML string

const (
	// DefaultConfigPath is where Load looks when no path is given.
	DefaultConfigPath = "/etc/nas/nas.toml"

	// EnvVar names the environment variable holding the config path.
	EnvVar = "NAS_CONFIG"
)

// Config is the top-level nas configuration.
type Config struct {
	Runtime    RuntimeConfig `toml:"runtime"`
	Logging    LoggingConfig `toml:"logging"`
	Store      StoreConfig   `toml:"store"`
	Objects    ObjectsConfig `toml:"objects"`
	Server     ServerConfig  `toml:"server"`
	Driver     DriverConfig  `toml:"driver"`
	Switches   Topology   `toml:"switch"`
	Interfaces Interfaces `toml:"interface"`
}

type RuntimeConfig struct {
	Dir string `toml:"dir"`
}

// LoggingConfig controls logging behaviour.
type LoggingConfig struct {
	// Level is the log spec (e.g. "info" or "info,commit=debug").
	Level string `toml:"level"`
	// Format is "text" or "json".
	Format string `toml:"format"`
	// Components adds per-component levels to Level.
	Components map[string]string `toml:"components"`
	File       LogFileConfig     `toml:"file"`
}

// LogFileConfig enables rotated file output.
type LogFileConfig struct {
	Path       string `toml:"path"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Compress   bool   `toml:"compress"`
}

// ToSpec merges Level and Components into one log spec.
func (c *LoggingConfig) ToSpec() string {
	return logging.WithComponents(c.Level, c.Components)
}

// FileOptions converts the file section for logging.New.
func (c *LoggingConfig) FileOptions() logging.FileOptions {
	return logging.FileOptions{
		Path:       c.File.Path,
		MaxSizeMB:  c.File.MaxSizeMB,
		MaxBackups: c.File.MaxBackups,
		MaxAgeDays: c.File.MaxAgeDays,
		Compress:   c.File.Compress,
	}
}

type StoreConfig struct {
	Path string `toml:"path"`
}

type ObjectsConfig struct {
	MaxIDs uint64 `toml:"max_ids"`
}

type ServerConfig struct {
	Socket         string `toml:"socket"`
	MetricsAddress string `toml:"metrics_address"`
}

// Driver kinds.
const (
	DriverSim         = "sim"
	DriverLinuxBridge = "linux-bridge"
)

// DriverConfig selects the NDI driver.
type DriverConfig struct {
	Kind        string            `toml:"kind"`
	LinuxBridge LinuxBridgeConfig `toml:"linux_bridge"`
}

// LinuxBridgeConfig places NPU n on bridge {BridgePrefix}{n}, inside
// network namespace {NetnsDir}/npu{n} when NetnsDir is set.
type LinuxBridgeConfig struct {
	BridgePrefix string `toml:"bridge_prefix"`
	NetnsDir     string `toml:"netns_dir"`
}

// DefaultConfig returns the embedded defaults with a single switch 0
// owning NPU 0.
func DefaultConfig() Config {
	var cfg Config
	if _, err := toml.Decode(defaultConfigTOML, &cfg); err != nil {
		panic(fmt.Sprintf("embedded default.toml: %v", err))
	}
	cfg.Switches = DefaultTopology()
	return cfg
}

// Path returns the config path to use: explicit if set, else
// $NAS_CONFIG, else DefaultConfigPath.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvVar); env != "" {
		return env
	}
	return DefaultConfigPath
}

// Load reads the file at path on top of the defaults. A missing file
// yields the defaults. A file that declares any [[switch]] replaces
// the default topology entirely.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	return decode(string(data), cfg)
}

func decode(data string, cfg Config) (Config, error) {
	cfg.Switches = nil
	if _, err := toml.Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	if len(cfg.Switches) == 0 {
		cfg.Switches = DefaultTopology()
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if _, err := logging.ParseSpec(c.Logging.ToSpec()); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if _, err := logging.ParseFormat(c.Logging.Format); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if c.Objects.MaxIDs == 0 || c.Objects.MaxIDs > nas.MaxIDLimit {
		return fmt.Errorf("objects: max_ids must be in [1, %d], got %d", uint64(nas.MaxIDLimit), c.Objects.MaxIDs)
	}
	switch c.Driver.Kind {
	case DriverSim:
	case DriverLinuxBridge:
		if c.Driver.LinuxBridge.BridgePrefix == "" {
			return fmt.Errorf("driver: linux_bridge.bridge_prefix must be set")
		}
	default:
		return fmt.Errorf("driver: unknown kind %q (want %q or %q)", c.Driver.Kind, DriverSim, DriverLinuxBridge)
	}
	if _, err := c.RuntimeDirs(); err != nil {
		return fmt.Errorf("runtime: %w", err)
	}
	if err := c.Switches.Validate(); err != nil {
		return fmt.Errorf("switch: %w", err)
	}
	if _, err := c.Interfaces.Registry(c.Switches); err != nil {
		return fmt.Errorf("interface: %w", err)
	}
	return nil
}

// RuntimeDirs returns the runtime tree rooted at Runtime.Dir.
func (c *Config) RuntimeDirs() (RuntimeDirs, error) {
	return NewRuntimeDirs(c.Runtime.Dir)
}

// StorePath returns the database path, defaulting into the runtime
// tree.
func (c *Config) StorePath(dirs RuntimeDirs) string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	return dirs.DBPath()
}

// SocketPath returns the gRPC socket path, defaulting into the
// runtime tree.
func (c *Config) SocketPath(dirs RuntimeDirs) string {
	if c.Server.Socket != "" {
		return c.Server.Socket
	}
	return dirs.SocketPath()
}
