package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// EnvVar names the environment variable holding a log spec.
const EnvVar = "NAS_LOG"

// Format is the log output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat accepts "text" (or empty) and "json".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("unknown log format: %q", s)
	}
}

// FileOptions configures rotated file output.
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Options configures New. Spec precedence is CLISpec, then EnvSpec,
// then ConfigSpec.
type Options struct {
	CLISpec    string
	EnvSpec    string
	ConfigSpec string
	Format     Format
	// Output defaults to os.Stderr. It is ignored when File.Path is set.
	Output io.Writer
	File   FileOptions
}

// New builds a logger with component filtering and transaction id
// propagation. The returned closer releases the log file, if any.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	specStr := opts.ConfigSpec
	switch {
	case opts.CLISpec != "":
		specStr = opts.CLISpec
	case opts.EnvSpec != "":
		specStr = opts.EnvSpec
	}

	spec, err := ParseSpec(specStr)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log spec: %w", err)
	}

	var closer io.Closer = nopCloser{}
	output := opts.Output
	if output == nil {
		output = os.Stderr
	}
	if opts.File.Path != "" {
		lj := &lumberjack.Logger{
			Filename:   opts.File.Path,
			MaxSize:    opts.File.MaxSizeMB,
			MaxBackups: opts.File.MaxBackups,
			MaxAge:     opts.File.MaxAgeDays,
			Compress:   opts.File.Compress,
		}
		output, closer = lj, lj
	}

	// The filtering handler decides; the inner handler accepts all.
	handlerOpts := &slog.HandlerOptions{
		Level: LevelTrace.ToSlog(),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if l, ok := a.Value.Any().(slog.Level); ok && l == LevelTrace.ToSlog() {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}

	var inner slog.Handler
	switch opts.Format {
	case FormatJSON:
		inner = slog.NewJSONHandler(output, handlerOpts)
	default:
		inner = slog.NewTextHandler(output, handlerOpts)
	}

	return WithTxnHandler(slog.New(NewFilteringHandler(inner, &spec))), closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
