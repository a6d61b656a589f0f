package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// RuntimeDirs holds the runtime directory layout:
//
//	{base}/         - runtime root
//	{base}/db/      - database directory
//	{base}/.lock    - global writer lock file
//	{base}-sock/    - gRPC socket directory
//
// The socket directory sits beside the root so it can be mounted
// separately. RuntimeDirs is immutable; use NewRuntimeDirs.
type RuntimeDirs struct {
	base string
	db   string
	sock string
	lock string
}

// NewRuntimeDirs returns the layout rooted at base, which must be an
// absolute path.
func NewRuntimeDirs(base string) (RuntimeDirs, error) {
	if base == "" {
		return RuntimeDirs{}, fmt.Errorf("base path cannot be empty")
	}
	if !filepath.IsAbs(base) {
		return RuntimeDirs{}, fmt.Errorf("base path must be absolute, got %q", base)
	}
	base = filepath.Clean(base)
	return RuntimeDirs{
		base: base,
		db:   filepath.Join(base, "db"),
		sock: base + "-sock",
		lock: filepath.Join(base, ".lock"),
	}, nil
}

func (d RuntimeDirs) Base() string { return d.base }

func (d RuntimeDirs) DB() string { return d.db }

func (d RuntimeDirs) Sock() string { return d.sock }

// Lock returns the global writer lock file path.
func (d RuntimeDirs) Lock() string { return d.lock }

// DBPath returns the SQLite database file.
func (d RuntimeDirs) DBPath() string {
	return filepath.Join(d.db, "store.db")
}

// SocketPath returns the gRPC socket.
func (d RuntimeDirs) SocketPath() string {
	return filepath.Join(d.sock, "nas.sock")
}

// EnsureDirectories creates the root, database and socket
// directories. Call it at startup to fail fast on permission
// problems.
func (d RuntimeDirs) EnsureDirectories() error {
	for _, dir := range []string{d.base, d.db, d.sock} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
