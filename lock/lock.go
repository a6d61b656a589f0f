// Package lock provides the cross-process writer lock that serialises
// every mutating nas command against the same runtime directory.
//
// The lock is a flock(2) on a file. Holding it is represented by a
// WriterScope, a capability only Run can hand out. The manager's
// mutating methods take a WriterScope and refuse a nil one, and the
// in-process client and the daemon pass down the scope Run gave them.
package lock

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sys/unix"
)

const (
	initialRetry = 25 * time.Millisecond
	maxRetry     = 500 * time.Millisecond
)

// WriterScope is proof that the caller runs inside Run and holds the
// writer lock. It cannot be implemented outside this package.
type WriterScope interface {
	// Path returns the lock file.
	Path() string
	// FD returns the lock file descriptor, for diagnostics.
	FD() int

	writerScopeMarker()
}

type writerScope struct {
	f *os.File
}

func (*writerScope) writerScopeMarker() {}

func (s *writerScope) Path() string { return s.f.Name() }

func (s *writerScope) FD() int { return int(s.f.Fd()) }

// Run takes the writer lock at path, calls fn and releases the lock.
// While another process holds the lock Run retries with exponential
// backoff until ctx ends.
func Run(ctx context.Context, path string, fn func(context.Context, WriterScope) error) error {
	f, err := acquire(ctx, path)
	if err != nil {
		return err
	}
	defer f.Close()

	return fn(ctx, &writerScope{f: f})
}

func acquire(ctx context.Context, path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = initialRetry
	b.MaxInterval = maxRetry
	b.MaxElapsedTime = 0

	err = backoff.Retry(func() error {
		err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB)
		if errors.Is(err, unix.EWOULDBLOCK) {
			return err
		}
		if err != nil {
			return backoff.Permanent(fmt.Errorf("flock %s: %w", path, err))
		}
		return nil
	}, backoff.WithContext(b, ctx))
	if err != nil {
		f.Close()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("waiting for writer lock %s: %w", path, ctxErr)
		}
		return nil, err
	}
	return f, nil
}
