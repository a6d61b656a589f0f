// Package netns runs code inside a network namespace. The Linux
// bridge driver uses it to give every NPU its own namespace.
package netns

import (
	"fmt"
	"os"
	"runtime"
	"syscall"

	"golang.org/x/sys/unix"
)

const self = "/proc/self/ns/net"

// Inode returns the inode that identifies the namespace at path, or
// the caller's namespace when path is empty.
func Inode(path string) (uint64, error) {
	if path == "" {
		path = self
	}
	var stat syscall.Stat_t
	if err := syscall.Stat(path, &stat); err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	return stat.Ino, nil
}

// Run calls fn with the calling goroutine's thread switched into the
// namespace at path. An empty path runs fn in place. The original
// namespace is restored before Run returns, even if fn panics.
func Run(path string, fn func() error) error {
	if path == "" {
		return fn()
	}

	runtime.LockOSThread()
	original, err := os.Open(self)
	if err != nil {
		runtime.UnlockOSThread()
		return fmt.Errorf("open current netns: %w", err)
	}
	defer original.Close()

	target, err := os.Open(path)
	if err != nil {
		runtime.UnlockOSThread()
		return fmt.Errorf("open netns %s: %w", path, err)
	}
	defer target.Close()

	if err := unix.Setns(int(target.Fd()), unix.CLONE_NEWNET); err != nil {
		runtime.UnlockOSThread()
		return fmt.Errorf("setns %s: %w", path, err)
	}
	defer func() {
		// A thread stuck in the wrong namespace stays locked, so the
		// runtime discards it when the goroutine exits.
		if unix.Setns(int(original.Fd()), unix.CLONE_NEWNET) == nil {
			runtime.UnlockOSThread()
		}
	}()

	return fn()
}
