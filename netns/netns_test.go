package netns_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frobware/go-nas/netns"
)

func TestInode_EmptyPathIsCurrentNamespace(t *testing.T) {
	a, err := netns.Inode("")
	require.NoError(t, err)
	b, err := netns.Inode("/proc/self/ns/net")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestInode_MissingPath(t *testing.T) {
	_, err := netns.Inode(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestRun_EmptyPathRunsInPlace(t *testing.T) {
	errBoom := errors.New("boom")
	called := false
	err := netns.Run("", func() error {
		called = true
		return errBoom
	})
	assert.True(t, called)
	assert.ErrorIs(t, err, errBoom)
}

func TestRun_MissingNamespace(t *testing.T) {
	err := netns.Run(filepath.Join(t.TempDir(), "nope"), func() error {
		t.Fatal("fn must not run")
		return nil
	})
	assert.ErrorContains(t, err, "open netns")
}
