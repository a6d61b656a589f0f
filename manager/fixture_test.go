package manager_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/frobware/go-nas"
	"github.com/frobware/go-nas/commit"
	"github.com/frobware/go-nas/config"
	"github.com/frobware/go-nas/lock"
	"github.com/frobware/go-nas/manager"
	"github.com/frobware/go-nas/ndi/sim"
	"github.com/frobware/go-nas/rollback"
	"github.com/frobware/go-nas/store"
	"github.com/frobware/go-nas/store/sqlite"
)

// testLogger discards output unless NAS_TEST_VERBOSE is set.
func testLogger() *slog.Logger {
	if os.Getenv("NAS_TEST_VERBOSE") != "" {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var errPersist = errors.New("disk on fire")

// flakyStore fails writes on demand.
type flakyStore struct {
	store.Store
	mu         *sync.Mutex
	failSave   *bool
	failDelete *bool
}

func newFlakyStore(inner store.Store) *flakyStore {
	return &flakyStore{Store: inner, mu: &sync.Mutex{}, failSave: new(bool), failDelete: new(bool)}
}

func (s *flakyStore) setFailures(save, del bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	*s.failSave, *s.failDelete = save, del
}

func (s *flakyStore) SaveVLAN(ctx context.Context, rec store.VLANRecord) error {
	s.mu.Lock()
	fail := *s.failSave
	s.mu.Unlock()
	if fail {
		return errPersist
	}
	return s.Store.SaveVLAN(ctx, rec)
}

func (s *flakyStore) DeleteVLAN(ctx context.Context, id nas.ObjID) error {
	s.mu.Lock()
	fail := *s.failDelete
	s.mu.Unlock()
	if fail {
		return errPersist
	}
	return s.Store.DeleteVLAN(ctx, id)
}

func (s *flakyStore) RunInTransaction(ctx context.Context, fn func(store.Store) error) error {
	return s.Store.RunInTransaction(ctx, func(tx store.Store) error {
		return fn(&flakyStore{Store: tx, mu: s.mu, failSave: s.failSave, failDelete: s.failDelete})
	})
}

// counter records object gauges and commit results.
type counter struct {
	mu       sync.Mutex
	objects  map[string]int
	commits  map[commit.Op]int
	failures int
}

func (c *counter) CommitDone(op commit.Op, _ time.Duration, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.commits == nil {
		c.commits = make(map[commit.Op]int)
	}
	c.commits[op]++
	if err != nil {
		c.failures++
	}
}

func (c *counter) RollbackStep(rollback.Kind, error) {}

func (c *counter) SetObjects(objType string, n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.objects == nil {
		c.objects = make(map[string]int)
	}
	c.objects[objType] = n
}

func testTopology() config.Topology {
	return config.Topology{
		{ID: 0, NPUs: []nas.NpuID{0, 1}},
		{ID: 1, NPUs: []nas.NpuID{2}},
	}
}

type testFixture struct {
	Manager  *manager.Manager
	Driver   *sim.Driver
	Store    *flakyStore
	Observer *counter
	// Scope is a writer lock held for the whole test.
	Scope lock.WriterScope
	t     *testing.T
}

func newTestFixture(t *testing.T, opts ...manager.Option) *testFixture {
	t.Helper()
	st, err := sqlite.NewInMemory(context.Background(), testLogger())
	require.NoError(t, err, "failed to create store")
	t.Cleanup(func() { st.Close() })
	return newFixtureWithStore(t, newFlakyStore(st), opts...)
}

// newFixtureWithStore builds a manager with fresh hardware on st and
// restores it, as a process restart would.
func newFixtureWithStore(t *testing.T, st *flakyStore, opts ...manager.Option) *testFixture {
	t.Helper()
	driver := sim.New()
	obs := &counter{}
	opts = append([]manager.Option{manager.WithObserver(obs), manager.WithMaxIDs(64)}, opts...)
	mgr, err := manager.New(testTopology(), st, driver, testLogger(), opts...)
	require.NoError(t, err)
	scope := holdWriterLock(t)
	require.NoError(t, mgr.Restore(context.Background(), scope))
	return &testFixture{Manager: mgr, Driver: driver, Store: st, Observer: obs, Scope: scope, t: t}
}

// holdWriterLock takes a writer lock in a temp dir and holds it until
// the test ends.
func holdWriterLock(t *testing.T) lock.WriterScope {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".lock")
	scopes := make(chan lock.WriterScope)
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- lock.Run(context.Background(), path, func(_ context.Context, scope lock.WriterScope) error {
			scopes <- scope
			<-release
			return nil
		})
	}()
	select {
	case scope := <-scopes:
		t.Cleanup(func() {
			close(release)
			require.NoError(t, <-done)
		})
		return scope
	case err := <-done:
		t.Fatalf("failed to take writer lock: %v", err)
		return nil
	}
}

func (f *testFixture) storedVLANs() []store.VLANRecord {
	f.t.Helper()
	recs, err := f.Store.ListVLANs(context.Background())
	require.NoError(f.t, err)
	return recs
}
