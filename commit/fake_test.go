package commit_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/frobware/go-nas"
	"github.com/frobware/go-nas/alloc"
	"github.com/frobware/go-nas/commit"
	"github.com/frobware/go-nas/logging"
	"github.com/frobware/go-nas/rollback"
)

// testLogger returns a logger that discards output unless
// NAS_TEST_VERBOSE is set.
func testLogger() *slog.Logger {
	if os.Getenv("NAS_TEST_VERBOSE") != "" {
		logger, _, _ := logging.New(logging.Options{CLISpec: "trace"})
		return logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var errInjected = errors.New("injected ndi failure")

// call is one hook invocation observed by the recorder.
type call struct {
	Obj  string
	Hook string
	NPU  nas.NpuID
	Path string
}

func (c call) String() string {
	if c.Path == "" {
		return fmt.Sprintf("%s.%s(%d)", c.Obj, c.Hook, c.NPU)
	}
	return fmt.Sprintf("%s.%s(%d,%s)", c.Obj, c.Hook, c.NPU, c.Path)
}

type recorder struct {
	calls []string
}

func (r *recorder) add(c call) {
	r.calls = append(r.calls, c.String())
}

// fakeObject implements commit.Object by recording every hook call.
// Failures are keyed by hook name and NPU.
type fakeObject struct {
	name    string
	npus    nas.NpuSet
	dirty   nas.AttrSet
	nonLeaf map[nas.AttrID]bool
	skip    nas.NpuSet
	fail    map[string]nas.NpuSet
	rec     *recorder

	payloads int
	// subAttr is the nested element PushNonLeafAttr reports touching.
	subAttr nas.AttrID
	// nonLeafKind selects the entry kind PushNonLeafAttr records.
	nonLeafKind rollback.Kind
}

func newFake(rec *recorder, name string, npus ...nas.NpuID) *fakeObject {
	return &fakeObject{
		name:        name,
		npus:        nas.NewNpuSet(npus...),
		nonLeaf:     map[nas.AttrID]bool{},
		fail:        map[string]nas.NpuSet{},
		rec:         rec,
		subAttr:     100,
		nonLeafKind: rollback.CreatedAttr,
	}
}

func (f *fakeObject) failOn(hook string, npus ...nas.NpuID) *fakeObject {
	f.fail[hook] = nas.NewNpuSet(npus...)
	return f
}

func (f *fakeObject) hook(hook string, npu nas.NpuID, path rollback.Path) error {
	p := ""
	if path != nil {
		p = path.String()
	}
	f.rec.add(call{Obj: f.name, Hook: hook, NPU: npu, Path: p})
	if s, ok := f.fail[hook]; ok && s.Contains(npu) {
		return errInjected
	}
	return nil
}

func (f *fakeObject) Name() string            { return f.name }
func (f *fakeObject) LogCategory() int        { return 1 }
func (f *fakeObject) LogCategoryName() string { return "fake" }
func (f *fakeObject) NpuList() nas.NpuSet     { return f.npus }
func (f *fakeObject) DirtyAttrs() nas.AttrSet { return f.dirty }

func (f *fakeObject) IsLeafAttr(attr nas.AttrID) bool {
	return !f.nonLeaf[attr]
}

func (f *fakeObject) AllocHardwareRepresentation(s *alloc.Scope) (any, error) {
	f.payloads++
	p := alloc.New[string](s)
	*p = f.name
	return p, nil
}

func (f *fakeObject) PushCreate(_ context.Context, npu nas.NpuID, payload any) (bool, error) {
	if p, ok := payload.(*string); !ok || *p != f.name {
		return false, fmt.Errorf("payload %v not built from %s", payload, f.name)
	}
	if f.skip.Contains(npu) {
		return false, nil
	}
	return true, f.hook("create", npu, nil)
}

func (f *fakeObject) PushDelete(_ context.Context, npu nas.NpuID) (bool, error) {
	if f.skip.Contains(npu) {
		return false, nil
	}
	return true, f.hook("delete", npu, nil)
}

func (f *fakeObject) PushLeafAttr(_ context.Context, attr nas.AttrID, npu nas.NpuID) (bool, error) {
	return true, f.hook("leaf", npu, rollback.Path{attr})
}

func (f *fakeObject) PushNonLeafAttr(_ context.Context, attr nas.AttrID, _ commit.Object, npus nas.NpuSet, t *rollback.Tracker, rollingBack bool) error {
	for npu := range npus.All() {
		path := rollback.Path{attr, f.subAttr}
		if err := f.hook("nonleaf", npu, path); err != nil {
			if rollingBack {
				continue
			}
			return err
		}
		if !rollingBack {
			t.Append(f.nonLeafKind, npu, path...)
		}
	}
	return nil
}

func (f *fakeObject) RollbackModifiedAttr(_ context.Context, path rollback.Path, npu nas.NpuID, newObj commit.Object) error {
	return f.hook("rollback-modified-from-"+newObj.Name(), npu, path)
}

func (f *fakeObject) RollbackCreatedAttr(_ context.Context, path rollback.Path, npu nas.NpuID) error {
	return f.hook("rollback-created", npu, path)
}

func (f *fakeObject) RollbackDeletedAttr(_ context.Context, path rollback.Path, npu nas.NpuID) error {
	return f.hook("rollback-deleted", npu, path)
}

// observer records what the orchestrator reports.
type observer struct {
	mu       sync.Mutex
	commits  []string
	steps    int
	failures int
}

func (o *observer) CommitDone(op commit.Op, _ time.Duration, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	result := "ok"
	if err != nil {
		result = "error"
	}
	o.commits = append(o.commits, string(op)+":"+result)
}

func (o *observer) RollbackStep(_ rollback.Kind, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.steps++
	if err != nil {
		o.failures++
	}
}
