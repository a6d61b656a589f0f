// Package commit pushes configuration objects to the NPUs of a switch
// and undoes partial pushes when a step fails.
//
// Every forward step that succeeds is recorded in a rollback.Tracker.
// When a later step fails the tracker is replayed newest first with
// the compensating hook for each entry, and the original error is
// returned. Compensation failures are logged and counted but never
// returned.
package commit

import (
	"context"

	"github.com/frobware/go-nas"
	"github.com/frobware/go-nas/alloc"
	"github.com/frobware/go-nas/rollback"
)

// Object is what the orchestrator needs from a configuration object.
// The Push hooks report false when the object does not apply to an
// NPU; such NPUs are skipped and not tracked.
type Object interface {
	// Name identifies the object in logs.
	Name() string
	LogCategory() int
	LogCategoryName() string

	NpuList() nas.NpuSet
	DirtyAttrs() nas.AttrSet
	IsLeafAttr(attr nas.AttrID) bool

	// AllocHardwareRepresentation builds the payload passed to
	// PushCreate. Buffers it needs are owned by s. A nil payload is
	// valid.
	AllocHardwareRepresentation(s *alloc.Scope) (any, error)

	PushCreate(ctx context.Context, npu nas.NpuID, payload any) (bool, error)
	PushDelete(ctx context.Context, npu nas.NpuID) (bool, error)
	PushLeafAttr(ctx context.Context, attr nas.AttrID, npu nas.NpuID) (bool, error)

	// PushNonLeafAttr applies a structured attribute to npus,
	// appending created/deleted/modified attribute entries to t for
	// every step it applies. When rollingBack is true it must not
	// stop on errors and must not track.
	PushNonLeafAttr(ctx context.Context, attr nas.AttrID, old Object, npus nas.NpuSet, t *rollback.Tracker, rollingBack bool) error

	// RollbackModifiedAttr is called on the old object to restore a
	// nested attribute that newObj changed.
	RollbackModifiedAttr(ctx context.Context, path rollback.Path, npu nas.NpuID, newObj Object) error
	// RollbackCreatedAttr is called on the new object to remove a
	// sub-attribute it added.
	RollbackCreatedAttr(ctx context.Context, path rollback.Path, npu nas.NpuID) error
	// RollbackDeletedAttr is called on the old object to restore a
	// sub-attribute the new object removed.
	RollbackDeletedAttr(ctx context.Context, path rollback.Path, npu nas.NpuID) error
}
