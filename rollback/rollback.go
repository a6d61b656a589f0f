// Package rollback contains the undo log of a commit: reified
// descriptions of hardware effects that have been applied and would
// need compensating if the commit fails. Entries are pure data; the
// commit package decides how to undo each kind.
package rollback

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/frobware/go-nas"
)

// Kind identifies what a forward step did.
type Kind int

const (
	// CreatedObject records an object created on an NPU.
	CreatedObject Kind = iota + 1
	// DeletedObject records an object deleted from an NPU.
	DeletedObject
	// ModifiedAttr records an attribute value changed on an NPU.
	ModifiedAttr
	// CreatedAttr records a sub-attribute (e.g. a list member) added.
	CreatedAttr
	// DeletedAttr records a sub-attribute removed.
	DeletedAttr
)

func (k Kind) String() string {
	switch k {
	case CreatedObject:
		return "created-object"
	case DeletedObject:
		return "deleted-object"
	case ModifiedAttr:
		return "modified-attr"
	case CreatedAttr:
		return "created-attr"
	case DeletedAttr:
		return "deleted-attr"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Path locates an attribute. A single element names a leaf attribute;
// longer paths name a nested element of a non-leaf attribute.
type Path []nas.AttrID

// Leaf reports whether p names a top level leaf attribute.
func (p Path) Leaf() bool {
	return len(p) == 1
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, id := range p {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Entry is one applied forward step.
type Entry struct {
	Kind Kind
	NPU  nas.NpuID
	Path Path
}

func (e Entry) String() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("%s npu=%d", e.Kind, e.NPU)
	}
	return fmt.Sprintf("%s npu=%d path=%s", e.Kind, e.NPU, e.Path)
}

// Tracker is the ordered undo log of one commit call. It is not safe
// for concurrent use.
type Tracker struct {
	entries []Entry
}

// Append records a forward step. The path is copied.
func (t *Tracker) Append(kind Kind, npu nas.NpuID, path ...nas.AttrID) {
	t.entries = append(t.entries, Entry{Kind: kind, NPU: npu, Path: slices.Clone(Path(path))})
}

// ObjectCreated records a create on npu.
func (t *Tracker) ObjectCreated(npu nas.NpuID) { t.Append(CreatedObject, npu) }

// ObjectDeleted records a delete on npu.
func (t *Tracker) ObjectDeleted(npu nas.NpuID) { t.Append(DeletedObject, npu) }

// AttrModified records a changed attribute at path on npu.
func (t *Tracker) AttrModified(npu nas.NpuID, path ...nas.AttrID) {
	t.Append(ModifiedAttr, npu, path...)
}

// AttrCreated records a created sub-attribute at path on npu.
func (t *Tracker) AttrCreated(npu nas.NpuID, path ...nas.AttrID) {
	t.Append(CreatedAttr, npu, path...)
}

// AttrDeleted records a deleted sub-attribute at path on npu.
func (t *Tracker) AttrDeleted(npu nas.NpuID, path ...nas.AttrID) {
	t.Append(DeletedAttr, npu, path...)
}

// Len returns the number of recorded steps.
func (t *Tracker) Len() int {
	return len(t.entries)
}

// Entries returns the recorded steps in the order they were applied.
func (t *Tracker) Entries() []Entry {
	return slices.Clone(t.entries)
}

// Drain calls fn for every entry newest first and empties the
// tracker. Drain keeps going when fn returns an error and reports each
// error with the entry that produced it.
func (t *Tracker) Drain(fn func(Entry) error) []Failure {
	var failures []Failure
	for i := len(t.entries) - 1; i >= 0; i-- {
		e := t.entries[i]
		if err := fn(e); err != nil {
			failures = append(failures, Failure{Entry: e, Err: err})
		}
	}
	t.entries = nil
	return failures
}

// Failure is a compensation that could not be applied.
type Failure struct {
	Entry Entry
	Err   error
}
