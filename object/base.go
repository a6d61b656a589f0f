package object

import (
	"context"
	"fmt"

	"github.com/frobware/go-nas"
	"github.com/frobware/go-nas/alloc"
	"github.com/frobware/go-nas/commit"
	"github.com/frobware/go-nas/rollback"
)

// State is the lifecycle position of an object.
type State int

const (
	// Uncommitted objects exist only in memory.
	Uncommitted State = iota
	// Created objects are present in hardware.
	Created
	// Deleted objects have been removed from hardware and cannot be
	// committed again.
	Deleted
)

func (s State) String() string {
	switch s {
	case Uncommitted:
		return "uncommitted"
	case Created:
		return "created"
	case Deleted:
		return "deleted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Object is a configuration object a Committer can drive. Concrete
// types embed Base and implement the commit hooks Base leaves
// unsupported.
type Object interface {
	commit.Object
	BaseObject() *Base
}

// Base carries the state shared by every object type. Dirty
// attributes are those set since the last successful commit; set
// attributes accumulate over the object's lifetime.
//
// Base holds a plain pointer to its switch and does not own it.
type Base struct {
	sw    *Switch
	state State

	dirty nas.AttrSet
	set   nas.AttrSet

	npus            nas.NpuSet
	npuListDirty    bool
	followingSwitch bool
}

// NewBase returns an uncommitted Base on sw.
func NewBase(sw *Switch) Base {
	return Base{sw: sw}
}

// BaseObject returns b. Embedding types inherit it to satisfy Object.
func (b *Base) BaseObject() *Base { return b }

// Switch returns the owning switch.
func (b *Base) Switch() *Switch { return b.sw }

// SwitchID returns the id of the owning switch.
func (b *Base) SwitchID() nas.SwitchID { return b.sw.ID() }

// State returns the lifecycle state.
func (b *Base) State() State { return b.state }

// IsCreatedInNDI reports whether the object is present in hardware.
func (b *Base) IsCreatedInNDI() bool { return b.state == Created }

// MarkCreatedInNDI records that the object is present in hardware.
// It is used when state is restored from persistent storage.
func (b *Base) MarkCreatedInNDI() { b.state = Created }

// MarkAttrDirty records that attr changed in this transaction.
func (b *Base) MarkAttrDirty(attr nas.AttrID) {
	b.dirty.Add(attr)
}

// IsAttrDirty reports whether attr changed in this transaction.
func (b *Base) IsAttrDirty(attr nas.AttrID) bool {
	return b.dirty.Contains(attr)
}

// IsAttrSet reports whether attr was ever committed.
func (b *Base) IsAttrSet(attr nas.AttrID) bool {
	return b.set.Contains(attr)
}

// DirtyAttrs returns the attributes changed in this transaction.
func (b *Base) DirtyAttrs() nas.AttrSet { return b.dirty }

// SetAttrs returns every attribute ever committed.
func (b *Base) SetAttrs() nas.AttrSet { return b.set }

// ClearAllDirtyFlags forgets the changes of this transaction.
func (b *Base) ClearAllDirtyFlags() {
	b.dirty.Clear()
	b.npuListDirty = false
}

// NpuList returns the NPUs the object is programmed on.
func (b *Base) NpuList() nas.NpuSet { return b.npus }

// IsNpuListDirty reports whether the NPU membership changed in this
// transaction.
func (b *Base) IsNpuListDirty() bool { return b.npuListDirty }

// FollowingSwitchNpus reports whether the NPU list was taken from the
// switch rather than set explicitly.
func (b *Base) FollowingSwitchNpus() bool { return b.followingSwitch }

// AddNpu adds npu to the object. The first add of a transaction
// replaces the previous membership unless resetExisting is false.
// The NPU must belong to the owning switch.
func (b *Base) AddNpu(npu nas.NpuID, resetExisting bool) error {
	if !b.sw.ContainsNpu(npu) {
		return nas.Errorf(nas.CodeInvalidParameter, "add npu", "npu %d is not part of switch %d", npu, b.sw.ID())
	}
	if !b.npuListDirty && resetExisting {
		b.npus.Clear()
	}
	b.npus.Add(npu)
	b.npuListDirty = true
	b.followingSwitch = false
	return nil
}

// RemoveNpu removes npu from the object.
func (b *Base) RemoveNpu(npu nas.NpuID) {
	b.npus.Remove(npu)
	b.npuListDirty = true
	b.followingSwitch = false
}

// ResetNpus empties the NPU list so the next commit follows the
// switch again.
func (b *Base) ResetNpus() {
	b.npus.Clear()
	b.npuListDirty = true
}

// resolveNpus makes an empty NPU list follow the switch.
func (b *Base) resolveNpus() {
	if b.npus.Empty() {
		b.npus = b.sw.NpuList()
		b.followingSwitch = true
	}
}

// CloneBase returns a deep copy of b sharing only the switch.
func (b *Base) CloneBase() Base {
	return Base{
		sw:              b.sw,
		state:           b.state,
		dirty:           b.dirty.Clone(),
		set:             b.set.Clone(),
		npus:            b.npus.Clone(),
		npuListDirty:    b.npuListDirty,
		followingSwitch: b.followingSwitch,
	}
}

// IsLeafAttr reports every attribute as a leaf.
func (b *Base) IsLeafAttr(nas.AttrID) bool { return true }

// AllocHardwareRepresentation builds no payload.
func (b *Base) AllocHardwareRepresentation(*alloc.Scope) (any, error) {
	return nil, nil
}

func unsupported(hook string) error {
	return nas.Errorf(nas.CodeUnsupported, hook, "hook not implemented by object type")
}

func (b *Base) PushCreate(context.Context, nas.NpuID, any) (bool, error) {
	return false, unsupported("PushCreate")
}

func (b *Base) PushDelete(context.Context, nas.NpuID) (bool, error) {
	return false, unsupported("PushDelete")
}

func (b *Base) PushLeafAttr(context.Context, nas.AttrID, nas.NpuID) (bool, error) {
	return false, unsupported("PushLeafAttr")
}

func (b *Base) PushNonLeafAttr(context.Context, nas.AttrID, commit.Object, nas.NpuSet, *rollback.Tracker, bool) error {
	return unsupported("PushNonLeafAttr")
}

func (b *Base) RollbackModifiedAttr(context.Context, rollback.Path, nas.NpuID, commit.Object) error {
	return unsupported("RollbackModifiedAttr")
}

func (b *Base) RollbackCreatedAttr(context.Context, rollback.Path, nas.NpuID) error {
	return unsupported("RollbackCreatedAttr")
}

func (b *Base) RollbackDeletedAttr(context.Context, rollback.Path, nas.NpuID) error {
	return unsupported("RollbackDeletedAttr")
}
