package manager

import (
	"context"
	"errors"
	"fmt"

	"github.com/frobware/go-nas"
	"github.com/frobware/go-nas/object"
	"github.com/frobware/go-nas/store"
	"github.com/frobware/go-nas/vlan"
)

// revertFunc puts hardware back after a committed change could not be
// persisted. It commits with object.WithRollingBack, so it runs to
// completion even when the caller's context is cancelled.
type revertFunc func(ctx context.Context) error

// revertCreate deletes the freshly created v and frees its object id.
func (m *Manager) revertCreate(v *vlan.VLAN) revertFunc {
	return func(ctx context.Context) error {
		m.ids.Release(uint64(v.ObjID()))
		return m.committer.Delete(ctx, v, object.WithRollingBack())
	}
}

// revertModify recommits old's values for every attribute in
// modified, taking next as the current hardware state, and makes the
// result live.
func (m *Manager) revertModify(old, next *vlan.VLAN, modified nas.AttrSet) revertFunc {
	return func(ctx context.Context) error {
		back := old.Clone()
		for attr := range modified.All() {
			back.MarkAttrDirty(attr)
		}
		if _, err := m.committer.Modify(ctx, back, next, object.WithRollingBack()); err != nil {
			return err
		}
		back.RetainNdiIDs()
		m.vlans[back.ObjID()] = back
		return nil
	}
}

// revertDelete recreates the deleted VLAN from its stored record under
// the same object id.
func (m *Manager) revertDelete(rec store.VLANRecord) revertFunc {
	return func(ctx context.Context) error {
		fresh, err := m.fromRecord(rec)
		if err != nil {
			return err
		}
		if err := m.committer.Create(ctx, fresh, object.WithRollingBack()); err != nil {
			return err
		}
		m.vlans[rec.ObjID] = fresh
		return nil
	}
}

// persistOrRevert runs write, the store half of a mutation of v whose
// hardware half has committed. If write fails the hardware is
// reverted; the write error is returned together with any revert
// failure.
func (m *Manager) persistOrRevert(ctx context.Context, id nas.ObjID, vid uint16, write func() error, revert revertFunc) error {
	err := write()
	if err == nil {
		return nil
	}
	err = fmt.Errorf("persist vlan %d: %w", vid, err)
	m.logger.ErrorContext(ctx, "persist failed, reverting hardware", "obj_id", id, "vlan", vid, "error", err)

	if rerr := revert(ctx); rerr != nil {
		m.logger.ErrorContext(ctx, "hardware revert failed, hardware and store disagree", "obj_id", id, "vlan", vid, "error", rerr)
		return errors.Join(err, fmt.Errorf("revert hardware: %w", rerr))
	}
	return err
}
