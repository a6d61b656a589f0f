package vlan

import (
	"context"

	"github.com/frobware/go-nas"
	"github.com/frobware/go-nas/alloc"
	"github.com/frobware/go-nas/commit"
	"github.com/frobware/go-nas/logging"
	"github.com/frobware/go-nas/ndi"
	"github.com/frobware/go-nas/rollback"
)

func (v *VLAN) IsLeafAttr(attr nas.AttrID) bool {
	return attr != AttrMembers
}

func (v *VLAN) AllocHardwareRepresentation(s *alloc.Scope) (any, error) {
	attrs := alloc.New[ndi.VLANAttrs](s)
	attrs.VlanID = v.vlanID
	attrs.MTU = v.mtu
	attrs.LearningDisabled = v.learningDisabled
	attrs.Members = alloc.NewSlice[uint32](s, len(v.members))
	copy(attrs.Members, v.members)
	return attrs, nil
}

func (v *VLAN) trace(ctx context.Context, msg string, args ...any) {
	v.logger.Log(ctx, logging.LevelTrace.ToSlog(), msg, append([]any{"vlan", v.vlanID}, args...)...)
}

func (v *VLAN) ndiID(npu nas.NpuID) (nas.NdiObjID, error) {
	id, ok := v.ids.Get(npu)
	if !ok {
		return 0, nas.Errorf(nas.CodeInvalidState, v.Name(), "no ndi id on npu %d", npu)
	}
	return id, nil
}

func (v *VLAN) PushCreate(ctx context.Context, npu nas.NpuID, payload any) (bool, error) {
	attrs, ok := payload.(*ndi.VLANAttrs)
	if !ok {
		return false, nas.Errorf(nas.CodeInvalidParameter, v.Name(), "unexpected payload %T", payload)
	}
	id, err := v.driver.CreateVLAN(ctx, npu, attrs)
	if err != nil {
		return false, err
	}
	v.ids.Set(npu, id)
	v.trace(ctx, "created", "npu", npu, "ndi_id", id)
	return true, nil
}

// PushDelete reports false for NPUs the VLAN was never created on.
func (v *VLAN) PushDelete(ctx context.Context, npu nas.NpuID) (bool, error) {
	id, ok := v.ids.Get(npu)
	if !ok {
		return false, nil
	}
	if err := v.driver.DeleteVLAN(ctx, npu, id); err != nil {
		return false, err
	}
	v.ids.Erase(npu)
	v.trace(ctx, "deleted", "npu", npu, "ndi_id", id)
	return true, nil
}

func (v *VLAN) PushLeafAttr(ctx context.Context, attr nas.AttrID, npu nas.NpuID) (bool, error) {
	if attr == AttrVlanID {
		// Create-only; an unchanged value has nothing to push.
		return false, nil
	}
	id, err := v.ndiID(npu)
	if err != nil {
		return false, err
	}
	switch attr {
	case AttrMTU:
		err = v.driver.SetVLANMTU(ctx, npu, id, v.mtu)
	case AttrLearningDisabled:
		err = v.driver.SetVLANLearning(ctx, npu, id, v.learningDisabled)
	default:
		return false, nas.Errorf(nas.CodeInvalidParameter, v.Name(), "unknown attribute %d", attr)
	}
	if err != nil {
		return false, err
	}
	v.trace(ctx, "attr pushed", "npu", npu, "attr", attr)
	return true, nil
}

// PushNonLeafAttr applies the member list difference against old to
// every NPU in npus, recording each port added or removed.
func (v *VLAN) PushNonLeafAttr(ctx context.Context, attr nas.AttrID, old commit.Object, npus nas.NpuSet, t *rollback.Tracker, rollingBack bool) error {
	if attr != AttrMembers {
		return nas.Errorf(nas.CodeInvalidParameter, v.Name(), "attribute %d is a leaf", attr)
	}
	prev, ok := old.(*VLAN)
	if !ok {
		return nas.Errorf(nas.CodeInvalidParameter, v.Name(), "old object is %T", old)
	}

	var added, removed []uint32
	for _, p := range v.members {
		if !prev.hasMember(p) {
			added = append(added, p)
		}
	}
	for _, p := range prev.members {
		if !v.hasMember(p) {
			removed = append(removed, p)
		}
	}

	for npu := range npus.All() {
		id, err := v.ndiID(npu)
		if err != nil {
			if rollingBack {
				v.logger.ErrorContext(ctx, "rollback members failed", "npu", npu, "error", err)
				continue
			}
			return err
		}
		for _, port := range added {
			if err := v.driver.AddVLANMember(ctx, npu, id, port); err != nil {
				if rollingBack {
					v.logger.ErrorContext(ctx, "rollback add member failed", "npu", npu, "port", port, "error", err)
					continue
				}
				return err
			}
			if !rollingBack {
				t.AttrCreated(npu, AttrMembers, nas.AttrID(port))
			}
		}
		for _, port := range removed {
			if err := v.driver.RemoveVLANMember(ctx, npu, id, port); err != nil {
				if rollingBack {
					v.logger.ErrorContext(ctx, "rollback remove member failed", "npu", npu, "port", port, "error", err)
					continue
				}
				return err
			}
			if !rollingBack {
				t.AttrDeleted(npu, AttrMembers, nas.AttrID(port))
			}
		}
		v.trace(ctx, "members pushed", "npu", npu, "added", added, "removed", removed)
	}
	return nil
}

func memberPort(path rollback.Path) (uint32, error) {
	if len(path) != 2 || path[0] != AttrMembers {
		return 0, nas.Errorf(nas.CodeInvalidParameter, "vlan rollback", "unexpected path %s", path)
	}
	return uint32(path[1]), nil
}

// RollbackModifiedAttr restores the membership of one port to what v
// (the old object) holds.
func (v *VLAN) RollbackModifiedAttr(ctx context.Context, path rollback.Path, npu nas.NpuID, _ commit.Object) error {
	port, err := memberPort(path)
	if err != nil {
		return err
	}
	id, err := v.ndiID(npu)
	if err != nil {
		return err
	}
	if v.hasMember(port) {
		return v.driver.AddVLANMember(ctx, npu, id, port)
	}
	return v.driver.RemoveVLANMember(ctx, npu, id, port)
}

// RollbackCreatedAttr removes a port the new object added.
func (v *VLAN) RollbackCreatedAttr(ctx context.Context, path rollback.Path, npu nas.NpuID) error {
	port, err := memberPort(path)
	if err != nil {
		return err
	}
	id, err := v.ndiID(npu)
	if err != nil {
		return err
	}
	return v.driver.RemoveVLANMember(ctx, npu, id, port)
}

// RollbackDeletedAttr re-adds a port the new object removed.
func (v *VLAN) RollbackDeletedAttr(ctx context.Context, path rollback.Path, npu nas.NpuID) error {
	port, err := memberPort(path)
	if err != nil {
		return err
	}
	id, err := v.ndiID(npu)
	if err != nil {
		return err
	}
	return v.driver.AddVLANMember(ctx, npu, id, port)
}
