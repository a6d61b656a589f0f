package manager

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/frobware/go-nas"
	"github.com/frobware/go-nas/lock"
	"github.com/frobware/go-nas/store"
	"github.com/frobware/go-nas/vlan"
)

// VLANSpec describes a VLAN to create. Zero values take the VLAN
// defaults; an empty NPU list follows the switch.
type VLANSpec struct {
	SwitchID         nas.SwitchID `json:"switch_id"`
	VlanID           uint16       `json:"vlan_id"`
	MTU              uint32       `json:"mtu,omitempty"`
	LearningDisabled bool         `json:"learning_disabled,omitempty"`
	Members          []uint32     `json:"members,omitempty"`
	NPUs             []nas.NpuID  `json:"npus,omitempty"`
}

// VLANUpdate describes a change to a VLAN. Nil fields are left alone.
// Members replaces the member list and is applied before AddMembers
// and RemoveMembers. NPUs replaces the NPU list; FollowSwitch makes
// the VLAN follow its switch again.
type VLANUpdate struct {
	MTU              *uint32     `json:"mtu,omitempty"`
	LearningDisabled *bool       `json:"learning_disabled,omitempty"`
	Members          *[]uint32   `json:"members,omitempty"`
	AddMembers       []uint32    `json:"add_members,omitempty"`
	RemoveMembers    []uint32    `json:"remove_members,omitempty"`
	NPUs             []nas.NpuID `json:"npus,omitempty"`
	FollowSwitch     bool        `json:"follow_switch,omitempty"`
}

func notFound(id nas.ObjID) error {
	return fmt.Errorf("vlan object %d: %w", id, store.ErrNotFound)
}

func (m *Manager) findVLAN(sw nas.SwitchID, vid uint16) *vlan.VLAN {
	for _, v := range m.vlans {
		if v.SwitchID() == sw && v.VlanID() == vid {
			return v
		}
	}
	return nil
}

// checkMembers requires every member of v to be a registered port
// on an NPU v spans. With no interfaces registered any port goes.
func (m *Manager) checkMembers(v *vlan.VLAN) error {
	if m.ifaces.Len() == 0 {
		return nil
	}
	npus := v.NpuList()
	if npus.Empty() {
		npus = v.Switch().NpuList()
	}
	for _, port := range v.Members() {
		onNpu := func(npu nas.NpuID) bool {
			_, ok := m.ifaces.ByPort(npu, port)
			return ok
		}
		if !slices.ContainsFunc(npus.IDs(), onNpu) {
			return nas.Errorf(nas.CodeInvalidParameter, "check members", "port %d is not a registered interface on npus %s", port, npus.String())
		}
	}
	return nil
}

// CreateVLAN commits a new VLAN to hardware and persists it.
func (m *Manager) CreateVLAN(ctx context.Context, scope lock.WriterScope, spec VLANSpec) (vlan.Info, error) {
	if err := requireScope(scope, "create vlan"); err != nil {
		return vlan.Info{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	sw, err := m.switchByID(spec.SwitchID)
	if err != nil {
		return vlan.Info{}, err
	}
	if m.findVLAN(spec.SwitchID, spec.VlanID) != nil {
		return vlan.Info{}, nas.Errorf(nas.CodeInvalidState, "create vlan", "vlan %d already exists on switch %d", spec.VlanID, spec.SwitchID)
	}

	v := vlan.New(sw, m.driver, m.logger)
	if err := v.SetVlanID(spec.VlanID); err != nil {
		return vlan.Info{}, err
	}
	if spec.MTU != 0 {
		if err := v.SetMTU(spec.MTU); err != nil {
			return vlan.Info{}, err
		}
	}
	if spec.LearningDisabled {
		v.SetLearningDisabled(true)
	}
	if len(spec.Members) > 0 {
		v.SetMembers(spec.Members)
	}
	for _, npu := range spec.NPUs {
		if err := v.AddNpu(npu, false); err != nil {
			return vlan.Info{}, err
		}
	}
	if err := m.checkMembers(v); err != nil {
		return vlan.Info{}, err
	}

	raw, err := m.ids.Allocate()
	if err != nil {
		return vlan.Info{}, fmt.Errorf("allocate object id: %w", err)
	}
	id := nas.ObjID(raw)
	v.SetObjID(id)

	if err := m.committer.Create(ctx, v); err != nil {
		m.ids.Release(raw)
		return vlan.Info{}, err
	}

	write := func() error { return m.persist(ctx, v) }
	if err := m.persistOrRevert(ctx, id, spec.VlanID, write, m.revertCreate(v)); err != nil {
		return vlan.Info{}, err
	}

	m.vlans[id] = v
	m.updateGauges()
	m.logger.InfoContext(ctx, "created vlan", "obj_id", id, "vlan", spec.VlanID, "switch", spec.SwitchID, "npus", v.NpuList().String())
	return v.Info(), nil
}

func applyUpdate(v *vlan.VLAN, upd VLANUpdate) error {
	if upd.MTU != nil {
		if err := v.SetMTU(*upd.MTU); err != nil {
			return err
		}
	}
	if upd.LearningDisabled != nil {
		v.SetLearningDisabled(*upd.LearningDisabled)
	}
	if upd.Members != nil {
		v.SetMembers(*upd.Members)
	}
	for _, port := range upd.AddMembers {
		v.AddMember(port)
	}
	for _, port := range upd.RemoveMembers {
		v.RemoveMember(port)
	}

	switch {
	case upd.FollowSwitch && len(upd.NPUs) > 0:
		return nas.Errorf(nas.CodeInvalidParameter, "modify vlan", "npus and follow switch are mutually exclusive")
	case upd.FollowSwitch:
		v.ResetNpus()
	case len(upd.NPUs) > 0:
		for _, npu := range upd.NPUs {
			if err := v.AddNpu(npu, true); err != nil {
				return err
			}
		}
	}
	return nil
}

// ModifyVLAN commits upd against a clone of the live VLAN and swaps
// the clone in once it is persisted.
func (m *Manager) ModifyVLAN(ctx context.Context, scope lock.WriterScope, id nas.ObjID, upd VLANUpdate) (vlan.Info, error) {
	if err := requireScope(scope, "modify vlan"); err != nil {
		return vlan.Info{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	old, ok := m.vlans[id]
	if !ok {
		return vlan.Info{}, notFound(id)
	}
	next := old.Clone()
	if err := applyUpdate(next, upd); err != nil {
		return vlan.Info{}, err
	}
	if err := m.checkMembers(next); err != nil {
		return vlan.Info{}, err
	}

	before := old.Info().NdiIDs
	modified, err := m.committer.Modify(ctx, next, old)
	if err != nil {
		// Rollback may have recreated old on removed NPUs under new
		// driver ids.
		if !maps.Equal(before, old.Info().NdiIDs) {
			if perr := m.persist(ctx, old); perr != nil {
				m.logger.WarnContext(ctx, "failed to persist driver ids after rollback", "obj_id", id, "error", perr)
			}
		}
		return vlan.Info{}, err
	}
	next.RetainNdiIDs()

	write := func() error { return m.persist(ctx, next) }
	if err := m.persistOrRevert(ctx, id, next.VlanID(), write, m.revertModify(old, next, modified)); err != nil {
		return vlan.Info{}, err
	}

	m.vlans[id] = next
	m.logger.InfoContext(ctx, "modified vlan", "obj_id", id, "vlan", next.VlanID(), "attrs", modified.ToArray(), "npus", next.NpuList().String())
	return next.Info(), nil
}

// DeleteVLAN removes a VLAN from hardware and the store.
func (m *Manager) DeleteVLAN(ctx context.Context, scope lock.WriterScope, id nas.ObjID) error {
	if err := requireScope(scope, "delete vlan"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.vlans[id]
	if !ok {
		return notFound(id)
	}
	rec := toRecord(v)

	if err := m.committer.Delete(ctx, v); err != nil {
		if !maps.Equal(rec.NdiIDs, v.Info().NdiIDs) {
			if perr := m.persist(ctx, v); perr != nil {
				m.logger.WarnContext(ctx, "failed to persist driver ids after rollback", "obj_id", id, "error", perr)
			}
		}
		return err
	}

	write := func() error {
		err := m.store.RunInTransaction(ctx, func(tx store.Store) error {
			return tx.DeleteVLAN(ctx, id)
		})
		if errors.Is(err, store.ErrNotFound) {
			m.logger.WarnContext(ctx, "deleted vlan had no stored record", "obj_id", id)
			return nil
		}
		return err
	}
	if err := m.persistOrRevert(ctx, id, rec.VlanID, write, m.revertDelete(rec)); err != nil {
		return err
	}

	delete(m.vlans, id)
	m.ids.Release(uint64(id))
	m.updateGauges()
	m.logger.InfoContext(ctx, "deleted vlan", "obj_id", id, "vlan", rec.VlanID)
	return nil
}

// GetVLAN returns the live VLAN with id.
func (m *Manager) GetVLAN(id nas.ObjID) (vlan.Info, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.vlans[id]
	if !ok {
		return vlan.Info{}, notFound(id)
	}
	return v.Info(), nil
}

// LookupVLAN returns the live VLAN with VLAN id vid on switch sw.
func (m *Manager) LookupVLAN(sw nas.SwitchID, vid uint16) (vlan.Info, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v := m.findVLAN(sw, vid)
	if v == nil {
		return vlan.Info{}, fmt.Errorf("vlan %d on switch %d: %w", vid, sw, store.ErrNotFound)
	}
	return v.Info(), nil
}

// ListVLANs returns every live VLAN ordered by switch and VLAN id.
func (m *Manager) ListVLANs() []vlan.Info {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]vlan.Info, 0, len(m.vlans))
	for _, v := range m.vlans {
		out = append(out, v.Info())
	}
	slices.SortFunc(out, func(a, b vlan.Info) int {
		return cmp.Or(cmp.Compare(a.SwitchID, b.SwitchID), cmp.Compare(a.VlanID, b.VlanID))
	})
	return out
}
