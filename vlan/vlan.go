// Package vlan implements the VLAN configuration object on top of the
// commit engine. A VLAN has a VLAN id, an MTU, a learning flag and a
// list of member ports; the member list is a non-leaf attribute whose
// individual ports are added and removed one by one.
package vlan

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/frobware/go-nas"
	"github.com/frobware/go-nas/logging"
	"github.com/frobware/go-nas/ndi"
	"github.com/frobware/go-nas/object"
)

// Attribute ids.
const (
	AttrVlanID           nas.AttrID = 1
	AttrMTU              nas.AttrID = 2
	AttrLearningDisabled nas.AttrID = 3
	AttrMembers          nas.AttrID = 4
)

// Limits.
const (
	MinVlanID  = 1
	MaxVlanID  = 4094
	MinMTU     = 68
	MaxMTU     = 9216
	DefaultMTU = 1500
)

const logCategory = 3

var _ object.Object = (*VLAN)(nil)

// VLAN is one VLAN. Modify a Clone, never the stored instance.
type VLAN struct {
	object.Base

	objID            nas.ObjID
	vlanID           uint16
	mtu              uint32
	learningDisabled bool
	members          []uint32 // sorted

	ids    ndi.IDTable
	driver ndi.Driver
	logger *slog.Logger
}

// New returns an uncommitted VLAN on sw programmed through driver.
func New(sw *object.Switch, driver ndi.Driver, logger *slog.Logger) *VLAN {
	if logger == nil {
		logger = logging.Discard()
	}
	return &VLAN{
		Base:   object.NewBase(sw),
		mtu:    DefaultMTU,
		driver: driver,
		logger: logger.With("component", "vlan"),
	}
}

// Clone returns a deep copy sharing only the switch, driver and
// logger.
func (v *VLAN) Clone() *VLAN {
	c := *v
	c.Base = v.CloneBase()
	c.members = slices.Clone(v.members)
	c.ids = v.ids.Clone()
	return &c
}

func (v *VLAN) Name() string {
	return fmt.Sprintf("vlan-%d", v.vlanID)
}

func (v *VLAN) LogCategory() int { return logCategory }

func (v *VLAN) LogCategoryName() string { return "vlan" }

// ObjID returns the object id assigned by the manager.
func (v *VLAN) ObjID() nas.ObjID { return v.objID }

// SetObjID records the object id. It is not an attribute and never
// reaches hardware.
func (v *VLAN) SetObjID(id nas.ObjID) { v.objID = id }

func (v *VLAN) VlanID() uint16 { return v.vlanID }

func (v *VLAN) MTU() uint32 { return v.mtu }

func (v *VLAN) LearningDisabled() bool { return v.learningDisabled }

// Members returns the member ports, ascending.
func (v *VLAN) Members() []uint32 { return slices.Clone(v.members) }

// NdiIDs returns a copy of the per-NPU driver ids.
func (v *VLAN) NdiIDs() ndi.IDTable { return v.ids.Clone() }

// RetainNdiIDs forgets driver ids for NPUs the VLAN no longer uses.
// Call it after a successful modify that removed NPUs.
func (v *VLAN) RetainNdiIDs() {
	v.ids.Retain(v.NpuList())
}

func (v *VLAN) SetVlanID(id uint16) error {
	if id < MinVlanID || id > MaxVlanID {
		return nas.Errorf(nas.CodeInvalidParameter, "set vlan id", "%d outside %d..%d", id, MinVlanID, MaxVlanID)
	}
	v.vlanID = id
	v.MarkAttrDirty(AttrVlanID)
	return nil
}

func (v *VLAN) SetMTU(mtu uint32) error {
	if mtu < MinMTU || mtu > MaxMTU {
		return nas.Errorf(nas.CodeInvalidParameter, "set mtu", "%d outside %d..%d", mtu, MinMTU, MaxMTU)
	}
	v.mtu = mtu
	v.MarkAttrDirty(AttrMTU)
	return nil
}

func (v *VLAN) SetLearningDisabled(disabled bool) {
	v.learningDisabled = disabled
	v.MarkAttrDirty(AttrLearningDisabled)
}

// SetMembers replaces the member list. Duplicates are dropped.
func (v *VLAN) SetMembers(ports []uint32) {
	v.members = slices.Compact(slices.Sorted(slices.Values(ports)))
	v.MarkAttrDirty(AttrMembers)
}

// AddMember adds port to the member list.
func (v *VLAN) AddMember(port uint32) {
	if i, found := slices.BinarySearch(v.members, port); !found {
		v.members = slices.Insert(v.members, i, port)
	}
	v.MarkAttrDirty(AttrMembers)
}

// RemoveMember removes port from the member list.
func (v *VLAN) RemoveMember(port uint32) {
	if i, found := slices.BinarySearch(v.members, port); found {
		v.members = slices.Delete(v.members, i, i+1)
	}
	v.MarkAttrDirty(AttrMembers)
}

func (v *VLAN) hasMember(port uint32) bool {
	_, found := slices.BinarySearch(v.members, port)
	return found
}

// ValidateCreate requires a VLAN id.
func (v *VLAN) ValidateCreate() error {
	if !v.IsAttrDirty(AttrVlanID) {
		return nas.Errorf(nas.CodeInvalidParameter, "create vlan", "vlan id is mandatory")
	}
	return nil
}

// ValidateModify rejects a change of VLAN id.
func (v *VLAN) ValidateModify(old object.Object) error {
	prev, ok := old.(*VLAN)
	if !ok {
		return nas.Errorf(nas.CodeInvalidParameter, "modify vlan", "old object is %T", old)
	}
	if v.vlanID != prev.vlanID {
		return nas.Errorf(nas.CodeInvalidParameter, "modify vlan", "vlan id is create-only (%d -> %d)", prev.vlanID, v.vlanID)
	}
	return nil
}

// Info is a read-only view of a VLAN.
type Info struct {
	ObjID            nas.ObjID                  `json:"obj_id"`
	SwitchID         nas.SwitchID               `json:"switch_id"`
	VlanID           uint16                     `json:"vlan_id"`
	MTU              uint32                     `json:"mtu"`
	LearningDisabled bool                       `json:"learning_disabled"`
	Members          []uint32                   `json:"members,omitempty"`
	NPUs             []nas.NpuID                `json:"npus"`
	FollowingSwitch  bool                       `json:"following_switch"`
	NdiIDs           map[nas.NpuID]nas.NdiObjID `json:"ndi_ids,omitempty"`
}

// Info returns a snapshot of v.
func (v *VLAN) Info() Info {
	info := Info{
		ObjID:            v.objID,
		SwitchID:         v.SwitchID(),
		VlanID:           v.vlanID,
		MTU:              v.mtu,
		LearningDisabled: v.learningDisabled,
		Members:          v.Members(),
		NPUs:             v.NpuList().IDs(),
		FollowingSwitch:  v.FollowingSwitchNpus(),
	}
	if v.ids.Len() > 0 {
		info.NdiIDs = make(map[nas.NpuID]nas.NdiObjID, v.ids.Len())
		for _, npu := range v.ids.NPUs() {
			info.NdiIDs[npu], _ = v.ids.Get(npu)
		}
	}
	return info
}
