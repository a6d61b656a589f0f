// Package ndi is the boundary to the hardware driver. The commit
// engine programs NPUs only through Driver; package sim provides an
// in-memory implementation.
package ndi

import (
	"context"
	"fmt"

	"github.com/frobware/go-nas"
)

// Op names a driver operation. It is used in errors, the sim call
// journal and fault injection.
type Op string

const (
	OpCreateVLAN       Op = "create-vlan"
	OpDeleteVLAN       Op = "delete-vlan"
	OpSetVLANMTU       Op = "set-vlan-mtu"
	OpSetVLANLearning  Op = "set-vlan-learning"
	OpAddVLANMember    Op = "add-vlan-member"
	OpRemoveVLANMember Op = "remove-vlan-member"
)

// Ops lists every driver operation.
var Ops = []Op{
	OpCreateVLAN,
	OpDeleteVLAN,
	OpSetVLANMTU,
	OpSetVLANLearning,
	OpAddVLANMember,
	OpRemoveVLANMember,
}

// ParseOp returns the Op named s.
func ParseOp(s string) (Op, error) {
	for _, op := range Ops {
		if string(op) == s {
			return op, nil
		}
	}
	return "", fmt.Errorf("unknown ndi op %q", s)
}

// VLANAttrs is the hardware payload for creating a VLAN.
type VLANAttrs struct {
	VlanID           uint16
	MTU              uint32
	LearningDisabled bool
	Members          []uint32
}

// Driver programs VLANs on NPUs. Implementations must be safe for
// concurrent use.
type Driver interface {
	CreateVLAN(ctx context.Context, npu nas.NpuID, attrs *VLANAttrs) (nas.NdiObjID, error)
	DeleteVLAN(ctx context.Context, npu nas.NpuID, id nas.NdiObjID) error
	SetVLANMTU(ctx context.Context, npu nas.NpuID, id nas.NdiObjID, mtu uint32) error
	SetVLANLearning(ctx context.Context, npu nas.NpuID, id nas.NdiObjID, disabled bool) error
	AddVLANMember(ctx context.Context, npu nas.NpuID, id nas.NdiObjID, port uint32) error
	RemoveVLANMember(ctx context.Context, npu nas.NpuID, id nas.NdiObjID, port uint32) error
}

// Error is a driver failure.
type Error struct {
	Op  Op
	NPU nas.NpuID
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("ndi %s on npu %d: %v", e.Op, e.NPU, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
