package server

import (
	"cmp"
	"math"
	"slices"

	"github.com/frobware/go-nas"
	"github.com/frobware/go-nas/ifmap"
	"github.com/frobware/go-nas/manager"
	"github.com/frobware/go-nas/server/pb"
	"github.com/frobware/go-nas/vlan"
)

func npusFromPB(in []int32) []nas.NpuID {
	if len(in) == 0 {
		return nil
	}
	out := make([]nas.NpuID, len(in))
	for i, npu := range in {
		out[i] = nas.NpuID(npu)
	}
	return out
}

func npusToPB(in []nas.NpuID) []int32 {
	out := make([]int32, len(in))
	for i, npu := range in {
		out[i] = int32(npu)
	}
	return out
}

func vlanIDFromPB(op string, vid uint32) (uint16, error) {
	if vid > math.MaxUint16 {
		return 0, nas.Errorf(nas.CodeInvalidParameter, op, "vlan id %d is out of range", vid)
	}
	return uint16(vid), nil
}

func switchToPB(sw manager.SwitchInfo) *pb.Switch {
	return &pb.Switch{Id: uint32(sw.ID), Npus: npusToPB(sw.NPUs)}
}

func vlanToPB(info vlan.Info) *pb.VLAN {
	out := &pb.VLAN{
		ObjId:            uint64(info.ObjID),
		SwitchId:         uint32(info.SwitchID),
		VlanId:           uint32(info.VlanID),
		Mtu:              info.MTU,
		LearningDisabled: info.LearningDisabled,
		Members:          info.Members,
		Npus:             npusToPB(info.NPUs),
		FollowingSwitch:  info.FollowingSwitch,
	}
	for npu, id := range info.NdiIDs {
		out.NdiIds = append(out.NdiIds, &pb.NdiID{Npu: int32(npu), NdiId: uint64(id)})
	}
	slices.SortFunc(out.NdiIds, func(a, b *pb.NdiID) int { return cmp.Compare(a.Npu, b.Npu) })
	return out
}

func interfaceToPB(intf ifmap.Interface) *pb.Interface {
	out := &pb.Interface{
		Name:    intf.Name,
		Type:    intf.Type.String(),
		Vrf:     intf.VRF,
		Ifindex: intf.IfIndex,
		TapId:   intf.TapID,
		VlanId:  uint32(intf.VlanID),
		LagId:   intf.LagID,
	}
	if intf.Port != nil {
		out.Port = &pb.PortAddr{Npu: int32(intf.Port.NPU), Port: intf.Port.Port}
	}
	return out
}

func specFromPB(req *pb.CreateVLANRequest) (manager.VLANSpec, error) {
	vid, err := vlanIDFromPB("create vlan", req.GetVlanId())
	if err != nil {
		return manager.VLANSpec{}, err
	}
	return manager.VLANSpec{
		SwitchID:         nas.SwitchID(req.GetSwitchId()),
		VlanID:           vid,
		MTU:              req.GetMtu(),
		LearningDisabled: req.GetLearningDisabled(),
		Members:          req.GetMembers(),
		NPUs:             npusFromPB(req.GetNpus()),
	}, nil
}

func updateFromPB(req *pb.ModifyVLANRequest) manager.VLANUpdate {
	upd := manager.VLANUpdate{
		MTU:              req.Mtu,
		LearningDisabled: req.LearningDisabled,
		AddMembers:       req.GetAddMembers(),
		RemoveMembers:    req.GetRemoveMembers(),
		NPUs:             npusFromPB(req.GetNpus()),
		FollowSwitch:     req.GetFollowSwitch(),
	}
	if req.GetMembers() != nil {
		ports := slices.Clone(req.GetMembers().GetPorts())
		if ports == nil {
			ports = []uint32{}
		}
		upd.Members = &ports
	}
	return upd
}
