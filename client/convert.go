package client

import (
	"github.com/frobware/go-nas"
	"github.com/frobware/go-nas/ifmap"
	"github.com/frobware/go-nas/manager"
	"github.com/frobware/go-nas/server/pb"
	"github.com/frobware/go-nas/vlan"
)

func npusToPB(in []nas.NpuID) []int32 {
	if len(in) == 0 {
		return nil
	}
	out := make([]int32, len(in))
	for i, npu := range in {
		out[i] = int32(npu)
	}
	return out
}

func npusFromPB(in []int32) []nas.NpuID {
	out := make([]nas.NpuID, len(in))
	for i, npu := range in {
		out[i] = nas.NpuID(npu)
	}
	return out
}

func switchFromPB(sw *pb.Switch) manager.SwitchInfo {
	return manager.SwitchInfo{ID: nas.SwitchID(sw.GetId()), NPUs: npusFromPB(sw.GetNpus())}
}

func vlanFromPB(v *pb.VLAN) vlan.Info {
	info := vlan.Info{
		ObjID:            nas.ObjID(v.GetObjId()),
		SwitchID:         nas.SwitchID(v.GetSwitchId()),
		VlanID:           uint16(v.GetVlanId()),
		MTU:              v.GetMtu(),
		LearningDisabled: v.GetLearningDisabled(),
		Members:          v.GetMembers(),
		NPUs:             npusFromPB(v.GetNpus()),
		FollowingSwitch:  v.GetFollowingSwitch(),
	}
	if len(v.GetNdiIds()) > 0 {
		info.NdiIDs = make(map[nas.NpuID]nas.NdiObjID, len(v.GetNdiIds()))
		for _, id := range v.GetNdiIds() {
			info.NdiIDs[nas.NpuID(id.GetNpu())] = nas.NdiObjID(id.GetNdiId())
		}
	}
	return info
}

func interfaceFromPB(in *pb.Interface) (ifmap.Interface, error) {
	typ, err := ifmap.ParseType(in.GetType())
	if err != nil {
		return ifmap.Interface{}, err
	}
	out := ifmap.Interface{
		Name:    in.GetName(),
		Type:    typ,
		VRF:     in.GetVrf(),
		IfIndex: in.GetIfindex(),
		TapID:   in.GetTapId(),
		VlanID:  uint16(in.GetVlanId()),
		LagID:   in.GetLagId(),
	}
	if p := in.GetPort(); p != nil {
		out.Port = &ifmap.PortAddr{NPU: nas.NpuID(p.GetNpu()), Port: p.GetPort()}
	}
	return out, nil
}

func specToPB(spec manager.VLANSpec) *pb.CreateVLANRequest {
	return &pb.CreateVLANRequest{
		SwitchId:         uint32(spec.SwitchID),
		VlanId:           uint32(spec.VlanID),
		Mtu:              spec.MTU,
		LearningDisabled: spec.LearningDisabled,
		Members:          spec.Members,
		Npus:             npusToPB(spec.NPUs),
	}
}

func updateToPB(id nas.ObjID, upd manager.VLANUpdate) *pb.ModifyVLANRequest {
	req := &pb.ModifyVLANRequest{
		ObjId:            uint64(id),
		Mtu:              upd.MTU,
		LearningDisabled: upd.LearningDisabled,
		AddMembers:       upd.AddMembers,
		RemoveMembers:    upd.RemoveMembers,
		Npus:             npusToPB(upd.NPUs),
		FollowSwitch:     upd.FollowSwitch,
	}
	if upd.Members != nil {
		req.Members = &pb.MemberList{Ports: *upd.Members}
	}
	return req
}
