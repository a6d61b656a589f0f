package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/frobware/go-nas"
	"github.com/frobware/go-nas/ifmap"
	"github.com/frobware/go-nas/manager"
	"github.com/frobware/go-nas/vlan"
)

func formatJSON(v any) (string, error) {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	return string(output) + "\n", nil
}

func joinIDs[T nas.NpuID | uint32](ids []T) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, ",")
}

// FormatVLAN formats one VLAN.
func FormatVLAN(info vlan.Info, flags *OutputFlags) (string, error) {
	if flags.Output == OutputFormatJSON {
		return formatJSON(info)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "VLAN %d (object %d) on switch %d\n", info.VlanID, info.ObjID, info.SwitchID)
	fmt.Fprintf(&b, "├─ mtu:       %d\n", info.MTU)
	fmt.Fprintf(&b, "├─ learning:  %s\n", onOff(!info.LearningDisabled))
	fmt.Fprintf(&b, "├─ members:   %s\n", joinIDs(info.Members))
	npus := joinIDs(info.NPUs)
	if info.FollowingSwitch {
		npus += " (follows switch)"
	}
	fmt.Fprintf(&b, "└─ npus:      %s\n", npus)
	for i, npu := range info.NPUs {
		prefix := "   ├─"
		if i == len(info.NPUs)-1 {
			prefix = "   └─"
		}
		fmt.Fprintf(&b, "%s npu %d: ndi id %d\n", prefix, npu, info.NdiIDs[npu])
	}
	return b.String(), nil
}

// FormatVLANList formats VLANs one per line.
func FormatVLANList(infos []vlan.Info, flags *OutputFlags) (string, error) {
	if flags.Output == OutputFormatJSON {
		return formatJSON(infos)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%-8s %-8s %-6s %-6s %-9s %-12s %s\n", "OBJECT", "SWITCH", "VLAN", "MTU", "LEARNING", "NPUS", "MEMBERS")
	for _, v := range infos {
		fmt.Fprintf(&b, "%-8d %-8d %-6d %-6d %-9s %-12s %s\n",
			v.ObjID, v.SwitchID, v.VlanID, v.MTU, onOff(!v.LearningDisabled), joinIDs(v.NPUs), joinIDs(v.Members))
	}
	return b.String(), nil
}

// FormatSwitches formats the switch topology.
func FormatSwitches(switches []manager.SwitchInfo, flags *OutputFlags) (string, error) {
	if flags.Output == OutputFormatJSON {
		return formatJSON(switches)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%-8s %s\n", "SWITCH", "NPUS")
	for _, sw := range switches {
		fmt.Fprintf(&b, "%-8d %s\n", sw.ID, joinIDs(sw.NPUs))
	}
	return b.String(), nil
}

// FormatInterfaces formats the interface registry one entry per line.
func FormatInterfaces(intfs []ifmap.Interface, flags *OutputFlags) (string, error) {
	if flags.Output == OutputFormatJSON {
		return formatJSON(intfs)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%-16s %-6s %-5s %-8s %s\n", "NAME", "TYPE", "VRF", "IFINDEX", "BINDING")
	for _, intf := range intfs {
		fmt.Fprintf(&b, "%-16s %-6s %-5d %-8d %s\n", intf.Name, typeName(intf.Type), intf.VRF, intf.IfIndex, binding(intf))
	}
	return b.String(), nil
}

func typeName(t ifmap.Type) string {
	switch t {
	case ifmap.TypePort:
		return "port"
	case ifmap.TypeVLAN:
		return "vlan"
	case ifmap.TypeLAG:
		return "lag"
	case ifmap.TypeCPU:
		return "cpu"
	}
	return t.String()
}

func binding(intf ifmap.Interface) string {
	switch {
	case intf.Port != nil:
		return fmt.Sprintf("npu %d port %d", intf.Port.NPU, intf.Port.Port)
	case intf.Type == ifmap.TypeLAG:
		return fmt.Sprintf("lag %d", intf.LagID)
	case intf.Type == ifmap.TypeVLAN:
		return fmt.Sprintf("vlan %d", intf.VlanID)
	}
	return "-"
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
