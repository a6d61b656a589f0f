package config

import (
	"fmt"

	"github.com/frobware/go-nas"
	"github.com/frobware/go-nas/ifmap"
)

// InterfaceConfig is one [[interface]] entry. NPU and Port go
// together; an entry with neither is not backed by a port.
type InterfaceConfig struct {
	Name    string     `toml:"name"`
	Type    ifmap.Type `toml:"type"`
	VRF     uint32     `toml:"vrf"`
	IfIndex uint32     `toml:"ifindex"`
	NPU     *nas.NpuID `toml:"npu"`
	Port    *uint32    `toml:"port"`
	TapID   uint32     `toml:"tap_id"`
	VlanID  uint16     `toml:"vlan_id"`
	LagID   uint32     `toml:"lag_id"`
}

// Interfaces lists the configured interfaces.
type Interfaces []InterfaceConfig

// Registry registers every entry in a fresh registry. An entry without
// a type is a port. Port-backed entries must sit on an NPU of
// topology.
func (ic Interfaces) Registry(topology Topology) (*ifmap.Registry, error) {
	reg := ifmap.New()
	for i, c := range ic {
		intf := ifmap.Interface{
			Name:    c.Name,
			Type:    c.Type,
			VRF:     c.VRF,
			IfIndex: c.IfIndex,
			TapID:   c.TapID,
			VlanID:  c.VlanID,
			LagID:   c.LagID,
		}
		if intf.Type == 0 {
			intf.Type = ifmap.TypePort
		}
		switch {
		case c.NPU != nil && c.Port != nil:
			if _, ok := topology.SwitchForNPU(*c.NPU); !ok {
				return nil, fmt.Errorf("entry %d (%s): npu %d is not configured", i, c.Name, *c.NPU)
			}
			intf.Port = &ifmap.PortAddr{NPU: *c.NPU, Port: *c.Port}
		case c.NPU != nil || c.Port != nil:
			return nil, fmt.Errorf("entry %d (%s): npu and port must be set together", i, c.Name)
		}
		if err := reg.Register(intf); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return reg, nil
}
