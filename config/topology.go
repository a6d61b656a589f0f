package config

import (
	"fmt"
	"slices"

	"github.com/frobware/go-nas"
)

// SwitchConfig is one [[switch]] entry.
type SwitchConfig struct {
	ID   nas.SwitchID `toml:"id"`
	NPUs []nas.NpuID  `toml:"npus"`
}

// Topology lists the switches and the NPUs each one owns.
type Topology []SwitchConfig

// DefaultTopology is a single switch 0 owning NPU 0.
func DefaultTopology() Topology {
	return Topology{{ID: 0, NPUs: []nas.NpuID{0}}}
}

// Validate requires at least one switch, unique switch ids, at least
// one non-negative NPU per switch and each NPU owned by one switch.
func (t Topology) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("no switches configured")
	}
	switches := make(map[nas.SwitchID]bool, len(t))
	owner := make(map[nas.NpuID]nas.SwitchID)
	for _, sw := range t {
		if switches[sw.ID] {
			return fmt.Errorf("duplicate switch id %d", sw.ID)
		}
		switches[sw.ID] = true
		if len(sw.NPUs) == 0 {
			return fmt.Errorf("switch %d has no NPUs", sw.ID)
		}
		for _, npu := range sw.NPUs {
			if npu < 0 {
				return fmt.Errorf("switch %d: invalid NPU %d", sw.ID, npu)
			}
			if prev, ok := owner[npu]; ok {
				return fmt.Errorf("NPU %d is owned by switch %d and switch %d", npu, prev, sw.ID)
			}
			owner[npu] = sw.ID
		}
	}
	return nil
}

// SwitchForNPU returns the id of the switch owning npu.
func (t Topology) SwitchForNPU(npu nas.NpuID) (nas.SwitchID, bool) {
	for _, sw := range t {
		if slices.Contains(sw.NPUs, npu) {
			return sw.ID, true
		}
	}
	return 0, false
}

// Switch returns the entry with id.
func (t Topology) Switch(id nas.SwitchID) (SwitchConfig, bool) {
	i := slices.IndexFunc(t, func(sw SwitchConfig) bool { return sw.ID == id })
	if i < 0 {
		return SwitchConfig{}, false
	}
	return t[i], true
}

// NPUs returns every configured NPU, ascending.
func (t Topology) NPUs() []nas.NpuID {
	var npus []nas.NpuID
	for _, sw := range t {
		npus = append(npus, sw.NPUs...)
	}
	slices.Sort(npus)
	return npus
}
