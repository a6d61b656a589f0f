// Package object provides the building blocks of a hardware backed
// configuration object: the logical switch it belongs to, Base with
// its dirty attribute and NPU tracking, and Committer, which drives an
// object through its create, modify and delete lifecycle.
package object

import "github.com/frobware/go-nas"

// Switch is a logical switch: a fixed id and the NPUs that belong to
// it. Switch is not safe for concurrent mutation.
type Switch struct {
	id   nas.SwitchID
	npus nas.NpuSet
}

// NewSwitch returns a switch with the given NPUs.
func NewSwitch(id nas.SwitchID, npus ...nas.NpuID) *Switch {
	return &Switch{id: id, npus: nas.NewNpuSet(npus...)}
}

// ID returns the switch id.
func (s *Switch) ID() nas.SwitchID {
	return s.id
}

// AddNpu adds npu to the switch. Adding an existing NPU is a no-op.
func (s *Switch) AddNpu(npu nas.NpuID) {
	s.npus.Add(npu)
}

// NumNpus returns the number of member NPUs.
func (s *Switch) NumNpus() int {
	return s.npus.Len()
}

// ContainsNpu reports whether npu belongs to the switch.
func (s *Switch) ContainsNpu(npu nas.NpuID) bool {
	return s.npus.Contains(npu)
}

// NpuList returns a snapshot of the member NPUs.
func (s *Switch) NpuList() nas.NpuSet {
	return s.npus.Clone()
}
