// Package ifmap is the interface registry. It maps interface names,
// kernel ifindexes, NPU ports and tap ids onto one another so callers
// can name VLAN members by interface rather than by raw port.
package ifmap

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/frobware/go-nas"
)

// Type is the kind of an interface, named after its IETF identity.
type Type int

const (
	TypePort Type = iota + 1
	TypeVLAN
	TypeLAG
	TypeCPU
)

var typeNames = map[Type]string{
	TypePort: "ianaift:ethernetCsmacd",
	TypeVLAN: "ianaift:l2vlan",
	TypeLAG:  "ianaift:ieee8023adLag",
	TypeCPU:  "base-if:cpu",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// MarshalText encodes t as its IETF identity.
func (t Type) MarshalText() ([]byte, error) {
	if _, ok := typeNames[t]; !ok {
		return nil, fmt.Errorf("unknown interface type %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText accepts anything ParseType does.
func (t *Type) UnmarshalText(b []byte) error {
	parsed, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseType accepts the IETF identity or its short form ("port",
// "vlan", "lag", "cpu").
func ParseType(s string) (Type, error) {
	switch s {
	case "port":
		return TypePort, nil
	case "vlan":
		return TypeVLAN, nil
	case "lag":
		return TypeLAG, nil
	case "cpu":
		return TypeCPU, nil
	}
	for t, name := range typeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, nas.Errorf(nas.CodeInvalidParameter, "parse interface type", "unknown interface type %q", s)
}

// PortAddr is a physical port on an NPU.
type PortAddr struct {
	NPU  nas.NpuID `json:"npu"`
	Port uint32    `json:"port"`
}

// Interface is one registered interface. A zero IfIndex or TapID
// means the interface has none; Port is nil for interfaces that are
// not backed by a front panel port.
type Interface struct {
	Name    string    `json:"name"`
	Type    Type      `json:"type"`
	VRF     uint32    `json:"vrf,omitempty"`
	IfIndex uint32    `json:"ifindex,omitempty"`
	Port    *PortAddr `json:"port,omitempty"`
	TapID   uint32    `json:"tap_id,omitempty"`
	VlanID  uint16    `json:"vlan_id,omitempty"`
	LagID   uint32    `json:"lag_id,omitempty"`
}

type indexKey struct {
	vrf     uint32
	ifindex uint32
}

// Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]*Interface
	byIndex map[indexKey]*Interface
	byPort  map[PortAddr]*Interface
	byTap   map[uint32]*Interface
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		byName:  make(map[string]*Interface),
		byIndex: make(map[indexKey]*Interface),
		byPort:  make(map[PortAddr]*Interface),
		byTap:   make(map[uint32]*Interface),
	}
}

// Register adds intf. Every key it carries must be unused; nothing is
// added when any of them collides.
func (r *Registry) Register(intf Interface) error {
	const op = "register interface"
	if intf.Name == "" {
		return nas.Errorf(nas.CodeInvalidParameter, op, "interface has no name")
	}
	if _, ok := typeNames[intf.Type]; !ok {
		return nas.Errorf(nas.CodeInvalidParameter, op, "%s: %s is not a known type", intf.Name, intf.Type)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.byName[intf.Name]; dup {
		return nas.Errorf(nas.CodeInvalidParameter, op, "interface %s is already registered", intf.Name)
	}
	if intf.IfIndex != 0 {
		if other, dup := r.byIndex[indexKey{intf.VRF, intf.IfIndex}]; dup {
			return nas.Errorf(nas.CodeInvalidParameter, op, "%s: ifindex %d in vrf %d belongs to %s", intf.Name, intf.IfIndex, intf.VRF, other.Name)
		}
	}
	if intf.Port != nil {
		if other, dup := r.byPort[*intf.Port]; dup {
			return nas.Errorf(nas.CodeInvalidParameter, op, "%s: npu %d port %d belongs to %s", intf.Name, intf.Port.NPU, intf.Port.Port, other.Name)
		}
	}
	if intf.TapID != 0 {
		if other, dup := r.byTap[intf.TapID]; dup {
			return nas.Errorf(nas.CodeInvalidParameter, op, "%s: tap %d belongs to %s", intf.Name, intf.TapID, other.Name)
		}
	}

	stored := intf
	if intf.Port != nil {
		p := *intf.Port
		stored.Port = &p
	}
	r.byName[stored.Name] = &stored
	if stored.IfIndex != 0 {
		r.byIndex[indexKey{stored.VRF, stored.IfIndex}] = &stored
	}
	if stored.Port != nil {
		r.byPort[*stored.Port] = &stored
	}
	if stored.TapID != 0 {
		r.byTap[stored.TapID] = &stored
	}
	return nil
}

// Unregister removes the interface called name and every key it
// was reachable by.
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	intf, ok := r.byName[name]
	if !ok {
		return nas.Errorf(nas.CodeInvalidParameter, "unregister interface", "interface %s is not registered", name)
	}
	delete(r.byName, name)
	if intf.IfIndex != 0 {
		delete(r.byIndex, indexKey{intf.VRF, intf.IfIndex})
	}
	if intf.Port != nil {
		delete(r.byPort, *intf.Port)
	}
	if intf.TapID != 0 {
		delete(r.byTap, intf.TapID)
	}
	return nil
}

func found(intf *Interface, ok bool) (Interface, bool) {
	if !ok {
		return Interface{}, false
	}
	out := *intf
	if intf.Port != nil {
		p := *intf.Port
		out.Port = &p
	}
	return out, true
}

// ByName returns the interface called name.
func (r *Registry) ByName(name string) (Interface, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	intf, ok := r.byName[name]
	return found(intf, ok)
}

// ByIfIndex returns the interface with ifindex in vrf.
func (r *Registry) ByIfIndex(vrf, ifindex uint32) (Interface, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	intf, ok := r.byIndex[indexKey{vrf, ifindex}]
	return found(intf, ok)
}

// ByPort returns the interface on port of npu.
func (r *Registry) ByPort(npu nas.NpuID, port uint32) (Interface, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	intf, ok := r.byPort[PortAddr{NPU: npu, Port: port}]
	return found(intf, ok)
}

// ByTap returns the interface with tap id.
func (r *Registry) ByTap(tap uint32) (Interface, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	intf, ok := r.byTap[tap]
	return found(intf, ok)
}

// Len returns the number of registered interfaces.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}

// All returns every interface ordered by name.
func (r *Registry) All() []Interface {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Interface, 0, len(r.byName))
	for _, intf := range r.byName {
		got, _ := found(intf, true)
		out = append(out, got)
	}
	slices.SortFunc(out, func(a, b Interface) int { return cmp.Compare(a.Name, b.Name) })
	return out
}

// PortOn resolves name to the port it sits on. Only port interfaces
// can be VLAN members.
func (r *Registry) PortOn(name string) (PortAddr, error) {
	intf, ok := r.ByName(name)
	if !ok {
		return PortAddr{}, nas.Errorf(nas.CodeInvalidParameter, "resolve interface", "interface %s is not registered", name)
	}
	if intf.Port == nil {
		return PortAddr{}, nas.Errorf(nas.CodeInvalidParameter, "resolve interface", "interface %s (%s) has no port", name, intf.Type)
	}
	return *intf.Port, nil
}
