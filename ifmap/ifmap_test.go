package ifmap_test

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frobware/go-nas"
	"github.com/frobware/go-nas/ifmap"
)

func port(npu nas.NpuID, p uint32) *ifmap.PortAddr {
	return &ifmap.PortAddr{NPU: npu, Port: p}
}

func newRegistry(t *testing.T) *ifmap.Registry {
	t.Helper()
	r := ifmap.New()
	require.NoError(t, r.Register(ifmap.Interface{Name: "e101-001-0", Type: ifmap.TypePort, IfIndex: 10, Port: port(0, 1), TapID: 100}))
	require.NoError(t, r.Register(ifmap.Interface{Name: "e101-002-0", Type: ifmap.TypePort, IfIndex: 11, Port: port(0, 2)}))
	require.NoError(t, r.Register(ifmap.Interface{Name: "br100", Type: ifmap.TypeVLAN, IfIndex: 10, VRF: 1, VlanID: 100}))
	return r
}

func TestLookups(t *testing.T) {
	r := newRegistry(t)

	got, ok := r.ByName("e101-002-0")
	require.True(t, ok)
	assert.Equal(t, uint32(11), got.IfIndex)

	got, ok = r.ByIfIndex(0, 10)
	require.True(t, ok)
	assert.Equal(t, "e101-001-0", got.Name)

	got, ok = r.ByIfIndex(1, 10)
	require.True(t, ok, "ifindexes are scoped by vrf")
	assert.Equal(t, "br100", got.Name)

	got, ok = r.ByPort(0, 2)
	require.True(t, ok)
	assert.Equal(t, "e101-002-0", got.Name)

	got, ok = r.ByTap(100)
	require.True(t, ok)
	assert.Equal(t, "e101-001-0", got.Name)

	_, ok = r.ByPort(1, 2)
	assert.False(t, ok)
	_, ok = r.ByName("missing")
	assert.False(t, ok)
	assert.Equal(t, 3, r.Len())
}

func TestLookupsReturnCopies(t *testing.T) {
	r := newRegistry(t)

	got, _ := r.ByName("e101-001-0")
	got.Port.Port = 99
	got.IfIndex = 99

	again, _ := r.ByPort(0, 1)
	assert.Equal(t, "e101-001-0", again.Name)
	assert.Equal(t, port(0, 1), again.Port)
	assert.Equal(t, uint32(10), again.IfIndex)
}

func TestRegister_Rejects(t *testing.T) {
	tests := []struct {
		name string
		intf ifmap.Interface
		want string
	}{
		{"no name", ifmap.Interface{Type: ifmap.TypePort}, "has no name"},
		{"no type", ifmap.Interface{Name: "x"}, "not a known type"},
		{"duplicate name", ifmap.Interface{Name: "e101-001-0", Type: ifmap.TypePort}, "already registered"},
		{"duplicate ifindex", ifmap.Interface{Name: "x", Type: ifmap.TypePort, IfIndex: 11}, "belongs to e101-002-0"},
		{"duplicate port", ifmap.Interface{Name: "x", Type: ifmap.TypePort, Port: port(0, 1)}, "belongs to e101-001-0"},
		{"duplicate tap", ifmap.Interface{Name: "x", Type: ifmap.TypePort, TapID: 100}, "belongs to e101-001-0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRegistry(t)
			err := r.Register(tt.intf)
			require.Error(t, err)
			assert.ErrorIs(t, err, nas.ErrInvalidParameter)
			assert.ErrorContains(t, err, tt.want)
			assert.Equal(t, 3, r.Len(), "a rejected entry adds nothing")
		})
	}
}

func TestRegister_CollisionLeavesOtherKeysFree(t *testing.T) {
	r := newRegistry(t)

	// The port collides, so the fresh ifindex must not be taken either.
	err := r.Register(ifmap.Interface{Name: "x", Type: ifmap.TypePort, IfIndex: 50, Port: port(0, 2)})
	require.Error(t, err)
	_, ok := r.ByIfIndex(0, 50)
	assert.False(t, ok)
	require.NoError(t, r.Register(ifmap.Interface{Name: "y", Type: ifmap.TypePort, IfIndex: 50}))
}

func TestUnregister(t *testing.T) {
	r := newRegistry(t)

	require.NoError(t, r.Unregister("e101-001-0"))
	_, ok := r.ByIfIndex(0, 10)
	assert.False(t, ok)
	_, ok = r.ByPort(0, 1)
	assert.False(t, ok)
	_, ok = r.ByTap(100)
	assert.False(t, ok)

	// Its keys are free again.
	require.NoError(t, r.Register(ifmap.Interface{Name: "e101-001-1", Type: ifmap.TypePort, IfIndex: 10, Port: port(0, 1), TapID: 100}))

	assert.ErrorIs(t, r.Unregister("e101-001-0"), nas.ErrInvalidParameter)
}

func TestAll_SortedByName(t *testing.T) {
	var names []string
	for _, intf := range newRegistry(t).All() {
		names = append(names, intf.Name)
	}
	assert.Equal(t, []string{"br100", "e101-001-0", "e101-002-0"}, names)
	assert.Empty(t, ifmap.New().All())
}

func TestPortOn(t *testing.T) {
	r := newRegistry(t)

	addr, err := r.PortOn("e101-002-0")
	require.NoError(t, err)
	assert.Equal(t, ifmap.PortAddr{NPU: 0, Port: 2}, addr)

	_, err = r.PortOn("br100")
	assert.ErrorIs(t, err, nas.ErrInvalidParameter)
	assert.ErrorContains(t, err, "has no port")

	_, err = r.PortOn("nope")
	assert.ErrorContains(t, err, "is not registered")
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in   string
		want ifmap.Type
	}{
		{"port", ifmap.TypePort},
		{"lag", ifmap.TypeLAG},
		{"ianaift:l2vlan", ifmap.TypeVLAN},
		{"base-if:cpu", ifmap.TypeCPU},
	}
	for _, tt := range tests {
		got, err := ifmap.ParseType(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
	_, err := ifmap.ParseType("loopback")
	assert.ErrorIs(t, err, nas.ErrInvalidParameter)
}

func TestType_JSON(t *testing.T) {
	b, err := json.Marshal(ifmap.Interface{Name: "bond0", Type: ifmap.TypeLAG, LagID: 7})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"bond0","type":"ianaift:ieee8023adLag","lag_id":7}`, string(b))

	var back ifmap.Interface
	require.NoError(t, json.Unmarshal([]byte(`{"name":"c","type":"cpu"}`), &back))
	assert.Equal(t, ifmap.TypeCPU, back.Type)

	_, err = json.Marshal(ifmap.Interface{Name: "z"})
	assert.Error(t, err, "an unset type does not encode")
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	r := ifmap.New()
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := "e" + string(rune('a'+i%26)) + string(rune('a'+i/26))
			assert.NoError(t, r.Register(ifmap.Interface{Name: name, Type: ifmap.TypePort, Port: port(0, uint32(i))}))
			_, _ = r.ByPort(0, uint32(i))
			_ = r.All()
		}()
	}
	wg.Wait()
	assert.Equal(t, 32, r.Len())
}
