package sim_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frobware/go-nas"
	"github.com/frobware/go-nas/ndi"
	"github.com/frobware/go-nas/ndi/sim"
)

func TestDriver_VLANLifecycle(t *testing.T) {
	ctx := context.Background()
	d := sim.New()

	id, err := d.CreateVLAN(ctx, 1, &ndi.VLANAttrs{VlanID: 10, MTU: 1500, Members: []uint32{7, 3}})
	require.NoError(t, err)
	assert.Equal(t, nas.NdiObjID(1), id)

	_, err = d.CreateVLAN(ctx, 1, &ndi.VLANAttrs{VlanID: 10})
	assert.ErrorContains(t, err, "already exists")

	require.NoError(t, d.SetVLANMTU(ctx, 1, id, 9000))
	require.NoError(t, d.SetVLANLearning(ctx, 1, id, true))
	require.NoError(t, d.AddVLANMember(ctx, 1, id, 5))
	assert.Error(t, d.AddVLANMember(ctx, 1, id, 5))
	require.NoError(t, d.RemoveVLANMember(ctx, 1, id, 3))
	assert.Error(t, d.RemoveVLANMember(ctx, 1, id, 3))

	v, ok := d.LookupVLAN(1, 10)
	require.True(t, ok)
	assert.Equal(t, sim.VLAN{ID: id, VlanID: 10, MTU: 9000, LearningDisabled: true, Members: []uint32{5, 7}}, v)

	require.NoError(t, d.DeleteVLAN(ctx, 1, id))
	assert.Empty(t, d.VLANs(1))
	assert.Error(t, d.DeleteVLAN(ctx, 1, id))
	assert.Error(t, d.SetVLANMTU(ctx, 1, id, 1500))
}

func TestDriver_Faults(t *testing.T) {
	ctx := context.Background()
	d := sim.New()

	d.FailNext(ndi.OpCreateVLAN, 2)
	_, err := d.CreateVLAN(ctx, 2, &ndi.VLANAttrs{VlanID: 20})
	require.Error(t, err)
	assert.ErrorIs(t, err, sim.ErrInjected)

	var nerr *ndi.Error
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, ndi.OpCreateVLAN, nerr.Op)
	assert.Equal(t, nas.NpuID(2), nerr.NPU)

	_, err = d.CreateVLAN(ctx, 2, &ndi.VLANAttrs{VlanID: 20})
	require.NoError(t, err, "one-shot fault is consumed")

	d.FailAlways(ndi.OpDeleteVLAN, 0)
	for range 2 {
		assert.ErrorIs(t, d.DeleteVLAN(ctx, 0, 1), sim.ErrInjected)
	}
	d.ClearFaults()
	assert.NotErrorIs(t, d.DeleteVLAN(ctx, 0, 1), sim.ErrInjected)

	assert.Equal(t, []string{
		"create-vlan/2!", "create-vlan/2",
		"delete-vlan/0!", "delete-vlan/0!", "delete-vlan/0",
	}, d.CallStrings())

	d.ResetCalls()
	assert.Empty(t, d.Calls())
}

func TestDriver_IDsArePerNPUAndBounded(t *testing.T) {
	ctx := context.Background()
	d := sim.New(sim.WithMaxIDs(2))

	for _, vid := range []uint16{1, 2} {
		_, err := d.CreateVLAN(ctx, 0, &ndi.VLANAttrs{VlanID: vid})
		require.NoError(t, err)
	}
	_, err := d.CreateVLAN(ctx, 0, &ndi.VLANAttrs{VlanID: 3})
	assert.ErrorIs(t, err, nas.ErrExhausted)

	id, err := d.CreateVLAN(ctx, 1, &ndi.VLANAttrs{VlanID: 3})
	require.NoError(t, err)
	assert.Equal(t, nas.NdiObjID(1), id)
}

func TestDriver_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := sim.New().CreateVLAN(ctx, 0, &ndi.VLANAttrs{VlanID: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDriver_ConcurrentUse(t *testing.T) {
	ctx := context.Background()
	d := sim.New()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := d.CreateVLAN(ctx, nas.NpuID(i%2), &ndi.VLANAttrs{VlanID: uint16(i + 1)})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Len(t, d.VLANs(0), 4)
	assert.Len(t, d.VLANs(1), 4)
}

func TestParseFault(t *testing.T) {
	f, err := sim.ParseFault("set-vlan-mtu:1")
	require.NoError(t, err)
	assert.Equal(t, sim.Fault{Op: ndi.OpSetVLANMTU, NPU: 1}, f)

	f, err = sim.ParseFault("delete-vlan:0:always")
	require.NoError(t, err)
	assert.True(t, f.Always)

	for _, bad := range []string{"", "create-vlan", "reboot:1", "create-vlan:x", "create-vlan:1:sometimes", "a:1:2:3"} {
		_, err := sim.ParseFault(bad)
		assert.Error(t, err, bad)
	}
}
