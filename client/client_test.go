package client_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frobware/go-nas"
	"github.com/frobware/go-nas/client"
	"github.com/frobware/go-nas/config"
	"github.com/frobware/go-nas/ifmap"
	"github.com/frobware/go-nas/lock"
	"github.com/frobware/go-nas/manager"
	"github.com/frobware/go-nas/ndi"
	"github.com/frobware/go-nas/ndi/sim"
	"github.com/frobware/go-nas/store"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Runtime.Dir = t.TempDir()
	cfg.Switches = config.Topology{{ID: 0, NPUs: []nas.NpuID{0, 1}}}
	return cfg
}

// holdWriterLock takes the writer lock of cfg's runtime tree and holds
// it until the test ends.
func holdWriterLock(t *testing.T, cfg config.Config) lock.WriterScope {
	t.Helper()
	dirs, err := cfg.RuntimeDirs()
	require.NoError(t, err)
	require.NoError(t, dirs.EnsureDirectories())

	scopes := make(chan lock.WriterScope)
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- lock.Run(context.Background(), dirs.Lock(), func(_ context.Context, scope lock.WriterScope) error {
			scopes <- scope
			<-release
			return nil
		})
	}()
	select {
	case scope := <-scopes:
		t.Cleanup(func() {
			close(release)
			require.NoError(t, <-done)
		})
		return scope
	case err := <-done:
		t.Fatalf("failed to take writer lock: %v", err)
		return nil
	}
}

func TestOpen_NeedsWriterScope(t *testing.T) {
	_, err := client.Open(context.Background(), nil, client.WithConfig(testConfig(t)))
	assert.ErrorIs(t, err, nas.ErrInvalidState)
}

func TestOpen_CreateListDelete(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	c, err := client.Open(ctx, holdWriterLock(t, cfg), client.WithConfig(cfg))
	require.NoError(t, err)
	defer c.Close()

	sw, err := c.Switches(ctx)
	require.NoError(t, err)
	require.Len(t, sw, 1)
	assert.Equal(t, []nas.NpuID{0, 1}, sw[0].NPUs)

	info, err := c.CreateVLAN(ctx, manager.VLANSpec{VlanID: 5, Members: []uint32{2}})
	require.NoError(t, err)

	got, err := c.LookupVLAN(ctx, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, info, got)

	require.NoError(t, c.DeleteVLAN(ctx, info.ObjID))
	list, err := c.ListVLANs(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestOpen_StateSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	scope := holdWriterLock(t, cfg)

	c, err := client.Open(ctx, scope, client.WithConfig(cfg))
	require.NoError(t, err)
	info, err := c.CreateVLAN(ctx, manager.VLANSpec{VlanID: 7, MTU: 9000})
	require.NoError(t, err)
	require.NoError(t, c.Close())

	driver := sim.New()
	c, err = client.Open(ctx, scope, client.WithConfig(cfg), client.WithDriver(driver))
	require.NoError(t, err)
	defer c.Close()

	got, err := c.GetVLAN(ctx, info.ObjID)
	require.NoError(t, err)
	assert.Equal(t, uint32(9000), got.MTU)
	for _, npu := range []nas.NpuID{0, 1} {
		hw, ok := driver.LookupVLAN(npu, 7)
		require.True(t, ok, "npu %d", npu)
		assert.Equal(t, uint32(9000), hw.MTU)
	}
}

func TestOpen_ErrorsKeepTheirClass(t *testing.T) {
	ctx := context.Background()
	driver := sim.New()
	cfg := testConfig(t)
	c, err := client.Open(ctx, holdWriterLock(t, cfg), client.WithConfig(cfg), client.WithDriver(driver))
	require.NoError(t, err)
	defer c.Close()

	_, err = c.GetVLAN(ctx, 42)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = c.CreateVLAN(ctx, manager.VLANSpec{VlanID: 0})
	assert.ErrorIs(t, err, nas.ErrInvalidParameter)

	_, err = c.CreateVLAN(ctx, manager.VLANSpec{SwitchID: 9, VlanID: 1})
	assert.ErrorIs(t, err, nas.ErrInvalidParameter)

	driver.FailNext(ndi.OpCreateVLAN, 1)
	_, err = c.CreateVLAN(ctx, manager.VLANSpec{VlanID: 3})
	assert.ErrorIs(t, err, nas.ErrHardwareFailure)

	_, ok := driver.LookupVLAN(0, 3)
	assert.False(t, ok, "rolled back on npu 0")
}

func TestOpen_InterfacesFromConfig(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	npu, port := nas.NpuID(1), uint32(4)
	cfg.Interfaces = config.Interfaces{
		{Name: "e101-004-0", NPU: &npu, Port: &port, IfIndex: 40},
		{Name: "cpu0", Type: ifmap.TypeCPU},
	}
	c, err := client.Open(ctx, holdWriterLock(t, cfg), client.WithConfig(cfg))
	require.NoError(t, err)
	defer c.Close()

	intfs, err := c.Interfaces(ctx)
	require.NoError(t, err)
	require.Len(t, intfs, 2)
	assert.Equal(t, "cpu0", intfs[0].Name)
	assert.Equal(t, ifmap.TypeCPU, intfs[0].Type)
	assert.Equal(t, ifmap.Interface{
		Name:    "e101-004-0",
		Type:    ifmap.TypePort,
		IfIndex: 40,
		Port:    &ifmap.PortAddr{NPU: 1, Port: 4},
	}, intfs[1])

	_, err = c.CreateVLAN(ctx, manager.VLANSpec{VlanID: 9, Members: []uint32{5}})
	assert.ErrorIs(t, err, nas.ErrInvalidParameter)
	info, err := c.CreateVLAN(ctx, manager.VLANSpec{VlanID: 9, Members: []uint32{4}})
	require.NoError(t, err)
	assert.Equal(t, []uint32{4}, info.Members)
}
