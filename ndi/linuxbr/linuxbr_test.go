package linuxbr_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishvananda/netlink"

	"github.com/frobware/go-nas"
	"github.com/frobware/go-nas/ndi"
	"github.com/frobware/go-nas/ndi/linuxbr"
)

func TestTargets(t *testing.T) {
	got := linuxbr.Targets([]nas.NpuID{0, 3}, "nasbr", "/run/netns")
	assert.Equal(t, map[nas.NpuID]linuxbr.Target{
		0: {Netns: "/run/netns/npu0", Bridge: "nasbr0"},
		3: {Netns: "/run/netns/npu3", Bridge: "nasbr3"},
	}, got)

	got = linuxbr.Targets([]nas.NpuID{1}, "br", "")
	assert.Equal(t, linuxbr.Target{Bridge: "br1"}, got[1])
}

func TestNew_RejectsBadTargets(t *testing.T) {
	_, err := linuxbr.New(map[nas.NpuID]linuxbr.Target{0: {Bridge: "a-very-long-bridge"}}, nil)
	assert.ErrorContains(t, err, "bridge name")

	_, err = linuxbr.New(map[nas.NpuID]linuxbr.Target{0: {Bridge: ""}}, nil)
	assert.ErrorContains(t, err, "bridge name")

	_, err = linuxbr.New(map[nas.NpuID]linuxbr.Target{
		0: {Bridge: "br0", Netns: filepath.Join(t.TempDir(), "npu0")},
	}, nil)
	assert.ErrorContains(t, err, "npu 0")
}

func TestCalls_FailAsDriverErrors(t *testing.T) {
	d, err := linuxbr.New(map[nas.NpuID]linuxbr.Target{0: {Bridge: "nasnone0"}}, nil)
	require.NoError(t, err)
	ctx := context.Background()
	attrs := &ndi.VLANAttrs{VlanID: 10, MTU: 1500}

	var ndiErr *ndi.Error

	_, err = d.CreateVLAN(ctx, 7, attrs)
	require.ErrorAs(t, err, &ndiErr)
	assert.Equal(t, nas.NpuID(7), ndiErr.NPU)
	assert.Equal(t, ndi.OpCreateVLAN, ndiErr.Op)

	_, err = d.CreateVLAN(ctx, 0, attrs)
	require.ErrorAs(t, err, &ndiErr, "missing bridge")
	assert.ErrorContains(t, err, "nasnone0")

	err = d.SetVLANMTU(ctx, 0, 42, 9000)
	require.ErrorAs(t, err, &ndiErr, "unknown ndi id")
	assert.Equal(t, ndi.OpSetVLANMTU, ndiErr.Op)

	assert.ErrorAs(t, d.DeleteVLAN(ctx, 0, 42), &ndiErr)
	assert.ErrorAs(t, d.SetVLANLearning(ctx, 0, 42, true), &ndiErr)
	assert.ErrorAs(t, d.AddVLANMember(ctx, 0, 42, 1), &ndiErr)
	assert.ErrorAs(t, d.RemoveVLANMember(ctx, 0, 42, 1), &ndiErr)
}

func TestCreateVLAN_CancelledContext(t *testing.T) {
	d, err := linuxbr.New(map[nas.NpuID]linuxbr.Target{0: {Bridge: "nasnone0"}}, nil)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = d.CreateVLAN(ctx, 0, &ndi.VLANAttrs{VlanID: 10, MTU: 1500})
	assert.ErrorIs(t, err, context.Canceled)
}

// The remaining test changes links in the current namespace.
func requireNetlink(t *testing.T) {
	t.Helper()
	if os.Geteuid() != 0 || os.Getenv("NAS_NETLINK_TEST") == "" {
		t.Skip("needs root and NAS_NETLINK_TEST=1")
	}
}

func addLink(t *testing.T, link netlink.Link) netlink.Link {
	t.Helper()
	require.NoError(t, netlink.LinkAdd(link))
	t.Cleanup(func() { netlink.LinkDel(link) })
	got, err := netlink.LinkByName(link.Attrs().Name)
	require.NoError(t, err)
	require.NoError(t, netlink.LinkSetUp(got))
	return got
}

func learning(t *testing.T, link netlink.Link) bool {
	t.Helper()
	pi, err := netlink.LinkGetProtinfo(link)
	require.NoError(t, err)
	return pi.Learning
}

func TestVLANLifecycle_Netlink(t *testing.T) {
	requireNetlink(t)

	filtering := true
	br := addLink(t, &netlink.Bridge{LinkAttrs: netlink.LinkAttrs{Name: "nastest0"}, VlanFiltering: &filtering})
	port := addLink(t, &netlink.Dummy{LinkAttrs: netlink.LinkAttrs{Name: "nastestp0", MasterIndex: br.Attrs().Index}})

	d, err := linuxbr.New(map[nas.NpuID]linuxbr.Target{0: {Bridge: "nastest0"}}, nil)
	require.NoError(t, err)
	ctx := context.Background()

	id, err := d.CreateVLAN(ctx, 0, &ndi.VLANAttrs{
		VlanID:           100,
		MTU:              1400,
		LearningDisabled: true,
		Members:          []uint32{uint32(port.Attrs().Index)},
	})
	require.NoError(t, err)

	sub, err := netlink.LinkByName("nastest0.100")
	require.NoError(t, err)
	assert.Equal(t, int(id), sub.Attrs().Index)
	assert.Equal(t, 1400, sub.Attrs().MTU)
	assert.False(t, learning(t, port))

	require.NoError(t, d.SetVLANMTU(ctx, 0, id, 1300))
	sub, err = netlink.LinkByIndex(int(id))
	require.NoError(t, err)
	assert.Equal(t, 1300, sub.Attrs().MTU)

	require.NoError(t, d.SetVLANLearning(ctx, 0, id, false))
	assert.True(t, learning(t, port))

	require.NoError(t, d.RemoveVLANMember(ctx, 0, id, uint32(port.Attrs().Index)))
	require.NoError(t, d.AddVLANMember(ctx, 0, id, uint32(port.Attrs().Index)))

	require.NoError(t, d.DeleteVLAN(ctx, 0, id))
	_, err = netlink.LinkByName("nastest0.100")
	assert.Error(t, err)
}
