// Package linuxbr is an ndi.Driver that programs Linux bridges over
// netlink. Every NPU maps to one VLAN-filtering bridge, optionally in
// its own network namespace.
//
// A VLAN on an NPU is a VLAN sub-interface {bridge}.{vid} on top of
// the bridge; its ifindex is the NDI object id. Member ports are
// ifindexes of bridge ports in the same namespace. Linux bridges learn
// per port, so a VLAN with learning disabled turns learning off on its
// member ports.
package linuxbr

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/vishvananda/netlink"

	"github.com/frobware/go-nas"
	"github.com/frobware/go-nas/logging"
	"github.com/frobware/go-nas/ndi"
	"github.com/frobware/go-nas/netns"
)

// maxBridgeName leaves room for ".4094" within IFNAMSIZ.
const maxBridgeName = 10

// Target is where one NPU lives.
type Target struct {
	// Netns is a network namespace path. Empty means the caller's.
	Netns  string
	Bridge string
}

// Targets maps each NPU n to bridge {prefix}{n}, inside
// {netnsDir}/npu{n} when netnsDir is set.
func Targets(npus []nas.NpuID, prefix, netnsDir string) map[nas.NpuID]Target {
	targets := make(map[nas.NpuID]Target, len(npus))
	for _, npu := range npus {
		t := Target{Bridge: fmt.Sprintf("%s%d", prefix, npu)}
		if netnsDir != "" {
			t.Netns = fmt.Sprintf("%s/npu%d", netnsDir, npu)
		}
		targets[npu] = t
	}
	return targets
}

type entry struct {
	vid              uint16
	learningDisabled bool
	members          []uint32 // sorted
}

// Driver is the Linux bridge driver.
type Driver struct {
	targets map[nas.NpuID]Target
	logger  *slog.Logger

	mu    sync.Mutex
	vlans map[nas.NpuID]map[nas.NdiObjID]*entry
}

var _ ndi.Driver = (*Driver)(nil)

// New checks that every target names a usable bridge and namespace.
// Bridges are looked up on each call, not cached.
func New(targets map[nas.NpuID]Target, logger *slog.Logger) (*Driver, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	logger = logger.With("component", "ndi")
	for npu, t := range targets {
		if t.Bridge == "" || len(t.Bridge) > maxBridgeName {
			return nil, fmt.Errorf("npu %d: bridge name %q must be 1..%d characters", npu, t.Bridge, maxBridgeName)
		}
		ino, err := netns.Inode(t.Netns)
		if err != nil {
			return nil, fmt.Errorf("npu %d: %w", npu, err)
		}
		logger.Debug("npu target", "npu", npu, "bridge", t.Bridge, "netns", t.Netns, "netns_inode", ino)
	}
	return &Driver{
		targets: targets,
		logger:  logger,
		vlans:   make(map[nas.NpuID]map[nas.NdiObjID]*entry),
	}, nil
}

// do runs fn against npu's bridge inside its namespace. Callers hold
// d.mu.
func (d *Driver) do(ctx context.Context, op ndi.Op, npu nas.NpuID, fn func(br netlink.Link) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t, ok := d.targets[npu]
	if !ok {
		return &ndi.Error{Op: op, NPU: npu, Err: fmt.Errorf("npu is not configured")}
	}
	err := netns.Run(t.Netns, func() error {
		br, err := netlink.LinkByName(t.Bridge)
		if err != nil {
			return fmt.Errorf("bridge %s: %w", t.Bridge, err)
		}
		return fn(br)
	})
	d.logger.Log(ctx, logging.LevelTrace.ToSlog(), "call", "op", op, "npu", npu, "bridge", t.Bridge, "error", err)
	if err != nil {
		return &ndi.Error{Op: op, NPU: npu, Err: err}
	}
	return nil
}

func (d *Driver) lookup(op ndi.Op, npu nas.NpuID, id nas.NdiObjID) (*entry, error) {
	e, ok := d.vlans[npu][id]
	if !ok {
		return nil, &ndi.Error{Op: op, NPU: npu, Err: fmt.Errorf("no vlan with ndi id %d", id)}
	}
	return e, nil
}

func vlanName(br netlink.Link, vid uint16) string {
	return fmt.Sprintf("%s.%d", br.Attrs().Name, vid)
}

func addPort(port uint32, vid uint16, learningDisabled bool) error {
	link, err := netlink.LinkByIndex(int(port))
	if err != nil {
		return fmt.Errorf("port %d: %w", port, err)
	}
	if err := netlink.BridgeVlanAdd(link, vid, false, false, false, true); err != nil {
		return fmt.Errorf("port %d: add vlan %d: %w", port, vid, err)
	}
	if learningDisabled {
		if err := netlink.LinkSetLearning(link, false); err != nil {
			return fmt.Errorf("port %d: disable learning: %w", port, err)
		}
	}
	return nil
}

func removePort(port uint32, vid uint16, learningDisabled bool) error {
	link, err := netlink.LinkByIndex(int(port))
	if err != nil {
		return fmt.Errorf("port %d: %w", port, err)
	}
	if err := netlink.BridgeVlanDel(link, vid, false, false, false, true); err != nil {
		return fmt.Errorf("port %d: delete vlan %d: %w", port, vid, err)
	}
	if learningDisabled {
		if err := netlink.LinkSetLearning(link, true); err != nil {
			return fmt.Errorf("port %d: enable learning: %w", port, err)
		}
	}
	return nil
}

// CreateVLAN adds the VLAN to the bridge, creates its sub-interface
// and adds every member. A partial create is undone before returning.
func (d *Driver) CreateVLAN(ctx context.Context, npu nas.NpuID, attrs *ndi.VLANAttrs) (nas.NdiObjID, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	members := slices.Compact(slices.Sorted(slices.Values(attrs.Members)))
	var id nas.NdiObjID
	err := d.do(ctx, ndi.OpCreateVLAN, npu, func(br netlink.Link) (err error) {
		var undo []func()
		defer func() {
			if err != nil {
				for _, fn := range slices.Backward(undo) {
					fn()
				}
			}
		}()

		if err := netlink.BridgeVlanAdd(br, attrs.VlanID, false, false, true, false); err != nil {
			return fmt.Errorf("bridge vlan %d: %w", attrs.VlanID, err)
		}
		undo = append(undo, func() { netlink.BridgeVlanDel(br, attrs.VlanID, false, false, true, false) })

		name := vlanName(br, attrs.VlanID)
		link := &netlink.Vlan{
			LinkAttrs: netlink.LinkAttrs{Name: name, ParentIndex: br.Attrs().Index, MTU: int(attrs.MTU)},
			VlanId:    int(attrs.VlanID),
		}
		if err := netlink.LinkAdd(link); err != nil {
			return fmt.Errorf("add %s: %w", name, err)
		}
		undo = append(undo, func() { netlink.LinkDel(link) })

		created, err := netlink.LinkByName(name)
		if err != nil {
			return fmt.Errorf("lookup %s: %w", name, err)
		}
		if err := netlink.LinkSetUp(created); err != nil {
			return fmt.Errorf("up %s: %w", name, err)
		}

		for _, port := range members {
			if err := addPort(port, attrs.VlanID, attrs.LearningDisabled); err != nil {
				return err
			}
			undo = append(undo, func() { removePort(port, attrs.VlanID, attrs.LearningDisabled) })
		}
		id = nas.NdiObjID(created.Attrs().Index)
		return nil
	})
	if err != nil {
		return 0, err
	}

	if d.vlans[npu] == nil {
		d.vlans[npu] = make(map[nas.NdiObjID]*entry)
	}
	d.vlans[npu][id] = &entry{vid: attrs.VlanID, learningDisabled: attrs.LearningDisabled, members: members}
	return id, nil
}

// DeleteVLAN removes the members, the sub-interface and the bridge
// VLAN, in that order.
func (d *Driver) DeleteVLAN(ctx context.Context, npu nas.NpuID, id nas.NdiObjID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	e, err := d.lookup(ndi.OpDeleteVLAN, npu, id)
	if err != nil {
		return err
	}
	err = d.do(ctx, ndi.OpDeleteVLAN, npu, func(br netlink.Link) error {
		for _, port := range e.members {
			if err := removePort(port, e.vid, e.learningDisabled); err != nil {
				return err
			}
		}
		link, err := netlink.LinkByIndex(int(id))
		if err != nil {
			return fmt.Errorf("vlan link %d: %w", id, err)
		}
		if err := netlink.LinkDel(link); err != nil {
			return fmt.Errorf("delete %s: %w", link.Attrs().Name, err)
		}
		if err := netlink.BridgeVlanDel(br, e.vid, false, false, true, false); err != nil {
			return fmt.Errorf("bridge vlan %d: %w", e.vid, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	delete(d.vlans[npu], id)
	return nil
}

func (d *Driver) SetVLANMTU(ctx context.Context, npu nas.NpuID, id nas.NdiObjID, mtu uint32) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, err := d.lookup(ndi.OpSetVLANMTU, npu, id); err != nil {
		return err
	}
	return d.do(ctx, ndi.OpSetVLANMTU, npu, func(netlink.Link) error {
		link, err := netlink.LinkByIndex(int(id))
		if err != nil {
			return fmt.Errorf("vlan link %d: %w", id, err)
		}
		return netlink.LinkSetMTU(link, int(mtu))
	})
}

func (d *Driver) SetVLANLearning(ctx context.Context, npu nas.NpuID, id nas.NdiObjID, disabled bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	e, err := d.lookup(ndi.OpSetVLANLearning, npu, id)
	if err != nil {
		return err
	}
	err = d.do(ctx, ndi.OpSetVLANLearning, npu, func(netlink.Link) error {
		for _, port := range e.members {
			link, err := netlink.LinkByIndex(int(port))
			if err != nil {
				return fmt.Errorf("port %d: %w", port, err)
			}
			if err := netlink.LinkSetLearning(link, !disabled); err != nil {
				return fmt.Errorf("port %d: set learning: %w", port, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	e.learningDisabled = disabled
	return nil
}

func (d *Driver) AddVLANMember(ctx context.Context, npu nas.NpuID, id nas.NdiObjID, port uint32) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	e, err := d.lookup(ndi.OpAddVLANMember, npu, id)
	if err != nil {
		return err
	}
	i, found := slices.BinarySearch(e.members, port)
	if found {
		return &ndi.Error{Op: ndi.OpAddVLANMember, NPU: npu, Err: fmt.Errorf("port %d is already a member", port)}
	}
	if err := d.do(ctx, ndi.OpAddVLANMember, npu, func(netlink.Link) error {
		return addPort(port, e.vid, e.learningDisabled)
	}); err != nil {
		return err
	}
	e.members = slices.Insert(e.members, i, port)
	return nil
}

func (d *Driver) RemoveVLANMember(ctx context.Context, npu nas.NpuID, id nas.NdiObjID, port uint32) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	e, err := d.lookup(ndi.OpRemoveVLANMember, npu, id)
	if err != nil {
		return err
	}
	i, found := slices.BinarySearch(e.members, port)
	if !found {
		return &ndi.Error{Op: ndi.OpRemoveVLANMember, NPU: npu, Err: fmt.Errorf("port %d is not a member", port)}
	}
	if err := d.do(ctx, ndi.OpRemoveVLANMember, npu, func(netlink.Link) error {
		return removePort(port, e.vid, e.learningDisabled)
	}); err != nil {
		return err
	}
	e.members = slices.Delete(e.members, i, i+1)
	return nil
}
