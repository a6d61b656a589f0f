// Package sim is an in-memory ndi.Driver. It keeps a VLAN table per
// NPU, journals every call and can be told to fail specific
// operations on specific NPUs.
package sim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/frobware/go-nas"
	"github.com/frobware/go-nas/logging"
	"github.com/frobware/go-nas/ndi"
)

// ErrInjected is the cause of every injected failure.
var ErrInjected = errors.New("injected fault")

// DefaultMaxIDs bounds the NDI object ids issued per NPU.
const DefaultMaxIDs = 4096

// VLAN is the state of one VLAN in an NPU table.
type VLAN struct {
	ID               nas.NdiObjID
	VlanID           uint16
	MTU              uint32
	LearningDisabled bool
	Members          []uint32
}

// Call is one journaled driver call.
type Call struct {
	Op  ndi.Op
	NPU nas.NpuID
	Err error
}

func (c Call) String() string {
	if c.Err != nil {
		return fmt.Sprintf("%s/%d!", c.Op, c.NPU)
	}
	return fmt.Sprintf("%s/%d", c.Op, c.NPU)
}

// Fault makes Op fail on NPU, once or until cleared.
type Fault struct {
	Op     ndi.Op
	NPU    nas.NpuID
	Always bool
}

// ParseFault parses "op:npu" (one shot) or "op:npu:always".
func ParseFault(s string) (Fault, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Fault{}, fmt.Errorf("fault %q: want op:npu[:always]", s)
	}
	op, err := ndi.ParseOp(parts[0])
	if err != nil {
		return Fault{}, fmt.Errorf("fault %q: %w", s, err)
	}
	npu, err := strconv.ParseInt(parts[1], 10, 32)
	if err != nil {
		return Fault{}, fmt.Errorf("fault %q: bad npu: %w", s, err)
	}
	f := Fault{Op: op, NPU: nas.NpuID(npu)}
	if len(parts) == 3 {
		if parts[2] != "always" {
			return Fault{}, fmt.Errorf("fault %q: unknown mode %q", s, parts[2])
		}
		f.Always = true
	}
	return f, nil
}

type faultKey struct {
	op  ndi.Op
	npu nas.NpuID
}

type npuTable struct {
	ids   *nas.IDGenerator
	vlans map[nas.NdiObjID]*VLAN
}

// Driver is the simulated driver. The zero value is not usable; call
// New.
type Driver struct {
	logger *slog.Logger
	maxIDs uint64

	mu     sync.Mutex
	npus   map[nas.NpuID]*npuTable
	faults map[faultKey]bool // value is Always
	calls  []Call
}

// Option configures a Driver.
type Option func(*Driver)

// WithMaxIDs caps the NDI ids per NPU.
func WithMaxIDs(n uint64) Option {
	return func(d *Driver) { d.maxIDs = n }
}

// WithLogger logs every call at trace level.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Driver) { d.logger = logger }
}

// New returns an empty simulated driver.
func New(opts ...Option) *Driver {
	d := &Driver{
		logger: logging.Discard(),
		maxIDs: DefaultMaxIDs,
		npus:   make(map[nas.NpuID]*npuTable),
		faults: make(map[faultKey]bool),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = d.logger.With("component", "ndi")
	return d
}

// FailNext makes the next op on npu fail.
func (d *Driver) FailNext(op ndi.Op, npu nas.NpuID) {
	d.Inject(Fault{Op: op, NPU: npu})
}

// FailAlways makes every op on npu fail until ClearFaults.
func (d *Driver) FailAlways(op ndi.Op, npu nas.NpuID) {
	d.Inject(Fault{Op: op, NPU: npu, Always: true})
}

// Inject arms f.
func (d *Driver) Inject(f Fault) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.faults[faultKey{f.Op, f.NPU}] = f.Always
}

// ClearFaults disarms every fault.
func (d *Driver) ClearFaults() {
	d.mu.Lock()
	defer d.mu.Unlock()
	clear(d.faults)
}

// Calls returns the call journal.
func (d *Driver) Calls() []Call {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.calls)
}

// CallStrings returns the journal rendered as "op/npu", with a
// trailing "!" on failed calls.
func (d *Driver) CallStrings() []string {
	calls := d.Calls()
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.String()
	}
	return out
}

// ResetCalls empties the journal.
func (d *Driver) ResetCalls() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = nil
}

// VLANs returns the VLANs programmed on npu ordered by VLAN id.
func (d *Driver) VLANs(npu nas.NpuID) []VLAN {
	d.mu.Lock()
	defer d.mu.Unlock()
	tbl, ok := d.npus[npu]
	if !ok {
		return nil
	}
	out := make([]VLAN, 0, len(tbl.vlans))
	for _, v := range tbl.vlans {
		out = append(out, v.clone())
	}
	slices.SortFunc(out, func(a, b VLAN) int { return int(a.VlanID) - int(b.VlanID) })
	return out
}

// LookupVLAN returns the VLAN with the given VLAN id on npu.
func (d *Driver) LookupVLAN(npu nas.NpuID, vlanID uint16) (VLAN, bool) {
	for _, v := range d.VLANs(npu) {
		if v.VlanID == vlanID {
			return v, true
		}
	}
	return VLAN{}, false
}

func (v *VLAN) clone() VLAN {
	c := *v
	c.Members = slices.Clone(v.Members)
	return c
}

// begin journals a call and reports an injected failure. Callers hold
// d.mu.
func (d *Driver) begin(ctx context.Context, op ndi.Op, npu nas.NpuID) error {
	var err error
	if always, ok := d.faults[faultKey{op, npu}]; ok {
		if !always {
			delete(d.faults, faultKey{op, npu})
		}
		err = &ndi.Error{Op: op, NPU: npu, Err: ErrInjected}
	}
	if err == nil {
		err = ctx.Err()
	}
	d.calls = append(d.calls, Call{Op: op, NPU: npu, Err: err})
	d.logger.Log(ctx, logging.LevelTrace.ToSlog(), "call", "op", op, "npu", npu, "error", err)
	return err
}

func (d *Driver) table(npu nas.NpuID) *npuTable {
	tbl, ok := d.npus[npu]
	if !ok {
		tbl = &npuTable{
			ids:   nas.NewIDGenerator(d.maxIDs),
			vlans: make(map[nas.NdiObjID]*VLAN),
		}
		d.npus[npu] = tbl
	}
	return tbl
}

func (d *Driver) vlan(op ndi.Op, npu nas.NpuID, id nas.NdiObjID) (*VLAN, error) {
	v, ok := d.table(npu).vlans[id]
	if !ok {
		return nil, &ndi.Error{Op: op, NPU: npu, Err: fmt.Errorf("no vlan with ndi id %d", id)}
	}
	return v, nil
}

func (d *Driver) CreateVLAN(ctx context.Context, npu nas.NpuID, attrs *ndi.VLANAttrs) (nas.NdiObjID, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.begin(ctx, ndi.OpCreateVLAN, npu); err != nil {
		return 0, err
	}

	tbl := d.table(npu)
	for _, v := range tbl.vlans {
		if v.VlanID == attrs.VlanID {
			return 0, &ndi.Error{Op: ndi.OpCreateVLAN, NPU: npu, Err: fmt.Errorf("vlan %d already exists", attrs.VlanID)}
		}
	}
	raw, err := tbl.ids.Allocate()
	if err != nil {
		return 0, &ndi.Error{Op: ndi.OpCreateVLAN, NPU: npu, Err: err}
	}

	id := nas.NdiObjID(raw)
	tbl.vlans[id] = &VLAN{
		ID:               id,
		VlanID:           attrs.VlanID,
		MTU:              attrs.MTU,
		LearningDisabled: attrs.LearningDisabled,
		Members:          slices.Sorted(slices.Values(attrs.Members)),
	}
	return id, nil
}

func (d *Driver) DeleteVLAN(ctx context.Context, npu nas.NpuID, id nas.NdiObjID) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.begin(ctx, ndi.OpDeleteVLAN, npu); err != nil {
		return err
	}
	if _, err := d.vlan(ndi.OpDeleteVLAN, npu, id); err != nil {
		return err
	}
	tbl := d.table(npu)
	delete(tbl.vlans, id)
	tbl.ids.Release(uint64(id))
	return nil
}

func (d *Driver) SetVLANMTU(ctx context.Context, npu nas.NpuID, id nas.NdiObjID, mtu uint32) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.begin(ctx, ndi.OpSetVLANMTU, npu); err != nil {
		return err
	}
	v, err := d.vlan(ndi.OpSetVLANMTU, npu, id)
	if err != nil {
		return err
	}
	v.MTU = mtu
	return nil
}

func (d *Driver) SetVLANLearning(ctx context.Context, npu nas.NpuID, id nas.NdiObjID, disabled bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.begin(ctx, ndi.OpSetVLANLearning, npu); err != nil {
		return err
	}
	v, err := d.vlan(ndi.OpSetVLANLearning, npu, id)
	if err != nil {
		return err
	}
	v.LearningDisabled = disabled
	return nil
}

func (d *Driver) AddVLANMember(ctx context.Context, npu nas.NpuID, id nas.NdiObjID, port uint32) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.begin(ctx, ndi.OpAddVLANMember, npu); err != nil {
		return err
	}
	v, err := d.vlan(ndi.OpAddVLANMember, npu, id)
	if err != nil {
		return err
	}
	i, found := slices.BinarySearch(v.Members, port)
	if found {
		return &ndi.Error{Op: ndi.OpAddVLANMember, NPU: npu, Err: fmt.Errorf("port %d already a member of vlan %d", port, v.VlanID)}
	}
	v.Members = slices.Insert(v.Members, i, port)
	return nil
}

func (d *Driver) RemoveVLANMember(ctx context.Context, npu nas.NpuID, id nas.NdiObjID, port uint32) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.begin(ctx, ndi.OpRemoveVLANMember, npu); err != nil {
		return err
	}
	v, err := d.vlan(ndi.OpRemoveVLANMember, npu, id)
	if err != nil {
		return err
	}
	i, found := slices.BinarySearch(v.Members, port)
	if !found {
		return &ndi.Error{Op: ndi.OpRemoveVLANMember, NPU: npu, Err: fmt.Errorf("port %d is not a member of vlan %d", port, v.VlanID)}
	}
	v.Members = slices.Delete(v.Members, i, i+1)
	return nil
}

var _ ndi.Driver = (*Driver)(nil)
