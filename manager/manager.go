// Package manager owns the live configuration objects of a nas
// instance and keeps hardware and the store in step.
//
// # Commit Model
//
// Every mutation runs in two phases:
//
//  1. Commit to hardware through the object committer. A failure
//     here is rolled back by the commit engine and nothing is
//     persisted.
//  2. Persist the committed object in a single store transaction. If
//     this fails the hardware change is reverted with a rolling-back
//     commit, best effort, and the store error is returned.
//
// Live objects are snapshots: a modify always commits a Clone of the
// stored snapshot and swaps it in only on success.
//
// Every mutating method takes a lock.WriterScope: callers must hold
// the cross-process writer lock for the runtime directory.
//
// # Restart
//
// Hardware state does not survive the process. Restore replays every
// stored VLAN to hardware at startup and refreshes the persisted
// driver ids.
package manager

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/frobware/go-nas"
	"github.com/frobware/go-nas/commit"
	"github.com/frobware/go-nas/config"
	"github.com/frobware/go-nas/ifmap"
	"github.com/frobware/go-nas/lock"
	"github.com/frobware/go-nas/logging"
	"github.com/frobware/go-nas/ndi"
	"github.com/frobware/go-nas/object"
	"github.com/frobware/go-nas/store"
	"github.com/frobware/go-nas/vlan"
)

// DefaultMaxIDs bounds object ids when WithMaxIDs is not given.
const DefaultMaxIDs = 4096

// objectCounter is implemented by observers that track how many
// objects are live.
type objectCounter interface {
	SetObjects(objType string, n int)
}

// Manager serialises all mutations with a mutex.
type Manager struct {
	mu sync.Mutex

	switches  map[nas.SwitchID]*object.Switch
	ids       *nas.IDGenerator
	vlans     map[nas.ObjID]*vlan.VLAN
	store     store.Store
	driver    ndi.Driver
	committer *object.Committer
	observer  commit.Observer
	ifaces    *ifmap.Registry
	maxIDs    uint64
	logger    *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithObserver reports commit outcomes to obs. If obs also counts
// objects it is kept up to date.
func WithObserver(obs commit.Observer) Option {
	return func(m *Manager) { m.observer = obs }
}

// WithMaxIDs sets the largest object id the manager hands out.
func WithMaxIDs(n uint64) Option {
	return func(m *Manager) { m.maxIDs = n }
}

// WithInterfaces validates VLAN members against reg. A member port
// must be a registered interface on one of the VLAN's NPUs.
func WithInterfaces(reg *ifmap.Registry) Option {
	return func(m *Manager) { m.ifaces = reg }
}

// New returns a Manager for topology that programs hardware through
// driver and persists to st. Call Restore before serving requests.
func New(topology config.Topology, st store.Store, driver ndi.Driver, logger *slog.Logger, opts ...Option) (*Manager, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	if err := topology.Validate(); err != nil {
		return nil, fmt.Errorf("topology: %w", err)
	}

	m := &Manager{
		switches: make(map[nas.SwitchID]*object.Switch, len(topology)),
		vlans:    make(map[nas.ObjID]*vlan.VLAN),
		store:    st,
		driver:   driver,
		maxIDs:   DefaultMaxIDs,
		logger:   logger.With("component", "manager"),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.maxIDs == 0 || m.maxIDs > nas.MaxIDLimit {
		return nil, nas.Errorf(nas.CodeInvalidParameter, "new manager", "max ids must be in [1, %d]", uint64(nas.MaxIDLimit))
	}
	if m.ifaces == nil {
		m.ifaces = ifmap.New()
	}
	m.ids = nas.NewIDGenerator(m.maxIDs)

	var commitOpts []commit.Option
	if m.observer != nil {
		commitOpts = append(commitOpts, commit.WithObserver(m.observer))
	}
	m.committer = object.NewCommitter(commit.New(logger, commitOpts...))

	for _, sw := range topology {
		m.switches[sw.ID] = object.NewSwitch(sw.ID, sw.NPUs...)
	}
	return m, nil
}

// SwitchInfo describes one switch.
type SwitchInfo struct {
	ID   nas.SwitchID `json:"id"`
	NPUs []nas.NpuID  `json:"npus"`
}

// Switches returns the configured switches ordered by id.
func (m *Manager) Switches() []SwitchInfo {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]SwitchInfo, 0, len(m.switches))
	for _, sw := range m.switches {
		out = append(out, SwitchInfo{ID: sw.ID(), NPUs: sw.NpuList().IDs()})
	}
	slices.SortFunc(out, func(a, b SwitchInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Interfaces returns the registered interfaces ordered by name.
func (m *Manager) Interfaces() []ifmap.Interface {
	return m.ifaces.All()
}

func requireScope(scope lock.WriterScope, op string) error {
	if scope == nil {
		return nas.Errorf(nas.CodeInvalidState, op, "writer lock is not held")
	}
	return nil
}

func (m *Manager) switchByID(id nas.SwitchID) (*object.Switch, error) {
	sw, ok := m.switches[id]
	if !ok {
		return nil, nas.Errorf(nas.CodeInvalidParameter, "lookup switch", "switch %d is not configured", id)
	}
	return sw, nil
}

func (m *Manager) updateGauges() {
	if c, ok := m.observer.(objectCounter); ok {
		c.SetObjects("vlan", len(m.vlans))
	}
}

// Restore replays every stored VLAN to hardware. A VLAN that cannot
// be restored is skipped and reported; its record is kept so a later
// restart retries it.
func (m *Manager) Restore(ctx context.Context, scope lock.WriterScope) error {
	if err := requireScope(scope, "restore"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	recs, err := m.store.ListVLANs(ctx)
	if err != nil {
		return fmt.Errorf("list stored vlans: %w", err)
	}

	var errs []error
	for _, rec := range recs {
		if err := m.restoreVLAN(ctx, rec); err != nil {
			m.logger.ErrorContext(ctx, "restore failed", "obj_id", rec.ObjID, "vlan", rec.VlanID, "error", err)
			errs = append(errs, fmt.Errorf("restore vlan object %d: %w", rec.ObjID, err))
		}
	}
	m.updateGauges()
	m.logger.InfoContext(ctx, "restored", "vlans", len(m.vlans), "failed", len(errs))
	return errors.Join(errs...)
}

func (m *Manager) restoreVLAN(ctx context.Context, rec store.VLANRecord) error {
	if _, dup := m.vlans[rec.ObjID]; dup || !m.ids.Reserve(uint64(rec.ObjID)) {
		return nas.Errorf(nas.CodeInvalidState, "restore", "object id %d is in use or out of range", rec.ObjID)
	}
	v, err := m.fromRecord(rec)
	if err != nil {
		m.ids.Release(uint64(rec.ObjID))
		return err
	}
	if err := m.committer.Create(ctx, v); err != nil {
		m.ids.Release(uint64(rec.ObjID))
		return err
	}
	m.vlans[v.ObjID()] = v

	// Driver ids are reassigned on every replay.
	if err := m.persist(ctx, v); err != nil {
		m.logger.WarnContext(ctx, "failed to refresh stored driver ids", "obj_id", rec.ObjID, "error", err)
	}
	return nil
}

// fromRecord builds an uncommitted VLAN holding rec's attributes.
func (m *Manager) fromRecord(rec store.VLANRecord) (*vlan.VLAN, error) {
	sw, err := m.switchByID(rec.SwitchID)
	if err != nil {
		return nil, err
	}
	v := vlan.New(sw, m.driver, m.logger)
	v.SetObjID(rec.ObjID)
	if err := v.SetVlanID(rec.VlanID); err != nil {
		return nil, err
	}
	if err := v.SetMTU(rec.MTU); err != nil {
		return nil, err
	}
	v.SetLearningDisabled(rec.LearningDisabled)
	v.SetMembers(rec.Members)
	if !rec.FollowingSwitch {
		for _, npu := range rec.NPUs() {
			if err := v.AddNpu(npu, false); err != nil {
				return nil, err
			}
		}
	}
	return v, nil
}

func toRecord(v *vlan.VLAN) store.VLANRecord {
	info := v.Info()
	return store.VLANRecord{
		ObjID:            info.ObjID,
		SwitchID:         info.SwitchID,
		VlanID:           info.VlanID,
		MTU:              info.MTU,
		LearningDisabled: info.LearningDisabled,
		Members:          info.Members,
		NdiIDs:           info.NdiIDs,
		FollowingSwitch:  info.FollowingSwitch,
	}
}

// persist writes v in its own transaction.
func (m *Manager) persist(ctx context.Context, v *vlan.VLAN) error {
	rec := toRecord(v)
	return m.store.RunInTransaction(ctx, func(tx store.Store) error {
		return tx.SaveVLAN(ctx, rec)
	})
}
