// Package store defines the persistence boundary for committed
// configuration objects. The manager writes a record after every
// successful hardware commit and replays the records on restart.
package store

import (
	"context"
	"errors"
	"io"
	"maps"
	"slices"
	"time"

	"github.com/frobware/go-nas"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// VLANRecord is the persisted form of a committed VLAN.
type VLANRecord struct {
	ObjID            nas.ObjID
	SwitchID         nas.SwitchID
	VlanID           uint16
	MTU              uint32
	LearningDisabled bool
	Members          []uint32
	// NdiIDs maps each NPU the VLAN is programmed on to its driver
	// object id. Its keys are the VLAN's NPU list.
	NdiIDs          map[nas.NpuID]nas.NdiObjID
	FollowingSwitch bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NPUs returns the NPUs of the record, ascending.
func (r VLANRecord) NPUs() []nas.NpuID {
	return slices.Sorted(maps.Keys(r.NdiIDs))
}

// Store persists VLAN records.
type Store interface {
	io.Closer

	// GetVLAN returns ErrNotFound if no record has id.
	GetVLAN(ctx context.Context, id nas.ObjID) (VLANRecord, error)
	// SaveVLAN inserts or replaces rec, including its members and
	// NPUs.
	SaveVLAN(ctx context.Context, rec VLANRecord) error
	// DeleteVLAN returns ErrNotFound if no record has id.
	DeleteVLAN(ctx context.Context, id nas.ObjID) error
	// ListVLANs returns every record ordered by object id.
	ListVLANs(ctx context.Context) ([]VLANRecord, error)

	// RunInTransaction runs fn against a transactional view of the
	// store. The transaction commits if fn returns nil and rolls
	// back otherwise.
	RunInTransaction(ctx context.Context, fn func(Store) error) error
}
