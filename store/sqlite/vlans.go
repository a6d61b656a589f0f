package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/frobware/go-nas"
	"github.com/frobware/go-nas/store"
)

// GetVLAN returns store.ErrNotFound if no VLAN has id.
func (s *sqliteStore) GetVLAN(ctx context.Context, id nas.ObjID) (store.VLANRecord, error) {
	start := time.Now()
	rec, err := scanVLAN(s.stmts.getVLAN.QueryRowContext(ctx, int64(id)))
	if errors.Is(err, sql.ErrNoRows) {
		s.logSQL("GetVLAN", start, nil, id)
		return store.VLANRecord{}, fmt.Errorf("vlan object %d: %w", id, store.ErrNotFound)
	}
	s.logSQL("GetVLAN", start, err, id)
	if err != nil {
		return store.VLANRecord{}, err
	}
	if err := s.loadChildren(ctx, &rec); err != nil {
		return store.VLANRecord{}, err
	}
	return rec, nil
}

// ListVLANs returns every VLAN ordered by object id.
func (s *sqliteStore) ListVLANs(ctx context.Context) ([]store.VLANRecord, error) {
	start := time.Now()
	rows, err := s.stmts.listVLANs.QueryContext(ctx)
	if err != nil {
		s.logSQL("ListVLANs", start, err)
		return nil, err
	}

	// Drain the rows before the child queries; the in-memory store
	// has a single connection.
	var recs []store.VLANRecord
	for rows.Next() {
		rec, err := scanVLAN(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		recs = append(recs, rec)
	}
	err = errors.Join(rows.Err(), rows.Close())
	s.logSQL("ListVLANs", start, err)
	if err != nil {
		return nil, err
	}

	for i := range recs {
		if err := s.loadChildren(ctx, &recs[i]); err != nil {
			return nil, err
		}
	}
	return recs, nil
}

// SaveVLAN upserts rec and replaces its members and NPUs. It is
// atomic only inside RunInTransaction.
func (s *sqliteStore) SaveVLAN(ctx context.Context, rec store.VLANRecord) error {
	now := time.Now()
	created := rec.CreatedAt
	if created.IsZero() {
		created = now
	}
	id := int64(rec.ObjID)

	start := time.Now()
	_, err := s.stmts.saveVLAN.ExecContext(ctx, id, int64(rec.SwitchID), int(rec.VlanID), int64(rec.MTU),
		rec.LearningDisabled, rec.FollowingSwitch, created.Format(time.RFC3339), now.Format(time.RFC3339))
	s.logSQL("SaveVLAN", start, err, rec.ObjID, rec.VlanID)
	if err != nil {
		return fmt.Errorf("save vlan object %d: %w", rec.ObjID, err)
	}

	if _, err := s.stmts.clearMembers.ExecContext(ctx, id); err != nil {
		return fmt.Errorf("clear members of vlan object %d: %w", rec.ObjID, err)
	}
	for _, port := range rec.Members {
		if _, err := s.stmts.insertMember.ExecContext(ctx, id, int64(port)); err != nil {
			return fmt.Errorf("insert member %d of vlan object %d: %w", port, rec.ObjID, err)
		}
	}

	if _, err := s.stmts.clearNpus.ExecContext(ctx, id); err != nil {
		return fmt.Errorf("clear npus of vlan object %d: %w", rec.ObjID, err)
	}
	for _, npu := range rec.NPUs() {
		if _, err := s.stmts.insertNpu.ExecContext(ctx, id, int64(npu), int64(rec.NdiIDs[npu])); err != nil {
			return fmt.Errorf("insert npu %d of vlan object %d: %w", npu, rec.ObjID, err)
		}
	}
	return nil
}

// DeleteVLAN removes a VLAN with its members and NPUs. It returns
// store.ErrNotFound if no VLAN has id.
func (s *sqliteStore) DeleteVLAN(ctx context.Context, id nas.ObjID) error {
	start := time.Now()
	res, err := s.stmts.deleteVLAN.ExecContext(ctx, int64(id))
	s.logSQL("DeleteVLAN", start, err, id)
	if err != nil {
		return fmt.Errorf("delete vlan object %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("vlan object %d: %w", id, store.ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanVLAN(row scanner) (store.VLANRecord, error) {
	var (
		objID, switchID, vlanID, mtu int64
		learning, following          bool
		createdStr, updatedStr       string
	)
	if err := row.Scan(&objID, &switchID, &vlanID, &mtu, &learning, &following, &createdStr, &updatedStr); err != nil {
		return store.VLANRecord{}, err
	}
	created, err := time.Parse(time.RFC3339, createdStr)
	if err != nil {
		return store.VLANRecord{}, fmt.Errorf("invalid created_at timestamp for vlan object %d: %q: %w", objID, createdStr, err)
	}
	updated, err := time.Parse(time.RFC3339, updatedStr)
	if err != nil {
		return store.VLANRecord{}, fmt.Errorf("invalid updated_at timestamp for vlan object %d: %q: %w", objID, updatedStr, err)
	}
	return store.VLANRecord{
		ObjID:            nas.ObjID(objID),
		SwitchID:         nas.SwitchID(switchID),
		VlanID:           uint16(vlanID),
		MTU:              uint32(mtu),
		LearningDisabled: learning,
		FollowingSwitch:  following,
		CreatedAt:        created,
		UpdatedAt:        updated,
	}, nil
}

func (s *sqliteStore) loadChildren(ctx context.Context, rec *store.VLANRecord) error {
	id := int64(rec.ObjID)

	rows, err := s.stmts.listMembers.QueryContext(ctx, id)
	if err != nil {
		return fmt.Errorf("list members of vlan object %d: %w", rec.ObjID, err)
	}
	for rows.Next() {
		var port int64
		if err := rows.Scan(&port); err != nil {
			rows.Close()
			return err
		}
		rec.Members = append(rec.Members, uint32(port))
	}
	if err := errors.Join(rows.Err(), rows.Close()); err != nil {
		return err
	}

	rows, err = s.stmts.listNpus.QueryContext(ctx, id)
	if err != nil {
		return fmt.Errorf("list npus of vlan object %d: %w", rec.ObjID, err)
	}
	defer rows.Close()
	rec.NdiIDs = make(map[nas.NpuID]nas.NdiObjID)
	for rows.Next() {
		var npu, ndiID int64
		if err := rows.Scan(&npu, &ndiID); err != nil {
			return err
		}
		rec.NdiIDs[nas.NpuID(npu)] = nas.NdiObjID(ndiID)
	}
	return rows.Err()
}
