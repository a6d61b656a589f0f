package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

type statements struct {
	getVLAN      *sql.Stmt
	listVLANs    *sql.Stmt
	saveVLAN     *sql.Stmt
	deleteVLAN   *sql.Stmt
	listMembers  *sql.Stmt
	clearMembers *sql.Stmt
	insertMember *sql.Stmt
	listNpus     *sql.Stmt
	clearNpus    *sql.Stmt
	insertNpu    *sql.Stmt
}

const (
	sqlGetVLAN = `
		SELECT obj_id, switch_id, vlan_id, mtu, learning_disabled, following_switch, created_at, updated_at
		FROM vlans WHERE obj_id = ?`

	sqlListVLANs = `
		SELECT obj_id, switch_id, vlan_id, mtu, learning_disabled, following_switch, created_at, updated_at
		FROM vlans ORDER BY obj_id`

	// created_at keeps its first value across updates.
	sqlSaveVLAN = `
		INSERT INTO vlans
		(obj_id, switch_id, vlan_id, mtu, learning_disabled, following_switch, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(obj_id) DO UPDATE SET
		  switch_id = excluded.switch_id,
		  vlan_id = excluded.vlan_id,
		  mtu = excluded.mtu,
		  learning_disabled = excluded.learning_disabled,
		  following_switch = excluded.following_switch,
		  updated_at = excluded.updated_at`

	sqlDeleteVLAN = "DELETE FROM vlans WHERE obj_id = ?"

	sqlListMembers  = "SELECT port FROM vlan_members WHERE obj_id = ? ORDER BY port"
	sqlClearMembers = "DELETE FROM vlan_members WHERE obj_id = ?"
	sqlInsertMember = "INSERT INTO vlan_members (obj_id, port) VALUES (?, ?)"

	sqlListNpus  = "SELECT npu, ndi_id FROM vlan_npus WHERE obj_id = ? ORDER BY npu"
	sqlClearNpus = "DELETE FROM vlan_npus WHERE obj_id = ?"
	sqlInsertNpu = "INSERT INTO vlan_npus (obj_id, npu, ndi_id) VALUES (?, ?, ?)"
)

// fields pairs every statement slot with its SQL.
func (st *statements) fields() []struct {
	name string
	sql  string
	stmt **sql.Stmt
} {
	return []struct {
		name string
		sql  string
		stmt **sql.Stmt
	}{
		{"GetVLAN", sqlGetVLAN, &st.getVLAN},
		{"ListVLANs", sqlListVLANs, &st.listVLANs},
		{"SaveVLAN", sqlSaveVLAN, &st.saveVLAN},
		{"DeleteVLAN", sqlDeleteVLAN, &st.deleteVLAN},
		{"ListMembers", sqlListMembers, &st.listMembers},
		{"ClearMembers", sqlClearMembers, &st.clearMembers},
		{"InsertMember", sqlInsertMember, &st.insertMember},
		{"ListNpus", sqlListNpus, &st.listNpus},
		{"ClearNpus", sqlClearNpus, &st.clearNpus},
		{"InsertNpu", sqlInsertNpu, &st.insertNpu},
	}
}

func (st *statements) prepare(ctx context.Context, db *sql.DB) error {
	for _, f := range st.fields() {
		stmt, err := db.PrepareContext(ctx, f.sql)
		if err != nil {
			return fmt.Errorf("prepare %s: %w", f.name, err)
		}
		*f.stmt = stmt
	}
	return nil
}

// bind returns transaction-bound handles of the master statements.
func (st *statements) bind(ctx context.Context, tx *sql.Tx) statements {
	var bound statements
	master := st.fields()
	for i, f := range bound.fields() {
		*f.stmt = tx.StmtContext(ctx, *master[i].stmt)
	}
	return bound
}

// close closes every prepared statement. Errors are ignored because
// the database is about to be closed.
func (st *statements) close() {
	for _, f := range st.fields() {
		if *f.stmt != nil {
			(*f.stmt).Close()
		}
	}
}
