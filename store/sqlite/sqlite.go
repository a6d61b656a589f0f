// Package sqlite provides a SQLite implementation of store.Store.
//
// # Calling Conventions
//
// The store has no internal transaction management. Methods execute
// against s.conn, which is either the *sql.DB (autocommit) or a
// *sql.Tx handed out by RunInTransaction. SaveVLAN issues several
// statements and is only atomic inside a transaction:
//
//	err := st.RunInTransaction(ctx, func(tx store.Store) error {
//	    return tx.SaveVLAN(ctx, rec)
//	})
//
// # Prepared Statements
//
// Every query is prepared once against the *sql.DB when the store is
// opened. RunInTransaction binds the master statements to the
// transaction with tx.StmtContext; the bound handles die with the
// transaction and the masters stay valid.
//
// # Concurrency
//
// The manager serialises writers with a mutex, so transactions use
// the default DEFERRED mode. The file database runs in WAL mode. The
// in-memory database is limited to one connection because every
// connection to ":memory:" opens a separate database.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/frobware/go-nas/store"
)

//go:embed schema.sql
var schemaSQL string

type pragma struct {
	name  string
	value string
}

// dbConn abstracts *sql.DB and *sql.Tx.
type dbConn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type sqliteStore struct {
	db     *sql.DB // used for BeginTx
	conn   dbConn  // db or tx
	logger *slog.Logger

	stmts statements
}

var _ store.Store = (*sqliteStore)(nil)

// New opens (creating if needed) the database at dbPath.
func New(ctx context.Context, dbPath string, logger *slog.Logger) (store.Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "store", "db", dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open(driverName, dsn(dbPath, []pragma{{"journal_mode", "WAL"}, {"foreign_keys", "1"}, {"busy_timeout", "5000"}}))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	s, err := open(ctx, db, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("opened database")
	return s, nil
}

// NewInMemory returns a store backed by a private in-memory database.
func NewInMemory(ctx context.Context, logger *slog.Logger) (store.Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "store", "db", ":memory:")

	db, err := sql.Open(driverName, dsn(":memory:", []pragma{{"foreign_keys", "1"}}))
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}
	db.SetMaxOpenConns(1)
	s, err := open(ctx, db, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("opened in-memory database")
	return s, nil
}

func open(ctx context.Context, db *sql.DB, logger *slog.Logger) (*sqliteStore, error) {
	s := &sqliteStore{db: db, conn: db, logger: logger}
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	if err := s.stmts.prepare(ctx, db); err != nil {
		s.stmts.close()
		db.Close()
		return nil, fmt.Errorf("failed to prepare statements: %w", err)
	}
	return s, nil
}

// Close closes the prepared statements and the database.
func (s *sqliteStore) Close() error {
	s.stmts.close()
	return s.db.Close()
}

// RunInTransaction runs fn inside a database transaction, committing
// if fn returns nil.
func (s *sqliteStore) RunInTransaction(ctx context.Context, fn func(store.Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	txStore := &sqliteStore{
		db:     s.db,
		conn:   tx,
		logger: s.logger,
		stmts:  s.stmts.bind(ctx, tx),
	}
	if err := fn(txStore); err != nil {
		return err
	}
	return tx.Commit()
}

// logSQL records one statement execution at debug level.
func (s *sqliteStore) logSQL(stmt string, start time.Time, err error, args ...any) {
	attrs := []any{"stmt", stmt, "args", args, "duration_ms", fmt.Sprintf("%.3f", float64(time.Since(start).Microseconds())/1000)}
	if err != nil {
		attrs = append(attrs, "error", err)
	}
	s.logger.Debug("sql", attrs...)
}
