package store

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/eppwiresh/eppwire/internal/client"
	"github.com/eppwiresh/eppwire/internal/protocol"
)

// SQLiteJournal implements client.Journal using an embedded SQLite
// database. It uses modernc.org/sqlite which is pure Go (no CGO).
type SQLiteJournal struct {
	db *sql.DB
	mu sync.RWMutex // serializes writes (SQLite is single-writer)
}

// OpenJournal opens or creates a SQLite database at dataDir/eppw.db
// and runs schema migrations.
func OpenJournal(dataDir string) (*SQLiteJournal, error) {
	dbPath := filepath.Join(dataDir, "eppw.db")
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}

	// Single connection for writes to avoid SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	j := &SQLiteJournal{db: db}
	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating sqlite: %w", err)
	}
	return j, nil
}

func (j *SQLiteJournal) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS transactions (
			id TEXT PRIMARY KEY,
			registry TEXT NOT NULL,
			command TEXT NOT NULL,
			cl_trid TEXT NOT NULL,
			sv_trid TEXT NOT NULL DEFAULT '',
			code INTEGER NOT NULL,
			message TEXT NOT NULL DEFAULT '',
			elapsed_ms INTEGER NOT NULL DEFAULT 0,
			recorded_at DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_recorded ON transactions(recorded_at)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_cltrid ON transactions(cl_trid)`,
	}

	for _, m := range migrations {
		if _, err := j.db.Exec(m); err != nil {
			return fmt.Errorf("executing migration: %w", err)
		}
	}
	return nil
}

// Record inserts one completed command.
func (j *SQLiteJournal) Record(rec client.Record) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	_, err := j.db.Exec(
		`INSERT INTO transactions (id, registry, command, cl_trid, sv_trid, code, message, elapsed_ms, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), rec.Registry, rec.Command, rec.ClTRID, rec.SvTRID,
		int(rec.Code), rec.Message, rec.Elapsed.Milliseconds(), time.Now().UTC(),
	)
	return err
}

// Recent returns up to n entries, newest first.
func (j *SQLiteJournal) Recent(n int) ([]Entry, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	rows, err := j.db.Query(
		`SELECT id, registry, command, cl_trid, sv_trid, code, message, elapsed_ms, recorded_at
		 FROM transactions ORDER BY recorded_at DESC, id LIMIT ?`, n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var code int
		if err := rows.Scan(&e.ID, &e.Registry, &e.Command, &e.ClTRID, &e.SvTRID, &code, &e.Message, &e.ElapsedMS, &e.RecordedAt); err != nil {
			return nil, err
		}
		e.Code = protocol.ResultCode(code)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// FindByClTRID looks up a journaled command by its client transaction
// identifier. Returns nil when no row matches.
func (j *SQLiteJournal) FindByClTRID(clTRID string) (*Entry, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	var e Entry
	var code int
	err := j.db.QueryRow(
		`SELECT id, registry, command, cl_trid, sv_trid, code, message, elapsed_ms, recorded_at
		 FROM transactions WHERE cl_trid = ? ORDER BY recorded_at DESC LIMIT 1`, clTRID,
	).Scan(&e.ID, &e.Registry, &e.Command, &e.ClTRID, &e.SvTRID, &code, &e.Message, &e.ElapsedMS, &e.RecordedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	e.Code = protocol.ResultCode(code)
	return &e, nil
}

// Prune removes entries recorded more than keep ago and returns the
// number deleted.
func (j *SQLiteJournal) Prune(keep time.Duration) (int64, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	res, err := j.db.Exec(
		"DELETE FROM transactions WHERE recorded_at < ?",
		time.Now().UTC().Add(-keep),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Close closes the database.
func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
