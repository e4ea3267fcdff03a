// Package archive is an optional best-effort frame log to a local
// sqlite database. It never participates in decoding: a write failure
// is logged by the caller and dropped, matching the sink-error
// handling contract.
//
// Grounded on montge-stratux's traffic log (database/sql over
// mattn/go-sqlite3), substituting modernc.org/sqlite's pure-Go driver
// since this module carries no cgo dependency anywhere else in the
// tree, and on the analyzer tool in the ACARS parser pack for the
// plain database/sql + single-table-no-migrations style.
package archive

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Record is a single archived frame.
type Record struct {
	Timestamp time.Time
	Direction string
	Hex       string
	RSErrors  int
}

// Archive wraps a sqlite database holding one flat frames table.
type Archive struct {
	db *sql.DB
}

const schema = `CREATE TABLE IF NOT EXISTS frames (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp_unix_nano INTEGER NOT NULL,
	direction TEXT NOT NULL,
	hex TEXT NOT NULL,
	rs_errors INTEGER NOT NULL
)`

// Open creates or opens the sqlite file at path and ensures the frames
// table exists.
func Open(path string) (*Archive, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("archive: opening %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("archive: creating schema: %w", err)
	}
	return &Archive{db: db}, nil
}

// Insert writes one frame record. Callers should treat errors as
// diagnostic-only and keep running.
func (a *Archive) Insert(r Record) error {
	_, err := a.db.Exec(
		`INSERT INTO frames (timestamp_unix_nano, direction, hex, rs_errors) VALUES (?, ?, ?, ?)`,
		r.Timestamp.UnixNano(), r.Direction, r.Hex, r.RSErrors,
	)
	return err
}

// Close releases the underlying database handle.
func (a *Archive) Close() error {
	return a.db.Close()
}
