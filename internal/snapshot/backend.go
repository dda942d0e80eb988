// Package snapshot persists property values across process restarts. It is
// an external collaborator of the registry core: it reads and writes
// through the store's text accessors at startup and shutdown, and the core
// never imports it. Values cross the boundary in their canonical text
// representation, the portable form for anything leaving the process.
package snapshot

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/parambank/pkg/params"
)

// ErrClosed is returned by operations on a closed backend.
var ErrClosed = errors.New("snapshot backend is closed")

// dbFileName is the SQLite file created inside the data directory.
const dbFileName = "params.db"

// Backend stores property snapshots in a SQLite database. The mutex guards
// the db handle: the CLI lifecycle touches the backend from both its
// pre-run and post-run hooks.
type Backend struct {
	mu   sync.Mutex
	db   *sql.DB
	path string
}

// Revision describes one saved snapshot.
type Revision struct {
	RevisionID string
	SavedAt    time.Time
	ValueCount int
}

// Open creates the data directory if needed, opens the snapshot database,
// and initializes the schema.
func Open(dataDir string) (*Backend, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	path := filepath.Join(dataDir, dbFileName)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("init snapshot schema: %w", err)
		}
	}
	return &Backend{db: db, path: path}, nil
}

// Path returns the snapshot database file path.
func (b *Backend) Path() string { return b.path }

// Close releases the database handle. Idempotent.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	return err
}

// Restore loads saved values into the store through SetText and returns
// how many were applied. Rows whose key is no longer in the catalog, or
// whose value no longer parses or validates under the current descriptors,
// are skipped rather than failing startup: a stale snapshot must not brick
// the process, and the affected properties simply stay unset.
func (b *Backend) Restore(store *params.Store) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.db == nil {
		return 0, ErrClosed
	}

	rows, err := b.db.Query("SELECT key, value FROM property_values")
	if err != nil {
		return 0, fmt.Errorf("query property values: %w", err)
	}
	defer rows.Close()

	table := store.Table()
	restored := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return restored, fmt.Errorf("scan property value: %w", err)
		}
		id, err := table.Lookup(key)
		if err != nil {
			continue // property left the catalog
		}
		if err := store.SetText(id, value); err != nil {
			continue // value no longer admissible
		}
		restored++
	}
	if err := rows.Err(); err != nil {
		return restored, fmt.Errorf("iterate property values: %w", err)
	}
	return restored, nil
}

// Save writes the current value of every populated, text-capable property
// and records a revision row. The snapshot replaces the previous one in a
// single transaction.
func (b *Backend) Save(store *params.Store) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.db == nil {
		return ErrClosed
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("begin snapshot: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM property_values"); err != nil {
		return fmt.Errorf("clear property values: %w", err)
	}

	table := store.Table()
	now := time.Now().UTC().Format(time.RFC3339)
	count := 0
	for i := 0; i < table.Len(); i++ {
		id := params.ID(i)
		h, err := table.Handler(id)
		if err != nil {
			return err
		}
		if !store.Has(id) || !h.CanFormat() {
			continue
		}
		value, err := store.GetText(id)
		if err != nil {
			return fmt.Errorf("render %s: %w", h.Key(), err)
		}
		if _, err := tx.Exec(
			"INSERT INTO property_values (key, value, updated_at) VALUES (?, ?, ?)",
			h.Key(), value, now,
		); err != nil {
			return fmt.Errorf("save %s: %w", h.Key(), err)
		}
		count++
	}

	if _, err := tx.Exec(
		"INSERT INTO revisions (revision_id, saved_at, value_count) VALUES (?, ?, ?)",
		generateRevisionID(), now, count,
	); err != nil {
		return fmt.Errorf("record revision: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}

// Revisions lists saved snapshots, newest first.
func (b *Backend) Revisions() ([]Revision, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.db == nil {
		return nil, ErrClosed
	}

	rows, err := b.db.Query(
		"SELECT revision_id, saved_at, value_count FROM revisions ORDER BY saved_at DESC, revision_id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("query revisions: %w", err)
	}
	defer rows.Close()

	var revs []Revision
	for rows.Next() {
		var r Revision
		var savedAt string
		if err := rows.Scan(&r.RevisionID, &savedAt, &r.ValueCount); err != nil {
			return nil, fmt.Errorf("scan revision: %w", err)
		}
		r.SavedAt, err = time.Parse(time.RFC3339, savedAt)
		if err != nil {
			return nil, fmt.Errorf("parse saved_at: %w", err)
		}
		revs = append(revs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate revisions: %w", err)
	}
	return revs, nil
}

// generateRevisionID returns a UUID v7 so revisions sort by creation time,
// falling back to v4 if v7 generation fails.
func generateRevisionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
