package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mvandervelde/bouwlca/internal/lca"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Compile-time contract assertion.
var _ Store = (*SQLite)(nil)

// snapshotBuckets are the state-table rows written by the persistent
// drivers, one JSON payload per bucket.
var snapshotBuckets = []string{"projects", "materials"}

const (
	bucketProjects  = "projects"
	bucketMaterials = "materials"
)

// SQLite persists the in-memory state to a single SQLite table as JSON
// payloads. It snapshots the full state after every successful mutation.
type SQLite struct {
	*Memory
	db   *sql.DB
	mu   sync.Mutex
	path string
}

// NewSQLite opens or creates the database file and hydrates the store from
// any existing snapshot.
func NewSQLite(path string) (*SQLite, error) {
	if path == "" {
		path = "bouwlca.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}

	s := &SQLite{Memory: NewMemory(), db: db, path: path}
	if err := s.load(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) load() error {
	rows, err := s.db.Query(`SELECT bucket, payload FROM state`)
	if err != nil {
		return fmt.Errorf("select state: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var snapshot Snapshot
	for rows.Next() {
		var bucket string
		var payload []byte
		if err := rows.Scan(&bucket, &payload); err != nil {
			return fmt.Errorf("scan state: %w", err)
		}
		if len(payload) == 0 {
			continue
		}
		switch bucket {
		case bucketProjects:
			if err := json.Unmarshal(payload, &snapshot.Projects); err != nil {
				return fmt.Errorf("decode projects: %w", err)
			}
		case bucketMaterials:
			if err := json.Unmarshal(payload, &snapshot.Materials); err != nil {
				return fmt.Errorf("decode materials: %w", err)
			}
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate state: %w", err)
	}

	s.ImportState(snapshot)
	return nil
}

func (s *SQLite) persist() (retErr error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.ExportState()
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	for _, bucket := range snapshotBuckets {
		var data []byte
		switch bucket {
		case bucketProjects:
			data, err = json.Marshal(snapshot.Projects)
		case bucketMaterials:
			data, err = json.Marshal(snapshot.Materials)
		}
		if err != nil {
			retErr = err
			return retErr
		}
		if _, err = tx.Exec(`INSERT INTO state(bucket,payload) VALUES(?,?) ON CONFLICT(bucket) DO UPDATE SET payload=excluded.payload`, bucket, data); err != nil {
			retErr = fmt.Errorf("upsert %s: %w", bucket, err)
			return retErr
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// PutProject stores the project and snapshots state to disk.
func (s *SQLite) PutProject(ctx context.Context, p lca.Project) error {
	if err := s.Memory.PutProject(ctx, p); err != nil {
		return err
	}
	return s.persist()
}

// DeleteProject removes the project and snapshots state to disk.
func (s *SQLite) DeleteProject(ctx context.Context, id string) error {
	if err := s.Memory.DeleteProject(ctx, id); err != nil {
		return err
	}
	return s.persist()
}

// SaveTotals writes cached totals and snapshots state to disk.
func (s *SQLite) SaveTotals(ctx context.Context, projectID string, totals lca.CachedTotals) error {
	if err := s.Memory.SaveTotals(ctx, projectID, totals); err != nil {
		return err
	}
	return s.persist()
}

// PutMaterial stores the material and snapshots state to disk.
func (s *SQLite) PutMaterial(ctx context.Context, m lca.Material) error {
	if err := s.Memory.PutMaterial(ctx, m); err != nil {
		return err
	}
	return s.persist()
}

// Close releases the database handle.
func (s *SQLite) Close() error { return s.db.Close() }

// DB exposes the underlying sql.DB for integration testing hooks.
func (s *SQLite) DB() *sql.DB { return s.db }

// Path returns the configured database path.
func (s *SQLite) Path() string { return s.path }
