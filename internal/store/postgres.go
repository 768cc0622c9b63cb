package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/mvandervelde/bouwlca/internal/lca"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
)

// Compile-time contract assertion.
var _ Store = (*Postgres)(nil)

const (
	postgresDriver = "pgx"
	// Default DSN covers a local development database; production callers
	// configure storage.dsn explicitly.
	defaultPostgresDSN = "postgres://localhost/bouwlca?sslmode=disable"
)

var (
	sqlOpen = sql.Open
	openMu  sync.Mutex
)

// Postgres persists the in-memory state to a Postgres snapshot table,
// mirroring the sqlite driver with JSONB payloads.
type Postgres struct {
	*Memory
	db *sql.DB
	mu sync.Mutex
}

// NewPostgres opens a Postgres-backed store using the provided DSN (falls
// back to defaultPostgresDSN), ensures the snapshot table exists, and
// hydrates the store from any existing snapshot.
func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	if dsn == "" {
		dsn = defaultPostgresDSN
	}

	openMu.Lock()
	db, err := sqlOpen(postgresDriver, dsn)
	openMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload JSONB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure state table: %w", err)
	}

	s := &Postgres{Memory: NewMemory(), db: db}
	if err := s.load(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Postgres) load(ctx context.Context) error {
	rows, err := s.db.QueryContext(ctx, `SELECT bucket, payload FROM state`)
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

func (s *Postgres) persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.ExportState()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
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
			return err
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO state(bucket,payload) VALUES($1,$2) ON CONFLICT(bucket) DO UPDATE SET payload=EXCLUDED.payload`, bucket, data); err != nil {
			return fmt.Errorf("upsert %s: %w", bucket, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	committed = true
	return nil
}

// PutProject stores the project and snapshots state to Postgres.
func (s *Postgres) PutProject(ctx context.Context, p lca.Project) error {
	if err := s.Memory.PutProject(ctx, p); err != nil {
		return err
	}
	return s.persist(ctx)
}

// DeleteProject removes the project and snapshots state to Postgres.
func (s *Postgres) DeleteProject(ctx context.Context, id string) error {
	if err := s.Memory.DeleteProject(ctx, id); err != nil {
		return err
	}
	return s.persist(ctx)
}

// SaveTotals writes cached totals and snapshots state to Postgres.
func (s *Postgres) SaveTotals(ctx context.Context, projectID string, totals lca.CachedTotals) error {
	if err := s.Memory.SaveTotals(ctx, projectID, totals); err != nil {
		return err
	}
	return s.persist(ctx)
}

// PutMaterial stores the material and snapshots state to Postgres.
func (s *Postgres) PutMaterial(ctx context.Context, m lca.Material) error {
	if err := s.Memory.PutMaterial(ctx, m); err != nil {
		return err
	}
	return s.persist(ctx)
}

// Close releases the database handle.
func (s *Postgres) Close() error { return s.db.Close() }

// DB exposes the underlying sql.DB for integration testing hooks.
func (s *Postgres) DB() *sql.DB { return s.db }

// OverrideSQLOpen swaps the sqlOpen function for tests and returns a
// restore function.
func OverrideSQLOpen(fn func(driverName, dataSourceName string) (*sql.DB, error)) func() {
	openMu.Lock()
	defer openMu.Unlock()
	prev := sqlOpen
	sqlOpen = fn
	return func() {
		openMu.Lock()
		defer openMu.Unlock()
		sqlOpen = prev
	}
}
