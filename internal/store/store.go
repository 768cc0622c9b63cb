// Package store persists projects and user-defined materials.
//
// Three interchangeable drivers share one data model: an in-memory bucket
// store, plus sqlite and postgres variants that wrap it and snapshot the
// full state to a single JSON-payload table after every successful
// mutation. The engine and CLI depend only on the Store interface.
package store

import (
	"context"
	"fmt"

	"github.com/mvandervelde/bouwlca/internal/lca"
)

// Driver names accepted by Open.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// constError is a sentinel error type that can be declared const.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors.
const (
	// ErrNotFound reports a lookup for an id with no matching record.
	ErrNotFound constError = "record not found"

	// ErrUnknownDriver reports an unrecognized storage driver name.
	ErrUnknownDriver constError = "unknown storage driver"
)

// Store is the persistence surface the engine and CLI depend on. Lookups
// for missing ids return ErrNotFound; methods never return partial records.
type Store interface {
	GetProject(ctx context.Context, id string) (lca.Project, error)
	ListProjects(ctx context.Context) ([]lca.Project, error)
	PutProject(ctx context.Context, p lca.Project) error
	DeleteProject(ctx context.Context, id string) error

	// SaveTotals writes cached calculation outputs onto an existing
	// project without touching its element tree.
	SaveTotals(ctx context.Context, projectID string, totals lca.CachedTotals) error

	GetMaterial(ctx context.Context, id string) (lca.Material, error)
	ListMaterials(ctx context.Context) ([]lca.Material, error)
	PutMaterial(ctx context.Context, m lca.Material) error

	Close() error
}

// Options selects and parameterizes a driver.
type Options struct {
	// Driver is one of the Driver* constants; empty means memory.
	Driver string
	// Path is the sqlite database file.
	Path string
	// DSN is the postgres connection string.
	DSN string
}

// Open constructs the configured store.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Driver {
	case DriverMemory, "":
		return NewMemory(), nil
	case DriverSQLite:
		return NewSQLite(opts.Path)
	case DriverPostgres:
		return NewPostgres(ctx, opts.DSN)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, opts.Driver)
	}
}
