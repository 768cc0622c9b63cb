package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/mvandervelde/bouwlca/internal/lca"
)

// Compile-time contract assertion.
var _ Store = (*Memory)(nil)

// Memory is the in-memory store used for tests and ephemeral runs, and the
// state holder behind the snapshotting persistent drivers. All records are
// deep-copied on the way in and out so callers can never alias store state.
type Memory struct {
	mu        sync.RWMutex
	projects  map[string]lca.Project
	materials map[string]lca.Material
}

// Snapshot captures a point-in-time clone of the full store state.
type Snapshot struct {
	Projects  map[string]lca.Project  `json:"projects"`
	Materials map[string]lca.Material `json:"materials"`
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		projects:  make(map[string]lca.Project),
		materials: make(map[string]lca.Material),
	}
}

// GetProject returns a copy of the stored project.
func (s *Memory) GetProject(_ context.Context, id string) (lca.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[id]
	if !ok {
		return lca.Project{}, fmt.Errorf("%w: project %q", ErrNotFound, id)
	}
	return cloneProject(p), nil
}

// ListProjects returns all projects ordered by id.
func (s *Memory) ListProjects(_ context.Context) ([]lca.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]lca.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, cloneProject(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// PutProject inserts or replaces a project.
func (s *Memory) PutProject(_ context.Context, p lca.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.projects[p.ID] = cloneProject(p)
	return nil
}

// DeleteProject removes a project; missing ids are ErrNotFound.
func (s *Memory) DeleteProject(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return fmt.Errorf("%w: project %q", ErrNotFound, id)
	}
	delete(s.projects, id)
	return nil
}

// SaveTotals attaches cached calculation outputs to an existing project and
// advances its update timestamp to the calculation time.
func (s *Memory) SaveTotals(_ context.Context, projectID string, totals lca.CachedTotals) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[projectID]
	if !ok {
		return fmt.Errorf("%w: project %q", ErrNotFound, projectID)
	}
	p.Cached = &totals
	p.UpdatedAt = totals.CalculatedAt
	s.projects[projectID] = p
	return nil
}

// GetMaterial returns a copy of a stored material.
func (s *Memory) GetMaterial(_ context.Context, id string) (lca.Material, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.materials[id]
	if !ok {
		return lca.Material{}, fmt.Errorf("%w: material %q", ErrNotFound, id)
	}
	return cloneMaterial(m), nil
}

// ListMaterials returns all stored materials ordered by id.
func (s *Memory) ListMaterials(_ context.Context) ([]lca.Material, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]lca.Material, 0, len(s.materials))
	for _, m := range s.materials {
		out = append(out, cloneMaterial(m))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// PutMaterial inserts or replaces a material.
func (s *Memory) PutMaterial(_ context.Context, m lca.Material) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.materials[m.ID] = cloneMaterial(m)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *Memory) Close() error { return nil }

// ExportState clones the full store state for snapshot persistence.
func (s *Memory) ExportState() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Projects:  make(map[string]lca.Project, len(s.projects)),
		Materials: make(map[string]lca.Material, len(s.materials)),
	}
	for id, p := range s.projects {
		snap.Projects[id] = cloneProject(p)
	}
	for id, m := range s.materials {
		snap.Materials[id] = cloneMaterial(m)
	}
	return snap
}

// ImportState replaces the full store state from a snapshot.
func (s *Memory) ImportState(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.projects = make(map[string]lca.Project, len(snap.Projects))
	for id, p := range snap.Projects {
		s.projects[id] = cloneProject(p)
	}
	s.materials = make(map[string]lca.Material, len(snap.Materials))
	for id, m := range snap.Materials {
		s.materials[id] = cloneMaterial(m)
	}
}

func cloneFloatPtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneMaterial(m lca.Material) lca.Material {
	m.ReferenceServiceLife = cloneFloatPtr(m.ReferenceServiceLife)
	m.TransportDistanceKm = cloneFloatPtr(m.TransportDistanceKm)
	return m
}

func cloneLayer(l lca.Layer) lca.Layer {
	l.Coverage = cloneFloatPtr(l.Coverage)
	l.CustomLifespan = cloneFloatPtr(l.CustomLifespan)
	l.CustomTransportKm = cloneFloatPtr(l.CustomTransportKm)
	return l
}

func cloneElement(e lca.Element) lca.Element {
	if e.Layers != nil {
		layers := make([]lca.Layer, len(e.Layers))
		for i, l := range e.Layers {
			layers[i] = cloneLayer(l)
		}
		e.Layers = layers
	}
	return e
}

func cloneProject(p lca.Project) lca.Project {
	if p.Elements != nil {
		elements := make([]lca.Element, len(p.Elements))
		for i, e := range p.Elements {
			elements[i] = cloneElement(e)
		}
		p.Elements = elements
	}
	p.AnnualGasUse = cloneFloatPtr(p.AnnualGasUse)
	p.AnnualElectricity = cloneFloatPtr(p.AnnualElectricity)
	if p.Cached != nil {
		cached := *p.Cached
		p.Cached = &cached
	}
	return p
}
