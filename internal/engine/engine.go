// Package engine aggregates per-layer lifecycle impacts into element and
// project totals, checks MPG compliance, and renders results. Computation
// is pure; loading the project tree and caching totals go through the
// store, composed in CalculateProject.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/mvandervelde/bouwlca/internal/lca"
	"github.com/mvandervelde/bouwlca/internal/logging"
	"github.com/mvandervelde/bouwlca/internal/store"
)

// MaterialResolver resolves material ids to catalog records during a
// calculation. A failed lookup degrades the layer to zero impact.
type MaterialResolver interface {
	Material(id string) (lca.Material, bool)
}

// ResolverFunc adapts a function to MaterialResolver.
type ResolverFunc func(id string) (lca.Material, bool)

// Material implements MaterialResolver.
func (f ResolverFunc) Material(id string) (lca.Material, bool) { return f(id) }

// ChainResolvers tries each resolver in order and returns the first hit.
// Project-specific materials therefore shadow catalog entries.
func ChainResolvers(resolvers ...MaterialResolver) MaterialResolver {
	return ResolverFunc(func(id string) (lca.Material, bool) {
		for _, r := range resolvers {
			if r == nil {
				continue
			}
			if m, ok := r.Material(id); ok {
				return m, true
			}
		}
		return lca.Material{}, false
	})
}

// ReferenceSource supplies the MPG ceiling in kg CO2e/m²/yr for a building
// type. A miss means compliance is not applicable, never a failure.
type ReferenceSource interface {
	ReferenceValue(buildingType string) (float64, bool)
}

// Options tune a calculation run.
type Options struct {
	// Verbose emits per-layer debug events through the context logger.
	// Computed results are identical with it on or off.
	Verbose bool
}

// Engine computes project lifecycle results.
type Engine struct {
	store      store.Store
	materials  MaterialResolver
	references ReferenceSource
	opts       Options
}

// New assembles an engine. The store may be nil when only Compute is used.
func New(st store.Store, materials MaterialResolver, references ReferenceSource, opts Options) *Engine {
	return &Engine{store: st, materials: materials, references: references, opts: opts}
}

// Compute runs the full phase pipeline over an in-memory project tree and
// returns the transient result. It performs no I/O and leaves CalculatedAt
// unset, so identical trees produce identical results.
func (e *Engine) Compute(ctx context.Context, project lca.Project) (Result, error) {
	if err := validateProject(project); err != nil {
		return Result{}, err
	}
	log := logging.FromContext(ctx)

	result := Result{ProjectID: project.ID, ProjectName: project.Name}

	for _, element := range project.Elements {
		impact, c := e.computeElement(ctx, element, project.StudyPeriod)
		result.A1A3 += impact.A1A3
		result.A4 += impact.A4
		result.A5 += impact.A5
		result.B4 += impact.B4
		result.C1C2 += c.c1c2
		result.C3 += c.c3
		result.C4 += c.c4
		result.D += impact.D
		result.Elements = append(result.Elements, impact)
	}

	result.TotalAToC = result.A1A3 + result.A4 + result.A5 + result.B4 + result.C1C2 + result.C3 + result.C4
	result.TotalWithD = result.TotalAToC + result.D

	// Percentages only close to 100 over a positive total; for zero or
	// negative totals every share stays zero.
	if result.TotalAToC > 0 {
		for i := range result.Elements {
			result.Elements[i].Percentage = result.Elements[i].Total / result.TotalAToC * 100
		}
	}

	result.Stages = StageBreakdown{
		Production:     result.A1A3,
		Transport:      result.A4,
		Construction:   result.A5,
		UseReplacement: result.B4,
		EndOfLife:      result.TotalC(),
		Benefits:       result.D,
	}

	normalized, err := lca.Normalize(result.TotalAToC, project.GrossFloorArea, project.StudyPeriod)
	if err != nil {
		return Result{}, err
	}
	result.PerM2 = normalized.PerM2
	result.PerM2PerYear = normalized.PerM2PerYear

	result.OperationalCarbon = lca.OperationalCarbon(project)
	result.TotalCarbon = result.PerM2PerYear + result.OperationalCarbon/project.StudyPeriod

	result.Compliance = e.checkCompliance(project, result.PerM2PerYear)

	log.Debug().
		Str("component", "engine").
		Str("project_id", project.ID).
		Int("elements", len(result.Elements)).
		Float64("total_a_to_c", result.TotalAToC).
		Float64("per_m2_year", result.PerM2PerYear).
		Msg("project computed")

	return result, nil
}

// Persist writes the cached totals of a computed result onto the stored
// project. Kept separate from Compute so calculations stay testable
// without a database and the single-writer boundary is explicit.
func (e *Engine) Persist(ctx context.Context, projectID string, result Result) error {
	return e.store.SaveTotals(ctx, projectID, result.CachedTotals())
}

// CalculateProject loads a project from the store, computes its result and
// persists the cached totals. When only the persist step fails the fresh
// result is still returned alongside ErrPersistFailed, so callers can
// render it and surface the caching problem separately.
func (e *Engine) CalculateProject(ctx context.Context, projectID string) (Result, error) {
	log := logging.FromContext(ctx)
	started := time.Now()

	project, err := e.store.GetProject(ctx, projectID)
	if err != nil {
		return Result{}, fmt.Errorf("loading project: %w", err)
	}

	result, err := e.Compute(ctx, project)
	if err != nil {
		return Result{}, err
	}
	result.CalculatedAt = time.Now().UTC()

	if err := e.Persist(ctx, projectID, result); err != nil {
		log.Error().
			Str("component", "engine").
			Str("project_id", projectID).
			Err(err).
			Msg("persisting cached totals failed, returning fresh result")
		return result, fmt.Errorf("%w: %w", ErrPersistFailed, err)
	}

	log.Info().
		Str("component", "engine").
		Str("project_id", projectID).
		Float64("total_a_to_c", result.TotalAToC).
		Bool("compliant", result.Compliance.Compliant).
		Dur("duration", time.Since(started)).
		Msg("project calculated")

	return result, nil
}

func (e *Engine) resolveMaterial(id string) (lca.Material, bool) {
	if e.materials == nil {
		return lca.Material{}, false
	}
	return e.materials.Material(id)
}

func (e *Engine) checkCompliance(project lca.Project, perM2PerYear float64) Compliance {
	c := Compliance{BuildingType: project.BuildingType}
	if e.references == nil {
		return c
	}
	value, ok := e.references.ReferenceValue(project.BuildingType)
	if !ok {
		return c
	}
	c.ReferenceValue = value
	c.Applicable = true
	c.Compliant = perM2PerYear <= value
	return c
}

func validateProject(p lca.Project) error {
	if p.GrossFloorArea <= 0 {
		return fmt.Errorf("project %s: %w: got %v", p.ID, lca.ErrInvalidFloorArea, p.GrossFloorArea)
	}
	if p.StudyPeriod <= 0 {
		return fmt.Errorf("project %s: %w: got %v", p.ID, lca.ErrInvalidStudyPeriod, p.StudyPeriod)
	}
	return nil
}
