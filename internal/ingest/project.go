// Package ingest parses project description files into the domain model.
// Documents are YAML with a project tree and optional project-specific
// materials that shadow the shared catalog during calculation.
package ingest

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/oklog/ulid/v2"
	"gopkg.in/yaml.v3"

	"github.com/mvandervelde/bouwlca/internal/lca"
	"github.com/mvandervelde/bouwlca/internal/logging"
)

// DefaultStudyPeriodYears is assumed when a document leaves the study
// period unset, per the Dutch MPG assessment period for dwellings.
const DefaultStudyPeriodYears = 75.0

type constError string

func (e constError) Error() string { return string(e) }

// ErrMissingProjectName rejects documents without a project name.
const ErrMissingProjectName constError = "project name is required"

// projectDocument is the on-disk shape. The project tree reuses the
// domain YAML tags so documents mirror the stored model one to one.
type projectDocument struct {
	Project   lca.Project    `yaml:"project"`
	Materials []lca.Material `yaml:"materials"`
}

// ParseProject decodes a project document from YAML bytes, fills in
// generated ids, positions and timestamps, and validates the fields a
// calculation depends on. The returned materials are the document's
// project-specific entries, if any.
func ParseProject(ctx context.Context, data []byte) (lca.Project, []lca.Material, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("component", "ingest").
		Str("operation", "parse_project").
		Int("data_size_bytes", len(data)).
		Msg("parsing project document")

	var doc projectDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return lca.Project{}, nil, fmt.Errorf("parsing project document: %w", err)
	}

	project, err := normalizeProject(doc.Project)
	if err != nil {
		return lca.Project{}, nil, err
	}

	materials := make([]lca.Material, 0, len(doc.Materials))
	for _, m := range doc.Materials {
		if m.ID == "" {
			log.Warn().
				Str("component", "ingest").
				Str("material_name", m.Name).
				Msg("skipping project material without id")
			continue
		}
		materials = append(materials, m)
	}

	log.Debug().
		Str("component", "ingest").
		Str("project_id", project.ID).
		Int("elements", len(project.Elements)).
		Int("materials", len(materials)).
		Msg("project document parsed")

	return project, materials, nil
}

// LoadProjectFile reads and parses the project document at path.
func LoadProjectFile(ctx context.Context, path string) (lca.Project, []lca.Material, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("component", "ingest").
		Str("operation", "load_project").
		Str("project_path", path).
		Msg("loading project document")

	data, err := os.ReadFile(path)
	if err != nil {
		return lca.Project{}, nil, fmt.Errorf("reading project file: %w", err)
	}
	return ParseProject(ctx, data)
}

// normalizeProject fills generated fields and validates the document.
// Missing ids get a fresh ULID, unset layer positions follow document
// order, and an unset study period defaults to 75 years.
func normalizeProject(p lca.Project) (lca.Project, error) {
	if p.Name == "" {
		return lca.Project{}, ErrMissingProjectName
	}
	if p.GrossFloorArea <= 0 {
		return lca.Project{}, fmt.Errorf("project %q: %w: got %v", p.Name, lca.ErrInvalidFloorArea, p.GrossFloorArea)
	}
	if p.StudyPeriod == 0 {
		p.StudyPeriod = DefaultStudyPeriodYears
	}
	if p.StudyPeriod < 0 {
		return lca.Project{}, fmt.Errorf("project %q: %w: got %v", p.Name, lca.ErrInvalidStudyPeriod, p.StudyPeriod)
	}

	if p.ID == "" {
		p.ID = ulid.Make().String()
	}
	for i := range p.Elements {
		element := &p.Elements[i]
		if element.ID == "" {
			element.ID = ulid.Make().String()
		}
		for j := range element.Layers {
			layer := &element.Layers[j]
			if layer.ID == "" {
				layer.ID = ulid.Make().String()
			}
			if layer.Position == 0 {
				layer.Position = j + 1
			}
		}
	}

	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	return p, nil
}
