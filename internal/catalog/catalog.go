// Package catalog provides the materials reference data used to resolve
// layer material ids: a builtin set of common Dutch construction materials,
// optionally extended by versioned release files on disk.
//
// Release files are named <name>-<semver>.yaml and contain a list of
// materials. When several releases share a name, the newest version wins;
// materials from releases override builtins with the same id.
package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/mvandervelde/bouwlca/internal/lca"
	"github.com/mvandervelde/bouwlca/internal/logging"
)

// SchemaVersion is the release file schema this build understands. Release
// files may declare a semver constraint under "schema"; incompatible files
// are skipped with a warning.
const SchemaVersion = "1.0.0"

// Release describes one loaded release file.
type Release struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Path    string `json:"path"`
	Count   int    `json:"count"`
}

// Catalog resolves material ids to reference records. Immutable after Load.
type Catalog struct {
	materials map[string]lca.Material
	releases  []Release
	warnings  []string
}

// releaseFile is the on-disk shape of a catalog release.
type releaseFile struct {
	Schema    string         `yaml:"schema,omitempty"`
	Materials []lca.Material `yaml:"materials"`
}

// New returns a catalog holding only the builtin materials.
func New() *Catalog {
	c := &Catalog{materials: make(map[string]lca.Material, len(builtinMaterials))}
	for _, m := range builtinMaterials {
		c.materials[m.ID] = m
	}
	return c
}

// Load builds a catalog from the builtins plus the release files under dir.
// A missing or empty dir yields the builtin catalog without error.
func Load(ctx context.Context, dir string) (*Catalog, error) {
	log := logging.FromContext(ctx)
	c := New()

	if dir == "" {
		return c, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		log.Debug().
			Str("component", "catalog").
			Str("dir", dir).
			Msg("catalog directory does not exist, using builtins only")
		return c, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading catalog directory: %w", err)
	}

	type candidate struct {
		release Release
		version *semver.Version
	}
	latest := make(map[string]candidate)

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		name, version, ok := parseReleaseName(entry.Name())
		if !ok {
			c.warnings = append(c.warnings,
				fmt.Sprintf("Release file %s has no valid semver suffix, skipping", entry.Name()))
			continue
		}

		release := Release{
			Name:    name,
			Version: version.Original(),
			Path:    filepath.Join(dir, entry.Name()),
		}
		existing, seen := latest[name]
		if !seen || version.GreaterThan(existing.version) {
			latest[name] = candidate{release: release, version: version}
		}
	}

	names := make([]string, 0, len(latest))
	for name := range latest {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		winner := latest[name].release
		count, loadErr := c.loadReleaseFile(winner)
		if loadErr != nil {
			c.warnings = append(c.warnings,
				fmt.Sprintf("Release %s-%s could not be loaded: %v", winner.Name, winner.Version, loadErr))
			continue
		}
		winner.Count = count
		c.releases = append(c.releases, winner)

		log.Debug().
			Str("component", "catalog").
			Str("release", winner.Name).
			Str("version", winner.Version).
			Int("materials", count).
			Msg("catalog release loaded")
	}

	for _, warning := range c.warnings {
		log.Warn().
			Str("component", "catalog").
			Str("warning", warning).
			Msg("catalog warning")
	}

	log.Info().
		Str("component", "catalog").
		Int("releases", len(c.releases)).
		Int("materials", len(c.materials)).
		Msg("materials catalog ready")

	return c, nil
}

// loadReleaseFile merges one release file into the catalog and returns the
// number of materials it contributed.
func (c *Catalog) loadReleaseFile(release Release) (int, error) {
	data, err := os.ReadFile(release.Path)
	if err != nil {
		return 0, err
	}

	var file releaseFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return 0, fmt.Errorf("parsing yaml: %w", err)
	}

	if file.Schema != "" {
		constraint, err := semver.NewConstraint(file.Schema)
		if err != nil {
			return 0, fmt.Errorf("invalid schema constraint %q: %w", file.Schema, err)
		}
		if !constraint.Check(semver.MustParse(SchemaVersion)) {
			return 0, fmt.Errorf("schema constraint %q does not admit version %s", file.Schema, SchemaVersion)
		}
	}

	count := 0
	for _, m := range file.Materials {
		if m.ID == "" {
			continue
		}
		if m.Version == "" {
			m.Version = release.Version
		}
		c.materials[m.ID] = m
		count++
	}
	return count, nil
}

// parseReleaseName splits "<name>-<semver>.yaml" into its parts. The
// version is the longest hyphen-delimited suffix that parses as semver, so
// names may themselves contain hyphens and versions may carry prerelease
// tags.
func parseReleaseName(filename string) (string, *semver.Version, bool) {
	base := strings.TrimSuffix(filename, ".yaml")
	for i, r := range base {
		if r != '-' || i == 0 || i == len(base)-1 {
			continue
		}
		if v, err := semver.NewVersion(base[i+1:]); err == nil {
			return base[:i], v, true
		}
	}
	return "", nil, false
}

// Material returns the record for a material id.
func (c *Catalog) Material(id string) (lca.Material, bool) {
	m, ok := c.materials[id]
	return m, ok
}

// Materials returns all records ordered by id.
func (c *Catalog) Materials() []lca.Material {
	out := make([]lca.Material, 0, len(c.materials))
	for _, m := range c.materials {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Releases returns the loaded release files in name order.
func (c *Catalog) Releases() []Release { return c.releases }

// Warnings returns human-readable notes about files that were skipped.
func (c *Catalog) Warnings() []string { return c.warnings }

// Len returns the number of resolvable materials.
func (c *Catalog) Len() int { return len(c.materials) }
