package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvandervelde/bouwlca/internal/catalog"
	"github.com/mvandervelde/bouwlca/internal/config"
	"github.com/mvandervelde/bouwlca/internal/engine"
	"github.com/mvandervelde/bouwlca/internal/lca"
	"github.com/mvandervelde/bouwlca/internal/logging"
	"github.com/mvandervelde/bouwlca/internal/store"
)

// outputTable and outputJSON are the accepted render formats.
const (
	outputTable = "table"
	outputJSON  = "json"
)

// runtime bundles everything a command needs to operate on projects.
type runtime struct {
	cfg      *config.Config
	store    store.Store
	catalog  *catalog.Catalog
	resolver engine.MaterialResolver
	engine   *engine.Engine
}

// storeResolver adapts the store's material lookups to the engine's
// resolver interface. Lookup errors degrade to a miss; the engine reports
// missing materials itself.
type storeResolver struct {
	ctx context.Context
	st  store.Store
}

func (r storeResolver) Material(id string) (lca.Material, bool) {
	m, err := r.st.GetMaterial(r.ctx, id)
	if err != nil {
		return lca.Material{}, false
	}
	return m, true
}

// openRuntime assembles the configured store, catalog and engine. Stored
// project materials shadow catalog entries during resolution. The caller
// must invoke the returned cleanup once done.
func openRuntime(cmd *cobra.Command, verbose bool) (*runtime, func(), error) {
	ctx := cmd.Context()

	cfg, err := config.New()
	if err != nil {
		return nil, nil, fmt.Errorf("loading configuration: %w", err)
	}

	st, err := store.Open(ctx, store.Options{
		Driver: cfg.Storage.Driver,
		Path:   cfg.Storage.Path,
		DSN:    cfg.Storage.DSN,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("opening project store: %w", err)
	}

	cat, err := catalog.Load(ctx, cfg.Catalog.Dir)
	if err != nil {
		_ = st.Close()
		return nil, nil, fmt.Errorf("loading material catalog: %w", err)
	}

	resolver := engine.ChainResolvers(storeResolver{ctx: ctx, st: st}, cat)
	eng := engine.New(st, resolver, engine.NewReferences(cfg.Reference), engine.Options{
		Verbose: verbose || cfg.Calculation.Verbose,
	})

	cleanup := func() {
		if closeErr := st.Close(); closeErr != nil {
			logging.FromContext(ctx).Warn().
				Str("component", "cli").
				Err(closeErr).
				Msg("closing project store failed")
		}
	}

	return &runtime{cfg: cfg, store: st, catalog: cat, resolver: resolver, engine: eng}, cleanup, nil
}

// resolveOutputFormat picks the effective render format: an explicit flag
// wins, then the configured default, then table.
func resolveOutputFormat(flagValue string, cfg *config.Config) (string, error) {
	format := flagValue
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	if format == "" {
		format = outputTable
	}
	if format != outputTable && format != outputJSON {
		return "", fmt.Errorf("unknown output format %q, expected %s or %s", format, outputTable, outputJSON)
	}
	return format, nil
}
