package engine

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/mvandervelde/bouwlca/internal/logging"
)

// BatchOutcome reports one project's recalculation inside a batch run.
type BatchOutcome struct {
	ProjectID    string `json:"project_id"`
	ProjectName  string `json:"project_name"`
	Result       Result `json:"result"`
	Err          error  `json:"-"`
	ErrorMessage string `json:"error,omitempty"`
}

// RecalculateAll recomputes and re-persists every stored project, fanned
// out with a concurrency cap. Outcomes keep the store's listing order
// regardless of completion order; a failing project lands in its outcome
// instead of aborting the batch.
func (e *Engine) RecalculateAll(ctx context.Context) ([]BatchOutcome, error) {
	log := logging.FromContext(ctx)

	projects, err := e.store.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	outcomes := make([]BatchOutcome, len(projects))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, project := range projects {
		g.Go(func() error {
			result, calcErr := e.CalculateProject(gctx, project.ID)
			outcome := BatchOutcome{
				ProjectID:   project.ID,
				ProjectName: project.Name,
				Result:      result,
				Err:         calcErr,
			}
			if calcErr != nil {
				outcome.ErrorMessage = calcErr.Error()
			}
			outcomes[i] = outcome
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	failed := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failed++
		}
	}
	log.Info().
		Str("component", "engine").
		Int("projects", len(outcomes)).
		Int("failed", failed).
		Msg("batch recalculation complete")

	return outcomes, nil
}
