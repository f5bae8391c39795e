// Package scenario runs configured chains of shape operations against
// reference representations and reports which results share memory with
// their source.
package scenario

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/born-ml/represent/internal/config"
	"github.com/born-ml/represent/internal/representation"
	"github.com/born-ml/represent/internal/tensor"
)

// Result is the outcome of one scenario on one fixture.
type Result struct {
	Fixture  string
	Scenario string
	// Shape is the shape after the last successful step. When a step fails,
	// it is the shape the chain was left in.
	Shape tensor.Shape
	// Shared reports, per component position, whether the result may share
	// memory with the fixture's component.
	Shared []bool
	// DiffShared reports whether the result's differential shares memory
	// with the fixture's differential; false when there is none.
	DiffShared bool
	Err        error
}

// Report collects the results of one run, ordered by scenario then fixture.
type Report struct {
	RunID      string
	Components []string
	Results    []Result
}

type step struct {
	name string
	op   Operation
	args []int
}

// Run builds fresh fixtures for every scenario and evaluates them
// concurrently. Operation errors are recorded in the results; Run itself
// fails only for unknown operations, fixtures that cannot be built, or a
// cancelled context.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	plans := make([][]step, len(cfg.Scenarios))
	for i, sc := range cfg.Scenarios {
		for _, st := range sc.Steps {
			op, err := Lookup(st.Op)
			if err != nil {
				return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
			}
			plans[i] = append(plans[i], step{name: st.Op, op: op, args: st.Args})
		}
	}

	runID := uuid.NewString()
	logger = logger.With(zap.String("run_id", runID))
	logger.Info("run started",
		zap.Int("scenarios", len(cfg.Scenarios)),
		zap.Strings("fixtures", FixtureNames))

	results := make([]Result, len(cfg.Scenarios)*len(FixtureNames))
	g, gctx := errgroup.WithContext(ctx)
	if cfg.Concurrency > 0 {
		g.SetLimit(cfg.Concurrency)
	}
	for i, sc := range cfg.Scenarios {
		for j, fixture := range FixtureNames {
			i, sc, fixture := i, sc, fixture
			idx := i*len(FixtureNames) + j
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				res, err := evaluate(fixture, sc.Name, plans[i], cfg.Grid)
				if err != nil {
					return err
				}
				if res.Err != nil {
					logger.Debug("step failed",
						zap.String("fixture", fixture),
						zap.String("scenario", sc.Name),
						zap.Error(res.Err))
				}
				results[idx] = res
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info("run finished", zap.Int("results", len(results)))
	return &Report{
		RunID:      runID,
		Components: representation.Spherical.ComponentNames(),
		Results:    results,
	}, nil
}

func evaluate(fixture, scenario string, plan []step, grid config.GridConfig) (Result, error) {
	src, err := BuildFixture(fixture, grid)
	if err != nil {
		return Result{}, fmt.Errorf("fixture %s: %w", fixture, err)
	}
	srcComps := src.Components()
	srcDiff, _ := src.Differential("s")
	var srcDiffComp *tensor.Array
	if srcDiff != nil {
		srcDiffComp = srcDiff.Components()[0].Value
	}

	res := Result{Fixture: fixture, Scenario: scenario}
	cur := src
	for _, st := range plan {
		next, err := st.op(cur, st.args)
		if err != nil {
			res.Err = fmt.Errorf("%s: %w", st.name, err)
			break
		}
		cur = next
	}

	res.Shape = cur.Shape()
	comps := cur.Components()
	res.Shared = make([]bool, len(comps))
	for i := range comps {
		if i < len(srcComps) {
			res.Shared[i] = tensor.MayShareMemory(comps[i].Value, srcComps[i].Value)
		}
	}
	if d, ok := cur.Differential("s"); ok && srcDiffComp != nil {
		res.DiffShared = tensor.MayShareMemory(d.Components()[0].Value, srcDiffComp)
	}
	return res, nil
}
