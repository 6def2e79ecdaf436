package pipeline

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"entity-annotator/internal/model"
)

// BatchOptions controls RunAll.
type BatchOptions struct {
	// Workers limits concurrent entities. Zero means GOMAXPROCS.
	Workers int
	// KeepGoing skips failing entities instead of aborting the batch.
	KeepGoing bool
}

// RunAll runs the pipeline over independent entities concurrently.
// Results are positional: results[i] belongs to entities[i] and is nil for
// entities that were never started. Without KeepGoing the first failure
// cancels the remaining entities; with it every entity runs and the failures
// are returned joined in entity order.
func (p *Pipeline) RunAll(ctx context.Context, entities []*model.Entity, opts BatchOptions) ([]*Result, error) {
	seen := make(map[*model.Entity]struct{}, len(entities))
	for i, e := range entities {
		if e == nil {
			return nil, fmt.Errorf("entity #%d is nil", i)
		}

		if _, dup := seen[e]; dup {
			return nil, fmt.Errorf("entity %s is listed twice", e.Name)
		}

		seen[e] = struct{}{}
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]*Result, len(entities))
	failed := make([]error, len(entities))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, e := range entities {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := p.Run(e)
			results[i] = res

			if err == nil {
				return nil
			}

			if !opts.KeepGoing {
				return err
			}

			failed[i] = err

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, errors.Join(failed...)
}
