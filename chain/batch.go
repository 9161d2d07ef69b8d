// SPDX-License-Identifier: MIT

package chain

import (
	"context"

	"github.com/google/uuid"
	"github.com/katalvlaran/chainmul/matrix"
	"golang.org/x/sync/errgroup"
)

// Job is one independent chain for MultiplyBatch. A nil Order folds left to
// right (MultiplyAll); otherwise MultiplyOrdered is used.
type Job struct {
	ID       string // filled with a random UUID when empty
	Matrices []matrix.Matrix
	Order    *Order
}

// Result is the outcome of one Job. Exactly one of Product and Err is set.
type Result struct {
	ID      string
	Product matrix.Matrix
	Err     error
}

// MultiplyBatch runs independent jobs concurrently, at most WithWorkers at a
// time. results[i] always belongs to jobs[i].
//
// Behavior highlights:
//   - Each fold stays sequential; only different jobs run in parallel.
//   - A failing job does not cancel its siblings.
//   - Once ctx is done, jobs that have not started get ctx.Err().
func (m *Multiplier) MultiplyBatch(ctx context.Context, jobs []Job) []Result {
	results := make([]Result, len(jobs))

	var g errgroup.Group
	g.SetLimit(m.opts.workers)
	for i := range jobs {
		i := i // per-iteration copy for the closure (go < 1.22 loop semantics)
		id := jobs[i].ID
		if id == "" {
			id = uuid.NewString()
		}
		results[i].ID = id

		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Product, results[i].Err = m.runJob(jobs[i])
			return nil
		})
	}
	_ = g.Wait() // job errors live in results

	return results
}

// runJob dispatches one job to the matching fold.
func (m *Multiplier) runJob(j Job) (matrix.Matrix, error) {
	if j.Order == nil {
		return m.MultiplyAll(j.Matrices)
	}

	return m.MultiplyOrdered(j.Matrices, *j.Order)
}
