package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// runJobs dispatches jobs to the encoder pool, at most p.parallelism
// at a time. Dispatch follows input order; completion order is
// unconstrained since every destination is unique. Workers never
// return errors through the group: a failed encode is counted and the
// siblings keep running.
func (p *Pipeline) runJobs(ctx context.Context, jobs []Job) {
	if len(jobs) == 0 {
		return
	}
	group := new(errgroup.Group)
	group.SetLimit(clampParallelism(p.parallelism))
	for _, job := range jobs {
		group.Go(func() error {
			err := p.tools.Encoder.Encode(ctx, job.Source, job.Destination, job.Tags)
			if err != nil {
				p.counters.Failure()
				p.recordFailure(job.Source, err.Error())
			} else {
				p.counters.Success()
			}
			p.emit(Result{Job: job, Err: err})
			return nil
		})
	}
	_ = group.Wait()
}

// clampParallelism treats non-positive degrees as sequential; the
// configuration surface allows arbitrary user input here.
func clampParallelism(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}
