package captable

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ComputeParallel is like Compute but splits purchases into contiguous chunks
// accumulated concurrently by at most workers goroutines.
//
// Partial tallies are merged in chunk order before the ownership pass, so
// the report is identical to the one Compute returns, whatever the number of
// workers.
func ComputeParallel(ctx context.Context, on Date, purchases []Purchase, workers int, opts ...Option) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	c := NewCapTable(on, opts...)
	log := zerolog.Ctx(ctx)

	workers = max(1, min(workers, len(purchases)))
	size := (len(purchases) + workers - 1) / workers
	var chunks [][]Purchase
	for lo := 0; lo < len(purchases); lo += size {
		chunks = append(chunks, purchases[lo:min(lo+size, len(purchases))])
	}
	log.Debug().Int("purchases", len(purchases)).Int("chunks", len(chunks)).Int("size", size).Msg("partitioned purchases")

	parts := make([]*tally, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		g.Go(func() error {
			t := newTally()
			for j, p := range chunk {
				if j%1024 == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				if !OnOrBefore(p, on) {
					continue
				}
				if err := t.accumulate(p); err != nil {
					return err
				}
			}
			parts[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	for _, t := range parts {
		if err := c.tally.merge(t); err != nil {
			return Report{}, err
		}
	}
	return c.Report()
}
