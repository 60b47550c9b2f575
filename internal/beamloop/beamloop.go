// Package beamloop runs per-beam work serially or with bounded parallelism.
//
// Every pipeline stage except the in-beam phase unfolding walk is independent
// per beam, so the natural parallel granularity is one goroutine per beam,
// never per gate within a beam.
package beamloop

import "golang.org/x/sync/errgroup"

// Each invokes fn for every beam index in [0, beams). With workers <= 1 the
// loop is plain and serial; otherwise at most workers goroutines run
// concurrently. The first error stops scheduling and is returned.
func Each(beams, workers int, fn func(beam int) error) error {
	if workers <= 1 {
		for b := range beams {
			if err := fn(b); err != nil {
				return err
			}
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for b := range beams {
		g.Go(func() error { return fn(b) })
	}
	return g.Wait()
}
