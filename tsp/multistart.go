package tsp

import (
	"golang.org/x/sync/errgroup"
)

// restart is the outcome of one multi-start run.
type restart struct {
	tour []int
	cost float64
}

// multiStart runs opts.Restarts independent constructions, each refined by
// 2-opt, on at most opts.workers() goroutines, and returns the cheapest tour.
//
// Restart r < min(Restarts, n) is a nearest-neighbour tour from vertex
// r·n/min(Restarts, n), spreading starts across the index range; later
// restarts are random tours from stream r of opts.Seed. The winner is the
// lowest cost, ties going to the lowest r, so the outcome does not depend on
// scheduling.
//
// Complexity: O(Restarts·passes·n²) work, divided across workers.
func multiStart(t *weights, opts Options, dl deadline) ([]int, float64) {
	count := opts.Restarts
	if count < 1 {
		count = 1
	}
	nn := min(count, t.n)

	results := make([]restart, count)

	var g errgroup.Group
	g.SetLimit(opts.workers())
	for r := 0; r < count; r++ {
		r := r
		g.Go(func() error {
			var init []int
			if r < nn {
				init = nearestNeighborTour(t, r*t.n/nn, opts.StartVertex)
			} else {
				init = randomTour(t.n, opts.StartVertex, streamRNG(opts.Seed, r))
			}
			tour, cost := twoOpt(t, init, opts, dl)
			canonicalizeOrientationInPlace(tour)
			results[r] = restart{tour: tour, cost: cost}

			return nil
		})
	}
	// Restarts never fail; Wait only joins the workers.
	_ = g.Wait()

	best := 0
	for r := 1; r < count; r++ {
		if results[r].cost < results[best].cost {
			best = r
		}
	}

	return results[best].tour, results[best].cost
}
