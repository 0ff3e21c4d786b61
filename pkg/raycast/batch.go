package raycast

import (
	"runtime"
	"sync"

	"github.com/rigidsim/raycast/pkg/geom"
	"github.com/rigidsim/raycast/pkg/math"
)

// castTask is one ray of a batched query
type castTask struct {
	index int
	ray   math.Ray
}

// castResult carries a finished ray back with its batch position
type castResult struct {
	index int
	hit   Hit
	err   error
}

// CastAll casts many independent rays against the same scene, fanning
// the work across a pool of workers. Rays carry no ordering dependency
// between each other, so parallel execution cannot change any result.
// Output index i always corresponds to rays[i].
//
// If any ray fails, the hits slice is still returned in full (failed
// rays report NoHit) along with the error of the lowest-indexed failure.
func CastAll(s *geom.Scene, rays []math.Ray, opts Options, numWorkers int) ([]Hit, error) {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > len(rays) {
		numWorkers = len(rays)
	}

	hits := make([]Hit, len(rays))
	if len(rays) == 0 {
		return hits, nil
	}

	tasks := make(chan castTask, len(rays))
	results := make(chan castResult, len(rays))

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range tasks {
				hit, err := Cast(s, task.ray, opts)
				results <- castResult{index: task.index, hit: hit, err: err}
			}
		}()
	}

	for i, ray := range rays {
		tasks <- castTask{index: i, ray: ray}
	}
	close(tasks)
	wg.Wait()
	close(results)

	var firstErr error
	errIndex := len(rays)
	for result := range results {
		hits[result.index] = result.hit
		if result.err != nil && result.index < errIndex {
			firstErr = result.err
			errIndex = result.index
		}
	}

	return hits, firstErr
}
