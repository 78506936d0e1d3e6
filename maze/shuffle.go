// Package maze - randomness used by the generator.
//
// All randomness is confined to this file: one *rand.Rand per run and one
// Fisher–Yates pass over the walls.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each Generator owns its own.
package maze

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/lvlmaze/grid"
)

// clockSeed returns a seed for runs that did not ask for one.
func clockSeed() int64 {
	return time.Now().UnixNano()
}

// resolveRand picks the run's random source and the seed to report.
// Policy: explicit Rand wins (seed reported as 0), then explicit Seed, then
// a clock seed.
func resolveRand(o Options) (*rand.Rand, int64) {
	if o.Rand != nil {
		return o.Rand, 0
	}
	seed := o.Seed
	if !o.SeedSet {
		seed = clockSeed()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// shuffleWalls performs an in-place Fisher–Yates shuffle of walls.
// Every permutation is equally likely: position i swaps with a uniform
// j ∈ [0, i], walking from the end.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleWalls(walls []grid.Wall, r *rand.Rand) {
	for i := len(walls) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		walls[i], walls[j] = walls[j], walls[i]
	}
}

// orderWalls applies an explicit permutation. It returns ErrOptionViolation
// unless order contains every index of walls exactly once.
//
// Complexity: O(n) time and memory.
func orderWalls(walls []grid.Wall, order []int) ([]grid.Wall, error) {
	if len(order) != len(walls) {
		return nil, fmt.Errorf("%w: order has %d entries for %d walls",
			ErrOptionViolation, len(order), len(walls))
	}
	seen := make([]bool, len(walls))
	out := make([]grid.Wall, len(walls))
	for k, idx := range order {
		if idx < 0 || idx >= len(walls) || seen[idx] {
			return nil, fmt.Errorf("%w: order[%d]=%d is not a permutation entry",
				ErrOptionViolation, k, idx)
		}
		seen[idx] = true
		out[k] = walls[idx]
	}
	return out, nil
}
