package maze

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/grid"
)

// TestRun_InvariantViolation truncates the scan order to simulate a broken
// wall collection: the run must fail loudly, never read past the end, and
// never report End.
func TestRun_InvariantViolation(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)
	rec := &Recorder{}
	gen, err := NewGenerator(g, WithSeed(5), WithReporter(rec))
	require.NoError(t, err)
	gen.walls = gen.walls[:2]

	sum, err := gen.Run()
	assert.True(t, errors.Is(err, ErrInvariantViolation), "got %v", err)
	assert.Equal(t, StateRunning, gen.State())
	assert.Equal(t, 2, sum.Scanned)
	assert.False(t, rec.Done)
	assert.NotErrorIs(t, err, ErrAlreadyRun)
}

// TestShuffleWalls_Uniform draws many shuffles of three walls and checks
// that each of the 3! orders shows up close to 1/6 of the time.
func TestShuffleWalls_Uniform(t *testing.T) {
	const trials = 60000
	base := []grid.Wall{{Cell1: 0}, {Cell1: 1}, {Cell1: 2}}
	r := rand.New(rand.NewSource(11))
	counts := make(map[[3]int]int)
	buf := make([]grid.Wall, 3)
	for i := 0; i < trials; i++ {
		copy(buf, base)
		shuffleWalls(buf, r)
		counts[[3]int{buf[0].Cell1, buf[1].Cell1, buf[2].Cell1}]++
	}
	require.Len(t, counts, 6)
	for perm, c := range counts {
		assert.InDelta(t, trials/6, c, trials/60, "permutation %v", perm)
	}
}

// TestResolveRand_Policy pins the seed policy.
func TestResolveRand_Policy(t *testing.T) {
	_, seed := resolveRand(Options{Seed: 42, SeedSet: true})
	assert.Equal(t, int64(42), seed)

	_, seed = resolveRand(Options{Seed: 0, SeedSet: true})
	assert.Zero(t, seed, "an explicit zero seed is honoured")

	r := rand.New(rand.NewSource(1))
	got, seed := resolveRand(Options{Rand: r, Seed: 42, SeedSet: true})
	assert.Same(t, r, got)
	assert.Zero(t, seed)
}
