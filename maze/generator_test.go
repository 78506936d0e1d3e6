package maze_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/maze"
)

// GeneratorSuite exercises generation end to end.
type GeneratorSuite struct {
	suite.Suite
}

func TestGeneratorSuite(t *testing.T) {
	suite.Run(t, new(GeneratorSuite))
}

// mustGrid builds a grid or fails the test.
func (s *GeneratorSuite) mustGrid(m, n int) *grid.Grid {
	g, err := grid.New(m, n)
	require.NoError(s.T(), err)
	return g
}

// isSpanningTree checks, without the dsu package, that the erased walls form
// a tree over all cells: exactly C−1 edges and every cell reachable from 0.
func isSpanningTree(m *maze.Maze) error {
	cells := m.Grid.Cells()
	if len(m.Events) != cells-1 {
		return fmt.Errorf("%d passages for %d cells", len(m.Events), cells)
	}
	adj := m.Passages()
	seen := make([]bool, cells)
	stack := []int{0}
	seen[0] = true
	reached := 1
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nb := range adj[c] {
			if !seen[nb] {
				seen[nb] = true
				reached++
				stack = append(stack, nb)
			}
		}
	}
	if reached != cells {
		return fmt.Errorf("reached %d of %d cells", reached, cells)
	}
	return nil
}

// TestSpanningTree verifies the perfect-maze property over many shapes/seeds.
func (s *GeneratorSuite) TestSpanningTree() {
	for _, shape := range [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 7}, {7, 3}, {10, 10}, {32, 32}} {
		for seed := int64(1); seed <= 5; seed++ {
			g := s.mustGrid(shape[0], shape[1])
			m, err := maze.Generate(g, maze.WithSeed(seed))
			require.NoError(s.T(), err, "%v seed %d", shape, seed)

			require.NoError(s.T(), isSpanningTree(m), "%v seed %d", shape, seed)
			sum := m.Summary
			s.Equal(g.Cells()-1, sum.Connections)
			s.Equal(sum.Connections+sum.Rejected, sum.Scanned)
			s.LessOrEqual(sum.Scanned, sum.Walls)
			s.Equal(seed, sum.Seed)

			for i, ev := range m.Events {
				s.Equal(i+1, ev.Seq)
				s.Equal(g.Segment(ev.Wall), ev.Segment)
			}
		}
	}
}

// TestTwoByTwo_AllOrders runs every one of the 24 wall orders of the 2×2
// grid: always three unions, always exactly one wall left standing.
func (s *GeneratorSuite) TestTwoByTwo_AllOrders() {
	g := s.mustGrid(2, 2)
	for _, order := range permutations(4) {
		m, err := maze.Generate(g, maze.WithOrder(order))
		require.NoError(s.T(), err, "order %v", order)
		s.Equal(3, m.Summary.Connections, "order %v", order)
		s.Equal(1, m.Summary.Walls-m.Summary.Connections, "order %v", order)
		s.LessOrEqual(m.Summary.Rejected, 1, "order %v", order)
		s.NoError(isSpanningTree(m))
	}
}

// TestSingleColumn_AlwaysAllWalls checks that a line graph keeps no wall.
func (s *GeneratorSuite) TestSingleColumn_AlwaysAllWalls() {
	g := s.mustGrid(1, 5)
	for _, order := range permutations(4) {
		m, err := maze.Generate(g, maze.WithOrder(order))
		require.NoError(s.T(), err)
		s.Equal(4, m.Summary.Connections)
		s.Zero(m.Summary.Rejected)
	}
}

// TestSingleCell completes without scanning anything.
func (s *GeneratorSuite) TestSingleCell() {
	g := s.mustGrid(1, 1)
	rec := &maze.Recorder{}
	gen, err := maze.NewGenerator(g, maze.WithReporter(rec), maze.WithSeed(3))
	require.NoError(s.T(), err)
	s.Equal(maze.StateRunning, gen.State())

	sum, err := gen.Run()
	require.NoError(s.T(), err)
	s.Equal(maze.StateComplete, gen.State())
	s.Zero(sum.Connections)
	s.Zero(sum.Scanned)
	s.True(rec.Done)
	s.Empty(rec.Events)
}

// TestDeterminism_Seed reproduces an identical erase sequence from a seed.
func (s *GeneratorSuite) TestDeterminism_Seed() {
	a, err := maze.Generate(s.mustGrid(12, 9), maze.WithSeed(2024))
	require.NoError(s.T(), err)
	b, err := maze.Generate(s.mustGrid(12, 9), maze.WithSeed(2024))
	require.NoError(s.T(), err)
	s.Equal(a.Events, b.Events)

	c, err := maze.Generate(s.mustGrid(12, 9), maze.WithRand(rand.New(rand.NewSource(2024))))
	require.NoError(s.T(), err)
	s.Equal(a.Events, c.Events, "WithRand with the same seed shuffles identically")
	s.Zero(c.Summary.Seed)
}

// TestDeterminism_Order reproduces an identical erase sequence from a
// generator's own scan order.
func (s *GeneratorSuite) TestDeterminism_Order() {
	g := s.mustGrid(6, 4)
	first, err := maze.NewGenerator(g)
	require.NoError(s.T(), err)
	scan := first.Order()

	index := make(map[grid.Wall]int, g.NumWalls())
	for i, w := range g.Walls() {
		index[w] = i
	}
	order := make([]int, len(scan))
	for k, w := range scan {
		order[k] = index[w]
	}

	rec1, rec2 := &maze.Recorder{}, &maze.Recorder{}
	gen1, err := maze.NewGenerator(g, maze.WithOrder(order), maze.WithReporter(rec1))
	require.NoError(s.T(), err)
	gen2, err := maze.NewGenerator(g, maze.WithOrder(order), maze.WithReporter(rec2))
	require.NoError(s.T(), err)
	_, err = gen1.Run()
	require.NoError(s.T(), err)
	_, err = gen2.Run()
	require.NoError(s.T(), err)
	s.Equal(rec1.Events, rec2.Events)
	s.Equal(scan, gen1.Order())
}

// TestReporterSequence checks Begin → Erase* → End and Tee fan-out.
func (s *GeneratorSuite) TestReporterSequence() {
	g := s.mustGrid(4, 3)
	log := &callLog{}
	rec := &maze.Recorder{}
	_, err := maze.Generate(g, maze.WithSeed(9), maze.WithReporter(maze.Tee(log, nil, rec)))
	require.NoError(s.T(), err)

	require.NotEmpty(s.T(), log.calls)
	s.Equal("begin", log.calls[0])
	s.Equal("end", log.calls[len(log.calls)-1])
	s.Len(log.calls, g.Cells()-1+2)
	s.Equal(g.Geometry(), rec.Geometry)
}

// TestRunTwice rejects a second run.
func (s *GeneratorSuite) TestRunTwice() {
	gen, err := maze.NewGenerator(s.mustGrid(3, 3), maze.WithSeed(1))
	require.NoError(s.T(), err)
	_, err = gen.Run()
	require.NoError(s.T(), err)
	_, err = gen.Run()
	s.True(errors.Is(err, maze.ErrAlreadyRun))
}

// TestOptionErrors covers every construction failure.
func (s *GeneratorSuite) TestOptionErrors() {
	g := s.mustGrid(2, 2)
	cases := []struct {
		name string
		g    *grid.Grid
		opts []maze.Option
		err  error
	}{
		{"NilGrid", nil, nil, maze.ErrNilGrid},
		{"NilRand", g, []maze.Option{maze.WithRand(nil)}, maze.ErrOptionViolation},
		{"NilReporter", g, []maze.Option{maze.WithReporter(nil)}, maze.ErrOptionViolation},
		{"ShortOrder", g, []maze.Option{maze.WithOrder([]int{0, 1, 2})}, maze.ErrOptionViolation},
		{"RepeatedOrder", g, []maze.Option{maze.WithOrder([]int{0, 1, 1, 2})}, maze.ErrOptionViolation},
		{"OutOfRangeOrder", g, []maze.Option{maze.WithOrder([]int{0, 1, 2, 4})}, maze.ErrOptionViolation},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := maze.NewGenerator(tc.g, tc.opts...)
			s.True(errors.Is(err, tc.err), "got %v", err)
			_, err = maze.Generate(tc.g, tc.opts...)
			s.True(errors.Is(err, tc.err), "Generate got %v", err)
		})
	}
}

// TestMazeHelpers covers Removed, Open and Replay.
func (s *GeneratorSuite) TestMazeHelpers() {
	g := s.mustGrid(2, 2)
	// walls in construction order: 0-2, 1-3, 0-1, 2-3
	m, err := maze.Generate(g, maze.WithOrder([]int{2, 0, 1, 3}))
	require.NoError(s.T(), err)

	got := make([]string, 0, 3)
	for _, w := range m.Removed() {
		got = append(got, w.String())
	}
	s.Equal([]string{"0-1", "0-2", "1-3"}, got)
	s.True(m.Open(1, 0))
	s.False(m.Open(2, 3))
	s.Equal([][]int{{1, 2}, {0, 3}, {0}, {1}}, m.Passages())

	rec := &maze.Recorder{}
	m.Replay(rec)
	s.Equal(m.Events, rec.Events)
	s.Equal(m.Summary, rec.Summary)
}

// TestRecorder_ReuseKeepsEarlierEvents checks that a second run through the
// same Recorder leaves the first run's event slice untouched.
func (s *GeneratorSuite) TestRecorder_ReuseKeepsEarlierEvents() {
	g := s.mustGrid(2, 2)
	rec := &maze.Recorder{}

	_, err := maze.Generate(g, maze.WithOrder([]int{2, 0, 1, 3}), maze.WithReporter(rec))
	require.NoError(s.T(), err)
	first := rec.Events
	want := append([]maze.EraseEvent(nil), first...)

	_, err = maze.Generate(g, maze.WithOrder([]int{3, 2, 1, 0}), maze.WithReporter(rec))
	require.NoError(s.T(), err)

	s.Equal(want, first)
	s.Equal("2-3", rec.Events[0].Wall.String())
	s.Equal("0-1", first[0].Wall.String())
}

// callLog records the reporter call sequence.
type callLog struct{ calls []string }

func (c *callLog) Begin(grid.Geometry)   { c.calls = append(c.calls, "begin") }
func (c *callLog) Erase(maze.EraseEvent) { c.calls = append(c.calls, "erase") }
func (c *callLog) End(maze.Summary)      { c.calls = append(c.calls, "end") }

// permutations returns every permutation of [0, n) in lexicographic order.
func permutations(n int) [][]int {
	var out [][]int
	var rec func(prefix []int, used []bool)
	rec = func(prefix []int, used []bool) {
		if len(prefix) == n {
			out = append(out, append([]int(nil), prefix...))
			return
		}
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			rec(append(prefix, i), used)
			used[i] = false
		}
	}
	rec(make([]int, 0, n), make([]bool, n))
	return out
}
