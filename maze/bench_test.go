package maze_test

import (
	"testing"

	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/maze"
)

// BenchmarkGenerate measures a full 128×128 run with a fixed seed.
// Grid construction is excluded.
func BenchmarkGenerate(b *testing.B) {
	g, err := grid.New(128, 128)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := maze.Generate(g, maze.WithSeed(int64(i))); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}
