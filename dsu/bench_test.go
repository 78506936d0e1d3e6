package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlmaze/dsu"
)

// BenchmarkUnion measures n random unions over n = 1<<16 ids.
func BenchmarkUnion(b *testing.B) {
	const n = 1 << 16
	r := rand.New(rand.NewSource(42))
	pairs := make([][2]int, n)
	for i := range pairs {
		pairs[i] = [2]int{r.Intn(n), r.Intn(n)}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d, _ := dsu.New(n)
		for _, p := range pairs {
			d.Union(p[0], p[1])
		}
	}
}
