package components_test

import (
	"testing"

	"github.com/katalvlaran/pargraph/builder"
	"github.com/katalvlaran/pargraph/components"
)

func BenchmarkSequential(b *testing.B) {
	a := builder.RandomAdjacency(20000, 10, 60000, false, builder.WithSeed(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = components.Sequential(a)
	}
}

func BenchmarkParallel(b *testing.B) {
	a := builder.RandomAdjacency(20000, 10, 60000, false, builder.WithSeed(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = components.Parallel(a, 0)
	}
}
