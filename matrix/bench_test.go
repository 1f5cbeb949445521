package matrix_test

import (
	"testing"

	"github.com/KiyoMenager/distance-matrix/matrix"
)

// benchmarkBuild runs Build on an n×n grid with the supplied options.
func benchmarkBuild(b *testing.B, n int, opts ...matrix.Option) {
	gen := func(r, c int) float64 { return float64(r ^ c) }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Build(n, n, gen, opts...); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}

// BenchmarkBuild_Sequential100 measures the default sequential fill on 100×100.
func BenchmarkBuild_Sequential100(b *testing.B) {
	benchmarkBuild(b, 100)
}

// BenchmarkBuild_Parallel100 measures the pooled fill on 100×100 with 4 workers.
func BenchmarkBuild_Parallel100(b *testing.B) {
	benchmarkBuild(b, 100, matrix.WithWorkers(4))
}

// BenchmarkAt measures the bounds-checked O(1) lookup.
func BenchmarkAt(b *testing.B) {
	m, err := matrix.Build(64, 64, func(r, c int) float64 { return float64(r + c) })
	if err != nil {
		b.Fatalf("Build failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.At(i%64, (i*7)%64); err != nil {
			b.Fatalf("At failed: %v", err)
		}
	}
}
