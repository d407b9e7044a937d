package triad_test

import (
	"testing"

	"github.com/katalvlaran/triad/triad"
)

// BenchmarkRun_30 measures a full default-size run (10 teams), population
// generation included.
func BenchmarkRun_30(b *testing.B) {
	for i := 0; i < b.N; i++ {
		m, err := triad.New(triad.WithSeed(int64(i)))
		if err != nil {
			b.Fatal(err)
		}
		if _, err = m.Run(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRun_90 measures a run over 30 teams.
func BenchmarkRun_90(b *testing.B) {
	for i := 0; i < b.N; i++ {
		m, err := triad.New(triad.WithPopulation(90), triad.WithSeed(int64(i)))
		if err != nil {
			b.Fatal(err)
		}
		if _, err = m.Run(); err != nil {
			b.Fatal(err)
		}
	}
}
