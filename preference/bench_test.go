package preference_test

import (
	"testing"

	"github.com/katalvlaran/triad/preference"
)

// BenchmarkGenerate_30 measures building a full population of 30 models
// (30 queues of C(29,2) = 406 pairs each).
func BenchmarkGenerate_30(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := preference.Generate(30, preference.NewSource(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkOutranks measures the O(1) pair comparison.
func BenchmarkOutranks(b *testing.B) {
	order := make([]int, 0, 89)
	for id := 1; id < 90; id++ {
		order = append(order, id)
	}
	m, err := preference.NewModel(0, order)
	if err != nil {
		b.Fatal(err)
	}
	p := preference.Pair{First: 40, Second: 7}
	q := preference.Pair{First: 12, Second: 88}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Outranks(p, q)
	}
}
