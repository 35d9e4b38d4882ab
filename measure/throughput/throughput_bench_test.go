package throughput

import (
	"testing"

	"github.com/cwbudde/algo-bench/memscan"
)

func BenchmarkRunKindF64(b *testing.B) {
	r, err := NewRunner(memscan.New(), Config{Passes: 1})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()

	for b.Loop() {
		if _, err := r.RunKind(memscan.KindF64); err != nil {
			b.Fatal(err)
		}
	}
}
