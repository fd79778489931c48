package subsetdp_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/valveflow/subsetdp"
)

func BenchmarkBuild(b *testing.B) {
	in := randomInput(b, 3, 16, 0.15)
	for _, w := range []int{1, 4} {
		b.Run(fmt.Sprintf("n=%d/workers=%d", len(in.Values), w), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := subsetdp.Build(context.Background(), in, 26, subsetdp.WithWorkers(w)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
