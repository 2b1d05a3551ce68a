package vector_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/gf2/vector"
)

var sinkV vector.Vector

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{256, 4096} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := vector.Must(vector.Random(n))
			y := vector.Must(vector.Random(n))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkV = vector.MustAdd(x, y)
			}
		})
	}
}
