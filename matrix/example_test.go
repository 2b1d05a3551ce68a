package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/gf2/matrix"
	"github.com/katalvlaran/gf2/vector"
)

// ExampleBuild lays input vectors out as columns next to the target.
func ExampleBuild() {
	vs := []vector.Vector{
		vector.Must(vector.Parse("[010]")),
		vector.Must(vector.Parse("[110]")),
		vector.Must(vector.Parse("[001]")),
	}
	target := vector.Must(vector.Parse("[101]"))

	m, err := matrix.Build(vs, target)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(m)
	// Output:
	// [0101]
	// [1100]
	// [0011]
}

// ExampleDense_RowEchelon runs both elimination passes in place.
func ExampleDense_RowEchelon() {
	vs := []vector.Vector{
		vector.Must(vector.Parse("[010]")),
		vector.Must(vector.Parse("[110]")),
		vector.Must(vector.Parse("[001]")),
	}
	m, _ := matrix.Build(vs, vector.Must(vector.Parse("[101]")))

	rank, _ := m.RowEchelon()
	fmt.Println("rank:", rank)
	fmt.Print(m)

	_ = m.BackPropagate()
	fmt.Print(m)
	// Output:
	// rank: 3
	// [1100]
	// [0101]
	// [0011]
	// [1001]
	// [0101]
	// [0011]
}
