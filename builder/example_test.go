package builder_test

import (
	"fmt"

	"github.com/katalvlaran/simplicial/builder"
)

// ExampleBuildComplex composes a circle and a separate segment.
func ExampleBuildComplex() {
	c, err := builder.BuildComplex("circle+segment", nil,
		builder.Cycle(3),
		builder.Shifted(3, builder.Path(2)),
	)
	if err != nil {
		fmt.Println(err)

		return
	}
	fmt.Println("f-vector:", c.FVector())
	fmt.Println("edges:", c.NSimplices(1))
	// Output:
	// f-vector: [5 4]
	// edges: [[0 1] [0 2] [1 2] [3 4]]
}

// ExampleLookup builds a catalog space and prints its known invariants.
func ExampleLookup() {
	n, err := builder.Lookup("projective-plane")
	if err != nil {
		fmt.Println(err)

		return
	}
	c, _ := n.Build()
	fmt.Println(c.Name(), c.FVector(), "χ =", n.Euler, "β =", n.Betti)
	// Output:
	// projective-plane [6 15 10] χ = 1 β = [1 0 0]
}
