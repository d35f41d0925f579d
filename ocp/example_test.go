// Package ocp_test provides runnable examples for the shape-area API.
// Each example is runnable via “go test -run Example”, showing both code
// and expected output.
package ocp_test

import (
	"fmt"

	"github.com/katalvlaran/solid/ocp"
)

// ExampleSumAreas demonstrates polymorphic area dispatch over mixed variants.
func ExampleSumAreas() {
	// 1) Build a mixed slice of shapes; SumAreas never inspects the variants.
	shapes := []ocp.Shape{
		ocp.Circle{Radius: 2}, // π·2² ≈ 12.566
		ocp.Square{Side: 3},   // 3²   = 9
	}

	// 2) Total the areas through the capability alone.
	fmt.Printf("total ≈ %.3f\n", ocp.SumAreas(shapes...))
	// Output: total ≈ 21.566
}

// ExampleRegistry_ParseCatalog demonstrates loading shapes from a YAML
// catalog through the kind registry.
func ExampleRegistry_ParseCatalog() {
	// 1) A catalog document: each entry names a kind plus its dimensions.
	doc := []byte(`
shapes:
  - kind: circle
    radius: 2
  - kind: square
    side: 3
`)

	// 2) Parse through a fresh registry (built-in kinds pre-registered).
	shapes, err := ocp.NewRegistry().ParseCatalog(doc)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Every decoded entry is a Shape; list kinds and the total.
	for _, s := range shapes {
		fmt.Printf("%s ≈ %.3f\n", s.Kind(), s.Area())
	}
	fmt.Printf("total ≈ %.3f\n", ocp.SumAreas(shapes...))
	// Output:
	// circle ≈ 12.566
	// square ≈ 9.000
	// total ≈ 21.566
}

// ExampleLegacyAreaOf demonstrates why the type-switch variant is closed
// against extension: a shape the switch predates is a runtime error.
func ExampleLegacyAreaOf() {
	if _, err := ocp.LegacyAreaOf(ocp.Triangle{Base: 4, Height: 3}); err != nil {
		fmt.Println("error:", err)
	}
	// Output: error: ocp: unknown shape kind
}
