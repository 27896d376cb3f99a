package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvldiagram/builder"
)

// ExampleBuildDiagram builds two swimlanes of three steps each.
func ExampleBuildDiagram() {
	m, err := builder.BuildDiagram(nil,
		[]builder.BuilderOption{builder.WithLabelScheme(builder.PrefixLabel("step-"))},
		builder.Swimlanes(2, 3),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cells:", m.CellCount())
	fmt.Println("lanes:", len(m.ChildVertices(m.DefaultParent())))
	fmt.Println("cross-lane edges:", len(m.ChildEdges(m.DefaultParent())))
	// Output:
	// cells: 13
	// lanes: 2
	// cross-lane edges: 1
}
