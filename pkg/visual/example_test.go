package visual_test

import (
	"fmt"

	"github.com/Holmfrior/Technopreneurship/pkg/logic"
	"github.com/Holmfrior/Technopreneurship/pkg/visual"
)

func ExampleFlatten() {
	// A small parsed tree: one cause relation over two text spans.
	tree := &logic.Node{
		Type:     logic.KindSpan,
		Relation: "cause",
		Children: []*logic.Node{
			{Type: logic.KindLeaf, Text: "the fuse blew"},
			{Type: logic.KindLeaf, Text: "the motor stopped"},
		},
	}

	g := visual.Flatten(tree, "ref")
	for _, n := range g.Nodes {
		fmt.Printf("%s  %s\n", n.ID, n.Label)
	}
	for _, e := range g.Edges {
		fmt.Printf("%s -> %s\n", e.Source, e.Target)
	}
	// Output:
	// ref_0  CAUSE
	// ref_0_0  the fuse blew
	// ref_0_1  the motor stopp...
	// ref_0 -> ref_0_0
	// ref_0 -> ref_0_1
}

func ExampleMergeGraphs() {
	tree := &logic.Node{Type: logic.KindLeaf, Text: "fuse blew"}

	merged := visual.MergeGraphs(
		visual.Flatten(tree, visual.PrefixReference),
		visual.Flatten(tree, visual.PrefixCompared),
	)
	for _, n := range merged.Nodes {
		fmt.Println(n.ID)
	}
	// Output:
	// ref_0
	// comp_0
}
