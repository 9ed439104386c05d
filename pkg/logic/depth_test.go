package logic

import (
	"encoding/json"
	"testing"
)

func leaf(text string) *Node {
	return &Node{Type: KindLeaf, Text: text}
}

func span(relation string, children ...*Node) *Node {
	return &Node{Type: KindSpan, Relation: relation, Children: children}
}

func TestDepth(t *testing.T) {
	tests := []struct {
		name string
		tree *Node
		want int
	}{
		{
			name: "Nil",
			tree: nil,
			want: 0,
		},
		{
			name: "SingleLeaf",
			tree: leaf("fuse blew"),
			want: 1,
		},
		{
			name: "ChildlessSpan",
			tree: span("cause"),
			want: 1,
		},
		{
			name: "EmptyNode",
			tree: &Node{},
			want: 1,
		},
		{
			name: "TwoLevels",
			tree: span("cause", leaf("A"), leaf("B")),
			want: 2,
		},
		{
			name: "UnbalancedThreeLevels",
			tree: span("contrast",
				leaf("short side"),
				span("cause", leaf("A"), leaf("B")),
			),
			want: 3,
		},
		{
			name: "MaxNotSum",
			tree: span("list",
				span("cause", leaf("A"), leaf("B")),
				span("cause", leaf("C"), leaf("D")),
			),
			want: 3,
		},
		{
			name: "LeafWithChildrenIgnored",
			// Leaf tags win over declared children: the subtree below a
			// leaf is rendered but never measured.
			tree: &Node{Type: KindLeaf, Text: "odd", Children: []*Node{
				span("cause", leaf("A"), leaf("B")),
			}},
			want: 1,
		},
		{
			name: "UntypedInternal",
			// Any non-leaf tag, including a missing one, is internal.
			tree: &Node{Children: []*Node{leaf("A")}},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Depth(tt.tree); got != tt.want {
				t.Errorf("Depth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDepthOrderIndependent(t *testing.T) {
	deep := span("cause", leaf("A"), span("cause", leaf("B"), leaf("C")))
	shallow := leaf("D")

	forward := span("list", deep, shallow)
	reversed := span("list", shallow, deep)

	if d1, d2 := Depth(forward), Depth(reversed); d1 != d2 {
		t.Errorf("sibling order changed depth: %d vs %d", d1, d2)
	}
}

func TestDepthAlwaysPositive(t *testing.T) {
	// Every well-formed tree, however degenerate, measures at least 1.
	trees := []*Node{
		{},
		{Type: "??unknown??"},
		{Children: []*Node{nil, nil}},
		leaf(""),
		span(""),
	}
	for i, tree := range trees {
		if got := Depth(tree); got < 1 {
			t.Errorf("tree %d: Depth() = %d, want >= 1", i, got)
		}
	}
}

func TestDepthDeepChain(t *testing.T) {
	// A pathologically deep chain must not exhaust the call stack.
	const levels = 100_000
	root := leaf("bottom")
	for i := 1; i < levels; i++ {
		root = span("elaboration", root)
	}
	if got := Depth(root); got != levels {
		t.Errorf("Depth() = %d, want %d", got, levels)
	}
}

func TestDepthFromJSON(t *testing.T) {
	// Wire-shaped input with missing fields decodes and measures without
	// error: permissive defaulting, not validation.
	raw := `{
		"type": "span",
		"relation": "cause",
		"children": [
			{"type": "leaf", "text": "the fuse blew"},
			{"children": [{"type": "leaf", "text": "no current"}]}
		]
	}`
	var n Node
	if err := json.Unmarshal([]byte(raw), &n); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := Depth(&n); got != 3 {
		t.Errorf("Depth() = %d, want 3", got)
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		name string
		tree *Node
		want int
	}{
		{"Nil", nil, 0},
		{"SingleLeaf", leaf("A"), 1},
		{"TwoLevels", span("cause", leaf("A"), leaf("B")), 3},
		{
			name: "LeafChildrenCounted",
			tree: &Node{Type: KindLeaf, Children: []*Node{leaf("A")}},
			want: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Count(tt.tree); got != tt.want {
				t.Errorf("Count() = %d, want %d", got, tt.want)
			}
		})
	}
}
