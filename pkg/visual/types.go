package visual

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Category colors. Leaves carry the literal text and get the accent color;
// internal relation nodes recede behind them.
const (
	ColorLeaf     = "#00C853"
	ColorInternal = "#2962FF"
	ColorEdge     = "#B0BEC5"
)

// Visual weights. Leaves render larger than relation nodes.
const (
	SizeLeaf     = 25
	SizeInternal = 15
)

// LabelWidth is the maximum number of characters of leaf text shown in a
// node label before truncation. Truncated labels end in "...".
const LabelWidth = 15

// RootPath is the path assigned to a tree's root node. Child paths append
// their zero-based index, so a root "0" has children "0_0", "0_1", and so on.
const RootPath = "0"

// Default prefixes for the two sides of a comparison.
const (
	PrefixReference = "ref"
	PrefixCompared  = "comp"
)

// =============================================================================
// Node / Edge / Graph
// =============================================================================

// Node is one renderable node of a flattened logic tree.
type Node struct {
	ID      string `json:"id" bson:"id"`
	Label   string `json:"label" bson:"label"`
	Size    int    `json:"size" bson:"size"`
	Color   string `json:"color" bson:"color"`
	Tooltip string `json:"tooltip,omitempty" bson:"tooltip,omitempty"`
}

// Edge is a directed connection from a parent node to one of its children.
// Edges carry no semantic data beyond connectivity and uniform styling.
type Edge struct {
	Source string `json:"source" bson:"source"`
	Target string `json:"target" bson:"target"`
	Color  string `json:"color,omitempty" bson:"color,omitempty"`
}

// Graph is the canonical serialization format for flattened trees.
// Used for CLI artifacts, API responses, and re-rendering saved analyses.
type Graph struct {
	Nodes []Node `json:"nodes" bson:"nodes"`
	Edges []Edge `json:"edges" bson:"edges"`
}

// NodeCount returns the number of nodes in the graph.
func (g Graph) NodeCount() int { return len(g.Nodes) }

// EdgeCount returns the number of edges in the graph.
func (g Graph) EdgeCount() int { return len(g.Edges) }

// MergeGraphs concatenates graphs into a single shared namespace.
// Callers are responsible for flattening each input with a distinct prefix;
// under that convention the merged ID space is collision-free.
func MergeGraphs(gs ...Graph) Graph {
	var out Graph
	for _, g := range gs {
		out.Nodes = append(out.Nodes, g.Nodes...)
		out.Edges = append(out.Edges, g.Edges...)
	}
	return out
}
