package visual

import (
	"strconv"
	"strings"

	"github.com/Holmfrior/Technopreneurship/pkg/logic"
)

// Flatten converts the tree rooted at root into a renderable node/edge
// collection.
//
// Every tree node becomes exactly one [Node] with identifier
// "<prefix>_<path>", where <path> is the underscore-joined sequence of
// child indices from the root ([RootPath] for the root itself). The scheme
// needs no counters or shared state: the same tree always flattens to the
// same IDs, and two calls with different prefixes can never collide.
//
// Every non-root node additionally yields one [Edge] from its parent.
// Children are visited in declaration order, pre-order, with no filtering;
// in particular the children of leaf-tagged nodes are rendered even though
// [logic.Depth] ignores them.
//
// A nil root returns an empty graph. The traversal uses an explicit work
// stack, so tree depth is bounded by memory rather than the call stack.
func Flatten(root *logic.Node, prefix string) Graph {
	if root == nil {
		return Graph{}
	}

	type item struct {
		node     *logic.Node
		path     string
		parentID string
	}

	var g Graph
	stack := []item{{node: root, path: RootPath}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		id := prefix + "_" + cur.path
		g.Nodes = append(g.Nodes, styleNode(cur.node, id))

		if cur.parentID != "" {
			g.Edges = append(g.Edges, Edge{
				Source: cur.parentID,
				Target: id,
				Color:  ColorEdge,
			})
		}

		// Push in reverse so the leftmost child is processed first and
		// the emitted order matches a recursive pre-order walk.
		for i := len(cur.node.Children) - 1; i >= 0; i-- {
			child := cur.node.Children[i]
			if child == nil {
				continue
			}
			stack = append(stack, item{
				node:     child,
				path:     cur.path + "_" + strconv.Itoa(i),
				parentID: id,
			})
		}
	}

	return g
}

// styleNode applies the category styling policy to a single tree node.
func styleNode(n *logic.Node, id string) Node {
	if n.IsLeaf() {
		return Node{
			ID:      id,
			Label:   truncate(n.Text, LabelWidth),
			Size:    SizeLeaf,
			Color:   ColorLeaf,
			Tooltip: n.Tooltip(),
		}
	}
	return Node{
		ID:      id,
		Label:   strings.ToUpper(n.DisplayRelation()),
		Size:    SizeInternal,
		Color:   ColorInternal,
		Tooltip: n.Tooltip(),
	}
}

// truncate shortens s to width characters, appending "..." when anything
// was cut. Truncation counts runes, not bytes, so multibyte text is never
// split mid-character.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width]) + "..."
}
