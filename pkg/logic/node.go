package logic

// Node kind tags as emitted by the parsing service.
// Any tag other than KindLeaf is treated as an internal node.
const (
	// KindLeaf marks a node covering a literal text span.
	KindLeaf = "leaf"

	// KindSpan is the default tag for internal nodes and the fallback
	// for nodes that omit the type field entirely.
	KindSpan = "span"
)

// Node is one node of a parsed discourse logic tree.
//
// The JSON shape mirrors the parsing service's response exactly, so a
// response body decodes straight into a *Node. All fields are optional on
// the wire; see the package documentation for the defaulting rules.
type Node struct {
	Type     string  `json:"type,omitempty"`
	Relation string  `json:"relation,omitempty"`
	Text     string  `json:"text,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// Kind returns the node's type tag, defaulting to [KindSpan] when the
// service omitted the field.
func (n *Node) Kind() string {
	if n.Type == "" {
		return KindSpan
	}
	return n.Type
}

// IsLeaf reports whether the node is tagged as a leaf.
// Internal nodes with no children are not leaves in this sense, though
// they still measure as depth 1.
func (n *Node) IsLeaf() bool {
	return n.Type == KindLeaf
}

// DisplayRelation returns the relation label for display, defaulting to
// [KindSpan] when the field is absent.
func (n *Node) DisplayRelation() string {
	if n.Relation == "" {
		return KindSpan
	}
	return n.Relation
}

// Tooltip returns the hover text for the node: the covered text span when
// present, otherwise the relation label.
func (n *Node) Tooltip() string {
	if n.Text != "" {
		return n.Text
	}
	return n.DisplayRelation()
}

// Count returns the total number of nodes in the tree rooted at n,
// including n itself. A nil node counts as zero.
//
// Unlike [Depth], Count descends into the children of leaf-tagged nodes,
// matching what the flattener renders.
func Count(n *Node) int {
	if n == nil {
		return 0
	}

	total := 0
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		total++
		for _, c := range cur.Children {
			if c != nil {
				stack = append(stack, c)
			}
		}
	}
	return total
}
