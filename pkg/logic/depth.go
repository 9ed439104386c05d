package logic

// Depth returns the length in nodes of the longest root-to-leaf path of the
// tree rooted at n. A nil node has depth 0; every well-formed tree has
// depth ≥ 1.
//
// Rules, in order:
//   - a leaf-tagged node is depth 1, even if it declares children
//     (those children are still rendered by the flattener, but never
//     counted here)
//   - a node with no children is depth 1 regardless of its tag
//   - otherwise depth is 1 + the maximum depth among the children
//
// The result does not depend on sibling order. The traversal uses an
// explicit work stack instead of recursion, so adversarially deep trees
// cost memory rather than call-stack frames.
func Depth(n *Node) int {
	if n == nil {
		return 0
	}

	type frame struct {
		node  *Node
		next  int // index of the next child to visit
		best  int // deepest child seen so far
	}

	stack := []frame{{node: n}}
	result := 0

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.node.IsLeaf() || len(top.node.Children) == 0 {
			result = 1
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				parent := &stack[len(stack)-1]
				parent.best = max(parent.best, result)
			}
			continue
		}

		if top.next < len(top.node.Children) {
			child := top.node.Children[top.next]
			top.next++
			if child == nil {
				continue
			}
			stack = append(stack, frame{node: child})
			continue
		}

		// All children measured.
		result = 1 + top.best
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			parent := &stack[len(stack)-1]
			parent.best = max(parent.best, result)
		}
	}

	return result
}
