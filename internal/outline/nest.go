package outline

// Node is a heading with the headings nested beneath it.
type Node struct {
	Level    Level   `json:"level"`
	Text     string  `json:"text"`
	Page     int     `json:"page"`
	Children []*Node `json:"children,omitempty"`
}

// Nest turns the flat outline into a tree. Each heading becomes a child of
// the closest preceding heading with a smaller depth.
func Nest(entries []Entry) []*Node {
	type stackEntry struct {
		node  *Node
		depth int
	}

	root := &Node{}
	stack := []stackEntry{{node: root, depth: 0}}

	for _, e := range entries {
		depth := e.Level.Depth()
		if depth == 0 {
			continue
		}
		n := &Node{Level: e.Level, Text: e.Text, Page: e.Page}

		for len(stack) > 1 && stack[len(stack)-1].depth >= depth {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1].node
		parent.Children = append(parent.Children, n)
		stack = append(stack, stackEntry{node: n, depth: depth})
	}

	if root.Children == nil {
		return []*Node{}
	}
	return root.Children
}
