package parser

import sitter "github.com/smacker/go-tree-sitter"

// Walk visits node and its descendants depth-first, children in source
// order. The visit function returns false to skip a node's children.
func Walk(node *sitter.Node, visit func(*sitter.Node) bool) {
	if node == nil {
		return
	}
	if !visit(node) {
		return
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		Walk(node.Child(i), visit)
	}
}
