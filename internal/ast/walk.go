package ast

// Walk обходит дерево в глубину, родитель перед детьми.
// Если visit возвращает false, дети узла не посещаются.
func Walk(node Node, visit func(Node) bool) {
	if node == nil {
		return
	}
	if !visit(node) {
		return
	}
	for _, child := range node.Children() {
		Walk(child, visit)
	}
}

// Count возвращает количество узлов в дереве.
func Count(node Node) int {
	n := 0
	Walk(node, func(Node) bool {
		n++
		return true
	})
	return n
}
