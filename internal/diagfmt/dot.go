package diagfmt

import (
	"fmt"
	"io"

	"minic/internal/ast"
)

// FormatASTDot выводит дерево разбора в формате Graphviz DOT.
// Узлы нумеруются в порядке обхода: дерево не разделяет поддеревья,
// поэтому порядковый номер однозначно идентифицирует позицию узла.
func FormatASTDot(w io.Writer, root ast.Node) error {
	if _, err := fmt.Fprintln(w, "digraph parsetree {"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  node [shape=box, fontname=\"monospace\"];"); err != nil {
		return err
	}

	next := 0
	if err := writeDotNode(w, root, -1, &next); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

func writeDotNode(w io.Writer, node ast.Node, parent int, next *int) error {
	id := *next
	*next++

	// %q экранирует и кавычки, и не-ASCII лексемы Invalid токенов
	if _, err := fmt.Fprintf(w, "  n%d [label=%q];\n", id, node.Label()); err != nil {
		return err
	}
	if parent >= 0 {
		if _, err := fmt.Fprintf(w, "  n%d -> n%d;\n", parent, id); err != nil {
			return err
		}
	}

	for _, child := range node.Children() {
		if err := writeDotNode(w, child, id, next); err != nil {
			return err
		}
	}
	return nil
}
