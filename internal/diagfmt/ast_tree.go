package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"minic/internal/ast"
)

// FormatASTPretty печатает дерево разбора ASCII-ветками:
//
//	Program
//	├── Declaration
//	│   ├── int
//	│   ├── a
//	│   └── ;
//	└── Assignment
//	    └── ...
func FormatASTPretty(w io.Writer, root ast.Node) error {
	if _, err := fmt.Fprintln(w, root.Label()); err != nil {
		return err
	}
	return writeChildren(w, root, "")
}

func writeChildren(w io.Writer, node ast.Node, prefix string) error {
	children := node.Children()
	for i, child := range children {
		branch, childPrefix := "├── ", prefix+"│   "
		if i == len(children)-1 {
			branch, childPrefix = "└── ", prefix+"    "
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, branch, child.Label()); err != nil {
			return err
		}
		if err := writeChildren(w, child, childPrefix); err != nil {
			return err
		}
	}
	return nil
}

type ASTNodeOutput struct {
	Label    string          `json:"label"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

// FormatASTJSON выводит дерево разбора в JSON формате
func FormatASTJSON(w io.Writer, root ast.Node) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildASTOutput(root))
}

func buildASTOutput(node ast.Node) ASTNodeOutput {
	out := ASTNodeOutput{Label: node.Label()}
	for _, child := range node.Children() {
		out.Children = append(out.Children, buildASTOutput(child))
	}
	return out
}
