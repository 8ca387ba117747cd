package internal

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_c "github.com/tree-sitter/tree-sitter-c/bindings/go"
)

// GeneratedCodeError points at the first syntax problem tree-sitter found in generated code. Raw inserts are
// copied without looking at them, so this is where a broken insert shows up.
type GeneratedCodeError struct {
	Message string
	Line    int
	Column  int
}

func (e *GeneratedCodeError) Error() string {
	return fmt.Sprintf("verify: %s at line %d, column %d", e.Message, e.Line, e.Column)
}

// VerifyC parses code as C and returns a *GeneratedCodeError if the tree has an ERROR or MISSING node.
func VerifyC(code []byte) error {
	parser := sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(sitter.NewLanguage(tree_sitter_c.Language())); err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	tree := parser.Parse(code, nil)
	if tree == nil {
		return fmt.Errorf("verify: parser returned no tree")
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return fmt.Errorf("verify: unexpected root node")
	}
	if !root.HasError() {
		return nil
	}
	message := "syntax error"
	node := findFirstNode(root, (*sitter.Node).IsMissing)
	if node != nil {
		message = fmt.Sprintf("syntax error: missing %s", node.Kind())
	} else {
		node = findFirstNode(root, (*sitter.Node).IsError)
	}
	if node == nil {
		node = root
	}
	start := node.StartPosition()
	return &GeneratedCodeError{
		Message: message,
		Line:    int(start.Row) + 1,
		Column:  int(start.Column) + 1,
	}
}

func findFirstNode(root *sitter.Node, match func(*sitter.Node) bool) *sitter.Node {
	var best *sitter.Node
	walkNodes(root, func(node *sitter.Node) {
		if !match(node) {
			return
		}
		if best == nil || node.StartByte() < best.StartByte() {
			best = node
		}
	})
	return best
}

func walkNodes(root *sitter.Node, visit func(node *sitter.Node)) {
	if root == nil {
		return
	}
	visit(root)
	for i := uint(0); i < root.ChildCount(); i++ {
		walkNodes(root.Child(i), visit)
	}
}
