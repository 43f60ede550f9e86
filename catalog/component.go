package catalog

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// markupReturnTypes are type names whose presence in a return annotation
// denotes a rendered element.
var markupReturnTypes = []string{
	"JSX.Element", "React.ReactElement", "ReactElement", "React.ReactNode",
	"ReactNode", "Element", "ReactPortal",
}

// componentBaseClasses are heritage names that mark a class component
var componentBaseClasses = []string{
	"Component", "PureComponent", "React.Component", "React.PureComponent",
}

// IsFunctionComponent is the heuristic predicate deciding whether a function
// or arrow declaration is a UI component: its declared return type denotes a
// markup type, or its body produces JSX. This is a type-signature check, not
// a behavioral guarantee.
func IsFunctionComponent(node *sitter.Node, src []byte) bool {
	if returnType := node.ChildByFieldName("return_type"); returnType != nil {
		if isMarkupType(returnType.Content(src)) {
			return true
		}
	}
	bodyNode := node.ChildByFieldName("body")
	if bodyNode == nil {
		return false
	}
	return containsJSX(bodyNode)
}

// IsClassComponent reports whether a class declaration extends a known
// component base class.
func IsClassComponent(node *sitter.Node, src []byte) bool {
	heritage := findChildOfType(node, "class_heritage")
	if heritage == nil {
		return false
	}
	text := heritage.Content(src)
	for _, base := range componentBaseClasses {
		if strings.Contains(text, base) {
			return true
		}
	}
	return false
}

// containsJSX walks a subtree looking for JSX element nodes
func containsJSX(node *sitter.Node) bool {
	switch node.Type() {
	case "jsx_element", "jsx_self_closing_element", "jsx_fragment":
		return true
	}
	for i := uint32(0); i < node.NamedChildCount(); i++ {
		if containsJSX(node.NamedChild(int(i))) {
			return true
		}
	}
	return false
}

func isMarkupType(annotation string) bool {
	annotation = strings.TrimPrefix(strings.TrimSpace(annotation), ":")
	annotation = strings.TrimSpace(annotation)
	for _, name := range markupReturnTypes {
		if strings.HasPrefix(annotation, name) {
			return true
		}
	}
	return false
}

func findChildOfType(node *sitter.Node, nodeType string) *sitter.Node {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() == nodeType {
			return child
		}
	}
	return nil
}
