package analyzer

import (
	"unicode"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
)

// collectIdentifiers performs a single tree walk collecting declared names
// (variable, function and class declarations plus parameters, anywhere in the
// fragment, deliberately not scope-aware) and used identifier references.
// Import statements are skipped; their bindings are handled separately.
func collectIdentifiers(node *sitter.Node, src []byte, declared, used map[string]struct{}) {
	switch node.Type() {
	case "import_statement":
		return

	case "function_declaration", "generator_function_declaration", "class_declaration":
		if nameNode := node.ChildByFieldName("name"); nameNode != nil {
			declared[nameNode.Content(src)] = struct{}{}
		}

	case "variable_declarator":
		if nameNode := node.ChildByFieldName("name"); nameNode != nil {
			collectPatternNames(nameNode, src, declared)
		}

	case "formal_parameters":
		for i := uint32(0); i < node.NamedChildCount(); i++ {
			collectPatternNames(node.NamedChild(int(i)), src, declared)
		}

	case "arrow_function":
		// Single-identifier arrows carry the binding in the parameter field.
		if paramNode := node.ChildByFieldName("parameter"); paramNode != nil {
			collectPatternNames(paramNode, src, declared)
		}

	case "catch_clause":
		if paramNode := node.ChildByFieldName("parameter"); paramNode != nil {
			collectPatternNames(paramNode, src, declared)
		}

	case "identifier", "shorthand_property_identifier":
		if isReference(node, src) {
			used[node.Content(src)] = struct{}{}
		}
	}

	for i := uint32(0); i < node.NamedChildCount(); i++ {
		collectIdentifiers(node.NamedChild(int(i)), src, declared, used)
	}
}

// isReference reports whether an identifier node is an actual value reference
// rather than a declaration name, a member-access property, or an intrinsic
// JSX tag name.
func isReference(node *sitter.Node, src []byte) bool {
	parent := node.Parent()
	if parent == nil {
		return true
	}
	switch parent.Type() {
	case "member_expression":
		if property := parent.ChildByFieldName("property"); property != nil && property.Equal(node) {
			return false
		}
	case "function_declaration", "generator_function_declaration", "class_declaration", "variable_declarator":
		if name := parent.ChildByFieldName("name"); name != nil && name.Equal(node) {
			return false
		}
	case "jsx_opening_element", "jsx_closing_element", "jsx_self_closing_element":
		// Lowercase JSX tags denote intrinsic elements, not identifier references.
		first, _ := utf8.DecodeRuneInString(node.Content(src))
		return unicode.IsUpper(first)
	}
	return true
}

// collectPatternNames adds every name a binding pattern introduces
func collectPatternNames(node *sitter.Node, src []byte, declared map[string]struct{}) {
	if node == nil {
		return
	}
	switch node.Type() {
	case "identifier", "shorthand_property_identifier_pattern":
		declared[node.Content(src)] = struct{}{}
	case "required_parameter", "optional_parameter":
		collectPatternNames(node.ChildByFieldName("pattern"), src, declared)
	case "pair_pattern":
		collectPatternNames(node.ChildByFieldName("value"), src, declared)
	case "assignment_pattern", "object_assignment_pattern":
		collectPatternNames(node.ChildByFieldName("left"), src, declared)
	case "object_pattern", "array_pattern", "rest_pattern":
		for i := uint32(0); i < node.NamedChildCount(); i++ {
			collectPatternNames(node.NamedChild(int(i)), src, declared)
		}
	}
}
