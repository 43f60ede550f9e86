package catalog

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/yunfengsay/part-render/graph"
)

// extractFunctionProps reads the prop schema from the first parameter of a
// function or arrow component: its type annotation when present, otherwise
// the destructuring pattern itself.
func extractFunctionProps(fnNode, rootNode *sitter.Node, src []byte) []graph.PropInfo {
	param := firstParameter(fnNode)
	if param == nil {
		return nil
	}

	pattern := param
	if param.Type() == "required_parameter" || param.Type() == "optional_parameter" {
		if inner := param.ChildByFieldName("pattern"); inner != nil {
			pattern = inner
		}
	}

	var props []graph.PropInfo
	if typeNode := parameterType(param); typeNode != nil {
		props = extractPropsFromType(typeNode, rootNode, src)
	} else if pattern.Type() == "object_pattern" {
		props = propsFromPattern(pattern, src)
	}

	if pattern.Type() == "object_pattern" {
		applyDefaults(pattern, src, props)
	}
	return props
}

// extractClassProps reads the prop schema from the generic prop type argument
// of the heritage clause; class components without one stay unresolved.
func extractClassProps(classNode, rootNode *sitter.Node, src []byte) []graph.PropInfo {
	heritage := findChildOfType(classNode, "class_heritage")
	if heritage == nil {
		return nil
	}
	typeArgs := findDescendantOfType(heritage, "type_arguments")
	if typeArgs == nil || typeArgs.NamedChildCount() == 0 {
		return nil
	}
	return extractPropsFromType(typeArgs.NamedChild(0), rootNode, src)
}

// extractPropsFromType resolves a type node to its member list: inline object
// types directly, named types via the declaring interface or alias in the
// same file, intersections member-wise.
func extractPropsFromType(typeNode, rootNode *sitter.Node, src []byte) []graph.PropInfo {
	switch typeNode.Type() {
	case "object_type":
		return propsFromBody(typeNode, src)
	case "type_identifier":
		decl := findTypeDeclaration(rootNode, typeNode.Content(src), src)
		if decl == nil {
			return nil
		}
		return propsFromDeclaration(decl, src)
	case "intersection_type":
		var props []graph.PropInfo
		for i := uint32(0); i < typeNode.NamedChildCount(); i++ {
			props = append(props, extractPropsFromType(typeNode.NamedChild(int(i)), rootNode, src)...)
		}
		return props
	case "generic_type":
		if nameNode := typeNode.ChildByFieldName("name"); nameNode != nil {
			return extractPropsFromType(nameNode, rootNode, src)
		}
	}
	return nil
}

// findTypeDeclaration locates a top-level interface or type alias by name,
// looking through export statements.
func findTypeDeclaration(rootNode *sitter.Node, name string, src []byte) *sitter.Node {
	for i := uint32(0); i < rootNode.NamedChildCount(); i++ {
		node := rootNode.NamedChild(int(i))
		if node.Type() == "export_statement" {
			if decl := node.ChildByFieldName("declaration"); decl != nil {
				node = decl
			}
		}
		switch node.Type() {
		case "interface_declaration", "type_alias_declaration":
			if nameNode := node.ChildByFieldName("name"); nameNode != nil && nameNode.Content(src) == name {
				return node
			}
		}
	}
	return nil
}

func propsFromDeclaration(decl *sitter.Node, src []byte) []graph.PropInfo {
	switch decl.Type() {
	case "interface_declaration":
		if body := decl.ChildByFieldName("body"); body != nil {
			return propsFromBody(body, src)
		}
	case "type_alias_declaration":
		value := decl.ChildByFieldName("value")
		if value == nil {
			return nil
		}
		switch value.Type() {
		case "object_type":
			return propsFromBody(value, src)
		case "intersection_type":
			var props []graph.PropInfo
			for i := uint32(0); i < value.NamedChildCount(); i++ {
				child := value.NamedChild(int(i))
				if child.Type() == "object_type" {
					props = append(props, propsFromBody(child, src)...)
				}
			}
			return props
		}
	}
	return nil
}

// propsFromBody extracts one PropInfo per property signature of an interface
// body or object type.
func propsFromBody(body *sitter.Node, src []byte) []graph.PropInfo {
	var props []graph.PropInfo
	for i := uint32(0); i < body.NamedChildCount(); i++ {
		sigNode := body.NamedChild(int(i))
		if sigNode.Type() != "property_signature" {
			continue
		}
		nameNode := sigNode.ChildByFieldName("name")
		if nameNode == nil {
			continue
		}
		prop := graph.PropInfo{
			Name:        nameNode.Content(src),
			Type:        "any",
			Required:    !isOptionalSignature(sigNode),
			Description: docForSignature(sigNode, src),
		}
		if typeAnno := sigNode.ChildByFieldName("type"); typeAnno != nil {
			prop.Type = renderType(typeAnno, src)
		}
		props = append(props, prop)
	}
	return props
}

// propsFromPattern derives an untyped prop list from a destructuring pattern
func propsFromPattern(pattern *sitter.Node, src []byte) []graph.PropInfo {
	var props []graph.PropInfo
	for i := uint32(0); i < pattern.NamedChildCount(); i++ {
		child := pattern.NamedChild(int(i))
		switch child.Type() {
		case "shorthand_property_identifier_pattern":
			props = append(props, graph.PropInfo{Name: child.Content(src), Type: "any", Required: true})
		case "object_assignment_pattern", "assignment_pattern":
			if left := child.ChildByFieldName("left"); left != nil {
				props = append(props, graph.PropInfo{Name: left.Content(src), Type: "any"})
			}
		case "pair_pattern":
			if key := child.ChildByFieldName("key"); key != nil {
				props = append(props, graph.PropInfo{Name: key.Content(src), Type: "any", Required: true})
			}
		}
	}
	return props
}

// applyDefaults folds destructuring default values into the prop list; a prop
// with a default is no longer required.
func applyDefaults(pattern *sitter.Node, src []byte, props []graph.PropInfo) {
	defaults := map[string]string{}
	for i := uint32(0); i < pattern.NamedChildCount(); i++ {
		child := pattern.NamedChild(int(i))
		switch child.Type() {
		case "object_assignment_pattern", "assignment_pattern":
			left := child.ChildByFieldName("left")
			right := child.ChildByFieldName("right")
			if left == nil || right == nil {
				continue
			}
			defaults[left.Content(src)] = unquote(right.Content(src))
		case "pair_pattern":
			if value := child.ChildByFieldName("value"); value != nil &&
				(value.Type() == "assignment_pattern" || value.Type() == "object_assignment_pattern") {
				left := value.ChildByFieldName("left")
				right := value.ChildByFieldName("right")
				if left == nil || right == nil {
					continue
				}
				defaults[left.Content(src)] = unquote(right.Content(src))
			}
		}
	}
	for i := range props {
		if value, ok := defaults[props[i].Name]; ok {
			props[i].Default = value
			props[i].Required = false
		}
	}
}

func firstParameter(fnNode *sitter.Node) *sitter.Node {
	if params := fnNode.ChildByFieldName("parameters"); params != nil {
		for i := uint32(0); i < params.NamedChildCount(); i++ {
			child := params.NamedChild(int(i))
			switch child.Type() {
			case "required_parameter", "optional_parameter", "identifier", "object_pattern":
				return child
			}
		}
		return nil
	}
	// Single-identifier arrow parameter.
	return fnNode.ChildByFieldName("parameter")
}

func parameterType(param *sitter.Node) *sitter.Node {
	typeAnno := param.ChildByFieldName("type")
	if typeAnno == nil {
		return nil
	}
	for i := uint32(0); i < typeAnno.NamedChildCount(); i++ {
		return typeAnno.NamedChild(int(i))
	}
	return nil
}

func isOptionalSignature(sigNode *sitter.Node) bool {
	for i := 0; i < int(sigNode.ChildCount()); i++ {
		if sigNode.Child(i).Type() == "?" {
			return true
		}
	}
	return false
}

// renderType yields the printable form of a type annotation: the source text
// with the leading colon stripped and whitespace collapsed.
func renderType(typeAnno *sitter.Node, src []byte) string {
	text := typeAnno.Content(src)
	text = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text), ":"))
	return strings.Join(strings.Fields(text), " ")
}

// docForSignature reads the documentation comment attached right before a
// property signature.
func docForSignature(sigNode *sitter.Node, src []byte) string {
	prev := sigNode.PrevNamedSibling()
	if prev == nil || prev.Type() != "comment" {
		return ""
	}
	return parseDocComment(prev.Content(src))
}

// parseDocComment strips comment markers and tags, keeping the description
func parseDocComment(comment string) string {
	comment = strings.TrimSpace(comment)
	if strings.HasPrefix(comment, "//") {
		return strings.TrimSpace(strings.TrimPrefix(comment, "//"))
	}
	comment = strings.TrimPrefix(comment, "/**")
	comment = strings.TrimPrefix(comment, "/*")
	comment = strings.TrimSuffix(comment, "*/")

	var parts []string
	for _, line := range strings.Split(comment, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "*"))
		if line == "" || strings.HasPrefix(line, "@") {
			continue
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, " ")
}

func unquote(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '\'' || first == '"' || first == '`') {
			return value[1 : len(value)-1]
		}
	}
	return value
}

func findDescendantOfType(node *sitter.Node, nodeType string) *sitter.Node {
	if node.Type() == nodeType {
		return node
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if found := findDescendantOfType(node.Child(i), nodeType); found != nil {
			return found
		}
	}
	return nil
}
