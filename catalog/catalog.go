package catalog

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/sirupsen/logrus"

	"github.com/yunfengsay/part-render/analyzer"
	"github.com/yunfengsay/part-render/graph"
)

// Builder walks every project file's syntax tree to locate exported
// declarations and extract prop schemas for the ones that look like UI
// components. The resulting catalog is an immutable snapshot.
type Builder struct {
	config *graph.Config
	log    *logrus.Logger
}

// NewBuilder creates a catalog Builder with the provided configuration
func NewBuilder(config *graph.Config, log *logrus.Logger) *Builder {
	if config == nil {
		config = graph.DefaultConfig()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Builder{config: config, log: log}
}

// Build rebuilds the component catalog from a corpus snapshot. Files that
// cannot be parsed are skipped with a log entry; the build never aborts.
func (b *Builder) Build(project *graph.Project) *graph.Catalog {
	var components []*graph.ComponentInfo
	if project == nil {
		return graph.NewCatalog(components)
	}
	for _, file := range project.SourceFiles() {
		if b.config.SkipTests && isTestPath(file.Path) {
			continue
		}
		if b.config.MaxFileSize > 0 && int64(len(file.Content)) > b.config.MaxFileSize {
			b.log.WithField("path", file.Path).Debug("skipping oversized project file")
			continue
		}
		fileComponents, err := b.InspectFile(file)
		if err != nil {
			b.log.WithField("path", file.Path).WithError(err).Warn("skipping unparsable project file")
			continue
		}
		components = append(components, fileComponents...)
	}
	return graph.NewCatalog(components)
}

// InspectFile extracts the component declarations of a single project file.
// Each file is processed independently and deterministically.
func (b *Builder) InspectFile(file *graph.ProjectFile) ([]*graph.ComponentInfo, error) {
	src := []byte(file.Content)
	// Typed surfaces need the TSX grammar; plain scripts use the JavaScript
	// grammar so TypeScript syntax in a .js/.jsx file surfaces as a parse error.
	parse := analyzer.ParseScript
	if file.Kind.Typed() {
		parse = analyzer.Parse
	}
	tree, err := parse(src)
	if err != nil {
		return nil, err
	}
	rootNode := tree.RootNode()
	if rootNode.HasError() {
		return nil, fmt.Errorf("%w: %s", analyzer.ErrParse, file.Path)
	}

	exports := collectExports(rootNode, src)

	var components []*graph.ComponentInfo
	for i := uint32(0); i < rootNode.NamedChildCount(); i++ {
		childNode := rootNode.NamedChild(int(i))

		declNode := childNode
		exported := false
		isDefault := false
		if childNode.Type() == "export_statement" {
			exported = true
			isDefault = hasDefaultKeyword(childNode)
			declNode = childNode.ChildByFieldName("declaration")
			if declNode == nil {
				continue
			}
		}

		component := b.processDeclaration(declNode, rootNode, src)
		if component == nil {
			continue
		}
		component.FilePath = file.Path
		component.IsDefaultExport = isDefault || exports.defaults[component.Name]

		if !exported && !exports.named[component.Name] && !component.IsDefaultExport {
			if !b.config.IncludeUnexported {
				continue
			}
		}
		components = append(components, component)
	}
	return components, nil
}

// processDeclaration turns one top-level declaration into a ComponentInfo
// when the component predicate accepts it.
func (b *Builder) processDeclaration(node, rootNode *sitter.Node, src []byte) *graph.ComponentInfo {
	switch node.Type() {
	case "function_declaration":
		if !IsFunctionComponent(node, src) {
			return nil
		}
		component := newComponent(node, src, graph.KindFunction)
		component.Props = extractFunctionProps(node, rootNode, src)
		return component

	case "class_declaration":
		if !IsClassComponent(node, src) {
			return nil
		}
		component := newComponent(node, src, graph.KindClass)
		component.Props = extractClassProps(node, rootNode, src)
		return component

	case "lexical_declaration", "variable_declaration":
		declarator := findDeclarator(node)
		if declarator == nil {
			return nil
		}
		valueNode := componentValue(declarator, src)
		if valueNode == nil {
			return nil
		}
		nameNode := declarator.ChildByFieldName("name")
		if nameNode == nil || nameNode.Type() != "identifier" {
			return nil
		}
		component := &graph.ComponentInfo{
			Name:   nameNode.Content(src),
			Kind:   graph.KindArrow,
			Line:   node.StartPoint().Row + 1,
			Column: node.StartPoint().Column,
		}
		component.Props = extractFunctionProps(valueNode, rootNode, src)
		return component
	}
	return nil
}

func newComponent(node *sitter.Node, src []byte, kind graph.ComponentKind) *graph.ComponentInfo {
	name := ""
	if nameNode := node.ChildByFieldName("name"); nameNode != nil {
		name = nameNode.Content(src)
	}
	return &graph.ComponentInfo{
		Name:   name,
		Kind:   kind,
		Line:   node.StartPoint().Row + 1,
		Column: node.StartPoint().Column,
	}
}

// findDeclarator returns the first variable declarator of a declaration
func findDeclarator(node *sitter.Node) *sitter.Node {
	for i := uint32(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(int(i))
		if child.Type() == "variable_declarator" {
			return child
		}
	}
	return nil
}

// componentValue unwraps a declarator initializer down to the function node
// that renders the component, looking through memo and forwardRef calls.
func componentValue(declarator *sitter.Node, src []byte) *sitter.Node {
	valueNode := declarator.ChildByFieldName("value")
	if valueNode == nil {
		return nil
	}
	switch valueNode.Type() {
	case "arrow_function", "function_expression", "function":
		if IsFunctionComponent(valueNode, src) {
			return valueNode
		}
	case "call_expression":
		if inner := unwrapComponentCall(valueNode, src); inner != nil && IsFunctionComponent(inner, src) {
			return inner
		}
	}
	return nil
}

// unwrapComponentCall returns the function argument of memo/forwardRef calls
func unwrapComponentCall(callNode *sitter.Node, src []byte) *sitter.Node {
	fnNode := callNode.ChildByFieldName("function")
	if fnNode == nil {
		return nil
	}
	callee := fnNode.Content(src)
	switch callee {
	case "memo", "forwardRef", "React.memo", "React.forwardRef":
	default:
		return nil
	}
	argsNode := callNode.ChildByFieldName("arguments")
	if argsNode == nil {
		return nil
	}
	for i := uint32(0); i < argsNode.NamedChildCount(); i++ {
		argNode := argsNode.NamedChild(int(i))
		switch argNode.Type() {
		case "arrow_function", "function_expression", "function":
			return argNode
		case "call_expression":
			// memo(forwardRef(...))
			if inner := unwrapComponentCall(argNode, src); inner != nil {
				return inner
			}
		}
	}
	return nil
}

// fileExports records which top-level names are exported and how
type fileExports struct {
	named    map[string]bool
	defaults map[string]bool
}

// collectExports gathers names referenced by export statements: named export
// clauses and default-export statements referencing a declaration by name.
func collectExports(rootNode *sitter.Node, src []byte) fileExports {
	exports := fileExports{named: map[string]bool{}, defaults: map[string]bool{}}
	for i := uint32(0); i < rootNode.NamedChildCount(); i++ {
		childNode := rootNode.NamedChild(int(i))
		if childNode.Type() != "export_statement" {
			continue
		}
		isDefault := hasDefaultKeyword(childNode)
		if valueNode := childNode.ChildByFieldName("value"); valueNode != nil && valueNode.Type() == "identifier" {
			name := valueNode.Content(src)
			if isDefault {
				exports.defaults[name] = true
			} else {
				exports.named[name] = true
			}
			continue
		}
		for j := uint32(0); j < childNode.NamedChildCount(); j++ {
			clause := childNode.NamedChild(int(j))
			if clause.Type() != "export_clause" {
				continue
			}
			for k := uint32(0); k < clause.NamedChildCount(); k++ {
				spec := clause.NamedChild(int(k))
				if spec.Type() != "export_specifier" {
					continue
				}
				if nameNode := spec.ChildByFieldName("name"); nameNode != nil {
					exports.named[nameNode.Content(src)] = true
				}
			}
		}
	}
	return exports
}

func hasDefaultKeyword(exportNode *sitter.Node) bool {
	for i := 0; i < int(exportNode.ChildCount()); i++ {
		if exportNode.Child(i).Type() == "default" {
			return true
		}
	}
	return false
}

func isTestPath(filePath string) bool {
	base := strings.ToLower(filePath)
	return strings.Contains(base, ".test.") || strings.Contains(base, ".spec.") ||
		strings.Contains(base, "__tests__/")
}
