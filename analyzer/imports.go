package analyzer

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/yunfengsay/part-render/graph"
)

// collectImports extracts every top-level import statement of the fragment,
// preserving specifier kind exactly as written.
func collectImports(rootNode *sitter.Node, src []byte) []*graph.ImportInfo {
	var imports []*graph.ImportInfo
	for i := uint32(0); i < rootNode.NamedChildCount(); i++ {
		childNode := rootNode.NamedChild(int(i))
		if childNode.Type() != "import_statement" {
			continue
		}
		if info := parseImportStatement(childNode, src); info != nil {
			imports = append(imports, info)
		}
	}
	return imports
}

// parseImportStatement converts one import_statement node into an ImportInfo
func parseImportStatement(importNode *sitter.Node, src []byte) *graph.ImportInfo {
	sourceNode := importNode.ChildByFieldName("source")
	if sourceNode == nil {
		return nil
	}
	module := strings.Trim(sourceNode.Content(src), "'\"`")
	if module == "" {
		return nil
	}

	info := &graph.ImportInfo{
		Module:     module,
		IsRelative: graph.IsRelativeModule(module),
	}

	for i := uint32(0); i < importNode.NamedChildCount(); i++ {
		child := importNode.NamedChild(int(i))
		if child.Type() != "import_clause" {
			continue
		}
		for j := uint32(0); j < child.NamedChildCount(); j++ {
			clauseChild := child.NamedChild(int(j))
			switch clauseChild.Type() {
			case "identifier":
				info.Specifiers = append(info.Specifiers, graph.ImportSpecifier{
					Name:      clauseChild.Content(src),
					IsDefault: true,
				})
			case "namespace_import":
				for k := uint32(0); k < clauseChild.NamedChildCount(); k++ {
					nsChild := clauseChild.NamedChild(int(k))
					if nsChild.Type() == "identifier" {
						info.Specifiers = append(info.Specifiers, graph.ImportSpecifier{
							Name:        nsChild.Content(src),
							IsNamespace: true,
						})
					}
				}
			case "named_imports":
				for k := uint32(0); k < clauseChild.NamedChildCount(); k++ {
					specNode := clauseChild.NamedChild(int(k))
					if specNode.Type() != "import_specifier" {
						continue
					}
					spec := graph.ImportSpecifier{}
					if nameNode := specNode.ChildByFieldName("name"); nameNode != nil {
						spec.Name = nameNode.Content(src)
					}
					if aliasNode := specNode.ChildByFieldName("alias"); aliasNode != nil {
						spec.Alias = aliasNode.Content(src)
					}
					if spec.Name != "" {
						info.Specifiers = append(info.Specifiers, spec)
					}
				}
			}
		}
	}

	return info
}
