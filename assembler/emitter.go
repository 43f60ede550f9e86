package assembler

import (
	"strings"

	"github.com/yunfengsay/part-render/graph"
)

// EmitImport reconstructs one import statement from its specifier flags:
// default name first, then named clauses with aliases, or a namespace binding.
func EmitImport(imp *graph.ImportInfo) string {
	var defaultName, namespaceName string
	var named []string

	for _, spec := range imp.Specifiers {
		switch {
		case spec.IsDefault:
			defaultName = spec.Name
		case spec.IsNamespace:
			namespaceName = spec.Name
		default:
			if spec.Alias != "" && spec.Alias != spec.Name {
				named = append(named, spec.Name+" as "+spec.Alias)
			} else {
				named = append(named, spec.Name)
			}
		}
	}

	var clauses []string
	if defaultName != "" {
		clauses = append(clauses, defaultName)
	}
	if namespaceName != "" {
		clauses = append(clauses, "* as "+namespaceName)
	}
	if len(named) > 0 {
		clauses = append(clauses, "{ "+strings.Join(named, ", ")+" }")
	}

	if len(clauses) == 0 {
		return "import '" + imp.Module + "';"
	}
	return "import " + strings.Join(clauses, ", ") + " from '" + imp.Module + "';"
}
