package assembler

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// exportPattern detects the literal presence of export syntax. A fragment
// that already exports anything is passed through unmodified.
var exportPattern = regexp.MustCompile(`(?m)^\s*export\b`)

// importPattern matches one top-level import statement up to and including
// its module string and trailing newline; named clauses may span lines.
var importPattern = regexp.MustCompile(`(?m)^[ \t]*import\s+(?:type\s+)?[\s\S]*?['"][^'"\n]*['"][ \t]*;?[ \t]*\r?\n?`)

// stripImports removes the fragment's own import statements from its body.
// They re-enter the output through the merged import header; leaving them in
// place would bind every imported name twice.
func stripImports(fragment string) string {
	return importPattern.ReplaceAllString(fragment, "")
}

// declaration patterns tried against the fragment to guess the component name
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^\s*(?:async\s+)?function\s+([A-Za-z_$][\w$]*)`),
	regexp.MustCompile(`(?m)^\s*(?:const|let|var)\s+([A-Za-z_$][\w$]*)\s*=`),
	regexp.MustCompile(`(?m)^\s*class\s+([A-Za-z_$][\w$]*)`),
}

// hasExport reports whether the fragment contains an export statement
func hasExport(fragment string) bool {
	return exportPattern.MatchString(fragment)
}

// detectComponentName finds the first function, const or class declaration
// name of the fragment. Returns "" when nothing plausible is declared.
func detectComponentName(fragment string) string {
	best := ""
	bestIdx := len(fragment) + 1
	for _, pattern := range namePatterns {
		loc := pattern.FindStringSubmatchIndex(fragment)
		if loc == nil {
			continue
		}
		if loc[0] < bestIdx {
			bestIdx = loc[0]
			best = fragment[loc[2]:loc[3]]
		}
	}
	return best
}

// buildWrapper renders the auto-generated exporting preview harness: it
// mounts the detected component with the supplied mock props and shows a
// visible error block instead of throwing when rendering fails.
func buildWrapper(name string, mockProps map[string]interface{}) string {
	props := "{}"
	if len(mockProps) > 0 {
		if data, err := json.Marshal(mockProps); err == nil {
			props = string(data)
		}
	}
	return fmt.Sprintf(`const __previewProps = %s;

export default function __Preview() {
  try {
    return <%s {...__previewProps} />;
  } catch (err) {
    return (
      <div style={{ color: 'red', padding: '8px', border: '1px solid red' }}>
        Failed to render %s: {String(err && err.message ? err.message : err)}
      </div>
    );
  }
}
`, props, name, name)
}
