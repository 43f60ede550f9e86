package graph

// CompilationResult is the outcome of assembling and building one fragment.
// Success implies Code is present; failure implies Error is present.
type CompilationResult struct {
	Success  bool     `json:"success"`
	Code     string   `json:"code,omitempty"`
	Error    string   `json:"error,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// Failed creates a failure result carrying any warnings accumulated so far
func Failed(message string, warnings []string) *CompilationResult {
	return &CompilationResult{Success: false, Error: message, Warnings: warnings}
}

// Compiled creates a success result
func Compiled(code string, warnings []string) *CompilationResult {
	return &CompilationResult{Success: true, Code: code, Warnings: warnings}
}

// BuildRequest is the contract handed to the transpile/bundle collaborator:
// a single assembled source unit plus the resolution map its module-resolution
// hook must honor verbatim before falling back to its own resolution.
type BuildRequest struct {
	Code            string            `json:"code"`
	ResolvedModules map[string]string `json:"resolvedModules,omitempty"`
}
