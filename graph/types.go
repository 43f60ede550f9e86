package graph

import (
	"path"
	"strings"
)

// FileKind classifies a project file by the language surface it carries.
type FileKind string

const (
	KindTypedScript    FileKind = "typed-script"    // .ts
	KindTypedComponent FileKind = "typed-component" // .tsx
	KindScript         FileKind = "script"          // .js, .mjs, .cjs
	KindComponent      FileKind = "component"       // .jsx
	KindData           FileKind = "data"            // .json
	KindOther          FileKind = "other"
)

// KindForPath derives the FileKind from a file extension.
func KindForPath(filePath string) FileKind {
	switch strings.ToLower(path.Ext(filePath)) {
	case ".ts":
		return KindTypedScript
	case ".tsx":
		return KindTypedComponent
	case ".js", ".mjs", ".cjs":
		return KindScript
	case ".jsx":
		return KindComponent
	case ".json":
		return KindData
	default:
		return KindOther
	}
}

// IsSource reports whether the kind carries analyzable JS/TS source.
func (k FileKind) IsSource() bool {
	switch k {
	case KindTypedScript, KindTypedComponent, KindScript, KindComponent:
		return true
	}
	return false
}

// Typed reports whether the kind carries TypeScript syntax.
func (k FileKind) Typed() bool {
	return k == KindTypedScript || k == KindTypedComponent
}

// ProjectFile represents a single source file of the corpus
type ProjectFile struct {
	Path    string   // project-relative path
	Content string   // raw source text
	Kind    FileKind // language surface classification
}

// TypeConfig carries the resolution-relevant subset of a tsconfig.json
type TypeConfig struct {
	BaseURL string              `json:"baseUrl"`
	Paths   map[string][]string `json:"paths"`
}

// Project represents a corpus snapshot: the full set of project files available
// for resolution and catalog purposes, plus the dependency table
type Project struct {
	Name         string
	RootPath     string
	Files        []*ProjectFile
	Dependencies map[string]string // package name -> version
	TypeConfig   *TypeConfig

	fileMap map[string]int
}

// AddFile appends a file to the project, path uniqueness is the caller's contract
func (p *Project) AddFile(file *ProjectFile) {
	if p.fileMap == nil {
		p.fileMap = make(map[string]int)
	}
	p.Files = append(p.Files, file)
	p.fileMap[file.Path] = len(p.Files) - 1
}

// LookupFile retrieves a file by its project-relative path
func (p *Project) LookupFile(filePath string) *ProjectFile {
	if len(p.fileMap) == 0 {
		p.indexFiles()
	}
	if idx, ok := p.fileMap[filePath]; ok && idx < len(p.Files) {
		return p.Files[idx]
	}
	return nil
}

// HasPath checks whether a project-relative path exists in the corpus
func (p *Project) HasPath(filePath string) bool {
	if len(p.fileMap) == 0 {
		p.indexFiles()
	}
	_, ok := p.fileMap[filePath]
	return ok
}

// SourceFiles returns the files that carry analyzable source
func (p *Project) SourceFiles() []*ProjectFile {
	var out []*ProjectFile
	for _, file := range p.Files {
		if file.Kind.IsSource() {
			out = append(out, file)
		}
	}
	return out
}

func (p *Project) indexFiles() {
	p.fileMap = make(map[string]int)
	for i, file := range p.Files {
		if file == nil {
			continue
		}
		if _, ok := p.fileMap[file.Path]; !ok {
			p.fileMap[file.Path] = i
		}
	}
}
