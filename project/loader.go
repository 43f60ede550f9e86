package project

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/yunfengsay/part-render/graph"
)

// skipDirs lists directory names excluded from corpus loading
var skipDirs = map[string]bool{
	"node_modules": true,
	"dist":         true,
	"build":        true,
	"coverage":     true,
	".git":         true,
	".next":        true,
	".cache":       true,
}

// Loader reads a project corpus from a directory tree into memory
type Loader struct {
	fs       afs.Service
	detector *Detector
	log      *logrus.Logger
}

// NewLoader creates a new corpus loader
func NewLoader(log *logrus.Logger) *Loader {
	if log == nil {
		log = logrus.New()
	}
	return &Loader{
		fs:       afs.New(),
		detector: NewDetector(),
		log:      log,
	}
}

// Load builds an in-memory project from the directory containing the given
// path. The project root is detected from marker files; source and data files
// under the root are read into the corpus, dependency and path-alias metadata
// are parsed from package.json and tsconfig.json when present.
func (l *Loader) Load(ctx context.Context, location string) (*graph.Project, error) {
	rootPath, name, err := l.detector.DetectRoot(location)
	if err != nil {
		return nil, fmt.Errorf("failed to detect project root: %w", err)
	}

	project := &graph.Project{
		Name:         name,
		RootPath:     rootPath,
		Dependencies: map[string]string{},
	}

	var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if info.IsDir() {
			return !skipDirs[info.Name()], nil
		}
		kind := graph.KindForPath(info.Name())
		if kind == graph.KindOther {
			return true, nil
		}
		content, err := io.ReadAll(reader)
		if err != nil {
			return false, fmt.Errorf("failed to read %v: %w", info.Name(), err)
		}
		relPath := path.Join(relParent(parent), info.Name())
		project.AddFile(&graph.ProjectFile{
			Path:    relPath,
			Content: string(content),
			Kind:    kind,
		})
		return true, nil
	}
	if err := l.fs.Walk(ctx, rootPath, visitor); err != nil {
		return nil, fmt.Errorf("failed to walk project at %v: %w", rootPath, err)
	}

	if err := l.loadManifest(project); err != nil {
		l.log.WithError(err).Warn("skipping malformed package.json")
	}
	if err := l.loadTypeConfig(project); err != nil {
		l.log.WithError(err).Warn("skipping malformed tsconfig.json")
	}
	return project, nil
}

// relParent normalizes a walk parent path to slash form without leading separators
func relParent(parent string) string {
	return strings.Trim(strings.ReplaceAll(parent, "\\", "/"), "/")
}

// loadManifest parses dependency versions from the corpus package.json
func (l *Loader) loadManifest(project *graph.Project) error {
	file := project.LookupFile("package.json")
	if file == nil {
		return nil
	}
	var manifest struct {
		Name            string            `json:"name"`
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal([]byte(file.Content), &manifest); err != nil {
		return fmt.Errorf("failed to parse package.json: %w", err)
	}
	if manifest.Name != "" {
		project.Name = manifest.Name
	}
	project.Dependencies = MergeDependencies(project.Dependencies, manifest.DevDependencies)
	project.Dependencies = MergeDependencies(project.Dependencies, manifest.Dependencies)
	l.log.WithField("packages", DependencyNames(project.Dependencies)).Debug("dependency table loaded")
	return nil
}

// loadTypeConfig parses path alias settings from the corpus tsconfig.json
func (l *Loader) loadTypeConfig(project *graph.Project) error {
	file := project.LookupFile("tsconfig.json")
	if file == nil {
		return nil
	}
	var config struct {
		CompilerOptions struct {
			BaseURL string              `json:"baseUrl"`
			Paths   map[string][]string `json:"paths"`
		} `json:"compilerOptions"`
	}
	if err := json.Unmarshal([]byte(stripJSONComments(file.Content)), &config); err != nil {
		return fmt.Errorf("failed to parse tsconfig.json: %w", err)
	}
	project.TypeConfig = &graph.TypeConfig{
		BaseURL: config.CompilerOptions.BaseURL,
		Paths:   config.CompilerOptions.Paths,
	}
	return nil
}

// stripJSONComments removes // and /* */ comments, which tsconfig allows
func stripJSONComments(src string) string {
	var out strings.Builder
	inString := false
	for i := 0; i < len(src); i++ {
		c := src[i]
		if inString {
			out.WriteByte(c)
			if c == '\\' && i+1 < len(src) {
				i++
				out.WriteByte(src[i])
			} else if c == '"' {
				inString = false
			}
			continue
		}
		switch {
		case c == '"':
			inString = true
			out.WriteByte(c)
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			for i < len(src) && src[i] != '\n' {
				i++
			}
			if i < len(src) {
				out.WriteByte('\n')
			}
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			i += 2
			for i+1 < len(src) && !(src[i] == '*' && src[i+1] == '/') {
				i++
			}
			i++
		default:
			out.WriteByte(c)
		}
	}
	return out.String()
}

