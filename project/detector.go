package project

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Detector identifies the root folder of a JavaScript or TypeScript project
type Detector struct {
	// Root marker files/directories checked in order
	markers []string
}

// NewDetector creates a new project root detector
func NewDetector() *Detector {
	return &Detector{
		markers: []string{
			"package.json",  // Node projects
			"tsconfig.json", // TypeScript projects
			".git",          // Generic VCS marker
		},
	}
}

// DetectRoot searches up from the given path for a project root marker and
// returns the root directory together with the project name. When no marker
// is found the starting directory is returned with its base name.
func (d *Detector) DetectRoot(startPath string) (string, string, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return "", "", err
	}

	startDir := absPath
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		return "", "", err
	}
	if !fileInfo.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	rootPath := d.findRoot(startDir)
	if rootPath == "" {
		return startDir, filepath.Base(startDir), nil
	}

	name := extractPackageName(filepath.Join(rootPath, "package.json"))
	if name == "" {
		name = filepath.Base(rootPath)
	}
	return rootPath, name, nil
}

// findRoot searches up the directory tree for project markers
func (d *Detector) findRoot(startDir string) string {
	dir := startDir
	for {
		for _, marker := range d.markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// We've reached the filesystem root with no match
			break
		}
		dir = parent
	}
	return ""
}

// extractPackageName reads the name field from a package.json file
func extractPackageName(packageJSONPath string) string {
	data, err := os.ReadFile(packageJSONPath)
	if err != nil {
		return ""
	}
	var pkg struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return ""
	}
	return pkg.Name
}
