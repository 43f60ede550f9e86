package project_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yunfengsay/part-render/graph"
	"github.com/yunfengsay/part-render/project"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		full := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
}

func quietLog() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestLoader_Load(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"package.json": `{
  "name": "storefront",
  "dependencies": { "react": "^18.2.0", "lodash": "^4.17.0" },
  "devDependencies": { "typescript": "^5.3.0", "react": "^17.0.0", "lodash": "^4.17.21" }
}`,
		"tsconfig.json": `{
  // path aliases
  "compilerOptions": {
    "baseUrl": "src",
    "paths": { "@/*": ["*"] }
  }
}`,
		"src/App.tsx":                  `export default function App() { return <div />; }`,
		"src/components/Button.tsx":    `export function Button() { return <button />; }`,
		"src/theme.json":               `{"primary": "#336699"}`,
		"README.md":                    `# storefront`,
		"node_modules/react/index.js":  `module.exports = {};`,
		"dist/bundle.js":               `!function(){}();`,
	})

	loader := project.NewLoader(quietLog())
	proj, err := loader.Load(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, "storefront", proj.Name)
	assert.NotNil(t, proj.LookupFile("src/App.tsx"))
	assert.NotNil(t, proj.LookupFile("src/components/Button.tsx"))
	assert.NotNil(t, proj.LookupFile("src/theme.json"))
	assert.Nil(t, proj.LookupFile("README.md"), "non-source file loaded")
	assert.Nil(t, proj.LookupFile("node_modules/react/index.js"), "node_modules not skipped")
	assert.Nil(t, proj.LookupFile("dist/bundle.js"), "dist not skipped")

	// across dependency tables the higher pinned version wins
	assert.Equal(t, "^18.2.0", proj.Dependencies["react"])
	assert.Equal(t, "^4.17.21", proj.Dependencies["lodash"])
	assert.Equal(t, "^5.3.0", proj.Dependencies["typescript"])

	require.NotNil(t, proj.TypeConfig)
	assert.Equal(t, "src", proj.TypeConfig.BaseURL)
	assert.Equal(t, []string{"*"}, proj.TypeConfig.Paths["@/*"])

	button := proj.LookupFile("src/components/Button.tsx")
	require.NotNil(t, button)
	assert.Equal(t, graph.KindTypedComponent, button.Kind)
}

func TestLoader_LoadDetectsRootFromFile(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"package.json":   `{"name": "nested"}`,
		"src/deep/A.tsx": `export const A = () => <i />;`,
	})

	loader := project.NewLoader(quietLog())
	proj, err := loader.Load(context.Background(), filepath.Join(root, "src", "deep", "A.tsx"))
	require.NoError(t, err)
	assert.Equal(t, "nested", proj.Name)
	assert.NotNil(t, proj.LookupFile("src/deep/A.tsx"))
}

func TestDetector_DetectRoot(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"package.json": `{"name": "marked"}`,
		"src/x.ts":     `export const x = 1;`,
	})

	detector := project.NewDetector()
	found, name, err := detector.DetectRoot(filepath.Join(root, "src", "x.ts"))
	require.NoError(t, err)
	assert.Equal(t, root, found)
	assert.Equal(t, "marked", name)
}

func TestDetector_DetectRootNoMarkers(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"loose.ts": `export const y = 2;`})

	detector := project.NewDetector()
	found, name, err := detector.DetectRoot(root)
	require.NoError(t, err)
	assert.Equal(t, root, found)
	assert.Equal(t, filepath.Base(root), name)
}
