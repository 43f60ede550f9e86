package graph

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls the compilation pipeline
type Config struct {
	SkipTests         bool   `yaml:"skipTests"`         // skip *.test.* / *.spec.* files during catalog build
	IncludeUnexported bool   `yaml:"includeUnexported"` // index components that are never exported
	RuntimeModule     string `yaml:"runtimeModule"`     // base UI runtime module, default "react"
	RuntimeGlobal     string `yaml:"runtimeGlobal"`     // default binding of the runtime import, default "React"
	FallbackComponent string `yaml:"fallbackComponent"` // wrapper target when no component name is detectable
	MaxFileSize       int64  `yaml:"maxFileSize"`       // corpus files above this size are skipped, 0 means no limit
}

// DefaultConfig returns the configuration used when none is supplied
func DefaultConfig() *Config {
	return &Config{
		SkipTests:         true,
		IncludeUnexported: false,
		RuntimeModule:     "react",
		RuntimeGlobal:     "React",
		FallbackComponent: "PreviewComponent",
	}
}

// LoadConfig reads a YAML configuration file, filling unset fields with defaults
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if config.RuntimeModule == "" {
		config.RuntimeModule = "react"
	}
	if config.RuntimeGlobal == "" {
		config.RuntimeGlobal = "React"
	}
	if config.FallbackComponent == "" {
		config.FallbackComponent = "PreviewComponent"
	}
	return config, nil
}
