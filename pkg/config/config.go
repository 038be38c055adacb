package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a configuration from a YAML file. Fields absent from the
// file keep their default values.
func Load(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration YAML: %w", err)
	}

	return &cfg, nil
}

// LoadProject loads a configuration from a project directory.
// It looks for veranda.yaml in the given directory.
func LoadProject(projectDir string) (*Configuration, error) {
	return Load(filepath.Join(projectDir, "veranda.yaml"))
}
