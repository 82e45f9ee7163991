// Package ruleset loads the species and job tables that drive character creation.
package ruleset

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// loadDefinitions decodes every YAML file in dir into a T, rejecting unknown
// fields, and runs validate on each.
func loadDefinitions[T any](dir, kind string, validate func(*T) error) ([]*T, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	defs := make([]*T, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var def T
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil {
			return nil, fmt.Errorf("parsing %s file %s: %w", kind, path, err)
		}
		if err := validate(&def); err != nil {
			return nil, fmt.Errorf("validating %s: %w", path, err)
		}
		defs = append(defs, &def)
	}
	return defs, nil
}

func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths, nil
}
