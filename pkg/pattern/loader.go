package pattern

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load parses patterns from YAML bytes and validates each one.
func Load(data []byte) ([]*Pattern, error) {
	var file yamlPatternsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing patterns YAML: %w", err)
	}
	if len(file.Patterns) == 0 {
		return nil, fmt.Errorf("no patterns found in YAML")
	}

	patterns := make([]*Pattern, 0, len(file.Patterns))
	seen := make(map[string]bool)
	for _, y := range file.Patterns {
		p := convertYAMLPattern(y)
		if err := Validate(p); err != nil {
			return nil, err
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate pattern ID %s", p.ID)
		}
		seen[p.ID] = true
		patterns = append(patterns, p)
	}
	return patterns, nil
}

// LoadFile loads patterns from a YAML file path.
func LoadFile(path string) ([]*Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading patterns file %s: %w", path, err)
	}
	return Load(data)
}

// Builtin returns the embedded default patterns.
func Builtin() ([]*Pattern, error) {
	data, err := builtinFS.ReadFile("builtin/default.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading builtin patterns: %w", err)
	}
	return Load(data)
}
