package pattern

// yamlPattern is the intermediate struct for parsing the YAML pattern
// format.
type yamlPattern struct {
	Name        string   `yaml:"name"`
	ID          string   `yaml:"id"`
	Pattern     string   `yaml:"pattern"`
	Description string   `yaml:"description,omitempty"`
	Examples    []string `yaml:"examples,omitempty"`
}

// yamlPatternsFile represents the top-level structure of a patterns YAML
// file: a "patterns" array.
type yamlPatternsFile struct {
	Patterns []yamlPattern `yaml:"patterns"`
}

func convertYAMLPattern(y yamlPattern) *Pattern {
	return &Pattern{
		ID:          y.ID,
		Name:        y.Name,
		Pattern:     y.Pattern,
		Description: y.Description,
		Examples:    y.Examples,
	}
}
