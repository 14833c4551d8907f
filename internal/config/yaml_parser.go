package config

import (
	"gopkg.in/yaml.v3"
)

// yamlParser adapts yaml.v3 to the koanf.Parser interface.
type yamlParser struct{}

// YAMLParser returns a koanf parser backed by gopkg.in/yaml.v3.
func YAMLParser() *yamlParser {
	return &yamlParser{}
}

// Unmarshal parses YAML bytes into a flat-able map.
func (p *yamlParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	out := map[string]interface{}{}
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Marshal renders a map as YAML.
func (p *yamlParser) Marshal(o map[string]interface{}) ([]byte, error) {
	return yaml.Marshal(o)
}
