// Package formats provides level file format parsers.
package formats

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id" json:"id"`
	Name     string            `yaml:"name" json:"name"`
	Params   YAMLParams        `yaml:"params" json:"params"`
	Ortho    string            `yaml:"ortho,omitempty" json:"ortho,omitempty"`
	Fill     string            `yaml:"fill,omitempty" json:"fill,omitempty"`
	Cells    []YAMLCell        `yaml:"cells,omitempty" json:"cells,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty" json:"metadata,omitempty"`
}

// YAMLParams represents the hexagon side lengths.
type YAMLParams struct {
	A int `yaml:"a" json:"a"`
	B int `yaml:"b" json:"b"`
	C int `yaml:"c" json:"c"`
}

// YAMLCell places one state on the board.
type YAMLCell struct {
	X     int    `yaml:"x" json:"x"`
	Y     int    `yaml:"y" json:"y"`
	State string `yaml:"state" json:"state"`
}

// ParseYAML parses a YAML level file. It also returns the document as a
// generic JSON value for schema validation.
func ParseYAML(data []byte) (YAMLLevel, any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return YAMLLevel{}, nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	doc, err := toJSON(raw)
	if err != nil {
		return YAMLLevel{}, nil, err
	}

	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return YAMLLevel{}, doc, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return yl, doc, nil
}

// ParseJSON parses a JSON level file.
func ParseJSON(data []byte) (YAMLLevel, any, error) {
	doc, err := decodeJSON(data)
	if err != nil {
		return YAMLLevel{}, nil, err
	}
	var yl YAMLLevel
	if err := json.Unmarshal(data, &yl); err != nil {
		return YAMLLevel{}, doc, fmt.Errorf("json unmarshal: %w", err)
	}
	return yl, doc, nil
}

// toJSON converts a YAML value to the types encoding/json produces.
func toJSON(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("convert to json: %w", err)
	}
	return decodeJSON(data)
}

func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("json decode: %w", err)
	}
	return doc, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".json"}
}
