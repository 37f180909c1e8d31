package graphql

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// Config represents a GraphQL import configuration file.
type Config struct {
	// Schema is the path(s) to the GraphQL schema file(s).
	Schema StringList `yaml:"schema,omitempty"`

	// Unit is the name of the produced unit.
	Unit string `yaml:"unit,omitempty"`

	// Namespace holds the dotted-prefix segments of the produced unit,
	// outermost first.
	Namespace StringList `yaml:"namespace,omitempty"`

	// Scalars maps custom GraphQL scalar names to Delphi type names.
	Scalars map[string]string `yaml:"scalars,omitempty"`
}

// StringList is a YAML type that can be either a string or a list of strings.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler for StringList.
func (s *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*s = []string{node.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*s = list
		return nil
	default:
		return fmt.Errorf("expected string or list, got %v", node.Kind)
	}
}

// MarshalYAML implements yaml.Marshaler for StringList.
func (s StringList) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}
	return []string(s), nil
}

// LoadConfig loads an import configuration file. A missing file yields an
// empty configuration.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{Scalars: make(map[string]string)}, nil
		}
		return nil, fmt.Errorf("read graphql config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse graphql config: %w", err)
	}

	if cfg.Scalars == nil {
		cfg.Scalars = make(map[string]string)
	}

	return &cfg, nil
}

// SaveConfig saves an import configuration file.
func SaveConfig(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal graphql config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}

	return os.WriteFile(path, data, 0o644)
}

// AddSchemaPath adds a schema path to the configuration if not already
// present.
func (c *Config) AddSchemaPath(path string) {
	if !slices.Contains(c.Schema, path) {
		c.Schema = append(c.Schema, path)
	}
}

// SetScalar sets the Delphi type a custom scalar maps to.
func (c *Config) SetScalar(name, delphiType string) {
	if c.Scalars == nil {
		c.Scalars = make(map[string]string)
	}
	c.Scalars[name] = delphiType
}
