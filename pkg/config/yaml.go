package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the configuration to YAML format.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if cfg.Rules == nil {
		cfg.Rules = make(map[string]RuleConfig)
	}
	if cfg.Templaters == nil {
		cfg.Templaters = make(map[string]TemplaterConfig)
	}

	return cfg, nil
}

// Clone creates a deep copy of the serializable configuration fields.
// CLI-only fields are copied directly.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	data, err := c.ToYAML()
	if err != nil {
		// Serialization of a well-formed Config cannot fail; preserve
		// the contract by returning a shallow copy.
		clone := *c
		return &clone
	}

	clone, err := FromYAML(data)
	if err != nil {
		shallow := *c
		return &shallow
	}

	clone.Format = c.Format
	clone.RuleFormat = c.RuleFormat
	clone.Jobs = c.Jobs
	clone.Strict = c.Strict
	clone.EnableRules = append([]string(nil), c.EnableRules...)
	clone.DisableRules = append([]string(nil), c.DisableRules...)

	return clone
}
