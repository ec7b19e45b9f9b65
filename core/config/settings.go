package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"sigs.k8s.io/yaml"
)

var (
	ErrUnknownSection = errors.New("unknown section")
	ErrUnknownField   = errors.New("unknown field")
)

// Setting is a single field of the configuration rendered as YAML.
type Setting struct {
	Section string
	Field   string
	Value   string
}

func (s Setting) String() string {
	return fmt.Sprintf("%s.%s: %s", s.Section, s.Field, s.Value)
}

type sections map[string]map[string]interface{}

func (c *Configuration) sections() (sections, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}

	var out sections
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s sections) lookup(section, field string) (interface{}, error) {
	fields, ok := s[section]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	value, ok := fields[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q in section %q", ErrUnknownField, field, section)
	}
	return value, nil
}

func renderValue(value interface{}) (string, error) {
	out, err := yaml.Marshal(value)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// Get returns a single field rendered as YAML.
func (c *Configuration) Get(section, field string) (string, error) {
	s, err := c.sections()
	if err != nil {
		return "", err
	}

	value, err := s.lookup(section, field)
	if err != nil {
		return "", err
	}
	return renderValue(value)
}

// List returns every field sorted by section and field name.
func (c *Configuration) List() ([]Setting, error) {
	s, err := c.sections()
	if err != nil {
		return nil, err
	}

	var out []Setting
	for section, fields := range s {
		for field, value := range fields {
			rendered, err := renderValue(value)
			if err != nil {
				return nil, err
			}
			out = append(out, Setting{Section: section, Field: field, Value: rendered})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Section == out[j].Section {
			return out[i].Field < out[j].Field
		}
		return out[i].Section < out[j].Section
	})
	return out, nil
}

// Set replaces a single field. String fields take value verbatim, other
// fields parse it as YAML. The change is only applied if the resulting
// configuration is valid, it isn't saved.
func (c *Configuration) Set(section, field, value string) error {
	s, err := c.sections()
	if err != nil {
		return err
	}

	current, err := s.lookup(section, field)
	if err != nil {
		return err
	}

	var parsed interface{}
	if _, isString := current.(string); isString {
		parsed = value
	} else if err := yaml.Unmarshal([]byte(value), &parsed); err != nil {
		return fmt.Errorf("parsing %s.%s: %w", section, field, err)
	}
	s[section][field] = parsed

	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}

	var updated Configuration
	if err := yaml.UnmarshalStrict(raw, &updated); err != nil {
		return fmt.Errorf("setting %s.%s: %w", section, field, err)
	}
	if err := updated.Validate(); err != nil {
		return fmt.Errorf("setting %s.%s: %w", section, field, err)
	}

	c.Logs = updated.Logs
	c.Terminal = updated.Terminal
	c.Scripts = updated.Scripts
	return nil
}
