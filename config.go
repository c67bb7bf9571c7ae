package replyaux

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// HeaderConfig declares a single response header decoration.
type HeaderConfig struct {
	// Name is the header field name
	Name string `json:"name" yaml:"name"`

	// Value is the header field value
	Value string `json:"value" yaml:"value"`

	// Default, when true, makes this decoration a fallback: the header
	// is written only when the response carries no entry for Name.  The
	// default policy is to replace any existing entries.
	Default bool `json:"default" yaml:"default"`
}

// Decorator builds the decorator this entry declares.  An invalid name
// or value results in an *InvalidHeaderNameError or
// *InvalidHeaderValueError.
func (hc HeaderConfig) Decorator() (Decorator, error) {
	if hc.Default {
		return DefaultHeader(hc.Name, hc.Value)
	}

	return Header(hc.Name, hc.Value)
}

// Config declares an ordered list of response header decorations,
// typically loaded once when routes are configured.  Order matters:
// earlier entries wrap later ones, so an earlier replacement wins over a
// later one for the same name, while an earlier fallback yields to a
// later one.
type Config struct {
	Headers []HeaderConfig `json:"headers" yaml:"headers"`
}

// LoadConfigFromFile loads a Config from a file in either YAML or JSON
// format.  YAML is tried first, then JSON.
func LoadConfigFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if yamlErr := yaml.Unmarshal(data, &config); yamlErr != nil {
		if jsonErr := json.Unmarshal(data, &config); jsonErr != nil {
			return nil, fmt.Errorf("failed to parse config file as YAML or JSON: %w", yamlErr)
		}
	}

	return &config, nil
}

// Decorators builds every declared decorator, in declaration order.  The
// first invalid entry aborts the whole build: there is no partially
// constructed decorator list, since a malformed header in configuration
// is an unrecoverable defect.
func (c *Config) Decorators() ([]Decorator, error) {
	decorators := make([]Decorator, 0, len(c.Headers))
	for i, hc := range c.Headers {
		d, err := hc.Decorator()
		if err != nil {
			return nil, fmt.Errorf("headers[%d]: %w", i, err)
		}

		decorators = append(decorators, d)
	}

	return decorators, nil
}
