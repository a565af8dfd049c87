// ABOUTME: Declarative environment file: YAML with a name and requirement list
// ABOUTME: Loaded by Manager.CreateVenvFromFile; validation only, no pip logic

package envfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is a declarative environment definition:
//
//	name: analytics
//	requirements:
//	  - pandas==2.2.2
//	  - six
type File struct {
	Name         string   `yaml:"name"`
	Requirements []string `yaml:"requirements"`
}

// Load reads and validates an environment file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading environment file: %w", err)
	}
	return Parse(data)
}

// Parse decodes an environment file from YAML.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing environment file: %w", err)
	}
	if f.Name == "" {
		return nil, fmt.Errorf("environment file missing name")
	}
	return &f, nil
}
