package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profiles maps connection profile names to descriptors, loaded from a
// YAML file of the form:
//
//	profiles:
//	  dev: sqlite://./dev.db?mode=rwc
//	  prod: sqlite:///var/lib/app/app.db?mode=ro&immutable=true
type Profiles struct {
	Profiles map[string]string `yaml:"profiles"`
}

// LoadProfiles reads and parses a profiles file
func LoadProfiles(path string) (*Profiles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles file: %w", err)
	}

	var profiles Profiles
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to parse profiles file: %w", err)
	}

	return &profiles, nil
}

// Descriptor looks up the descriptor for a profile name
func (p *Profiles) Descriptor(name string) (string, error) {
	descriptor, ok := p.Profiles[name]
	if !ok {
		return "", fmt.Errorf("profile %q not found", name)
	}
	return descriptor, nil
}
