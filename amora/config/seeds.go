package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PersonaSeed is one entry of the persona seed file loaded at boot.
type PersonaSeed struct {
	Name        string   `yaml:"name"`
	Age         int      `yaml:"age"`
	Gender      string   `yaml:"gender"`
	Bio         string   `yaml:"bio"`
	Location    string   `yaml:"location"`
	Vibes       []string `yaml:"vibes"`
	PhotoKey    string   `yaml:"photo_key"`
	PromptNotes string   `yaml:"prompt_notes"`
}

type personaSeedFile struct {
	Personas []PersonaSeed `yaml:"personas"`
}

func LoadPersonaSeeds(path string) ([]PersonaSeed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file personaSeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse persona seed file %s: %w", path, err)
	}
	return file.Personas, nil
}
