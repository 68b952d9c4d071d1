package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed assets/species.yaml
var defaultSpeciesYAML []byte

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadSpecies reads a species table from path.
func LoadSpecies(path string) (*SpeciesConfig, error) {
	var sc SpeciesConfig
	if err := loadYAML(path, &sc); err != nil {
		return nil, fmt.Errorf("load species %s: %w", path, err)
	}
	return &sc, nil
}

// DefaultSpecies returns the species table shipped with the binary.
func DefaultSpecies() (*SpeciesConfig, error) {
	var sc SpeciesConfig
	if err := yaml.Unmarshal(defaultSpeciesYAML, &sc); err != nil {
		return nil, fmt.Errorf("parse embedded species: %w", err)
	}
	return &sc, nil
}

// LoadMatch reads a match description from path. Missing sections keep the
// values of DefaultMatch.
func LoadMatch(path string) (*MatchConfig, error) {
	mc := DefaultMatch()
	if err := loadYAML(path, mc); err != nil {
		return nil, fmt.Errorf("load match %s: %w", path, err)
	}
	return mc, nil
}

// LoadAll loads the match file and the species table. An empty speciesPath
// selects the embedded table; an empty matchPath selects DefaultMatch.
func LoadAll(matchPath, speciesPath string) (*MatchConfig, *SpeciesConfig, error) {
	mc := DefaultMatch()
	if matchPath != "" {
		var err error
		if mc, err = LoadMatch(matchPath); err != nil {
			return nil, nil, err
		}
	}
	var (
		sc  *SpeciesConfig
		err error
	)
	if speciesPath != "" {
		sc, err = LoadSpecies(speciesPath)
	} else {
		sc, err = DefaultSpecies()
	}
	if err != nil {
		return nil, nil, err
	}
	return mc, sc, nil
}
