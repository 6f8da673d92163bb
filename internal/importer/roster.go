// Package importer loads creature rosters from YAML files into the
// read-only definitions the engine consumes. In production the definitions
// come from the external data layer; this loader serves the demo driver and
// tests.
package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/arena/internal/game/creature"
)

// rosterFile is the YAML document shape of a roster file.
type rosterFile struct {
	Creatures []creature.Definition `yaml:"creatures"`
}

// LoadRosterFromBytes parses a roster from raw YAML bytes, validating every
// definition and rejecting duplicate ids eagerly.
//
// Postcondition: Returns a non-empty slice of valid definitions, or an
// error; a partial result is never returned.
func LoadRosterFromBytes(data []byte) ([]creature.Definition, error) {
	var file rosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing roster YAML: %w", err)
	}
	if len(file.Creatures) == 0 {
		return nil, fmt.Errorf("roster contains no creatures")
	}

	seen := make(map[string]bool, len(file.Creatures))
	for _, def := range file.Creatures {
		if err := def.Validate(); err != nil {
			return nil, err
		}
		if seen[def.ID] {
			return nil, fmt.Errorf("duplicate creature id %q", def.ID)
		}
		seen[def.ID] = true
	}
	return file.Creatures, nil
}

// LoadRoster reads a single roster YAML file.
//
// Precondition: path must be a readable YAML file.
func LoadRoster(path string) ([]creature.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	defs, err := LoadRosterFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	return defs, nil
}

// LoadRosterDir reads all *.yaml files in dir and merges their creatures.
// Duplicate ids across files are rejected.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns the merged definitions or an error on the first
// failure; on error, the partial result is discarded.
func LoadRosterDir(dir string) ([]creature.Definition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading roster dir %q: %w", dir, err)
	}

	var defs []creature.Definition
	seen := make(map[string]bool)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		loaded, err := LoadRoster(path)
		if err != nil {
			return nil, err
		}
		for _, def := range loaded {
			if seen[def.ID] {
				return nil, fmt.Errorf("duplicate creature id %q in %q", def.ID, path)
			}
			seen[def.ID] = true
			defs = append(defs, def)
		}
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("no roster files found in %q", dir)
	}
	return defs, nil
}
