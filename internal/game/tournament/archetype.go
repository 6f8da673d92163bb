package tournament

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/arena/internal/game/creature"
	"github.com/cory-johannsen/arena/internal/game/dice"
)

// Archetype defines a reusable AI trainer template loaded from YAML.
// Each AI participant in a tournament is built from one archetype.
type Archetype struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	// Style is display flavour text ("aggressive", "defensive", ...).
	Style string `yaml:"style"`
	// TeamSize is how many creatures this trainer fields, 1 to 6.
	TeamSize int `yaml:"team_size"`
}

// Validate checks that the archetype satisfies basic invariants.
//
// Postcondition: Returns nil iff ID and Name are non-empty and TeamSize is
// in [1, 6]; returns an error on the first violation otherwise.
func (a *Archetype) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("archetype: id must not be empty")
	}
	if a.Name == "" {
		return fmt.Errorf("archetype %q: name must not be empty", a.ID)
	}
	if a.TeamSize < 1 || a.TeamSize > 6 {
		return fmt.Errorf("archetype %q: team_size must be 1-6, got %d", a.ID, a.TeamSize)
	}
	return nil
}

// LoadArchetypeFromBytes parses a single archetype from raw YAML bytes.
//
// Postcondition: Returns a validated *Archetype, or an error.
func LoadArchetypeFromBytes(data []byte) (*Archetype, error) {
	var a Archetype
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parsing archetype YAML: %w", err)
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

// LoadArchetypes reads all *.yaml files in dir and returns the parsed
// archetypes.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns all archetypes or an error on the first parse or
// validate failure; on error, the partial result is discarded.
func LoadArchetypes(dir string) ([]*Archetype, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading archetype dir %q: %w", dir, err)
	}

	var archetypes []*Archetype
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}

		a, err := LoadArchetypeFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
		archetypes = append(archetypes, a)
	}
	return archetypes, nil
}

// BuiltinArchetypes returns the fallback trainer set used when no archetype
// directory is supplied.
func BuiltinArchetypes() []*Archetype {
	return []*Archetype{
		{ID: "ace", Name: "Ace Trainer", Style: "balanced", TeamSize: 3},
		{ID: "ruffian", Name: "Ruffian", Style: "aggressive", TeamSize: 2},
		{ID: "scholar", Name: "Scholar", Style: "tactical", TeamSize: 3},
		{ID: "ranger", Name: "Ranger", Style: "defensive", TeamSize: 2},
		{ID: "drifter", Name: "Drifter", Style: "unpredictable", TeamSize: 1},
		{ID: "veteran", Name: "Veteran", Style: "balanced", TeamSize: 4},
		{ID: "prodigy", Name: "Prodigy", Style: "aggressive", TeamSize: 2},
	}
}

// BuildAIParticipants constructs count AI participants, assigning each a
// distinct archetype where possible (cycling with a numeric suffix once the
// set is exhausted) and a team drawn at random from pool, sized to the
// archetype's team size.
//
// Precondition: archetypes and pool must be non-empty; src must be non-nil.
// Postcondition: Returns count participants with IsPlayer false and team
// sizes min(TeamSize, len(pool)), or an error before any are built.
func BuildAIParticipants(count int, pool []creature.Definition, archetypes []*Archetype, src dice.Source) ([]*Participant, error) {
	if count < 1 {
		return nil, fmt.Errorf("ai participant count must be >= 1, got %d", count)
	}
	if len(archetypes) == 0 {
		return nil, fmt.Errorf("no archetypes available")
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("creature pool is empty")
	}
	for _, def := range pool {
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("creature pool: %w", err)
		}
	}

	participants := make([]*Participant, 0, count)
	for i := 0; i < count; i++ {
		arch := archetypes[i%len(archetypes)]
		name := arch.Name
		if i >= len(archetypes) {
			name = fmt.Sprintf("%s %d", arch.Name, i/len(archetypes)+1)
		}

		size := arch.TeamSize
		if size > len(pool) {
			size = len(pool)
		}
		drawn := make([]creature.Definition, len(pool))
		copy(drawn, pool)
		dice.Shuffle(drawn, src)

		participants = append(participants, &Participant{
			ID:   uuid.NewString(),
			Name: name,
			Team: drawn[:size],
		})
	}
	return participants, nil
}
