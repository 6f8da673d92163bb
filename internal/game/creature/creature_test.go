package creature_test

import (
	"testing"

	"github.com/cory-johannsen/arena/internal/game/creature"
)

func validDefinition() creature.Definition {
	return creature.Definition{
		ID:    "embercub",
		Name:  "Embercub",
		Types: []creature.TypeID{creature.TypeFire},
		Stats: creature.BaseStats{HP: 78, Attack: 84, Defense: 78, SpAttack: 109, SpDefense: 85, Speed: 100},
	}
}

// TestDefinition_Validate_Valid verifies a well-formed definition passes.
func TestDefinition_Validate_Valid(t *testing.T) {
	if err := validDefinition().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

// TestDefinition_Validate_Rejections verifies each invariant violation is
// rejected with a descriptive error.
func TestDefinition_Validate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*creature.Definition)
	}{
		{"empty id", func(d *creature.Definition) { d.ID = "" }},
		{"empty name", func(d *creature.Definition) { d.Name = "" }},
		{"no types", func(d *creature.Definition) { d.Types = nil }},
		{"three types", func(d *creature.Definition) {
			d.Types = []creature.TypeID{creature.TypeFire, creature.TypeWater, creature.TypeGrass}
		}},
		{"unknown type", func(d *creature.Definition) { d.Types = []creature.TypeID{"plasma"} }},
		{"zero hp", func(d *creature.Definition) { d.Stats.HP = 0 }},
		{"negative speed", func(d *creature.Definition) { d.Stats.Speed = -5 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			def := validDefinition()
			tc.mutate(&def)
			if err := def.Validate(); err == nil {
				t.Errorf("Validate accepted %s", tc.name)
			}
		})
	}
}

// TestBaseStats_Total verifies the six statistics sum.
func TestBaseStats_Total(t *testing.T) {
	stats := creature.BaseStats{HP: 1, Attack: 2, Defense: 3, SpAttack: 4, SpDefense: 5, Speed: 6}
	if got := stats.Total(); got != 21 {
		t.Errorf("Total = %d, want 21", got)
	}
}

// TestDefinition_HasType verifies type membership for dual-typed creatures.
func TestDefinition_HasType(t *testing.T) {
	def := validDefinition()
	def.Types = []creature.TypeID{creature.TypeGrass, creature.TypePoison}
	if !def.HasType(creature.TypePoison) {
		t.Error("HasType(poison) = false, want true")
	}
	if def.HasType(creature.TypeFire) {
		t.Error("HasType(fire) = true, want false")
	}
}
