// Package creature provides the static creature definitions and the
// type-effectiveness chart consumed by the battle engine.
package creature

import (
	"fmt"
	"strings"
)

// TypeID identifies one of the eighteen elemental types.
type TypeID string

const (
	TypeNormal   TypeID = "normal"
	TypeFire     TypeID = "fire"
	TypeWater    TypeID = "water"
	TypeElectric TypeID = "electric"
	TypeGrass    TypeID = "grass"
	TypeIce      TypeID = "ice"
	TypeFighting TypeID = "fighting"
	TypePoison   TypeID = "poison"
	TypeGround   TypeID = "ground"
	TypeFlying   TypeID = "flying"
	TypePsychic  TypeID = "psychic"
	TypeBug      TypeID = "bug"
	TypeRock     TypeID = "rock"
	TypeGhost    TypeID = "ghost"
	TypeDragon   TypeID = "dragon"
	TypeDark     TypeID = "dark"
	TypeSteel    TypeID = "steel"
	TypeFairy    TypeID = "fairy"
)

// knownTypes is the set of valid TypeIDs.
var knownTypes = map[TypeID]bool{
	TypeNormal: true, TypeFire: true, TypeWater: true, TypeElectric: true,
	TypeGrass: true, TypeIce: true, TypeFighting: true, TypePoison: true,
	TypeGround: true, TypeFlying: true, TypePsychic: true, TypeBug: true,
	TypeRock: true, TypeGhost: true, TypeDragon: true, TypeDark: true,
	TypeSteel: true, TypeFairy: true,
}

// Known reports whether t is one of the eighteen elemental types.
func Known(t TypeID) bool { return knownTypes[t] }

// String returns the type name with the first letter capitalised, for
// display in move names and battle messages.
func (t TypeID) String() string {
	s := string(t)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// BaseStats holds the six base statistics of a creature definition.
type BaseStats struct {
	HP        int `yaml:"hp"`
	Attack    int `yaml:"attack"`
	Defense   int `yaml:"defense"`
	SpAttack  int `yaml:"sp_attack"`
	SpDefense int `yaml:"sp_defense"`
	Speed     int `yaml:"speed"`
}

// Total returns the sum of all six base statistics.
//
// Postcondition: return value == HP+Attack+Defense+SpAttack+SpDefense+Speed.
func (s BaseStats) Total() int {
	return s.HP + s.Attack + s.Defense + s.SpAttack + s.SpDefense + s.Speed
}

// Definition is an immutable creature definition supplied by the external
// data layer. The engine never mutates a Definition; live battle state is
// snapshotted from it at battle start.
type Definition struct {
	ID    string    `yaml:"id"`
	Name  string    `yaml:"name"`
	Types []TypeID  `yaml:"types"`
	Stats BaseStats `yaml:"stats"`
}

// Validate checks that the definition satisfies basic invariants.
//
// Postcondition: Returns nil iff ID and Name are non-empty, Types has one or
// two known entries, and every base statistic is >= 1.
func (d Definition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("creature definition: id must not be empty")
	}
	if d.Name == "" {
		return fmt.Errorf("creature definition %q: name must not be empty", d.ID)
	}
	if len(d.Types) < 1 || len(d.Types) > 2 {
		return fmt.Errorf("creature definition %q: must have 1 or 2 types, got %d", d.ID, len(d.Types))
	}
	for _, t := range d.Types {
		if !Known(t) {
			return fmt.Errorf("creature definition %q: unknown type %q", d.ID, t)
		}
	}
	stats := []struct {
		name  string
		value int
	}{
		{"hp", d.Stats.HP},
		{"attack", d.Stats.Attack},
		{"defense", d.Stats.Defense},
		{"sp_attack", d.Stats.SpAttack},
		{"sp_defense", d.Stats.SpDefense},
		{"speed", d.Stats.Speed},
	}
	for _, s := range stats {
		if s.value < 1 {
			return fmt.Errorf("creature definition %q: %s must be >= 1, got %d", d.ID, s.name, s.value)
		}
	}
	return nil
}

// HasType reports whether t is among the definition's types.
func (d Definition) HasType(t TypeID) bool {
	for _, dt := range d.Types {
		if dt == t {
			return true
		}
	}
	return false
}
