package creature

// typeChart maps attack type → defender type → multiplier. Only non-neutral
// relations are recorded; any absent pair is neutral (1.0).
var typeChart = map[TypeID]map[TypeID]float64{
	TypeNormal: {
		TypeRock: 0.5, TypeGhost: 0, TypeSteel: 0.5,
	},
	TypeFire: {
		TypeFire: 0.5, TypeWater: 0.5, TypeGrass: 2, TypeIce: 2,
		TypeBug: 2, TypeRock: 0.5, TypeDragon: 0.5, TypeSteel: 2,
	},
	TypeWater: {
		TypeFire: 2, TypeWater: 0.5, TypeGrass: 0.5, TypeGround: 2,
		TypeRock: 2, TypeDragon: 0.5,
	},
	TypeElectric: {
		TypeWater: 2, TypeElectric: 0.5, TypeGrass: 0.5, TypeGround: 0,
		TypeFlying: 2, TypeDragon: 0.5,
	},
	TypeGrass: {
		TypeFire: 0.5, TypeWater: 2, TypeGrass: 0.5, TypePoison: 0.5,
		TypeGround: 2, TypeFlying: 0.5, TypeBug: 0.5, TypeRock: 2,
		TypeDragon: 0.5, TypeSteel: 0.5,
	},
	TypeIce: {
		TypeFire: 0.5, TypeWater: 0.5, TypeGrass: 2, TypeIce: 0.5,
		TypeGround: 2, TypeFlying: 2, TypeDragon: 2, TypeSteel: 0.5,
	},
	TypeFighting: {
		TypeNormal: 2, TypeIce: 2, TypePoison: 0.5, TypeFlying: 0.5,
		TypePsychic: 0.5, TypeBug: 0.5, TypeRock: 2, TypeGhost: 0,
		TypeDark: 2, TypeSteel: 2, TypeFairy: 0.5,
	},
	TypePoison: {
		TypeGrass: 2, TypePoison: 0.5, TypeGround: 0.5, TypeRock: 0.5,
		TypeGhost: 0.5, TypeSteel: 0, TypeFairy: 2,
	},
	TypeGround: {
		TypeFire: 2, TypeElectric: 2, TypeGrass: 0.5, TypePoison: 2,
		TypeFlying: 0, TypeBug: 0.5, TypeRock: 2, TypeSteel: 2,
	},
	TypeFlying: {
		TypeElectric: 0.5, TypeGrass: 2, TypeFighting: 2, TypeBug: 2,
		TypeRock: 0.5, TypeSteel: 0.5,
	},
	TypePsychic: {
		TypeFighting: 2, TypePoison: 2, TypePsychic: 0.5, TypeDark: 0,
		TypeSteel: 0.5,
	},
	TypeBug: {
		TypeFire: 0.5, TypeGrass: 2, TypeFighting: 0.5, TypePoison: 0.5,
		TypeFlying: 0.5, TypePsychic: 2, TypeGhost: 0.5, TypeDark: 2,
		TypeSteel: 0.5, TypeFairy: 0.5,
	},
	TypeRock: {
		TypeFire: 2, TypeIce: 2, TypeFighting: 0.5, TypeGround: 0.5,
		TypeFlying: 2, TypeBug: 2, TypeSteel: 0.5,
	},
	TypeGhost: {
		TypeNormal: 0, TypePsychic: 2, TypeGhost: 2, TypeDark: 0.5,
	},
	TypeDragon: {
		TypeDragon: 2, TypeSteel: 0.5, TypeFairy: 0,
	},
	TypeDark: {
		TypeFighting: 0.5, TypePsychic: 2, TypeGhost: 2, TypeDark: 0.5,
		TypeFairy: 0.5,
	},
	TypeSteel: {
		TypeFire: 0.5, TypeWater: 0.5, TypeElectric: 0.5, TypeIce: 2,
		TypeRock: 2, TypeSteel: 0.5, TypeFairy: 2,
	},
	TypeFairy: {
		TypeFire: 0.5, TypeFighting: 2, TypePoison: 0.5, TypeDragon: 2,
		TypeDark: 2, TypeSteel: 0.5,
	},
}

// Effectiveness returns the combined damage multiplier of an attack of type
// attack against a defender with the given type(s). The result is the product
// of the attack type's relation to each defender type; unknown or unlisted
// relations are neutral.
//
// Precondition: defender has one or two entries (callers hold the Definition
// invariant); extra entries still multiply but never occur in practice.
// Postcondition: return value ∈ {0, 0.25, 0.5, 1, 2, 4}.
func Effectiveness(attack TypeID, defender []TypeID) float64 {
	mult := 1.0
	relations, ok := typeChart[attack]
	if !ok {
		return mult
	}
	for _, dt := range defender {
		if m, found := relations[dt]; found {
			mult *= m
		}
	}
	return mult
}
