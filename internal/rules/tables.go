// Package rules implements the Tabuleiro do Caos rulebook formulas as pure
// functions. Nothing here validates input or returns errors: the functions
// evaluate arithmetic on whatever they are given, and enforcement lives in
// the validators and the service tier.
package rules

import (
	"github.com/tabuleirodocaos/sheet-api/internal/entities/caos"
)

// Guard formula base (rulebook chapter 3)
const GuardBase = 15

// Power Point formula base
const PowerPointBaseValue = 2

// archetypeKeyAttributes maps each archetype to the attribute that scales
// its Guard contribution.
var archetypeKeyAttributes = map[caos.Archetype]caos.Attribute{
	caos.ArchetypeCombatente: caos.AttributeCorpo,
	caos.ArchetypeLadino:     caos.AttributeAgilidade,
	caos.ArchetypeAcademico:  caos.AttributeMente,
	caos.ArchetypeFeiticeiro: caos.AttributeEssencia,
	caos.ArchetypeAcolito:    caos.AttributeInfluencia,
	caos.ArchetypeNatural:    caos.AttributeInstinto,
}

// archetypePowerPointBases is the per-level PP base of each archetype.
var archetypePowerPointBases = map[caos.Archetype]int32{
	caos.ArchetypeCombatente: 1,
	caos.ArchetypeLadino:     2,
	caos.ArchetypeNatural:    3,
	caos.ArchetypeAcolito:    3,
	caos.ArchetypeAcademico:  4,
	caos.ArchetypeFeiticeiro: 5,
}

// xpTable is the rulebook XP-to-next-level table for levels 0 through 30.
// Levels past 30 compound 1.07x per level, flooring at each step.
var xpTable = [31]int32{
	10, 25, 50, 100, 175, 275, 400, 550, 725, 950,
	1250, 1650, 2150, 2800, 3600, 4600, 5800, 7200, 8800, 10600,
	12600, 14800, 17200, 19800, 22000, 24000, 25800, 27400, 28600, 29500,
	30000,
}

// epicXPMultiplier is the per-level growth factor past the table.
const epicXPMultiplier = 1.07

// ArchetypeKeyAttribute returns the attribute that scales the given
// archetype's Guard contribution. Unknown archetypes map to Corpo.
func ArchetypeKeyAttribute(a caos.Archetype) caos.Attribute {
	if attr, ok := archetypeKeyAttributes[a]; ok {
		return attr
	}
	return caos.AttributeCorpo
}

// PowerPointBase returns the per-level PP base of the given archetype.
// Unknown archetypes contribute the combatente base.
func PowerPointBase(a caos.Archetype) int32 {
	if base, ok := archetypePowerPointBases[a]; ok {
		return base
	}
	return archetypePowerPointBases[caos.ArchetypeCombatente]
}
