package rules

import (
	"github.com/tabuleirodocaos/sheet-api/internal/entities/caos"
)

// Validators are pure predicates. They are consulted by the service tier
// and the UI but never auto-correct data; fixing a violation is always a
// separate, explicit caller action.

// IsValidAttributeValue reports whether an attribute value is in range:
// 0-3 at character creation, 0-5 afterwards.
func IsValidAttributeValue(value int32, atCreation bool) bool {
	if value < 0 {
		return false
	}
	if atCreation {
		return value <= caos.MaxCreationValue
	}
	return value <= caos.MaxAttributeValue
}

// IsValidCharacterLevel reports whether a character level is in range:
// 0-15 always, 16-30 only when epic play is allowed, never negative.
func IsValidCharacterLevel(level int32, allowEpic bool) bool {
	if level < 0 {
		return false
	}
	if level <= caos.MaxStandardLevel {
		return true
	}
	return allowEpic && level <= caos.MaxEpicLevel
}

// IsValidClassLevels reports whether a set of class levels is consistent
// with the character level: every entry non-negative and the sum at most
// the character level.
func IsValidClassLevels(levels []int32, characterLevel int32) bool {
	var sum int32
	for _, l := range levels {
		if l < 0 {
			return false
		}
		sum += l
	}
	return sum <= characterLevel
}

// IsValidClassCount reports whether a character may hold this many classes.
func IsValidClassCount(count int) bool {
	return count >= 0 && count <= caos.MaxClasses
}

// ClassesUnlocked reports whether the character level permits classes at all.
func ClassesUnlocked(level int32) bool {
	return level >= caos.ClassUnlockLevel
}

// ArchetypeLevelsMatch reports whether the invested archetype levels sum to
// the character level. A character with no archetype chosen yet is
// consistent by definition.
func ArchetypeLevelsMatch(archetypes []caos.ArchetypeAssignment, characterLevel int32) bool {
	if len(archetypes) == 0 {
		return true
	}
	var sum int32
	for _, a := range archetypes {
		if a.Level < 1 {
			return false
		}
		sum += a.Level
	}
	return sum == characterLevel
}

// ProficiencyExcess reports how many acquired proficiencies exceed the slot
// count granted by Mente. Zero means within limits. This is a
// difference-reporting step, never an enforcement step: lowering Mente
// never strips proficiencies, it only surfaces the excess.
func ProficiencyExcess(proficientCount, mente int32) int32 {
	excess := proficientCount - SkillProficiencySlots(mente)
	if excess < 0 {
		return 0
	}
	return excess
}

// LanguageExcess reports how many additional known languages exceed the
// slots granted by Mente. Same flag-only semantics as ProficiencyExcess.
func LanguageExcess(additionalKnown, mente int32) int32 {
	excess := additionalKnown - AdditionalLanguages(mente)
	if excess < 0 {
		return 0
	}
	return excess
}

// CanAfford reports whether a purse covers a copper cost.
func CanAfford(d caos.Denomination, costCopper int64) bool {
	return costCopper >= 0 && CopperValue(d) >= costCopper
}
