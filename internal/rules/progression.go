package rules

import (
	"math"

	"github.com/tabuleirodocaos/sheet-api/internal/entities/caos"
)

// TotalGuard computes the Guard (GA) maximum:
// 15 + sum(key attribute x archetype level) + otherModifiers.
func TotalGuard(archetypes []caos.ArchetypeAssignment, attrs caos.Attributes, otherModifiers int32) int32 {
	total := int32(GuardBase)
	for _, a := range archetypes {
		total += attrs.Get(ArchetypeKeyAttribute(a.Archetype)) * a.Level
	}
	return total + otherModifiers
}

// TotalPowerPoints computes the Power Point (PP) maximum:
// 2 + sum((archetype PP base + essencia) x archetype level) + otherModifiers.
func TotalPowerPoints(archetypes []caos.ArchetypeAssignment, essencia, otherModifiers int32) int32 {
	total := int32(PowerPointBaseValue)
	for _, a := range archetypes {
		total += (PowerPointBase(a.Archetype) + essencia) * a.Level
	}
	return total + otherModifiers
}

// TotalVitality computes the Vitality (PV) maximum: floor(gaMax / 3).
// The rulebook floors, never rounds.
func TotalVitality(gaMax int32) int32 {
	return floorDiv(gaMax, 3)
}

// AdditionalLanguages is the number of extra languages granted by Mente:
// max(0, mente - 1). Recomputed live on every call, never cached.
func AdditionalLanguages(mente int32) int32 {
	if mente <= 1 {
		return 0
	}
	return mente - 1
}

// SkillProficiencySlots is the number of skills a character may raise above
// leigo: 3 + mente. Recomputed live on every call, never cached.
func SkillProficiencySlots(mente int32) int32 {
	return 3 + mente
}

// SignatureAbilityBonus is the bonus of the character's signature skill:
// min(3, ceil(level / 5)).
func SignatureAbilityBonus(level int32) int32 {
	bonus := ceilDiv(level, 5)
	if bonus > 3 {
		return 3
	}
	return bonus
}

// XPForNextLevel returns the XP required to advance past the given level.
// Levels 0-30 read the rulebook table; beyond it each level multiplies the
// previous requirement by 1.07, flooring at every step. Flooring per step
// (not once at the end) is what the published epic-tier values expect.
func XPForNextLevel(level int32) int32 {
	if level <= 0 {
		return xpTable[0]
	}
	if int(level) < len(xpTable) {
		return xpTable[level]
	}

	xp := xpTable[len(xpTable)-1]
	for l := int32(len(xpTable)); l <= level; l++ {
		xp = int32(math.Floor(float64(xp) * epicXPMultiplier))
	}
	return xp
}

// CarryCapacity is the number of inventory slots a character can carry:
// 8 + 2 x corpo. Coins add weight separately, see CoinWeight.
func CarryCapacity(corpo int32) int32 {
	return 8 + 2*corpo
}

// floorDiv divides flooring toward negative infinity, matching the
// rulebook's floor semantics even for out-of-range negative input.
func floorDiv(a, b int32) int32 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// ceilDiv divides rounding toward positive infinity.
func ceilDiv(a, b int32) int32 {
	q := a / b
	if (a%b != 0) && ((a < 0) == (b < 0)) {
		q++
	}
	return q
}
