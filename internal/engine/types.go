package engine

import (
	"github.com/tabuleirodocaos/sheet-api/internal/entities/caos"
)

// CharacterStats holds every derived, display-ready value of a sheet.
type CharacterStats struct {
	GuardMax              int32
	VitalityMax           int32
	PowerPointsMax        int32
	SkillProficiencySlots int32
	AdditionalLanguages   int32
	SignatureAbilityBonus int32
	CarryCapacitySlots    int32
	CoinWeight            int32
	XPForNextLevel        int32

	// Display-only currency views derived from the exact copper total.
	// Never a source of truth for further arithmetic.
	TotalOuro    float64
	TotalPlatina float64
}

// CalculateStatsInput defines the request for calculating derived stats
type CalculateStatsInput struct {
	Character *caos.Character
}

// CalculateStatsOutput defines the response for calculating derived stats
type CalculateStatsOutput struct {
	Stats *CharacterStats
}

// RecalculateCharacterInput defines the request for a retroactive recompute
type RecalculateCharacterInput struct {
	Character *caos.Character
}

// RecalculateCharacterOutput carries the recalculated copy of the sheet.
// Warnings enumerate over-limit proficiencies and languages; the sheet
// itself keeps every acquired choice.
type RecalculateCharacterOutput struct {
	Character *caos.Character
	Stats     *CharacterStats
	Warnings  []string
}

// ValidationIssue is one rulebook inconsistency found on a sheet.
type ValidationIssue struct {
	Field   string
	Message string
}

// ValidateCharacterInput defines the request for validating a sheet
type ValidateCharacterInput struct {
	Character *caos.Character
	// AtCreation tightens the attribute range to the creation cap (0-3).
	AtCreation bool
	// AllowEpic permits levels 16-30.
	AllowEpic bool
}

// ValidateCharacterOutput defines the response for validating a sheet
type ValidateCharacterOutput struct {
	Valid    bool
	Issues   []ValidationIssue
	Warnings []string
}

// RollResourceDieInput defines the request for rolling a resource die
type RollResourceDieInput struct {
	Die caos.ResourceDie
}

// RollResourceDieOutput defines the response for rolling a resource die
type RollResourceDieOutput struct {
	Rolled int32
	// Die is the resource die after the roll, stepped down when depleted.
	Die       caos.ResourceDie
	Depleted  bool
	Exhausted bool
}
