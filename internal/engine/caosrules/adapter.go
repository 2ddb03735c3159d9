// Package caosrules implements the engine over the Tabuleiro do Caos rulebook
package caosrules

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/tabuleirodocaos/sheet-api/internal/engine"
	"github.com/tabuleirodocaos/sheet-api/internal/entities/caos"
	"github.com/tabuleirodocaos/sheet-api/internal/errors"
	"github.com/tabuleirodocaos/sheet-api/internal/rules"
)

// DepletionThreshold is the highest resource-die result that still depletes
// the die a step.
const DepletionThreshold = 2

// Adapter implements engine.Engine using the rules package.
type Adapter struct {
	diceRoller dice.Roller
}

// AdapterConfig holds the adapter dependencies.
type AdapterConfig struct {
	DiceRoller dice.Roller
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller cannot be nil")
	}
	return nil
}

// NewAdapter creates a new rules adapter.
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Adapter{diceRoller: cfg.DiceRoller}, nil
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// CalculateStats computes every derived stat of a sheet.
func (a *Adapter) CalculateStats(
	_ context.Context,
	input *engine.CalculateStatsInput,
) (*engine.CalculateStatsOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	return &engine.CalculateStatsOutput{
		Stats: a.calculateStats(input.Character),
	}, nil
}

func (a *Adapter) calculateStats(c *caos.Character) *engine.CharacterStats {
	guardMax := rules.TotalGuard(c.Archetypes, c.Attributes, c.GuardModifier)

	return &engine.CharacterStats{
		GuardMax:              guardMax,
		VitalityMax:           rules.TotalVitality(guardMax),
		PowerPointsMax:        rules.TotalPowerPoints(c.Archetypes, c.Attributes.Essencia, c.PowerPointsModifier),
		SkillProficiencySlots: rules.SkillProficiencySlots(c.Attributes.Mente),
		AdditionalLanguages:   rules.AdditionalLanguages(c.Attributes.Mente),
		SignatureAbilityBonus: rules.SignatureAbilityBonus(c.Level),
		CarryCapacitySlots:    rules.CarryCapacity(c.Attributes.Corpo),
		CoinWeight:            rules.CoinWeight(c.Purse.Physical),
		XPForNextLevel:        rules.XPForNextLevel(c.Level),
		TotalOuro:             rules.TotalOuro(c.Purse.Physical),
		TotalPlatina:          rules.TotalPlatina(c.Purse.Physical),
	}
}

// RecalculateCharacter recomputes pool maxima on a copy of the sheet after
// a base-value change. Each pool's current shifts by exactly the delta of
// its maximum and then clamps into [0, newMax]; it is never reset to the
// new maximum or rescaled. Acquired proficiencies and languages that now
// exceed their slot counts stay on the sheet and come back as warnings.
func (a *Adapter) RecalculateCharacter(
	_ context.Context,
	input *engine.RecalculateCharacterInput,
) (*engine.RecalculateCharacterOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	c := input.Character.Clone()
	stats := a.calculateStats(c)

	c.Guard = shiftPool(c.Guard, stats.GuardMax)
	c.Vitality = shiftPool(c.Vitality, stats.VitalityMax)
	c.PowerPoints = shiftPool(c.PowerPoints, stats.PowerPointsMax)

	var warnings []string
	if excess := rules.ProficiencyExcess(c.ProficientSkillCount(), c.Attributes.Mente); excess > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"acquired skill proficiencies (%d) exceed the %d slots granted by Mente: %d over the limit",
			c.ProficientSkillCount(), stats.SkillProficiencySlots, excess))
	}
	if excess := rules.LanguageExcess(int32(len(c.Languages)), c.Attributes.Mente); excess > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"known additional languages (%d) exceed the %d slots granted by Mente: %d over the limit",
			len(c.Languages), stats.AdditionalLanguages, excess))
	}

	return &engine.RecalculateCharacterOutput{
		Character: c,
		Stats:     stats,
		Warnings:  warnings,
	}, nil
}

// shiftPool moves a pool to its new maximum, shifting the current value by
// the same delta and clamping into [0, newMax]. Temporary points are
// untouched.
func shiftPool(p caos.Pool, newMax int32) caos.Pool {
	delta := newMax - p.Max
	p.Current += delta
	p.Max = newMax
	if p.Current < 0 {
		p.Current = 0
	}
	if p.Current > newMax {
		p.Current = newMax
	}
	return p
}

// ValidateCharacter runs the rulebook consistency checks. Range and
// cross-field violations come back as issues; over-limit proficiencies and
// languages are warnings only, matching the flag-don't-strip policy.
func (a *Adapter) ValidateCharacter(
	_ context.Context,
	input *engine.ValidateCharacterInput,
) (*engine.ValidateCharacterOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	c := input.Character

	var issues []engine.ValidationIssue

	for _, attr := range caos.AllAttributes {
		if !rules.IsValidAttributeValue(c.Attributes.Get(attr), input.AtCreation) {
			issues = append(issues, engine.ValidationIssue{
				Field:   caos.Label(string(attr)),
				Message: fmt.Sprintf("value %d is out of range", c.Attributes.Get(attr)),
			})
		}
	}

	if !rules.IsValidCharacterLevel(c.Level, input.AllowEpic) {
		issues = append(issues, engine.ValidationIssue{
			Field:   "level",
			Message: fmt.Sprintf("level %d is out of range", c.Level),
		})
	}

	if !rules.ArchetypeLevelsMatch(c.Archetypes, c.Level) {
		issues = append(issues, engine.ValidationIssue{
			Field: "archetypes",
			Message: fmt.Sprintf("archetype levels sum to %d, character level is %d",
				c.TotalArchetypeLevels(), c.Level),
		})
	}

	if !rules.IsValidClassCount(len(c.Classes)) {
		issues = append(issues, engine.ValidationIssue{
			Field:   "classes",
			Message: fmt.Sprintf("%d classes held, at most %d allowed", len(c.Classes), caos.MaxClasses),
		})
	}
	if len(c.Classes) > 0 && !rules.ClassesUnlocked(c.Level) {
		issues = append(issues, engine.ValidationIssue{
			Field:   "classes",
			Message: fmt.Sprintf("classes unlock at level %d", caos.ClassUnlockLevel),
		})
	}
	classLevels := make([]int32, 0, len(c.Classes))
	for _, cl := range c.Classes {
		classLevels = append(classLevels, cl.Level)
	}
	if !rules.IsValidClassLevels(classLevels, c.Level) {
		issues = append(issues, engine.ValidationIssue{
			Field:   "classes",
			Message: "class levels exceed the character level",
		})
	}

	var warnings []string
	if excess := rules.ProficiencyExcess(c.ProficientSkillCount(), c.Attributes.Mente); excess > 0 {
		warnings = append(warnings, fmt.Sprintf("skill proficiencies %d over the limit", excess))
	}
	if excess := rules.LanguageExcess(int32(len(c.Languages)), c.Attributes.Mente); excess > 0 {
		warnings = append(warnings, fmt.Sprintf("languages %d over the limit", excess))
	}

	return &engine.ValidateCharacterOutput{
		Valid:    len(issues) == 0,
		Issues:   issues,
		Warnings: warnings,
	}, nil
}

// RollResourceDie rolls the die's current step. Results at or below the
// depletion threshold step the die down; stepping below the smallest die
// exhausts the resource.
func (a *Adapter) RollResourceDie(
	_ context.Context,
	input *engine.RollResourceDieInput,
) (*engine.RollResourceDieOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if rules.StepIndex(input.Die.Current) < 0 {
		return nil, errors.InvalidArgumentf("d%d is not on the resource-die ladder", input.Die.Current)
	}

	rolled, err := a.diceRoller.Roll(int(input.Die.Current))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll d%d", input.Die.Current)
	}

	out := &engine.RollResourceDieOutput{
		Rolled: int32(rolled),
		Die:    input.Die,
	}
	if rolled <= DepletionThreshold {
		out.Depleted = true
		out.Die, out.Exhausted = rules.DepleteResource(input.Die)
	}
	return out, nil
}

// XPForNextLevel returns the XP needed to advance past the given level.
func (a *Adapter) XPForNextLevel(level int32) int32 {
	return rules.XPForNextLevel(level)
}

// SignatureAbilityBonus returns the signature-skill bonus at the given level.
func (a *Adapter) SignatureAbilityBonus(level int32) int32 {
	return rules.SignatureAbilityBonus(level)
}
