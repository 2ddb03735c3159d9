// Package engine defines the rules-calculation boundary of the sheet service
package engine

import (
	"context"
)

// Engine provides the Tabuleiro do Caos rules calculations. Implementations
// are pure aside from dice rolls: the same sheet always produces the same
// stats, and no call ever mutates its input.
type Engine interface {
	// CalculateStats computes every derived value of a sheet without
	// touching the sheet itself.
	CalculateStats(ctx context.Context, input *CalculateStatsInput) (*CalculateStatsOutput, error)

	// RecalculateCharacter applies a base-value change to a copy of the
	// sheet: pool maxima move to their new values, pool currents shift by
	// the same delta and clamp into [0, newMax], and any over-limit
	// proficiencies or languages are flagged as warnings, never removed.
	RecalculateCharacter(ctx context.Context, input *RecalculateCharacterInput) (*RecalculateCharacterOutput, error)

	// ValidateCharacter runs the rulebook consistency checks over a sheet.
	// Violations come back as non-blocking findings; the engine never
	// rejects or corrects a sheet.
	ValidateCharacter(ctx context.Context, input *ValidateCharacterInput) (*ValidateCharacterOutput, error)

	// RollResourceDie rolls a resource die and reports whether the roll
	// depletes it a step.
	RollResourceDie(ctx context.Context, input *RollResourceDieInput) (*RollResourceDieOutput, error)

	// Utility methods
	XPForNextLevel(level int32) int32
	SignatureAbilityBonus(level int32) int32
}
