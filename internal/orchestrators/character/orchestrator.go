// Package character implements the character sheet orchestrator
package character

import (
	"context"
	"log/slog"

	"github.com/tabuleirodocaos/sheet-api/internal/engine"
	"github.com/tabuleirodocaos/sheet-api/internal/entities/caos"
	"github.com/tabuleirodocaos/sheet-api/internal/errors"
	"github.com/tabuleirodocaos/sheet-api/internal/pkg/clock"
	"github.com/tabuleirodocaos/sheet-api/internal/pkg/idgen"
	characterrepo "github.com/tabuleirodocaos/sheet-api/internal/repositories/character"
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	Engine        engine.Engine
	IDGenerator   idgen.Generator
	Clock         clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements the Service interface
type Orchestrator struct {
	characterRepo characterrepo.Repository
	engine        engine.Engine
	idGen         idgen.Generator
	clock         clock.Clock
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		engine:        cfg.Engine,
		idGen:         cfg.IDGenerator,
		clock:         c,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ Service = (*Orchestrator)(nil)

// CreateCharacter builds a level-1 character with the rulebook defaults and
// persists it with its combat pools filled from the starting attributes.
func (o *Orchestrator) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateRequired("playerID", input.PlayerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	validation, err := o.engine.ValidateCharacter(ctx, &engine.ValidateCharacterInput{
		Character: &caos.Character{Level: 1, Attributes: input.Attributes},
		// Creation caps attributes at 3
		AtCreation: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate starting attributes")
	}
	if !validation.Valid {
		vb := errors.NewValidationBuilder()
		for _, issue := range validation.Issues {
			vb.Field(issue.Field, issue.Message)
		}
		return nil, vb.Build()
	}

	char := caos.NewCharacter(
		o.idGen.Generate(),
		input.Name,
		input.PlayerID,
		input.Attributes,
		o.clock.Now().Unix(),
	)

	// Fill pools at their maxima before the first save
	recalc, err := o.engine.RecalculateCharacter(ctx, &engine.RecalculateCharacterInput{Character: char})
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate starting stats")
	}
	char = recalc.Character
	char.Guard.Current = char.Guard.Max
	char.Vitality.Current = char.Vitality.Max
	char.PowerPoints.Current = char.PowerPoints.Max

	created, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: char})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	slog.Info("character created",
		"character_id", created.Character.ID,
		"player_id", created.Character.PlayerID)

	return &CreateCharacterOutput{
		Character: created.Character,
		Stats:     recalc.Stats,
		Warnings:  recalc.Warnings,
	}, nil
}

// GetCharacter loads a character and its derived stats.
func (o *Orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	stats, err := o.engine.CalculateStats(ctx, &engine.CalculateStatsInput{Character: char})
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate stats")
	}

	validation, err := o.engine.ValidateCharacter(ctx, &engine.ValidateCharacterInput{
		Character: char,
		AllowEpic: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate character")
	}

	return &GetCharacterOutput{
		Character: char,
		Stats:     stats.Stats,
		Warnings:  validation.Warnings,
	}, nil
}

// ListCharacters lists a player's characters.
func (o *Orchestrator) ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("playerID is required")
	}

	listed, err := o.characterRepo.ListByPlayerID(ctx, characterrepo.ListByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list characters")
	}

	return &ListCharactersOutput{Characters: listed.Characters}, nil
}

// DeleteCharacter removes a character entirely. Characters are never
// partially deleted.
func (o *Orchestrator) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.ID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	slog.Info("character deleted", "character_id", input.ID)

	return &DeleteCharacterOutput{}, nil
}

// UpdateName renames a character.
func (o *Orchestrator) UpdateName(ctx context.Context, input *UpdateNameInput) (*UpdateNameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	char, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	updated := char.Clone()
	updated.Name = input.Name

	saved, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: updated})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &UpdateNameOutput{Character: saved.Character}, nil
}

// UpdateAttributes replaces the base attributes and recomputes everything
// derived from them. Pool currents shift by the delta of their maxima and
// clamp; already-acquired proficiencies and languages above the new limits
// stay on the sheet and come back as warnings.
func (o *Orchestrator) UpdateAttributes(ctx context.Context, input *UpdateAttributesInput) (*UpdateAttributesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	updated := char.Clone()
	updated.Attributes = input.Attributes

	recalc, err := o.engine.RecalculateCharacter(ctx, &engine.RecalculateCharacterInput{Character: updated})
	if err != nil {
		return nil, errors.Wrap(err, "failed to recalculate stats")
	}

	saved, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: recalc.Character})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	for _, w := range recalc.Warnings {
		slog.Warn("attribute change left sheet over a limit",
			"character_id", input.ID,
			"warning", w)
	}

	return &UpdateAttributesOutput{
		Character: saved.Character,
		Stats:     recalc.Stats,
		Warnings:  recalc.Warnings,
	}, nil
}

// UpdateArchetypes reassigns archetype levels. The invested levels must sum
// to the character level; Guard and Power Point maxima follow the new
// assignment with the usual delta-then-clamp on currents.
func (o *Orchestrator) UpdateArchetypes(ctx context.Context, input *UpdateArchetypesInput) (*UpdateArchetypesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	updated := char.Clone()
	updated.Archetypes = input.Archetypes

	validation, err := o.engine.ValidateCharacter(ctx, &engine.ValidateCharacterInput{
		Character: updated,
		AllowEpic: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate archetypes")
	}
	for _, issue := range validation.Issues {
		if issue.Field == "archetypes" {
			return nil, errors.InvalidArgument(issue.Message)
		}
	}

	recalc, err := o.engine.RecalculateCharacter(ctx, &engine.RecalculateCharacterInput{Character: updated})
	if err != nil {
		return nil, errors.Wrap(err, "failed to recalculate stats")
	}

	saved, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: recalc.Character})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &UpdateArchetypesOutput{
		Character: saved.Character,
		Stats:     recalc.Stats,
		Warnings:  recalc.Warnings,
	}, nil
}

// UpdateClasses reassigns classes. Classes unlock at character level 3, at
// most three may be held, and their levels may not sum past the character
// level.
func (o *Orchestrator) UpdateClasses(ctx context.Context, input *UpdateClassesInput) (*UpdateClassesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	updated := char.Clone()
	updated.Classes = input.Classes

	validation, err := o.engine.ValidateCharacter(ctx, &engine.ValidateCharacterInput{
		Character: updated,
		AllowEpic: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate classes")
	}
	for _, issue := range validation.Issues {
		if issue.Field == "classes" {
			return nil, errors.InvalidArgument(issue.Message)
		}
	}

	recalc, err := o.engine.RecalculateCharacter(ctx, &engine.RecalculateCharacterInput{Character: updated})
	if err != nil {
		return nil, errors.Wrap(err, "failed to recalculate stats")
	}

	saved, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: recalc.Character})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &UpdateClassesOutput{
		Character: saved.Character,
		Stats:     recalc.Stats,
		Warnings:  recalc.Warnings,
	}, nil
}

// UpdateSkills applies proficiency grade changes. Raising more skills above
// leigo than Mente allows is flagged, never refused.
func (o *Orchestrator) UpdateSkills(ctx context.Context, input *UpdateSkillsInput) (*UpdateSkillsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	updated := char.Clone()
	for _, change := range input.Changes {
		entry := updated.SkillEntryFor(change.Skill)
		if entry == nil {
			return nil, errors.InvalidArgumentf("unknown skill %s", change.Skill)
		}
		if change.Grade != "" {
			entry.Grade = change.Grade
		}
		if change.Signature != nil {
			entry.Signature = *change.Signature
		}
	}

	recalc, err := o.engine.RecalculateCharacter(ctx, &engine.RecalculateCharacterInput{Character: updated})
	if err != nil {
		return nil, errors.Wrap(err, "failed to recalculate stats")
	}

	saved, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: recalc.Character})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &UpdateSkillsOutput{
		Character: saved.Character,
		Stats:     recalc.Stats,
		Warnings:  recalc.Warnings,
	}, nil
}

// AddLanguage adds a known language. Exceeding the Mente slots is flagged,
// never refused.
func (o *Orchestrator) AddLanguage(ctx context.Context, input *AddLanguageInput) (*AddLanguageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("language", input.Language, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	char, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	for _, l := range char.Languages {
		if l == input.Language {
			return nil, errors.AlreadyExistsf("language %s already known", input.Language)
		}
	}

	updated := char.Clone()
	updated.Languages = append(updated.Languages, input.Language)

	recalc, err := o.engine.RecalculateCharacter(ctx, &engine.RecalculateCharacterInput{Character: updated})
	if err != nil {
		return nil, errors.Wrap(err, "failed to recalculate stats")
	}

	saved, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: recalc.Character})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &AddLanguageOutput{
		Character: saved.Character,
		Warnings:  recalc.Warnings,
	}, nil
}

// GainExperience awards XP and applies any level-ups it pays for. Each
// level-up consumes the XP-to-next-level of the level being left.
func (o *Orchestrator) GainExperience(ctx context.Context, input *GainExperienceInput) (*GainExperienceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Amount < 0 {
		return nil, errors.InvalidArgument("XP amount cannot be negative")
	}

	char, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	updated := char.Clone()
	updated.ExperiencePoints += input.Amount

	var levelsGained int32
	for updated.ExperiencePoints >= o.engine.XPForNextLevel(updated.Level) {
		updated.ExperiencePoints -= o.engine.XPForNextLevel(updated.Level)
		updated.Level++
		levelsGained++
	}

	recalc, err := o.engine.RecalculateCharacter(ctx, &engine.RecalculateCharacterInput{Character: updated})
	if err != nil {
		return nil, errors.Wrap(err, "failed to recalculate stats")
	}

	saved, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: recalc.Character})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	if levelsGained > 0 {
		slog.Info("character leveled up",
			"character_id", input.ID,
			"levels_gained", levelsGained,
			"new_level", saved.Character.Level)
	}

	return &GainExperienceOutput{
		Character:    saved.Character,
		Stats:        recalc.Stats,
		LevelsGained: levelsGained,
		Warnings:     recalc.Warnings,
	}, nil
}

// loadCharacter fetches a character by ID, translating input errors.
func (o *Orchestrator) loadCharacter(ctx context.Context, id string) (*caos.Character, error) {
	if id == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	got, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", id)
	}
	return got.Character, nil
}
