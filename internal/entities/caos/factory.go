package caos

// NewCharacter builds a level-1 character with the rulebook defaults: every
// fixed skill present at leigo, empty purse, no archetypes chosen yet.
// Combat pools are left at zero; the engine fills them in from the
// attributes once the sheet is first recalculated.
func NewCharacter(id, name, playerID string, attrs Attributes, now int64) *Character {
	skills := make([]SkillEntry, 0, len(AllSkills))
	for _, s := range AllSkills {
		skills = append(skills, SkillEntry{
			Skill:        s,
			Grade:        GradeLeigo,
			KeyAttribute: SkillKeyAttributes[s],
		})
	}

	return &Character{
		ID:            id,
		Name:          name,
		PlayerID:      playerID,
		SchemaVersion: CurrentSchemaVersion,
		Level:         1,
		Attributes:    attrs,
		Skills:        skills,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
