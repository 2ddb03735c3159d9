package caos

import (
	"encoding/json"
	"fmt"
)

// v1 attribute block, kept only for migration. The 2nd-edition rulebook
// renamed the six attributes; stored v1 sheets still carry the old names.
type attributesV1 struct {
	Destreza     int32
	Vigor        int32
	Carisma      int32
	Inteligencia int32
	Alma         int32
	Percepcao    int32
}

type characterV1 struct {
	ID               string
	Name             string
	PlayerID         string
	SchemaVersion    int32
	Level            int32
	ExperiencePoints int32
	Attributes       attributesV1
	Archetypes       []ArchetypeAssignment
	Languages        []string
	Guard            Pool
	Vitality         Pool
	PowerPoints      Pool
	Purse            Purse
	Inventory        []InventoryItem
	CreatedAt        int64
	UpdatedAt        int64
}

type schemaProbe struct {
	SchemaVersion int32
}

// MigrateJSON decodes a stored character document, applying the one-shot
// v1 -> v2 migration when needed. Callers always receive a current-schema
// character; calculators never see v1 data.
func MigrateJSON(data []byte) (*Character, error) {
	var probe schemaProbe
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to probe schema version: %w", err)
	}

	if probe.SchemaVersion >= CurrentSchemaVersion {
		var c Character
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("failed to unmarshal character: %w", err)
		}
		return &c, nil
	}

	var old characterV1
	if err := json.Unmarshal(data, &old); err != nil {
		return nil, fmt.Errorf("failed to unmarshal v1 character: %w", err)
	}
	return migrateV1(&old), nil
}

// migrateV1 converts a v1 sheet to the current schema: the six attributes
// rename 1:1, and sheets predating the fixed skill table get the full
// leigo baseline.
func migrateV1(old *characterV1) *Character {
	c := &Character{
		ID:               old.ID,
		Name:             old.Name,
		PlayerID:         old.PlayerID,
		SchemaVersion:    CurrentSchemaVersion,
		Level:            old.Level,
		ExperiencePoints: old.ExperiencePoints,
		Attributes: Attributes{
			Agilidade:  old.Attributes.Destreza,
			Corpo:      old.Attributes.Vigor,
			Influencia: old.Attributes.Carisma,
			Mente:      old.Attributes.Inteligencia,
			Essencia:   old.Attributes.Alma,
			Instinto:   old.Attributes.Percepcao,
		},
		Archetypes:  old.Archetypes,
		Languages:   old.Languages,
		Guard:       old.Guard,
		Vitality:    old.Vitality,
		PowerPoints: old.PowerPoints,
		Purse:       old.Purse,
		Inventory:   old.Inventory,
		CreatedAt:   old.CreatedAt,
		UpdatedAt:   old.UpdatedAt,
	}

	c.Skills = make([]SkillEntry, 0, len(AllSkills))
	for _, s := range AllSkills {
		c.Skills = append(c.Skills, SkillEntry{
			Skill:        s,
			Grade:        GradeLeigo,
			KeyAttribute: SkillKeyAttributes[s],
		})
	}

	return c
}
