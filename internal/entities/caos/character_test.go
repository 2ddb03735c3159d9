package caos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabuleirodocaos/sheet-api/internal/entities/caos"
)

func TestNewCharacter(t *testing.T) {
	attrs := caos.Attributes{Agilidade: 2, Corpo: 3, Mente: 1}
	c := caos.NewCharacter("char_123", "Abobrinha", "player_1", attrs, 1700000000)

	assert.Equal(t, "char_123", c.ID)
	assert.Equal(t, "Abobrinha", c.Name)
	assert.Equal(t, "player_1", c.PlayerID)
	assert.Equal(t, caos.CurrentSchemaVersion, c.SchemaVersion)
	assert.Equal(t, int32(1), c.Level)
	assert.Equal(t, attrs, c.Attributes)
	assert.Equal(t, int64(1700000000), c.CreatedAt)
	assert.Equal(t, int64(1700000000), c.UpdatedAt)

	// Every fixed skill present at leigo with its key attribute
	require.Len(t, c.Skills, len(caos.AllSkills))
	for _, s := range c.Skills {
		assert.Equal(t, caos.GradeLeigo, s.Grade)
		assert.Equal(t, caos.SkillKeyAttributes[s.Skill], s.KeyAttribute)
	}

	assert.Empty(t, c.Archetypes)
	assert.Equal(t, caos.Purse{}, c.Purse)
	assert.Zero(t, c.Guard.Max)
	assert.Zero(t, c.PowerPoints.Max)
}

func TestAttributesGetSet(t *testing.T) {
	var attrs caos.Attributes
	for i, attr := range caos.AllAttributes {
		attrs.Set(attr, int32(i+1))
	}
	for i, attr := range caos.AllAttributes {
		assert.Equal(t, int32(i+1), attrs.Get(attr), "attr=%s", attr)
	}

	assert.Equal(t, int32(0), attrs.Get(caos.Attribute("ATTRIBUTE_UNKNOWN")))
}

func TestPurseAt(t *testing.T) {
	p := caos.Purse{
		Physical: caos.Denomination{Cobre: 10},
		Bank:     caos.Denomination{Ouro: 5},
	}

	assert.Equal(t, p.Physical, p.At(caos.PurseLocationPhysical))
	assert.Equal(t, p.Bank, p.At(caos.PurseLocationBank))

	p.SetAt(caos.PurseLocationBank, caos.Denomination{Platina: 1})
	assert.Equal(t, int32(1), p.Bank.Platina)
	assert.Equal(t, int32(10), p.Physical.Cobre)
}

func TestProficientSkillCount(t *testing.T) {
	c := caos.NewCharacter("char_1", "Teste", "player_1", caos.Attributes{}, 0)
	assert.Equal(t, int32(0), c.ProficientSkillCount())

	c.SkillEntryFor(caos.SkillLuta).Grade = caos.GradeAdepto
	c.SkillEntryFor(caos.SkillFurtividade).Grade = caos.GradeVersado
	assert.Equal(t, int32(2), c.ProficientSkillCount())

	c.SkillEntryFor(caos.SkillArcanismo).Grade = "GRADE_DESCONHECIDO"
	assert.Equal(t, int32(2), c.ProficientSkillCount())
}

func TestGradeRank(t *testing.T) {
	ladder := []caos.ProficiencyGrade{
		caos.GradeLeigo, caos.GradeAdepto, caos.GradeVersado, caos.GradeMestre,
	}
	for i := 1; i < len(ladder); i++ {
		assert.Greater(t, caos.GradeRank(ladder[i]), caos.GradeRank(ladder[i-1]))
	}

	assert.Equal(t, int32(0), caos.GradeRank(""))
	assert.Equal(t, int32(0), caos.GradeRank("GRADE_DESCONHECIDO"))
}

func TestSkillEntryFor(t *testing.T) {
	c := caos.NewCharacter("char_1", "Teste", "player_1", caos.Attributes{}, 0)

	entry := c.SkillEntryFor(caos.SkillArcanismo)
	require.NotNil(t, entry)
	assert.Equal(t, caos.SkillArcanismo, entry.Skill)

	assert.Nil(t, c.SkillEntryFor(caos.Skill("SKILL_NOPE")))
}

func TestCharacterClone(t *testing.T) {
	d := caos.Durability{Current: 6, Max: 8, State: caos.DurabilityIntact}
	original := caos.NewCharacter("char_1", "Teste", "player_1", caos.Attributes{Mente: 2}, 100)
	original.Archetypes = []caos.ArchetypeAssignment{{Archetype: caos.ArchetypeLadino, Level: 1}}
	original.Languages = []string{"comum"}
	original.Inventory = []caos.InventoryItem{
		{ID: "item_1", Name: "Espada", Quantity: 1, Slots: 2, Durability: &d},
	}
	original.Skills[0].Modifiers = []caos.SkillModifier{{Source: "bencao", Value: 1}}

	clone := original.Clone()
	require.NotSame(t, original, clone)
	assert.Equal(t, original, clone)

	// Mutating the clone must not touch the original
	clone.Archetypes[0].Level = 5
	clone.Languages[0] = "elfico"
	clone.Inventory[0].Durability.State = caos.DurabilityBroken
	clone.Skills[0].Modifiers[0].Value = -2

	assert.Equal(t, int32(1), original.Archetypes[0].Level)
	assert.Equal(t, "comum", original.Languages[0])
	assert.Equal(t, caos.DurabilityIntact, original.Inventory[0].Durability.State)
	assert.Equal(t, int32(1), original.Skills[0].Modifiers[0].Value)
}

func TestCloneNil(t *testing.T) {
	var c *caos.Character
	assert.Nil(t, c.Clone())
}

func TestFindItem(t *testing.T) {
	c := caos.NewCharacter("char_1", "Teste", "player_1", caos.Attributes{}, 0)
	c.Inventory = []caos.InventoryItem{{ID: "item_1", Name: "Tocha"}}

	item, found := c.FindItem("item_1")
	assert.True(t, found)
	assert.Equal(t, "Tocha", item.Name)

	_, found = c.FindItem("item_2")
	assert.False(t, found)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Agilidade", caos.Label(string(caos.AttributeAgilidade)))
	assert.Equal(t, "Combatente", caos.Label(string(caos.ArchetypeCombatente)))

	// Unknown IDs fall back to a capitalized tail
	assert.Equal(t, "Xyz", caos.Label("SOMETHING_XYZ"))
	assert.Equal(t, "", caos.Label(""))
}
