package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tabuleirodocaos/sheet-api/internal/entities/caos"
	"github.com/tabuleirodocaos/sheet-api/internal/rules"
)

func TestIsValidAttributeValue(t *testing.T) {
	testCases := []struct {
		name       string
		value      int32
		atCreation bool
		expected   bool
	}{
		{"zero is always valid", 0, true, true},
		{"creation cap is 3", 3, true, true},
		{"4 too high at creation", 4, true, false},
		{"4 fine after creation", 4, false, true},
		{"5 is the hard cap", 5, false, true},
		{"6 never valid", 6, false, false},
		{"negative never valid", -1, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, rules.IsValidAttributeValue(tc.value, tc.atCreation))
		})
	}
}

func TestIsValidCharacterLevel(t *testing.T) {
	testCases := []struct {
		name      string
		level     int32
		allowEpic bool
		expected  bool
	}{
		{"zero valid", 0, false, true},
		{"15 valid without epic", 15, false, true},
		{"16 needs epic", 16, false, false},
		{"16 valid with epic", 16, true, true},
		{"30 is the epic cap", 30, true, true},
		{"31 never valid", 31, true, false},
		{"negative never valid", -1, true, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, rules.IsValidCharacterLevel(tc.level, tc.allowEpic))
		})
	}
}

func TestIsValidClassLevels(t *testing.T) {
	assert.True(t, rules.IsValidClassLevels(nil, 5))
	assert.True(t, rules.IsValidClassLevels([]int32{2, 3}, 5))
	assert.True(t, rules.IsValidClassLevels([]int32{1}, 5))
	assert.False(t, rules.IsValidClassLevels([]int32{3, 4}, 5))
	assert.False(t, rules.IsValidClassLevels([]int32{-1, 6}, 5))
}

func TestIsValidClassCount(t *testing.T) {
	assert.True(t, rules.IsValidClassCount(0))
	assert.True(t, rules.IsValidClassCount(3))
	assert.False(t, rules.IsValidClassCount(4))
	assert.False(t, rules.IsValidClassCount(-1))
}

func TestClassesUnlocked(t *testing.T) {
	assert.False(t, rules.ClassesUnlocked(2))
	assert.True(t, rules.ClassesUnlocked(3))
	assert.True(t, rules.ClassesUnlocked(15))
}

func TestArchetypeLevelsMatch(t *testing.T) {
	t.Run("no archetypes is consistent", func(t *testing.T) {
		assert.True(t, rules.ArchetypeLevelsMatch(nil, 5))
	})

	t.Run("sum must equal the character level", func(t *testing.T) {
		archetypes := []caos.ArchetypeAssignment{
			{Archetype: caos.ArchetypeCombatente, Level: 7},
			{Archetype: caos.ArchetypeAcolito, Level: 3},
		}
		assert.True(t, rules.ArchetypeLevelsMatch(archetypes, 10))
		assert.False(t, rules.ArchetypeLevelsMatch(archetypes, 9))
		assert.False(t, rules.ArchetypeLevelsMatch(archetypes, 11))
	})

	t.Run("zero level entries are invalid", func(t *testing.T) {
		archetypes := []caos.ArchetypeAssignment{
			{Archetype: caos.ArchetypeLadino, Level: 0},
			{Archetype: caos.ArchetypeNatural, Level: 5},
		}
		assert.False(t, rules.ArchetypeLevelsMatch(archetypes, 5))
	})
}

func TestProficiencyExcess(t *testing.T) {
	// mente 2 grants 5 slots
	assert.Equal(t, int32(0), rules.ProficiencyExcess(5, 2))
	assert.Equal(t, int32(0), rules.ProficiencyExcess(3, 2))
	// mente dropped to 1: 5 proficiencies over 4 slots
	assert.Equal(t, int32(1), rules.ProficiencyExcess(5, 1))
	assert.Equal(t, int32(2), rules.ProficiencyExcess(5, 0))
}

func TestLanguageExcess(t *testing.T) {
	// mente 3 grants 2 additional languages
	assert.Equal(t, int32(0), rules.LanguageExcess(2, 3))
	assert.Equal(t, int32(1), rules.LanguageExcess(3, 3))
	assert.Equal(t, int32(2), rules.LanguageExcess(2, 0))
}

func TestCanAfford(t *testing.T) {
	purse := caos.Denomination{Cobre: 50, Ouro: 10}
	assert.True(t, rules.CanAfford(purse, 1050))
	assert.True(t, rules.CanAfford(purse, 0))
	assert.False(t, rules.CanAfford(purse, 1051))
	assert.False(t, rules.CanAfford(purse, -1))
}
