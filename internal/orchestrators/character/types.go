package character

import (
	"context"

	"github.com/tabuleirodocaos/sheet-api/internal/engine"
	"github.com/tabuleirodocaos/sheet-api/internal/entities/caos"
)

// Service defines the character sheet operations
type Service interface {
	// Lifecycle
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// Sheet updates. Every update recalculates the derived stats and
	// carries back the rulebook warnings; warnings never block a save.
	UpdateName(ctx context.Context, input *UpdateNameInput) (*UpdateNameOutput, error)
	UpdateAttributes(ctx context.Context, input *UpdateAttributesInput) (*UpdateAttributesOutput, error)
	UpdateArchetypes(ctx context.Context, input *UpdateArchetypesInput) (*UpdateArchetypesOutput, error)
	UpdateClasses(ctx context.Context, input *UpdateClassesInput) (*UpdateClassesOutput, error)
	UpdateSkills(ctx context.Context, input *UpdateSkillsInput) (*UpdateSkillsOutput, error)
	AddLanguage(ctx context.Context, input *AddLanguageInput) (*AddLanguageOutput, error)

	// Progression
	GainExperience(ctx context.Context, input *GainExperienceInput) (*GainExperienceOutput, error)

	// Currency. Transactions are all-or-nothing: insufficiency is a
	// FailedPrecondition error and nothing on the sheet changes.
	MakePayment(ctx context.Context, input *MakePaymentInput) (*MakePaymentOutput, error)
	TransferCurrency(ctx context.Context, input *TransferCurrencyInput) (*TransferCurrencyOutput, error)
	ExchangeCurrency(ctx context.Context, input *ExchangeCurrencyInput) (*ExchangeCurrencyOutput, error)

	// Inventory
	AddInventoryItem(ctx context.Context, input *AddInventoryItemInput) (*AddInventoryItemOutput, error)
	RemoveInventoryItem(ctx context.Context, input *RemoveInventoryItemInput) (*RemoveInventoryItemOutput, error)
	DamageItem(ctx context.Context, input *DamageItemInput) (*DamageItemOutput, error)
	RepairItem(ctx context.Context, input *RepairItemInput) (*RepairItemOutput, error)
	RollItemResource(ctx context.Context, input *RollItemResourceInput) (*RollItemResourceOutput, error)
}

// CreateCharacterInput defines the request for creating a character
type CreateCharacterInput struct {
	Name       string
	PlayerID   string
	Attributes caos.Attributes
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Character *caos.Character
	Stats     *engine.CharacterStats
	Warnings  []string
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	ID string
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Character *caos.Character
	Stats     *engine.CharacterStats
	Warnings  []string
}

// ListCharactersInput defines the request for listing a player's characters
type ListCharactersInput struct {
	PlayerID string
}

// ListCharactersOutput defines the response for listing a player's characters
type ListCharactersOutput struct {
	Characters []*caos.Character
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	ID string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct {
}

// UpdateNameInput defines the request for renaming a character
type UpdateNameInput struct {
	ID   string
	Name string
}

// UpdateNameOutput defines the response for renaming a character
type UpdateNameOutput struct {
	Character *caos.Character
}

// UpdateAttributesInput defines the request for changing base attributes
type UpdateAttributesInput struct {
	ID         string
	Attributes caos.Attributes
}

// UpdateAttributesOutput defines the response for changing base attributes.
// Warnings flag choices that now exceed their limits; nothing is removed.
type UpdateAttributesOutput struct {
	Character *caos.Character
	Stats     *engine.CharacterStats
	Warnings  []string
}

// UpdateArchetypesInput defines the request for reassigning archetype levels
type UpdateArchetypesInput struct {
	ID         string
	Archetypes []caos.ArchetypeAssignment
}

// UpdateArchetypesOutput defines the response for reassigning archetype levels
type UpdateArchetypesOutput struct {
	Character *caos.Character
	Stats     *engine.CharacterStats
	Warnings  []string
}

// UpdateClassesInput defines the request for reassigning classes
type UpdateClassesInput struct {
	ID      string
	Classes []caos.ClassAssignment
}

// UpdateClassesOutput defines the response for reassigning classes
type UpdateClassesOutput struct {
	Character *caos.Character
	Stats     *engine.CharacterStats
	Warnings  []string
}

// SkillGradeChange sets one skill to a proficiency grade.
type SkillGradeChange struct {
	Skill     caos.Skill
	Grade     caos.ProficiencyGrade
	Signature *bool
}

// UpdateSkillsInput defines the request for changing skill proficiencies
type UpdateSkillsInput struct {
	ID      string
	Changes []SkillGradeChange
}

// UpdateSkillsOutput defines the response for changing skill proficiencies
type UpdateSkillsOutput struct {
	Character *caos.Character
	Stats     *engine.CharacterStats
	Warnings  []string
}

// AddLanguageInput defines the request for learning a language
type AddLanguageInput struct {
	ID       string
	Language string
}

// AddLanguageOutput defines the response for learning a language
type AddLanguageOutput struct {
	Character *caos.Character
	Warnings  []string
}

// GainExperienceInput defines the request for awarding XP
type GainExperienceInput struct {
	ID     string
	Amount int32
}

// GainExperienceOutput defines the response for awarding XP
type GainExperienceOutput struct {
	Character    *caos.Character
	Stats        *engine.CharacterStats
	LevelsGained int32
	Warnings     []string
}

// MakePaymentInput defines the request for paying a copper cost
type MakePaymentInput struct {
	ID         string
	CostCopper int64
	From       caos.PurseLocation
}

// MakePaymentOutput defines the response for paying a copper cost
type MakePaymentOutput struct {
	Character *caos.Character
	Remaining caos.Denomination
}

// TransferCurrencyInput defines the request for moving coins between the
// physical purse and the bank
type TransferCurrencyInput struct {
	ID           string
	AmountCopper int64
	From         caos.PurseLocation
	To           caos.PurseLocation
}

// TransferCurrencyOutput defines the response for a purse transfer
type TransferCurrencyOutput struct {
	Character *caos.Character
}

// ExchangeCurrencyInput defines the request for swapping denominations
// inside one purse
type ExchangeCurrencyInput struct {
	ID       string
	Location caos.PurseLocation
	Amount   int64
	FromUnit caos.CurrencyUnit
	ToUnit   caos.CurrencyUnit
}

// ExchangeCurrencyOutput defines the response for a denomination swap
type ExchangeCurrencyOutput struct {
	Character *caos.Character
	Purse     caos.Denomination
}

// AddInventoryItemInput defines the request for adding an item
type AddInventoryItemInput struct {
	ID   string
	Item caos.InventoryItem
}

// AddInventoryItemOutput defines the response for adding an item.
// Warnings flag a carry capacity overrun; the item is added regardless.
type AddInventoryItemOutput struct {
	Character *caos.Character
	Warnings  []string
}

// RemoveInventoryItemInput defines the request for removing an item
type RemoveInventoryItemInput struct {
	ID     string
	ItemID string
}

// RemoveInventoryItemOutput defines the response for removing an item
type RemoveInventoryItemOutput struct {
	Character *caos.Character
}

// DamageItemInput defines the request for applying wear to an item
type DamageItemInput struct {
	ID     string
	ItemID string
}

// DamageItemOutput defines the response for applying wear to an item
type DamageItemOutput struct {
	Character  *caos.Character
	Durability caos.Durability
}

// RepairItemInput defines the request for repairing an item
type RepairItemInput struct {
	ID     string
	ItemID string
}

// RepairItemOutput defines the response for repairing an item
type RepairItemOutput struct {
	Character  *caos.Character
	Durability caos.Durability
}

// RollItemResourceInput defines the request for rolling an item's resource die
type RollItemResourceInput struct {
	ID     string
	ItemID string
}

// RollItemResourceOutput defines the response for rolling a resource die
type RollItemResourceOutput struct {
	Character *caos.Character
	Rolled    int32
	Die       caos.ResourceDie
	Depleted  bool
	Exhausted bool
}
