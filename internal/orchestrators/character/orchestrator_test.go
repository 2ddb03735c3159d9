package character_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/tabuleirodocaos/sheet-api/internal/engine/caosrules"
	"github.com/tabuleirodocaos/sheet-api/internal/entities/caos"
	"github.com/tabuleirodocaos/sheet-api/internal/errors"
	character "github.com/tabuleirodocaos/sheet-api/internal/orchestrators/character"
	"github.com/tabuleirodocaos/sheet-api/internal/pkg/idgen"
	characterrepo "github.com/tabuleirodocaos/sheet-api/internal/repositories/character"
	charactermock "github.com/tabuleirodocaos/sheet-api/internal/repositories/character/mock"
)

const (
	testCharID   = "char_1"
	testPlayerID = "player_1"
)

// fixedDiceRoller returns a fixed result for every roll.
type fixedDiceRoller struct {
	result int
}

func (r *fixedDiceRoller) Roll(_ int) (int, error)       { return r.result, nil }
func (r *fixedDiceRoller) RollN(_, _ int) ([]int, error) { return []int{r.result}, nil }

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *charactermock.MockRepository
	roller   *fixedDiceRoller
	orch     *character.Orchestrator
	ctx      context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = charactermock.NewMockRepository(s.ctrl)
	s.roller = &fixedDiceRoller{result: 5}

	eng, err := caosrules.NewAdapter(&caosrules.AdapterConfig{DiceRoller: s.roller})
	s.Require().NoError(err)

	orch, err := character.New(&character.Config{
		CharacterRepo: s.mockRepo,
		Engine:        eng,
		IDGenerator:   idgen.NewSequential("char"),
	})
	s.Require().NoError(err)
	s.orch = orch
	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// existingCharacter is a consistent level-10 sheet matching the repo fixture
// used across the update tests.
func (s *OrchestratorTestSuite) existingCharacter() *caos.Character {
	c := caos.NewCharacter(testCharID, "Abobrinha", testPlayerID, caos.Attributes{
		Agilidade:  2,
		Corpo:      4,
		Influencia: 1,
		Mente:      2,
		Essencia:   3,
		Instinto:   1,
	}, 1600000000)
	c.Level = 10
	c.Archetypes = []caos.ArchetypeAssignment{
		{Archetype: caos.ArchetypeCombatente, Level: 7},
		{Archetype: caos.ArchetypeAcolito, Level: 3},
	}
	c.Guard = caos.Pool{Current: 46, Max: 46}
	c.Vitality = caos.Pool{Current: 15, Max: 15}
	c.PowerPoints = caos.Pool{Current: 48, Max: 48}
	return c
}

func (s *OrchestratorTestSuite) expectGet(c *caos.Character) {
	s.mockRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{ID: c.ID}).
		Return(&characterrepo.GetOutput{Character: c}, nil)
}

func (s *OrchestratorTestSuite) expectUpdatePassthrough() {
	s.mockRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.UpdateInput) (*characterrepo.UpdateOutput, error) {
			return &characterrepo.UpdateOutput{Character: input.Character}, nil
		})
}

func (s *OrchestratorTestSuite) TestCreateCharacter() {
	s.Run("successful create fills the pools", func() {
		s.mockRepo.EXPECT().
			Create(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input characterrepo.CreateInput) (*characterrepo.CreateOutput, error) {
				return &characterrepo.CreateOutput{Character: input.Character}, nil
			})

		out, err := s.orch.CreateCharacter(s.ctx, &character.CreateCharacterInput{
			Name:       "Abobrinha",
			PlayerID:   testPlayerID,
			Attributes: caos.Attributes{Corpo: 3, Mente: 2, Essencia: 1},
		})
		s.Require().NoError(err)

		s.Equal("char_1", out.Character.ID)
		s.Equal(int32(1), out.Character.Level)
		// A fresh sheet starts at full pools: guard 15 (no archetype yet)
		s.Equal(caos.Pool{Current: 15, Max: 15}, out.Character.Guard)
		s.Equal(caos.Pool{Current: 5, Max: 5}, out.Character.Vitality)
		s.Equal(caos.Pool{Current: 2, Max: 2}, out.Character.PowerPoints)
		s.Len(out.Character.Skills, len(caos.AllSkills))
		s.Equal(int32(5), out.Stats.SkillProficiencySlots)
	})

	s.Run("missing name fails", func() {
		_, err := s.orch.CreateCharacter(s.ctx, &character.CreateCharacterInput{
			PlayerID: testPlayerID,
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("attribute above the creation cap fails", func() {
		_, err := s.orch.CreateCharacter(s.ctx, &character.CreateCharacterInput{
			Name:       "Abobrinha",
			PlayerID:   testPlayerID,
			Attributes: caos.Attributes{Corpo: 4},
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestGetCharacter() {
	s.Run("returns the sheet with derived stats", func() {
		s.expectGet(s.existingCharacter())

		out, err := s.orch.GetCharacter(s.ctx, &character.GetCharacterInput{ID: testCharID})
		s.Require().NoError(err)

		s.Equal(int32(46), out.Stats.GuardMax)
		s.Equal(int32(15), out.Stats.VitalityMax)
		s.Equal(int32(48), out.Stats.PowerPointsMax)
		s.Empty(out.Warnings)
	})

	s.Run("not found propagates", func() {
		s.mockRepo.EXPECT().
			Get(s.ctx, characterrepo.GetInput{ID: "char_missing"}).
			Return(nil, errors.NotFound("character with ID char_missing not found"))

		_, err := s.orch.GetCharacter(s.ctx, &character.GetCharacterInput{ID: "char_missing"})
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
	})

	s.Run("empty ID fails", func() {
		_, err := s.orch.GetCharacter(s.ctx, &character.GetCharacterInput{})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestUpdateAttributes() {
	s.Run("pool currents shift by the max delta", func() {
		existing := s.existingCharacter()
		existing.Guard = caos.Pool{Current: 30, Max: 46}
		s.expectGet(existing)
		s.expectUpdatePassthrough()

		// Corpo 4 -> 5: guard max 46 -> 53
		attrs := existing.Attributes
		attrs.Corpo = 5
		out, err := s.orch.UpdateAttributes(s.ctx, &character.UpdateAttributesInput{
			ID:         testCharID,
			Attributes: attrs,
		})
		s.Require().NoError(err)

		s.Equal(caos.Pool{Current: 37, Max: 53}, out.Character.Guard)
		// The repo fixture is untouched
		s.Equal(caos.Pool{Current: 30, Max: 46}, existing.Guard)
	})

	s.Run("lowering Mente flags excess without stripping", func() {
		existing := s.existingCharacter()
		// Five proficiencies against Mente 2's five slots
		for _, skill := range []caos.Skill{
			caos.SkillLuta, caos.SkillAtletismo, caos.SkillPercepcao,
			caos.SkillArcanismo, caos.SkillIntuicao,
		} {
			existing.SkillEntryFor(skill).Grade = caos.GradeAdepto
		}
		s.expectGet(existing)
		s.expectUpdatePassthrough()

		attrs := existing.Attributes
		attrs.Mente = 1
		out, err := s.orch.UpdateAttributes(s.ctx, &character.UpdateAttributesInput{
			ID:         testCharID,
			Attributes: attrs,
		})
		s.Require().NoError(err)

		s.Equal(int32(5), out.Character.ProficientSkillCount())
		s.Require().Len(out.Warnings, 1)
		s.Contains(out.Warnings[0], "1 over the limit")
	})
}

func (s *OrchestratorTestSuite) TestUpdateArchetypes() {
	s.Run("reassignment recalculates the pools", func() {
		existing := s.existingCharacter()
		s.expectGet(existing)
		s.expectUpdatePassthrough()

		out, err := s.orch.UpdateArchetypes(s.ctx, &character.UpdateArchetypesInput{
			ID: testCharID,
			Archetypes: []caos.ArchetypeAssignment{
				{Archetype: caos.ArchetypeFeiticeiro, Level: 10},
			},
		})
		s.Require().NoError(err)

		// Guard 15 + essencia(3) x 10 = 45, delta -1 on a full pool
		s.Equal(caos.Pool{Current: 45, Max: 45}, out.Character.Guard)
	})

	s.Run("levels not summing to the character level fail", func() {
		s.expectGet(s.existingCharacter())

		_, err := s.orch.UpdateArchetypes(s.ctx, &character.UpdateArchetypesInput{
			ID: testCharID,
			Archetypes: []caos.ArchetypeAssignment{
				{Archetype: caos.ArchetypeCombatente, Level: 4},
			},
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestUpdateClasses() {
	s.Run("valid classes save", func() {
		existing := s.existingCharacter()
		s.expectGet(existing)
		s.expectUpdatePassthrough()

		out, err := s.orch.UpdateClasses(s.ctx, &character.UpdateClassesInput{
			ID: testCharID,
			Classes: []caos.ClassAssignment{
				{Name: "Guardiao", Level: 5, Archetypes: []caos.Archetype{caos.ArchetypeCombatente}},
			},
		})
		s.Require().NoError(err)
		s.Len(out.Character.Classes, 1)
	})

	s.Run("too many classes fail", func() {
		s.expectGet(s.existingCharacter())

		_, err := s.orch.UpdateClasses(s.ctx, &character.UpdateClassesInput{
			ID: testCharID,
			Classes: []caos.ClassAssignment{
				{Name: "A", Level: 1}, {Name: "B", Level: 1},
				{Name: "C", Level: 1}, {Name: "D", Level: 1},
			},
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("classes before the unlock level fail", func() {
		existing := s.existingCharacter()
		existing.Level = 2
		existing.Archetypes = []caos.ArchetypeAssignment{
			{Archetype: caos.ArchetypeCombatente, Level: 2},
		}
		s.expectGet(existing)

		_, err := s.orch.UpdateClasses(s.ctx, &character.UpdateClassesInput{
			ID:      testCharID,
			Classes: []caos.ClassAssignment{{Name: "Guardiao", Level: 1}},
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestUpdateSkills() {
	s.Run("grade and signature changes apply", func() {
		existing := s.existingCharacter()
		s.expectGet(existing)
		s.expectUpdatePassthrough()

		signature := true
		out, err := s.orch.UpdateSkills(s.ctx, &character.UpdateSkillsInput{
			ID: testCharID,
			Changes: []character.SkillGradeChange{
				{Skill: caos.SkillLuta, Grade: caos.GradeVersado, Signature: &signature},
			},
		})
		s.Require().NoError(err)

		entry := out.Character.SkillEntryFor(caos.SkillLuta)
		s.Equal(caos.GradeVersado, entry.Grade)
		s.True(entry.Signature)
	})

	s.Run("unknown skill fails", func() {
		s.expectGet(s.existingCharacter())

		_, err := s.orch.UpdateSkills(s.ctx, &character.UpdateSkillsInput{
			ID:      testCharID,
			Changes: []character.SkillGradeChange{{Skill: "SKILL_NOPE", Grade: caos.GradeAdepto}},
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestAddLanguage() {
	s.Run("new language saves with warnings when over the limit", func() {
		existing := s.existingCharacter()
		// Mente 2 grants one additional language
		existing.Languages = []string{"anao"}
		s.expectGet(existing)
		s.expectUpdatePassthrough()

		out, err := s.orch.AddLanguage(s.ctx, &character.AddLanguageInput{
			ID:       testCharID,
			Language: "elfico",
		})
		s.Require().NoError(err)

		s.Equal([]string{"anao", "elfico"}, out.Character.Languages)
		s.Require().Len(out.Warnings, 1)
		s.Contains(out.Warnings[0], "1 over the limit")
	})

	s.Run("duplicate language fails", func() {
		existing := s.existingCharacter()
		existing.Languages = []string{"anao"}
		s.expectGet(existing)

		_, err := s.orch.AddLanguage(s.ctx, &character.AddLanguageInput{
			ID:       testCharID,
			Language: "anao",
		})
		s.Require().Error(err)
		s.True(errors.IsAlreadyExists(err))
	})
}

func (s *OrchestratorTestSuite) TestGainExperience() {
	s.Run("levels up while XP covers the next level", func() {
		existing := s.existingCharacter()
		existing.Level = 1
		existing.Archetypes = []caos.ArchetypeAssignment{
			{Archetype: caos.ArchetypeCombatente, Level: 1},
		}
		existing.ExperiencePoints = 0
		s.expectGet(existing)
		s.expectUpdatePassthrough()

		// Level 1 needs 25 XP, level 2 needs 50: 80 XP buys two levels
		out, err := s.orch.GainExperience(s.ctx, &character.GainExperienceInput{
			ID:     testCharID,
			Amount: 80,
		})
		s.Require().NoError(err)

		s.Equal(int32(3), out.Character.Level)
		s.Equal(int32(5), out.Character.ExperiencePoints)
		s.Equal(int32(2), out.LevelsGained)
	})

	s.Run("XP below the threshold accumulates", func() {
		existing := s.existingCharacter()
		existing.Level = 1
		existing.Archetypes = []caos.ArchetypeAssignment{
			{Archetype: caos.ArchetypeCombatente, Level: 1},
		}
		s.expectGet(existing)
		s.expectUpdatePassthrough()

		out, err := s.orch.GainExperience(s.ctx, &character.GainExperienceInput{
			ID:     testCharID,
			Amount: 24,
		})
		s.Require().NoError(err)

		s.Equal(int32(1), out.Character.Level)
		s.Equal(int32(24), out.Character.ExperiencePoints)
		s.Equal(int32(0), out.LevelsGained)
	})

	s.Run("negative amount fails", func() {
		_, err := s.orch.GainExperience(s.ctx, &character.GainExperienceInput{
			ID:     testCharID,
			Amount: -1,
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestMakePayment() {
	s.Run("pays and consolidates", func() {
		existing := s.existingCharacter()
		existing.Purse.Physical = caos.Denomination{Cobre: 50, Ouro: 10}
		s.expectGet(existing)
		s.expectUpdatePassthrough()

		out, err := s.orch.MakePayment(s.ctx, &character.MakePaymentInput{
			ID:         testCharID,
			CostCopper: 500,
			From:       caos.PurseLocationPhysical,
		})
		s.Require().NoError(err)

		s.Equal(caos.Denomination{Cobre: 50, Ouro: 5}, out.Remaining)
		s.Equal(caos.Denomination{Cobre: 50, Ouro: 5}, out.Character.Purse.Physical)
	})

	s.Run("insufficient funds leave the sheet untouched", func() {
		existing := s.existingCharacter()
		existing.Purse.Physical = caos.Denomination{Cobre: 99}
		s.expectGet(existing)
		// No Update expectation: the save must never happen

		_, err := s.orch.MakePayment(s.ctx, &character.MakePaymentInput{
			ID:         testCharID,
			CostCopper: 100,
			From:       caos.PurseLocationPhysical,
		})
		s.Require().Error(err)
		s.True(errors.IsFailedPrecondition(err))
	})
}

func (s *OrchestratorTestSuite) TestTransferCurrency() {
	s.Run("moves coins to the bank", func() {
		existing := s.existingCharacter()
		existing.Purse.Physical = caos.Denomination{Ouro: 10}
		s.expectGet(existing)
		s.expectUpdatePassthrough()

		out, err := s.orch.TransferCurrency(s.ctx, &character.TransferCurrencyInput{
			ID:           testCharID,
			AmountCopper: 250,
			From:         caos.PurseLocationPhysical,
			To:           caos.PurseLocationBank,
		})
		s.Require().NoError(err)

		s.Equal(caos.Denomination{Cobre: 50, Ouro: 7}, out.Character.Purse.Physical)
		s.Equal(caos.Denomination{Cobre: 50, Ouro: 2}, out.Character.Purse.Bank)
	})

	s.Run("same purse on both sides fails", func() {
		_, err := s.orch.TransferCurrency(s.ctx, &character.TransferCurrencyInput{
			ID:           testCharID,
			AmountCopper: 10,
			From:         caos.PurseLocationBank,
			To:           caos.PurseLocationBank,
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestExchangeCurrency() {
	s.Run("consolidates cobre into ouro", func() {
		existing := s.existingCharacter()
		existing.Purse.Physical = caos.Denomination{Cobre: 250}
		s.expectGet(existing)
		s.expectUpdatePassthrough()

		out, err := s.orch.ExchangeCurrency(s.ctx, &character.ExchangeCurrencyInput{
			ID:       testCharID,
			Location: caos.PurseLocationPhysical,
			Amount:   250,
			FromUnit: caos.CurrencyCobre,
			ToUnit:   caos.CurrencyOuro,
		})
		s.Require().NoError(err)

		s.Equal(caos.Denomination{Cobre: 50, Ouro: 2}, out.Purse)
	})

	s.Run("exchange that converts nothing fails", func() {
		existing := s.existingCharacter()
		existing.Purse.Physical = caos.Denomination{Cobre: 99}
		s.expectGet(existing)

		_, err := s.orch.ExchangeCurrency(s.ctx, &character.ExchangeCurrencyInput{
			ID:       testCharID,
			Location: caos.PurseLocationPhysical,
			Amount:   99,
			FromUnit: caos.CurrencyCobre,
			ToUnit:   caos.CurrencyOuro,
		})
		s.Require().Error(err)
		s.True(errors.IsFailedPrecondition(err))
	})
}

func (s *OrchestratorTestSuite) TestAddInventoryItem() {
	s.Run("defaults the ID and quantity", func() {
		existing := s.existingCharacter()
		s.expectGet(existing)
		s.expectUpdatePassthrough()

		out, err := s.orch.AddInventoryItem(s.ctx, &character.AddInventoryItemInput{
			ID:   testCharID,
			Item: caos.InventoryItem{Name: "Tocha"},
		})
		s.Require().NoError(err)

		s.Require().Len(out.Character.Inventory, 1)
		s.NotEmpty(out.Character.Inventory[0].ID)
		s.Equal(int32(1), out.Character.Inventory[0].Quantity)
		s.Empty(out.Warnings)
	})

	s.Run("overloading warns but still adds", func() {
		existing := s.existingCharacter()
		// Corpo 4: capacity 16
		s.expectGet(existing)
		s.expectUpdatePassthrough()

		out, err := s.orch.AddInventoryItem(s.ctx, &character.AddInventoryItemInput{
			ID:   testCharID,
			Item: caos.InventoryItem{Name: "Bigorna", Slots: 20, Quantity: 1},
		})
		s.Require().NoError(err)

		s.Len(out.Character.Inventory, 1)
		s.Require().Len(out.Warnings, 1)
		s.Contains(out.Warnings[0], "carry capacity")
	})

	s.Run("missing name fails", func() {
		_, err := s.orch.AddInventoryItem(s.ctx, &character.AddInventoryItemInput{
			ID: testCharID,
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestRemoveInventoryItem() {
	s.Run("removes the item", func() {
		existing := s.existingCharacter()
		existing.Inventory = []caos.InventoryItem{{ID: "item_1", Name: "Tocha", Quantity: 1}}
		s.expectGet(existing)
		s.expectUpdatePassthrough()

		out, err := s.orch.RemoveInventoryItem(s.ctx, &character.RemoveInventoryItemInput{
			ID:     testCharID,
			ItemID: "item_1",
		})
		s.Require().NoError(err)
		s.Empty(out.Character.Inventory)
	})

	s.Run("missing item fails", func() {
		s.expectGet(s.existingCharacter())

		_, err := s.orch.RemoveInventoryItem(s.ctx, &character.RemoveInventoryItemInput{
			ID:     testCharID,
			ItemID: "item_missing",
		})
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
	})
}

func (s *OrchestratorTestSuite) TestDamageAndRepairItem() {
	itemWith := func(d caos.Durability) *caos.Character {
		c := s.existingCharacter()
		c.Inventory = []caos.InventoryItem{{ID: "item_1", Name: "Espada", Quantity: 1, Durability: &d}}
		return c
	}

	s.Run("damage steps the die down", func() {
		s.expectGet(itemWith(caos.Durability{Current: 8, Max: 8, State: caos.DurabilityIntact}))
		s.expectUpdatePassthrough()

		out, err := s.orch.DamageItem(s.ctx, &character.DamageItemInput{ID: testCharID, ItemID: "item_1"})
		s.Require().NoError(err)
		s.Equal(int32(6), out.Durability.Current)
		s.Equal(caos.DurabilityIntact, out.Durability.State)
	})

	s.Run("damage at the smallest die degrades the flag", func() {
		s.expectGet(itemWith(caos.Durability{Current: 2, Max: 8, State: caos.DurabilityDamaged}))
		s.expectUpdatePassthrough()

		out, err := s.orch.DamageItem(s.ctx, &character.DamageItemInput{ID: testCharID, ItemID: "item_1"})
		s.Require().NoError(err)
		s.Equal(caos.DurabilityBroken, out.Durability.State)
	})

	s.Run("repair recovers broken to damaged", func() {
		s.expectGet(itemWith(caos.Durability{Current: 2, Max: 8, State: caos.DurabilityBroken}))
		s.expectUpdatePassthrough()

		out, err := s.orch.RepairItem(s.ctx, &character.RepairItemInput{ID: testCharID, ItemID: "item_1"})
		s.Require().NoError(err)
		s.Equal(caos.DurabilityDamaged, out.Durability.State)
	})

	s.Run("item without durability fails", func() {
		existing := s.existingCharacter()
		existing.Inventory = []caos.InventoryItem{{ID: "item_1", Name: "Pedra", Quantity: 1}}
		s.expectGet(existing)

		_, err := s.orch.DamageItem(s.ctx, &character.DamageItemInput{ID: testCharID, ItemID: "item_1"})
		s.Require().Error(err)
		s.True(errors.IsFailedPrecondition(err))
	})
}

func (s *OrchestratorTestSuite) TestRollItemResource() {
	itemWith := func(r caos.ResourceDie) *caos.Character {
		c := s.existingCharacter()
		c.Inventory = []caos.InventoryItem{{ID: "item_1", Name: "Aljava", Quantity: 1, Resource: &r}}
		return c
	}

	s.Run("high roll keeps the die", func() {
		s.roller.result = 5
		s.expectGet(itemWith(caos.ResourceDie{Current: 6, Max: 6}))
		s.expectUpdatePassthrough()

		out, err := s.orch.RollItemResource(s.ctx, &character.RollItemResourceInput{ID: testCharID, ItemID: "item_1"})
		s.Require().NoError(err)
		s.Equal(int32(5), out.Rolled)
		s.False(out.Depleted)
		s.Equal(int32(6), out.Character.Inventory[0].Resource.Current)
	})

	s.Run("low roll depletes and persists", func() {
		s.roller.result = 1
		s.expectGet(itemWith(caos.ResourceDie{Current: 6, Max: 6}))
		s.expectUpdatePassthrough()

		out, err := s.orch.RollItemResource(s.ctx, &character.RollItemResourceInput{ID: testCharID, ItemID: "item_1"})
		s.Require().NoError(err)
		s.True(out.Depleted)
		s.Equal(int32(4), out.Die.Current)
		s.Equal(int32(4), out.Character.Inventory[0].Resource.Current)
	})

	s.Run("depleting a d2 exhausts the resource", func() {
		s.roller.result = 1
		s.expectGet(itemWith(caos.ResourceDie{Current: 2, Max: 6}))
		s.expectUpdatePassthrough()

		out, err := s.orch.RollItemResource(s.ctx, &character.RollItemResourceInput{ID: testCharID, ItemID: "item_1"})
		s.Require().NoError(err)
		s.True(out.Exhausted)
		s.Equal(int32(0), out.Character.Inventory[0].Resource.Current)
	})
}

func (s *OrchestratorTestSuite) TestDeleteCharacter() {
	s.Run("deletes by ID", func() {
		s.mockRepo.EXPECT().
			Delete(s.ctx, characterrepo.DeleteInput{ID: testCharID}).
			Return(&characterrepo.DeleteOutput{}, nil)

		_, err := s.orch.DeleteCharacter(s.ctx, &character.DeleteCharacterInput{ID: testCharID})
		s.Require().NoError(err)
	})

	s.Run("empty ID fails", func() {
		_, err := s.orch.DeleteCharacter(s.ctx, &character.DeleteCharacterInput{})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestListCharacters() {
	s.mockRepo.EXPECT().
		ListByPlayerID(s.ctx, characterrepo.ListByPlayerIDInput{PlayerID: testPlayerID}).
		Return(&characterrepo.ListByPlayerIDOutput{
			Characters: []*caos.Character{s.existingCharacter()},
		}, nil)

	out, err := s.orch.ListCharacters(s.ctx, &character.ListCharactersInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Len(out.Characters, 1)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func TestNewValidation(t *testing.T) {
	if _, err := character.New(&character.Config{}); err == nil {
		t.Fatal("expected error for missing dependencies")
	}
}
