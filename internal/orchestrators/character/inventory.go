package character

import (
	"context"
	"fmt"

	"github.com/tabuleirodocaos/sheet-api/internal/engine"
	"github.com/tabuleirodocaos/sheet-api/internal/entities/caos"
	"github.com/tabuleirodocaos/sheet-api/internal/errors"
	characterrepo "github.com/tabuleirodocaos/sheet-api/internal/repositories/character"
	"github.com/tabuleirodocaos/sheet-api/internal/rules"
)

// AddInventoryItem adds an item to the inventory. Going past the carry
// capacity is flagged, never refused.
func (o *Orchestrator) AddInventoryItem(ctx context.Context, input *AddInventoryItemInput) (*AddInventoryItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("item.name", input.Item.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	char, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	item := input.Item
	if item.ID == "" {
		item.ID = o.idGen.Generate()
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	updated := char.Clone()
	updated.Inventory = append(updated.Inventory, item)

	var warnings []string
	capacity := rules.CarryCapacity(updated.Attributes.Corpo)
	used := usedSlots(updated) + rules.CoinWeight(updated.Purse.Physical)
	if used > capacity {
		warnings = append(warnings, fmt.Sprintf(
			"carried slots (%d) exceed carry capacity (%d)", used, capacity))
	}

	saved, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: updated})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &AddInventoryItemOutput{
		Character: saved.Character,
		Warnings:  warnings,
	}, nil
}

// RemoveInventoryItem removes an item from the inventory.
func (o *Orchestrator) RemoveInventoryItem(ctx context.Context, input *RemoveInventoryItemInput) (*RemoveInventoryItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if _, found := char.FindItem(input.ItemID); !found {
		return nil, errors.NotFoundf("item %s not in inventory", input.ItemID)
	}

	updated := char.Clone()
	items := updated.Inventory[:0]
	for _, item := range updated.Inventory {
		if item.ID != input.ItemID {
			items = append(items, item)
		}
	}
	updated.Inventory = items

	saved, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: updated})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &RemoveInventoryItemOutput{Character: saved.Character}, nil
}

// DamageItem applies one point of wear to an item's durability.
func (o *Orchestrator) DamageItem(ctx context.Context, input *DamageItemInput) (*DamageItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	updated := char.Clone()
	item := findItem(updated, input.ItemID)
	if item == nil {
		return nil, errors.NotFoundf("item %s not in inventory", input.ItemID)
	}
	if item.Durability == nil {
		return nil, errors.FailedPreconditionf("item %s has no durability", input.ItemID)
	}

	*item.Durability = rules.DamageDurability(*item.Durability)

	saved, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: updated})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &DamageItemOutput{
		Character:  saved.Character,
		Durability: *item.Durability,
	}, nil
}

// RepairItem undoes one point of wear on an item's durability.
func (o *Orchestrator) RepairItem(ctx context.Context, input *RepairItemInput) (*RepairItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	updated := char.Clone()
	item := findItem(updated, input.ItemID)
	if item == nil {
		return nil, errors.NotFoundf("item %s not in inventory", input.ItemID)
	}
	if item.Durability == nil {
		return nil, errors.FailedPreconditionf("item %s has no durability", input.ItemID)
	}

	*item.Durability = rules.RepairDurability(*item.Durability)

	saved, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: updated})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &RepairItemOutput{
		Character:  saved.Character,
		Durability: *item.Durability,
	}, nil
}

// RollItemResource rolls an item's resource die and persists any depletion.
func (o *Orchestrator) RollItemResource(ctx context.Context, input *RollItemResourceInput) (*RollItemResourceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	updated := char.Clone()
	item := findItem(updated, input.ItemID)
	if item == nil {
		return nil, errors.NotFoundf("item %s not in inventory", input.ItemID)
	}
	if item.Resource == nil {
		return nil, errors.FailedPreconditionf("item %s has no resource die", input.ItemID)
	}

	rolled, err := o.engine.RollResourceDie(ctx, &engine.RollResourceDieInput{Die: *item.Resource})
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll resource die")
	}

	*item.Resource = rolled.Die

	saved, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: updated})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &RollItemResourceOutput{
		Character: saved.Character,
		Rolled:    rolled.Rolled,
		Die:       rolled.Die,
		Depleted:  rolled.Depleted,
		Exhausted: rolled.Exhausted,
	}, nil
}

// findItem returns a pointer into the character's inventory, or nil.
func findItem(c *caos.Character, itemID string) *caos.InventoryItem {
	for i := range c.Inventory {
		if c.Inventory[i].ID == itemID {
			return &c.Inventory[i]
		}
	}
	return nil
}

// usedSlots sums the inventory slot cost, quantity included.
func usedSlots(c *caos.Character) int32 {
	var total int32
	for _, item := range c.Inventory {
		slots := item.Slots
		if slots <= 0 {
			slots = 1
		}
		total += slots * item.Quantity
	}
	return total
}
