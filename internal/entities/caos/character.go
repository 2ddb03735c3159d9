// Package caos implements the Tabuleiro do Caos entities
package caos

// Character represents a persisted Tabuleiro do Caos character sheet.
// NOTE: This is a data-only struct. All calculations (Guard, Power Points,
// slot counts, etc.) are done by the engine, not here.
type Character struct {
	ID            string
	Name          string
	PlayerID      string
	SchemaVersion int32

	Level            int32
	ExperiencePoints int32

	Attributes Attributes
	Archetypes []ArchetypeAssignment
	Classes    []ClassAssignment
	Skills     []SkillEntry
	Languages  []string

	Guard       Pool
	Vitality    Pool
	PowerPoints Pool

	Purse     Purse
	Inventory []InventoryItem

	// Free-form modifiers applied on top of the Guard and Power Point
	// formulas (equipment, blessings, etc.)
	GuardModifier       int32
	PowerPointsModifier int32

	Conditions []string

	CreatedAt int64
	UpdatedAt int64
}

// Attributes holds the six base attribute values.
type Attributes struct {
	Agilidade  int32
	Corpo      int32
	Influencia int32
	Mente      int32
	Essencia   int32
	Instinto   int32
}

// Get returns the value of the named attribute. Unknown attributes read as 0.
func (a Attributes) Get(attr Attribute) int32 {
	switch attr {
	case AttributeAgilidade:
		return a.Agilidade
	case AttributeCorpo:
		return a.Corpo
	case AttributeInfluencia:
		return a.Influencia
	case AttributeMente:
		return a.Mente
	case AttributeEssencia:
		return a.Essencia
	case AttributeInstinto:
		return a.Instinto
	default:
		return 0
	}
}

// Set writes the value of the named attribute. Unknown attributes are ignored.
func (a *Attributes) Set(attr Attribute, value int32) {
	switch attr {
	case AttributeAgilidade:
		a.Agilidade = value
	case AttributeCorpo:
		a.Corpo = value
	case AttributeInfluencia:
		a.Influencia = value
	case AttributeMente:
		a.Mente = value
	case AttributeEssencia:
		a.Essencia = value
	case AttributeInstinto:
		a.Instinto = value
	}
}

// ArchetypeAssignment is an archetype with invested levels.
type ArchetypeAssignment struct {
	Archetype Archetype
	Level     int32
}

// ClassAssignment is a class with invested levels. Archetypes records which
// archetypes compose the class, for display only.
type ClassAssignment struct {
	Name       string
	Level      int32
	Archetypes []Archetype
}

// SkillEntry is one row of the skill table. Every character carries exactly
// one entry per fixed skill.
type SkillEntry struct {
	Skill        Skill
	Grade        ProficiencyGrade
	KeyAttribute Attribute
	Signature    bool
	Modifiers    []SkillModifier
}

// SkillModifier is an ad-hoc named bonus or penalty on a skill.
type SkillModifier struct {
	Source string
	Value  int32
}

// Pool is a depletable combat resource with a current, maximum and
// temporary component.
type Pool struct {
	Current   int32
	Max       int32
	Temporary int32
}

// Denomination is a coin count per currency unit.
type Denomination struct {
	Cobre   int32
	Ouro    int32
	Platina int32
}

// Purse holds the character's physical and banked coins.
type Purse struct {
	Physical Denomination
	Bank     Denomination
}

// PurseLocation selects one side of the purse.
type PurseLocation string

// Purse locations
const (
	PurseLocationPhysical PurseLocation = "PURSE_PHYSICAL"
	PurseLocationBank     PurseLocation = "PURSE_BANK"
)

// At returns the denomination held at the given location. Unknown locations
// read as the physical purse.
func (p Purse) At(loc PurseLocation) Denomination {
	if loc == PurseLocationBank {
		return p.Bank
	}
	return p.Physical
}

// SetAt writes the denomination held at the given location.
func (p *Purse) SetAt(loc PurseLocation, d Denomination) {
	if loc == PurseLocationBank {
		p.Bank = d
		return
	}
	p.Physical = d
}

// ResourceDie tracks a depletable supply as a die-step on the fixed ladder.
type ResourceDie struct {
	Current int32 // die size, e.g. 6 for a d6
	Max     int32
}

// Durability is an item's die-step durability plus its tri-state health flag.
type Durability struct {
	Current int32
	Max     int32
	State   DurabilityState
}

// InventoryItem is a carried item.
type InventoryItem struct {
	ID         string
	Name       string
	Quantity   int32
	Slots      int32
	Durability *Durability
	Resource   *ResourceDie
}

// FindItem returns a copy of the inventory item with the given ID and
// whether it was found.
func (c *Character) FindItem(itemID string) (InventoryItem, bool) {
	for _, item := range c.Inventory {
		if item.ID == itemID {
			return item, true
		}
	}
	return InventoryItem{}, false
}

// SkillEntryFor returns a pointer to the character's entry for the given
// skill, or nil if the sheet has no such row.
func (c *Character) SkillEntryFor(skill Skill) *SkillEntry {
	for i := range c.Skills {
		if c.Skills[i].Skill == skill {
			return &c.Skills[i]
		}
	}
	return nil
}

// ProficientSkillCount counts skills with a grade above leigo.
func (c *Character) ProficientSkillCount() int32 {
	var n int32
	for _, s := range c.Skills {
		if GradeRank(s.Grade) > 0 {
			n++
		}
	}
	return n
}

// TotalArchetypeLevels sums the levels invested across all archetypes.
func (c *Character) TotalArchetypeLevels() int32 {
	var sum int32
	for _, a := range c.Archetypes {
		sum += a.Level
	}
	return sum
}

// Clone returns a deep copy of the character. Updates always operate on a
// copy so a failed operation never leaves a half-mutated sheet.
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}

	out := *c

	out.Archetypes = append([]ArchetypeAssignment(nil), c.Archetypes...)
	out.Classes = make([]ClassAssignment, len(c.Classes))
	for i, cl := range c.Classes {
		out.Classes[i] = cl
		out.Classes[i].Archetypes = append([]Archetype(nil), cl.Archetypes...)
	}
	out.Skills = make([]SkillEntry, len(c.Skills))
	for i, s := range c.Skills {
		out.Skills[i] = s
		out.Skills[i].Modifiers = append([]SkillModifier(nil), s.Modifiers...)
	}
	out.Languages = append([]string(nil), c.Languages...)
	out.Conditions = append([]string(nil), c.Conditions...)
	out.Inventory = make([]InventoryItem, len(c.Inventory))
	for i, item := range c.Inventory {
		out.Inventory[i] = item
		if item.Durability != nil {
			d := *item.Durability
			out.Inventory[i].Durability = &d
		}
		if item.Resource != nil {
			r := *item.Resource
			out.Inventory[i].Resource = &r
		}
	}

	return &out
}
