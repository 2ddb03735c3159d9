package caos

// Attribute identifies one of the six base attributes.
type Attribute string

// Attribute constants
const (
	AttributeAgilidade  Attribute = "ATTRIBUTE_AGILIDADE"
	AttributeCorpo      Attribute = "ATTRIBUTE_CORPO"
	AttributeInfluencia Attribute = "ATTRIBUTE_INFLUENCIA"
	AttributeMente      Attribute = "ATTRIBUTE_MENTE"
	AttributeEssencia   Attribute = "ATTRIBUTE_ESSENCIA"
	AttributeInstinto   Attribute = "ATTRIBUTE_INSTINTO"
)

// AllAttributes lists the six attributes in sheet order.
var AllAttributes = []Attribute{
	AttributeAgilidade,
	AttributeCorpo,
	AttributeInfluencia,
	AttributeMente,
	AttributeEssencia,
	AttributeInstinto,
}

// Archetype identifies one of the six specialization tracks.
type Archetype string

// Archetype constants
const (
	ArchetypeCombatente Archetype = "ARCHETYPE_COMBATENTE"
	ArchetypeLadino     Archetype = "ARCHETYPE_LADINO"
	ArchetypeAcademico  Archetype = "ARCHETYPE_ACADEMICO"
	ArchetypeFeiticeiro Archetype = "ARCHETYPE_FEITICEIRO"
	ArchetypeAcolito    Archetype = "ARCHETYPE_ACOLITO"
	ArchetypeNatural    Archetype = "ARCHETYPE_NATURAL"
)

// AllArchetypes lists every archetype.
var AllArchetypes = []Archetype{
	ArchetypeCombatente,
	ArchetypeLadino,
	ArchetypeAcademico,
	ArchetypeFeiticeiro,
	ArchetypeAcolito,
	ArchetypeNatural,
}

// ProficiencyGrade is the four-step skill mastery ranking.
type ProficiencyGrade string

// Proficiency grades, lowest to highest
const (
	GradeLeigo   ProficiencyGrade = "GRADE_LEIGO"
	GradeAdepto  ProficiencyGrade = "GRADE_ADEPTO"
	GradeVersado ProficiencyGrade = "GRADE_VERSADO"
	GradeMestre  ProficiencyGrade = "GRADE_MESTRE"
)

// GradeRank returns the numeric rank of a grade (leigo=0 .. mestre=3).
// Unknown grades rank as leigo.
func GradeRank(g ProficiencyGrade) int32 {
	switch g {
	case GradeAdepto:
		return 1
	case GradeVersado:
		return 2
	case GradeMestre:
		return 3
	default:
		return 0
	}
}

// Skill identifies one of the 33 fixed skills.
type Skill string

// Skill constants
const (
	// Agilidade
	SkillAcrobacia       Skill = "SKILL_ACROBACIA"
	SkillFurtividade     Skill = "SKILL_FURTIVIDADE"
	SkillPontaria        Skill = "SKILL_PONTARIA"
	SkillPrestidigitacao Skill = "SKILL_PRESTIDIGITACAO"
	SkillPilotagem       Skill = "SKILL_PILOTAGEM"

	// Corpo
	SkillAtletismo   Skill = "SKILL_ATLETISMO"
	SkillLuta        Skill = "SKILL_LUTA"
	SkillResistencia Skill = "SKILL_RESISTENCIA"
	SkillForcaBruta  Skill = "SKILL_FORCA_BRUTA"

	// Influencia
	SkillAtuacao     Skill = "SKILL_ATUACAO"
	SkillEnganacao   Skill = "SKILL_ENGANACAO"
	SkillIntimidacao Skill = "SKILL_INTIMIDACAO"
	SkillPersuasao   Skill = "SKILL_PERSUASAO"
	SkillLideranca   Skill = "SKILL_LIDERANCA"
	SkillNegociacao  Skill = "SKILL_NEGOCIACAO"

	// Mente
	SkillArcanismo    Skill = "SKILL_ARCANISMO"
	SkillHistoria     Skill = "SKILL_HISTORIA"
	SkillInvestigacao Skill = "SKILL_INVESTIGACAO"
	SkillNatureza     Skill = "SKILL_NATUREZA"
	SkillReligiao     Skill = "SKILL_RELIGIAO"
	SkillMedicina     Skill = "SKILL_MEDICINA"
	SkillEngenharia   Skill = "SKILL_ENGENHARIA"
	SkillTaticas      Skill = "SKILL_TATICAS"

	// Essencia
	SkillCanalizacao   Skill = "SKILL_CANALIZACAO"
	SkillOcultismo     Skill = "SKILL_OCULTISMO"
	SkillRitualismo    Skill = "SKILL_RITUALISMO"
	SkillSensibilidade Skill = "SKILL_SENSIBILIDADE"

	// Instinto
	SkillIntuicao      Skill = "SKILL_INTUICAO"
	SkillPercepcao     Skill = "SKILL_PERCEPCAO"
	SkillSobrevivencia Skill = "SKILL_SOBREVIVENCIA"
	SkillRastreamento  Skill = "SKILL_RASTREAMENTO"
	SkillAdestramento  Skill = "SKILL_ADESTRAMENTO"
	SkillReflexos      Skill = "SKILL_REFLEXOS"
)

// SkillKeyAttributes maps every fixed skill to its key attribute.
var SkillKeyAttributes = map[Skill]Attribute{
	SkillAcrobacia:       AttributeAgilidade,
	SkillFurtividade:     AttributeAgilidade,
	SkillPontaria:        AttributeAgilidade,
	SkillPrestidigitacao: AttributeAgilidade,
	SkillPilotagem:       AttributeAgilidade,
	SkillAtletismo:       AttributeCorpo,
	SkillLuta:            AttributeCorpo,
	SkillResistencia:     AttributeCorpo,
	SkillForcaBruta:      AttributeCorpo,
	SkillAtuacao:         AttributeInfluencia,
	SkillEnganacao:       AttributeInfluencia,
	SkillIntimidacao:     AttributeInfluencia,
	SkillPersuasao:       AttributeInfluencia,
	SkillLideranca:       AttributeInfluencia,
	SkillNegociacao:      AttributeInfluencia,
	SkillArcanismo:       AttributeMente,
	SkillHistoria:        AttributeMente,
	SkillInvestigacao:    AttributeMente,
	SkillNatureza:        AttributeMente,
	SkillReligiao:        AttributeMente,
	SkillMedicina:        AttributeMente,
	SkillEngenharia:      AttributeMente,
	SkillTaticas:         AttributeMente,
	SkillCanalizacao:     AttributeEssencia,
	SkillOcultismo:       AttributeEssencia,
	SkillRitualismo:      AttributeEssencia,
	SkillSensibilidade:   AttributeEssencia,
	SkillIntuicao:        AttributeInstinto,
	SkillPercepcao:       AttributeInstinto,
	SkillSobrevivencia:   AttributeInstinto,
	SkillRastreamento:    AttributeInstinto,
	SkillAdestramento:    AttributeInstinto,
	SkillReflexos:        AttributeInstinto,
}

// AllSkills lists the 33 fixed skills in sheet order.
var AllSkills = []Skill{
	SkillAcrobacia, SkillFurtividade, SkillPontaria, SkillPrestidigitacao, SkillPilotagem,
	SkillAtletismo, SkillLuta, SkillResistencia, SkillForcaBruta,
	SkillAtuacao, SkillEnganacao, SkillIntimidacao, SkillPersuasao, SkillLideranca, SkillNegociacao,
	SkillArcanismo, SkillHistoria, SkillInvestigacao, SkillNatureza, SkillReligiao,
	SkillMedicina, SkillEngenharia, SkillTaticas,
	SkillCanalizacao, SkillOcultismo, SkillRitualismo, SkillSensibilidade,
	SkillIntuicao, SkillPercepcao, SkillSobrevivencia, SkillRastreamento, SkillAdestramento, SkillReflexos,
}

// CurrencyUnit identifies a coin denomination.
type CurrencyUnit string

// Currency denominations
const (
	CurrencyCobre   CurrencyUnit = "CURRENCY_COBRE"
	CurrencyOuro    CurrencyUnit = "CURRENCY_OURO"
	CurrencyPlatina CurrencyUnit = "CURRENCY_PLATINA"
)

// DurabilityState is the tri-state item health flag.
type DurabilityState string

// Durability states
const (
	DurabilityIntact  DurabilityState = "DURABILITY_INTACT"
	DurabilityDamaged DurabilityState = "DURABILITY_DAMAGED"
	DurabilityBroken  DurabilityState = "DURABILITY_BROKEN"
)

// Condition constants
const (
	ConditionCaido        = "CONDITION_CAIDO"
	ConditionCego         = "CONDITION_CEGO"
	ConditionSurdo        = "CONDITION_SURDO"
	ConditionEnvenenado   = "CONDITION_ENVENENADO"
	ConditionAtordoado    = "CONDITION_ATORDOADO"
	ConditionParalisado   = "CONDITION_PARALISADO"
	ConditionAmedrontado  = "CONDITION_AMEDRONTADO"
	ConditionExausto      = "CONDITION_EXAUSTO"
	ConditionAgarrado     = "CONDITION_AGARRADO"
	ConditionInvisivel    = "CONDITION_INVISIVEL"
	ConditionSangrando    = "CONDITION_SANGRANDO"
	ConditionInconsciente = "CONDITION_INCONSCIENTE"
)

// Damage type constants
const (
	DamageCorte      = "DAMAGE_CORTE"
	DamagePerfuracao = "DAMAGE_PERFURACAO"
	DamageImpacto    = "DAMAGE_IMPACTO"
	DamageFogo       = "DAMAGE_FOGO"
	DamageFrio       = "DAMAGE_FRIO"
	DamageEletrico   = "DAMAGE_ELETRICO"
	DamageAcido      = "DAMAGE_ACIDO"
	DamageVeneno     = "DAMAGE_VENENO"
	DamagePsiquico   = "DAMAGE_PSIQUICO"
	DamageEnergia    = "DAMAGE_ENERGIA"
)

// CurrentSchemaVersion is the persisted character schema version.
const CurrentSchemaVersion int32 = 2

// Character limits from the rulebook
const (
	MaxClasses        = 3
	ClassUnlockLevel  = 3
	MaxStandardLevel  = 15
	MaxEpicLevel      = 30
	MaxAttributeValue = 5
	MaxCreationValue  = 3
)
