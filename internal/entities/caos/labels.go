package caos

import "strings"

// Display labels for sheet rendering. Lookups fall back to a capitalized
// form of the raw id so an unknown constant never breaks rendering.
var labels = map[string]string{
	string(AttributeAgilidade):  "Agilidade",
	string(AttributeCorpo):      "Corpo",
	string(AttributeInfluencia): "Influência",
	string(AttributeMente):      "Mente",
	string(AttributeEssencia):   "Essência",
	string(AttributeInstinto):   "Instinto",

	string(ArchetypeCombatente): "Combatente",
	string(ArchetypeLadino):     "Ladino",
	string(ArchetypeAcademico):  "Acadêmico",
	string(ArchetypeFeiticeiro): "Feiticeiro",
	string(ArchetypeAcolito):    "Acólito",
	string(ArchetypeNatural):    "Natural",

	string(GradeLeigo):   "Leigo",
	string(GradeAdepto):  "Adepto",
	string(GradeVersado): "Versado",
	string(GradeMestre):  "Mestre",

	string(CurrencyCobre):   "Cobre",
	string(CurrencyOuro):    "Ouro",
	string(CurrencyPlatina): "Platina",

	ConditionCaido:        "Caído",
	ConditionCego:         "Cego",
	ConditionSurdo:        "Surdo",
	ConditionEnvenenado:   "Envenenado",
	ConditionAtordoado:    "Atordoado",
	ConditionParalisado:   "Paralisado",
	ConditionAmedrontado:  "Amedrontado",
	ConditionExausto:      "Exausto",
	ConditionAgarrado:     "Agarrado",
	ConditionInvisivel:    "Invisível",
	ConditionSangrando:    "Sangrando",
	ConditionInconsciente: "Inconsciente",

	DamageCorte:      "Corte",
	DamagePerfuracao: "Perfuração",
	DamageImpacto:    "Impacto",
	DamageFogo:       "Fogo",
	DamageFrio:       "Frio",
	DamageEletrico:   "Elétrico",
	DamageAcido:      "Ácido",
	DamageVeneno:     "Veneno",
	DamagePsiquico:   "Psíquico",
	DamageEnergia:    "Energia",
}

// Label returns the display label for a constant id. Unknown ids fall back
// to the capitalized tail of the id (e.g. "SKILL_LUTA" -> "Luta").
func Label(id string) string {
	if l, ok := labels[id]; ok {
		return l
	}

	raw := id
	if idx := strings.LastIndex(raw, "_"); idx >= 0 && idx < len(raw)-1 {
		raw = raw[idx+1:]
	}
	raw = strings.ToLower(raw)
	if raw == "" {
		return ""
	}
	return strings.ToUpper(raw[:1]) + raw[1:]
}
