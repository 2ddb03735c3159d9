package rules

import (
	"github.com/tabuleirodocaos/sheet-api/internal/entities/caos"
)

// Copper values of each denomination. Cobre is the base unit; all wealth is
// losslessly expressible in cobre.
const (
	CobreValue   int64 = 1
	OuroValue    int64 = 100
	PlatinaValue int64 = 100000
)

// CoinsPerWeightUnit is how many carried coins weigh one slot. Coin count,
// not coin value, determines weight.
const CoinsPerWeightUnit = 100

// UnitValue returns the copper value of one coin of the given denomination.
// Unknown units are worth one cobre.
func UnitValue(u caos.CurrencyUnit) int64 {
	switch u {
	case caos.CurrencyOuro:
		return OuroValue
	case caos.CurrencyPlatina:
		return PlatinaValue
	default:
		return CobreValue
	}
}

// CopperValue returns the exact total value of a denomination in cobre.
func CopperValue(d caos.Denomination) int64 {
	return int64(d.Cobre)*CobreValue + int64(d.Ouro)*OuroValue + int64(d.Platina)*PlatinaValue
}

// ToDenomination converts a copper amount into coins greedily: as many
// platina as fit, then ouro, then cobre. Non-positive amounts yield the
// zero denomination.
func ToDenomination(copper int64) caos.Denomination {
	if copper <= 0 {
		return caos.Denomination{}
	}

	platina := copper / PlatinaValue
	copper -= platina * PlatinaValue
	ouro := copper / OuroValue
	copper -= ouro * OuroValue

	return caos.Denomination{
		Cobre:   int32(copper),
		Ouro:    int32(ouro),
		Platina: int32(platina),
	}
}

// ConvertResult is the outcome of a denomination conversion. Remainder is
// expressed in SOURCE units: converting 250 cobre to ouro yields
// {Converted: 2, Remainder: 50}, the 50 being cobre.
type ConvertResult struct {
	Converted int64
	Remainder int64
}

// Convert converts an amount of one denomination into another. The whole
// part comes back in target coins and the remainder in source coins; the
// remainder is always a whole number of source coins because every larger
// unit is an exact multiple of every smaller one.
func Convert(amount int64, from, to caos.CurrencyUnit) ConvertResult {
	if amount <= 0 {
		return ConvertResult{}
	}

	copper := amount * UnitValue(from)
	converted := copper / UnitValue(to)
	remainderCopper := copper % UnitValue(to)

	return ConvertResult{
		Converted: converted,
		Remainder: remainderCopper / UnitValue(from),
	}
}

// Pay deducts a copper cost from a denomination. Returns nil when the purse
// cannot cover the cost; on success the change comes back consolidated
// greedily. All-or-nothing: a failed payment never alters anything.
func Pay(d caos.Denomination, costCopper int64) *caos.Denomination {
	if costCopper < 0 {
		return nil
	}

	total := CopperValue(d)
	if total < costCopper {
		return nil
	}

	result := ToDenomination(total - costCopper)
	return &result
}

// TransferResult carries both purses after a transfer.
type TransferResult struct {
	From caos.Denomination
	To   caos.Denomination
}

// Transfer moves a copper amount between two purses. Returns nil when the
// source cannot cover the amount. Both sides come back consolidated.
func Transfer(from, to caos.Denomination, amountCopper int64) *TransferResult {
	if amountCopper < 0 {
		return nil
	}

	fromTotal := CopperValue(from)
	if fromTotal < amountCopper {
		return nil
	}

	return &TransferResult{
		From: ToDenomination(fromTotal - amountCopper),
		To:   ToDenomination(CopperValue(to) + amountCopper),
	}
}

// Exchange swaps coins of one denomination for another inside a single
// purse. The purse must actually hold the requested coin count and the
// conversion must yield at least one target coin; otherwise nil. Sub-unit
// change returns to the purse as source coins, never as a fraction.
func Exchange(d caos.Denomination, amount int64, from, to caos.CurrencyUnit) *caos.Denomination {
	if amount <= 0 || from == to {
		return nil
	}
	if int64(coinCount(d, from)) < amount {
		return nil
	}

	res := Convert(amount, from, to)
	if res.Converted < 1 {
		return nil
	}

	out := d
	addCoins(&out, from, res.Remainder-amount)
	addCoins(&out, to, res.Converted)
	return &out
}

// CoinWeight is the carried weight of a physical purse in slots:
// floor(total coin count / 100).
func CoinWeight(physical caos.Denomination) int32 {
	total := int64(physical.Cobre) + int64(physical.Ouro) + int64(physical.Platina)
	if total <= 0 {
		return 0
	}
	return int32(total / CoinsPerWeightUnit)
}

// TotalOuro is the purse value expressed in ouro, for display only. Never
// feed this back into arithmetic; the copper total is the source of truth.
func TotalOuro(d caos.Denomination) float64 {
	return float64(CopperValue(d)) / float64(OuroValue)
}

// TotalPlatina is the purse value expressed in platina, for display only.
func TotalPlatina(d caos.Denomination) float64 {
	return float64(CopperValue(d)) / float64(PlatinaValue)
}

func coinCount(d caos.Denomination, u caos.CurrencyUnit) int32 {
	switch u {
	case caos.CurrencyOuro:
		return d.Ouro
	case caos.CurrencyPlatina:
		return d.Platina
	default:
		return d.Cobre
	}
}

func addCoins(d *caos.Denomination, u caos.CurrencyUnit, n int64) {
	switch u {
	case caos.CurrencyOuro:
		d.Ouro += int32(n)
	case caos.CurrencyPlatina:
		d.Platina += int32(n)
	default:
		d.Cobre += int32(n)
	}
}
