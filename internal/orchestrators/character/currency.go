package character

import (
	"context"
	"log/slog"

	"github.com/tabuleirodocaos/sheet-api/internal/entities/caos"
	"github.com/tabuleirodocaos/sheet-api/internal/errors"
	characterrepo "github.com/tabuleirodocaos/sheet-api/internal/repositories/character"
	"github.com/tabuleirodocaos/sheet-api/internal/rules"
)

// MakePayment deducts a copper cost from one side of the purse. The
// transaction is all-or-nothing: insufficiency is a FailedPrecondition and
// the sheet is untouched.
func (o *Orchestrator) MakePayment(ctx context.Context, input *MakePaymentInput) (*MakePaymentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CostCopper < 0 {
		return nil, errors.InvalidArgument("cost cannot be negative")
	}

	char, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	holding := char.Purse.At(input.From)
	remaining := rules.Pay(holding, input.CostCopper)
	if remaining == nil {
		return nil, errors.FailedPreconditionf(
			"insufficient funds: purse holds %d cobre, cost is %d cobre",
			rules.CopperValue(holding), input.CostCopper)
	}

	updated := char.Clone()
	updated.Purse.SetAt(input.From, *remaining)

	saved, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: updated})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	slog.Info("payment made",
		"character_id", input.ID,
		"cost_copper", input.CostCopper)

	return &MakePaymentOutput{
		Character: saved.Character,
		Remaining: *remaining,
	}, nil
}

// TransferCurrency moves coins between the physical purse and the bank.
func (o *Orchestrator) TransferCurrency(ctx context.Context, input *TransferCurrencyInput) (*TransferCurrencyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.AmountCopper <= 0 {
		return nil, errors.InvalidArgument("amount must be positive")
	}
	if input.From == input.To {
		return nil, errors.InvalidArgument("source and destination purses must differ")
	}

	char, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	result := rules.Transfer(char.Purse.At(input.From), char.Purse.At(input.To), input.AmountCopper)
	if result == nil {
		return nil, errors.FailedPreconditionf(
			"insufficient funds: purse holds %d cobre, transfer is %d cobre",
			rules.CopperValue(char.Purse.At(input.From)), input.AmountCopper)
	}

	updated := char.Clone()
	updated.Purse.SetAt(input.From, result.From)
	updated.Purse.SetAt(input.To, result.To)

	saved, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: updated})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &TransferCurrencyOutput{Character: saved.Character}, nil
}

// ExchangeCurrency swaps coins of one denomination for another inside a
// single purse, never producing fractional coins.
func (o *Orchestrator) ExchangeCurrency(ctx context.Context, input *ExchangeCurrencyInput) (*ExchangeCurrencyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Amount <= 0 {
		return nil, errors.InvalidArgument("amount must be positive")
	}

	char, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	holding := char.Purse.At(input.Location)
	exchanged := rules.Exchange(holding, input.Amount, input.FromUnit, input.ToUnit)
	if exchanged == nil {
		return nil, errors.FailedPreconditionf(
			"cannot exchange %d %s coins for %s",
			input.Amount, caos.Label(string(input.FromUnit)), caos.Label(string(input.ToUnit)))
	}

	updated := char.Clone()
	updated.Purse.SetAt(input.Location, *exchanged)

	saved, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: updated})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &ExchangeCurrencyOutput{
		Character: saved.Character,
		Purse:     *exchanged,
	}, nil
}
