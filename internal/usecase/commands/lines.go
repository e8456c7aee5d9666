package commands

import (
	"fmt"

	"stand-ledger/internal/domain/sale"
	"stand-ledger/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// LineInput is an unvalidated line item as supplied by the caller.
type LineInput struct {
	ItemName string
	Quantity int
	Amount   decimal.Decimal
	Options  string
}

func buildLines(inputs []LineInput) ([]sale.Line, error) {
	lines := make([]sale.Line, 0, len(inputs))
	for i, in := range inputs {
		amount, err := sale.NewMoney(in.Amount)
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, fmt.Sprintf("line %d", i+1)), ErrValidation)
		}
		line, err := sale.NewLine(in.ItemName, in.Quantity, amount, in.Options)
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, fmt.Sprintf("line %d", i+1)), ErrValidation)
		}
		lines = append(lines, line)
	}
	return lines, nil
}
