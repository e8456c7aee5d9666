package request

import (
	"encoding/json"
	"fmt"

	"stand-ledger/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

// SaleLine is one line as posted by the counter or the customer order form.
type SaleLine struct {
	Item     string      `json:"item" binding:"required"`
	Quantity int         `json:"quantity" binding:"required,min=1"`
	Amount   json.Number `json:"amount" binding:"required"`
	Options  string      `json:"options"`
}

func (l SaleLine) ToInput() (commands.LineInput, error) {
	amount, err := decimal.NewFromString(l.Amount.String())
	if err != nil {
		return commands.LineInput{}, fmt.Errorf("amount %q is not a number", l.Amount)
	}
	return commands.LineInput{
		ItemName: l.Item,
		Quantity: l.Quantity,
		Amount:   amount,
		Options:  l.Options,
	}, nil
}

func ToInputs(lines []SaleLine) ([]commands.LineInput, error) {
	inputs := make([]commands.LineInput, 0, len(lines))
	for i, l := range lines {
		in, err := l.ToInput()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}
