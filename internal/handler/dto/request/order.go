package request

import "stand-ledger/internal/usecase/commands"

type CustomerOrderRequest struct {
	CustomerName string     `json:"customerName" binding:"required"`
	Items        []SaleLine `json:"items" binding:"required,min=1,dive"`
}

func (r *CustomerOrderRequest) ToCommand() (commands.SubmitOrderRequest, error) {
	lines, err := ToInputs(r.Items)
	if err != nil {
		return commands.SubmitOrderRequest{}, err
	}
	return commands.SubmitOrderRequest{
		CustomerName: r.CustomerName,
		Lines:        lines,
	}, nil
}
