package response

import (
	"encoding/json"
	"time"

	"stand-ledger/internal/usecase/queries"
)

type SubmitOrderResponse struct {
	Success     bool        `json:"success"`
	OrderID     string      `json:"orderId"`
	TotalAmount json.Number `json:"totalAmount"`
}

type OrderLineResponse struct {
	Item     string      `json:"item"`
	Quantity int         `json:"quantity"`
	Amount   json.Number `json:"amount"`
	Options  string      `json:"options"`
}

type PendingOrderResponse struct {
	ID           string              `json:"id"`
	CustomerName string              `json:"customerName"`
	Items        []OrderLineResponse `json:"items"`
	Status       string              `json:"status"`
	Timestamp    string              `json:"timestamp"`
	TotalAmount  json.Number         `json:"totalAmount"`
}

func FromPendingOrderViews(views []queries.PendingOrderView) []PendingOrderResponse {
	res := make([]PendingOrderResponse, len(views))
	for i, v := range views {
		items := make([]OrderLineResponse, len(v.Lines))
		for j, l := range v.Lines {
			items[j] = OrderLineResponse{
				Item:     l.ItemName,
				Quantity: l.Quantity,
				Amount:   l.Amount.Number(),
				Options:  l.Options,
			}
		}
		res[i] = PendingOrderResponse{
			ID:           v.ID.String(),
			CustomerName: v.CustomerName,
			Items:        items,
			Status:       v.Status.String(),
			Timestamp:    v.SubmittedAt.Format(time.RFC3339Nano),
			TotalAmount:  v.TotalAmount.Number(),
		}
	}
	return res
}

type DecisionResponse struct {
	OrderID      string      `json:"orderId"`
	CustomerName string      `json:"customerName"`
	Status       string      `json:"status"`
	DecidedBy    string      `json:"decidedBy"`
	DecidedAt    string      `json:"decidedAt"`
	TotalAmount  json.Number `json:"totalAmount"`
	LineCount    int         `json:"lineCount"`
	SubmittedAt  string      `json:"submittedAt"`
}

func FromDecisionViews(views []queries.DecisionView) []DecisionResponse {
	res := make([]DecisionResponse, len(views))
	for i, v := range views {
		res[i] = DecisionResponse{
			OrderID:      v.OrderID.String(),
			CustomerName: v.CustomerName,
			Status:       v.Status.String(),
			DecidedBy:    v.DecidedBy,
			DecidedAt:    v.DecidedAt.Format(time.RFC3339Nano),
			TotalAmount:  v.TotalAmount.Number(),
			LineCount:    v.LineCount,
			SubmittedAt:  v.SubmittedAt.Format(time.RFC3339Nano),
		}
	}
	return res
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
