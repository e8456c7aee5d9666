package response

import (
	"encoding/json"
	"time"

	"stand-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type SaleResponse struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Quantity     int         `json:"quantity"`
	Amount       json.Number `json:"amount"`
	Options      string      `json:"options"`
	Timestamp    string      `json:"timestamp"`
	CustomerName string      `json:"customerName,omitempty"`
	OrderID      string      `json:"orderId,omitempty"`
}

func FromSaleViews(views []queries.SaleView) []SaleResponse {
	res := make([]SaleResponse, len(views))
	for i, v := range views {
		res[i] = SaleResponse{
			ID:           v.ID.String(),
			Name:         v.ItemName,
			Quantity:     v.Quantity,
			Amount:       v.Amount.Number(),
			Options:      v.Options,
			Timestamp:    v.Timestamp.Format(time.RFC3339Nano),
			CustomerName: v.CustomerName,
		}
		if v.OrderID != nil {
			res[i].OrderID = v.OrderID.String()
		}
	}
	return res
}

type RecordSalesResponse struct {
	Status    string      `json:"status"`
	RecordIDs []string    `json:"recordIds"`
	Total     json.Number `json:"total"`
}

func NewRecordSalesResponse(ids []uuid.UUID, total json.Number) RecordSalesResponse {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return RecordSalesResponse{Status: "success", RecordIDs: out, Total: total}
}

type ClearSalesResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Removed int64  `json:"removed"`
}

type ItemTotalResponse struct {
	Name   string      `json:"name"`
	Qty    int         `json:"qty"`
	Amount json.Number `json:"amount"`
}

type SummaryResponse struct {
	InitialInvestment   json.Number         `json:"initial_investment"`
	TotalSales          json.Number         `json:"total_sales"`
	RemainingInvestment json.Number         `json:"remaining_investment"`
	PercentRecouped     json.Number         `json:"percent_recouped"`
	SalesByItem         []ItemTotalResponse `json:"sales_by_item"`
}

func FromSummaryView(v *queries.SummaryView) SummaryResponse {
	byItem := make([]ItemTotalResponse, len(v.SalesByItem))
	for i, it := range v.SalesByItem {
		byItem[i] = ItemTotalResponse{Name: it.Name, Qty: it.Quantity, Amount: it.Amount.Number()}
	}
	return SummaryResponse{
		InitialInvestment:   v.InitialInvestment.Number(),
		TotalSales:          v.TotalSales.Number(),
		RemainingInvestment: v.RemainingInvestment.Number(),
		PercentRecouped:     json.Number(v.PercentRecouped.StringFixed(2)),
		SalesByItem:         byItem,
	}
}
