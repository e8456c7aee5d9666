package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"stand-ledger/internal/domain/order"
	"stand-ledger/internal/domain/sale"

	"github.com/google/uuid"
)

// lineDoc is the stored shape of one pending order line.
type lineDoc struct {
	Item     string      `json:"item"`
	Quantity int         `json:"quantity"`
	Amount   json.Number `json:"amount"`
	Options  string      `json:"options"`
}

func EncodeLines(lines []sale.Line) ([]byte, error) {
	docs := make([]lineDoc, 0, len(lines))
	for _, l := range lines {
		docs = append(docs, lineDoc{
			Item:     l.ItemName(),
			Quantity: l.Quantity(),
			Amount:   l.Amount().Number(),
			Options:  l.Options(),
		})
	}
	return json.Marshal(docs)
}

func DecodeLines(data []byte) ([]sale.Line, error) {
	var docs []lineDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, err
	}
	lines := make([]sale.Line, 0, len(docs))
	for i, d := range docs {
		amount, err := sale.ParseMoney(d.Amount.String())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		line, err := sale.NewLine(d.Item, d.Quantity, amount, d.Options)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

type PendingOrderRow struct {
	ID           uuid.UUID
	CustomerName string
	Items        []byte
	TotalAmount  string
	SubmittedAt  time.Time
}

func PendingOrderToRow(o *order.PendingOrder) (PendingOrderRow, error) {
	items, err := EncodeLines(o.Lines())
	if err != nil {
		return PendingOrderRow{}, err
	}
	return PendingOrderRow{
		ID:           o.ID(),
		CustomerName: o.CustomerName(),
		Items:        items,
		TotalAmount:  o.TotalAmount().String(),
		SubmittedAt:  o.SubmittedAt(),
	}, nil
}

func PendingOrderRowToDomain(row PendingOrderRow) (*order.PendingOrder, error) {
	lines, err := DecodeLines(row.Items)
	if err != nil {
		return nil, fmt.Errorf("pending order %s: %w", row.ID, err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("pending order %s: %w", row.ID, order.ErrNoLines)
	}
	total, err := sale.ParseMoney(row.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("pending order %s: total %q: %w", row.ID, row.TotalAmount, err)
	}
	return order.ReconstructPendingOrder(row.ID, row.CustomerName, lines, row.SubmittedAt, total), nil
}

type DecisionRow struct {
	OrderID      uuid.UUID
	CustomerName string
	Status       string
	DecidedBy    string
	DecidedAt    time.Time
	TotalAmount  string
	LineCount    int
	SubmittedAt  time.Time
}

func DecisionToRow(d order.Decision) DecisionRow {
	return DecisionRow{
		OrderID:      d.OrderID,
		CustomerName: d.CustomerName,
		Status:       d.Status.String(),
		DecidedBy:    d.DecidedBy,
		DecidedAt:    d.DecidedAt,
		TotalAmount:  d.TotalAmount.String(),
		LineCount:    d.LineCount,
		SubmittedAt:  d.SubmittedAt,
	}
}

func DecisionRowToDomain(row DecisionRow) (order.Decision, error) {
	status := order.Status(row.Status)
	if !status.IsValid() || status == order.StatusPending {
		return order.Decision{}, fmt.Errorf("decision %s: unknown status %q", row.OrderID, row.Status)
	}
	total, err := sale.ParseMoney(row.TotalAmount)
	if err != nil {
		return order.Decision{}, fmt.Errorf("decision %s: total %q: %w", row.OrderID, row.TotalAmount, err)
	}
	return order.Decision{
		OrderID:      row.OrderID,
		CustomerName: row.CustomerName,
		Status:       status,
		DecidedBy:    row.DecidedBy,
		DecidedAt:    row.DecidedAt.UTC(),
		TotalAmount:  total,
		LineCount:    row.LineCount,
		SubmittedAt:  row.SubmittedAt.UTC(),
	}, nil
}
