//go:build unit || e2e

package builder

import (
	"time"

	"stand-ledger/internal/domain/order"
	"stand-ledger/internal/domain/sale"
	reqdto "stand-ledger/internal/handler/dto/request"
	"stand-ledger/internal/usecase/commands"
	"stand-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	ID           uuid.UUID
	CustomerName string
	Lines        []*SaleBuilder
	SubmittedAt  time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:           uuid.New(),
		CustomerName: "Amna",
		Lines:        []*SaleBuilder{NewSaleBuilder()},
		SubmittedAt:  time.Date(2024, 3, 1, 17, 55, 0, 0, time.UTC),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) BuildDomain() (*order.PendingOrder, error) {
	lines := make([]sale.Line, 0, len(b.Lines))
	for _, l := range b.Lines {
		line, err := l.BuildLine()
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return order.NewPendingOrder(b.ID, b.CustomerName, lines, b.SubmittedAt)
}

func (b *OrderBuilder) BuildSubmitCommand() commands.SubmitOrderRequest {
	inputs := make([]commands.LineInput, 0, len(b.Lines))
	for _, l := range b.Lines {
		inputs = append(inputs, l.BuildInput())
	}
	return commands.SubmitOrderRequest{CustomerName: b.CustomerName, Lines: inputs}
}

func (b *OrderBuilder) BuildRequestDTO() reqdto.CustomerOrderRequest {
	items := make([]reqdto.SaleLine, 0, len(b.Lines))
	for _, l := range b.Lines {
		items = append(items, l.BuildRequestDTO())
	}
	return reqdto.CustomerOrderRequest{CustomerName: b.CustomerName, Items: items}
}

func (b *OrderBuilder) BuildPendingView() queries.PendingOrderView {
	lines := make([]queries.LineView, 0, len(b.Lines))
	total := sale.Zero
	for _, l := range b.Lines {
		amount := sale.MustMoney(l.Amount)
		total = total.Add(amount)
		lines = append(lines, queries.LineView{
			ItemName: l.ItemName,
			Quantity: l.Quantity,
			Amount:   amount,
			Options:  l.Options,
		})
	}
	return queries.PendingOrderView{
		ID:           b.ID,
		CustomerName: b.CustomerName,
		Lines:        lines,
		Status:       order.StatusPending,
		TotalAmount:  total,
		SubmittedAt:  b.SubmittedAt,
	}
}

// BuildDecision returns the archived decision for the order after staff decided it.
func (b *OrderBuilder) BuildDecision(status order.Status, by string, at time.Time) (order.Decision, error) {
	o, err := b.BuildDomain()
	if err != nil {
		return order.Decision{}, err
	}
	if status == order.StatusApproved {
		err = o.Approve(by, at)
	} else {
		err = o.Reject(by, at)
	}
	if err != nil {
		return order.Decision{}, err
	}
	return o.Decision()
}
