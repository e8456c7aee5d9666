//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"stand-ledger/internal/domain/sale"
	reqdto "stand-ledger/internal/handler/dto/request"
	"stand-ledger/internal/usecase/commands"
	"stand-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SaleBuilder struct {
	ItemName string
	Quantity int
	Amount   string
	Options  string
	At       time.Time
}

func NewSaleBuilder() *SaleBuilder {
	return &SaleBuilder{
		ItemName: "Mint Margarita",
		Quantity: 2,
		Amount:   "260",
		Options:  "",
		At:       time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC),
	}
}

func (b *SaleBuilder) With(mutate func(*SaleBuilder)) *SaleBuilder {
	mutate(b)
	return b
}

func (b *SaleBuilder) BuildLine() (sale.Line, error) {
	amount, err := sale.ParseMoney(b.Amount)
	if err != nil {
		return sale.Line{}, err
	}
	return sale.NewLine(b.ItemName, b.Quantity, amount, b.Options)
}

func (b *SaleBuilder) BuildRecord() (sale.Record, error) {
	line, err := b.BuildLine()
	if err != nil {
		return sale.Record{}, err
	}
	return sale.NewDirectRecord(uuid.New(), line, b.At), nil
}

func (b *SaleBuilder) BuildInput() commands.LineInput {
	return commands.LineInput{
		ItemName: b.ItemName,
		Quantity: b.Quantity,
		Amount:   decimal.RequireFromString(b.Amount),
		Options:  b.Options,
	}
}

func (b *SaleBuilder) BuildRequestDTO() reqdto.SaleLine {
	return reqdto.SaleLine{
		Item:     b.ItemName,
		Quantity: b.Quantity,
		Amount:   json.Number(b.Amount),
		Options:  b.Options,
	}
}

func (b *SaleBuilder) BuildView() queries.SaleView {
	return queries.SaleView{
		ID:        uuid.New(),
		ItemName:  b.ItemName,
		Quantity:  b.Quantity,
		Amount:    sale.MustMoney(b.Amount),
		Options:   b.Options,
		Timestamp: b.At,
	}
}
