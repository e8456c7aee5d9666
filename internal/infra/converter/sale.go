package converter

import (
	"fmt"
	"time"

	"stand-ledger/internal/domain/sale"

	"github.com/google/uuid"
)

// SettingInitialInvestment is the settings key holding the stand's initial investment.
const SettingInitialInvestment = "initial_investment"

// SaleRow is a ledger row with money kept as decimal text, shared by both storage backends.
type SaleRow struct {
	ID           uuid.UUID
	ItemName     string
	Quantity     int
	Amount       string
	Options      string
	CustomerName string
	OrderID      *uuid.UUID
	CreatedAt    time.Time
}

func RecordToSaleRow(r sale.Record) SaleRow {
	return SaleRow{
		ID:           r.ID(),
		ItemName:     r.ItemName(),
		Quantity:     r.Quantity(),
		Amount:       r.Amount().String(),
		Options:      r.Options(),
		CustomerName: r.CustomerName(),
		OrderID:      r.OrderID(),
		CreatedAt:    r.Timestamp(),
	}
}

func SaleRowToRecord(row SaleRow) (sale.Record, error) {
	amount, err := sale.ParseMoney(row.Amount)
	if err != nil {
		return sale.Record{}, fmt.Errorf("sale %s: amount %q: %w", row.ID, row.Amount, err)
	}
	line, err := sale.NewLine(row.ItemName, row.Quantity, amount, row.Options)
	if err != nil {
		return sale.Record{}, fmt.Errorf("sale %s: %w", row.ID, err)
	}
	return sale.ReconstructRecord(row.ID, line, row.CreatedAt, row.CustomerName, row.OrderID), nil
}

type ItemRow struct {
	ID          int64
	Name        string
	Price       string
	Description string
}

func ItemRowToDomain(row ItemRow) (sale.Item, error) {
	price, err := sale.ParseMoney(row.Price)
	if err != nil {
		return sale.Item{}, fmt.Errorf("item %d: price %q: %w", row.ID, row.Price, err)
	}
	return sale.Item{
		ID:          row.ID,
		Name:        row.Name,
		Price:       price,
		Description: row.Description,
	}, nil
}
