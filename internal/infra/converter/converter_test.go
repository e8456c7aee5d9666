//go:build unit

package converter_test

import (
	"testing"
	"time"

	"stand-ledger/internal/domain/order"
	"stand-ledger/internal/domain/sale"
	"stand-ledger/internal/infra/converter"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingOrderRow(t *testing.T) {
	margarita, err := sale.NewLine("Mint Margarita", 2, sale.MustMoney("260"), "less sugar")
	require.NoError(t, err)
	fries, err := sale.NewLine("Fries", 1, sale.MustMoney("149.50"), "")
	require.NoError(t, err)
	submitted := time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)

	o, err := order.NewPendingOrder(uuid.New(), "Amna", []sale.Line{margarita, fries}, submitted)
	require.NoError(t, err)

	row, err := converter.PendingOrderToRow(o)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"item":"Mint Margarita","quantity":2,"amount":260,"options":"less sugar"},
		{"item":"Fries","quantity":1,"amount":149.5,"options":""}
	]`, string(row.Items))
	assert.Equal(t, "409.5", row.TotalAmount)

	back, err := converter.PendingOrderRowToDomain(row)
	require.NoError(t, err)
	assert.Equal(t, o.ID(), back.ID())
	assert.Equal(t, "Amna", back.CustomerName())
	assert.Equal(t, submitted, back.SubmittedAt())
	require.Len(t, back.Lines(), 2)
	assert.Equal(t, "less sugar", back.Lines()[0].Options())
	assert.True(t, back.TotalAmount().Equal(o.TotalAmount()))
}

func TestPendingOrderRowCorrupt(t *testing.T) {
	cases := map[string]converter.PendingOrderRow{
		"not json":        {ID: uuid.New(), CustomerName: "Amna", Items: []byte("{"), TotalAmount: "10"},
		"no lines":        {ID: uuid.New(), CustomerName: "Amna", Items: []byte("[]"), TotalAmount: "0"},
		"zero quantity":   {ID: uuid.New(), CustomerName: "Amna", Items: []byte(`[{"item":"Tea","quantity":0,"amount":10}]`), TotalAmount: "10"},
		"negative amount": {ID: uuid.New(), CustomerName: "Amna", Items: []byte(`[{"item":"Tea","quantity":1,"amount":-10}]`), TotalAmount: "10"},
		"bad total":       {ID: uuid.New(), CustomerName: "Amna", Items: []byte(`[{"item":"Tea","quantity":1,"amount":10}]`), TotalAmount: "ten"},
	}
	for name, row := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := converter.PendingOrderRowToDomain(row)
			assert.Error(t, err)
		})
	}
}

func TestSaleRow(t *testing.T) {
	orderID := uuid.New()
	line, err := sale.NewLine("Fries", 3, sale.MustMoney("450"), "")
	require.NoError(t, err)
	rec := sale.NewOrderRecord(uuid.New(), line, time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC), "Bilal", orderID)

	row := converter.RecordToSaleRow(rec)
	assert.Equal(t, "450", row.Amount)
	assert.Equal(t, &orderID, row.OrderID)

	back, err := converter.SaleRowToRecord(row)
	require.NoError(t, err)
	assert.Equal(t, rec.ID(), back.ID())
	assert.Equal(t, "Bilal", back.CustomerName())
	assert.Equal(t, 3, back.Quantity())

	row.Quantity = 0
	_, err = converter.SaleRowToRecord(row)
	assert.ErrorIs(t, err, sale.ErrInvalidQuantity)
}

func TestDecisionRow(t *testing.T) {
	d := order.Decision{
		OrderID:      uuid.New(),
		CustomerName: "Amna",
		Status:       order.StatusRejected,
		DecidedBy:    "staff1",
		DecidedAt:    time.Date(2024, 3, 1, 19, 0, 0, 0, time.UTC),
		TotalAmount:  sale.MustMoney("260"),
		LineCount:    1,
		SubmittedAt:  time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC),
	}

	back, err := converter.DecisionRowToDomain(converter.DecisionToRow(d))
	require.NoError(t, err)
	assert.Equal(t, d.OrderID, back.OrderID)
	assert.Equal(t, order.StatusRejected, back.Status)
	assert.True(t, d.TotalAmount.Equal(back.TotalAmount))

	row := converter.DecisionToRow(d)
	row.Status = "pending"
	_, err = converter.DecisionRowToDomain(row)
	assert.Error(t, err)
}

func TestItemRowToDomain(t *testing.T) {
	item, err := converter.ItemRowToDomain(converter.ItemRow{ID: 1, Name: "Mint Margarita", Price: "130", Description: "Fresh mint"})
	require.NoError(t, err)
	assert.Equal(t, "130", item.Price.String())

	_, err = converter.ItemRowToDomain(converter.ItemRow{ID: 2, Name: "Broken", Price: "-5"})
	assert.ErrorIs(t, err, sale.ErrNegativeAmount)
}
