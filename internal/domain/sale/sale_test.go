//go:build unit

package sale_test

import (
	"strings"
	"testing"
	"time"

	"stand-ledger/internal/domain/sale"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	t.Run("parse and render", func(t *testing.T) {
		m, err := sale.ParseMoney("260.00")
		require.NoError(t, err)
		assert.Equal(t, "260", m.String())
		assert.Equal(t, "260", m.Number().String())
	})

	t.Run("negative rejected", func(t *testing.T) {
		_, err := sale.ParseMoney("-1")
		assert.ErrorIs(t, err, sale.ErrNegativeAmount)

		_, err = sale.NewMoney(decimal.NewFromFloat(-0.01))
		assert.ErrorIs(t, err, sale.ErrNegativeAmount)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := sale.ParseMoney("abc")
		assert.ErrorIs(t, err, sale.ErrInvalidAmount)
	})

	t.Run("exact sums", func(t *testing.T) {
		total := sale.MustMoney("0.1").Add(sale.MustMoney("0.2"))
		assert.True(t, total.Equal(sale.MustMoney("0.3")))
	})

	t.Run("sub floors at zero", func(t *testing.T) {
		assert.True(t, sale.MustMoney("100").Sub(sale.MustMoney("400")).IsZero())
		assert.Equal(t, "20", sale.MustMoney("50").Sub(sale.MustMoney("30")).String())
	})
}

func TestNewLine(t *testing.T) {
	cases := []struct {
		name     string
		itemName string
		qty      int
		errIs    error
	}{
		{name: "valid", itemName: "Mint Margarita", qty: 2},
		{name: "name is trimmed", itemName: "  Fries ", qty: 1},
		{name: "blank name", itemName: "   ", qty: 1, errIs: sale.ErrItemNameRequired},
		{name: "zero quantity", itemName: "Fries", qty: 0, errIs: sale.ErrInvalidQuantity},
		{name: "negative quantity", itemName: "Fries", qty: -3, errIs: sale.ErrInvalidQuantity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := sale.NewLine(tc.itemName, tc.qty, sale.MustMoney("100"), "")
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tc.itemName), l.ItemName())
			assert.Equal(t, tc.qty, l.Quantity())
		})
	}
}

func TestSumAmounts(t *testing.T) {
	a, _ := sale.NewLine("Fries", 1, sale.MustMoney("150"), "")
	b, _ := sale.NewLine("Mint Margarita", 2, sale.MustMoney("260"), "no ice")

	assert.Equal(t, "410", sale.SumAmounts([]sale.Line{a, b}).String())
	assert.True(t, sale.SumAmounts(nil).IsZero())
}

func TestRecord(t *testing.T) {
	line, err := sale.NewLine("Mint Margarita", 2, sale.MustMoney("260"), "")
	require.NoError(t, err)
	loc := time.FixedZone("PKT", 5*60*60)
	now := time.Date(2024, 3, 1, 20, 0, 0, 0, loc)

	t.Run("direct sale has no customer", func(t *testing.T) {
		r := sale.NewDirectRecord(uuid.Nil, line, now)
		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Empty(t, r.CustomerName())
		assert.Nil(t, r.OrderID())
		assert.Equal(t, time.UTC, r.Timestamp().Location())
	})

	t.Run("order record links the order", func(t *testing.T) {
		orderID := uuid.New()
		r := sale.NewOrderRecord(uuid.New(), line, now, "Amna", orderID)
		assert.Equal(t, "Amna", r.CustomerName())
		require.NotNil(t, r.OrderID())
		assert.Equal(t, orderID, *r.OrderID())
		assert.Equal(t, 2, r.Quantity())
		assert.Equal(t, "260", r.Amount().String())
	})
}
