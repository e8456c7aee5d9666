package summary

import (
	"sort"

	"stand-ledger/internal/domain/sale"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type ItemTotal struct {
	Name     string
	Quantity int
	Amount   sale.Money
}

type Summary struct {
	InitialInvestment   sale.Money
	TotalSales          sale.Money
	RemainingInvestment sale.Money
	PercentRecouped     decimal.Decimal
	SalesByItem         []ItemTotal
}

// Compute derives the summary from the ledger snapshot alone. Nothing is cached between calls.
func Compute(initialInvestment sale.Money, records []sale.Record) Summary {
	total := sale.Zero
	byItem := make([]ItemTotal, 0)
	index := make(map[string]int)

	for _, r := range records {
		total = total.Add(r.Amount())

		i, ok := index[r.ItemName()]
		if !ok {
			i = len(byItem)
			index[r.ItemName()] = i
			byItem = append(byItem, ItemTotal{Name: r.ItemName(), Amount: sale.Zero})
		}
		byItem[i].Quantity += r.Quantity()
		byItem[i].Amount = byItem[i].Amount.Add(r.Amount())
	}

	// stable: equal amounts keep first-encountered order
	sort.SliceStable(byItem, func(a, b int) bool {
		return byItem[a].Amount.Cmp(byItem[b].Amount) > 0
	})

	return Summary{
		InitialInvestment:   initialInvestment,
		TotalSales:          total,
		RemainingInvestment: initialInvestment.Sub(total),
		PercentRecouped:     percent(total, initialInvestment),
		SalesByItem:         byItem,
	}
}

func percent(total, initial sale.Money) decimal.Decimal {
	if initial.IsZero() {
		return decimal.Zero
	}
	return total.Decimal().Mul(hundred).DivRound(initial.Decimal(), 2)
}
