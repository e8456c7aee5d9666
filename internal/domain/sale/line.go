package sale

import (
	"errors"
	"strings"
)

var (
	ErrItemNameRequired = errors.New("item name is required")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrNegativeAmount   = errors.New("amount cannot be negative")
	ErrInvalidAmount    = errors.New("amount is not a valid number")
)

// Line is one item/quantity/amount/options tuple of an order or a direct sale.
// Amount is the caller-supplied line total and is not derived from catalog price.
type Line struct {
	itemName string
	quantity int
	amount   Money
	options  string
}

func NewLine(itemName string, quantity int, amount Money, options string) (Line, error) {
	name := strings.TrimSpace(itemName)
	if name == "" {
		return Line{}, ErrItemNameRequired
	}
	if quantity < 1 {
		return Line{}, ErrInvalidQuantity
	}
	return Line{
		itemName: name,
		quantity: quantity,
		amount:   amount,
		options:  options,
	}, nil
}

func (l Line) ItemName() string { return l.itemName }
func (l Line) Quantity() int    { return l.quantity }
func (l Line) Amount() Money    { return l.amount }
func (l Line) Options() string  { return l.options }

func SumAmounts(lines []Line) Money {
	total := Zero
	for _, l := range lines {
		total = total.Add(l.amount)
	}
	return total
}
