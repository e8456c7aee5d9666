package sale

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Money is a non-negative currency amount with exact decimal arithmetic.
type Money struct {
	value decimal.Decimal
}

var Zero = Money{}

func NewMoney(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	return Money{value: d}, nil
}

func MustMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return NewMoney(d)
}

func (m Money) Add(o Money) Money {
	return Money{value: m.value.Add(o.value)}
}

// Sub floors at zero.
func (m Money) Sub(o Money) Money {
	d := m.value.Sub(o.value)
	if d.IsNegative() {
		return Zero
	}
	return Money{value: d}
}

func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) Cmp(o Money) int          { return m.value.Cmp(o.value) }
func (m Money) Equal(o Money) bool       { return m.value.Equal(o.value) }

// String renders without trailing zeros: 260, 12.5.
func (m Money) String() string {
	return m.value.String()
}

// Number is the JSON representation used by response DTOs.
func (m Money) Number() json.Number {
	return json.Number(m.value.String())
}
