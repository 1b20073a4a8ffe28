package pricing

import "github.com/shopspring/decimal"

// MoneyPlaces is the currency precision of every priced output.
const MoneyPlaces = 2

var hundred = decimal.NewFromInt(100)

// RoundMoney rounds half-up (away from zero) to MoneyPlaces. Amounts in
// this package are never negative, so the two conventions coincide.
// It is only applied to outputs, never to intermediate products.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

func percentOf(base, rate decimal.Decimal) decimal.Decimal {
	return base.Mul(rate).Div(hundred)
}
