package response

import (
	"field_estimator/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

// money renders an amount with currency precision. The JS client parses
// these strings; numbers would lose cents to float rounding.
func money(d decimal.Decimal) string {
	return pricing.RoundMoney(d).StringFixed(pricing.MoneyPlaces)
}

func optionalMoney(d decimal.Decimal, visible bool) *string {
	if !visible {
		return nil
	}
	s := money(d)
	return &s
}
