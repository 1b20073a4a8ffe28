package pricing

import (
	"field_estimator/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// JobTotals is the priced summary of a job. Every field is rounded to
// currency precision independently from the exact intermediate values,
// so Total may differ by a cent from the sum of the rounded parts.
type JobTotals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	Overhead    decimal.Decimal `json:"overhead"`
	Profit      decimal.Decimal `json:"profit"`
	TaxableBase decimal.Decimal `json:"taxableBase"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
}

// ComputeJobTotals aggregates items with the company rates:
//
//	subtotal    = sum(qty * unitPrice)
//	overhead    = subtotal * overheadRate / 100
//	profit      = (subtotal + overhead) * profitRate / 100
//	taxableBase = subtotal + overhead + profit
//	tax         = taxableBase * taxRate / 100
//	total       = taxableBase + tax
//
// The order is fixed. Item unit prices are the stored snapshots.
func ComputeJobTotals(items []entities.JobItem, settings entities.CompanySettings) (JobTotals, error) {
	rates := []struct {
		name string
		rate decimal.Decimal
	}{
		{"overheadRate", settings.OverheadRate},
		{"profitRate", settings.ProfitRate},
		{"taxRate", settings.TaxRate},
	}
	for _, r := range rates {
		if r.rate.IsNegative() {
			return JobTotals{}, validationf("%s must not be negative", r.name)
		}
	}

	subtotal := decimal.Zero
	for i, item := range items {
		if item.Qty.IsNegative() {
			return JobTotals{}, validationf("item %d: negative quantity", i)
		}
		if item.UnitPrice.IsNegative() {
			return JobTotals{}, validationf("item %d: negative unit price", i)
		}
		subtotal = subtotal.Add(item.Qty.Mul(item.UnitPrice))
	}

	overhead := percentOf(subtotal, settings.OverheadRate)
	profit := percentOf(subtotal.Add(overhead), settings.ProfitRate)
	taxableBase := subtotal.Add(overhead).Add(profit)
	tax := percentOf(taxableBase, settings.TaxRate)
	total := taxableBase.Add(tax)

	return JobTotals{
		Subtotal:    RoundMoney(subtotal),
		Overhead:    RoundMoney(overhead),
		Profit:      RoundMoney(profit),
		TaxableBase: RoundMoney(taxableBase),
		Tax:         RoundMoney(tax),
		Total:       RoundMoney(total),
	}, nil
}
