package request

import (
	"field_estimator/internal/usecase"

	"github.com/shopspring/decimal"
)

// SettingsRequest updates only the fields that are sent. clearRegion
// removes the pricing region.
type SettingsRequest struct {
	DefaultLanguage *string          `json:"defaultLanguage"`
	Theme           *string          `json:"theme"`
	TaxRate         *decimal.Decimal `json:"taxRate"`
	OverheadRate    *decimal.Decimal `json:"overheadRate"`
	ProfitRate      *decimal.Decimal `json:"profitRate"`
	RegionID        *uint            `json:"regionId"`
	ClearRegion     bool             `json:"clearRegion"`
}

func (r SettingsRequest) ToInput() usecase.SettingsInput {
	return usecase.SettingsInput{
		DefaultLanguage: r.DefaultLanguage,
		Theme:           r.Theme,
		TaxRate:         r.TaxRate,
		OverheadRate:    r.OverheadRate,
		ProfitRate:      r.ProfitRate,
		RegionID:        r.RegionID,
		ClearRegion:     r.ClearRegion,
	}
}
