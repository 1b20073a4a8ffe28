package response

import (
	"time"

	"field_estimator/internal/domain/entities"
)

type SettingsResponse struct {
	CompanyID       uint       `json:"companyId"`
	DefaultLanguage string     `json:"defaultLanguage"`
	Theme           string     `json:"theme"`
	TaxRate         string     `json:"taxRate"`
	OverheadRate    string     `json:"overheadRate"`
	ProfitRate      string     `json:"profitRate"`
	RegionID        *uint      `json:"regionId"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

func FromSettings(s entities.CompanySettings) SettingsResponse {
	res := SettingsResponse{
		CompanyID:       s.CompanyID,
		DefaultLanguage: string(s.DefaultLanguage),
		Theme:           s.Theme,
		TaxRate:         s.TaxRate.String(),
		OverheadRate:    s.OverheadRate.String(),
		ProfitRate:      s.ProfitRate.String(),
		RegionID:        s.RegionID,
	}
	if !s.UpdatedAt.IsZero() {
		at := s.UpdatedAt
		res.UpdatedAt = &at
	}
	return res
}
