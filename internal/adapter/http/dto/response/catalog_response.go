package response

import "field_estimator/internal/domain/entities"

type ServiceResponse struct {
	ID          uint   `json:"id"`
	SpecialtyID uint   `json:"specialtyId"`
	Category    string `json:"category"`
	Name        string `json:"name"`
	PricingUnit string `json:"pricingUnit"`
	UnitPrice   string `json:"unitPrice"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

func FromServices(ss []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, ServiceResponse{
			ID:          s.ID,
			SpecialtyID: s.SpecialtyID,
			Category:    s.Category,
			Name:        s.Name,
			PricingUnit: string(s.PricingUnit),
			UnitPrice:   money(s.UnitPrice),
			Description: s.Description,
			Active:      s.Active,
		})
	}
	return out
}
