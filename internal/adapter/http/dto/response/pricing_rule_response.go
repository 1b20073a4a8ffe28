package response

import (
	"time"

	"field_estimator/internal/domain/entities"
	"field_estimator/internal/domain/pricing"
)

type PricingRuleResponse struct {
	ID                   uint              `json:"id"`
	RegionID             uint              `json:"regionId"`
	TradeID              uint              `json:"tradeId"`
	SpecialtyID          *uint             `json:"specialtyId"`
	Unit                 string            `json:"unit"`
	BasePrice            string            `json:"basePrice"`
	AnchorMultiplier     string            `json:"anchorMultiplier"`
	MaterialMultiplier   map[string]string `json:"materialMultiplier"`
	ComplexityMultiplier map[string]string `json:"complexityMultiplier"`
	Enabled              bool              `json:"enabled"`
	CreatedAt            time.Time         `json:"createdAt"`
	UpdatedAt            time.Time         `json:"updatedAt"`
}

// QuoteResponse shows the factors unrounded; only unitPrice is rounded.
type QuoteResponse struct {
	RuleID               uint   `json:"ruleId"`
	Fallback             bool   `json:"fallback"`
	BasePrice            string `json:"basePrice"`
	AnchorMultiplier     string `json:"anchorMultiplier"`
	MaterialMultiplier   string `json:"materialMultiplier"`
	ComplexityMultiplier string `json:"complexityMultiplier"`
	Exact                string `json:"exact"`
	UnitPrice            string `json:"unitPrice"`
}

func FromPricingRule(r entities.PricingRule) PricingRuleResponse {
	material := make(map[string]string, len(r.MaterialMultiplier))
	for k, v := range r.MaterialMultiplier {
		material[string(k)] = v.String()
	}
	complexity := make(map[string]string, len(r.ComplexityMultiplier))
	for k, v := range r.ComplexityMultiplier {
		complexity[string(k)] = v.String()
	}
	return PricingRuleResponse{
		ID:                   r.ID,
		RegionID:             r.RegionID,
		TradeID:              r.TradeID,
		SpecialtyID:          r.SpecialtyID,
		Unit:                 string(r.Unit),
		BasePrice:            money(r.BasePrice),
		AnchorMultiplier:     r.AnchorMultiplier.String(),
		MaterialMultiplier:   material,
		ComplexityMultiplier: complexity,
		Enabled:              r.Enabled,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}

func FromPricingRules(rules []entities.PricingRule) []PricingRuleResponse {
	out := make([]PricingRuleResponse, 0, len(rules))
	for _, r := range rules {
		out = append(out, FromPricingRule(r))
	}
	return out
}

func FromQuote(q pricing.Quote) QuoteResponse {
	return QuoteResponse{
		RuleID:               q.RuleID,
		Fallback:             q.Fallback,
		BasePrice:            q.BasePrice.String(),
		AnchorMultiplier:     q.AnchorMultiplier.String(),
		MaterialMultiplier:   q.MaterialMultiplier.String(),
		ComplexityMultiplier: q.ComplexityMultiplier.String(),
		Exact:                q.Exact.String(),
		UnitPrice:            money(q.UnitPrice),
	}
}
