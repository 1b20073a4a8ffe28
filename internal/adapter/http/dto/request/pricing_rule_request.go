package request

import (
	"field_estimator/internal/domain/entities"
	"field_estimator/internal/usecase"

	"github.com/shopspring/decimal"
)

// CreatePricingRuleRequest omits of anchor or multiplier tables fall back
// to the standard defaults.
type CreatePricingRuleRequest struct {
	RegionID             uint                       `json:"regionId" binding:"required"`
	TradeID              uint                       `json:"tradeId" binding:"required"`
	SpecialtyID          *uint                      `json:"specialtyId"`
	Unit                 string                     `json:"unit" binding:"required,pricing_unit"`
	BasePrice            decimal.Decimal            `json:"basePrice"`
	AnchorMultiplier     *decimal.Decimal           `json:"anchorMultiplier"`
	MaterialMultiplier   map[string]decimal.Decimal `json:"materialMultiplier"`
	ComplexityMultiplier map[string]decimal.Decimal `json:"complexityMultiplier"`
	Enabled              *bool                      `json:"enabled"`
}

type UpdatePricingRuleRequest struct {
	BasePrice            *decimal.Decimal           `json:"basePrice"`
	AnchorMultiplier     *decimal.Decimal           `json:"anchorMultiplier"`
	MaterialMultiplier   map[string]decimal.Decimal `json:"materialMultiplier"`
	ComplexityMultiplier map[string]decimal.Decimal `json:"complexityMultiplier"`
	Enabled              *bool                      `json:"enabled"`
}

type QuoteRequest struct {
	RegionID        *uint  `json:"regionId"`
	TradeID         uint   `json:"tradeId" binding:"required"`
	SpecialtyID     *uint  `json:"specialtyId"`
	Unit            string `json:"unit" binding:"required,pricing_unit"`
	MaterialTier    string `json:"materialTier" binding:"required,material_tier"`
	ComplexityLevel string `json:"complexityLevel" binding:"required,complexity_level"`
}

func (r CreatePricingRuleRequest) ToEntity() (entities.PricingRule, error) {
	unit, err := entities.ParsePricingUnit(r.Unit)
	if err != nil {
		return entities.PricingRule{}, err
	}
	material, err := parseMaterialTable(r.MaterialMultiplier)
	if err != nil {
		return entities.PricingRule{}, err
	}
	complexity, err := parseComplexityTable(r.ComplexityMultiplier)
	if err != nil {
		return entities.PricingRule{}, err
	}

	rule := entities.PricingRule{
		RegionID:             r.RegionID,
		TradeID:              r.TradeID,
		SpecialtyID:          r.SpecialtyID,
		Unit:                 unit,
		BasePrice:            r.BasePrice,
		MaterialMultiplier:   material,
		ComplexityMultiplier: complexity,
		Enabled:              true,
	}
	if r.AnchorMultiplier != nil {
		rule.AnchorMultiplier = *r.AnchorMultiplier
	}
	if r.Enabled != nil {
		rule.Enabled = *r.Enabled
	}
	return rule, nil
}

func (r UpdatePricingRuleRequest) ToPatch() (usecase.PricingRulePatch, error) {
	material, err := parseMaterialTable(r.MaterialMultiplier)
	if err != nil {
		return usecase.PricingRulePatch{}, err
	}
	complexity, err := parseComplexityTable(r.ComplexityMultiplier)
	if err != nil {
		return usecase.PricingRulePatch{}, err
	}
	return usecase.PricingRulePatch{
		BasePrice:            r.BasePrice,
		AnchorMultiplier:     r.AnchorMultiplier,
		MaterialMultiplier:   material,
		ComplexityMultiplier: complexity,
		Enabled:              r.Enabled,
	}, nil
}

func (r QuoteRequest) ToInput() usecase.QuoteInput {
	unit, _ := entities.ParsePricingUnit(r.Unit)
	tier, _ := entities.ParseMaterialTier(r.MaterialTier)
	level, _ := entities.ParseComplexityLevel(r.ComplexityLevel)
	return usecase.QuoteInput{
		RegionID:        r.RegionID,
		TradeID:         r.TradeID,
		SpecialtyID:     r.SpecialtyID,
		Unit:            unit,
		MaterialTier:    tier,
		ComplexityLevel: level,
	}
}

// parseMaterialTable returns nil for a nil table so "not sent" stays
// distinguishable from "sent empty".
func parseMaterialTable(raw map[string]decimal.Decimal) (map[entities.MaterialTier]decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}
	out := make(map[entities.MaterialTier]decimal.Decimal, len(raw))
	for k, v := range raw {
		tier, err := entities.ParseMaterialTier(k)
		if err != nil {
			return nil, err
		}
		out[tier] = v
	}
	return out, nil
}

func parseComplexityTable(raw map[string]decimal.Decimal) (map[entities.ComplexityLevel]decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}
	out := make(map[entities.ComplexityLevel]decimal.Decimal, len(raw))
	for k, v := range raw {
		level, err := entities.ParseComplexityLevel(k)
		if err != nil {
			return nil, err
		}
		out[level] = v
	}
	return out, nil
}
