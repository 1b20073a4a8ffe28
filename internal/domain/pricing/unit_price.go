package pricing

import (
	"slices"
	"sort"

	"field_estimator/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Quote is the breakdown of a rule-based unit price.
type Quote struct {
	RuleID               uint            `json:"ruleId"`
	Fallback             bool            `json:"fallback"`
	BasePrice            decimal.Decimal `json:"basePrice"`
	AnchorMultiplier     decimal.Decimal `json:"anchorMultiplier"`
	MaterialMultiplier   decimal.Decimal `json:"materialMultiplier"`
	ComplexityMultiplier decimal.Decimal `json:"complexityMultiplier"`
	// UnitPrice is rounded to MoneyPlaces; Exact is the unrounded product.
	Exact     decimal.Decimal `json:"exact"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// ComputeUnitPrice returns
//
//	basePrice * anchorMultiplier * material[tier] * complexity[level]
//
// rounded to currency precision. A tier or level missing from the rule's
// tables is a ConfigurationError; no factor is ever defaulted to 1.0. So
// is a table carrying a key outside the enumerated tiers or levels.
func ComputeUnitPrice(rule entities.PricingRule, tier entities.MaterialTier, level entities.ComplexityLevel) (Quote, error) {
	if _, err := entities.ParseMaterialTier(string(tier)); err != nil {
		return Quote{}, validationf("%v", err)
	}
	if _, err := entities.ParseComplexityLevel(string(level)); err != nil {
		return Quote{}, validationf("%v", err)
	}

	if err := checkTableKeys(rule); err != nil {
		return Quote{}, err
	}

	material, ok := rule.MaterialMultiplier[tier]
	if !ok {
		return Quote{}, &ConfigurationError{RuleID: rule.ID, Key: string(tier), Reason: "material multiplier missing tier"}
	}
	complexity, ok := rule.ComplexityMultiplier[level]
	if !ok {
		return Quote{}, &ConfigurationError{RuleID: rule.ID, Key: string(level), Reason: "complexity multiplier missing level"}
	}

	exact := rule.BasePrice.Mul(rule.AnchorMultiplier).Mul(material).Mul(complexity)
	return Quote{
		RuleID:               rule.ID,
		BasePrice:            rule.BasePrice,
		AnchorMultiplier:     rule.AnchorMultiplier,
		MaterialMultiplier:   material,
		ComplexityMultiplier: complexity,
		Exact:                exact,
		UnitPrice:            RoundMoney(exact),
	}, nil
}

// QuoteFor resolves the rule for key and prices it for tier and level.
func QuoteFor(candidates []entities.PricingRule, key RuleKey, tier entities.MaterialTier, level entities.ComplexityLevel) (Quote, error) {
	res, err := ResolveRule(candidates, key)
	if err != nil {
		return Quote{}, err
	}
	q, err := ComputeUnitPrice(res.Rule, tier, level)
	if err != nil {
		return Quote{}, err
	}
	q.Fallback = res.Fallback
	return q, nil
}

// ValidateRule checks a rule before it is stored: a known unit, a
// non-negative base price, a positive anchor and a positive factor for
// every enumerated tier and level.
func ValidateRule(rule entities.PricingRule) error {
	if _, err := entities.ParsePricingUnit(string(rule.Unit)); err != nil {
		return validationf("%v", err)
	}
	if rule.RegionID == 0 || rule.TradeID == 0 {
		return validationf("region and trade are required")
	}
	if rule.BasePrice.IsNegative() {
		return validationf("base price must not be negative")
	}
	if !rule.AnchorMultiplier.IsPositive() {
		return &ConfigurationError{RuleID: rule.ID, Key: "anchorMultiplier", Reason: "factor must be positive"}
	}
	return ValidateMultipliers(rule)
}

// ValidateMultipliers requires the tables to cover exactly the enumerated
// tiers and levels with positive factors.
func ValidateMultipliers(rule entities.PricingRule) error {
	for _, tier := range entities.MaterialTiers {
		f, ok := rule.MaterialMultiplier[tier]
		if !ok {
			return &ConfigurationError{RuleID: rule.ID, Key: string(tier), Reason: "material multiplier missing tier"}
		}
		if !f.IsPositive() {
			return &ConfigurationError{RuleID: rule.ID, Key: string(tier), Reason: "material multiplier must be positive"}
		}
	}
	for _, level := range entities.ComplexityLevels {
		f, ok := rule.ComplexityMultiplier[level]
		if !ok {
			return &ConfigurationError{RuleID: rule.ID, Key: string(level), Reason: "complexity multiplier missing level"}
		}
		if !f.IsPositive() {
			return &ConfigurationError{RuleID: rule.ID, Key: string(level), Reason: "complexity multiplier must be positive"}
		}
	}
	return checkTableKeys(rule)
}

// checkTableKeys rejects tier or level keys the pricing model does not
// know, reporting them in sorted order.
func checkTableKeys(rule entities.PricingRule) error {
	var unknownTiers []string
	for tier := range rule.MaterialMultiplier {
		if !slices.Contains(entities.MaterialTiers, tier) {
			unknownTiers = append(unknownTiers, string(tier))
		}
	}
	if len(unknownTiers) > 0 {
		sort.Strings(unknownTiers)
		return &ConfigurationError{RuleID: rule.ID, Key: unknownTiers[0], Reason: "unknown material tier"}
	}

	var unknownLevels []string
	for level := range rule.ComplexityMultiplier {
		if !slices.Contains(entities.ComplexityLevels, level) {
			unknownLevels = append(unknownLevels, string(level))
		}
	}
	if len(unknownLevels) > 0 {
		sort.Strings(unknownLevels)
		return &ConfigurationError{RuleID: rule.ID, Key: unknownLevels[0], Reason: "unknown complexity level"}
	}
	return nil
}
