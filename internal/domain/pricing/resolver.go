package pricing

import (
	"field_estimator/internal/domain/entities"
	"fmt"
)

// RuleKey identifies the rule a line item is priced with.
type RuleKey struct {
	RegionID    uint
	TradeID     uint
	SpecialtyID *uint
	Unit        entities.PricingUnit
}

func (k RuleKey) String() string {
	specialty := "*"
	if k.SpecialtyID != nil {
		specialty = fmt.Sprint(*k.SpecialtyID)
	}
	return fmt.Sprintf("region=%d trade=%d specialty=%s unit=%s", k.RegionID, k.TradeID, specialty, k.Unit)
}

// Resolution is the rule chosen for a key. Fallback is set when the
// trade-wide rule was used because no specialty rule exists.
type Resolution struct {
	Rule     entities.PricingRule
	Fallback bool
}

// ResolveRule picks the single enabled rule for key among candidates.
//
// The exact specialty match wins; otherwise the null-specialty rule for
// the same region, trade and unit is used. Disabled rules are ignored.
// Two enabled rules for the same slot violate the uniqueness of the key
// and are reported as a configuration error.
func ResolveRule(candidates []entities.PricingRule, key RuleKey) (Resolution, error) {
	if _, err := entities.ParsePricingUnit(string(key.Unit)); err != nil {
		return Resolution{}, validationf("%v", err)
	}

	var exact, tradeWide *entities.PricingRule
	for i := range candidates {
		r := &candidates[i]
		if !r.Enabled || r.RegionID != key.RegionID || r.TradeID != key.TradeID || r.Unit != key.Unit {
			continue
		}
		switch {
		case r.SpecialtyID == nil:
			if tradeWide != nil {
				return Resolution{}, &ConfigurationError{RuleID: r.ID, Key: key.String(), Reason: "duplicate trade-wide rule"}
			}
			tradeWide = r
		case key.SpecialtyID != nil && *r.SpecialtyID == *key.SpecialtyID:
			if exact != nil {
				return Resolution{}, &ConfigurationError{RuleID: r.ID, Key: key.String(), Reason: "duplicate specialty rule"}
			}
			exact = r
		}
	}

	if exact != nil {
		return Resolution{Rule: *exact}, nil
	}
	if tradeWide != nil {
		return Resolution{Rule: *tradeWide, Fallback: key.SpecialtyID != nil}, nil
	}
	return Resolution{}, fmt.Errorf("%w: %s", ErrRuleNotFound, key)
}
