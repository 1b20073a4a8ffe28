package interfaces

import (
	"context"
	"field_estimator/internal/domain/entities"
)

type PricingRuleFilter struct {
	RegionID *uint
	TradeID  *uint
}

// IPricingRuleRepository abstracts persistence for pricing rules.
//
// ListCandidates returns every rule (enabled or not) sharing region, trade
// and unit; the pricing core picks among them. Create and Update return
// ErrDuplicateKey when the (region, trade, specialty, unit) key is taken.
type IPricingRuleRepository interface {
	Create(ctx context.Context, r entities.PricingRule) (entities.PricingRule, error)
	GetByID(ctx context.Context, id uint) (entities.PricingRule, error)
	Update(ctx context.Context, r entities.PricingRule) (entities.PricingRule, error)
	List(ctx context.Context, filter PricingRuleFilter) ([]entities.PricingRule, error)
	ListCandidates(ctx context.Context, regionID, tradeID uint, unit entities.PricingUnit) ([]entities.PricingRule, error)
}

// IPricingRuleCache is a read-through cache of rule candidates.
// A miss is reported with ok == false and a nil error.
type IPricingRuleCache interface {
	GetCandidates(ctx context.Context, regionID, tradeID uint, unit entities.PricingUnit) (rules []entities.PricingRule, ok bool, err error)
	SetCandidates(ctx context.Context, regionID, tradeID uint, unit entities.PricingUnit, rules []entities.PricingRule) error
	Invalidate(ctx context.Context, regionID, tradeID uint) error
}

// IPricingMetrics records the outcome of rule-based pricing.
type IPricingMetrics interface {
	ObserveQuote(outcome string)
}
