package usecase

import (
	"context"
	"errors"
	"field_estimator/internal/domain/entities"
	"field_estimator/internal/domain/pricing"
	"field_estimator/internal/infrastructure/logger"
	"field_estimator/internal/usecase/interfaces"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrPricingRuleNotFound = errors.New("pricing rule not found")
	ErrPricingRuleExists   = errors.New("pricing rule already exists for this key")
	ErrInvalidPricingRule  = errors.New("invalid pricing rule")
	ErrRegionNotConfigured = fmt.Errorf("%w: company settings have no region", pricing.ErrConfiguration)
)

// Quote outcomes reported to IPricingMetrics.
const (
	QuoteResolved      = "resolved"
	QuoteFallback      = "fallback"
	QuoteNotFound      = "not_found"
	QuoteConfiguration = "configuration_error"
	QuoteValidation    = "validation_error"
	QuoteError         = "error"
)

type PricingRulePatch struct {
	BasePrice            *decimal.Decimal
	AnchorMultiplier     *decimal.Decimal
	MaterialMultiplier   map[entities.MaterialTier]decimal.Decimal
	ComplexityMultiplier map[entities.ComplexityLevel]decimal.Decimal
	Enabled              *bool
}

// QuoteInput prices one unit of work. A nil RegionID uses the region of
// the caller's company settings.
type QuoteInput struct {
	RegionID        *uint
	TradeID         uint
	SpecialtyID     *uint
	Unit            entities.PricingUnit
	MaterialTier    entities.MaterialTier
	ComplexityLevel entities.ComplexityLevel
}

// IPricingRuleUseCase administers pricing rules and quotes rule-based prices.
//   - rules are global; reading needs canViewPrices, writing canEditPrices
//   - every write invalidates the cached candidates of its region/trade
type IPricingRuleUseCase interface {
	List(ctx context.Context, p entities.Principal, filter interfaces.PricingRuleFilter) ([]entities.PricingRule, error)
	Create(ctx context.Context, p entities.Principal, rule entities.PricingRule) (entities.PricingRule, error)
	Update(ctx context.Context, p entities.Principal, id uint, patch PricingRulePatch) (entities.PricingRule, error)
	Quote(ctx context.Context, p entities.Principal, in QuoteInput) (pricing.Quote, error)
}

type PricingRuleUseCase struct {
	access   access
	audit    auditTrail
	rules    ruleSource
	settings interfaces.ICompanySettingsRepository
}

var _ IPricingRuleUseCase = (*PricingRuleUseCase)(nil)

func NewPricingRuleUseCase(
	rules interfaces.IPricingRuleRepository,
	cache interfaces.IPricingRuleCache,
	metrics interfaces.IPricingMetrics,
	settings interfaces.ICompanySettingsRepository,
	members interfaces.ICompanyUserRepository,
	audit interfaces.IAuditLogRepository,
) *PricingRuleUseCase {
	return &PricingRuleUseCase{
		access:   access{members: members},
		audit:    auditTrail{repo: audit},
		rules:    ruleSource{rules: rules, cache: cache, metrics: metrics},
		settings: settings,
	}
}

func (u *PricingRuleUseCase) List(ctx context.Context, p entities.Principal, filter interfaces.PricingRuleFilter) ([]entities.PricingRule, error) {
	if _, err := u.access.require(ctx, p, canViewPrices); err != nil {
		return nil, err
	}
	return u.rules.rules.List(ctx, filter)
}

func (u *PricingRuleUseCase) Create(ctx context.Context, p entities.Principal, rule entities.PricingRule) (entities.PricingRule, error) {
	if _, err := u.access.require(ctx, p, canEditPrices); err != nil {
		return entities.PricingRule{}, err
	}

	rule.ID = 0
	if rule.AnchorMultiplier.IsZero() {
		rule.AnchorMultiplier = entities.DefaultAnchorMultiplier
	}
	if rule.MaterialMultiplier == nil {
		rule.MaterialMultiplier = entities.DefaultMaterialMultipliers()
	}
	if rule.ComplexityMultiplier == nil {
		rule.ComplexityMultiplier = entities.DefaultComplexityMultipliers()
	}
	if err := pricing.ValidateRule(rule); err != nil {
		return entities.PricingRule{}, fmt.Errorf("%w: %v", ErrInvalidPricingRule, err)
	}
	now := time.Now().UTC()
	rule.CreatedAt, rule.UpdatedAt = now, now

	created, err := u.rules.rules.Create(ctx, rule)
	if errors.Is(err, interfaces.ErrDuplicateKey) {
		return entities.PricingRule{}, ErrPricingRuleExists
	}
	if err != nil {
		return entities.PricingRule{}, err
	}
	u.rules.invalidate(ctx, created.RegionID, created.TradeID)
	u.audit.record(ctx, p, entities.AuditPricingRuleCreated, nil, map[string]string{"rule_id": fmt.Sprint(created.ID)})

	logger.FromContext(ctx).Info("[pricing][usecase] rule created",
		zap.Uint("rule_id", created.ID), zap.Uint("region_id", created.RegionID), zap.Uint("trade_id", created.TradeID))
	return created, nil
}

func (u *PricingRuleUseCase) Update(ctx context.Context, p entities.Principal, id uint, patch PricingRulePatch) (entities.PricingRule, error) {
	if _, err := u.access.require(ctx, p, canEditPrices); err != nil {
		return entities.PricingRule{}, err
	}

	rule, err := u.rules.rules.GetByID(ctx, id)
	if err != nil {
		return entities.PricingRule{}, err
	}
	if rule.ID == 0 {
		return entities.PricingRule{}, ErrPricingRuleNotFound
	}

	if patch.BasePrice != nil {
		rule.BasePrice = *patch.BasePrice
	}
	if patch.AnchorMultiplier != nil {
		rule.AnchorMultiplier = *patch.AnchorMultiplier
	}
	if patch.MaterialMultiplier != nil {
		rule.MaterialMultiplier = patch.MaterialMultiplier
	}
	if patch.ComplexityMultiplier != nil {
		rule.ComplexityMultiplier = patch.ComplexityMultiplier
	}
	if patch.Enabled != nil {
		rule.Enabled = *patch.Enabled
	}
	if err := pricing.ValidateRule(rule); err != nil {
		return entities.PricingRule{}, fmt.Errorf("%w: %v", ErrInvalidPricingRule, err)
	}
	rule.UpdatedAt = time.Now().UTC()

	updated, err := u.rules.rules.Update(ctx, rule)
	if err != nil {
		return entities.PricingRule{}, err
	}
	if updated.ID == 0 {
		return entities.PricingRule{}, ErrPricingRuleNotFound
	}
	u.rules.invalidate(ctx, updated.RegionID, updated.TradeID)
	u.audit.record(ctx, p, entities.AuditPricingRuleUpdated, nil, map[string]string{"rule_id": fmt.Sprint(updated.ID)})
	return updated, nil
}

func (u *PricingRuleUseCase) Quote(ctx context.Context, p entities.Principal, in QuoteInput) (pricing.Quote, error) {
	if _, err := u.access.require(ctx, p, canViewPrices); err != nil {
		return pricing.Quote{}, err
	}

	regionID := in.RegionID
	if regionID == nil {
		s, err := u.settings.GetByCompanyID(ctx, p.CompanyID)
		if err != nil {
			return pricing.Quote{}, err
		}
		regionID = s.RegionID
	}
	if regionID == nil {
		return pricing.Quote{}, ErrRegionNotConfigured
	}

	key := pricing.RuleKey{RegionID: *regionID, TradeID: in.TradeID, SpecialtyID: in.SpecialtyID, Unit: in.Unit}
	return u.rules.quote(ctx, key, in.MaterialTier, in.ComplexityLevel)
}

// ruleSource loads rule candidates through the cache and prices them.
type ruleSource struct {
	rules   interfaces.IPricingRuleRepository
	cache   interfaces.IPricingRuleCache
	metrics interfaces.IPricingMetrics
}

func (s ruleSource) candidates(ctx context.Context, regionID, tradeID uint, unit entities.PricingUnit) ([]entities.PricingRule, error) {
	log := logger.FromContext(ctx)
	if s.cache != nil {
		rules, ok, err := s.cache.GetCandidates(ctx, regionID, tradeID, unit)
		if err != nil {
			log.Warn("[pricing][usecase] cache read failed", zap.Error(err))
		} else if ok {
			return rules, nil
		}
	}

	rules, err := s.rules.ListCandidates(ctx, regionID, tradeID, unit)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetCandidates(ctx, regionID, tradeID, unit, rules); err != nil {
			log.Warn("[pricing][usecase] cache write failed", zap.Error(err))
		}
	}
	return rules, nil
}

func (s ruleSource) invalidate(ctx context.Context, regionID, tradeID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, regionID, tradeID); err != nil {
		logger.FromContext(ctx).Warn("[pricing][usecase] cache invalidation failed",
			zap.Uint("region_id", regionID), zap.Uint("trade_id", tradeID), zap.Error(err))
	}
}

func (s ruleSource) quote(ctx context.Context, key pricing.RuleKey, tier entities.MaterialTier, level entities.ComplexityLevel) (pricing.Quote, error) {
	candidates, err := s.candidates(ctx, key.RegionID, key.TradeID, key.Unit)
	if err != nil {
		s.observe(QuoteError)
		return pricing.Quote{}, err
	}

	q, err := pricing.QuoteFor(candidates, key, tier, level)
	switch {
	case err == nil && q.Fallback:
		s.observe(QuoteFallback)
	case err == nil:
		s.observe(QuoteResolved)
	case errors.Is(err, pricing.ErrRuleNotFound):
		s.observe(QuoteNotFound)
	case errors.Is(err, pricing.ErrConfiguration):
		s.observe(QuoteConfiguration)
		fields := []zap.Field{zap.Stringer("key", key), zap.Error(err)}
		var cfgErr *pricing.ConfigurationError
		if errors.As(err, &cfgErr) {
			fields = append(fields, zap.Uint("rule_id", cfgErr.RuleID), zap.String("missing_key", cfgErr.Key))
		}
		logger.FromContext(ctx).Error("[pricing][usecase] pricing rule misconfigured", fields...)
	case errors.Is(err, pricing.ErrValidation):
		s.observe(QuoteValidation)
	default:
		s.observe(QuoteError)
	}
	return q, err
}

func (s ruleSource) observe(outcome string) {
	if s.metrics != nil {
		s.metrics.ObserveQuote(outcome)
	}
}
