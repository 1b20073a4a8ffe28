package repository

import (
	"context"

	"field_estimator/internal/domain/entities"
	"field_estimator/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type PricingRuleRepository struct {
	db *gorm.DB
}

var _ interfaces.IPricingRuleRepository = (*PricingRuleRepository)(nil)

func NewPricingRuleRepository(db *gorm.DB) *PricingRuleRepository {
	return &PricingRuleRepository{db: db}
}

func (r *PricingRuleRepository) Create(ctx context.Context, rule entities.PricingRule) (entities.PricingRule, error) {
	m, err := toPricingRuleModel(rule)
	if err != nil {
		return entities.PricingRule{}, err
	}
	m.ID = 0
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.PricingRule{}, translateError(err)
	}
	return fromPricingRuleModel(m), nil
}

func (r *PricingRuleRepository) GetByID(ctx context.Context, id uint) (entities.PricingRule, error) {
	var m pricingRuleModel
	err := r.db.WithContext(ctx).First(&m, id).Error
	if isNotFound(err) {
		return entities.PricingRule{}, nil
	}
	if err != nil {
		return entities.PricingRule{}, err
	}
	return fromPricingRuleModel(m), nil
}

// Update saves every column of the rule. A missing row yields a zero value.
func (r *PricingRuleRepository) Update(ctx context.Context, rule entities.PricingRule) (entities.PricingRule, error) {
	m, err := toPricingRuleModel(rule)
	if err != nil {
		return entities.PricingRule{}, err
	}
	res := r.db.WithContext(ctx).
		Model(&pricingRuleModel{}).
		Where("id = ?", rule.ID).
		Select("region_id", "trade_id", "specialty_id", "unit", "base_price", "anchor_multiplier",
			"material_multiplier", "complexity_multiplier", "enabled", "updated_at").
		Updates(&m)
	if res.Error != nil {
		return entities.PricingRule{}, translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.PricingRule{}, nil
	}
	return r.GetByID(ctx, rule.ID)
}

func (r *PricingRuleRepository) List(ctx context.Context, filter interfaces.PricingRuleFilter) ([]entities.PricingRule, error) {
	q := r.db.WithContext(ctx).Order("region_id, trade_id, unit, specialty_id NULLS FIRST, id")
	if filter.RegionID != nil {
		q = q.Where("region_id = ?", *filter.RegionID)
	}
	if filter.TradeID != nil {
		q = q.Where("trade_id = ?", *filter.TradeID)
	}
	var ms []pricingRuleModel
	if err := q.Find(&ms).Error; err != nil {
		return nil, err
	}
	return fromPricingRuleModels(ms), nil
}

func (r *PricingRuleRepository) ListCandidates(ctx context.Context, regionID, tradeID uint, unit entities.PricingUnit) ([]entities.PricingRule, error) {
	var ms []pricingRuleModel
	err := r.db.WithContext(ctx).
		Where("region_id = ? AND trade_id = ? AND unit = ?", regionID, tradeID, string(unit)).
		Order("id").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return fromPricingRuleModels(ms), nil
}
