package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"field_estimator/internal/domain/entities"
	"field_estimator/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const pricingCacheKeyPrefix = "pricing:candidates"

// PricingRuleRedisCache keeps the rule candidates of one
// (region, trade, unit) as a JSON list. Entries expire after ttl and are
// dropped for every unit when a rule of the region and trade changes.
type PricingRuleRedisCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

var _ interfaces.IPricingRuleCache = (*PricingRuleRedisCache)(nil)

func NewPricingRuleRedisCache(rdb redis.Cmdable, ttl time.Duration) *PricingRuleRedisCache {
	return &PricingRuleRedisCache{rdb: rdb, ttl: ttl}
}

func candidatesKey(regionID, tradeID uint, unit entities.PricingUnit) string {
	return fmt.Sprintf("%s:%d:%d:%s", pricingCacheKeyPrefix, regionID, tradeID, unit)
}

func (c *PricingRuleRedisCache) GetCandidates(ctx context.Context, regionID, tradeID uint, unit entities.PricingUnit) ([]entities.PricingRule, bool, error) {
	data, err := c.rdb.Get(ctx, candidatesKey(regionID, tradeID, unit)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var rules []entities.PricingRule
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, false, err
	}
	return rules, true, nil
}

func (c *PricingRuleRedisCache) SetCandidates(ctx context.Context, regionID, tradeID uint, unit entities.PricingUnit, rules []entities.PricingRule) error {
	if rules == nil {
		rules = []entities.PricingRule{}
	}
	data, err := json.Marshal(rules)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, candidatesKey(regionID, tradeID, unit), data, c.ttl).Err()
}

func (c *PricingRuleRedisCache) Invalidate(ctx context.Context, regionID, tradeID uint) error {
	keys := make([]string, 0, len(entities.PricingUnits))
	for _, unit := range entities.PricingUnits {
		keys = append(keys, candidatesKey(regionID, tradeID, unit))
	}
	return c.rdb.Del(ctx, keys...).Err()
}
