package pricing

import (
	"errors"
	"field_estimator/internal/domain/entities"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func uintPtr(v uint) *uint { return &v }

func sampleRule(id uint, specialty *uint) entities.PricingRule {
	return entities.PricingRule{
		ID:                   id,
		RegionID:             1,
		TradeID:              2,
		SpecialtyID:          specialty,
		Unit:                 entities.UnitLinearFt,
		BasePrice:            d("10"),
		AnchorMultiplier:     d("1.15"),
		MaterialMultiplier:   entities.DefaultMaterialMultipliers(),
		ComplexityMultiplier: entities.DefaultComplexityMultipliers(),
		Enabled:              true,
	}
}

func lfKey(specialty *uint) RuleKey {
	return RuleKey{RegionID: 1, TradeID: 2, SpecialtyID: specialty, Unit: entities.UnitLinearFt}
}

func TestComputeUnitPrice_StandardHard(t *testing.T) {
	q, err := ComputeUnitPrice(sampleRule(7, uintPtr(5)), entities.MaterialStandard, entities.ComplexityHard)
	require.NoError(t, err)
	assert.Equal(t, "15.87", q.UnitPrice.StringFixed(2))
	assert.True(t, q.Exact.Equal(d("15.87")), "exact=%s", q.Exact)
	assert.Equal(t, uint(7), q.RuleID)
}

func TestComputeUnitPrice_RoundsHalfUpAtOutputOnly(t *testing.T) {
	rule := sampleRule(1, nil)
	rule.BasePrice = d("10.01")
	rule.AnchorMultiplier = d("1")
	rule.MaterialMultiplier[entities.MaterialBasic] = d("1.5")

	// 10.01 * 1.5 = 15.015 -> 15.02
	q, err := ComputeUnitPrice(rule, entities.MaterialBasic, entities.ComplexityNormal)
	require.NoError(t, err)
	assert.True(t, q.Exact.Equal(d("15.015")))
	assert.Equal(t, "15.02", q.UnitPrice.StringFixed(2))
}

func TestComputeUnitPrice_MissingTierIsConfigurationError(t *testing.T) {
	rule := sampleRule(9, nil)
	delete(rule.MaterialMultiplier, entities.MaterialPremium)

	q, err := ComputeUnitPrice(rule, entities.MaterialPremium, entities.ComplexityNormal)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))
	assert.True(t, q.UnitPrice.IsZero(), "no price may be produced")

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, uint(9), cfgErr.RuleID)
	assert.Equal(t, "premium", cfgErr.Key)
}

func TestComputeUnitPrice_MissingLevelIsConfigurationError(t *testing.T) {
	rule := sampleRule(9, nil)
	rule.ComplexityMultiplier = map[entities.ComplexityLevel]decimal.Decimal{entities.ComplexityNormal: d("1")}

	_, err := ComputeUnitPrice(rule, entities.MaterialBasic, entities.ComplexityHard)
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestComputeUnitPrice_UnknownTableKeyIsConfigurationError(t *testing.T) {
	rule := sampleRule(9, nil)
	rule.ComplexityMultiplier["insane"] = d("3")

	_, err := ComputeUnitPrice(rule, entities.MaterialBasic, entities.ComplexityNormal)
	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, uint(9), cfgErr.RuleID)
	assert.Equal(t, "insane", cfgErr.Key)
	assert.Equal(t, "unknown complexity level", cfgErr.Reason)
}

func TestComputeUnitPrice_UnknownTierIsValidationError(t *testing.T) {
	_, err := ComputeUnitPrice(sampleRule(1, nil), entities.MaterialTier("gold"), entities.ComplexityNormal)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestResolveRule(t *testing.T) {
	specific := sampleRule(1, uintPtr(5))
	tradeWide := sampleRule(2, nil)
	otherSpecialty := sampleRule(3, uintPtr(6))
	otherUnit := sampleRule(4, uintPtr(5))
	otherUnit.Unit = entities.UnitSquareFt

	t.Run("exact specialty wins", func(t *testing.T) {
		res, err := ResolveRule([]entities.PricingRule{tradeWide, otherSpecialty, specific, otherUnit}, lfKey(uintPtr(5)))
		require.NoError(t, err)
		assert.Equal(t, uint(1), res.Rule.ID)
		assert.False(t, res.Fallback)
	})

	t.Run("falls back to null specialty", func(t *testing.T) {
		res, err := ResolveRule([]entities.PricingRule{tradeWide, otherSpecialty}, lfKey(uintPtr(5)))
		require.NoError(t, err)
		assert.Equal(t, uint(2), res.Rule.ID)
		assert.True(t, res.Fallback)
	})

	t.Run("no specialty requested uses trade-wide", func(t *testing.T) {
		res, err := ResolveRule([]entities.PricingRule{specific, tradeWide}, lfKey(nil))
		require.NoError(t, err)
		assert.Equal(t, uint(2), res.Rule.ID)
		assert.False(t, res.Fallback)
	})

	t.Run("disabled rules are ignored", func(t *testing.T) {
		disabled := specific
		disabled.Enabled = false
		res, err := ResolveRule([]entities.PricingRule{disabled, tradeWide}, lfKey(uintPtr(5)))
		require.NoError(t, err)
		assert.Equal(t, uint(2), res.Rule.ID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := ResolveRule([]entities.PricingRule{otherSpecialty, otherUnit}, lfKey(uintPtr(5)))
		assert.True(t, errors.Is(err, ErrRuleNotFound))
	})

	t.Run("duplicate key", func(t *testing.T) {
		dup := specific
		dup.ID = 99
		_, err := ResolveRule([]entities.PricingRule{specific, dup}, lfKey(uintPtr(5)))
		assert.True(t, errors.Is(err, ErrConfiguration))
	})

	t.Run("unknown unit", func(t *testing.T) {
		key := lfKey(nil)
		key.Unit = "YD"
		_, err := ResolveRule([]entities.PricingRule{tradeWide}, key)
		assert.True(t, errors.Is(err, ErrValidation))
	})
}

func TestQuoteFor_Fallback(t *testing.T) {
	q, err := QuoteFor([]entities.PricingRule{sampleRule(2, nil)}, lfKey(uintPtr(5)), entities.MaterialStandard, entities.ComplexityHard)
	require.NoError(t, err)
	assert.True(t, q.Fallback)
	assert.Equal(t, "15.87", q.UnitPrice.StringFixed(2))
}

func TestValidateRule(t *testing.T) {
	require.NoError(t, ValidateRule(sampleRule(1, nil)))

	missing := sampleRule(1, nil)
	delete(missing.ComplexityMultiplier, entities.ComplexityHard)
	assert.True(t, errors.Is(ValidateRule(missing), ErrConfiguration))

	extra := sampleRule(1, nil)
	extra.MaterialMultiplier["gold"] = d("2")
	assert.True(t, errors.Is(ValidateRule(extra), ErrConfiguration))

	zero := sampleRule(1, nil)
	zero.MaterialMultiplier[entities.MaterialBasic] = decimal.Zero
	assert.True(t, errors.Is(ValidateRule(zero), ErrConfiguration))

	negative := sampleRule(1, nil)
	negative.BasePrice = d("-1")
	assert.True(t, errors.Is(ValidateRule(negative), ErrValidation))
}

func TestComputeJobTotals(t *testing.T) {
	items := []entities.JobItem{
		entities.NewJobItem(1, d("120"), d("2.50"), entities.UnitLinearFt),
		entities.NewJobItem(2, d("3"), d("150.00"), entities.UnitEach),
		entities.NewJobItem(3, d("1"), d("450.00"), entities.UnitJob),
	}
	settings := entities.DefaultCompanySettings(1)
	settings.OverheadRate = d("10")
	settings.ProfitRate = d("20")
	settings.TaxRate = d("6.25")

	totals, err := ComputeJobTotals(items, settings)
	require.NoError(t, err)
	assert.Equal(t, "1200.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "120.00", totals.Overhead.StringFixed(2))
	assert.Equal(t, "264.00", totals.Profit.StringFixed(2))
	assert.Equal(t, "1584.00", totals.TaxableBase.StringFixed(2))
	assert.Equal(t, "99.00", totals.Tax.StringFixed(2))
	assert.Equal(t, "1683.00", totals.Total.StringFixed(2))

	again, err := ComputeJobTotals(items, settings)
	require.NoError(t, err)
	assert.True(t, again.Total.Equal(totals.Total), "recomputation must be stable")
}

func TestComputeJobTotals_ProfitCompoundsOnOverhead(t *testing.T) {
	items := []entities.JobItem{entities.NewJobItem(1, d("1"), d("100"), entities.UnitEach)}
	settings := entities.DefaultCompanySettings(1)
	settings.OverheadRate = d("10")
	settings.ProfitRate = d("10")

	totals, err := ComputeJobTotals(items, settings)
	require.NoError(t, err)
	assert.Equal(t, "11.00", totals.Profit.StringFixed(2))
	assert.Equal(t, "121.00", totals.Total.StringFixed(2))
}

func TestComputeJobTotals_Empty(t *testing.T) {
	totals, err := ComputeJobTotals(nil, entities.DefaultCompanySettings(1))
	require.NoError(t, err)
	assert.True(t, totals.Total.IsZero())
}

func TestComputeJobTotals_Validation(t *testing.T) {
	settings := entities.DefaultCompanySettings(1)

	_, err := ComputeJobTotals([]entities.JobItem{{Qty: d("-1"), UnitPrice: d("1")}}, settings)
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = ComputeJobTotals([]entities.JobItem{{Qty: d("1"), UnitPrice: d("-1")}}, settings)
	assert.True(t, errors.Is(err, ErrValidation))

	settings.TaxRate = d("-0.5")
	_, err = ComputeJobTotals(nil, settings)
	assert.True(t, errors.Is(err, ErrValidation))
}
