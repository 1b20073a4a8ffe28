package main

import (
	"testing"

	"field_estimator/internal/domain/entities"
	"field_estimator/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTradeWideRules_AreValid(t *testing.T) {
	for _, trade := range catalog {
		rules := tradeWideRules(trade, 1, 2)
		require.Len(t, rules, len(trade.BasePrices), trade.Slug)
		for _, rule := range rules {
			assert.True(t, rule.IsTradeWide(), trade.Slug)
			assert.NoError(t, pricing.ValidateRule(rule), "%s/%s", trade.Slug, rule.Unit)
		}
	}
}

func TestTradeWideRules_FollowUnitOrder(t *testing.T) {
	rules := tradeWideRules(catalog[0], 1, 2)
	units := make([]entities.PricingUnit, 0, len(rules))
	for _, r := range rules {
		units = append(units, r.Unit)
	}
	assert.Equal(t, []entities.PricingUnit{entities.UnitEach, entities.UnitLinearFt, entities.UnitSquareFt, entities.UnitHour}, units)
}

func TestTestUsers_ReferenceSeededCatalog(t *testing.T) {
	specialties := map[string]map[string]bool{}
	for _, trade := range catalog {
		specialties[trade.Slug] = map[string]bool{}
		for _, s := range trade.Specialties {
			specialties[trade.Slug][s.Slug] = true
		}
	}

	require.Equal(t, entities.RoleOwner, testUsers[0].Role, "the first account owns the demo company")
	for _, tu := range testUsers {
		require.Contains(t, specialties, tu.TradeSlug, tu.Username)
		for _, slug := range tu.Specialties {
			assert.True(t, specialties[tu.TradeSlug][slug], "%s: %s/%s", tu.Username, tu.TradeSlug, slug)
		}
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"migrate", "catalog", "test-users"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
	cmd, _, err := root.Find([]string{"test-users"})
	require.NoError(t, err)
	assert.NotNil(t, cmd.Flags().Lookup(passwordFlag))
}
