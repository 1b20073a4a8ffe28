package main

import (
	"context"
	"fmt"

	"field_estimator/internal/adapter/persistence/repository"
	"field_estimator/internal/domain/entities"
	"field_estimator/internal/domain/pricing"

	"github.com/go-extras/cobraflags"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type tradeSeed struct {
	Slug        string
	Name        string
	Specialties []specialtySeed
	BasePrices  map[entities.PricingUnit]string
}

type specialtySeed struct {
	Slug string
	Name string
}

var catalog = []tradeSeed{
	{
		Slug: "carpentry",
		Name: "Carpentry",
		Specialties: []specialtySeed{
			{"finish", "Finish"},
			{"deck", "Deck"},
			{"stairs", "Stairs"},
			{"doors", "Doors"},
			{"windows", "Windows"},
			{"baseboard", "Baseboard"},
			{"framing", "Framing"},
			{"roofing", "Roofing"},
		},
		BasePrices: map[entities.PricingUnit]string{
			entities.UnitLinearFt: "2.50",
			entities.UnitEach:     "150.00",
			entities.UnitSquareFt: "12.00",
			entities.UnitHour:     "65.00",
		},
	},
	{
		Slug:        "painting",
		Name:        "Painting",
		Specialties: []specialtySeed{{"general", "General"}},
		BasePrices: map[entities.PricingUnit]string{
			entities.UnitSquareFt: "1.75",
			entities.UnitHour:     "50.00",
		},
	},
	{
		Slug:        "house_cleaning",
		Name:        "House Cleaning",
		Specialties: []specialtySeed{{"general", "General"}},
		BasePrices: map[entities.PricingUnit]string{
			entities.UnitHour: "40.00",
			entities.UnitJob:  "180.00",
		},
	},
}

const (
	regionCodeFlag = "region-code"
	regionNameFlag = "region-name"

	defaultRegionCode = "MA-RI"
	defaultRegionName = "Massachusetts & Rhode Island"
)

var catalogFlags = map[string]cobraflags.Flag{
	regionCodeFlag: &cobraflags.StringFlag{
		Name:  regionCodeFlag,
		Value: defaultRegionCode,
		Usage: "Code of the default pricing region",
	},
	regionNameFlag: &cobraflags.StringFlag{
		Name:  regionNameFlag,
		Value: defaultRegionName,
		Usage: "Display name of the default pricing region",
	},
}

func newCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Seed trades, specialties, the default region and its trade-wide pricing rules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, log, err := connect()
			if err != nil {
				return err
			}
			_, err = seedCatalog(cmd.Context(), repository.NewSeeder(db), repository.NewPricingRuleRepository(db), log,
				catalogFlags[regionCodeFlag].GetString(), catalogFlags[regionNameFlag].GetString())
			return err
		},
	}
	cobraflags.RegisterMap(cmd, catalogFlags)
	return cmd
}

// seededCatalog maps trade slugs to ids for the commands that build on it.
type seededCatalog struct {
	RegionID    uint
	Trades      map[string]uint
	Specialties map[string]map[string]uint
}

func seedCatalog(ctx context.Context, seeder *repository.Seeder, rules *repository.PricingRuleRepository, log *zap.Logger, regionCode, regionName string) (seededCatalog, error) {
	out := seededCatalog{Trades: map[string]uint{}, Specialties: map[string]map[string]uint{}}

	regionID, err := seeder.EnsureRegion(ctx, regionCode, regionName)
	if err != nil {
		return out, fmt.Errorf("region %s: %w", regionCode, err)
	}
	out.RegionID = regionID

	for _, t := range catalog {
		trade, err := seeder.EnsureTrade(ctx, t.Slug, t.Name)
		if err != nil {
			return out, fmt.Errorf("trade %s: %w", t.Slug, err)
		}
		out.Trades[t.Slug] = trade.ID
		out.Specialties[t.Slug] = map[string]uint{}

		for _, s := range t.Specialties {
			id, err := seeder.EnsureSpecialty(ctx, trade.ID, s.Slug, s.Name)
			if err != nil {
				return out, fmt.Errorf("specialty %s/%s: %w", t.Slug, s.Slug, err)
			}
			out.Specialties[t.Slug][s.Slug] = id
		}

		for _, rule := range tradeWideRules(t, regionID, trade.ID) {
			created, err := ensureTradeWideRule(ctx, rules, rule)
			if err != nil {
				return out, fmt.Errorf("rule %s/%s: %w", t.Slug, rule.Unit, err)
			}
			if created {
				log.Info("[seed][catalog] pricing rule created",
					zap.String("trade", t.Slug), zap.String("unit", string(rule.Unit)), zap.String("base_price", rule.BasePrice.String()))
			}
		}
	}
	log.Info("[seed][catalog] done", zap.Int("trades", len(out.Trades)), zap.Uint("region_id", regionID))
	return out, nil
}

// tradeWideRules builds one enabled rule per unit priced for the trade,
// using the default multiplier tables.
func tradeWideRules(t tradeSeed, regionID, tradeID uint) []entities.PricingRule {
	out := make([]entities.PricingRule, 0, len(t.BasePrices))
	for _, unit := range entities.PricingUnits {
		price, ok := t.BasePrices[unit]
		if !ok {
			continue
		}
		out = append(out, entities.PricingRule{
			RegionID:             regionID,
			TradeID:              tradeID,
			Unit:                 unit,
			BasePrice:            decimal.RequireFromString(price),
			AnchorMultiplier:     entities.DefaultAnchorMultiplier,
			MaterialMultiplier:   entities.DefaultMaterialMultipliers(),
			ComplexityMultiplier: entities.DefaultComplexityMultipliers(),
			Enabled:              true,
		})
	}
	return out
}

func ensureTradeWideRule(ctx context.Context, rules *repository.PricingRuleRepository, rule entities.PricingRule) (bool, error) {
	if err := pricing.ValidateRule(rule); err != nil {
		return false, err
	}
	existing, err := rules.ListCandidates(ctx, rule.RegionID, rule.TradeID, rule.Unit)
	if err != nil {
		return false, err
	}
	for _, r := range existing {
		if r.IsTradeWide() {
			return false, nil
		}
	}
	if _, err := rules.Create(ctx, rule); err != nil {
		return false, err
	}
	return true, nil
}
