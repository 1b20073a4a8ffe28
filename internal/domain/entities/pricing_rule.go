package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PricingUnit is the unit a service or pricing rule is quoted in.
type PricingUnit string

const (
	UnitEach     PricingUnit = "EA"
	UnitLinearFt PricingUnit = "LF"
	UnitSquareFt PricingUnit = "SF"
	UnitHour     PricingUnit = "HR"
	UnitJob      PricingUnit = "JOB"
)

var PricingUnits = []PricingUnit{UnitEach, UnitLinearFt, UnitSquareFt, UnitHour, UnitJob}

type MaterialTier string

const (
	MaterialBasic    MaterialTier = "basic"
	MaterialStandard MaterialTier = "standard"
	MaterialPremium  MaterialTier = "premium"
)

var MaterialTiers = []MaterialTier{MaterialBasic, MaterialStandard, MaterialPremium}

type ComplexityLevel string

const (
	ComplexityNormal ComplexityLevel = "normal"
	ComplexityHard   ComplexityLevel = "hard"
)

var ComplexityLevels = []ComplexityLevel{ComplexityNormal, ComplexityHard}

var (
	ErrInvalidUnit            = errors.New("invalid pricing unit")
	ErrInvalidMaterialTier    = errors.New("invalid material tier")
	ErrInvalidComplexityLevel = errors.New("invalid complexity level")
)

func ParsePricingUnit(s string) (PricingUnit, error) {
	u := PricingUnit(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range PricingUnits {
		if u == known {
			return u, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidUnit, s)
}

func ParseMaterialTier(s string) (MaterialTier, error) {
	t := MaterialTier(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range MaterialTiers {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMaterialTier, s)
}

func ParseComplexityLevel(s string) (ComplexityLevel, error) {
	l := ComplexityLevel(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range ComplexityLevels {
		if l == known {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidComplexityLevel, s)
}

// PricingRule is a base price for (region, trade, specialty, unit) plus
// the multiplier tables applied on top of it.
//
// A nil SpecialtyID marks the trade-wide fallback rule for the region,
// trade and unit. The key is unique per combination.
type PricingRule struct {
	ID                   uint                                `json:"id"`
	RegionID             uint                                `json:"regionId"`
	TradeID              uint                                `json:"tradeId"`
	SpecialtyID          *uint                               `json:"specialtyId"`
	Unit                 PricingUnit                         `json:"unit"`
	BasePrice            decimal.Decimal                     `json:"basePrice"`
	AnchorMultiplier     decimal.Decimal                     `json:"anchorMultiplier"`
	MaterialMultiplier   map[MaterialTier]decimal.Decimal    `json:"materialMultiplier"`
	ComplexityMultiplier map[ComplexityLevel]decimal.Decimal `json:"complexityMultiplier"`
	Enabled              bool                                `json:"enabled"`
	CreatedAt            time.Time                           `json:"createdAt"`
	UpdatedAt            time.Time                           `json:"updatedAt"`
}

// IsTradeWide reports whether r is the null-specialty fallback.
func (r PricingRule) IsTradeWide() bool {
	return r.SpecialtyID == nil
}

var DefaultAnchorMultiplier = decimal.RequireFromString("1.15")

func DefaultMaterialMultipliers() map[MaterialTier]decimal.Decimal {
	return map[MaterialTier]decimal.Decimal{
		MaterialBasic:    decimal.RequireFromString("1.0"),
		MaterialStandard: decimal.RequireFromString("1.15"),
		MaterialPremium:  decimal.RequireFromString("1.35"),
	}
}

func DefaultComplexityMultipliers() map[ComplexityLevel]decimal.Decimal {
	return map[ComplexityLevel]decimal.Decimal{
		ComplexityNormal: decimal.RequireFromString("1.0"),
		ComplexityHard:   decimal.RequireFromString("1.2"),
	}
}
