package entities

import "github.com/shopspring/decimal"

type Trade struct {
	ID   uint   `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// Specialty is a sub-category of a trade, e.g. "framing" under "carpentry".
type Specialty struct {
	ID      uint   `json:"id"`
	TradeID uint   `json:"tradeId"`
	Slug    string `json:"slug"`
	Name    string `json:"name"`
}

type Region struct {
	ID   uint   `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// Service is a company catalog entry. UnitPrice is the manual catalog
// price used when no rule-based price is requested.
type Service struct {
	ID          uint            `json:"id"`
	CompanyID   uint            `json:"companyId"`
	SpecialtyID uint            `json:"specialtyId"`
	Category    string          `json:"category"`
	Name        string          `json:"name"`
	PricingUnit PricingUnit     `json:"pricingUnit"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Description string          `json:"description"`
	Active      bool            `json:"active"`
}

var (
	TradeSlugs              = []string{"carpentry", "painting", "tile", "house_cleaning"}
	CarpentrySpecialtySlugs = []string{"finish", "deck", "stairs", "doors", "windows", "baseboard", "flooring", "framing", "roofing"}
)
