package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID            uint      `json:"id"`
	Username      string    `json:"username"`
	PasswordHash  string    `json:"-"`
	Role          string    `json:"role"`
	GlobalRole    string    `json:"globalRole"`
	IsGlobalAdmin bool      `json:"isGlobalAdmin"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Company struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	TradeID     uint      `json:"tradeId"`
	OwnerUserID uint      `json:"ownerUserId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CompanyUser is a membership. Its permissions are the ceiling for every
// job-level grant the member receives inside the company.
type CompanyUser struct {
	ID          uint        `json:"id"`
	CompanyID   uint        `json:"companyId"`
	UserID      uint        `json:"userId"`
	Username    string      `json:"username,omitempty"`
	Role        Role        `json:"role"`
	IsActive    bool        `json:"isActive"`
	Permissions Permissions `json:"permissions"`
}

type Language string

const (
	LanguageEN Language = "en"
	LanguagePT Language = "pt"
	LanguageES Language = "es"
)

var ErrInvalidLanguage = errors.New("invalid language")

func ParseLanguage(s string) (Language, error) {
	switch l := Language(strings.ToLower(strings.TrimSpace(s))); l {
	case LanguageEN, LanguagePT, LanguageES:
		return l, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLanguage, s)
}

const DefaultTheme = "premium_dark"

// CompanySettings holds the rates applied to every job total of a company
// and the region used for rule-based pricing.
type CompanySettings struct {
	CompanyID       uint            `json:"companyId"`
	DefaultLanguage Language        `json:"defaultLanguage"`
	Theme           string          `json:"theme"`
	TaxRate         decimal.Decimal `json:"taxRate"`
	OverheadRate    decimal.Decimal `json:"overheadRate"`
	ProfitRate      decimal.Decimal `json:"profitRate"`
	RegionID        *uint           `json:"regionId"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// DefaultCompanySettings is what a company without a settings row gets.
func DefaultCompanySettings(companyID uint) CompanySettings {
	return CompanySettings{
		CompanyID:       companyID,
		DefaultLanguage: LanguageEN,
		Theme:           DefaultTheme,
		TaxRate:         decimal.Zero,
		OverheadRate:    decimal.Zero,
		ProfitRate:      decimal.Zero,
	}
}
