package usecase

import (
	"context"
	"errors"
	"field_estimator/internal/domain/entities"
	"field_estimator/internal/usecase/interfaces"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidSettings = errors.New("invalid settings")

var maxRate = decimal.NewFromInt(100)

// SettingsInput is a partial update of company settings. ClearRegion
// removes the region reference.
type SettingsInput struct {
	DefaultLanguage *string
	Theme           *string
	TaxRate         *decimal.Decimal
	OverheadRate    *decimal.Decimal
	ProfitRate      *decimal.Decimal
	RegionID        *uint
	ClearRegion     bool
}

type ISettingsUseCase interface {
	Get(ctx context.Context, p entities.Principal) (entities.CompanySettings, error)
	Save(ctx context.Context, p entities.Principal, in SettingsInput) (entities.CompanySettings, error)
}

type SettingsUseCase struct {
	repo   interfaces.ICompanySettingsRepository
	access access
	audit  auditTrail
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ICompanySettingsRepository, members interfaces.ICompanyUserRepository, audit interfaces.IAuditLogRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo, access: access{members: members}, audit: auditTrail{repo: audit}}
}

func (u *SettingsUseCase) Get(ctx context.Context, p entities.Principal) (entities.CompanySettings, error) {
	if _, err := u.access.membership(ctx, p); err != nil {
		return entities.CompanySettings{}, err
	}
	return u.current(ctx, p.CompanyID)
}

func (u *SettingsUseCase) Save(ctx context.Context, p entities.Principal, in SettingsInput) (entities.CompanySettings, error) {
	if _, err := u.access.require(ctx, p, func(perms entities.Permissions) bool {
		return perms.CanManageUsers || perms.CanEditPrices
	}); err != nil {
		return entities.CompanySettings{}, err
	}

	s, err := u.current(ctx, p.CompanyID)
	if err != nil {
		return entities.CompanySettings{}, err
	}

	if in.DefaultLanguage != nil {
		lang, err := entities.ParseLanguage(*in.DefaultLanguage)
		if err != nil {
			return entities.CompanySettings{}, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
		}
		s.DefaultLanguage = lang
	}
	if in.Theme != nil {
		theme := strings.TrimSpace(*in.Theme)
		if theme == "" {
			theme = entities.DefaultTheme
		}
		s.Theme = theme
	}
	for _, r := range []struct {
		name string
		src  *decimal.Decimal
		dst  *decimal.Decimal
	}{
		{"taxRate", in.TaxRate, &s.TaxRate},
		{"overheadRate", in.OverheadRate, &s.OverheadRate},
		{"profitRate", in.ProfitRate, &s.ProfitRate},
	} {
		if r.src == nil {
			continue
		}
		if r.src.IsNegative() || r.src.GreaterThan(maxRate) {
			return entities.CompanySettings{}, fmt.Errorf("%w: %s must be between 0 and 100", ErrInvalidSettings, r.name)
		}
		*r.dst = *r.src
	}
	switch {
	case in.ClearRegion:
		s.RegionID = nil
	case in.RegionID != nil:
		s.RegionID = in.RegionID
	}
	s.UpdatedAt = time.Now().UTC()

	saved, err := u.repo.Upsert(ctx, s)
	if err != nil {
		return entities.CompanySettings{}, err
	}
	u.audit.record(ctx, p, entities.AuditSettingsUpdated, nil, map[string]string{
		"taxRate":      saved.TaxRate.String(),
		"overheadRate": saved.OverheadRate.String(),
		"profitRate":   saved.ProfitRate.String(),
	})
	return saved, nil
}

func (u *SettingsUseCase) current(ctx context.Context, companyID uint) (entities.CompanySettings, error) {
	s, err := u.repo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return entities.CompanySettings{}, err
	}
	if s.CompanyID == 0 {
		return entities.DefaultCompanySettings(companyID), nil
	}
	return s, nil
}
