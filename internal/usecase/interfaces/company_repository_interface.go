package interfaces

import (
	"context"
	"field_estimator/internal/domain/entities"
)

// Zero-value results mean "not found" throughout.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id uint) (entities.User, error)
	GetByUsername(ctx context.Context, username string) (entities.User, error)
}

type ICompanyRepository interface {
	Create(ctx context.Context, c entities.Company) (entities.Company, error)
	GetByID(ctx context.Context, id uint) (entities.Company, error)
}

// ICompanyUserRepository stores memberships and the specialties a member
// is allowed to see.
type ICompanyUserRepository interface {
	Create(ctx context.Context, member entities.CompanyUser) (entities.CompanyUser, error)
	Get(ctx context.Context, companyID, userID uint) (entities.CompanyUser, error)
	GetActiveByUserID(ctx context.Context, userID uint) (entities.CompanyUser, error)
	ListByCompany(ctx context.Context, companyID uint) ([]entities.CompanyUser, error)
	UpdatePermissions(ctx context.Context, companyID, userID uint, p entities.Permissions) (entities.CompanyUser, error)
	SetActive(ctx context.Context, companyID, userID uint, active bool) (entities.CompanyUser, error)
	ListSpecialtyIDs(ctx context.Context, companyID, userID uint) ([]uint, error)
}

// ICompanySettingsRepository returns a zero value (CompanyID == 0) when
// the company has no settings row yet.
type ICompanySettingsRepository interface {
	GetByCompanyID(ctx context.Context, companyID uint) (entities.CompanySettings, error)
	Upsert(ctx context.Context, s entities.CompanySettings) (entities.CompanySettings, error)
}
