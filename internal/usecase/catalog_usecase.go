package usecase

import (
	"context"
	"field_estimator/internal/domain/entities"
	"field_estimator/internal/usecase/interfaces"
	"slices"
)

// ICatalogUseCase lists trades, specialties, regions and company services.
// Members without canViewAllSpecialties only see services of their own
// specialties.
type ICatalogUseCase interface {
	ListTrades(ctx context.Context) ([]entities.Trade, error)
	ListSpecialties(ctx context.Context, tradeID *uint) ([]entities.Specialty, error)
	ListRegions(ctx context.Context) ([]entities.Region, error)
	ListServices(ctx context.Context, p entities.Principal, filter interfaces.ServiceFilter) ([]entities.Service, error)
}

type CatalogUseCase struct {
	repo    interfaces.ICatalogRepository
	members interfaces.ICompanyUserRepository
	access  access
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository, members interfaces.ICompanyUserRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, members: members, access: access{members: members}}
}

func (u *CatalogUseCase) ListTrades(ctx context.Context) ([]entities.Trade, error) {
	return u.repo.ListTrades(ctx)
}

func (u *CatalogUseCase) ListSpecialties(ctx context.Context, tradeID *uint) ([]entities.Specialty, error) {
	return u.repo.ListSpecialties(ctx, tradeID)
}

func (u *CatalogUseCase) ListRegions(ctx context.Context) ([]entities.Region, error) {
	return u.repo.ListRegions(ctx)
}

func (u *CatalogUseCase) ListServices(ctx context.Context, p entities.Principal, filter interfaces.ServiceFilter) ([]entities.Service, error) {
	m, err := u.access.membership(ctx, p)
	if err != nil {
		return nil, err
	}
	services, err := u.repo.ListServices(ctx, p.CompanyID, filter)
	if err != nil {
		return nil, err
	}
	if m.Permissions.CanViewAllSpecialties {
		return services, nil
	}

	allowed, err := u.members.ListSpecialtyIDs(ctx, p.CompanyID, p.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Service, 0, len(services))
	for _, s := range services {
		if slices.Contains(allowed, s.SpecialtyID) {
			out = append(out, s)
		}
	}
	return out, nil
}
