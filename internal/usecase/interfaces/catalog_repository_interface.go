package interfaces

import (
	"context"
	"field_estimator/internal/domain/entities"
)

type ServiceFilter struct {
	TradeID     *uint
	SpecialtyID *uint
}

type ICatalogRepository interface {
	ListTrades(ctx context.Context) ([]entities.Trade, error)
	ListSpecialties(ctx context.Context, tradeID *uint) ([]entities.Specialty, error)
	ListRegions(ctx context.Context) ([]entities.Region, error)
	ListServices(ctx context.Context, companyID uint, filter ServiceFilter) ([]entities.Service, error)
	GetService(ctx context.Context, companyID, id uint) (entities.Service, error)
}
