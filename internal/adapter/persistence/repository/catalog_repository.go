package repository

import (
	"context"

	"field_estimator/internal/domain/entities"
	"field_estimator/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type CatalogRepository struct {
	db *gorm.DB
}

var _ interfaces.ICatalogRepository = (*CatalogRepository)(nil)

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) ListTrades(ctx context.Context) ([]entities.Trade, error) {
	var ms []tradeModel
	if err := r.db.WithContext(ctx).Order("id").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Trade, 0, len(ms))
	for _, m := range ms {
		out = append(out, entities.Trade{ID: m.ID, Slug: m.Slug, Name: m.Name})
	}
	return out, nil
}

func (r *CatalogRepository) ListSpecialties(ctx context.Context, tradeID *uint) ([]entities.Specialty, error) {
	q := r.db.WithContext(ctx).Order("id")
	if tradeID != nil {
		q = q.Where("trade_id = ?", *tradeID)
	}
	var ms []specialtyModel
	if err := q.Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Specialty, 0, len(ms))
	for _, m := range ms {
		out = append(out, entities.Specialty{ID: m.ID, TradeID: m.TradeID, Slug: m.Slug, Name: m.Name})
	}
	return out, nil
}

func (r *CatalogRepository) ListRegions(ctx context.Context) ([]entities.Region, error) {
	var ms []regionModel
	if err := r.db.WithContext(ctx).Order("id").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Region, 0, len(ms))
	for _, m := range ms {
		out = append(out, entities.Region{ID: m.ID, Code: m.Code, Name: m.Name})
	}
	return out, nil
}

// ListServices returns the company's services. A trade filter is applied
// through the service's specialty.
func (r *CatalogRepository) ListServices(ctx context.Context, companyID uint, filter interfaces.ServiceFilter) ([]entities.Service, error) {
	q := r.db.WithContext(ctx).
		Model(&serviceModel{}).
		Where("services.company_id = ?", companyID)
	if filter.SpecialtyID != nil {
		q = q.Where("services.specialty_id = ?", *filter.SpecialtyID)
	}
	if filter.TradeID != nil {
		q = q.Joins("JOIN specialties ON specialties.id = services.specialty_id").
			Where("specialties.trade_id = ?", *filter.TradeID)
	}

	var ms []serviceModel
	if err := q.Order("services.category, services.name").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Service, 0, len(ms))
	for _, m := range ms {
		out = append(out, fromServiceModel(m))
	}
	return out, nil
}

func (r *CatalogRepository) GetService(ctx context.Context, companyID, id uint) (entities.Service, error) {
	var m serviceModel
	err := r.db.WithContext(ctx).Where("company_id = ? AND id = ?", companyID, id).First(&m).Error
	if isNotFound(err) {
		return entities.Service{}, nil
	}
	if err != nil {
		return entities.Service{}, err
	}
	return fromServiceModel(m), nil
}
