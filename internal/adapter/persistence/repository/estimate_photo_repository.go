package repository

import (
	"context"

	"field_estimator/internal/domain/entities"
	"field_estimator/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type EstimatePhotoRepository struct {
	db *gorm.DB
}

var _ interfaces.IEstimatePhotoRepository = (*EstimatePhotoRepository)(nil)

func NewEstimatePhotoRepository(db *gorm.DB) *EstimatePhotoRepository {
	return &EstimatePhotoRepository{db: db}
}

func (r *EstimatePhotoRepository) Create(ctx context.Context, p entities.EstimatePhoto) (entities.EstimatePhoto, error) {
	m := estimatePhotoModel{
		JobID:     p.JobID,
		CompanyID: p.CompanyID,
		URL:       p.URL,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.EstimatePhoto{}, err
	}
	return fromPhotoModel(m), nil
}

func (r *EstimatePhotoRepository) ListByJob(ctx context.Context, companyID, jobID uint) ([]entities.EstimatePhoto, error) {
	var ms []estimatePhotoModel
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND job_id = ?", companyID, jobID).
		Order("created_at, id").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.EstimatePhoto, 0, len(ms))
	for _, m := range ms {
		out = append(out, fromPhotoModel(m))
	}
	return out, nil
}
