package interfaces

import (
	"context"
	"field_estimator/internal/domain/entities"
)

type IEstimatePhotoRepository interface {
	Create(ctx context.Context, p entities.EstimatePhoto) (entities.EstimatePhoto, error)
	ListByJob(ctx context.Context, companyID, jobID uint) ([]entities.EstimatePhoto, error)
}
