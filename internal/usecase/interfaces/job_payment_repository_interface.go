package interfaces

import (
	"context"
	"field_estimator/internal/domain/entities"
)

// IJobPaymentRepository abstracts DynamoDB persistence for JobPayment.

type IJobPaymentRepository interface {
	Create(ctx context.Context, p entities.JobPayment) (entities.JobPayment, error)
	GetByID(ctx context.Context, id string) (entities.JobPayment, error)
	ListByJob(ctx context.Context, companyID, jobID uint) ([]entities.JobPayment, error)
}
