package interfaces

import (
	"context"
	"field_estimator/internal/domain/entities"
)

// IAuditLogRepository abstracts DynamoDB persistence for audit entries.
// ListByCompany returns the newest entries first.
type IAuditLogRepository interface {
	Append(ctx context.Context, e entities.AuditLogEntry) (entities.AuditLogEntry, error)
	ListByCompany(ctx context.Context, companyID uint, limit int32) ([]entities.AuditLogEntry, error)
}
