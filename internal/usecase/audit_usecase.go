package usecase

import (
	"context"
	"field_estimator/internal/domain/entities"
	"field_estimator/internal/usecase/interfaces"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

type IAuditUseCase interface {
	List(ctx context.Context, p entities.Principal, limit int) ([]entities.AuditLogEntry, error)
}

type AuditUseCase struct {
	repo   interfaces.IAuditLogRepository
	access access
}

var _ IAuditUseCase = (*AuditUseCase)(nil)

func NewAuditUseCase(repo interfaces.IAuditLogRepository, members interfaces.ICompanyUserRepository) *AuditUseCase {
	return &AuditUseCase{repo: repo, access: access{members: members}}
}

// List returns the newest audit entries of the caller's company. It needs canAudit.
func (u *AuditUseCase) List(ctx context.Context, p entities.Principal, limit int) ([]entities.AuditLogEntry, error) {
	if _, err := u.access.require(ctx, p, canAudit); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}
	return u.repo.ListByCompany(ctx, p.CompanyID, int32(limit))
}
