package usecase

import (
	"context"
	"errors"
	"field_estimator/internal/domain/entities"
	"field_estimator/internal/infrastructure/logger"
	"field_estimator/internal/usecase/interfaces"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrForbidden      = errors.New("forbidden")
	ErrNotCompanyUser = errors.New("user is not an active member of the company")
)

// access resolves what a principal may do inside its company.
type access struct {
	members     interfaces.ICompanyUserRepository
	assignments interfaces.IJobAssignmentRepository
}

// membership loads the caller's active membership. Support admins without
// a membership act with the support template.
func (a access) membership(ctx context.Context, p entities.Principal) (entities.CompanyUser, error) {
	m, err := a.members.Get(ctx, p.CompanyID, p.UserID)
	if err != nil {
		return entities.CompanyUser{}, err
	}
	if m.ID == 0 {
		if p.IsSupportAdmin() {
			return entities.CompanyUser{
				CompanyID:   p.CompanyID,
				UserID:      p.UserID,
				Username:    p.Username,
				Role:        entities.RoleSupport,
				IsActive:    true,
				Permissions: entities.SupportPermissions,
			}, nil
		}
		return entities.CompanyUser{}, ErrNotCompanyUser
	}
	if !m.IsActive {
		return entities.CompanyUser{}, ErrNotCompanyUser
	}
	return m, nil
}

// require returns the membership when allowed(perms) holds, ErrForbidden otherwise.
func (a access) require(ctx context.Context, p entities.Principal, allowed func(entities.Permissions) bool) (entities.CompanyUser, error) {
	m, err := a.membership(ctx, p)
	if err != nil {
		return entities.CompanyUser{}, err
	}
	if !allowed(m.Permissions) {
		return entities.CompanyUser{}, ErrForbidden
	}
	return m, nil
}

// jobPermissions returns the caller's effective permissions on a job: the
// assignment grant (or the role template when unassigned) capped by the
// company membership.
func (a access) jobPermissions(ctx context.Context, m entities.CompanyUser, jobID uint) (entities.Permissions, error) {
	jobPerms := entities.TemplateForRole(m.Role)
	if a.assignments != nil {
		assignment, err := a.assignments.Get(ctx, jobID, m.UserID)
		if err != nil {
			return entities.Permissions{}, err
		}
		if assignment.ID != 0 {
			jobPerms = assignment.Permissions
		}
	}
	return entities.CapPermissions(jobPerms, m.Permissions), nil
}

func canManageUsers(p entities.Permissions) bool { return p.CanManageUsers }
func canViewPrices(p entities.Permissions) bool  { return p.CanViewPrices }
func canEditPrices(p entities.Permissions) bool  { return p.CanEditPrices }
func canAudit(p entities.Permissions) bool       { return p.CanAudit }

// auditTrail appends audit entries. Failures are logged and never fail
// the request that produced them.
type auditTrail struct {
	repo interfaces.IAuditLogRepository
}

func (t auditTrail) record(ctx context.Context, p entities.Principal, action string, jobID *uint, meta map[string]string) {
	if t.repo == nil {
		return
	}
	entry := entities.AuditLogEntry{
		ID:          uuid.NewString(),
		CompanyID:   p.CompanyID,
		ActorUserID: p.UserID,
		Action:      action,
		JobID:       jobID,
		Meta:        meta,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := t.repo.Append(ctx, entry); err != nil {
		logger.FromContext(ctx).Warn("[audit][usecase] append failed",
			zap.String("action", action), zap.Uint("company_id", p.CompanyID), zap.Error(err))
	}
}

func uintRef(v uint) *uint { return &v }
