package usecase

import (
	"context"
	"errors"
	"field_estimator/internal/domain/entities"
	"field_estimator/internal/infrastructure/logger"
	"field_estimator/internal/usecase/interfaces"
	"fmt"

	"go.uber.org/zap"
)

var (
	ErrMemberNotFound  = errors.New("member not found")
	ErrOwnerImmutable  = errors.New("the company owner cannot be modified")
	ErrSelfDeactivate  = errors.New("members cannot deactivate themselves")
	ErrSelfPermissions = errors.New("members cannot change their own permissions")
)

// IMemberUseCase administers company memberships. Every operation needs
// canManageUsers.
type IMemberUseCase interface {
	List(ctx context.Context, p entities.Principal) ([]entities.CompanyUser, error)
	UpdatePermissions(ctx context.Context, p entities.Principal, userID uint, perms entities.Permissions) (entities.CompanyUser, error)
	SetActive(ctx context.Context, p entities.Principal, userID uint, active bool) (entities.CompanyUser, error)
}

type MemberUseCase struct {
	members interfaces.ICompanyUserRepository
	access  access
	audit   auditTrail
}

var _ IMemberUseCase = (*MemberUseCase)(nil)

func NewMemberUseCase(members interfaces.ICompanyUserRepository, audit interfaces.IAuditLogRepository) *MemberUseCase {
	return &MemberUseCase{members: members, access: access{members: members}, audit: auditTrail{repo: audit}}
}

func (u *MemberUseCase) List(ctx context.Context, p entities.Principal) ([]entities.CompanyUser, error) {
	if _, err := u.access.require(ctx, p, canManageUsers); err != nil {
		return nil, err
	}
	return u.members.ListByCompany(ctx, p.CompanyID)
}

// UpdatePermissions replaces a member's company grant. The grant may not
// exceed the caller's own, so the company grant stays a ceiling.
func (u *MemberUseCase) UpdatePermissions(ctx context.Context, p entities.Principal, userID uint, perms entities.Permissions) (entities.CompanyUser, error) {
	if userID == p.UserID {
		return entities.CompanyUser{}, ErrSelfPermissions
	}
	caller, _, err := u.target(ctx, p, userID)
	if err != nil {
		return entities.CompanyUser{}, err
	}
	if entities.CapPermissions(perms, caller.Permissions) != perms {
		logger.FromContext(ctx).Warn("[member][usecase] grant exceeds caller permissions",
			zap.Uint("company_id", p.CompanyID), zap.Uint("actor_id", p.UserID), zap.Uint("user_id", userID))
		return entities.CompanyUser{}, ErrForbidden
	}

	updated, err := u.members.UpdatePermissions(ctx, p.CompanyID, userID, perms)
	if err != nil {
		return entities.CompanyUser{}, err
	}
	if updated.ID == 0 {
		return entities.CompanyUser{}, ErrMemberNotFound
	}
	u.audit.record(ctx, p, entities.AuditMemberPermissions, nil, map[string]string{
		"user_id":     fmt.Sprint(userID),
		"permissions": perms.Encode(),
	})
	logger.FromContext(ctx).Info("[member][usecase] permissions updated",
		zap.Uint("company_id", p.CompanyID), zap.Uint("user_id", userID))
	return updated, nil
}

func (u *MemberUseCase) SetActive(ctx context.Context, p entities.Principal, userID uint, active bool) (entities.CompanyUser, error) {
	if !active && userID == p.UserID {
		return entities.CompanyUser{}, ErrSelfDeactivate
	}
	if _, _, err := u.target(ctx, p, userID); err != nil {
		return entities.CompanyUser{}, err
	}

	updated, err := u.members.SetActive(ctx, p.CompanyID, userID, active)
	if err != nil {
		return entities.CompanyUser{}, err
	}
	if updated.ID == 0 {
		return entities.CompanyUser{}, ErrMemberNotFound
	}
	u.audit.record(ctx, p, entities.AuditMemberActivation, nil, map[string]string{
		"user_id": fmt.Sprint(userID),
		"active":  fmt.Sprint(active),
	})
	return updated, nil
}

// target checks the caller may manage users and that userID is a
// non-owner member of the caller's company. It returns both memberships.
func (u *MemberUseCase) target(ctx context.Context, p entities.Principal, userID uint) (caller, member entities.CompanyUser, err error) {
	caller, err = u.access.require(ctx, p, canManageUsers)
	if err != nil {
		return entities.CompanyUser{}, entities.CompanyUser{}, err
	}
	member, err = u.members.Get(ctx, p.CompanyID, userID)
	if err != nil {
		return entities.CompanyUser{}, entities.CompanyUser{}, err
	}
	if member.ID == 0 {
		return entities.CompanyUser{}, entities.CompanyUser{}, ErrMemberNotFound
	}
	if member.Role == entities.RoleOwner {
		return entities.CompanyUser{}, entities.CompanyUser{}, ErrOwnerImmutable
	}
	return caller, member, nil
}
