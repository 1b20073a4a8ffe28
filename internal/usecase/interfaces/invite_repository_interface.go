package interfaces

import (
	"context"
	"field_estimator/internal/domain/entities"
	"time"
)

// IInviteRepository stores invite tokens.
//
// Redeem creates the user and the membership and marks the invite used in
// a single transaction. It fails with ErrDuplicateKey when the username is
// taken and returns zero values when the invite was redeemed concurrently.
type IInviteRepository interface {
	Create(ctx context.Context, t entities.InviteToken) (entities.InviteToken, error)
	GetByToken(ctx context.Context, token string) (entities.InviteToken, error)
	ListByCompany(ctx context.Context, companyID uint) ([]entities.InviteToken, error)
	Redeem(ctx context.Context, inviteID uint, u entities.User, member entities.CompanyUser, at time.Time) (entities.User, entities.CompanyUser, error)
}
