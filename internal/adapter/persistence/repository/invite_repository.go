package repository

import (
	"context"
	"errors"
	"time"

	"field_estimator/internal/domain/entities"
	"field_estimator/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// errInviteAlreadyUsed rolls back a redeem that lost the race.
var errInviteAlreadyUsed = errors.New("invite already used")

type InviteRepository struct {
	db *gorm.DB
}

var _ interfaces.IInviteRepository = (*InviteRepository)(nil)

func NewInviteRepository(db *gorm.DB) *InviteRepository {
	return &InviteRepository{db: db}
}

func (r *InviteRepository) Create(ctx context.Context, t entities.InviteToken) (entities.InviteToken, error) {
	m := inviteTokenModel{
		Token:     t.Token,
		CompanyID: t.CompanyID,
		CreatedBy: t.CreatedBy,
		Role:      string(t.Role),
		Email:     t.Email,
		ExpiresAt: t.ExpiresAt,
		CreatedAt: t.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.InviteToken{}, translateError(err)
	}
	return fromInviteModel(m), nil
}

func (r *InviteRepository) GetByToken(ctx context.Context, token string) (entities.InviteToken, error) {
	var m inviteTokenModel
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&m).Error
	if isNotFound(err) {
		return entities.InviteToken{}, nil
	}
	if err != nil {
		return entities.InviteToken{}, err
	}
	return fromInviteModel(m), nil
}

func (r *InviteRepository) ListByCompany(ctx context.Context, companyID uint) ([]entities.InviteToken, error) {
	var ms []inviteTokenModel
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC, id DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.InviteToken, 0, len(ms))
	for _, m := range ms {
		out = append(out, fromInviteModel(m))
	}
	return out, nil
}

// Redeem claims the invite with a conditional update before creating the
// user and membership, so two concurrent redeems cannot both succeed.
func (r *InviteRepository) Redeem(ctx context.Context, inviteID uint, u entities.User, member entities.CompanyUser, at time.Time) (entities.User, entities.CompanyUser, error) {
	var (
		userOut   entities.User
		memberOut entities.CompanyUser
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		claim := tx.Model(&inviteTokenModel{}).
			Where("id = ? AND used_at IS NULL", inviteID).
			Update("used_at", at)
		if claim.Error != nil {
			return claim.Error
		}
		if claim.RowsAffected == 0 {
			return errInviteAlreadyUsed
		}

		um := toUserModel(u)
		um.ID = 0
		if err := tx.Create(&um).Error; err != nil {
			return err
		}

		member.UserID = um.ID
		cm := toCompanyUserModel(member)
		cm.ID = 0
		if err := tx.Omit(clause.Associations).Create(&cm).Error; err != nil {
			return err
		}
		if err := tx.Model(&inviteTokenModel{}).Where("id = ?", inviteID).Update("used_by", um.ID).Error; err != nil {
			return err
		}

		userOut = fromUserModel(um)
		cm.User = um
		var err error
		memberOut, err = fromCompanyUserModel(cm)
		return err
	})
	if errors.Is(err, errInviteAlreadyUsed) {
		return entities.User{}, entities.CompanyUser{}, nil
	}
	if err != nil {
		return entities.User{}, entities.CompanyUser{}, translateError(err)
	}
	return userOut, memberOut, nil
}
