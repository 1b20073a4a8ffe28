package repository

import (
	"context"

	"field_estimator/internal/domain/entities"
	"field_estimator/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

var _ interfaces.IUserRepository = (*UserRepository)(nil)

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	m := toUserModel(u)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.User{}, translateError(err)
	}
	return fromUserModel(m), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (entities.User, error) {
	var m userModel
	err := r.db.WithContext(ctx).First(&m, id).Error
	if isNotFound(err) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, err
	}
	return fromUserModel(m), nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (entities.User, error) {
	var m userModel
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&m).Error
	if isNotFound(err) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, err
	}
	return fromUserModel(m), nil
}

type CompanyRepository struct {
	db *gorm.DB
}

var _ interfaces.ICompanyRepository = (*CompanyRepository)(nil)

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, c entities.Company) (entities.Company, error) {
	m := companyModel{Name: c.Name, TradeID: c.TradeID, OwnerUserID: c.OwnerUserID}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Company{}, translateError(err)
	}
	return fromCompanyModel(m), nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id uint) (entities.Company, error) {
	var m companyModel
	err := r.db.WithContext(ctx).First(&m, id).Error
	if isNotFound(err) {
		return entities.Company{}, nil
	}
	if err != nil {
		return entities.Company{}, err
	}
	return fromCompanyModel(m), nil
}

// CompanyUserRepository stores memberships. Reads join the user row so
// the username travels with the membership.
type CompanyUserRepository struct {
	db *gorm.DB
}

var _ interfaces.ICompanyUserRepository = (*CompanyUserRepository)(nil)

func NewCompanyUserRepository(db *gorm.DB) *CompanyUserRepository {
	return &CompanyUserRepository{db: db}
}

func (r *CompanyUserRepository) Create(ctx context.Context, member entities.CompanyUser) (entities.CompanyUser, error) {
	m := toCompanyUserModel(member)
	m.ID = 0
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return entities.CompanyUser{}, translateError(err)
	}
	return r.Get(ctx, m.CompanyID, m.UserID)
}

func (r *CompanyUserRepository) Get(ctx context.Context, companyID, userID uint) (entities.CompanyUser, error) {
	return r.first(ctx, "company_id = ? AND user_id = ?", companyID, userID)
}

// GetActiveByUserID returns the user's oldest active membership.
func (r *CompanyUserRepository) GetActiveByUserID(ctx context.Context, userID uint) (entities.CompanyUser, error) {
	return r.first(ctx, "user_id = ? AND is_active = ?", userID, true)
}

func (r *CompanyUserRepository) first(ctx context.Context, query string, args ...any) (entities.CompanyUser, error) {
	var m companyUserModel
	err := r.db.WithContext(ctx).
		Preload("User").
		Where(query, args...).
		Order("id").
		First(&m).Error
	if isNotFound(err) {
		return entities.CompanyUser{}, nil
	}
	if err != nil {
		return entities.CompanyUser{}, err
	}
	return fromCompanyUserModel(m)
}

func (r *CompanyUserRepository) ListByCompany(ctx context.Context, companyID uint) ([]entities.CompanyUser, error) {
	var ms []companyUserModel
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("company_id = ?", companyID).
		Order("id").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	out := make([]entities.CompanyUser, 0, len(ms))
	for _, m := range ms {
		member, err := fromCompanyUserModel(m)
		if err != nil {
			return nil, err
		}
		out = append(out, member)
	}
	return out, nil
}

func (r *CompanyUserRepository) UpdatePermissions(ctx context.Context, companyID, userID uint, p entities.Permissions) (entities.CompanyUser, error) {
	return r.update(ctx, companyID, userID, map[string]any{"permissions": p.Encode()})
}

func (r *CompanyUserRepository) SetActive(ctx context.Context, companyID, userID uint, active bool) (entities.CompanyUser, error) {
	return r.update(ctx, companyID, userID, map[string]any{"is_active": active})
}

func (r *CompanyUserRepository) update(ctx context.Context, companyID, userID uint, fields map[string]any) (entities.CompanyUser, error) {
	res := r.db.WithContext(ctx).
		Model(&companyUserModel{}).
		Where("company_id = ? AND user_id = ?", companyID, userID).
		Updates(fields)
	if res.Error != nil {
		return entities.CompanyUser{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.CompanyUser{}, nil
	}
	return r.Get(ctx, companyID, userID)
}

func (r *CompanyUserRepository) ListSpecialtyIDs(ctx context.Context, companyID, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&userSpecialtyModel{}).
		Where("company_id = ? AND user_id = ?", companyID, userID).
		Order("specialty_id").
		Pluck("specialty_id", &ids).Error
	return ids, err
}

type CompanySettingsRepository struct {
	db *gorm.DB
}

var _ interfaces.ICompanySettingsRepository = (*CompanySettingsRepository)(nil)

func NewCompanySettingsRepository(db *gorm.DB) *CompanySettingsRepository {
	return &CompanySettingsRepository{db: db}
}

func (r *CompanySettingsRepository) GetByCompanyID(ctx context.Context, companyID uint) (entities.CompanySettings, error) {
	var m companySettingsModel
	err := r.db.WithContext(ctx).Where("company_id = ?", companyID).First(&m).Error
	if isNotFound(err) {
		return entities.CompanySettings{}, nil
	}
	if err != nil {
		return entities.CompanySettings{}, err
	}
	return fromSettingsModel(m), nil
}

// Upsert writes every column, so a nil RegionID clears the region.
func (r *CompanySettingsRepository) Upsert(ctx context.Context, s entities.CompanySettings) (entities.CompanySettings, error) {
	m := toSettingsModel(s)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "company_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"default_language", "theme", "tax_rate", "overhead_rate", "profit_rate", "region_id", "updated_at"}),
	}).Create(&m).Error
	if err != nil {
		return entities.CompanySettings{}, err
	}
	return r.GetByCompanyID(ctx, s.CompanyID)
}
