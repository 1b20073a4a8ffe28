package repository

import (
	"context"

	"field_estimator/internal/domain/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seeder writes reference and demo rows. Every method is idempotent so the
// seed commands can be rerun against a live database.
type Seeder struct {
	db *gorm.DB
}

func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

func (s *Seeder) EnsureTrade(ctx context.Context, slug, name string) (entities.Trade, error) {
	m := tradeModel{}
	err := s.db.WithContext(ctx).
		Where(tradeModel{Slug: slug}).
		Attrs(tradeModel{Name: name}).
		FirstOrCreate(&m).Error
	if err != nil {
		return entities.Trade{}, err
	}
	return entities.Trade{ID: m.ID, Slug: m.Slug, Name: m.Name}, nil
}

func (s *Seeder) EnsureSpecialty(ctx context.Context, tradeID uint, slug, name string) (uint, error) {
	m := specialtyModel{}
	err := s.db.WithContext(ctx).
		Where(specialtyModel{TradeID: tradeID, Slug: slug}).
		Attrs(specialtyModel{Name: name}).
		FirstOrCreate(&m).Error
	return m.ID, err
}

func (s *Seeder) EnsureRegion(ctx context.Context, code, name string) (uint, error) {
	m := regionModel{}
	err := s.db.WithContext(ctx).
		Where(regionModel{Code: code}).
		Attrs(regionModel{Name: name}).
		FirstOrCreate(&m).Error
	return m.ID, err
}

// EnsureUser creates the user or resets its password hash and role.
func (s *Seeder) EnsureUser(ctx context.Context, username, passwordHash, role string) (uint, error) {
	m := userModel{}
	err := s.db.WithContext(ctx).
		Where(userModel{Username: username}).
		Assign(userModel{PasswordHash: passwordHash, Role: role}).
		FirstOrCreate(&m).Error
	return m.ID, err
}

func (s *Seeder) EnsureCompany(ctx context.Context, name string, tradeID, ownerUserID uint) (uint, error) {
	m := companyModel{}
	err := s.db.WithContext(ctx).
		Where(companyModel{Name: name}).
		Attrs(companyModel{TradeID: tradeID, OwnerUserID: ownerUserID}).
		FirstOrCreate(&m).Error
	return m.ID, err
}

// EnsureMember activates the membership with the given role. A new
// membership starts from the role's permission template.
func (s *Seeder) EnsureMember(ctx context.Context, companyID, userID uint, role entities.Role) error {
	m := companyUserModel{}
	return s.db.WithContext(ctx).
		Omit(clause.Associations).
		Where(companyUserModel{CompanyID: companyID, UserID: userID}).
		Attrs(companyUserModel{Permissions: entities.TemplateForRole(role).Encode()}).
		Assign(map[string]any{"role": string(role), "is_active": true}).
		FirstOrCreate(&m).Error
}

func (s *Seeder) EnsureUserSpecialty(ctx context.Context, companyID, userID, specialtyID uint) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&userSpecialtyModel{CompanyID: companyID, UserID: userID, SpecialtyID: specialtyID}).Error
}
