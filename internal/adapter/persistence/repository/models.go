package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"field_estimator/internal/domain/entities"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type userModel struct {
	ID            uint      `gorm:"primaryKey"`
	Username      string    `gorm:"uniqueIndex;not null;size:120"`
	PasswordHash  string    `gorm:"not null;column:password"`
	Role          string    `gorm:"not null;default:user;size:40"`
	GlobalRole    string    `gorm:"not null;default:user;size:40"`
	IsGlobalAdmin bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (userModel) TableName() string { return "users" }

type companyModel struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"not null"`
	TradeID     uint      `gorm:"not null;index"`
	OwnerUserID uint      `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (companyModel) TableName() string { return "companies" }

// companyUserModel is a membership, unique per (company_id, user_id).
type companyUserModel struct {
	ID          uint   `gorm:"primaryKey"`
	CompanyID   uint   `gorm:"not null;uniqueIndex:idx_company_user"`
	UserID      uint   `gorm:"not null;uniqueIndex:idx_company_user;index"`
	Role        string `gorm:"not null;size:20"`
	IsActive    bool   `gorm:"not null;default:true"`
	Permissions string `gorm:"type:text;not null;default:''"`

	User userModel `gorm:"foreignKey:UserID"`
}

func (companyUserModel) TableName() string { return "company_users" }

type userSpecialtyModel struct {
	CompanyID   uint `gorm:"primaryKey"`
	UserID      uint `gorm:"primaryKey"`
	SpecialtyID uint `gorm:"primaryKey"`
}

func (userSpecialtyModel) TableName() string { return "user_specialties" }

type tradeModel struct {
	ID   uint   `gorm:"primaryKey"`
	Slug string `gorm:"uniqueIndex;not null;size:60"`
	Name string `gorm:"not null"`
}

func (tradeModel) TableName() string { return "trades" }

type specialtyModel struct {
	ID      uint   `gorm:"primaryKey"`
	TradeID uint   `gorm:"not null;uniqueIndex:idx_trade_specialty"`
	Slug    string `gorm:"not null;size:60;uniqueIndex:idx_trade_specialty"`
	Name    string `gorm:"not null"`
}

func (specialtyModel) TableName() string { return "specialties" }

type regionModel struct {
	ID   uint   `gorm:"primaryKey"`
	Code string `gorm:"uniqueIndex;not null;size:40"`
	Name string `gorm:"not null"`
}

func (regionModel) TableName() string { return "regions" }

type serviceModel struct {
	ID          uint            `gorm:"primaryKey"`
	CompanyID   uint            `gorm:"not null;index"`
	SpecialtyID uint            `gorm:"not null;index"`
	Category    string          `gorm:"not null;default:''"`
	Name        string          `gorm:"not null"`
	PricingUnit string          `gorm:"not null;size:8"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Description string          `gorm:"type:text"`
	Active      bool            `gorm:"not null;default:true"`

	Specialty specialtyModel `gorm:"foreignKey:SpecialtyID"`
}

func (serviceModel) TableName() string { return "services" }

type jobModel struct {
	ID                uint   `gorm:"primaryKey"`
	CompanyID         uint   `gorm:"not null;index"`
	TradeID           uint   `gorm:"not null"`
	SpecialtyID       *uint  `gorm:"index"`
	CreatedBy         uint   `gorm:"not null"`
	Status            string `gorm:"not null;size:20;default:DRAFT"`
	ClientName        string `gorm:"not null"`
	ClientPhone       string
	ClientEmail       string
	Address           string `gorm:"type:text"`
	AddressLocked     bool   `gorm:"not null;default:true"`
	AddressReleasedAt *time.Time
	ScheduledAt       *time.Time
	DoorCode          string
	Notes             string    `gorm:"type:text"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`

	Items []jobItemModel `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
}

func (jobModel) TableName() string { return "jobs" }

type jobItemModel struct {
	ID          uint            `gorm:"primaryKey"`
	JobID       uint            `gorm:"not null;index"`
	ServiceID   uint            `gorm:"not null"`
	Qty         decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	LineTotal   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	PricingUnit string          `gorm:"not null;size:8"`
}

func (jobItemModel) TableName() string { return "job_items" }

type jobAssignmentModel struct {
	ID          uint      `gorm:"primaryKey"`
	JobID       uint      `gorm:"not null;uniqueIndex:idx_job_assignment"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_job_assignment"`
	Permissions string    `gorm:"type:text;not null;default:''"`
	AssignedAt  time.Time `gorm:"not null"`
}

func (jobAssignmentModel) TableName() string { return "job_assignments" }

type companySettingsModel struct {
	CompanyID       uint            `gorm:"primaryKey;autoIncrement:false"`
	DefaultLanguage string          `gorm:"not null;size:2;default:en"`
	Theme           string          `gorm:"not null;default:premium_dark"`
	TaxRate         decimal.Decimal `gorm:"type:numeric(6,3);not null;default:0"`
	OverheadRate    decimal.Decimal `gorm:"type:numeric(6,3);not null;default:0"`
	ProfitRate      decimal.Decimal `gorm:"type:numeric(6,3);not null;default:0"`
	RegionID        *uint
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (companySettingsModel) TableName() string { return "company_settings" }

// pricingRuleModel keys are unique per (region, trade, specialty, unit).
// Postgres treats NULLs as distinct, so the trade-wide rule is guarded by
// a separate partial index created in Migrate.
type pricingRuleModel struct {
	ID                   uint            `gorm:"primaryKey"`
	RegionID             uint            `gorm:"not null;uniqueIndex:idx_pricing_rule_key"`
	TradeID              uint            `gorm:"not null;uniqueIndex:idx_pricing_rule_key"`
	SpecialtyID          *uint           `gorm:"uniqueIndex:idx_pricing_rule_key"`
	Unit                 string          `gorm:"not null;size:8;uniqueIndex:idx_pricing_rule_key"`
	BasePrice            decimal.Decimal `gorm:"type:numeric(12,4);not null"`
	AnchorMultiplier     decimal.Decimal `gorm:"type:numeric(8,4);not null;default:1.15"`
	MaterialMultiplier   datatypes.JSON  `gorm:"type:jsonb;not null"`
	ComplexityMultiplier datatypes.JSON  `gorm:"type:jsonb;not null"`
	Enabled              bool            `gorm:"not null;default:true"`
	CreatedAt            time.Time       `gorm:"autoCreateTime"`
	UpdatedAt            time.Time       `gorm:"autoUpdateTime"`
}

func (pricingRuleModel) TableName() string { return "pricing_rules" }

type estimatePhotoModel struct {
	ID        uint      `gorm:"primaryKey"`
	JobID     *uint     `gorm:"index"`
	CompanyID uint      `gorm:"not null;index"`
	URL       string    `gorm:"type:text;not null"`
	Notes     string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (estimatePhotoModel) TableName() string { return "estimate_photos" }

type inviteTokenModel struct {
	ID        uint   `gorm:"primaryKey"`
	Token     string `gorm:"uniqueIndex;not null;size:64"`
	CompanyID uint   `gorm:"not null;index"`
	CreatedBy uint   `gorm:"not null"`
	Role      string `gorm:"not null;size:20"`
	Email     string
	ExpiresAt time.Time `gorm:"not null"`
	UsedAt    *time.Time
	UsedBy    *uint
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (inviteTokenModel) TableName() string { return "invite_tokens" }

// Models lists every table managed by Migrate, in dependency order.
func Models() []any {
	return []any{
		&userModel{},
		&tradeModel{},
		&specialtyModel{},
		&regionModel{},
		&companyModel{},
		&companyUserModel{},
		&userSpecialtyModel{},
		&serviceModel{},
		&jobModel{},
		&jobItemModel{},
		&jobAssignmentModel{},
		&companySettingsModel{},
		&pricingRuleModel{},
		&estimatePhotoModel{},
		&inviteTokenModel{},
	}
}

func toUserModel(u entities.User) userModel {
	return userModel{
		ID:            u.ID,
		Username:      u.Username,
		PasswordHash:  u.PasswordHash,
		Role:          u.Role,
		GlobalRole:    u.GlobalRole,
		IsGlobalAdmin: u.IsGlobalAdmin,
		CreatedAt:     u.CreatedAt,
	}
}

func fromUserModel(m userModel) entities.User {
	return entities.User{
		ID:            m.ID,
		Username:      m.Username,
		PasswordHash:  m.PasswordHash,
		Role:          m.Role,
		GlobalRole:    m.GlobalRole,
		IsGlobalAdmin: m.IsGlobalAdmin,
		CreatedAt:     m.CreatedAt,
	}
}

func fromCompanyModel(m companyModel) entities.Company {
	return entities.Company{
		ID:          m.ID,
		Name:        m.Name,
		TradeID:     m.TradeID,
		OwnerUserID: m.OwnerUserID,
		CreatedAt:   m.CreatedAt,
	}
}

func toCompanyUserModel(c entities.CompanyUser) companyUserModel {
	return companyUserModel{
		ID:          c.ID,
		CompanyID:   c.CompanyID,
		UserID:      c.UserID,
		Role:        string(c.Role),
		IsActive:    c.IsActive,
		Permissions: c.Permissions.Encode(),
	}
}

func fromCompanyUserModel(m companyUserModel) (entities.CompanyUser, error) {
	perms, err := entities.ParsePermissions(m.Permissions)
	if err != nil {
		return entities.CompanyUser{}, fmt.Errorf("company user %d/%d: %w", m.CompanyID, m.UserID, err)
	}
	return entities.CompanyUser{
		ID:          m.ID,
		CompanyID:   m.CompanyID,
		UserID:      m.UserID,
		Username:    m.User.Username,
		Role:        entities.Role(m.Role),
		IsActive:    m.IsActive,
		Permissions: perms,
	}, nil
}

func fromServiceModel(m serviceModel) entities.Service {
	return entities.Service{
		ID:          m.ID,
		CompanyID:   m.CompanyID,
		SpecialtyID: m.SpecialtyID,
		Category:    m.Category,
		Name:        m.Name,
		PricingUnit: entities.PricingUnit(m.PricingUnit),
		UnitPrice:   m.UnitPrice,
		Description: m.Description,
		Active:      m.Active,
	}
}

func toJobModel(j entities.Job) jobModel {
	m := jobModel{
		ID:                j.ID,
		CompanyID:         j.CompanyID,
		TradeID:           j.TradeID,
		SpecialtyID:       j.SpecialtyID,
		CreatedBy:         j.CreatedBy,
		Status:            string(j.Status),
		ClientName:        j.ClientName,
		ClientPhone:       j.ClientPhone,
		ClientEmail:       j.ClientEmail,
		Address:           j.Address,
		AddressLocked:     j.AddressLocked,
		AddressReleasedAt: j.AddressReleasedAt,
		ScheduledAt:       j.ScheduledAt,
		DoorCode:          j.DoorCode,
		Notes:             j.Notes,
		CreatedAt:         j.CreatedAt,
		UpdatedAt:         j.UpdatedAt,
	}
	m.Items = toJobItemModels(j.ID, j.Items)
	return m
}

func toJobItemModels(jobID uint, items []entities.JobItem) []jobItemModel {
	out := make([]jobItemModel, 0, len(items))
	for _, it := range items {
		out = append(out, jobItemModel{
			JobID:       jobID,
			ServiceID:   it.ServiceID,
			Qty:         it.Qty,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal,
			PricingUnit: string(it.PricingUnit),
		})
	}
	return out
}

func fromJobModel(m jobModel) entities.Job {
	j := entities.Job{
		ID:                m.ID,
		CompanyID:         m.CompanyID,
		TradeID:           m.TradeID,
		SpecialtyID:       m.SpecialtyID,
		CreatedBy:         m.CreatedBy,
		Status:            entities.JobStatus(m.Status),
		ClientName:        m.ClientName,
		ClientPhone:       m.ClientPhone,
		ClientEmail:       m.ClientEmail,
		Address:           m.Address,
		AddressLocked:     m.AddressLocked,
		AddressReleasedAt: m.AddressReleasedAt,
		ScheduledAt:       m.ScheduledAt,
		DoorCode:          m.DoorCode,
		Notes:             m.Notes,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
	if len(m.Items) > 0 {
		j.Items = make([]entities.JobItem, 0, len(m.Items))
		for _, it := range m.Items {
			j.Items = append(j.Items, entities.JobItem{
				ID:          it.ID,
				JobID:       it.JobID,
				ServiceID:   it.ServiceID,
				Qty:         it.Qty,
				UnitPrice:   it.UnitPrice,
				LineTotal:   it.LineTotal,
				PricingUnit: entities.PricingUnit(it.PricingUnit),
			})
		}
	}
	return j
}

func fromJobAssignmentModel(m jobAssignmentModel) (entities.JobAssignment, error) {
	perms, err := entities.ParsePermissions(m.Permissions)
	if err != nil {
		return entities.JobAssignment{}, fmt.Errorf("job assignment %d/%d: %w", m.JobID, m.UserID, err)
	}
	return entities.JobAssignment{
		ID:          m.ID,
		JobID:       m.JobID,
		UserID:      m.UserID,
		Permissions: perms,
		AssignedAt:  m.AssignedAt,
	}, nil
}

func toSettingsModel(s entities.CompanySettings) companySettingsModel {
	return companySettingsModel{
		CompanyID:       s.CompanyID,
		DefaultLanguage: string(s.DefaultLanguage),
		Theme:           s.Theme,
		TaxRate:         s.TaxRate,
		OverheadRate:    s.OverheadRate,
		ProfitRate:      s.ProfitRate,
		RegionID:        s.RegionID,
	}
}

func fromSettingsModel(m companySettingsModel) entities.CompanySettings {
	return entities.CompanySettings{
		CompanyID:       m.CompanyID,
		DefaultLanguage: entities.Language(m.DefaultLanguage),
		Theme:           m.Theme,
		TaxRate:         m.TaxRate,
		OverheadRate:    m.OverheadRate,
		ProfitRate:      m.ProfitRate,
		RegionID:        m.RegionID,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toPricingRuleModel(r entities.PricingRule) (pricingRuleModel, error) {
	material, err := json.Marshal(r.MaterialMultiplier)
	if err != nil {
		return pricingRuleModel{}, err
	}
	complexity, err := json.Marshal(r.ComplexityMultiplier)
	if err != nil {
		return pricingRuleModel{}, err
	}
	return pricingRuleModel{
		ID:                   r.ID,
		RegionID:             r.RegionID,
		TradeID:              r.TradeID,
		SpecialtyID:          r.SpecialtyID,
		Unit:                 string(r.Unit),
		BasePrice:            r.BasePrice,
		AnchorMultiplier:     r.AnchorMultiplier,
		MaterialMultiplier:   datatypes.JSON(material),
		ComplexityMultiplier: datatypes.JSON(complexity),
		Enabled:              r.Enabled,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}, nil
}

// fromPricingRuleModel never fails on a bad multiplier table. Unknown
// tier or level keys are kept, and an unreadable table decodes as empty,
// so the pricing core reports a ConfigurationError for this rule only
// when it is selected. Sibling rules in the same candidate list stay
// usable.
func fromPricingRuleModel(m pricingRuleModel) entities.PricingRule {
	var rawMaterial, rawComplexity map[string]decimal.Decimal
	if err := json.Unmarshal(m.MaterialMultiplier, &rawMaterial); err != nil {
		rawMaterial = nil
	}
	if err := json.Unmarshal(m.ComplexityMultiplier, &rawComplexity); err != nil {
		rawComplexity = nil
	}

	material := make(map[entities.MaterialTier]decimal.Decimal, len(rawMaterial))
	for k, v := range rawMaterial {
		material[entities.MaterialTier(k)] = v
	}
	complexity := make(map[entities.ComplexityLevel]decimal.Decimal, len(rawComplexity))
	for k, v := range rawComplexity {
		complexity[entities.ComplexityLevel(k)] = v
	}

	return entities.PricingRule{
		ID:                   m.ID,
		RegionID:             m.RegionID,
		TradeID:              m.TradeID,
		SpecialtyID:          m.SpecialtyID,
		Unit:                 entities.PricingUnit(m.Unit),
		BasePrice:            m.BasePrice,
		AnchorMultiplier:     m.AnchorMultiplier,
		MaterialMultiplier:   material,
		ComplexityMultiplier: complexity,
		Enabled:              m.Enabled,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

func fromPricingRuleModels(ms []pricingRuleModel) []entities.PricingRule {
	out := make([]entities.PricingRule, 0, len(ms))
	for _, m := range ms {
		out = append(out, fromPricingRuleModel(m))
	}
	return out
}

func fromPhotoModel(m estimatePhotoModel) entities.EstimatePhoto {
	return entities.EstimatePhoto{
		ID:        m.ID,
		JobID:     m.JobID,
		CompanyID: m.CompanyID,
		URL:       m.URL,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
	}
}

func fromInviteModel(m inviteTokenModel) entities.InviteToken {
	return entities.InviteToken{
		ID:        m.ID,
		Token:     m.Token,
		CompanyID: m.CompanyID,
		CreatedBy: m.CreatedBy,
		Role:      entities.Role(m.Role),
		Email:     m.Email,
		ExpiresAt: m.ExpiresAt,
		UsedAt:    m.UsedAt,
		UsedBy:    m.UsedBy,
		CreatedAt: m.CreatedAt,
	}
}
