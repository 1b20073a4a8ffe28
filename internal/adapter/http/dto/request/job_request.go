package request

import (
	"strings"
	"time"

	"field_estimator/internal/domain/entities"
	"field_estimator/internal/usecase"

	"github.com/shopspring/decimal"
)

// JobItemRequest prices one line. unitPrice is a manual override; when it
// is absent and both materialTier and complexityLevel are set the line is
// priced by the company's pricing rules, otherwise by the catalog.
type JobItemRequest struct {
	ServiceID       uint             `json:"serviceId" binding:"required"`
	Qty             decimal.Decimal  `json:"qty"`
	UnitPrice       *decimal.Decimal `json:"unitPrice"`
	MaterialTier    string           `json:"materialTier" binding:"omitempty,material_tier"`
	ComplexityLevel string           `json:"complexityLevel" binding:"omitempty,complexity_level"`
}

type CreateJobRequest struct {
	TradeID     uint             `json:"tradeId" binding:"required"`
	SpecialtyID *uint            `json:"specialtyId"`
	ClientName  string           `json:"clientName" binding:"required"`
	ClientPhone string           `json:"clientPhone"`
	ClientEmail string           `json:"clientEmail" binding:"omitempty,email"`
	Address     string           `json:"address"`
	ScheduledAt *time.Time       `json:"scheduledAt"`
	DoorCode    string           `json:"doorCode"`
	Notes       string           `json:"notes"`
	Items       []JobItemRequest `json:"items" binding:"omitempty,dive"`
}

// UpdateJobRequest is a partial update. Sending items (even an empty
// list) replaces every line of the job.
type UpdateJobRequest struct {
	SpecialtyID   *uint            `json:"specialtyId"`
	ClientName    *string          `json:"clientName"`
	ClientPhone   *string          `json:"clientPhone"`
	ClientEmail   *string          `json:"clientEmail" binding:"omitempty,email"`
	Address       *string          `json:"address"`
	AddressLocked *bool            `json:"addressLocked"`
	ScheduledAt   *time.Time       `json:"scheduledAt"`
	DoorCode      *string          `json:"doorCode"`
	Notes         *string          `json:"notes"`
	Items         []JobItemRequest `json:"items" binding:"omitempty,dive"`
}

type JobStatusRequest struct {
	Status string `json:"status" binding:"required,job_status"`
}

type PermissionsRequest struct {
	CanManageUsers        bool `json:"canManageUsers"`
	CanViewAllSpecialties bool `json:"canViewAllSpecialties"`
	CanViewPrices         bool `json:"canViewPrices"`
	CanEditPrices         bool `json:"canEditPrices"`
	CanAudit              bool `json:"canAudit"`
}

func (r PermissionsRequest) ToEntity() entities.Permissions {
	return entities.Permissions{
		CanManageUsers:        r.CanManageUsers,
		CanViewAllSpecialties: r.CanViewAllSpecialties,
		CanViewPrices:         r.CanViewPrices,
		CanEditPrices:         r.CanEditPrices,
		CanAudit:              r.CanAudit,
	}
}

func (r JobItemRequest) ToInput() usecase.JobItemInput {
	return usecase.JobItemInput{
		ServiceID:       r.ServiceID,
		Qty:             r.Qty,
		UnitPrice:       r.UnitPrice,
		MaterialTier:    entities.MaterialTier(strings.ToLower(strings.TrimSpace(r.MaterialTier))),
		ComplexityLevel: entities.ComplexityLevel(strings.ToLower(strings.TrimSpace(r.ComplexityLevel))),
	}
}

func toItemInputs(items []JobItemRequest) []usecase.JobItemInput {
	out := make([]usecase.JobItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, it.ToInput())
	}
	return out
}

func (r CreateJobRequest) ToInput() usecase.JobInput {
	return usecase.JobInput{
		TradeID:     r.TradeID,
		SpecialtyID: r.SpecialtyID,
		ClientName:  strings.TrimSpace(r.ClientName),
		ClientPhone: strings.TrimSpace(r.ClientPhone),
		ClientEmail: strings.TrimSpace(r.ClientEmail),
		Address:     strings.TrimSpace(r.Address),
		ScheduledAt: r.ScheduledAt,
		DoorCode:    r.DoorCode,
		Notes:       r.Notes,
		Items:       toItemInputs(r.Items),
	}
}

func (r UpdateJobRequest) ToPatch() usecase.JobPatch {
	patch := usecase.JobPatch{
		SpecialtyID:   r.SpecialtyID,
		ClientName:    r.ClientName,
		ClientPhone:   r.ClientPhone,
		ClientEmail:   r.ClientEmail,
		Address:       r.Address,
		AddressLocked: r.AddressLocked,
		ScheduledAt:   r.ScheduledAt,
		DoorCode:      r.DoorCode,
		Notes:         r.Notes,
	}
	if r.Items != nil {
		patch.ReplaceItems = true
		patch.Items = toItemInputs(r.Items)
	}
	return patch
}
