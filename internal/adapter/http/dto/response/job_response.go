package response

import (
	"time"

	"field_estimator/internal/domain/entities"
	"field_estimator/internal/domain/pricing"
	"field_estimator/internal/infrastructure/locale"
	"field_estimator/internal/usecase"

	"github.com/shopspring/decimal"
)

type JobItemResponse struct {
	ID          uint    `json:"id"`
	ServiceID   uint    `json:"serviceId"`
	Qty         string  `json:"qty"`
	PricingUnit string  `json:"pricingUnit"`
	UnitPrice   *string `json:"unitPrice,omitempty"`
	LineTotal   *string `json:"lineTotal,omitempty"`
}

type TotalsResponse struct {
	Subtotal    string `json:"subtotal"`
	Overhead    string `json:"overhead"`
	Profit      string `json:"profit"`
	TaxableBase string `json:"taxableBase"`
	Tax         string `json:"tax"`
	Total       string `json:"total"`
}

type JobResponse struct {
	ID                uint                 `json:"id"`
	CompanyID         uint                 `json:"companyId"`
	TradeID           uint                 `json:"tradeId"`
	SpecialtyID       *uint                `json:"specialtyId"`
	CreatedBy         uint                 `json:"createdBy"`
	Status            string               `json:"status"`
	ClientName        string               `json:"clientName"`
	ClientPhone       string               `json:"clientPhone"`
	ClientEmail       string               `json:"clientEmail"`
	Address           string               `json:"address"`
	AddressLocked     bool                 `json:"addressLocked"`
	AddressReleasedAt *time.Time           `json:"addressReleasedAt"`
	ScheduledAt       *time.Time           `json:"scheduledAt"`
	DoorCode          string               `json:"doorCode"`
	Notes             string               `json:"notes"`
	Items             []JobItemResponse    `json:"items"`
	CreatedAt         time.Time            `json:"createdAt"`
	UpdatedAt         time.Time            `json:"updatedAt"`
	Totals            *TotalsResponse      `json:"totals,omitempty"`
	Permissions       entities.Permissions `json:"permissions"`
	PricesVisible     bool                 `json:"pricesVisible"`
}

// JobSummaryResponse is a list row. It carries no prices.
type JobSummaryResponse struct {
	ID          uint       `json:"id"`
	TradeID     uint       `json:"tradeId"`
	SpecialtyID *uint      `json:"specialtyId"`
	CreatedBy   uint       `json:"createdBy"`
	Status      string     `json:"status"`
	ClientName  string     `json:"clientName"`
	Address     string     `json:"address"`
	ScheduledAt *time.Time `json:"scheduledAt"`
	ItemCount   int        `json:"itemCount"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type JobListResponse struct {
	Items []JobSummaryResponse `json:"items"`
	Stats entities.JobStats    `json:"stats"`
}

// JobTotalsResponse is the authoritative totals of a job plus the same
// amounts formatted for display in Language.
type JobTotalsResponse struct {
	JobID    uint           `json:"jobId"`
	Language string         `json:"language"`
	Currency string         `json:"currency"`
	Totals   TotalsResponse `json:"totals"`
	Display  TotalsResponse `json:"display"`
}

type JobAssignmentResponse struct {
	JobID       uint                 `json:"jobId"`
	UserID      uint                 `json:"userId"`
	Permissions entities.Permissions `json:"permissions"`
	AssignedAt  time.Time            `json:"assignedAt"`
}

func FromJobDetail(d usecase.JobDetail) JobResponse {
	j := d.Job
	res := JobResponse{
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
		Items:             make([]JobItemResponse, 0, len(j.Items)),
		CreatedAt:         j.CreatedAt,
		UpdatedAt:         j.UpdatedAt,
		Permissions:       d.Permissions,
		PricesVisible:     d.PricesVisible,
	}
	for _, it := range j.Items {
		res.Items = append(res.Items, JobItemResponse{
			ID:          it.ID,
			ServiceID:   it.ServiceID,
			Qty:         it.Qty.String(),
			PricingUnit: string(it.PricingUnit),
			UnitPrice:   optionalMoney(it.UnitPrice, d.PricesVisible),
			LineTotal:   optionalMoney(it.LineTotal, d.PricesVisible),
		})
	}
	if d.PricesVisible {
		t := FromTotals(d.Totals)
		res.Totals = &t
	}
	return res
}

func FromTotals(t pricing.JobTotals) TotalsResponse {
	return TotalsResponse{
		Subtotal:    money(t.Subtotal),
		Overhead:    money(t.Overhead),
		Profit:      money(t.Profit),
		TaxableBase: money(t.TaxableBase),
		Tax:         money(t.Tax),
		Total:       money(t.Total),
	}
}

func FromJobSummary(j entities.Job) JobSummaryResponse {
	return JobSummaryResponse{
		ID:          j.ID,
		TradeID:     j.TradeID,
		SpecialtyID: j.SpecialtyID,
		CreatedBy:   j.CreatedBy,
		Status:      string(j.Status),
		ClientName:  j.ClientName,
		Address:     j.Address,
		ScheduledAt: j.ScheduledAt,
		ItemCount:   len(j.Items),
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

func FromJobList(l usecase.JobList) JobListResponse {
	items := make([]JobSummaryResponse, 0, len(l.Items))
	for _, j := range l.Items {
		items = append(items, FromJobSummary(j))
	}
	return JobListResponse{Items: items, Stats: l.Stats}
}

func FromJobTotalsView(v usecase.JobTotalsView, currency string) JobTotalsResponse {
	t := v.Totals
	format := func(amount decimal.Decimal) string {
		return locale.FormatMoney(v.Language, pricing.RoundMoney(amount), currency)
	}
	return JobTotalsResponse{
		JobID:    v.JobID,
		Language: string(v.Language),
		Currency: currency,
		Totals:   FromTotals(t),
		Display: TotalsResponse{
			Subtotal:    format(t.Subtotal),
			Overhead:    format(t.Overhead),
			Profit:      format(t.Profit),
			TaxableBase: format(t.TaxableBase),
			Tax:         format(t.Tax),
			Total:       format(t.Total),
		},
	}
}

func FromJobAssignment(a entities.JobAssignment) JobAssignmentResponse {
	return JobAssignmentResponse{
		JobID:       a.JobID,
		UserID:      a.UserID,
		Permissions: a.Permissions,
		AssignedAt:  a.AssignedAt,
	}
}
