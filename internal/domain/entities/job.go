package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// JobStatus is the lifecycle of a job:
// DRAFT -> SENT -> APPROVED -> IN_PROGRESS -> DONE.
type JobStatus string

const (
	JobStatusDraft      JobStatus = "DRAFT"
	JobStatusSent       JobStatus = "SENT"
	JobStatusApproved   JobStatus = "APPROVED"
	JobStatusInProgress JobStatus = "IN_PROGRESS"
	JobStatusDone       JobStatus = "DONE"
)

var JobStatuses = []JobStatus{JobStatusDraft, JobStatusSent, JobStatusApproved, JobStatusInProgress, JobStatusDone}

var (
	ErrInvalidJobStatus     = errors.New("invalid job status")
	ErrInvalidJobTransition = errors.New("invalid job status transition")
)

func ParseJobStatus(s string) (JobStatus, error) {
	st := JobStatus(strings.ToUpper(strings.TrimSpace(s)))
	if st.rank() < 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidJobStatus, s)
	}
	return st, nil
}

func (s JobStatus) rank() int {
	for i, known := range JobStatuses {
		if s == known {
			return i
		}
	}
	return -1
}

// CanTransitionTo reports whether a job may move from s to next.
// Moves are forward-only; skipping states is allowed, staying put is a no-op.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	from, to := s.rank(), next.rank()
	if from < 0 || to < 0 {
		return false
	}
	return to >= from
}

// IsBillable reports whether a payment may be taken for a job in this status.
func (s JobStatus) IsBillable() bool {
	return s == JobStatusApproved || s == JobStatusInProgress || s == JobStatusDone
}

// Job is an estimate/work order owned by a company.
type Job struct {
	ID                uint       `json:"id"`
	CompanyID         uint       `json:"companyId"`
	TradeID           uint       `json:"tradeId"`
	SpecialtyID       *uint      `json:"specialtyId"`
	CreatedBy         uint       `json:"createdBy"`
	Status            JobStatus  `json:"status"`
	ClientName        string     `json:"clientName"`
	ClientPhone       string     `json:"clientPhone"`
	ClientEmail       string     `json:"clientEmail"`
	Address           string     `json:"address"`
	AddressLocked     bool       `json:"addressLocked"`
	AddressReleasedAt *time.Time `json:"addressReleasedAt"`
	ScheduledAt       *time.Time `json:"scheduledAt"`
	DoorCode          string     `json:"doorCode"`
	Notes             string     `json:"notes"`
	Items             []JobItem  `json:"items"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// JobItem is one priced line of a job. UnitPrice is the snapshot taken
// when the item was added and is never re-derived from the catalog.
type JobItem struct {
	ID          uint            `json:"id"`
	JobID       uint            `json:"jobId"`
	ServiceID   uint            `json:"serviceId"`
	Qty         decimal.Decimal `json:"qty"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
	PricingUnit PricingUnit     `json:"pricingUnit"`
}

// NewJobItem builds an item whose line total is qty x unitPrice.
func NewJobItem(serviceID uint, qty, unitPrice decimal.Decimal, unit PricingUnit) JobItem {
	return JobItem{
		ServiceID:   serviceID,
		Qty:         qty,
		UnitPrice:   unitPrice,
		LineTotal:   qty.Mul(unitPrice),
		PricingUnit: unit,
	}
}

// JobStats counts a company's jobs per status.
type JobStats struct {
	Total      int `json:"total"`
	Drafts     int `json:"drafts"`
	Sent       int `json:"sent"`
	Approved   int `json:"approved"`
	InProgress int `json:"inProgress"`
	Done       int `json:"done"`
}

func NewJobStats(jobs []Job) JobStats {
	stats := JobStats{Total: len(jobs)}
	for _, j := range jobs {
		switch j.Status {
		case JobStatusDraft:
			stats.Drafts++
		case JobStatusSent:
			stats.Sent++
		case JobStatusApproved:
			stats.Approved++
		case JobStatusInProgress:
			stats.InProgress++
		case JobStatusDone:
			stats.Done++
		}
	}
	return stats
}

// JobAssignment grants a member job-level permissions. The effective
// permissions are always capped by the member's company permissions.
type JobAssignment struct {
	ID          uint        `json:"id"`
	JobID       uint        `json:"jobId"`
	UserID      uint        `json:"userId"`
	Permissions Permissions `json:"permissions"`
	AssignedAt  time.Time   `json:"assignedAt"`
}
