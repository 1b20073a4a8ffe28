package request

import (
	"encoding/json"
	"strings"

	"field_estimator/internal/domain/entities"
	"field_estimator/internal/usecase"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateInviteRequest struct {
	Role        string `json:"role" binding:"required,role"`
	ExpiresDays int    `json:"expiresDays"`
	Email       string `json:"email" binding:"omitempty,email"`
}

type AcceptInviteRequest struct {
	Token    string `json:"token" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type MemberActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

type PhotoRequest struct {
	URL   string `json:"url" binding:"required"`
	Notes string `json:"notes"`
	JobID *uint  `json:"jobId"`
}

// JobPaymentCreateRequest carries the provider payload as-is. Amount and
// reference fields in it are overwritten with the job total.
type JobPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}

func (r CreateInviteRequest) ToInput() usecase.InviteInput {
	role, _ := entities.ParseRole(r.Role)
	return usecase.InviteInput{
		Role:        role,
		ExpiresDays: r.ExpiresDays,
		Email:       strings.TrimSpace(r.Email),
	}
}

func (r AcceptInviteRequest) ToInput() usecase.AcceptInviteInput {
	return usecase.AcceptInviteInput{
		Token:    strings.TrimSpace(r.Token),
		Username: r.Username,
		Password: r.Password,
	}
}

func (r PhotoRequest) ToInput() usecase.PhotoInput {
	return usecase.PhotoInput{URL: r.URL, Notes: r.Notes, JobID: r.JobID}
}
