package response

import (
	"time"

	"field_estimator/internal/domain/entities"
	"field_estimator/internal/usecase"
)

type UserResponse struct {
	ID            uint   `json:"id"`
	Username      string `json:"username"`
	GlobalRole    string `json:"globalRole,omitempty"`
	IsGlobalAdmin bool   `json:"isGlobalAdmin"`
}

type MemberResponse struct {
	UserID      uint                 `json:"userId"`
	CompanyID   uint                 `json:"companyId"`
	Username    string               `json:"username"`
	Role        string               `json:"role"`
	IsActive    bool                 `json:"isActive"`
	Permissions entities.Permissions `json:"permissions"`
}

type LoginResponse struct {
	Token      string         `json:"token"`
	ExpiresAt  time.Time      `json:"expiresAt"`
	User       UserResponse   `json:"user"`
	Membership MemberResponse `json:"membership"`
}

type MeResponse struct {
	User       UserResponse   `json:"user"`
	Membership MemberResponse `json:"membership"`
}

type InviteResponse struct {
	ID        uint       `json:"id"`
	Token     string     `json:"token"`
	Role      string     `json:"role"`
	Email     string     `json:"email,omitempty"`
	ExpiresAt time.Time  `json:"expiresAt"`
	UsedAt    *time.Time `json:"usedAt"`
	UsedBy    *uint      `json:"usedBy"`
	CreatedAt time.Time  `json:"createdAt"`
	URL       string     `json:"url,omitempty"`
	EmailSent bool       `json:"emailSent"`
}

type PhotoResponse struct {
	ID        uint      `json:"id"`
	JobID     *uint     `json:"jobId"`
	URL       string    `json:"url"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Username:      u.Username,
		GlobalRole:    u.GlobalRole,
		IsGlobalAdmin: u.IsGlobalAdmin,
	}
}

func FromMember(m entities.CompanyUser) MemberResponse {
	return MemberResponse{
		UserID:      m.UserID,
		CompanyID:   m.CompanyID,
		Username:    m.Username,
		Role:        string(m.Role),
		IsActive:    m.IsActive,
		Permissions: m.Permissions,
	}
}

func FromMembers(ms []entities.CompanyUser) []MemberResponse {
	out := make([]MemberResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMember(m))
	}
	return out
}

func FromLogin(r usecase.LoginResult) LoginResponse {
	return LoginResponse{
		Token:      r.Token,
		ExpiresAt:  r.ExpiresAt,
		User:       FromUser(r.User),
		Membership: FromMember(r.Membership),
	}
}

func FromInvite(t entities.InviteToken) InviteResponse {
	return InviteResponse{
		ID:        t.ID,
		Token:     t.Token,
		Role:      string(t.Role),
		Email:     t.Email,
		ExpiresAt: t.ExpiresAt,
		UsedAt:    t.UsedAt,
		UsedBy:    t.UsedBy,
		CreatedAt: t.CreatedAt,
	}
}

func FromInviteResult(r usecase.InviteResult) InviteResponse {
	res := FromInvite(r.Invite)
	res.URL = r.URL
	res.EmailSent = r.EmailSent
	return res
}

func FromInvites(ts []entities.InviteToken) []InviteResponse {
	out := make([]InviteResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromInvite(t))
	}
	return out
}

func FromPhoto(p entities.EstimatePhoto) PhotoResponse {
	return PhotoResponse{ID: p.ID, JobID: p.JobID, URL: p.URL, Notes: p.Notes, CreatedAt: p.CreatedAt}
}

func FromPhotos(ps []entities.EstimatePhoto) []PhotoResponse {
	out := make([]PhotoResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPhoto(p))
	}
	return out
}
