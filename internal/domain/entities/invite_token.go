package entities

import "time"

const DefaultInviteExpiryDays = 7

type InviteToken struct {
	ID        uint       `json:"id"`
	Token     string     `json:"token"`
	CompanyID uint       `json:"companyId"`
	CreatedBy uint       `json:"createdBy"`
	Role      Role       `json:"role"`
	Email     string     `json:"email,omitempty"`
	ExpiresAt time.Time  `json:"expiresAt"`
	UsedAt    *time.Time `json:"usedAt"`
	UsedBy    *uint      `json:"usedBy"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Usable reports whether the invite can still be accepted at now.
func (t InviteToken) Usable(now time.Time) bool {
	return t.UsedAt == nil && now.Before(t.ExpiresAt)
}
