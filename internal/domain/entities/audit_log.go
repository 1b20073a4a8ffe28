package entities

import "time"

// AuditLogEntry records a mutating action inside a company.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (company_id-index): company_id, created_at
type AuditLogEntry struct {
	ID          string            `json:"id"`
	CompanyID   uint              `json:"companyId"`
	ActorUserID uint              `json:"actorUserId"`
	Action      string            `json:"action"`
	JobID       *uint             `json:"jobId,omitempty"`
	Meta        map[string]string `json:"meta,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

const (
	AuditJobCreated         = "job.created"
	AuditJobUpdated         = "job.updated"
	AuditJobDeleted         = "job.deleted"
	AuditJobStatusChanged   = "job.status_changed"
	AuditJobAssigned        = "job.assigned"
	AuditSettingsUpdated    = "settings.updated"
	AuditPricingRuleCreated = "pricing_rule.created"
	AuditPricingRuleUpdated = "pricing_rule.updated"
	AuditMemberPermissions  = "member.permissions_updated"
	AuditMemberActivation   = "member.active_changed"
	AuditInviteCreated      = "invite.created"
	AuditInviteAccepted     = "invite.accepted"
	AuditPhotoUploaded      = "photo.uploaded"
	AuditPaymentCreated     = "payment.created"
)
