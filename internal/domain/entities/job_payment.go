package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the provider outcome of a job payment.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// JobPayment is a payment taken against an approved job.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_key-index): job_key ("<companyId>#<jobId>"), date
//
// Amount is always the server-computed job total at the time of payment.
// ProviderPayloadRaw keeps the provider response for traceability.
type JobPayment struct {
	ID                string          `json:"id"`
	CompanyID         uint            `json:"companyId"`
	JobID             uint            `json:"jobId"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	Date              time.Time       `json:"date"`
	Status            PaymentStatus   `json:"status"`
	ProviderPaymentID string          `json:"providerPaymentId,omitempty"`

	ProviderPayloadRaw json.RawMessage `json:"providerPayloadRaw,omitempty"`
}
