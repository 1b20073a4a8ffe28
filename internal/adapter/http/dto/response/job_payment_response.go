package response

import (
	"encoding/json"
	"time"

	"field_estimator/internal/domain/entities"
)

type JobPaymentResponse struct {
	ID                string    `json:"id"`
	JobID             uint      `json:"jobId"`
	Amount            string    `json:"amount"`
	Currency          string    `json:"currency"`
	Date              time.Time `json:"date"`
	Status            string    `json:"status"`
	ProviderPaymentID string    `json:"providerPaymentId,omitempty"`

	MPPayloadRaw string         `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]any `json:"mp_payload,omitempty"`
}

// JobPaymentListResponse has Latest nil when the job was never charged.
type JobPaymentListResponse struct {
	Latest *JobPaymentResponse  `json:"latest"`
	Items  []JobPaymentResponse `json:"items"`
}

func FromJobPayment(p entities.JobPayment) JobPaymentResponse {
	res := JobPaymentResponse{
		ID:                p.ID,
		JobID:             p.JobID,
		Amount:            money(p.Amount),
		Currency:          p.Currency,
		Date:              p.Date,
		Status:            string(p.Status),
		ProviderPaymentID: p.ProviderPaymentID,
		MPPayloadRaw:      string(p.ProviderPayloadRaw),
	}
	if len(p.ProviderPayloadRaw) > 0 {
		var parsed map[string]any
		if err := json.Unmarshal(p.ProviderPayloadRaw, &parsed); err == nil {
			res.MPPayload = parsed
		}
	}
	return res
}

// FromJobPayments expects payments newest first.
func FromJobPayments(ps []entities.JobPayment) JobPaymentListResponse {
	res := JobPaymentListResponse{Items: make([]JobPaymentResponse, 0, len(ps))}
	for _, p := range ps {
		res.Items = append(res.Items, FromJobPayment(p))
	}
	if len(res.Items) > 0 {
		latest := res.Items[0]
		res.Latest = &latest
	}
	return res
}
