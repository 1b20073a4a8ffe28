package entities

import "time"

type EstimatePhoto struct {
	ID        uint      `json:"id"`
	JobID     *uint     `json:"jobId"`
	CompanyID uint      `json:"companyId"`
	URL       string    `json:"url"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}
