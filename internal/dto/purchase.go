package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type PurchaseRequestDTO struct {
	PurchaseID string          `json:"purchase_id" example:"2377225624"`
	Amount     decimal.Decimal `json:"amount" swaggertype:"string" example:"1000.00"`
	// Timestamp defaults to the time the request is received.
	Timestamp *time.Time `json:"timestamp,omitempty" example:"2026-03-01T12:00:00Z"`
}

type PurchaseResponseDTO struct {
	PurchaseID string                  `json:"purchase_id" example:"2377225624"`
	AccountID  string                  `json:"account_id" example:"alice"`
	Amount     decimal.Decimal         `json:"amount" swaggertype:"string" example:"1000.00"`
	RecordedAt time.Time               `json:"recorded_at" example:"2026-03-01T12:00:00Z"`
	Entries    []CommissionResponseDTO `json:"entries"`
}
