package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type PoolDistributionDTO struct {
	CompanyVolume decimal.Decimal `json:"company_volume" swaggertype:"string" example:"100000.00"`
	CarriedIn     decimal.Decimal `json:"carried_in" swaggertype:"string" example:"0"`
	PoolAmount    decimal.Decimal `json:"pool_amount" swaggertype:"string" example:"3000.00"`
	Share         decimal.Decimal `json:"share" swaggertype:"string" example:"1500.00"`
	CarriedOut    decimal.Decimal `json:"carried_out" swaggertype:"string" example:"0"`
	Recipients    []string        `json:"recipients"`
	DistributedAt time.Time       `json:"distributed_at" example:"2026-03-31T23:59:59Z"`
}

type PeriodResponseDTO struct {
	ID          string               `json:"id" example:"2026-03"`
	Status      string               `json:"status" example:"completed"`
	StartedAt   time.Time            `json:"started_at" example:"2026-03-31T23:59:59Z"`
	CompletedAt *time.Time           `json:"completed_at,omitempty" example:"2026-03-31T23:59:59Z"`
	Pool        *PoolDistributionDTO `json:"pool,omitempty"`
}
