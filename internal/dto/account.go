package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/compengine/internal/domain"
)

type StatusDTO struct {
	Pioneer     bool `json:"pioneer"`
	Founder     bool `json:"founder"`
	ManualRank  bool `json:"manual_rank"`
	Quarantined bool `json:"quarantined"`
}

type BranchDTO struct {
	HeadID string          `json:"head_id" example:"carol"`
	Volume decimal.Decimal `json:"volume" swaggertype:"string" example:"1200.00"`
}

// AccountResponseDTO carries both volume figures. FullVolume is current as of
// the last purchase; QualifyingVolume is as of SnapshotAt.
type AccountResponseDTO struct {
	ID               string           `json:"id" example:"alice"`
	UplineID         string           `json:"upline_id" example:"bob"`
	Rank             string           `json:"rank,omitempty" example:"builder"`
	IsActive         bool             `json:"is_active"`
	Status           StatusDTO        `json:"status"`
	PersonalVolume   decimal.Decimal  `json:"personal_volume" swaggertype:"string" example:"150.00"`
	OwnVolume        decimal.Decimal  `json:"own_volume" swaggertype:"string" example:"900.00"`
	FullVolume       decimal.Decimal  `json:"full_volume" swaggertype:"string" example:"25000.00"`
	QualifyingVolume *decimal.Decimal `json:"qualifying_volume,omitempty" swaggertype:"string" example:"22500.00"`
	TargetRank       string           `json:"target_rank,omitempty" example:"leader"`
	Branches         []BranchDTO      `json:"branches,omitempty"`
	SnapshotAt       *time.Time       `json:"snapshot_at,omitempty" example:"2026-03-01T12:00:00Z"`
	Balance          decimal.Decimal  `json:"balance" swaggertype:"string" example:"340.50"`
	Earned           decimal.Decimal  `json:"earned" swaggertype:"string" example:"1340.50"`
	CreatedAt        time.Time        `json:"created_at" example:"2026-01-10T09:00:00Z"`
}

func NewAccountResponse(o *domain.AccountOverview) AccountResponseDTO {
	a := o.Account
	resp := AccountResponseDTO{
		ID:       a.ID,
		UplineID: a.UplineID,
		Rank:     string(a.Rank),
		IsActive: a.IsActive,
		Status: StatusDTO{
			Pioneer:     a.Status.Pioneer,
			Founder:     a.Status.Founder,
			ManualRank:  a.Status.ManualRank,
			Quarantined: a.Status.Quarantined,
		},
		PersonalVolume: a.PersonalVolume,
		OwnVolume:      a.OwnVolume,
		FullVolume:     a.FullVolume,
		CreatedAt:      a.CreatedAt,
	}
	if s := o.Snapshot; s != nil {
		qv := s.QualifyingVolume
		computedAt := s.ComputedAt
		resp.QualifyingVolume = &qv
		resp.TargetRank = string(s.TargetRank)
		resp.SnapshotAt = &computedAt
		for _, b := range s.Branches {
			resp.Branches = append(resp.Branches, BranchDTO{HeadID: b.HeadID, Volume: b.Volume})
		}
	}
	if b := o.Balance; b != nil {
		resp.Balance = b.CurrentBalance
		resp.Earned = b.EarnedTotal
	}
	return resp
}

type CommissionResponseDTO struct {
	ID          string          `json:"id"`
	RecipientID string          `json:"recipient_id" example:"bob"`
	PurchaseID  string          `json:"purchase_id" example:"2377225624"`
	Kind        string          `json:"kind" example:"differential"`
	Rate        decimal.Decimal `json:"rate" swaggertype:"string" example:"0.04"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"40.00"`
	Compressed  bool            `json:"compressed"`
	CreatedAt   time.Time       `json:"created_at" example:"2026-03-01T12:00:00Z"`
}

func NewCommissionResponses(entries []domain.CommissionEntry) []CommissionResponseDTO {
	resp := make([]CommissionResponseDTO, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, CommissionResponseDTO{
			ID:          e.ID,
			RecipientID: e.RecipientID,
			PurchaseID:  e.PurchaseID,
			Kind:        string(e.Kind),
			Rate:        e.Rate,
			Amount:      e.Amount,
			Compressed:  e.Compressed,
			CreatedAt:   e.CreatedAt,
		})
	}
	return resp
}
