package dto

import "time"

type AssignRankRequestDTO struct {
	Rank string `json:"rank" example:"leader"`
}

type RankRecordResponseDTO struct {
	ID         string    `json:"id"`
	AccountID  string    `json:"account_id" example:"alice"`
	Rank       string    `json:"rank" example:"leader"`
	Method     string    `json:"method" example:"manual"`
	AssignedBy string    `json:"assigned_by,omitempty" example:"founder"`
	CreatedAt  time.Time `json:"created_at" example:"2026-03-01T12:00:00Z"`
}
