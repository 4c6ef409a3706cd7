package dto

import "github.com/shopspring/decimal"

type BalanceResponseDTO struct {
	Current decimal.Decimal `json:"current" swaggertype:"string" example:"500.50"`
	Earned  decimal.Decimal `json:"earned" swaggertype:"string" example:"1042.00"`
}
