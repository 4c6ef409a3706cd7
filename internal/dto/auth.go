package dto

type RegisterRequestDTO struct {
	AccountID string `json:"account_id,omitempty" example:"alice"`
	UplineID  string `json:"upline_id,omitempty" example:"bob"`
	Login     string `json:"login" validate:"required,min=3,max=50"`
	Password  string `json:"password" validate:"required,min=8"`
}

type RegisterResponseDTO struct {
	AccountID string `json:"account_id" example:"alice"`
	UplineID  string `json:"upline_id" example:"bob"`
	Message   string `json:"message"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
