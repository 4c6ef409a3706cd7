package balance

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/compengine/internal/domain"
	"github.com/GlebRadaev/compengine/internal/dto"
	"github.com/GlebRadaev/compengine/pkg/auth"
	"github.com/GlebRadaev/compengine/pkg/utils"
)

//go:generate mockgen -source=balance.go -destination=mock_balance.go -package=balance

type Service interface {
	GetBalance(ctx context.Context, accountID string) (*domain.Balance, error)
}

type BalanceHandler struct {
	balanceService Service
}

func New(balanceService Service) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current account balance
//	@Description	Retrieve the current commission balance and the total amount ever earned by the authenticated account.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance and earned total"
//	@Failure		401	{object}	utils.Response			"Account not authorized"
//	@Failure		404	{object}	utils.Response			"Balance not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/accounts/me/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	balance, err := h.balanceService.GetBalance(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if balance == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Balance not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Current: balance.CurrentBalance,
		Earned:  balance.EarnedTotal,
	})
}
