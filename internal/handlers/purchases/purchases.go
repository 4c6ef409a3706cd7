package purchases

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/compengine/internal/dto"
	"github.com/GlebRadaev/compengine/internal/hierarchy"
	"github.com/GlebRadaev/compengine/internal/service/purchaseservice"
	"github.com/GlebRadaev/compengine/pkg/auth"
	"github.com/GlebRadaev/compengine/pkg/utils"
	"github.com/GlebRadaev/compengine/pkg/validate"
)

//go:generate mockgen -source=purchases.go -destination=mock_purchases.go -package=purchases

type Service interface {
	Record(ctx context.Context, accountID, purchaseID string, amount decimal.Decimal, at time.Time) (*purchaseservice.Receipt, error)
}

type PurchaseHandler struct {
	purchaseService Service
}

func New(purchaseService Service) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
	}
}

// AddPurchase godoc
//
//	@Summary		Record a purchase
//	@Description	Record a purchase made by the authenticated account. Commissions are computed and credited in the same transaction; the response lists every entry created.
//	@Tags			Purchases
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.PurchaseRequestDTO	true	"Purchase to record"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.PurchaseResponseDTO	"Purchase recorded"
//	@Success		200	{object}	utils.Response			"Purchase already recorded for this account"
//	@Failure		400	{object}	utils.Response			"Invalid request body or amount"
//	@Failure		401	{object}	utils.Response			"Account not authorized"
//	@Failure		404	{object}	utils.Response			"Account not found"
//	@Failure		409	{object}	utils.Response			"Purchase id recorded for another account"
//	@Failure		422	{object}	utils.Response			"Invalid purchase id"
//	@Failure		423	{object}	utils.Response			"Account branch is quarantined"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/purchases [post]
func (h *PurchaseHandler) AddPurchase(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.PurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PurchaseID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Purchase id is required")
		return
	}
	if !validate.IsPurchaseID(req.PurchaseID) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid purchase id")
		return
	}

	var at time.Time
	if req.Timestamp != nil {
		at = *req.Timestamp
	}
	receipt, err := h.purchaseService.Record(r.Context(), accountID, req.PurchaseID, req.Amount, at)
	if err != nil {
		switch {
		case errors.Is(err, purchaseservice.ErrPurchaseAlreadyRecorded):
			utils.RespondWithError(w, http.StatusOK, err.Error())
		case errors.Is(err, purchaseservice.ErrPurchaseIDTaken):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, purchaseservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, purchaseservice.ErrInvalidPurchaseID), errors.Is(err, purchaseservice.ErrRootPurchase):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, purchaseservice.ErrUnknownAccount):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, purchaseservice.ErrAccountQuarantined), errors.Is(err, hierarchy.ErrIntegrity):
			utils.RespondWithError(w, http.StatusLocked, purchaseservice.ErrAccountQuarantined.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	p := receipt.Purchase
	utils.RespondWithJSON(w, http.StatusCreated, dto.PurchaseResponseDTO{
		PurchaseID: p.ID,
		AccountID:  p.AccountID,
		Amount:     p.Amount,
		RecordedAt: p.CreatedAt,
		Entries:    dto.NewCommissionResponses(receipt.Entries),
	})
}
