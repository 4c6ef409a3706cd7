package ranks

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/compengine/internal/domain"
	"github.com/GlebRadaev/compengine/internal/dto"
	"github.com/GlebRadaev/compengine/internal/service/rankservice"
	"github.com/GlebRadaev/compengine/pkg/auth"
	"github.com/GlebRadaev/compengine/pkg/utils"
)

//go:generate mockgen -source=ranks.go -destination=mock_ranks.go -package=ranks

type Service interface {
	AssignManual(ctx context.Context, accountID string, rank domain.RankCode, assignedBy string) (*domain.RankRecord, error)
	History(ctx context.Context, accountID string) ([]domain.RankRecord, error)
}

type RankHandler struct {
	rankService Service
}

func New(rankService Service) *RankHandler {
	return &RankHandler{
		rankService: rankService,
	}
}

// Assign godoc
//
//	@Summary		Assign a rank manually
//	@Description	A founder sets the rank of an account. The rank sticks until the next manual assignment.
//	@Tags			Ranks
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string					true	"Account id"
//	@Param			request	body	dto.AssignRankRequestDTO	true	"Rank to assign"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.RankRecordResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body or unknown rank"
//	@Failure		401	{object}	utils.Response	"Account not authorized"
//	@Failure		403	{object}	utils.Response	"Caller is not a founder"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		422	{object}	utils.Response	"Root cannot hold a rank"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/{id}/rank [post]
func (h *RankHandler) Assign(w http.ResponseWriter, r *http.Request) {
	callerID, ok := auth.AccountID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.AssignRankRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Rank == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, err := h.rankService.AssignManual(r.Context(), chi.URLParam(r, "id"), domain.RankCode(req.Rank), callerID)
	if err != nil {
		switch {
		case errors.Is(err, rankservice.ErrNotFounder):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, rankservice.ErrUnknownRank):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, rankservice.ErrUnknownAccount):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, rankservice.ErrRootRank):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, newRecordResponse(*rec))
}

// History godoc
//
//	@Summary		Get the caller's rank history
//	@Description	Every rank change of the authenticated account, natural and manual, oldest first
//	@Tags			Ranks
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.RankRecordResponseDTO
//	@Success		204	{object}	utils.Response	"No data available"
//	@Failure		401	{object}	utils.Response	"Account not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/me/ranks [get]
func (h *RankHandler) History(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	records, err := h.rankService.History(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(records) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.RankRecordResponseDTO, 0, len(records))
	for _, rec := range records {
		response = append(response, newRecordResponse(rec))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func newRecordResponse(rec domain.RankRecord) dto.RankRecordResponseDTO {
	resp := dto.RankRecordResponseDTO{
		ID:        rec.ID,
		AccountID: rec.AccountID,
		Rank:      string(rec.Rank),
		Method:    string(rec.Method),
		CreatedAt: rec.CreatedAt,
	}
	if rec.AssignedBy != nil {
		resp.AssignedBy = *rec.AssignedBy
	}
	return resp
}
