package periods

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/compengine/internal/domain"
	"github.com/GlebRadaev/compengine/internal/dto"
	"github.com/GlebRadaev/compengine/internal/service/periodservice"
	"github.com/GlebRadaev/compengine/pkg/auth"
	"github.com/GlebRadaev/compengine/pkg/utils"
)

//go:generate mockgen -source=periods.go -destination=mock_periods.go -package=periods

type Service interface {
	Close(ctx context.Context, periodID string) (*domain.PoolDistribution, error)
	Get(ctx context.Context, periodID string) (*domain.Period, *domain.PoolDistribution, error)
}

type FounderChecker interface {
	IsFounder(ctx context.Context, accountID string) (bool, error)
}

type PeriodHandler struct {
	periodService Service
	founders      FounderChecker
}

func New(periodService Service, founders FounderChecker) *PeriodHandler {
	return &PeriodHandler{
		periodService: periodService,
		founders:      founders,
	}
}

// Close godoc
//
//	@Summary		Close a period
//	@Description	Run the period boundary job: distribute the leadership pool and reset personal volume and activity. Each period id is processed at most once.
//	@Tags			Periods
//	@Produce		json
//	@Param			id	path	string	true	"Period id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PoolDistributionDTO
//	@Failure		400	{object}	utils.Response	"Invalid period id"
//	@Failure		401	{object}	utils.Response	"Account not authorized"
//	@Failure		403	{object}	utils.Response	"Caller is not a founder"
//	@Failure		409	{object}	utils.Response	"Period already processed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/periods/{id}/close [post]
func (h *PeriodHandler) Close(w http.ResponseWriter, r *http.Request) {
	callerID, ok := auth.AccountID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	founder, err := h.founders.IsFounder(r.Context(), callerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !founder {
		utils.RespondWithError(w, http.StatusForbidden, "Only founders can close a period")
		return
	}

	d, err := h.periodService.Close(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, periodservice.ErrPeriodAlreadyProcessed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, periodservice.ErrInvalidPeriod):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, newDistribution(d))
}

// Get godoc
//
//	@Summary		Get a period
//	@Description	Period status and, once closed, its pool distribution
//	@Tags			Periods
//	@Produce		json
//	@Param			id	path	string	true	"Period id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PeriodResponseDTO
//	@Failure		401	{object}	utils.Response	"Account not authorized"
//	@Failure		404	{object}	utils.Response	"Period not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/periods/{id} [get]
func (h *PeriodHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, d, err := h.periodService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if p == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Period not found")
		return
	}

	resp := dto.PeriodResponseDTO{
		ID:          p.ID,
		Status:      string(p.Status),
		StartedAt:   p.StartedAt,
		CompletedAt: p.CompletedAt,
	}
	if d != nil {
		pool := newDistribution(d)
		resp.Pool = &pool
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func newDistribution(d *domain.PoolDistribution) dto.PoolDistributionDTO {
	recipients := d.Recipients
	if recipients == nil {
		recipients = []string{}
	}
	return dto.PoolDistributionDTO{
		CompanyVolume: d.CompanyVolume,
		CarriedIn:     d.CarriedIn,
		PoolAmount:    d.PoolAmount,
		Share:         d.Share,
		CarriedOut:    d.CarriedOut,
		Recipients:    recipients,
		DistributedAt: d.DistributedAt,
	}
}
