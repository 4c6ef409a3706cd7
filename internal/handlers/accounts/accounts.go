package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/compengine/internal/domain"
	"github.com/GlebRadaev/compengine/internal/dto"
	"github.com/GlebRadaev/compengine/internal/service/accountservice"
	"github.com/GlebRadaev/compengine/pkg/auth"
	"github.com/GlebRadaev/compengine/pkg/utils"
)

//go:generate mockgen -source=accounts.go -destination=mock_accounts.go -package=accounts

type Service interface {
	Register(ctx context.Context, accountID, uplineID, login, password string) (*domain.Account, error)
	Authenticate(ctx context.Context, login, password string) (*domain.Credentials, error)
	GenerateToken(accountID string) (string, error)
	GetOverview(ctx context.Context, accountID string) (*domain.AccountOverview, error)
	ListCommissions(ctx context.Context, accountID string) ([]domain.CommissionEntry, error)
}

type AccountHandler struct {
	accountService Service
}

func New(accountService Service) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// Register godoc
//
//	@Summary		Register a new account
//	@Description	Open an account under the given referrer together with login credentials. An unknown or quarantined referrer places the account under Root.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Account or login already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/register [post]
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.Login == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	acc, err := h.accountService.Register(r.Context(), req.AccountID, req.UplineID, req.Login, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, accountservice.ErrLoginTaken), errors.Is(err, accountservice.ErrAccountExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, accountservice.ErrInvalidAccountID), errors.Is(err, auth.ErrPasswordTooShort):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	token, err := h.accountService.GenerateToken(acc.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.RegisterResponseDTO{
		AccountID: acc.ID,
		UplineID:  acc.UplineID,
		Message:   "Account successfully registered",
	})
}

// Login godoc
//
//	@Summary		Authenticate account
//	@Description	Log in with account credentials and get a JWT token
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/login [post]
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	cred, err := h.accountService.Authenticate(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, accountservice.ErrInvalidCredentials) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	token, err := h.accountService.GenerateToken(cred.AccountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message: "Account successfully authenticated",
	})
}

// Me godoc
//
//	@Summary		Get the caller's account
//	@Description	Rank, status, volumes and balance of the authenticated account. Qualifying volume and target rank come from the last recompute and carry its timestamp.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AccountResponseDTO
//	@Failure		401	{object}	utils.Response	"Account not authorized"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/me [get]
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	overview, err := h.accountService.GetOverview(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, accountservice.ErrUnknownAccount) {
			utils.RespondWithError(w, http.StatusNotFound, "Account not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAccountResponse(overview))
}

// Commissions godoc
//
//	@Summary		List the caller's commissions
//	@Description	Commission entries credited to the authenticated account, newest first
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.CommissionResponseDTO
//	@Success		204	{object}	utils.Response	"No data available"
//	@Failure		401	{object}	utils.Response	"Account not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/me/commissions [get]
func (h *AccountHandler) Commissions(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	entries, err := h.accountService.ListCommissions(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(entries) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCommissionResponses(entries))
}
