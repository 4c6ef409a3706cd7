package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/compengine/internal/handlers/accounts"
	"github.com/GlebRadaev/compengine/internal/handlers/balance"
	"github.com/GlebRadaev/compengine/internal/handlers/periods"
	"github.com/GlebRadaev/compengine/internal/handlers/purchases"
	"github.com/GlebRadaev/compengine/internal/handlers/ranks"
	"github.com/GlebRadaev/compengine/internal/service"
	"github.com/GlebRadaev/compengine/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	services := &service.Services{
		AccountService:  accounts.NewMockService(ctrl),
		BalanceService:  balance.NewMockService(ctrl),
		PurchaseService: purchases.NewMockService(ctrl),
		RankService:     ranks.NewMockService(ctrl),
		PeriodService:   periods.NewMockService(ctrl),
	}

	h := New(services, auth.NewMockJWTServiceInterface(ctrl))
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.AccountHandler)
	assert.NotNil(t, h.PeriodHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockAccountHandler := NewMockAccountHandler(ctrl)
	mockBalanceHandler := NewMockBalanceHandler(ctrl)
	mockPurchaseHandler := NewMockPurchaseHandler(ctrl)
	mockRankHandler := NewMockRankHandler(ctrl)
	mockPeriodHandler := NewMockPeriodHandler(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	mockAccountHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAccountHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockAccountHandler.EXPECT().Me(gomock.Any(), gomock.Any()).AnyTimes()
	mockAccountHandler.EXPECT().Commissions(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockPurchaseHandler.EXPECT().AddPurchase(gomock.Any(), gomock.Any()).AnyTimes()
	mockRankHandler.EXPECT().Assign(gomock.Any(), gomock.Any()).AnyTimes()
	mockRankHandler.EXPECT().History(gomock.Any(), gomock.Any()).AnyTimes()
	mockPeriodHandler.EXPECT().Close(gomock.Any(), gomock.Any()).AnyTimes()
	mockPeriodHandler.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()

	jwtService.EXPECT().ValidateToken("good").Return(&auth.Claims{AccountID: "alice"}, nil).AnyTimes()
	jwtService.EXPECT().ValidateToken("bad").Return(nil, errors.New("invalid token")).AnyTimes()

	h := &Handlers{
		AccountHandler:  mockAccountHandler,
		BalanceHandler:  mockBalanceHandler,
		PurchaseHandler: mockPurchaseHandler,
		RankHandler:     mockRankHandler,
		PeriodHandler:   mockPeriodHandler,
		jwtService:      jwtService,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/api/accounts/register", "", http.StatusOK},
		{"POST", "/api/accounts/login", "", http.StatusOK},
		{"GET", "/api/accounts/me", "", http.StatusUnauthorized},
		{"GET", "/api/accounts/me", "bad", http.StatusUnauthorized},
		{"GET", "/api/accounts/me", "good", http.StatusOK},
		{"GET", "/api/accounts/me/commissions", "", http.StatusUnauthorized},
		{"GET", "/api/accounts/me/commissions", "good", http.StatusOK},
		{"GET", "/api/accounts/me/ranks", "good", http.StatusOK},
		{"GET", "/api/accounts/me/balance", "", http.StatusUnauthorized},
		{"GET", "/api/accounts/me/balance", "good", http.StatusOK},
		{"POST", "/api/accounts/alice/rank", "", http.StatusUnauthorized},
		{"POST", "/api/accounts/alice/rank", "good", http.StatusOK},
		{"POST", "/api/purchases", "", http.StatusUnauthorized},
		{"POST", "/api/purchases", "good", http.StatusOK},
		{"GET", "/api/periods/2026-03", "good", http.StatusOK},
		{"POST", "/api/periods/2026-03/close", "", http.StatusUnauthorized},
		{"POST", "/api/periods/2026-03/close", "good", http.StatusOK},
		{"GET", "/metrics", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url+" "+tt.token, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
