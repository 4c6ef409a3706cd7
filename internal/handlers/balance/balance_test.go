package balance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/compengine/internal/domain"
	"github.com/GlebRadaev/compengine/internal/dto"
	"github.com/GlebRadaev/compengine/pkg/auth"
)

func NewMock(t *testing.T) (*BalanceHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		accountID    string
		prepareMock  func()
		expectedCode int
		expectedBody *dto.BalanceResponseDTO
	}{
		{
			name:      "Successful balance retrieval",
			accountID: "alice",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), "alice").Return(&domain.Balance{
					AccountID:      "alice",
					CurrentBalance: decimal.RequireFromString("500.50"),
					EarnedTotal:    decimal.RequireFromString("1042.00"),
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.BalanceResponseDTO{
				Current: decimal.RequireFromString("500.50"),
				Earned:  decimal.RequireFromString("1042.00"),
			},
		},
		{
			name:         "Unauthorized",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:      "Balance missing",
			accountID: "alice",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), "alice").Return(nil, nil)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:      "Internal server error",
			accountID: "alice",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), "alice").Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/accounts/me/balance", nil)
			req = req.WithContext(context.WithValue(req.Context(), auth.AccountIDKey, tt.accountID))
			rr := httptest.NewRecorder()

			handler.GetBalance(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != nil {
				var resp dto.BalanceResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.True(t, tt.expectedBody.Current.Equal(resp.Current))
				assert.True(t, tt.expectedBody.Earned.Equal(resp.Earned))
			}
		})
	}
}
