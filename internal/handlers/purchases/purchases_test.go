package purchases

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/compengine/internal/domain"
	"github.com/GlebRadaev/compengine/internal/dto"
	"github.com/GlebRadaev/compengine/internal/hierarchy"
	"github.com/GlebRadaev/compengine/internal/service/purchaseservice"
	"github.com/GlebRadaev/compengine/pkg/auth"
	"github.com/GlebRadaev/compengine/pkg/utils"
)

const validID = "79927398713"

func NewMock(t *testing.T) (*PurchaseHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func amountOf(s string) gomock.Matcher {
	want := decimal.RequireFromString(s)
	return gomock.Cond(func(x any) bool {
		d, ok := x.(decimal.Decimal)
		return ok && d.Equal(want)
	})
}

func TestAddPurchaseHandler(t *testing.T) {
	handler, service := NewMock(t)
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		accountID     string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  *dto.PurchaseResponseDTO
	}{
		{
			name:      "Purchase recorded",
			accountID: "buyer",
			body:      `{"purchase_id":"` + validID + `","amount":"1000.00","timestamp":"2026-03-01T12:00:00Z"}`,
			prepareMock: func() {
				service.EXPECT().
					Record(gomock.Any(), "buyer", validID, amountOf("1000"), at).
					Return(&purchaseservice.Receipt{
						Purchase: domain.Purchase{ID: validID, AccountID: "buyer", Amount: decimal.NewFromInt(1000), CreatedAt: at},
						Entries: []domain.CommissionEntry{
							{ID: "e1", RecipientID: "start", PurchaseID: validID, Kind: domain.DifferentialEntry, Amount: decimal.NewFromInt(40)},
						},
					}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: &dto.PurchaseResponseDTO{PurchaseID: validID, AccountID: "buyer"},
		},
		{
			name:      "Numeric amount without timestamp",
			accountID: "buyer",
			body:      `{"purchase_id":"` + validID + `","amount":250}`,
			prepareMock: func() {
				service.EXPECT().
					Record(gomock.Any(), "buyer", validID, amountOf("250"), time.Time{}).
					Return(&purchaseservice.Receipt{
						Purchase: domain.Purchase{ID: validID, AccountID: "buyer", Amount: decimal.NewFromInt(250), CreatedAt: at},
					}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: &dto.PurchaseResponseDTO{PurchaseID: validID, AccountID: "buyer"},
		},
		{
			name:          "Unauthorized",
			body:          `{"purchase_id":"` + validID + `","amount":"10"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Unauthorized",
		},
		{
			name:          "Invalid request body",
			accountID:     "buyer",
			body:          `{invalid`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Missing purchase id",
			accountID:     "buyer",
			body:          `{"amount":"10"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Purchase id is required",
		},
		{
			name:          "Purchase id fails Luhn check",
			accountID:     "buyer",
			body:          `{"purchase_id":"79927398710","amount":"10"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Invalid purchase id",
		},
		{
			name:      "Already recorded by this account",
			accountID: "buyer",
			body:      `{"purchase_id":"` + validID + `","amount":"10"}`,
			prepareMock: func() {
				service.EXPECT().Record(gomock.Any(), "buyer", validID, amountOf("10"), time.Time{}).
					Return(nil, purchaseservice.ErrPurchaseAlreadyRecorded)
			},
			expectedCode:  http.StatusOK,
			expectedError: purchaseservice.ErrPurchaseAlreadyRecorded.Error(),
		},
		{
			name:      "Recorded by another account",
			accountID: "buyer",
			body:      `{"purchase_id":"` + validID + `","amount":"10"}`,
			prepareMock: func() {
				service.EXPECT().Record(gomock.Any(), "buyer", validID, amountOf("10"), time.Time{}).
					Return(nil, purchaseservice.ErrPurchaseIDTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: purchaseservice.ErrPurchaseIDTaken.Error(),
		},
		{
			name:      "Non-positive amount",
			accountID: "buyer",
			body:      `{"purchase_id":"` + validID + `","amount":"0"}`,
			prepareMock: func() {
				service.EXPECT().Record(gomock.Any(), "buyer", validID, amountOf("0"), time.Time{}).
					Return(nil, purchaseservice.ErrInvalidAmount)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: purchaseservice.ErrInvalidAmount.Error(),
		},
		{
			name:      "Unknown account",
			accountID: "ghost",
			body:      `{"purchase_id":"` + validID + `","amount":"10"}`,
			prepareMock: func() {
				service.EXPECT().Record(gomock.Any(), "ghost", validID, amountOf("10"), time.Time{}).
					Return(nil, purchaseservice.ErrUnknownAccount)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: purchaseservice.ErrUnknownAccount.Error(),
		},
		{
			name:      "Root cannot purchase",
			accountID: domain.RootID,
			body:      `{"purchase_id":"` + validID + `","amount":"10"}`,
			prepareMock: func() {
				service.EXPECT().Record(gomock.Any(), domain.RootID, validID, amountOf("10"), time.Time{}).
					Return(nil, purchaseservice.ErrRootPurchase)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: purchaseservice.ErrRootPurchase.Error(),
		},
		{
			name:      "Quarantined account",
			accountID: "buyer",
			body:      `{"purchase_id":"` + validID + `","amount":"10"}`,
			prepareMock: func() {
				service.EXPECT().Record(gomock.Any(), "buyer", validID, amountOf("10"), time.Time{}).
					Return(nil, purchaseservice.ErrAccountQuarantined)
			},
			expectedCode:  http.StatusLocked,
			expectedError: purchaseservice.ErrAccountQuarantined.Error(),
		},
		{
			name:      "Broken upline chain",
			accountID: "buyer",
			body:      `{"purchase_id":"` + validID + `","amount":"10"}`,
			prepareMock: func() {
				service.EXPECT().Record(gomock.Any(), "buyer", validID, amountOf("10"), time.Time{}).
					Return(nil, &hierarchy.IntegrityError{Kind: hierarchy.KindOrphan, AccountID: "buyer", Offender: "x"})
			},
			expectedCode:  http.StatusLocked,
			expectedError: purchaseservice.ErrAccountQuarantined.Error(),
		},
		{
			name:      "Storage failure",
			accountID: "buyer",
			body:      `{"purchase_id":"` + validID + `","amount":"10"}`,
			prepareMock: func() {
				service.EXPECT().Record(gomock.Any(), "buyer", validID, amountOf("10"), time.Time{}).
					Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/purchases", bytes.NewReader([]byte(tt.body)))
			req = req.WithContext(context.WithValue(req.Context(), auth.AccountIDKey, tt.accountID))
			rr := httptest.NewRecorder()

			handler.AddPurchase(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
			if tt.expectedBody != nil {
				var resp dto.PurchaseResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedBody.PurchaseID, resp.PurchaseID)
				assert.Equal(t, tt.expectedBody.AccountID, resp.AccountID)
				assert.NotNil(t, resp.Entries)
			}
		})
	}
}
