package balanceservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/compengine/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockBalanceRepo) {
	ctrl := gomock.NewController(t)
	balanceRepo := NewMockBalanceRepo(ctrl)
	service := New(balanceRepo)
	return service, balanceRepo
}

func TestGetBalance(t *testing.T) {
	service, balanceRepo := NewMock(t)
	tests := []struct {
		name            string
		accountID       string
		prepareMock     func()
		expectedBalance *domain.Balance
		expectedError   error
	}{
		{
			name:      "Retrieve balance successfully",
			accountID: "a",
			prepareMock: func() {
				balanceRepo.EXPECT().GetBalance(gomock.Any(), "a").Return(&domain.Balance{
					AccountID:      "a",
					CurrentBalance: decimal.NewFromInt(100),
					EarnedTotal:    decimal.NewFromInt(150),
				}, nil)
			},
			expectedBalance: &domain.Balance{
				AccountID:      "a",
				CurrentBalance: decimal.NewFromInt(100),
				EarnedTotal:    decimal.NewFromInt(150),
			},
		},
		{
			name:      "Error retrieving balance",
			accountID: "a",
			prepareMock: func() {
				balanceRepo.EXPECT().GetBalance(gomock.Any(), "a").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			balance, err := service.GetBalance(context.Background(), tt.accountID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, balance)
			}
		})
	}
}

func TestCreateBalance(t *testing.T) {
	service, balanceRepo := NewMock(t)

	balanceRepo.EXPECT().CreateBalance(gomock.Any(), "a").Return(&domain.Balance{AccountID: "a"}, nil)
	balance, err := service.CreateBalance(context.Background(), "a")
	assert.NoError(t, err)
	assert.Equal(t, "a", balance.AccountID)

	balanceRepo.EXPECT().CreateBalance(gomock.Any(), "b").Return(nil, errors.New("db error"))
	_, err = service.CreateBalance(context.Background(), "b")
	assert.Error(t, err)
}

func TestCreditEntries(t *testing.T) {
	entry := func(recipient string, kind domain.EntryKind, amount string) domain.CommissionEntry {
		return domain.CommissionEntry{RecipientID: recipient, Kind: kind, Amount: decimal.RequireFromString(amount)}
	}

	tests := []struct {
		name          string
		entries       []domain.CommissionEntry
		prepareMock   func(repo *MockBalanceRepo)
		expectedError bool
	}{
		{
			name: "One credit per recipient",
			entries: []domain.CommissionEntry{
				entry("a", domain.DifferentialEntry, "40"),
				entry("a", domain.ReferralEntry, "50"),
				entry("b", domain.DifferentialEntry, "40"),
				entry("a", domain.PioneerEntry, "1.80"),
			},
			prepareMock: func(repo *MockBalanceRepo) {
				gomock.InOrder(
					repo.EXPECT().Credit(gomock.Any(), "a", decimal.RequireFromString("91.80")).Return(&domain.Balance{}, nil),
					repo.EXPECT().Credit(gomock.Any(), "b", decimal.RequireFromString("40")).Return(&domain.Balance{}, nil),
				)
			},
		},
		{
			name: "Root and empty amounts are skipped",
			entries: []domain.CommissionEntry{
				entry(domain.RootID, domain.DifferentialEntry, "10"),
				entry("a", domain.DifferentialEntry, "0"),
			},
			prepareMock: func(repo *MockBalanceRepo) {},
		},
		{
			name:        "No entries",
			entries:     nil,
			prepareMock: func(repo *MockBalanceRepo) {},
		},
		{
			name:    "Credit failure",
			entries: []domain.CommissionEntry{entry("a", domain.PoolEntry, "150")},
			prepareMock: func(repo *MockBalanceRepo) {
				repo.EXPECT().Credit(gomock.Any(), "a", gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			tt.prepareMock(repo)

			err := service.CreditEntries(context.Background(), tt.entries)
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
