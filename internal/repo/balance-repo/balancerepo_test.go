package balancerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/compengine/internal/domain"
	"github.com/GlebRadaev/compengine/internal/pg"
)

var columns = []string{"account_id", "current_balance", "earned_total"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)

	return repo, mockDB, mockTxManager
}

func TestRepository_GetBalance(t *testing.T) {
	repo, mock, _ := NewMock(t)
	query := regexp.QuoteMeta(`SELECT account_id, current_balance, earned_total FROM balances WHERE account_id = $1`)

	tests := []struct {
		name      string
		accountID string
		mockSetup func()
		expectErr bool
		result    *domain.Balance
	}{
		{
			name:      "Balance found",
			accountID: "a",
			mockSetup: func() {
				rows := pgxmock.NewRows(columns).AddRow("a", decimal.NewFromInt(100), decimal.NewFromInt(150))
				mock.ExpectQuery(query).WithArgs("a").WillReturnRows(rows)
			},
			result: &domain.Balance{
				AccountID:      "a",
				CurrentBalance: decimal.NewFromInt(100),
				EarnedTotal:    decimal.NewFromInt(150),
			},
		},
		{
			name:      "No balance row",
			accountID: domain.RootID,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(domain.RootID).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:      "Database error",
			accountID: "a",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("a").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetBalance(context.Background(), tt.accountID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_CreateBalance(t *testing.T) {
	repo, mock, _ := NewMock(t)
	query := regexp.QuoteMeta(`
					INSERT INTO balances (account_id, current_balance, earned_total)
					VALUES ($1, 0, 0)
					RETURNING account_id, current_balance, earned_total`)

	mock.ExpectQuery(query).WithArgs("a").
		WillReturnRows(pgxmock.NewRows(columns).AddRow("a", decimal.Zero, decimal.Zero))
	balance, err := repo.CreateBalance(context.Background(), "a")
	assert.NoError(t, err)
	assert.Equal(t, &domain.Balance{AccountID: "a", CurrentBalance: decimal.Zero, EarnedTotal: decimal.Zero}, balance)

	mock.ExpectQuery(query).WithArgs("a").WillReturnError(errors.New("database error"))
	balance, err = repo.CreateBalance(context.Background(), "a")
	assert.Error(t, err)
	assert.Nil(t, balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Credit(t *testing.T) {
	repo, mock, tx := NewMock(t)
	amount := decimal.NewFromInt(40)
	query := regexp.QuoteMeta(`
		UPDATE balances
		SET current_balance = current_balance + $1,
			earned_total = earned_total + $1
		WHERE account_id = $2
		RETURNING account_id, current_balance, earned_total`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expected  *domain.Balance
	}{
		{
			name: "Credited",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(query).
						WithArgs(amount, "a").
						WillReturnRows(pgxmock.NewRows(columns).AddRow("a", decimal.NewFromInt(140), decimal.NewFromInt(540)))
					return fn(ctx)
				})
			},
			expected: &domain.Balance{AccountID: "a", CurrentBalance: decimal.NewFromInt(140), EarnedTotal: decimal.NewFromInt(540)},
		},
		{
			name: "Missing balance row",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(query).WithArgs(amount, "a").WillReturnError(pgx.ErrNoRows)
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Credit(context.Background(), "a", amount)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
