package pioneerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/compengine/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	return New(mockDB), mockDB
}

func TestRepository_TryGrantSlot(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("UPDATE pioneer_ledger SET granted = granted + 1 WHERE id = 1 AND granted < capacity RETURNING granted")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		granted   bool
	}{
		{
			name: "Slot available",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnRows(pgxmock.NewRows([]string{"granted"}).AddRow(12))
			},
			granted: true,
		},
		{
			name: "Ledger exhausted",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnError(pgx.ErrNoRows)
			},
			granted: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			granted, err := repo.TryGrantSlot(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.granted, granted)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_SetCapacity(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE pioneer_ledger SET capacity = GREATEST($1, granted) WHERE id = 1")).
		WithArgs(50).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.SetCapacity(context.Background(), 50))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetLedger(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT capacity, granted FROM pioneer_ledger WHERE id = 1")).
		WillReturnRows(pgxmock.NewRows([]string{"capacity", "granted"}).AddRow(50, 50))

	ledger, err := repo.GetLedger(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &domain.PioneerLedger{Capacity: 50, Granted: 50}, ledger)
	assert.Equal(t, 0, ledger.Remaining())
	assert.NoError(t, mock.ExpectationsWereMet())
}
