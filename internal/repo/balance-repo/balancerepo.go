package balancerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/compengine/internal/domain"
	"github.com/GlebRadaev/compengine/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) GetBalance(ctx context.Context, accountID string) (*domain.Balance, error) {
	query := `
        SELECT account_id, current_balance, earned_total
        FROM balances
        WHERE account_id = $1
    `
	row := r.db.QueryRow(ctx, query, accountID)
	var balance domain.Balance
	err := row.Scan(&balance.AccountID, &balance.CurrentBalance, &balance.EarnedTotal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

func (r *Repository) CreateBalance(ctx context.Context, accountID string) (*domain.Balance, error) {
	query := `
        INSERT INTO balances (account_id, current_balance, earned_total)
        VALUES ($1, 0, 0)
        RETURNING account_id, current_balance, earned_total
    `
	row := r.db.QueryRow(ctx, query, accountID)
	var balance domain.Balance
	err := row.Scan(&balance.AccountID, &balance.CurrentBalance, &balance.EarnedTotal)
	if err != nil {
		zap.L().Error("failed to create balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// Credit adds amount to both the current balance and the earned total in a
// single statement, so concurrent credits never overwrite each other.
func (r *Repository) Credit(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Balance, error) {
	var updated domain.Balance
	query := `
		UPDATE balances
		SET current_balance = current_balance + $1,
			earned_total = earned_total + $1
		WHERE account_id = $2
		RETURNING account_id, current_balance, earned_total
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, amount, accountID)
		err := row.Scan(&updated.AccountID, &updated.CurrentBalance, &updated.EarnedTotal)
		if err != nil {
			zap.L().Error("failed to credit balance", zap.String("account_id", accountID), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
