package pioneerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/compengine/internal/domain"
	"github.com/GlebRadaev/compengine/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// TryGrantSlot takes one pioneer slot if any is left. The check and the
// increment are one statement, so concurrent callers can never over-grant.
func (r *Repository) TryGrantSlot(ctx context.Context) (bool, error) {
	query := `
        UPDATE pioneer_ledger
        SET granted = granted + 1
        WHERE id = 1 AND granted < capacity
        RETURNING granted
    `
	var granted int
	err := r.db.QueryRow(ctx, query).Scan(&granted)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		zap.L().Error("can't take pioneer slot", zap.Error(err))
		return false, err
	}
	return true, nil
}

// SetCapacity resizes the ledger. Capacity never drops below what was
// already granted.
func (r *Repository) SetCapacity(ctx context.Context, capacity int) error {
	query := `
        UPDATE pioneer_ledger
        SET capacity = GREATEST($1, granted)
        WHERE id = 1
    `
	_, err := r.db.Exec(ctx, query, capacity)
	if err != nil {
		zap.L().Error("can't set pioneer capacity", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetLedger(ctx context.Context) (*domain.PioneerLedger, error) {
	query := `
        SELECT capacity, granted
        FROM pioneer_ledger
        WHERE id = 1
    `
	var ledger domain.PioneerLedger
	if err := r.db.QueryRow(ctx, query).Scan(&ledger.Capacity, &ledger.Granted); err != nil {
		zap.L().Error("can't read pioneer ledger", zap.Error(err))
		return nil, err
	}
	return &ledger, nil
}
