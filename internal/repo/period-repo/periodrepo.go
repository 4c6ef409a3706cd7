package periodrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
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

// Claim registers the period as running. It reports false when the period id
// has been claimed before.
func (r *Repository) Claim(ctx context.Context, periodID string, startedAt time.Time) (bool, error) {
	query := `
        INSERT INTO periods (id, status, started_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (id) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, periodID, domain.PeriodRunning, startedAt)
	if err != nil {
		zap.L().Error("can't claim period", zap.String("period_id", periodID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) Complete(ctx context.Context, periodID string, completedAt time.Time) error {
	query := `
        UPDATE periods
        SET status = $1, completed_at = $2
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, domain.PeriodCompleted, completedAt, periodID)
	if err != nil {
		zap.L().Error("can't complete period", zap.String("period_id", periodID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetPeriod(ctx context.Context, periodID string) (*domain.Period, error) {
	query := `
        SELECT id, status, started_at, completed_at
        FROM periods
        WHERE id = $1
    `
	var p domain.Period
	err := r.db.QueryRow(ctx, query, periodID).Scan(&p.ID, &p.Status, &p.StartedAt, &p.CompletedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get period", zap.String("period_id", periodID), zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) SaveDistribution(ctx context.Context, d *domain.PoolDistribution) error {
	query := `
        INSERT INTO pool_distributions
            (period_id, company_volume, pool_amount, carried_in, share, carried_out, recipients, distributed_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.db.Exec(ctx, query,
		d.PeriodID, d.CompanyVolume, d.PoolAmount, d.CarriedIn, d.Share, d.CarriedOut, d.Recipients, d.DistributedAt,
	)
	if err != nil {
		zap.L().Error("can't save pool distribution", zap.String("period_id", d.PeriodID), zap.Error(err))
		return err
	}
	return nil
}

// LastCarry returns what the latest distribution left undistributed.
func (r *Repository) LastCarry(ctx context.Context) (decimal.Decimal, error) {
	query := `
        SELECT carried_out
        FROM pool_distributions
        ORDER BY distributed_at DESC
        LIMIT 1
    `
	var carry decimal.Decimal
	err := r.db.QueryRow(ctx, query).Scan(&carry)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, nil
	}
	if err != nil {
		zap.L().Error("can't read pool carry", zap.Error(err))
		return decimal.Zero, err
	}
	return carry, nil
}

func (r *Repository) FindDistribution(ctx context.Context, periodID string) (*domain.PoolDistribution, error) {
	query := `
        SELECT period_id, company_volume, pool_amount, carried_in, share, carried_out, recipients, distributed_at
        FROM pool_distributions
        WHERE period_id = $1
    `
	var d domain.PoolDistribution
	err := r.db.QueryRow(ctx, query, periodID).Scan(
		&d.PeriodID, &d.CompanyVolume, &d.PoolAmount, &d.CarriedIn, &d.Share, &d.CarriedOut, &d.Recipients, &d.DistributedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get pool distribution", zap.String("period_id", periodID), zap.Error(err))
		return nil, err
	}
	return &d, nil
}
