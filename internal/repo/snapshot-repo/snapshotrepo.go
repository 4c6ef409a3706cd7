package snapshotrepo

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

func (r *Repository) GetSnapshot(ctx context.Context, accountID string) (*domain.VolumeSnapshot, error) {
	query := `
        SELECT account_id, full_volume, qualifying_volume, target_rank, branches, computed_at
        FROM volume_snapshots
        WHERE account_id = $1
    `
	var s domain.VolumeSnapshot
	err := r.db.QueryRow(ctx, query, accountID).
		Scan(&s.AccountID, &s.FullVolume, &s.QualifyingVolume, &s.TargetRank, &s.Branches, &s.ComputedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get volume snapshot", zap.String("account_id", accountID), zap.Error(err))
		return nil, err
	}
	return &s, nil
}

// SaveSnapshot replaces the stored snapshot of the account as a whole.
func (r *Repository) SaveSnapshot(ctx context.Context, s *domain.VolumeSnapshot) error {
	query := `
        INSERT INTO volume_snapshots (account_id, full_volume, qualifying_volume, target_rank, branches, computed_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (account_id) DO UPDATE
        SET full_volume = EXCLUDED.full_volume,
            qualifying_volume = EXCLUDED.qualifying_volume,
            target_rank = EXCLUDED.target_rank,
            branches = EXCLUDED.branches,
            computed_at = EXCLUDED.computed_at
    `
	_, err := r.db.Exec(ctx, query, s.AccountID, s.FullVolume, s.QualifyingVolume, s.TargetRank, s.Branches, s.ComputedAt)
	if err != nil {
		zap.L().Error("can't save volume snapshot", zap.String("account_id", s.AccountID), zap.Error(err))
		return err
	}
	return nil
}
