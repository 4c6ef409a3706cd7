package rankrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/compengine/internal/domain"
	"github.com/GlebRadaev/compengine/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// AppendRecord adds a rank history entry. Records are never updated.
func (r *Repository) AppendRecord(ctx context.Context, rec *domain.RankRecord) error {
	query := `
		INSERT INTO rank_records (id, account_id, rank, method, assigned_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, rec.ID, rec.AccountID, rec.Rank, rec.Method, rec.AssignedBy, rec.CreatedAt)
	if err != nil {
		zap.L().Error("can't save rank record", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListRecords(ctx context.Context, accountID string) ([]domain.RankRecord, error) {
	query := `
        SELECT id, account_id, rank, method, assigned_by, created_at
        FROM rank_records
        WHERE account_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("failed to fetch rank records", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var records []domain.RankRecord
	for rows.Next() {
		var rec domain.RankRecord
		err := rows.Scan(&rec.ID, &rec.AccountID, &rec.Rank, &rec.Method, &rec.AssignedBy, &rec.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan rank record row", zap.Error(err))
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
