package taskrepo

import (
	"context"
	"time"

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

// Enqueue requests a recompute for every account. A pending task for the same
// account is superseded by the newer request.
func (r *Repository) Enqueue(ctx context.Context, accountIDs []string, requestedAt time.Time) error {
	if len(accountIDs) == 0 {
		return nil
	}
	query := `
        INSERT INTO recompute_tasks (account_id, requested_at, attempts, next_attempt_at, last_error)
        SELECT id, $2, 0, $2, ''
        FROM unnest($1::text[]) AS id
        ON CONFLICT (account_id) DO UPDATE
        SET requested_at = EXCLUDED.requested_at,
            attempts = 0,
            next_attempt_at = EXCLUDED.next_attempt_at,
            last_error = ''
    `
	_, err := r.db.Exec(ctx, query, accountIDs, requestedAt)
	if err != nil {
		zap.L().Error("can't enqueue recompute tasks", zap.Int("count", len(accountIDs)), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindDue(ctx context.Context, now time.Time, limit int) ([]domain.RecomputeTask, error) {
	query := `
        SELECT account_id, requested_at, attempts, next_attempt_at, last_error
        FROM recompute_tasks
        WHERE next_attempt_at <= $1
        ORDER BY next_attempt_at ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, now, limit)
	if err != nil {
		zap.L().Error("can't get due recompute tasks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.RecomputeTask
	for rows.Next() {
		var task domain.RecomputeTask
		err := rows.Scan(&task.AccountID, &task.RequestedAt, &task.Attempts, &task.NextAttemptAt, &task.LastError)
		if err != nil {
			zap.L().Error("can't scan recompute task row", zap.Error(err))
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// Complete removes the task unless a newer request arrived while it was being
// processed. It reports whether the task was removed.
func (r *Repository) Complete(ctx context.Context, task domain.RecomputeTask) (bool, error) {
	query := `
        DELETE FROM recompute_tasks
        WHERE account_id = $1 AND requested_at = $2
    `
	tag, err := r.db.Exec(ctx, query, task.AccountID, task.RequestedAt)
	if err != nil {
		zap.L().Error("can't complete recompute task", zap.String("account_id", task.AccountID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) Retry(ctx context.Context, task domain.RecomputeTask, nextAttemptAt time.Time, lastErr string) error {
	query := `
        UPDATE recompute_tasks
        SET attempts = attempts + 1,
            next_attempt_at = $1,
            last_error = $2
        WHERE account_id = $3 AND requested_at = $4
    `
	_, err := r.db.Exec(ctx, query, nextAttemptAt, lastErr, task.AccountID, task.RequestedAt)
	if err != nil {
		zap.L().Error("can't reschedule recompute task", zap.String("account_id", task.AccountID), zap.Error(err))
		return err
	}
	return nil
}

// DeadLetter moves an exhausted task out of the queue.
func (r *Repository) DeadLetter(ctx context.Context, task domain.RecomputeTask, lastErr string) error {
	insertQuery := `
        INSERT INTO recompute_dead_letters (account_id, requested_at, attempts, last_error)
        VALUES ($1, $2, $3, $4)
    `
	deleteQuery := `
        DELETE FROM recompute_tasks
        WHERE account_id = $1 AND requested_at = $2
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, insertQuery, task.AccountID, task.RequestedAt, task.Attempts, lastErr); err != nil {
			zap.L().Error("can't dead-letter recompute task", zap.String("account_id", task.AccountID), zap.Error(err))
			return err
		}
		if _, err := r.db.Exec(ctx, deleteQuery, task.AccountID, task.RequestedAt); err != nil {
			zap.L().Error("can't remove dead-lettered task", zap.String("account_id", task.AccountID), zap.Error(err))
			return err
		}
		return nil
	})
}
