package outboxrepo

import (
	"context"
	"time"

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

func (r *Repository) SaveEvent(ctx context.Context, e *domain.OutboxEvent) error {
	query := `
        INSERT INTO outbox_events (id, kind, payload, created_at)
        VALUES ($1, $2, $3, $4)
    `
	_, err := r.db.Exec(ctx, query, e.ID, e.Kind, e.Payload, e.CreatedAt)
	if err != nil {
		zap.L().Error("can't save outbox event", zap.String("kind", e.Kind), zap.Error(err))
		return err
	}
	return nil
}

// FindUndelivered returns pending events, oldest first. Parked events are
// left out.
func (r *Repository) FindUndelivered(ctx context.Context, limit int) ([]domain.OutboxEvent, error) {
	query := `
        SELECT id, kind, payload, created_at, delivered_at, attempts
        FROM outbox_events
        WHERE delivered_at IS NULL AND failed_at IS NULL
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get undelivered events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var events []domain.OutboxEvent
	for rows.Next() {
		var e domain.OutboxEvent
		if err := rows.Scan(&e.ID, &e.Kind, &e.Payload, &e.CreatedAt, &e.DeliveredAt, &e.Attempts); err != nil {
			zap.L().Error("can't scan outbox event row", zap.Error(err))
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *Repository) MarkDelivered(ctx context.Context, id string, at time.Time) error {
	query := `
        UPDATE outbox_events
        SET delivered_at = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, at, id)
	if err != nil {
		zap.L().Error("can't mark event delivered", zap.String("event_id", id), zap.Error(err))
		return err
	}
	return nil
}

// RecordFailure counts a failed delivery round. The event is parked once it
// has failed maxAttempts times.
func (r *Repository) RecordFailure(ctx context.Context, id, reason string, maxAttempts int, at time.Time) error {
	query := `
        UPDATE outbox_events
        SET attempts = attempts + 1,
            last_error = $1,
            failed_at = CASE WHEN attempts + 1 >= $2 THEN $3::timestamptz END
        WHERE id = $4
    `
	_, err := r.db.Exec(ctx, query, reason, maxAttempts, at, id)
	if err != nil {
		zap.L().Error("can't record event failure", zap.String("event_id", id), zap.Error(err))
		return err
	}
	return nil
}

// MarkRejected parks an event the receiver refused outright.
func (r *Repository) MarkRejected(ctx context.Context, id, reason string, at time.Time) error {
	query := `
        UPDATE outbox_events
        SET attempts = attempts + 1,
            last_error = $1,
            failed_at = $2
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, reason, at, id)
	if err != nil {
		zap.L().Error("can't park rejected event", zap.String("event_id", id), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SaveAlert(ctx context.Context, a *domain.IntegrityAlert) error {
	query := `
        INSERT INTO integrity_alerts (id, account_id, kind, detail, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.db.Exec(ctx, query, a.ID, a.AccountID, a.Kind, a.Detail, a.CreatedAt)
	if err != nil {
		zap.L().Error("can't save integrity alert", zap.String("account_id", a.AccountID), zap.Error(err))
		return err
	}
	return nil
}
