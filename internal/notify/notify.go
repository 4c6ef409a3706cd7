package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/GlebRadaev/compengine/internal/domain"
)

const (
	EventCommissionCreated   = "commission.created"
	EventRankChanged         = "rank.changed"
	EventPoolDistributed     = "pool.distributed"
	EventIntegrityAlert      = "integrity.alert"
	EventRecomputeDeadLetter = "recompute.dead_letter"
)

//go:generate mockgen -source=notify.go -destination=mock_notify.go -package=notify

type EventRepo interface {
	SaveEvent(ctx context.Context, e *domain.OutboxEvent) error
	FindUndelivered(ctx context.Context, limit int) ([]domain.OutboxEvent, error)
	MarkDelivered(ctx context.Context, id string, at time.Time) error
	RecordFailure(ctx context.Context, id, reason string, maxAttempts int, at time.Time) error
	MarkRejected(ctx context.Context, id, reason string, at time.Time) error
}

// Outbox stores outbound events in the caller's transaction. Delivery happens
// later, see Dispatcher.
type Outbox struct {
	repo EventRepo
}

func NewOutbox(repo EventRepo) *Outbox {
	return &Outbox{repo: repo}
}

func (o *Outbox) Publish(ctx context.Context, kind string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("can't encode %s event: %w", kind, err)
	}
	return o.repo.SaveEvent(ctx, &domain.OutboxEvent{
		ID:        uuid.NewString(),
		Kind:      kind,
		Payload:   body,
		CreatedAt: time.Now(),
	})
}
