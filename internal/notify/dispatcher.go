package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/compengine/internal/config"
	"github.com/GlebRadaev/compengine/internal/domain"
	"github.com/GlebRadaev/compengine/pkg/clients"
	"github.com/GlebRadaev/compengine/pkg/metrics"
)

// maxRounds is how many dispatch rounds an event may fail before it is parked.
const (
	maxRetries     = 3
	maxRounds      = 10
	batchSize      = 100
	maxParallel    = 4
	updateInterval = time.Second * 5
)

var (
	ErrEventRejected    = errors.New("webhook rejected event")
	errRetriesExhausted = errors.New("delivery retries exhausted")
)

type envelope struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// Dispatcher posts undelivered outbox events to the notification webhook.
type Dispatcher struct {
	url            string
	repo           EventRepo
	client         clients.HTTPClientI
	updateInterval time.Duration
	retryInterval  time.Duration
}

func NewDispatcher(cfg *config.Config, repo EventRepo, client clients.HTTPClientI) *Dispatcher {
	return &Dispatcher{
		url:            cfg.NotifyAddress,
		repo:           repo,
		client:         client,
		updateInterval: updateInterval,
		retryInterval:  time.Second,
	}
}

// Start runs the dispatcher until ctx is done. Without a webhook address the
// events stay in the outbox.
func (d *Dispatcher) Start(ctx context.Context) {
	if d.url == "" {
		zap.L().Info("notify url is not set, outbox dispatcher disabled")
		return
	}
	zap.L().Info("outbox dispatcher started", zap.String("url", d.url))
	go d.run(ctx)
}

func (d *Dispatcher) run(ctx context.Context) {
	ticker := time.NewTicker(d.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping outbox dispatcher")
			return
		case <-ticker.C:
			d.dispatch(ctx)
		}
	}
}

func (d *Dispatcher) dispatch(ctx context.Context) {
	events, err := d.repo.FindUndelivered(ctx, batchSize)
	if err != nil {
		zap.L().Error("failed to fetch undelivered events", zap.Error(err))
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)
	for _, e := range events {
		e := e
		g.Go(func() error {
			if err := d.deliver(gctx, e); err != nil {
				d.fail(gctx, e, err)
				return nil
			}
			metrics.EventsDelivered.WithLabelValues("delivered").Inc()
			return nil
		})
	}
	_ = g.Wait()
}

// fail parks rejected events at once and everything else after maxRounds, so
// a stuck event never blocks the ones behind it.
func (d *Dispatcher) fail(ctx context.Context, e domain.OutboxEvent, cause error) {
	if ctx.Err() != nil {
		return
	}
	var err error
	if errors.Is(cause, ErrEventRejected) {
		metrics.EventsDelivered.WithLabelValues("rejected").Inc()
		zap.L().Error("event rejected by webhook, parked", zap.String("event_id", e.ID), zap.String("kind", e.Kind), zap.Error(cause))
		err = d.repo.MarkRejected(ctx, e.ID, cause.Error(), time.Now())
	} else {
		metrics.EventsDelivered.WithLabelValues("failed").Inc()
		zap.L().Warn("event delivery failed", zap.String("event_id", e.ID), zap.String("kind", e.Kind),
			zap.Int("round", e.Attempts+1), zap.Error(cause))
		err = d.repo.RecordFailure(ctx, e.ID, cause.Error(), maxRounds, time.Now())
	}
	if err != nil {
		zap.L().Error("failed to record event failure", zap.String("event_id", e.ID), zap.Error(err))
	}
}

func (d *Dispatcher) deliver(ctx context.Context, e domain.OutboxEvent) error {
	body, err := json.Marshal(envelope{ID: e.ID, Kind: e.Kind, Payload: e.Payload, CreatedAt: e.CreatedAt})
	if err != nil {
		return fmt.Errorf("can't encode event: %w", err)
	}
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("X-Event-Kind", e.Kind)

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		statusCode, respHeaders, err := d.client.Post(d.url, headers.Clone(), body)
		wait := d.retryInterval * time.Duration(attempt)
		switch {
		case err != nil:
			zap.L().Warn("webhook unreachable, retrying", zap.String("event_id", e.ID), zap.Int("attempt", attempt), zap.Error(err))
		case statusCode >= 200 && statusCode < 300:
			return d.repo.MarkDelivered(ctx, e.ID, time.Now())
		case statusCode == http.StatusTooManyRequests:
			wait = retryAfter(respHeaders, wait)
			zap.L().Warn("webhook rate limit, retrying", zap.String("event_id", e.ID), zap.Duration("retryAfter", wait))
		case statusCode >= 500:
			zap.L().Warn("webhook failed, retrying", zap.String("event_id", e.ID), zap.Int("status", statusCode))
		default:
			return fmt.Errorf("%w %s with status %d", ErrEventRejected, e.ID, statusCode)
		}

		if attempt < maxRetries {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
	}
	return fmt.Errorf("event %s: %w after %d attempts", e.ID, errRetriesExhausted, maxRetries)
}

func retryAfter(headers http.Header, fallback time.Duration) time.Duration {
	if v := headers.Get("Retry-After"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}
