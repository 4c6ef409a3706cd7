// Package recompute drains the qualifying volume recompute queue. Each task
// refreshes one account's volume snapshot and re-evaluates its rank.
package recompute

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/compengine/internal/config"
	"github.com/GlebRadaev/compengine/internal/domain"
	"github.com/GlebRadaev/compengine/internal/hierarchy"
	"github.com/GlebRadaev/compengine/internal/notify"
	"github.com/GlebRadaev/compengine/internal/service/rankservice"
	"github.com/GlebRadaev/compengine/pkg/metrics"
)

//go:generate mockgen -source=recompute.go -destination=mock_recompute.go -package=recompute

type TaskRepo interface {
	FindDue(ctx context.Context, now time.Time, limit int) ([]domain.RecomputeTask, error)
	Complete(ctx context.Context, task domain.RecomputeTask) (bool, error)
	Retry(ctx context.Context, task domain.RecomputeTask, nextAttemptAt time.Time, lastErr string) error
	DeadLetter(ctx context.Context, task domain.RecomputeTask, lastErr string) error
}

type RankService interface {
	Evaluate(ctx context.Context, accountID string) (*domain.RankRecord, error)
}

type IntegrityReporter interface {
	Report(ctx context.Context, err error) bool
}

type Publisher interface {
	Publish(ctx context.Context, kind string, payload any) error
}

const (
	batchSize  = 1000
	maxBackoff = 5 * time.Minute
)

// DeadLetter is the payload of the event raised when a task gives up.
type DeadLetter struct {
	AccountID string `json:"account_id"`
	Attempts  int    `json:"attempts"`
	LastError string `json:"last_error"`
}

type Service struct {
	tasks          TaskRepo
	ranks          RankService
	integrity      IntegrityReporter
	publisher      Publisher
	workerPool     WorkerPoolI
	inFlight       sync.Map
	limit          int
	maxAttempts    int
	updateInterval time.Duration
	now            func() time.Time
}

func New(cfg *config.Config, tasks TaskRepo, ranks RankService, integrity IntegrityReporter, publisher Publisher) *Service {
	interval := cfg.Engine.RecomputeInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}
	maxAttempts := cfg.Engine.RecomputeMaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	return &Service{
		tasks:          tasks,
		ranks:          ranks,
		integrity:      integrity,
		publisher:      publisher,
		workerPool:     NewWorkerPool(cfg.Engine.RecomputeWorkers),
		limit:          batchSize,
		maxAttempts:    maxAttempts,
		updateInterval: interval,
		now:            time.Now,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("recompute worker started", zap.Duration("interval", s.updateInterval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping recompute worker")
			return
		case <-ticker.C:
			s.processTasks(ctx)
		}
	}
}

func (s *Service) processTasks(ctx context.Context) {
	tasks, err := s.tasks.FindDue(ctx, s.now(), s.limit)
	if err != nil {
		zap.L().Error("failed to fetch recompute tasks", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, task := range tasks {
		task := task

		if _, loaded := s.inFlight.LoadOrStore(task.AccountID, struct{}{}); loaded {
			continue
		}
		metrics.RecomputeInFlight.Inc()

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.release(task.AccountID)
				return s.handleTask(ctx, task)
			})
			if err != nil {
				s.release(task.AccountID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("error scheduling recompute tasks", zap.Error(err))
	}
}

func (s *Service) release(accountID string) {
	s.inFlight.Delete(accountID)
	metrics.RecomputeInFlight.Dec()
}

func (s *Service) handleTask(ctx context.Context, task domain.RecomputeTask) error {
	_, err := s.ranks.Evaluate(ctx, task.AccountID)
	switch {
	case err == nil:
		return s.complete(ctx, task)
	case errors.Is(err, rankservice.ErrUnknownAccount):
		zap.L().Warn("recompute requested for unknown account", zap.String("account_id", task.AccountID))
		return s.complete(ctx, task)
	case errors.Is(err, hierarchy.ErrIntegrity):
		s.integrity.Report(ctx, err)
		// A broken branch further down is quarantined now and skipped by the
		// next walk, so the task itself is still good.
		if ie, ok := hierarchy.AsIntegrityError(err); ok && ie.AccountID != task.AccountID {
			break
		}
		return s.deadLetter(ctx, task, err)
	case ctx.Err() != nil:
		return ctx.Err()
	}

	task.Attempts++
	if task.Attempts >= s.maxAttempts {
		return s.deadLetter(ctx, task, err)
	}

	next := s.now().Add(backoff(s.updateInterval, task.Attempts))
	if rErr := s.tasks.Retry(ctx, task, next, err.Error()); rErr != nil {
		return errors.Join(err, rErr)
	}
	metrics.RecomputeTasks.WithLabelValues("retried").Inc()
	zap.L().Warn("recompute failed, retrying",
		zap.String("account_id", task.AccountID),
		zap.Int("attempt", task.Attempts),
		zap.Time("next_attempt_at", next),
		zap.Error(err),
	)
	return nil
}

func (s *Service) complete(ctx context.Context, task domain.RecomputeTask) error {
	removed, err := s.tasks.Complete(ctx, task)
	if err != nil {
		return err
	}
	if !removed {
		zap.L().Debug("recompute task superseded", zap.String("account_id", task.AccountID))
	}
	metrics.RecomputeTasks.WithLabelValues("done").Inc()
	return nil
}

func (s *Service) deadLetter(ctx context.Context, task domain.RecomputeTask, cause error) error {
	if err := s.tasks.DeadLetter(ctx, task, cause.Error()); err != nil {
		return errors.Join(cause, err)
	}
	metrics.RecomputeTasks.WithLabelValues("dead_letter").Inc()
	zap.L().Error("recompute task moved to dead letter",
		zap.String("account_id", task.AccountID),
		zap.Int("attempts", task.Attempts),
		zap.Error(cause),
	)
	return s.publisher.Publish(ctx, notify.EventRecomputeDeadLetter, DeadLetter{
		AccountID: task.AccountID,
		Attempts:  task.Attempts,
		LastError: cause.Error(),
	})
}

// backoff doubles the base delay with every attempt, up to maxBackoff.
func backoff(base time.Duration, attempt int) time.Duration {
	d := base
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
