package integrityservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/compengine/internal/domain"
	"github.com/GlebRadaev/compengine/internal/hierarchy"
	"github.com/GlebRadaev/compengine/internal/notify"
	"github.com/GlebRadaev/compengine/internal/pg"
	"github.com/GlebRadaev/compengine/pkg/metrics"
)

//go:generate mockgen -source=integrityservice.go -destination=mock_integrityservice.go -package=integrityservice

type AccountRepo interface {
	MutateStatus(ctx context.Context, id string, fn func(domain.AccountStatus) domain.AccountStatus) (domain.AccountStatus, error)
}

type AlertRepo interface {
	SaveAlert(ctx context.Context, a *domain.IntegrityAlert) error
}

type Publisher interface {
	Publish(ctx context.Context, kind string, payload any) error
}

type Service struct {
	accounts  AccountRepo
	alerts    AlertRepo
	publisher Publisher
	txManager pg.TXManager
}

func New(accounts AccountRepo, alerts AlertRepo, publisher Publisher, txManager pg.TXManager) *Service {
	return &Service{
		accounts:  accounts,
		alerts:    alerts,
		publisher: publisher,
		txManager: txManager,
	}
}

// Report quarantines the branch named by err if err is a hierarchy integrity
// error, and reports whether it was one. Call it with a context that is not
// bound to a transaction the caller is about to roll back.
func (s *Service) Report(ctx context.Context, err error) bool {
	ie, ok := hierarchy.AsIntegrityError(err)
	if !ok {
		return false
	}
	if qErr := s.Quarantine(ctx, ie); qErr != nil {
		zap.L().Error("can't quarantine branch", zap.String("account_id", ie.AccountID), zap.Error(qErr))
	}
	return true
}

// Quarantine excludes the branch head from every further financial flow and
// raises an alert. Committed history is left untouched.
func (s *Service) Quarantine(ctx context.Context, ie *hierarchy.IntegrityError) error {
	alert := &domain.IntegrityAlert{
		ID:        uuid.NewString(),
		AccountID: ie.AccountID,
		Kind:      string(ie.Kind),
		Detail:    fmt.Sprintf("%s detected at %s", ie.Kind, ie.Offender),
		CreatedAt: time.Now(),
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := s.accounts.MutateStatus(ctx, ie.AccountID, func(st domain.AccountStatus) domain.AccountStatus {
			st.Quarantined = true
			return st
		})
		if err != nil {
			return err
		}
		if err := s.alerts.SaveAlert(ctx, alert); err != nil {
			return err
		}
		return s.publisher.Publish(ctx, notify.EventIntegrityAlert, alert)
	})
	if err != nil {
		return err
	}

	metrics.IntegrityAlerts.WithLabelValues(alert.Kind).Inc()
	zap.L().Warn("branch quarantined",
		zap.String("account_id", alert.AccountID),
		zap.String("kind", alert.Kind),
		zap.String("offender", ie.Offender),
	)
	return nil
}
