package periodservice

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/compengine/internal/domain"
	"github.com/GlebRadaev/compengine/internal/pg"
)

//go:generate mockgen -source=periodservice.go -destination=mock_periodservice.go -package=periodservice

type PeriodRepo interface {
	Claim(ctx context.Context, periodID string, startedAt time.Time) (bool, error)
	Complete(ctx context.Context, periodID string, completedAt time.Time) error
	GetPeriod(ctx context.Context, periodID string) (*domain.Period, error)
	FindDistribution(ctx context.Context, periodID string) (*domain.PoolDistribution, error)
}

type PoolService interface {
	Distribute(ctx context.Context, periodID string) (*domain.PoolDistribution, error)
}

type VolumeService interface {
	ResetPeriod(ctx context.Context) error
}

var (
	ErrPeriodAlreadyProcessed = errors.New("period already processed")
	ErrInvalidPeriod          = errors.New("invalid period id")
)

const maxPeriodIDLen = 64

type Service struct {
	periods   PeriodRepo
	pool      PoolService
	volumes   VolumeService
	txManager pg.TXManager
	now       func() time.Time

	mu sync.Mutex
}

func New(periods PeriodRepo, pool PoolService, volumes VolumeService, txManager pg.TXManager) *Service {
	return &Service{
		periods:   periods,
		pool:      pool,
		volumes:   volumes,
		txManager: txManager,
		now:       time.Now,
	}
}

// Close runs the period boundary job: distribute the pool, then reset personal
// volume and activity, all in one transaction. A period id is processed at
// most once; the claim row survives restarts and the mutex keeps two callers
// in this process from racing on it.
func (s *Service) Close(ctx context.Context, periodID string) (*domain.PoolDistribution, error) {
	periodID = strings.TrimSpace(periodID)
	if periodID == "" || len(periodID) > maxPeriodIDLen {
		return nil, ErrInvalidPeriod
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var d *domain.PoolDistribution
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		claimed, err := s.periods.Claim(ctx, periodID, s.now())
		if err != nil {
			return err
		}
		if !claimed {
			return ErrPeriodAlreadyProcessed
		}

		d, err = s.pool.Distribute(ctx, periodID)
		if err != nil {
			return err
		}
		if err := s.volumes.ResetPeriod(ctx); err != nil {
			return err
		}
		return s.periods.Complete(ctx, periodID, s.now())
	})
	if err != nil {
		if errors.Is(err, ErrPeriodAlreadyProcessed) {
			zap.L().Info("period already processed", zap.String("period_id", periodID))
		} else {
			zap.L().Error("failed to close period", zap.String("period_id", periodID), zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("period closed", zap.String("period_id", periodID))
	return d, nil
}

// Get returns the period and its pool distribution, if it was closed.
func (s *Service) Get(ctx context.Context, periodID string) (*domain.Period, *domain.PoolDistribution, error) {
	p, err := s.periods.GetPeriod(ctx, periodID)
	if err != nil || p == nil {
		return nil, nil, err
	}
	d, err := s.periods.FindDistribution(ctx, periodID)
	if err != nil {
		return nil, nil, err
	}
	return p, d, nil
}
