package poolservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/compengine/internal/domain"
	"github.com/GlebRadaev/compengine/internal/hierarchy"
	"github.com/GlebRadaev/compengine/internal/notify"
	"github.com/GlebRadaev/compengine/pkg/metrics"
)

//go:generate mockgen -source=poolservice.go -destination=mock_poolservice.go -package=poolservice

type AccountRepo interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	SumActiveVolume(ctx context.Context, threshold decimal.Decimal) (decimal.Decimal, error)
}

type DistributionRepo interface {
	LastCarry(ctx context.Context) (decimal.Decimal, error)
	SaveDistribution(ctx context.Context, d *domain.PoolDistribution) error
}

type EntryRepo interface {
	SaveEntries(ctx context.Context, entries []domain.CommissionEntry) error
}

type BalanceService interface {
	CreditEntries(ctx context.Context, entries []domain.CommissionEntry) error
}

type Publisher interface {
	Publish(ctx context.Context, kind string, payload any) error
}

const poolPurchasePrefix = "pool:"

type Service struct {
	accounts      AccountRepo
	distributions DistributionRepo
	entries       EntryRepo
	balances      BalanceService
	publisher     Publisher
	plan          domain.RankPlan
	rate          decimal.Decimal
	threshold     decimal.Decimal
	now           func() time.Time
}

func New(
	accounts AccountRepo,
	distributions DistributionRepo,
	entries EntryRepo,
	balances BalanceService,
	publisher Publisher,
	plan domain.RankPlan,
	rate, threshold decimal.Decimal,
) *Service {
	return &Service{
		accounts:      accounts,
		distributions: distributions,
		entries:       entries,
		balances:      balances,
		publisher:     publisher,
		plan:          plan,
		rate:          rate,
		threshold:     threshold,
		now:           time.Now,
	}
}

// Distribute splits the period's pool equally among qualified accounts. It must
// run inside the period transaction, before personal volume is reset.
func (s *Service) Distribute(ctx context.Context, periodID string) (*domain.PoolDistribution, error) {
	volume, err := s.accounts.SumActiveVolume(ctx, s.threshold)
	if err != nil {
		return nil, err
	}
	carriedIn, err := s.distributions.LastCarry(ctx)
	if err != nil {
		return nil, err
	}
	accounts, err := s.accounts.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	d := Split(periodID, volume.Mul(s.rate).Add(carriedIn), Qualified(s.plan, accounts))
	d.CompanyVolume = volume
	d.CarriedIn = carriedIn
	d.DistributedAt = s.now()

	if err := s.distributions.SaveDistribution(ctx, d); err != nil {
		return nil, err
	}

	entries := make([]domain.CommissionEntry, 0, len(d.Recipients))
	for _, id := range d.Recipients {
		entries = append(entries, domain.CommissionEntry{
			ID:          uuid.NewString(),
			RecipientID: id,
			PurchaseID:  poolPurchasePrefix + periodID,
			Kind:        domain.PoolEntry,
			Rate:        s.rate,
			Amount:      d.Share,
			CreatedAt:   d.DistributedAt,
		})
	}
	if err := s.entries.SaveEntries(ctx, entries); err != nil {
		return nil, err
	}
	if err := s.balances.CreditEntries(ctx, entries); err != nil {
		return nil, err
	}
	if err := s.publisher.Publish(ctx, notify.EventPoolDistributed, d); err != nil {
		return nil, err
	}

	outcome := "distributed"
	if len(d.Recipients) == 0 {
		outcome = "carried"
	}
	metrics.PoolDistributed.WithLabelValues(outcome).Inc()
	zap.L().Info("pool distributed",
		zap.String("period_id", periodID),
		zap.String("pool", d.PoolAmount.String()),
		zap.Int("recipients", len(d.Recipients)),
		zap.String("share", d.Share.String()),
		zap.String("carried_out", d.CarriedOut.String()),
	)
	return d, nil
}

// Split shares pool equally, rounded down to cents. Whatever is not paid out
// is carried to the next period.
func Split(periodID string, pool decimal.Decimal, recipients []string) *domain.PoolDistribution {
	d := &domain.PoolDistribution{
		PeriodID:   periodID,
		PoolAmount: pool,
		Share:      decimal.Zero,
		CarriedOut: pool,
		Recipients: recipients,
	}
	if len(recipients) == 0 {
		d.Recipients = []string{}
		return d
	}

	n := decimal.NewFromInt(int64(len(recipients)))
	d.Share = pool.Div(n).RoundDown(2)
	d.CarriedOut = pool.Sub(d.Share.Mul(n))
	return d
}

// Qualified returns the accounts with at least two direct branches that hold a
// top rank account somewhere below them, in tree order.
func Qualified(plan domain.RankPlan, accounts []domain.Account) []string {
	top := plan.Top().Code
	tree := hierarchy.NewTree(accounts)
	marked := tree.Mark(func(a domain.Account) bool {
		return a.Rank == top && a.Participates()
	})

	var out []string
	tree.Walk(func(a domain.Account) {
		if !a.Participates() || !marked[a.ID] {
			return
		}
		n := 0
		for _, c := range tree.Children(a.ID) {
			if marked[c] {
				n++
			}
		}
		if n >= 2 {
			out = append(out, a.ID)
		}
	})
	return out
}
