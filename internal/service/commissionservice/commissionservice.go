package commissionservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/compengine/internal/domain"
	"github.com/GlebRadaev/compengine/pkg/metrics"
)

//go:generate mockgen -source=commissionservice.go -destination=mock_commissionservice.go -package=commissionservice

type PioneerRepo interface {
	TryGrantSlot(ctx context.Context) (bool, error)
}

type AccountRepo interface {
	LockStatus(ctx context.Context, id string) (domain.AccountStatus, error)
	MutateStatus(ctx context.Context, id string, fn func(domain.AccountStatus) domain.AccountStatus) (domain.AccountStatus, error)
}

type Config struct {
	PioneerMinAmount  decimal.Decimal
	PioneerRate       decimal.Decimal
	ReferralRate      decimal.Decimal
	ReferralMinAmount decimal.Decimal
}

type Service struct {
	pioneers PioneerRepo
	accounts AccountRepo
	plan     domain.RankPlan
	cfg      Config
	now      func() time.Time
}

func New(pioneers PioneerRepo, accounts AccountRepo, plan domain.RankPlan, cfg Config) *Service {
	return &Service{
		pioneers: pioneers,
		accounts: accounts,
		plan:     plan,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Compute produces every commission entry a purchase pays out. ancestors is the
// buyer's upline, nearest first, without Root. It may grant the buyer pioneer
// status, so it must run inside the purchase transaction.
func (s *Service) Compute(ctx context.Context, p *domain.Purchase, buyer *domain.Account, ancestors []domain.Account) ([]domain.CommissionEntry, error) {
	if err := s.grantPioneer(ctx, p, buyer); err != nil {
		return nil, err
	}

	now := s.now()
	entries := Differential(s.plan, p.Amount, ancestors)
	if ref, ok := s.referral(p.Amount, ancestors); ok {
		entries = append(entries, ref)
	}
	entries = append(entries, s.pioneerExtras(entries, ancestors)...)

	for i := range entries {
		entries[i].ID = uuid.NewString()
		entries[i].PurchaseID = p.ID
		entries[i].CreatedAt = now
	}
	return entries, nil
}

// Differential walks the upline paying each active ancestor the difference
// between its rate and the highest rate already paid. Inactive or quarantined
// ancestors pass their rank rate on to the next active one. The paid rate
// never decreases along the walk.
func Differential(plan domain.RankPlan, amount decimal.Decimal, ancestors []domain.Account) []domain.CommissionEntry {
	maxRate := plan.MaxRate()
	lastRate := decimal.Zero
	pending := decimal.Zero

	var entries []domain.CommissionEntry
	for _, a := range ancestors {
		if lastRate.GreaterThanOrEqual(maxRate) || a.IsRoot() {
			break
		}
		rankRate := plan.Rate(a.Rank)
		if !a.IsActive || !a.Participates() {
			pending = pending.Add(rankRate)
			continue
		}

		compressed := pending.IsPositive()
		rate := decimal.Min(rankRate.Add(pending), maxRate)
		pending = decimal.Zero
		if !rate.GreaterThan(lastRate) {
			continue
		}

		diff := rate.Sub(lastRate)
		lastRate = rate
		value := amount.Mul(diff).RoundDown(2)
		if !value.IsPositive() {
			continue
		}
		entries = append(entries, domain.CommissionEntry{
			RecipientID: a.ID,
			Kind:        domain.DifferentialEntry,
			Rate:        diff,
			Amount:      value,
			Compressed:  compressed,
		})
	}
	return entries
}

func (s *Service) referral(amount decimal.Decimal, ancestors []domain.Account) (domain.CommissionEntry, bool) {
	if len(ancestors) == 0 || amount.LessThan(s.cfg.ReferralMinAmount) {
		return domain.CommissionEntry{}, false
	}
	direct := ancestors[0]
	if !direct.Participates() {
		return domain.CommissionEntry{}, false
	}
	value := amount.Mul(s.cfg.ReferralRate).RoundDown(2)
	if !value.IsPositive() {
		return domain.CommissionEntry{}, false
	}
	return domain.CommissionEntry{
		RecipientID: direct.ID,
		Kind:        domain.ReferralEntry,
		Rate:        s.cfg.ReferralRate,
		Amount:      value,
	}, true
}

// pioneerExtras adds one pioneer entry per pioneer recipient, sized on the sum
// of everything else that recipient earns from the purchase.
func (s *Service) pioneerExtras(entries []domain.CommissionEntry, ancestors []domain.Account) []domain.CommissionEntry {
	pioneers := make(map[string]bool, len(ancestors))
	for _, a := range ancestors {
		if a.Status.Pioneer && a.Participates() {
			pioneers[a.ID] = true
		}
	}
	if len(pioneers) == 0 {
		return nil
	}

	earned := make(map[string]decimal.Decimal)
	var order []string
	for _, e := range entries {
		if !pioneers[e.RecipientID] {
			continue
		}
		if _, ok := earned[e.RecipientID]; !ok {
			order = append(order, e.RecipientID)
		}
		earned[e.RecipientID] = earned[e.RecipientID].Add(e.Amount)
	}

	extras := make([]domain.CommissionEntry, 0, len(order))
	for _, id := range order {
		value := earned[id].Mul(s.cfg.PioneerRate).RoundDown(2)
		if !value.IsPositive() {
			continue
		}
		extras = append(extras, domain.CommissionEntry{
			RecipientID: id,
			Kind:        domain.PioneerEntry,
			Rate:        s.cfg.PioneerRate,
			Amount:      value,
		})
	}
	return extras
}

// grantPioneer takes a slot only for a buyer that is not a pioneer yet. The
// buyer row stays locked until the purchase transaction ends, so a concurrent
// purchase by the same buyer sees the grant and leaves the ledger alone.
func (s *Service) grantPioneer(ctx context.Context, p *domain.Purchase, buyer *domain.Account) error {
	if buyer.Status.Pioneer || !buyer.Participates() || p.Amount.LessThan(s.cfg.PioneerMinAmount) {
		return nil
	}

	current, err := s.accounts.LockStatus(ctx, buyer.ID)
	if err != nil {
		zap.L().Error("failed to lock buyer status", zap.String("account_id", buyer.ID), zap.Error(err))
		return err
	}
	if current.Pioneer || current.Quarantined {
		buyer.Status = current
		return nil
	}

	granted, err := s.pioneers.TryGrantSlot(ctx)
	if err != nil {
		zap.L().Error("failed to take pioneer slot", zap.Error(err))
		return err
	}
	if !granted {
		return nil
	}

	status, err := s.accounts.MutateStatus(ctx, buyer.ID, func(st domain.AccountStatus) domain.AccountStatus {
		st.Pioneer = true
		return st
	})
	if err != nil {
		zap.L().Error("failed to grant pioneer status", zap.String("account_id", buyer.ID), zap.Error(err))
		return err
	}
	buyer.Status = status

	metrics.PioneerGrants.Inc()
	zap.L().Info("pioneer status granted", zap.String("account_id", buyer.ID), zap.String("purchase_id", p.ID))
	return nil
}
