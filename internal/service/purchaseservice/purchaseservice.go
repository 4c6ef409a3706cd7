package purchaseservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/compengine/internal/domain"
	"github.com/GlebRadaev/compengine/internal/notify"
	"github.com/GlebRadaev/compengine/internal/pg"
	"github.com/GlebRadaev/compengine/pkg/metrics"
	"github.com/GlebRadaev/compengine/pkg/validate"
)

//go:generate mockgen -source=purchaseservice.go -destination=mock_purchaseservice.go -package=purchaseservice

type PurchaseRepo interface {
	FindPurchase(ctx context.Context, purchaseID string) (*domain.Purchase, error)
	SavePurchase(ctx context.Context, p *domain.Purchase) (bool, error)
	SaveEntries(ctx context.Context, entries []domain.CommissionEntry) error
}

type AccountRepo interface {
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
}

type Walker interface {
	Upline(ctx context.Context, accountID string) ([]domain.Account, error)
}

type CommissionService interface {
	Compute(ctx context.Context, p *domain.Purchase, buyer *domain.Account, ancestors []domain.Account) ([]domain.CommissionEntry, error)
}

type VolumeService interface {
	ApplyPurchase(ctx context.Context, buyer *domain.Account, ancestors []domain.Account, amount decimal.Decimal) error
}

type BalanceService interface {
	CreditEntries(ctx context.Context, entries []domain.CommissionEntry) error
}

type IntegrityReporter interface {
	Report(ctx context.Context, err error) bool
}

type Publisher interface {
	Publish(ctx context.Context, kind string, payload any) error
}

var (
	ErrInvalidAmount           = errors.New("purchase amount must be positive")
	ErrInvalidPurchaseID       = errors.New("invalid purchase id")
	ErrUnknownAccount          = errors.New("unknown account")
	ErrRootPurchase            = errors.New("root account cannot purchase")
	ErrAccountQuarantined      = errors.New("account is quarantined")
	ErrPurchaseAlreadyRecorded = errors.New("purchase already recorded")
	ErrPurchaseIDTaken         = errors.New("purchase id recorded for another account")
)

// Receipt is the outcome of a recorded purchase.
type Receipt struct {
	Purchase domain.Purchase          `json:"purchase"`
	Entries  []domain.CommissionEntry `json:"entries"`
}

type Deps struct {
	Purchases   PurchaseRepo
	Accounts    AccountRepo
	Walker      Walker
	Commissions CommissionService
	Volumes     VolumeService
	Balances    BalanceService
	Integrity   IntegrityReporter
	Publisher   Publisher
	TxManager   pg.TXManager
}

type Service struct {
	purchases   PurchaseRepo
	accounts    AccountRepo
	walker      Walker
	commissions CommissionService
	volumes     VolumeService
	balances    BalanceService
	integrity   IntegrityReporter
	publisher   Publisher
	txManager   pg.TXManager
	now         func() time.Time
}

func New(d Deps) *Service {
	return &Service{
		purchases:   d.Purchases,
		accounts:    d.Accounts,
		walker:      d.Walker,
		commissions: d.Commissions,
		volumes:     d.Volumes,
		balances:    d.Balances,
		integrity:   d.Integrity,
		publisher:   d.Publisher,
		txManager:   d.TxManager,
		now:         time.Now,
	}
}

// Record takes a purchase in exactly once. The purchase, its commission
// entries, balance credits, volume updates, recompute requests and the
// outbound event commit together or not at all.
func (s *Service) Record(ctx context.Context, accountID, purchaseID string, amount decimal.Decimal, at time.Time) (*Receipt, error) {
	buyer, err := s.validate(ctx, accountID, purchaseID, amount)
	if err != nil {
		s.observe(err)
		return nil, err
	}

	// the walk runs outside the transaction so that a quarantine is not
	// rolled back together with the rejected purchase
	ancestors, err := s.walker.Upline(ctx, accountID)
	if err != nil {
		s.integrity.Report(ctx, err)
		s.observe(err)
		return nil, err
	}

	if at.IsZero() {
		at = s.now()
	}
	p := domain.Purchase{ID: purchaseID, AccountID: accountID, Amount: amount, CreatedAt: at}

	var entries []domain.CommissionEntry
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		inserted, err := s.purchases.SavePurchase(ctx, &p)
		if err != nil {
			return err
		}
		if !inserted {
			return ErrPurchaseAlreadyRecorded
		}

		entries, err = s.commissions.Compute(ctx, &p, buyer, ancestors)
		if err != nil {
			return err
		}
		if err := s.purchases.SaveEntries(ctx, entries); err != nil {
			return err
		}
		if err := s.balances.CreditEntries(ctx, entries); err != nil {
			return err
		}
		if err := s.volumes.ApplyPurchase(ctx, buyer, ancestors, amount); err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return s.publisher.Publish(ctx, notify.EventCommissionCreated, Receipt{Purchase: p, Entries: entries})
	})
	s.observe(err)
	if err != nil {
		if !errors.Is(err, ErrPurchaseAlreadyRecorded) {
			zap.L().Error("failed to record purchase", zap.String("purchase_id", purchaseID), zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("purchase recorded",
		zap.String("purchase_id", purchaseID),
		zap.String("account_id", accountID),
		zap.String("amount", amount.String()),
		zap.Int("entries", len(entries)),
	)
	return &Receipt{Purchase: p, Entries: entries}, nil
}

func (s *Service) validate(ctx context.Context, accountID, purchaseID string, amount decimal.Decimal) (*domain.Account, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if !validate.IsPurchaseID(purchaseID) {
		return nil, ErrInvalidPurchaseID
	}

	existing, err := s.purchases.FindPurchase(ctx, purchaseID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.AccountID == accountID {
			zap.L().Info("purchase already recorded", zap.String("purchase_id", purchaseID))
			return nil, ErrPurchaseAlreadyRecorded
		}
		zap.L().Info("purchase id taken", zap.String("purchase_id", purchaseID))
		return nil, ErrPurchaseIDTaken
	}

	buyer, err := s.accounts.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	switch {
	case buyer == nil:
		return nil, ErrUnknownAccount
	case buyer.IsRoot():
		return nil, ErrRootPurchase
	case buyer.Status.Quarantined:
		return nil, ErrAccountQuarantined
	}
	return buyer, nil
}

func (s *Service) observe(err error) {
	outcome := "recorded"
	switch {
	case err == nil:
	case errors.Is(err, ErrPurchaseAlreadyRecorded), errors.Is(err, ErrPurchaseIDTaken):
		outcome = "duplicate"
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrInvalidPurchaseID),
		errors.Is(err, ErrUnknownAccount), errors.Is(err, ErrRootPurchase), errors.Is(err, ErrAccountQuarantined):
		outcome = "rejected"
	default:
		outcome = "failed"
	}
	metrics.PurchasesRecorded.WithLabelValues(outcome).Inc()
}
