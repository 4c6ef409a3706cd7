package balanceservice

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/compengine/internal/domain"
	"github.com/GlebRadaev/compengine/pkg/metrics"
)

//go:generate mockgen -source=balanceservice.go -destination=mock_balanceservice.go -package=balanceservice

type BalanceRepo interface {
	GetBalance(ctx context.Context, accountID string) (*domain.Balance, error)
	CreateBalance(ctx context.Context, accountID string) (*domain.Balance, error)
	Credit(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Balance, error)
}

type Service struct {
	balanceRepo BalanceRepo
}

func New(balanceRepo BalanceRepo) *Service {
	return &Service{
		balanceRepo: balanceRepo,
	}
}

func (s *Service) GetBalance(ctx context.Context, accountID string) (*domain.Balance, error) {
	balance, err := s.balanceRepo.GetBalance(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

func (s *Service) CreateBalance(ctx context.Context, accountID string) (*domain.Balance, error) {
	balance, err := s.balanceRepo.CreateBalance(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to create balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// CreditEntries credits each recipient once with the sum of its entries. Root
// never holds a balance and is skipped.
func (s *Service) CreditEntries(ctx context.Context, entries []domain.CommissionEntry) error {
	totals := make(map[string]decimal.Decimal)
	var order []string
	for _, e := range entries {
		if e.RecipientID == domain.RootID || !e.Amount.IsPositive() {
			continue
		}
		if _, ok := totals[e.RecipientID]; !ok {
			order = append(order, e.RecipientID)
		}
		totals[e.RecipientID] = totals[e.RecipientID].Add(e.Amount)
	}

	for _, id := range order {
		if _, err := s.balanceRepo.Credit(ctx, id, totals[id]); err != nil {
			zap.L().Error("failed to credit balance", zap.String("account_id", id), zap.Error(err))
			return err
		}
	}
	for _, e := range entries {
		if e.RecipientID != domain.RootID {
			metrics.AddAmount(metrics.CommissionPaid.WithLabelValues(string(e.Kind)), e.Amount)
		}
	}
	return nil
}
