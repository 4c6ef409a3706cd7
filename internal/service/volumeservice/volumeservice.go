package volumeservice

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/compengine/internal/domain"
	"github.com/GlebRadaev/compengine/internal/hierarchy"
)

//go:generate mockgen -source=volumeservice.go -destination=mock_volumeservice.go -package=volumeservice

type AccountRepo interface {
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
	AddPurchaseVolume(ctx context.Context, id string, amount decimal.Decimal) error
	AddFullVolume(ctx context.Context, ids []string, amount decimal.Decimal) error
	ResetPeriod(ctx context.Context, threshold decimal.Decimal) (int64, error)
}

type SnapshotRepo interface {
	GetSnapshot(ctx context.Context, accountID string) (*domain.VolumeSnapshot, error)
	SaveSnapshot(ctx context.Context, s *domain.VolumeSnapshot) error
}

type TaskRepo interface {
	Enqueue(ctx context.Context, accountIDs []string, requestedAt time.Time) error
}

type Walker interface {
	Branches(ctx context.Context, accountID string) ([]hierarchy.Branch, error)
}

var (
	ErrUnknownAccount   = errors.New("unknown account")
	ErrNotParticipating = errors.New("account does not take part in financial flows")
)

var branchCap = decimal.RequireFromString("0.5")

type Service struct {
	accounts  AccountRepo
	snapshots SnapshotRepo
	tasks     TaskRepo
	walker    Walker
	plan      domain.RankPlan
	threshold decimal.Decimal
	now       func() time.Time
}

func New(accounts AccountRepo, snapshots SnapshotRepo, tasks TaskRepo, walker Walker, plan domain.RankPlan, threshold decimal.Decimal) *Service {
	return &Service{
		accounts:  accounts,
		snapshots: snapshots,
		tasks:     tasks,
		walker:    walker,
		plan:      plan,
		threshold: threshold,
		now:       time.Now,
	}
}

// ApplyPurchase books a purchase into the buyer's personal volume and the full
// volume of every participating ancestor, then asks for a qualifying volume
// recompute of those ancestors. It must run inside the purchase transaction.
func (s *Service) ApplyPurchase(ctx context.Context, buyer *domain.Account, ancestors []domain.Account, amount decimal.Decimal) error {
	if !buyer.Participates() {
		return ErrNotParticipating
	}
	if err := s.accounts.AddPurchaseVolume(ctx, buyer.ID, amount); err != nil {
		zap.L().Error("failed to add purchase volume", zap.String("account_id", buyer.ID), zap.Error(err))
		return err
	}

	ids := make([]string, 0, len(ancestors))
	for _, a := range ancestors {
		if a.Participates() {
			ids = append(ids, a.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	if err := s.accounts.AddFullVolume(ctx, ids, amount); err != nil {
		zap.L().Error("failed to add full volume", zap.Error(err))
		return err
	}
	if err := s.tasks.Enqueue(ctx, ids, s.now()); err != nil {
		zap.L().Error("failed to enqueue recompute", zap.Error(err))
		return err
	}
	return nil
}

// Recompute rebuilds the qualifying volume snapshot of an account from the
// current state of its downline, aimed at the rank right above its current
// one. The stored snapshot is replaced, never patched, so running it twice
// gives the same result.
func (s *Service) Recompute(ctx context.Context, accountID string) (*domain.VolumeSnapshot, error) {
	acc, err := s.accounts.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, ErrUnknownAccount
	}
	if !acc.Participates() {
		return nil, ErrNotParticipating
	}

	branches, err := s.walker.Branches(ctx, accountID)
	if err != nil {
		return nil, err
	}

	target := s.plan.Next(acc.Rank)
	volumes := BranchVolumes(branches)
	snapshot := &domain.VolumeSnapshot{
		AccountID:        acc.ID,
		FullVolume:       acc.FullVolume,
		QualifyingVolume: QualifyingVolume(volumes, target.VolumeRequirement),
		TargetRank:       target.Code,
		Branches:         volumes,
		ComputedAt:       s.now(),
	}
	if err := s.snapshots.SaveSnapshot(ctx, snapshot); err != nil {
		zap.L().Error("failed to save volume snapshot", zap.String("account_id", accountID), zap.Error(err))
		return nil, err
	}
	return snapshot, nil
}

func (s *Service) GetSnapshot(ctx context.Context, accountID string) (*domain.VolumeSnapshot, error) {
	return s.snapshots.GetSnapshot(ctx, accountID)
}

// ResetPeriod closes the activity window: accounts are active for the next
// period when their personal volume reached the threshold, then personal
// volume starts over. Full volume and snapshots are kept.
func (s *Service) ResetPeriod(ctx context.Context) error {
	n, err := s.accounts.ResetPeriod(ctx, s.threshold)
	if err != nil {
		zap.L().Error("failed to reset period volume", zap.Error(err))
		return err
	}
	zap.L().Info("period volume reset", zap.Int64("accounts", n))
	return nil
}

// BranchVolumes sums the own volume of every account in each branch. The result
// is sorted by volume, largest first.
func BranchVolumes(branches []hierarchy.Branch) []domain.BranchVolume {
	out := make([]domain.BranchVolume, 0, len(branches))
	for _, b := range branches {
		vol := decimal.Zero
		for _, n := range b.Nodes {
			if n.Account.Status.Quarantined {
				continue
			}
			vol = vol.Add(n.Account.OwnVolume)
		}
		out = append(out, domain.BranchVolume{HeadID: b.Head.ID, Volume: vol})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Volume.GreaterThan(out[j].Volume)
	})
	return out
}

// QualifyingVolume applies the single branch cap: the largest branch counts for
// at most half of the requirement, every other branch counts in full.
func QualifyingVolume(branches []domain.BranchVolume, requirement decimal.Decimal) decimal.Decimal {
	if len(branches) == 0 {
		return decimal.Zero
	}
	largest := 0
	for i, b := range branches {
		if b.Volume.GreaterThan(branches[largest].Volume) {
			largest = i
		}
	}

	total := decimal.Min(branches[largest].Volume, requirement.Mul(branchCap))
	for i, b := range branches {
		if i != largest {
			total = total.Add(b.Volume)
		}
	}
	return total
}
