package rankservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/compengine/internal/domain"
	"github.com/GlebRadaev/compengine/internal/hierarchy"
	"github.com/GlebRadaev/compengine/internal/notify"
	"github.com/GlebRadaev/compengine/internal/pg"
	"github.com/GlebRadaev/compengine/internal/service/volumeservice"
	"github.com/GlebRadaev/compengine/pkg/metrics"
)

//go:generate mockgen -source=rankservice.go -destination=mock_rankservice.go -package=rankservice

type AccountRepo interface {
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
	UpdateRank(ctx context.Context, id string, rank domain.RankCode) error
	MutateStatus(ctx context.Context, id string, fn func(domain.AccountStatus) domain.AccountStatus) (domain.AccountStatus, error)
}

type RankRepo interface {
	AppendRecord(ctx context.Context, rec *domain.RankRecord) error
	ListRecords(ctx context.Context, accountID string) ([]domain.RankRecord, error)
}

type Walker interface {
	Downline(ctx context.Context, accountID string) ([]hierarchy.Node, error)
}

type VolumeService interface {
	Recompute(ctx context.Context, accountID string) (*domain.VolumeSnapshot, error)
}

type Publisher interface {
	Publish(ctx context.Context, kind string, payload any) error
}

var (
	ErrUnknownAccount = errors.New("unknown account")
	ErrUnknownRank    = errors.New("unknown rank")
	ErrNotFounder     = errors.New("assigner does not hold the founder capability")
	ErrRootRank       = errors.New("root account cannot hold a rank")
)

type RankChanged struct {
	AccountID  string            `json:"account_id"`
	Previous   domain.RankCode   `json:"previous"`
	Rank       domain.RankCode   `json:"rank"`
	Method     domain.RankMethod `json:"method"`
	AssignedBy *string           `json:"assigned_by,omitempty"`
}

type Service struct {
	accounts  AccountRepo
	ranks     RankRepo
	walker    Walker
	volumes   VolumeService
	publisher Publisher
	txManager pg.TXManager
	plan      domain.RankPlan
	now       func() time.Time
}

func New(accounts AccountRepo, ranks RankRepo, walker Walker, volumes VolumeService, publisher Publisher, txManager pg.TXManager, plan domain.RankPlan) *Service {
	return &Service{
		accounts:  accounts,
		ranks:     ranks,
		walker:    walker,
		volumes:   volumes,
		publisher: publisher,
		txManager: txManager,
		plan:      plan,
		now:       time.Now,
	}
}

// Evaluate refreshes the volume snapshot of an account and promotes it to the
// highest rank it qualifies for. It returns the new rank record, or nil when
// the rank did not change. Natural evaluation never demotes and leaves
// manually ranked accounts alone.
func (s *Service) Evaluate(ctx context.Context, accountID string) (*domain.RankRecord, error) {
	acc, err := s.accounts.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, ErrUnknownAccount
	}
	if !acc.Participates() {
		return nil, nil
	}

	snapshot, err := s.volumes.Recompute(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if acc.Status.ManualRank {
		return nil, nil
	}

	// the downline walk is only worth it when some rank is within volume reach
	if len(VolumeCandidates(s.plan, acc.Rank, snapshot.Branches)) == 0 {
		return nil, nil
	}
	partners, err := s.ActivePartnerCount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	r, ok := Qualify(s.plan, acc.Rank, snapshot.Branches, partners)
	if !ok {
		return nil, nil
	}
	return s.change(ctx, acc, r.Code, domain.NaturalRank, nil)
}

// ActivePartnerCount counts active accounts anywhere in the downline.
func (s *Service) ActivePartnerCount(ctx context.Context, accountID string) (int, error) {
	nodes, err := s.walker.Downline(ctx, accountID)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, node := range nodes {
		if node.Account.IsActive && node.Account.Participates() {
			n++
		}
	}
	return n, nil
}

// VolumeCandidates returns the ranks above current whose volume requirement
// the branches meet under the branch cap, highest first.
func VolumeCandidates(plan domain.RankPlan, current domain.RankCode, branches []domain.BranchVolume) []domain.Rank {
	var out []domain.Rank
	for _, r := range plan.Above(current) {
		if volumeservice.QualifyingVolume(branches, r.VolumeRequirement).GreaterThanOrEqual(r.VolumeRequirement) {
			out = append(out, r)
		}
	}
	return out
}

// Qualify returns the highest rank above current the account qualifies for.
func Qualify(plan domain.RankPlan, current domain.RankCode, branches []domain.BranchVolume, partners int) (domain.Rank, bool) {
	for _, r := range VolumeCandidates(plan, current, branches) {
		if partners >= r.ActivePartners {
			return r, true
		}
	}
	return domain.Rank{}, false
}

// AssignManual sets the rank of an account by hand. The assigned rank sticks
// until the next manual assignment.
func (s *Service) AssignManual(ctx context.Context, accountID string, rank domain.RankCode, assignedBy string) (*domain.RankRecord, error) {
	assigner, err := s.accounts.GetAccount(ctx, assignedBy)
	if err != nil {
		return nil, err
	}
	if assigner == nil || !assigner.Status.Founder {
		return nil, ErrNotFounder
	}
	if _, ok := s.plan.Lookup(rank); !ok {
		return nil, ErrUnknownRank
	}

	acc, err := s.accounts.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, ErrUnknownAccount
	}
	if acc.IsRoot() {
		return nil, ErrRootRank
	}

	return s.change(ctx, acc, rank, domain.ManualRank, &assignedBy)
}

func (s *Service) History(ctx context.Context, accountID string) ([]domain.RankRecord, error) {
	records, err := s.ranks.ListRecords(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to list rank records", zap.String("account_id", accountID), zap.Error(err))
		return nil, err
	}
	return records, nil
}

func (s *Service) change(ctx context.Context, acc *domain.Account, rank domain.RankCode, method domain.RankMethod, assignedBy *string) (*domain.RankRecord, error) {
	rec := &domain.RankRecord{
		ID:         uuid.NewString(),
		AccountID:  acc.ID,
		Rank:       rank,
		Method:     method,
		AssignedBy: assignedBy,
		CreatedAt:  s.now(),
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if method == domain.ManualRank {
			_, err := s.accounts.MutateStatus(ctx, acc.ID, func(st domain.AccountStatus) domain.AccountStatus {
				st.ManualRank = true
				return st
			})
			if err != nil {
				return err
			}
		}
		if err := s.accounts.UpdateRank(ctx, acc.ID, rank); err != nil {
			return err
		}
		if err := s.ranks.AppendRecord(ctx, rec); err != nil {
			return err
		}
		return s.publisher.Publish(ctx, notify.EventRankChanged, RankChanged{
			AccountID:  acc.ID,
			Previous:   acc.Rank,
			Rank:       rank,
			Method:     method,
			AssignedBy: assignedBy,
		})
	})
	if err != nil {
		zap.L().Error("failed to change rank", zap.String("account_id", acc.ID), zap.Error(err))
		return nil, err
	}

	metrics.RankChanges.WithLabelValues(string(method)).Inc()
	zap.L().Info("rank changed",
		zap.String("account_id", acc.ID),
		zap.String("from", string(acc.Rank)),
		zap.String("to", string(rank)),
		zap.String("method", string(method)),
	)
	return rec, nil
}
