package rankservice

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/compengine/internal/domain"
	"github.com/GlebRadaev/compengine/internal/hierarchy"
	"github.com/GlebRadaev/compengine/internal/notify"
	"github.com/GlebRadaev/compengine/internal/pg"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type mocks struct {
	accounts  *MockAccountRepo
	ranks     *MockRankRepo
	walker    *MockWalker
	volumes   *MockVolumeService
	publisher *MockPublisher
	tx        *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		accounts:  NewMockAccountRepo(ctrl),
		ranks:     NewMockRankRepo(ctrl),
		walker:    NewMockWalker(ctrl),
		volumes:   NewMockVolumeService(ctrl),
		publisher: NewMockPublisher(ctrl),
		tx:        pg.NewMockTXManager(ctrl),
	}
	s := New(m.accounts, m.ranks, m.walker, m.volumes, m.publisher, m.tx, domain.DefaultRankPlan())
	s.now = func() time.Time { return fixedNow }
	return s, m
}

func passThrough(m mocks) {
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func volumes(vs ...int64) []domain.BranchVolume {
	out := make([]domain.BranchVolume, 0, len(vs))
	for i, v := range vs {
		out = append(out, domain.BranchVolume{HeadID: fmt.Sprintf("b%d", i), Volume: decimal.NewFromInt(v)})
	}
	return out
}

// downline builds a tree with inactive direct children and active accounts
// only at depth 2 and 3.
func downline(activeCount int) []hierarchy.Node {
	nodes := []hierarchy.Node{
		{Account: domain.Account{ID: "d1", UplineID: "a"}, Depth: 1},
		{Account: domain.Account{ID: "d2", UplineID: "a"}, Depth: 1},
	}
	for i := 0; i < activeCount; i++ {
		depth := 2 + i%2
		nodes = append(nodes, hierarchy.Node{
			Account: domain.Account{ID: fmt.Sprintf("n%d", i), UplineID: "d1", IsActive: true},
			Depth:   depth,
		})
	}
	return nodes
}

func TestQualify(t *testing.T) {
	plan := domain.DefaultRankPlan()

	tests := []struct {
		name     string
		current  domain.RankCode
		branches []domain.BranchVolume
		partners int
		want     domain.RankCode
		ok       bool
	}{
		{
			name:     "Branch cap keeps the account below director",
			current:  "manager",
			branches: volumes(150000, 50000, 50000),
			partners: 12,
			ok:       false,
		},
		{
			name:     "Highest reachable rank wins",
			current:  "leader",
			branches: volumes(150000, 50000, 50000),
			partners: 12,
			want:     "manager",
			ok:       true,
		},
		{
			name:     "Too few partners for manager falls back to lower ranks only",
			current:  "builder",
			branches: volumes(150000, 50000, 50000),
			partners: 9,
			want:     "leader",
			ok:       true,
		},
		{
			name:     "Unranked account reaches the entry rank",
			current:  "",
			branches: nil,
			partners: 0,
			want:     "start",
			ok:       true,
		},
		{
			name:     "Volume without partners",
			current:  "start",
			branches: volumes(100000, 100000),
			partners: 0,
			ok:       false,
		},
		{
			name:     "Top rank has nowhere to go",
			current:  "director",
			branches: volumes(500000, 500000),
			partners: 100,
			ok:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Qualify(plan, tt.current, tt.branches, tt.partners)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got.Code)
			}
		})
	}
}

func TestService_ActivePartnerCount(t *testing.T) {
	s, m := NewMock(t)
	nodes := downline(12)
	nodes = append(nodes, hierarchy.Node{
		Account: domain.Account{ID: "q", UplineID: "d2", IsActive: true, Status: domain.AccountStatus{Quarantined: true}},
		Depth:   2,
	})
	m.walker.EXPECT().Downline(gomock.Any(), "a").Return(nodes, nil)

	n, err := s.ActivePartnerCount(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, 12, n)
}

func TestService_Evaluate(t *testing.T) {
	account := func(rank domain.RankCode, status domain.AccountStatus) *domain.Account {
		return &domain.Account{ID: "a", UplineID: domain.RootID, Rank: rank, Status: status}
	}
	snapshot := &domain.VolumeSnapshot{AccountID: "a", Branches: volumes(150000, 50000, 50000)}
	dbErr := errors.New("database error")

	tests := []struct {
		name        string
		prepareMock func(m mocks)
		wantRank    domain.RankCode
		wantErr     error
	}{
		{
			name: "Promotes to the highest qualified rank",
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().GetAccount(gomock.Any(), "a").Return(account("builder", domain.AccountStatus{}), nil)
				m.volumes.EXPECT().Recompute(gomock.Any(), "a").Return(snapshot, nil)
				m.walker.EXPECT().Downline(gomock.Any(), "a").Return(downline(12), nil)
				passThrough(m)
				m.accounts.EXPECT().UpdateRank(gomock.Any(), "a", domain.RankCode("manager")).Return(nil)
				m.ranks.EXPECT().AppendRecord(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec *domain.RankRecord) error {
					assert.Equal(t, domain.NaturalRank, rec.Method)
					assert.Nil(t, rec.AssignedBy)
					return nil
				})
				m.publisher.EXPECT().Publish(gomock.Any(), notify.EventRankChanged, RankChanged{
					AccountID: "a", Previous: "builder", Rank: "manager", Method: domain.NaturalRank,
				}).Return(nil)
			},
			wantRank: "manager",
		},
		{
			name: "Manual rank is left alone",
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().GetAccount(gomock.Any(), "a").Return(account("start", domain.AccountStatus{ManualRank: true}), nil)
				m.volumes.EXPECT().Recompute(gomock.Any(), "a").Return(snapshot, nil)
			},
		},
		{
			name: "No rank within volume reach skips the downline walk",
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().GetAccount(gomock.Any(), "a").Return(account("manager", domain.AccountStatus{}), nil)
				m.volumes.EXPECT().Recompute(gomock.Any(), "a").Return(snapshot, nil)
			},
		},
		{
			name: "Not enough partners",
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().GetAccount(gomock.Any(), "a").Return(account("builder", domain.AccountStatus{}), nil)
				m.volumes.EXPECT().Recompute(gomock.Any(), "a").Return(snapshot, nil)
				m.walker.EXPECT().Downline(gomock.Any(), "a").Return(downline(2), nil)
			},
		},
		{
			name: "Quarantined account is skipped",
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().GetAccount(gomock.Any(), "a").Return(account("builder", domain.AccountStatus{Quarantined: true}), nil)
			},
		},
		{
			name: "Root is never ranked",
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().GetAccount(gomock.Any(), "a").Return(&domain.Account{ID: domain.RootID, UplineID: domain.RootID}, nil)
			},
		},
		{
			name: "Unknown account",
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().GetAccount(gomock.Any(), "a").Return(nil, nil)
			},
			wantErr: ErrUnknownAccount,
		},
		{
			name: "Recompute failure",
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().GetAccount(gomock.Any(), "a").Return(account("builder", domain.AccountStatus{}), nil)
				m.volumes.EXPECT().Recompute(gomock.Any(), "a").Return(nil, dbErr)
			},
			wantErr: dbErr,
		},
		{
			name: "Rank write failure rolls back",
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().GetAccount(gomock.Any(), "a").Return(account("builder", domain.AccountStatus{}), nil)
				m.volumes.EXPECT().Recompute(gomock.Any(), "a").Return(snapshot, nil)
				m.walker.EXPECT().Downline(gomock.Any(), "a").Return(downline(12), nil)
				passThrough(m)
				m.accounts.EXPECT().UpdateRank(gomock.Any(), "a", domain.RankCode("manager")).Return(dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := NewMock(t)
			tt.prepareMock(m)

			rec, err := s.Evaluate(context.Background(), "a")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.wantRank == "" {
				assert.Nil(t, rec)
				return
			}
			require.NotNil(t, rec)
			assert.Equal(t, tt.wantRank, rec.Rank)
			assert.Equal(t, fixedNow, rec.CreatedAt)
		})
	}
}

func TestService_AssignManual(t *testing.T) {
	founder := &domain.Account{ID: "f", UplineID: domain.RootID, Status: domain.AccountStatus{Founder: true}}
	target := &domain.Account{ID: "a", UplineID: "f", Rank: "start"}

	tests := []struct {
		name        string
		rank        domain.RankCode
		prepareMock func(m mocks)
		wantErr     error
	}{
		{
			name: "Founder assigns a rank",
			rank: "director",
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().GetAccount(gomock.Any(), "f").Return(founder, nil)
				m.accounts.EXPECT().GetAccount(gomock.Any(), "a").Return(target, nil)
				passThrough(m)
				m.accounts.EXPECT().MutateStatus(gomock.Any(), "a", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, fn func(domain.AccountStatus) domain.AccountStatus) (domain.AccountStatus, error) {
						next := fn(domain.AccountStatus{Pioneer: true})
						assert.Equal(t, domain.AccountStatus{Pioneer: true, ManualRank: true}, next)
						return next, nil
					})
				m.accounts.EXPECT().UpdateRank(gomock.Any(), "a", domain.RankCode("director")).Return(nil)
				m.ranks.EXPECT().AppendRecord(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec *domain.RankRecord) error {
					assert.Equal(t, domain.ManualRank, rec.Method)
					require.NotNil(t, rec.AssignedBy)
					assert.Equal(t, "f", *rec.AssignedBy)
					return nil
				})
				m.publisher.EXPECT().Publish(gomock.Any(), notify.EventRankChanged, gomock.Any()).Return(nil)
			},
		},
		{
			name: "Assigner without founder capability",
			rank: "director",
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().GetAccount(gomock.Any(), "f").Return(&domain.Account{ID: "f", UplineID: domain.RootID}, nil)
			},
			wantErr: ErrNotFounder,
		},
		{
			name: "Unknown assigner",
			rank: "director",
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().GetAccount(gomock.Any(), "f").Return(nil, nil)
			},
			wantErr: ErrNotFounder,
		},
		{
			name: "Unknown rank",
			rank: "emperor",
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().GetAccount(gomock.Any(), "f").Return(founder, nil)
			},
			wantErr: ErrUnknownRank,
		},
		{
			name: "Unknown account",
			rank: "leader",
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().GetAccount(gomock.Any(), "f").Return(founder, nil)
				m.accounts.EXPECT().GetAccount(gomock.Any(), "a").Return(nil, nil)
			},
			wantErr: ErrUnknownAccount,
		},
		{
			name: "Root cannot be ranked",
			rank: "leader",
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().GetAccount(gomock.Any(), "f").Return(founder, nil)
				m.accounts.EXPECT().GetAccount(gomock.Any(), "a").Return(&domain.Account{ID: domain.RootID, UplineID: domain.RootID}, nil)
			},
			wantErr: ErrRootRank,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := NewMock(t)
			tt.prepareMock(m)

			rec, err := s.AssignManual(context.Background(), "a", tt.rank, "f")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, rec)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.rank, rec.Rank)
		})
	}
}

func TestService_History(t *testing.T) {
	s, m := NewMock(t)
	records := []domain.RankRecord{{ID: "1", AccountID: "a", Rank: "start", Method: domain.NaturalRank}}
	m.ranks.EXPECT().ListRecords(gomock.Any(), "a").Return(records, nil)

	got, err := s.History(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, records, got)

	m.ranks.EXPECT().ListRecords(gomock.Any(), "b").Return(nil, errors.New("database error"))
	_, err = s.History(context.Background(), "b")
	assert.Error(t, err)
}
