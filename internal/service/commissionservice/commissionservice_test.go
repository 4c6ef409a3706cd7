package commissionservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/compengine/internal/domain"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type mocks struct {
	pioneers *MockPioneerRepo
	accounts *MockAccountRepo
}

func testConfig() Config {
	return Config{
		PioneerMinAmount:  decimal.NewFromInt(1000),
		PioneerRate:       decimal.RequireFromString("0.02"),
		ReferralRate:      decimal.RequireFromString("0.05"),
		ReferralMinAmount: decimal.NewFromInt(100),
	}
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		pioneers: NewMockPioneerRepo(ctrl),
		accounts: NewMockAccountRepo(ctrl),
	}
	s := New(m.pioneers, m.accounts, domain.DefaultRankPlan(), testConfig())
	s.now = func() time.Time { return fixedNow }
	return s, m
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func active(id string, rank domain.RankCode) domain.Account {
	return domain.Account{ID: id, UplineID: "?", Rank: rank, IsActive: true}
}

func inactive(id string, rank domain.RankCode) domain.Account {
	return domain.Account{ID: id, UplineID: "?", Rank: rank}
}

func amounts(entries []domain.CommissionEntry, kind domain.EntryKind) map[string]string {
	out := make(map[string]string)
	for _, e := range entries {
		if e.Kind == kind {
			out[e.RecipientID] = e.Amount.StringFixed(2)
		}
	}
	return out
}

func TestDifferential(t *testing.T) {
	plan := domain.DefaultRankPlan()

	tests := []struct {
		name      string
		amount    decimal.Decimal
		ancestors []domain.Account
		want      map[string]string
	}{
		{
			name:   "Inactive accounts compress and receive nothing",
			amount: dec("1000"),
			ancestors: []domain.Account{
				active("start", "start"),
				inactive("c", ""),
				active("builder", "builder"),
				inactive("b", ""),
				active("director", "director"),
			},
			want: map[string]string{"start": "40.00", "builder": "40.00", "director": "100.00"},
		},
		{
			name:   "Compressed rate is folded into the next active ancestor",
			amount: dec("1000"),
			ancestors: []domain.Account{
				active("start", "start"),
				inactive("leader", "leader"),
				active("builder", "builder"),
				active("director", "director"),
			},
			want: map[string]string{"start": "40.00", "builder": "140.00"},
		},
		{
			name:   "Walk stops once the top rate is paid",
			amount: dec("1000"),
			ancestors: []domain.Account{
				active("director", "director"),
				active("other-director", "director"),
			},
			want: map[string]string{"director": "180.00"},
		},
		{
			name:   "Lower rank above a higher one earns nothing",
			amount: dec("1000"),
			ancestors: []domain.Account{
				active("leader", "leader"),
				active("builder", "builder"),
				active("manager", "manager"),
			},
			want: map[string]string{"leader": "120.00", "manager": "30.00"},
		},
		{
			name:   "Quarantined ancestor is treated as inactive",
			amount: dec("1000"),
			ancestors: []domain.Account{
				{ID: "q", UplineID: "?", Rank: "builder", IsActive: true, Status: domain.AccountStatus{Quarantined: true}},
				active("leader", "leader"),
			},
			want: map[string]string{"leader": "180.00"},
		},
		{
			name:   "Root is never paid",
			amount: dec("1000"),
			ancestors: []domain.Account{
				active("start", "start"),
				{ID: domain.RootID, UplineID: domain.RootID, Rank: "director", IsActive: true},
			},
			want: map[string]string{"start": "40.00"},
		},
		{
			name:      "Amounts are rounded down to cents",
			amount:    dec("0.99"),
			ancestors: []domain.Account{active("start", "start"), active("builder", "builder")},
			want:      map[string]string{"start": "0.03", "builder": "0.03"},
		},
		{
			name:      "Fresh account at the entry rank earns the entry rate",
			amount:    dec("1000"),
			ancestors: []domain.Account{active("new", plan.Entry().Code), active("builder", "builder")},
			want:      map[string]string{"new": "40.00", "builder": "40.00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := Differential(plan, tt.amount, tt.ancestors)
			assert.Equal(t, tt.want, amounts(entries, domain.DifferentialEntry))
			assert.Len(t, entries, len(tt.want))
		})
	}
}

func TestDifferential_CompressedFlag(t *testing.T) {
	entries := Differential(domain.DefaultRankPlan(), dec("1000"), []domain.Account{
		active("start", "start"),
		inactive("leader", "leader"),
		active("builder", "builder"),
	})

	require.Len(t, entries, 2)
	assert.False(t, entries[0].Compressed)
	assert.True(t, entries[1].Compressed)
	assert.True(t, entries[1].Rate.Equal(dec("0.14")))
}

func TestService_Compute(t *testing.T) {
	purchase := &domain.Purchase{ID: "79927398713", AccountID: "buyer", Amount: dec("1000")}
	chain := []domain.Account{
		active("start", "start"),
		inactive("c", ""),
		active("builder", "builder"),
		inactive("b", ""),
		active("director", "director"),
	}

	t.Run("Differential and referral entries", func(t *testing.T) {
		s, _ := NewMock(t)
		buyer := &domain.Account{ID: "buyer", UplineID: "start", Status: domain.AccountStatus{Pioneer: true}}

		entries, err := s.Compute(context.Background(), purchase, buyer, chain)
		require.NoError(t, err)

		assert.Equal(t, map[string]string{"start": "40.00", "builder": "40.00", "director": "100.00"}, amounts(entries, domain.DifferentialEntry))
		assert.Equal(t, map[string]string{"start": "50.00"}, amounts(entries, domain.ReferralEntry))
		assert.Empty(t, amounts(entries, domain.PioneerEntry))
		for _, e := range entries {
			assert.NotEmpty(t, e.ID)
			assert.Equal(t, purchase.ID, e.PurchaseID)
			assert.Equal(t, fixedNow, e.CreatedAt)
		}
	})

	t.Run("Pioneer recipients earn one extra entry on everything they receive", func(t *testing.T) {
		s, _ := NewMock(t)
		buyer := &domain.Account{ID: "buyer", UplineID: "start", Status: domain.AccountStatus{Pioneer: true}}
		pioneerChain := append([]domain.Account(nil), chain...)
		pioneerChain[0].Status.Pioneer = true
		pioneerChain[4].Status.Pioneer = true

		entries, err := s.Compute(context.Background(), purchase, buyer, pioneerChain)
		require.NoError(t, err)

		assert.Equal(t, map[string]string{"start": "1.80", "director": "2.00"}, amounts(entries, domain.PioneerEntry))
	})

	t.Run("Referral below the minimum is not paid", func(t *testing.T) {
		s, _ := NewMock(t)
		buyer := &domain.Account{ID: "buyer", UplineID: "start"}
		small := &domain.Purchase{ID: "1", AccountID: "buyer", Amount: dec("99.99")}

		entries, err := s.Compute(context.Background(), small, buyer, chain)
		require.NoError(t, err)
		assert.Empty(t, amounts(entries, domain.ReferralEntry))
	})

	t.Run("Referral skips a quarantined direct upline", func(t *testing.T) {
		s, m := NewMock(t)
		buyer := &domain.Account{ID: "buyer", UplineID: "q"}
		m.accounts.EXPECT().LockStatus(gomock.Any(), "buyer").Return(domain.AccountStatus{}, nil)
		m.pioneers.EXPECT().TryGrantSlot(gomock.Any()).Return(false, nil)

		q := active("q", "start")
		q.Status.Quarantined = true
		entries, err := s.Compute(context.Background(), purchase, buyer, []domain.Account{q})
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("Buyer directly under root pays nothing", func(t *testing.T) {
		s, m := NewMock(t)
		buyer := &domain.Account{ID: "buyer", UplineID: domain.RootID}
		m.accounts.EXPECT().LockStatus(gomock.Any(), "buyer").Return(domain.AccountStatus{}, nil)
		m.pioneers.EXPECT().TryGrantSlot(gomock.Any()).Return(false, nil)

		entries, err := s.Compute(context.Background(), purchase, buyer, nil)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestService_PioneerGrant(t *testing.T) {
	dbErr := errors.New("database error")

	tests := []struct {
		name        string
		buyer       domain.Account
		amount      string
		prepareMock func(m mocks)
		wantPioneer bool
		wantErr     error
	}{
		{
			name:   "Granted while slots remain",
			buyer:  domain.Account{ID: "buyer", UplineID: domain.RootID, Status: domain.AccountStatus{Founder: true}},
			amount: "1000",
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().LockStatus(gomock.Any(), "buyer").Return(domain.AccountStatus{Founder: true}, nil)
				m.pioneers.EXPECT().TryGrantSlot(gomock.Any()).Return(true, nil)
				m.accounts.EXPECT().MutateStatus(gomock.Any(), "buyer", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, fn func(domain.AccountStatus) domain.AccountStatus) (domain.AccountStatus, error) {
						return fn(domain.AccountStatus{Founder: true}), nil
					})
			},
			wantPioneer: true,
		},
		{
			name:   "Not granted once slots are gone",
			buyer:  domain.Account{ID: "buyer", UplineID: domain.RootID},
			amount: "5000",
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().LockStatus(gomock.Any(), "buyer").Return(domain.AccountStatus{}, nil)
				m.pioneers.EXPECT().TryGrantSlot(gomock.Any()).Return(false, nil)
			},
		},
		{
			name:        "Below the minimum amount",
			buyer:       domain.Account{ID: "buyer", UplineID: domain.RootID},
			amount:      "999.99",
			prepareMock: func(m mocks) {},
		},
		{
			name:        "Never re-evaluated once granted",
			buyer:       domain.Account{ID: "buyer", UplineID: domain.RootID, Status: domain.AccountStatus{Pioneer: true}},
			amount:      "1",
			prepareMock: func(m mocks) {},
			wantPioneer: true,
		},
		{
			name:        "Quarantined buyer is never granted",
			buyer:       domain.Account{ID: "buyer", UplineID: domain.RootID, Status: domain.AccountStatus{Quarantined: true}},
			amount:      "1000",
			prepareMock: func(m mocks) {},
		},
		{
			name:   "Granted meanwhile by another purchase of the same buyer",
			buyer:  domain.Account{ID: "buyer", UplineID: domain.RootID},
			amount: "1000",
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().LockStatus(gomock.Any(), "buyer").Return(domain.AccountStatus{Pioneer: true}, nil)
			},
			wantPioneer: true,
		},
		{
			name:   "Quarantined meanwhile",
			buyer:  domain.Account{ID: "buyer", UplineID: domain.RootID},
			amount: "1000",
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().LockStatus(gomock.Any(), "buyer").Return(domain.AccountStatus{Quarantined: true}, nil)
			},
		},
		{
			name:   "Lock failure",
			buyer:  domain.Account{ID: "buyer", UplineID: domain.RootID},
			amount: "1000",
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().LockStatus(gomock.Any(), "buyer").Return(domain.AccountStatus{}, dbErr)
			},
			wantErr: dbErr,
		},
		{
			name:   "Ledger failure",
			buyer:  domain.Account{ID: "buyer", UplineID: domain.RootID},
			amount: "1000",
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().LockStatus(gomock.Any(), "buyer").Return(domain.AccountStatus{}, nil)
				m.pioneers.EXPECT().TryGrantSlot(gomock.Any()).Return(false, dbErr)
			},
			wantErr: dbErr,
		},
		{
			name:   "Status write failure",
			buyer:  domain.Account{ID: "buyer", UplineID: domain.RootID},
			amount: "1000",
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().LockStatus(gomock.Any(), "buyer").Return(domain.AccountStatus{}, nil)
				m.pioneers.EXPECT().TryGrantSlot(gomock.Any()).Return(true, nil)
				m.accounts.EXPECT().MutateStatus(gomock.Any(), "buyer", gomock.Any()).Return(domain.AccountStatus{}, dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := NewMock(t)
			tt.prepareMock(m)

			buyer := tt.buyer
			p := &domain.Purchase{ID: "1", AccountID: buyer.ID, Amount: dec(tt.amount)}
			_, err := s.Compute(context.Background(), p, &buyer, nil)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPioneer, buyer.Status.Pioneer)
		})
	}
}

func TestService_PioneerGrant_StaleBuyerTakesOneSlot(t *testing.T) {
	s, m := NewMock(t)

	var stored domain.AccountStatus
	m.accounts.EXPECT().LockStatus(gomock.Any(), "buyer").
		DoAndReturn(func(context.Context, string) (domain.AccountStatus, error) {
			return stored, nil
		}).Times(2)
	m.pioneers.EXPECT().TryGrantSlot(gomock.Any()).Return(true, nil).Times(1)
	m.accounts.EXPECT().MutateStatus(gomock.Any(), "buyer", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fn func(domain.AccountStatus) domain.AccountStatus) (domain.AccountStatus, error) {
			stored = fn(stored)
			return stored, nil
		}).Times(1)

	for _, id := range []string{"1", "2"} {
		buyer := domain.Account{ID: "buyer", UplineID: domain.RootID}
		p := &domain.Purchase{ID: id, AccountID: "buyer", Amount: dec("1000")}
		_, err := s.Compute(context.Background(), p, &buyer, nil)
		require.NoError(t, err)
		assert.True(t, buyer.Status.Pioneer)
	}
}
