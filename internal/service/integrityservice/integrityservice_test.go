package integrityservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/compengine/internal/domain"
	"github.com/GlebRadaev/compengine/internal/hierarchy"
	"github.com/GlebRadaev/compengine/internal/notify"
	"github.com/GlebRadaev/compengine/internal/pg"
)

type mocks struct {
	accounts  *MockAccountRepo
	alerts    *MockAlertRepo
	publisher *MockPublisher
	tx        *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		accounts:  NewMockAccountRepo(ctrl),
		alerts:    NewMockAlertRepo(ctrl),
		publisher: NewMockPublisher(ctrl),
		tx:        pg.NewMockTXManager(ctrl),
	}
	return New(m.accounts, m.alerts, m.publisher, m.tx), m
}

func passThrough(m mocks) {
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func TestService_Report(t *testing.T) {
	cycle := &hierarchy.IntegrityError{Kind: hierarchy.KindCycle, AccountID: "a", Offender: "c"}

	tests := []struct {
		name        string
		err         error
		prepareMock func(m mocks)
		reported    bool
	}{
		{
			name:        "Not an integrity error",
			err:         errors.New("database error"),
			prepareMock: func(m mocks) {},
			reported:    false,
		},
		{
			name: "Cycle quarantines the branch",
			err:  cycle,
			prepareMock: func(m mocks) {
				passThrough(m)
				m.accounts.EXPECT().MutateStatus(gomock.Any(), "a", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, fn func(domain.AccountStatus) domain.AccountStatus) (domain.AccountStatus, error) {
						next := fn(domain.AccountStatus{Pioneer: true})
						assert.Equal(t, domain.AccountStatus{Pioneer: true, Quarantined: true}, next)
						return next, nil
					})
				m.alerts.EXPECT().SaveAlert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *domain.IntegrityAlert) error {
					assert.Equal(t, "a", a.AccountID)
					assert.Equal(t, "cycle", a.Kind)
					assert.Contains(t, a.Detail, "c")
					return nil
				})
				m.publisher.EXPECT().Publish(gomock.Any(), notify.EventIntegrityAlert, gomock.Any()).Return(nil)
			},
			reported: true,
		},
		{
			name: "Wrapped error is still reported",
			err:  errors.Join(errors.New("walk failed"), cycle),
			prepareMock: func(m mocks) {
				passThrough(m)
				m.accounts.EXPECT().MutateStatus(gomock.Any(), "a", gomock.Any()).Return(domain.AccountStatus{Quarantined: true}, nil)
				m.alerts.EXPECT().SaveAlert(gomock.Any(), gomock.Any()).Return(nil)
				m.publisher.EXPECT().Publish(gomock.Any(), notify.EventIntegrityAlert, gomock.Any()).Return(nil)
			},
			reported: true,
		},
		{
			name: "Quarantine failure is logged, not returned",
			err:  cycle,
			prepareMock: func(m mocks) {
				passThrough(m)
				m.accounts.EXPECT().MutateStatus(gomock.Any(), "a", gomock.Any()).Return(domain.AccountStatus{}, errors.New("database error"))
			},
			reported: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := NewMock(t)
			tt.prepareMock(m)
			assert.Equal(t, tt.reported, s.Report(context.Background(), tt.err))
		})
	}
}

func TestService_QuarantineAlertFailure(t *testing.T) {
	s, m := NewMock(t)
	dbErr := errors.New("database error")

	passThrough(m)
	m.accounts.EXPECT().MutateStatus(gomock.Any(), "b", gomock.Any()).Return(domain.AccountStatus{Quarantined: true}, nil)
	m.alerts.EXPECT().SaveAlert(gomock.Any(), gomock.Any()).Return(dbErr)

	err := s.Quarantine(context.Background(), &hierarchy.IntegrityError{Kind: hierarchy.KindOrphan, AccountID: "b", Offender: "b"})
	assert.ErrorIs(t, err, dbErr)
}
