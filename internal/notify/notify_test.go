package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/compengine/internal/config"
	"github.com/GlebRadaev/compengine/internal/domain"
	"github.com/GlebRadaev/compengine/pkg/clients"
)

func TestOutbox_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockEventRepo(ctrl)
	outbox := NewOutbox(repo)

	repo.EXPECT().SaveEvent(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *domain.OutboxEvent) error {
		assert.NotEmpty(t, e.ID)
		assert.Equal(t, EventRankChanged, e.Kind)
		assert.JSONEq(t, `{"account_id":"a","rank":"builder"}`, string(e.Payload))
		assert.False(t, e.CreatedAt.IsZero())
		return nil
	})

	err := outbox.Publish(context.Background(), EventRankChanged, map[string]string{"account_id": "a", "rank": "builder"})
	assert.NoError(t, err)
}

func TestOutbox_PublishErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockEventRepo(ctrl)
	outbox := NewOutbox(repo)

	err := outbox.Publish(context.Background(), EventRankChanged, make(chan int))
	assert.Error(t, err)

	dbErr := errors.New("database error")
	repo.EXPECT().SaveEvent(gomock.Any(), gomock.Any()).Return(dbErr)
	assert.ErrorIs(t, outbox.Publish(context.Background(), EventPoolDistributed, struct{}{}), dbErr)
}

func NewMockDispatcher(t *testing.T) (*Dispatcher, *MockEventRepo, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	repo := NewMockEventRepo(ctrl)
	client := clients.NewMockHTTPClientI(ctrl)
	d := NewDispatcher(&config.Config{NotifyAddress: "http://hooks.local/events"}, repo, client)
	d.retryInterval = time.Millisecond
	return d, repo, client
}

func TestDispatcher_deliver(t *testing.T) {
	event := domain.OutboxEvent{ID: "ev-1", Kind: EventCommissionCreated, Payload: []byte(`{"purchase_id":"p"}`), CreatedAt: time.Now()}

	tests := []struct {
		name        string
		prepareMock func(repo *MockEventRepo, client *clients.MockHTTPClientI)
		expectErr   error
	}{
		{
			name: "Delivered on first attempt",
			prepareMock: func(repo *MockEventRepo, client *clients.MockHTTPClientI) {
				client.EXPECT().Post("http://hooks.local/events", gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ string, headers http.Header, body []byte) (int, http.Header, error) {
						assert.Equal(t, EventCommissionCreated, headers.Get("X-Event-Kind"))
						var env envelope
						require.NoError(t, json.Unmarshal(body, &env))
						assert.Equal(t, "ev-1", env.ID)
						assert.JSONEq(t, `{"purchase_id":"p"}`, string(env.Payload))
						return http.StatusOK, nil, nil
					})
				repo.EXPECT().MarkDelivered(gomock.Any(), "ev-1", gomock.Any()).Return(nil)
			},
		},
		{
			name: "Retried after server error",
			prepareMock: func(repo *MockEventRepo, client *clients.MockHTTPClientI) {
				gomock.InOrder(
					client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).Return(http.StatusBadGateway, nil, nil),
					client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil, errors.New("connection refused")),
					client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).Return(http.StatusAccepted, nil, nil),
				)
				repo.EXPECT().MarkDelivered(gomock.Any(), "ev-1", gomock.Any()).Return(nil)
			},
		},
		{
			name: "Rejected by webhook",
			prepareMock: func(repo *MockEventRepo, client *clients.MockHTTPClientI) {
				client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).Return(http.StatusBadRequest, nil, nil)
			},
			expectErr: ErrEventRejected,
		},
		{
			name: "Retries exhausted",
			prepareMock: func(repo *MockEventRepo, client *clients.MockHTTPClientI) {
				client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).Return(http.StatusServiceUnavailable, nil, nil).Times(maxRetries)
			},
			expectErr: errRetriesExhausted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, repo, client := NewMockDispatcher(t)
			tt.prepareMock(repo, client)

			err := d.deliver(context.Background(), event)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDispatcher_dispatch(t *testing.T) {
	d, repo, client := NewMockDispatcher(t)

	repo.EXPECT().FindUndelivered(gomock.Any(), batchSize).Return([]domain.OutboxEvent{
		{ID: "ev-1", Kind: EventRankChanged, Payload: []byte(`{}`)},
		{ID: "ev-2", Kind: EventPoolDistributed, Payload: []byte(`{}`)},
	}, nil)
	client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).Return(http.StatusNoContent, nil, nil).Times(2)
	repo.EXPECT().MarkDelivered(gomock.Any(), "ev-1", gomock.Any()).Return(nil)
	repo.EXPECT().MarkDelivered(gomock.Any(), "ev-2", gomock.Any()).Return(nil)

	d.dispatch(context.Background())
}

func TestDispatcher_deliverStopsOnCancel(t *testing.T) {
	d, _, client := NewMockDispatcher(t)
	d.retryInterval = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(string, http.Header, []byte) (int, http.Header, error) {
			cancel()
			return http.StatusBadGateway, nil, nil
		})

	done := make(chan error, 1)
	go func() { done <- d.deliver(ctx, domain.OutboxEvent{ID: "ev-1", Payload: []byte(`{}`)}) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("deliver kept waiting after cancel")
	}
}

func TestDispatcher_dispatchParksFailures(t *testing.T) {
	d, repo, client := NewMockDispatcher(t)

	repo.EXPECT().FindUndelivered(gomock.Any(), batchSize).Return([]domain.OutboxEvent{
		{ID: "ev-bad", Kind: EventRankChanged, Payload: []byte(`{}`)},
		{ID: "ev-down", Kind: EventPoolDistributed, Payload: []byte(`{}`), Attempts: 4},
	}, nil)
	client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ string, headers http.Header, _ []byte) (int, http.Header, error) {
			if headers.Get("X-Event-Kind") == EventRankChanged {
				return http.StatusUnprocessableEntity, nil, nil
			}
			return http.StatusServiceUnavailable, nil, nil
		}).Times(1 + maxRetries)
	repo.EXPECT().MarkRejected(gomock.Any(), "ev-bad", gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().RecordFailure(gomock.Any(), "ev-down", gomock.Any(), maxRounds, gomock.Any()).Return(nil)

	d.dispatch(context.Background())
}

func TestDispatcher_dispatchFetchError(t *testing.T) {
	d, repo, _ := NewMockDispatcher(t)
	repo.EXPECT().FindUndelivered(gomock.Any(), batchSize).Return(nil, errors.New("database error"))
	d.dispatch(context.Background())
}

func TestDispatcher_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := NewDispatcher(&config.Config{}, NewMockEventRepo(ctrl), clients.NewMockHTTPClientI(ctrl))
	d.Start(context.Background())
}

func TestRetryAfter(t *testing.T) {
	h := http.Header{}
	h.Set("Retry-After", "3")
	assert.Equal(t, 3*time.Second, retryAfter(h, time.Second))
	assert.Equal(t, time.Second, retryAfter(nil, time.Second))
}
