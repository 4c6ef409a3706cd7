package outboxrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/compengine/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	return New(mockDB), mockDB
}

func TestRepository_SaveEvent(t *testing.T) {
	repo, mock := NewMock(t)
	e := &domain.OutboxEvent{ID: "ev-1", Kind: "rank.changed", Payload: []byte(`{"account_id":"a"}`), CreatedAt: time.Now()}
	query := regexp.QuoteMeta("INSERT INTO outbox_events (id, kind, payload, created_at) VALUES ($1, $2, $3, $4)")

	mock.ExpectExec(query).WithArgs(e.ID, e.Kind, e.Payload, e.CreatedAt).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	assert.NoError(t, repo.SaveEvent(context.Background(), e))

	mock.ExpectExec(query).WithArgs(e.ID, e.Kind, e.Payload, e.CreatedAt).WillReturnError(errors.New("database error"))
	assert.Error(t, repo.SaveEvent(context.Background(), e))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindUndelivered(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta("FROM outbox_events WHERE delivered_at IS NULL AND failed_at IS NULL ORDER BY created_at ASC LIMIT $1")

	rows := pgxmock.NewRows([]string{"id", "kind", "payload", "created_at", "delivered_at", "attempts"}).
		AddRow("ev-1", "commission.created", []byte(`{}`), now, nil, 2)
	mock.ExpectQuery(query).WithArgs(50).WillReturnRows(rows)

	events, err := repo.FindUndelivered(context.Background(), 50)
	require.NoError(t, err)
	assert.Equal(t, []domain.OutboxEvent{{ID: "ev-1", Kind: "commission.created", Payload: []byte(`{}`), CreatedAt: now, Attempts: 2}}, events)

	mock.ExpectQuery(query).WithArgs(50).WillReturnError(errors.New("database error"))
	_, err = repo.FindUndelivered(context.Background(), 50)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkDelivered(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox_events SET delivered_at = $1 WHERE id = $2")).
		WithArgs(now, "ev-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.MarkDelivered(context.Background(), "ev-1", now))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_RecordFailure(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta(`
        UPDATE outbox_events
        SET attempts = attempts + 1,
            last_error = $1,
            failed_at = CASE WHEN attempts + 1 >= $2 THEN $3::timestamptz END
        WHERE id = $4`)

	mock.ExpectExec(query).WithArgs("status 503", 10, now, "ev-1").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.RecordFailure(context.Background(), "ev-1", "status 503", 10, now))

	mock.ExpectExec(query).WithArgs("status 503", 10, now, "ev-1").WillReturnError(errors.New("database error"))
	assert.Error(t, repo.RecordFailure(context.Background(), "ev-1", "status 503", 10, now))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkRejected(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox_events SET attempts = attempts + 1, last_error = $1, failed_at = $2 WHERE id = $3")).
		WithArgs("status 400", now, "ev-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.MarkRejected(context.Background(), "ev-1", "status 400", now))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SaveAlert(t *testing.T) {
	repo, mock := NewMock(t)
	a := &domain.IntegrityAlert{ID: "al-1", AccountID: "a", Kind: "cycle", Detail: "offender b", CreatedAt: time.Now()}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO integrity_alerts (id, account_id, kind, detail, created_at) VALUES ($1, $2, $3, $4, $5)")).
		WithArgs(a.ID, a.AccountID, a.Kind, a.Detail, a.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	assert.NoError(t, repo.SaveAlert(context.Background(), a))
	assert.NoError(t, mock.ExpectationsWereMet())
}
