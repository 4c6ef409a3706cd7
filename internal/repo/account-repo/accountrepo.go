package accountrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/compengine/internal/domain"
	"github.com/GlebRadaev/compengine/internal/pg"
)

const statusRetries = 5

var ErrStatusConflict = errors.New("account status changed concurrently")

const accountColumns = `id, upline_id, rank, is_active, personal_volume, own_volume, full_volume, status, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var acc domain.Account
	err := row.Scan(
		&acc.ID, &acc.UplineID, &acc.Rank, &acc.IsActive,
		&acc.PersonalVolume, &acc.OwnVolume, &acc.FullVolume,
		&acc.Status, &acc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *Repository) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE id = $1
    `
	acc, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get account", zap.String("account_id", id), zap.Error(err))
		return nil, err
	}
	return acc, nil
}

func (r *Repository) listAccounts(ctx context.Context, query string, args ...any) ([]domain.Account, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			zap.L().Error("can't scan account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, *acc)
	}
	return accounts, rows.Err()
}

func (r *Repository) ListChildren(ctx context.Context, id string) ([]domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE upline_id = $1
        ORDER BY created_at, id
    `
	return r.listAccounts(ctx, query, id)
}

// ListAccounts loads the whole account set. It is meant for period jobs only.
func (r *Repository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        ORDER BY created_at, id
    `
	return r.listAccounts(ctx, query)
}

func (r *Repository) CreateAccount(ctx context.Context, acc *domain.Account) error {
	query := `
        INSERT INTO accounts (id, upline_id, rank, status, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.db.Exec(ctx, query, acc.ID, acc.UplineID, acc.Rank, acc.Status, acc.CreatedAt)
	if err != nil {
		zap.L().Error("can't create account", zap.String("account_id", acc.ID), zap.Error(err))
		return err
	}
	return nil
}

// AddPurchaseVolume books an own purchase. Activity is left alone, it only
// changes at the period boundary.
func (r *Repository) AddPurchaseVolume(ctx context.Context, id string, amount decimal.Decimal) error {
	query := `
        UPDATE accounts
        SET personal_volume = personal_volume + $1,
            own_volume = own_volume + $1
        WHERE id = $2 AND id <> upline_id
    `
	tag, err := r.db.Exec(ctx, query, amount, id)
	if err != nil {
		zap.L().Error("can't add purchase volume", zap.String("account_id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", id, pgx.ErrNoRows)
	}
	return nil
}

// AddFullVolume increments the full volume of every listed account. Each row
// is updated on its own, there is no table-wide lock.
func (r *Repository) AddFullVolume(ctx context.Context, ids []string, amount decimal.Decimal) error {
	if len(ids) == 0 {
		return nil
	}
	query := `
        UPDATE accounts
        SET full_volume = full_volume + $1
        WHERE id = ANY($2) AND id <> upline_id
    `
	_, err := r.db.Exec(ctx, query, amount, ids)
	if err != nil {
		zap.L().Error("can't add full volume", zap.Strings("account_ids", ids), zap.Error(err))
		return err
	}
	return nil
}

// MutateStatus applies fn to the current status and writes the result back as a
// whole value. The write only succeeds if nobody changed the status meanwhile;
// the guard compares against the stored document as read, so rows written
// before every flag existed still match.
func (r *Repository) MutateStatus(ctx context.Context, id string, fn func(domain.AccountStatus) domain.AccountStatus) (domain.AccountStatus, error) {
	selectQuery := `
        SELECT status
        FROM accounts
        WHERE id = $1
    `
	updateQuery := `
        UPDATE accounts
        SET status = $1
        WHERE id = $2 AND status = $3::jsonb
    `
	for attempt := 0; attempt < statusRetries; attempt++ {
		var raw []byte
		if err := r.db.QueryRow(ctx, selectQuery, id).Scan(&raw); err != nil {
			zap.L().Error("can't read account status", zap.String("account_id", id), zap.Error(err))
			return domain.AccountStatus{}, err
		}
		var current domain.AccountStatus
		if err := json.Unmarshal(raw, &current); err != nil {
			zap.L().Error("can't decode account status", zap.String("account_id", id), zap.Error(err))
			return domain.AccountStatus{}, err
		}

		next := fn(current)
		if next == current {
			return current, nil
		}

		tag, err := r.db.Exec(ctx, updateQuery, next, id, string(raw))
		if err != nil {
			zap.L().Error("can't write account status", zap.String("account_id", id), zap.Error(err))
			return domain.AccountStatus{}, err
		}
		if tag.RowsAffected() == 1 {
			return next, nil
		}
	}
	return domain.AccountStatus{}, ErrStatusConflict
}

// LockStatus reads the status and holds the row lock until the surrounding
// transaction ends.
func (r *Repository) LockStatus(ctx context.Context, id string) (domain.AccountStatus, error) {
	query := `
        SELECT status
        FROM accounts
        WHERE id = $1
        FOR UPDATE
    `
	var st domain.AccountStatus
	if err := r.db.QueryRow(ctx, query, id).Scan(&st); err != nil {
		zap.L().Error("can't lock account status", zap.String("account_id", id), zap.Error(err))
		return domain.AccountStatus{}, err
	}
	return st, nil
}

func (r *Repository) UpdateRank(ctx context.Context, id string, rank domain.RankCode) error {
	query := `
        UPDATE accounts
        SET rank = $1
        WHERE id = $2 AND id <> upline_id
    `
	tag, err := r.db.Exec(ctx, query, rank, id)
	if err != nil {
		zap.L().Error("can't update rank", zap.String("account_id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", id, pgx.ErrNoRows)
	}
	return nil
}

// ResetPeriod recomputes activity from the closing period and zeroes personal
// volume in the same statement.
func (r *Repository) ResetPeriod(ctx context.Context, threshold decimal.Decimal) (int64, error) {
	query := `
        UPDATE accounts
        SET is_active = personal_volume >= $1,
            personal_volume = 0
        WHERE id <> upline_id
    `
	tag, err := r.db.Exec(ctx, query, threshold)
	if err != nil {
		zap.L().Error("can't reset period volumes", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// SumActiveVolume returns the personal volume of this period summed over every
// account that is active in it. Root and quarantined accounts are left out.
func (r *Repository) SumActiveVolume(ctx context.Context, threshold decimal.Decimal) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(personal_volume), 0)
        FROM accounts
        WHERE id <> upline_id
          AND personal_volume >= $1
          AND NOT COALESCE((status->>'quarantined')::boolean, false)
    `
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, threshold).Scan(&total); err != nil {
		zap.L().Error("can't sum active volume", zap.Error(err))
		return decimal.Zero, err
	}
	return total, nil
}
