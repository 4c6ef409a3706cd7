package purchaserepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/compengine/internal/domain"
	"github.com/GlebRadaev/compengine/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) FindPurchase(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	query := `
        SELECT id, account_id, amount, created_at
        FROM purchases
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, purchaseID)

	var p domain.Purchase
	err := row.Scan(&p.ID, &p.AccountID, &p.Amount, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find purchase", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// SavePurchase records the purchase once. It reports false, without error, when
// the purchase id is already known.
func (r *Repository) SavePurchase(ctx context.Context, p *domain.Purchase) (bool, error) {
	query := `
        INSERT INTO purchases (id, account_id, amount, created_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (id) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, p.ID, p.AccountID, p.Amount, p.CreatedAt)
	if err != nil {
		zap.L().Error("can't save purchase", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// SaveEntries appends commission entries. An entry that already exists for the
// same purchase, recipient and kind is skipped.
func (r *Repository) SaveEntries(ctx context.Context, entries []domain.CommissionEntry) error {
	if len(entries) == 0 {
		return nil
	}
	query := `
        INSERT INTO commission_entries (id, recipient_id, purchase_id, kind, rate, amount, compressed, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (purchase_id, recipient_id, kind) DO NOTHING
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, e := range entries {
			_, err := r.db.Exec(ctx, query, e.ID, e.RecipientID, e.PurchaseID, e.Kind, e.Rate, e.Amount, e.Compressed, e.CreatedAt)
			if err != nil {
				zap.L().Error("can't save commission entry",
					zap.String("purchase_id", e.PurchaseID),
					zap.String("recipient_id", e.RecipientID),
					zap.Error(err),
				)
				return err
			}
		}
		return nil
	})
}

func (r *Repository) FindEntriesByRecipient(ctx context.Context, recipientID string) ([]domain.CommissionEntry, error) {
	query := `
        SELECT id, recipient_id, purchase_id, kind, rate, amount, compressed, created_at
        FROM commission_entries
        WHERE recipient_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, recipientID)
	if err != nil {
		zap.L().Error("can't get commission entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.CommissionEntry
	for rows.Next() {
		var e domain.CommissionEntry
		err := rows.Scan(&e.ID, &e.RecipientID, &e.PurchaseID, &e.Kind, &e.Rate, &e.Amount, &e.Compressed, &e.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan commission entry row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
