package credentialrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/compengine/internal/domain"
	"github.com/GlebRadaev/compengine/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.Credentials, error) {
	var cred domain.Credentials
	err := repo.db.QueryRow(ctx, "SELECT account_id, login, password_hash, created_at FROM credentials WHERE login = $1", login).
		Scan(&cred.AccountID, &cred.Login, &cred.PasswordHash, &cred.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find credentials", zap.Error(err))
		return nil, err
	}
	return &cred, nil
}

func (repo *Repository) CreateCredentials(ctx context.Context, cred *domain.Credentials) error {
	query := `
		INSERT INTO credentials (account_id, login, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := repo.db.Exec(ctx, query, cred.AccountID, cred.Login, cred.PasswordHash, cred.CreatedAt)
	if err != nil {
		zap.L().Error("can't save credentials", zap.Error(err))
		return err
	}
	return nil
}
