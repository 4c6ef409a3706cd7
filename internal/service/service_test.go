package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/compengine/internal/config"
	"github.com/GlebRadaev/compengine/internal/domain"
	"github.com/GlebRadaev/compengine/internal/pg"
	"github.com/GlebRadaev/compengine/internal/repo"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	txManager := pg.NewMockTXManager(ctrl)
	repos := repo.New(mockDB, txManager)
	cfg := &config.Config{JWTSecret: "secret", Engine: config.Engine{MaxDepth: 10}}

	services := New(cfg, domain.DefaultRankPlan(), repos, txManager)

	assert.NotNil(t, services.AccountService)
	assert.NotNil(t, services.BalanceService)
	assert.NotNil(t, services.PurchaseService)
	assert.NotNil(t, services.RankService)
	assert.NotNil(t, services.PeriodService)
	assert.NotNil(t, services.Founders)
	assert.NotNil(t, services.RankEvaluator)
	assert.NotNil(t, services.Integrity)
	assert.NotNil(t, services.Publisher)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
