package service

import (
	"context"

	"github.com/GlebRadaev/compengine/internal/config"
	"github.com/GlebRadaev/compengine/internal/domain"
	"github.com/GlebRadaev/compengine/internal/handlers/accounts"
	"github.com/GlebRadaev/compengine/internal/handlers/balance"
	"github.com/GlebRadaev/compengine/internal/handlers/periods"
	"github.com/GlebRadaev/compengine/internal/handlers/purchases"
	"github.com/GlebRadaev/compengine/internal/handlers/ranks"
	"github.com/GlebRadaev/compengine/internal/hierarchy"
	"github.com/GlebRadaev/compengine/internal/notify"
	"github.com/GlebRadaev/compengine/internal/pg"
	"github.com/GlebRadaev/compengine/internal/recompute"
	"github.com/GlebRadaev/compengine/internal/repo"
	"github.com/GlebRadaev/compengine/internal/service/accountservice"
	"github.com/GlebRadaev/compengine/internal/service/balanceservice"
	"github.com/GlebRadaev/compengine/internal/service/commissionservice"
	"github.com/GlebRadaev/compengine/internal/service/integrityservice"
	"github.com/GlebRadaev/compengine/internal/service/periodservice"
	"github.com/GlebRadaev/compengine/internal/service/poolservice"
	"github.com/GlebRadaev/compengine/internal/service/purchaseservice"
	"github.com/GlebRadaev/compengine/internal/service/rankservice"
	"github.com/GlebRadaev/compengine/internal/service/volumeservice"
	pkgauth "github.com/GlebRadaev/compengine/pkg/auth"
)

type FounderRegistry interface {
	periods.FounderChecker
	EnsureFounders(ctx context.Context, ids []string) error
}

type Services struct {
	AccountService  accounts.Service
	BalanceService  balance.Service
	PurchaseService purchases.Service
	RankService     ranks.Service
	PeriodService   periods.Service
	Founders        FounderRegistry

	// Used by the recompute worker.
	RankEvaluator recompute.RankService
	Integrity     recompute.IntegrityReporter
	Publisher     recompute.Publisher
}

func New(cfg *config.Config, plan domain.RankPlan, repo *repo.Repositories, txManager pg.TXManager) *Services {
	engine := cfg.Engine
	walker := hierarchy.New(repo.AccountRepo, engine.MaxDepth)
	outbox := notify.NewOutbox(repo.OutboxRepo)

	balanceService := balanceservice.New(repo.BalanceRepo)
	integrityService := integrityservice.New(repo.AccountRepo, repo.OutboxRepo, outbox, txManager)
	volumeService := volumeservice.New(repo.AccountRepo, repo.SnapshotRepo, repo.TaskRepo, walker, plan, engine.ActivityThreshold)
	rankService := rankservice.New(repo.AccountRepo, repo.RankRepo, walker, volumeService, outbox, txManager, plan)
	commissionService := commissionservice.New(repo.PioneerRepo, repo.AccountRepo, plan, commissionservice.Config{
		PioneerMinAmount:  engine.PioneerMinAmount,
		PioneerRate:       engine.PioneerRate,
		ReferralRate:      engine.ReferralRate,
		ReferralMinAmount: engine.ReferralMinAmount,
	})
	poolService := poolservice.New(
		repo.AccountRepo,
		repo.PeriodRepo,
		repo.PurchaseRepo,
		balanceService,
		outbox,
		plan,
		engine.PoolRate,
		engine.ActivityThreshold,
	)
	periodService := periodservice.New(repo.PeriodRepo, poolService, volumeService, txManager)
	purchaseService := purchaseservice.New(purchaseservice.Deps{
		Purchases:   repo.PurchaseRepo,
		Accounts:    repo.AccountRepo,
		Walker:      walker,
		Commissions: commissionService,
		Volumes:     volumeService,
		Balances:    balanceService,
		Integrity:   integrityService,
		Publisher:   outbox,
		TxManager:   txManager,
	})
	accountService := accountservice.New(accountservice.Deps{
		Accounts:    repo.AccountRepo,
		Credentials: repo.CredentialRepo,
		Snapshots:   repo.SnapshotRepo,
		Entries:     repo.PurchaseRepo,
		Balances:    balanceService,
		Ranks:       repo.RankRepo,
		Walker:      walker,
		Plan:        plan,
		Hash:        &pkgauth.HashService{},
		JWT:         pkgauth.NewJWTService(cfg.JWTSecret),
		TxManager:   txManager,
	})

	return &Services{
		AccountService:  accountService,
		BalanceService:  balanceService,
		PurchaseService: purchaseService,
		RankService:     rankService,
		PeriodService:   periodService,
		Founders:        accountService,
		RankEvaluator:   rankService,
		Integrity:       integrityService,
		Publisher:       outbox,
	}
}
