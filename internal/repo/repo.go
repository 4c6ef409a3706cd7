package repo

import (
	"github.com/GlebRadaev/compengine/internal/pg"
	accountrepo "github.com/GlebRadaev/compengine/internal/repo/account-repo"
	balancerepo "github.com/GlebRadaev/compengine/internal/repo/balance-repo"
	credentialrepo "github.com/GlebRadaev/compengine/internal/repo/credential-repo"
	outboxrepo "github.com/GlebRadaev/compengine/internal/repo/outbox-repo"
	periodrepo "github.com/GlebRadaev/compengine/internal/repo/period-repo"
	pioneerrepo "github.com/GlebRadaev/compengine/internal/repo/pioneer-repo"
	purchaserepo "github.com/GlebRadaev/compengine/internal/repo/purchase-repo"
	rankrepo "github.com/GlebRadaev/compengine/internal/repo/rank-repo"
	snapshotrepo "github.com/GlebRadaev/compengine/internal/repo/snapshot-repo"
	taskrepo "github.com/GlebRadaev/compengine/internal/repo/task-repo"
)

type Repositories struct {
	AccountRepo    *accountrepo.Repository
	CredentialRepo *credentialrepo.Repository
	BalanceRepo    *balancerepo.Repository
	PurchaseRepo   *purchaserepo.Repository
	PioneerRepo    *pioneerrepo.Repository
	RankRepo       *rankrepo.Repository
	SnapshotRepo   *snapshotrepo.Repository
	TaskRepo       *taskrepo.Repository
	PeriodRepo     *periodrepo.Repository
	OutboxRepo     *outboxrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		AccountRepo:    accountrepo.New(conn),
		CredentialRepo: credentialrepo.New(conn),
		BalanceRepo:    balancerepo.New(conn, txManager),
		PurchaseRepo:   purchaserepo.New(conn, txManager),
		PioneerRepo:    pioneerrepo.New(conn),
		RankRepo:       rankrepo.New(conn),
		SnapshotRepo:   snapshotrepo.New(conn),
		TaskRepo:       taskrepo.New(conn, txManager),
		PeriodRepo:     periodrepo.New(conn),
		OutboxRepo:     outboxrepo.New(conn),
	}
}
