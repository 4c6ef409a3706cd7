package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/compengine/internal/config"
	"github.com/GlebRadaev/compengine/internal/domain"
	"github.com/GlebRadaev/compengine/internal/handlers"
	"github.com/GlebRadaev/compengine/internal/notify"
	"github.com/GlebRadaev/compengine/internal/pg"
	"github.com/GlebRadaev/compengine/internal/recompute"
	"github.com/GlebRadaev/compengine/internal/repo"
	"github.com/GlebRadaev/compengine/internal/service"
	"github.com/GlebRadaev/compengine/pkg/auth"
	"github.com/GlebRadaev/compengine/pkg/clients"
	"github.com/GlebRadaev/compengine/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg        *config.Config
	api        *handlers.Handlers
	srv        *service.Services
	repo       *repo.Repositories
	recompute  *recompute.Service
	dispatcher *notify.Dispatcher

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	plan, err := config.LoadRankPlan(cfg.RankPlanFile)
	if err != nil {
		zap.L().Error("rank plan failed: ", zap.Error(err))
		return fmt.Errorf("can't load rank plan: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(cfg, plan, a.repo, txManager)
	a.api = handlers.New(a.srv, auth.NewJWTService(cfg.JWTSecret))
	a.recompute = recompute.New(cfg, a.repo.TaskRepo, a.srv.RankEvaluator, a.srv.Integrity, a.srv.Publisher)
	a.dispatcher = notify.NewDispatcher(cfg, a.repo.OutboxRepo, clients.NewHTTPClient())

	if err := a.bootstrap(ctx, plan); err != nil {
		return fmt.Errorf("can't bootstrap engine: %w", err)
	}

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startWorkers(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// bootstrap applies the configured pioneer capacity and founder list.
func (a *Application) bootstrap(ctx context.Context, plan domain.RankPlan) error {
	if err := a.repo.PioneerRepo.SetCapacity(ctx, a.cfg.Engine.PioneerSlots); err != nil {
		return err
	}
	ledger, err := a.repo.PioneerRepo.GetLedger(ctx)
	if err != nil {
		return err
	}
	zap.L().Info("pioneer ledger",
		zap.Int("capacity", ledger.Capacity),
		zap.Int("remaining", ledger.Remaining()),
	)

	if err := a.srv.Founders.EnsureFounders(ctx, a.cfg.Founders); err != nil {
		return err
	}
	zap.L().Info("rank plan loaded",
		zap.String("entry", string(plan.Entry().Code)),
		zap.String("top", string(plan.Top().Code)),
		zap.Int("ranks", len(plan.Ranks)),
	)
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startWorkers(ctx context.Context) {
	a.wg.Add(2)
	go func() {
		defer a.wg.Done()
		a.recompute.Start(ctx)
	}()
	go func() {
		defer a.wg.Done()
		a.dispatcher.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
