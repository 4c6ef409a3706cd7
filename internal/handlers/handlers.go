package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/compengine/docs"
	accounthandlers "github.com/GlebRadaev/compengine/internal/handlers/accounts"
	balancehandlers "github.com/GlebRadaev/compengine/internal/handlers/balance"
	periodhandlers "github.com/GlebRadaev/compengine/internal/handlers/periods"
	purchasehandlers "github.com/GlebRadaev/compengine/internal/handlers/purchases"
	rankhandlers "github.com/GlebRadaev/compengine/internal/handlers/ranks"
	"github.com/GlebRadaev/compengine/internal/service"
	"github.com/GlebRadaev/compengine/pkg/auth"
	"github.com/GlebRadaev/compengine/pkg/metrics"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AccountHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	Commissions(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
}

type PurchaseHandler interface {
	AddPurchase(w http.ResponseWriter, r *http.Request)
}

type RankHandler interface {
	Assign(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type PeriodHandler interface {
	Close(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AccountHandler  AccountHandler
	BalanceHandler  BalanceHandler
	PurchaseHandler PurchaseHandler
	RankHandler     RankHandler
	PeriodHandler   PeriodHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AccountHandler:  accounthandlers.New(s.AccountService),
		BalanceHandler:  balancehandlers.New(s.BalanceService),
		PurchaseHandler: purchasehandlers.New(s.PurchaseService),
		RankHandler:     rankhandlers.New(s.RankService),
		PeriodHandler:   periodhandlers.New(s.PeriodService, s.Founders),
		jwtService:      jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/accounts/register", h.AccountHandler.Register)
		r.Post("/accounts/login", h.AccountHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService))
			r.Get("/accounts/me", h.AccountHandler.Me)
			r.Get("/accounts/me/commissions", h.AccountHandler.Commissions)
			r.Get("/accounts/me/ranks", h.RankHandler.History)
			r.Get("/accounts/me/balance", h.BalanceHandler.GetBalance)
			r.Post("/accounts/{id}/rank", h.RankHandler.Assign)
			r.Post("/purchases", h.PurchaseHandler.AddPurchase)
			r.Get("/periods/{id}", h.PeriodHandler.Get)
			r.Post("/periods/{id}/close", h.PeriodHandler.Close)
		})
	})

	return r
}
