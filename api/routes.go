// Package api wires the HTTP surface: route registration, session
// middleware, and the server lifecycle.
package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/sznajderm/budget-manager-sub002/internal/handlers/v1/account"
	authhandlers "github.com/sznajderm/budget-manager-sub002/internal/handlers/v1/auth"
	"github.com/sznajderm/budget-manager-sub002/internal/handlers/v1/category"
	"github.com/sznajderm/budget-manager-sub002/internal/handlers/v1/status"
	"github.com/sznajderm/budget-manager-sub002/internal/handlers/v1/summary"
	"github.com/sznajderm/budget-manager-sub002/internal/handlers/v1/transaction"
	"github.com/sznajderm/budget-manager-sub002/internal/logging"
	"github.com/sznajderm/budget-manager-sub002/internal/operator"
	"github.com/sznajderm/budget-manager-sub002/internal/service"
	"github.com/sznajderm/budget-manager-sub002/internal/storage"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
	Storage  *storage.Storage
}

// Serve registers every route and blocks serving HTTP until the listener
// fails or the process exits.
func (r *Rest) Serve() {
	mux := http.NewServeMux()
	humaAPI := humago.New(mux, huma.DefaultConfig("Budget Manager API", "1.0.0"))

	humaAPI.UseMiddleware(logging.Middleware(r.Logger))
	humaAPI.UseMiddleware(AuthMiddleware(humaAPI, r.Service.Auth))

	r.registerRoutes(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

func (r *Rest) registerRoutes(humaAPI huma.API) {
	status.NewHandler(r.Storage.Pool).Register(humaAPI)

	authhandlers.NewSignupHandler(r.Service.Auth).Register(humaAPI)
	authhandlers.NewLoginHandler(r.Service.Auth).Register(humaAPI)
	authhandlers.NewLogoutHandler(r.Service.Auth).Register(humaAPI)
	authhandlers.NewRecoverHandler(r.Service.Auth, r.Logger).Register(humaAPI)
	authhandlers.NewResetPasswordHandler(r.Service.Auth).Register(humaAPI)

	transaction.NewCreateTransactionHandler(r.Operator).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewUpdateTransactionHandler(r.Operator).Register(humaAPI)
	transaction.NewDeleteTransactionHandler(r.Operator).Register(humaAPI)

	account.NewCreateAccountHandler(r.Operator).Register(humaAPI)
	account.NewListAccountsHandler(r.Service.Account).Register(humaAPI)

	category.NewCreateCategoryHandler(r.Operator).Register(humaAPI)
	category.NewListCategoriesHandler(r.Service.Category).Register(humaAPI)
	category.NewDeleteCategoryHandler(r.Operator).Register(humaAPI)

	summary.NewSummaryHandler(r.Service.Summary).Register(humaAPI)
}
