package router

import (
	"net/http"
	"zenith-bank/handler"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter(
	userHandler *handler.UserHandler,
	storeHandler *handler.StoreHandler,
	transferHandler *handler.TransferHandler,
	loanHandler *handler.LoanHandler,
	historyHandler *handler.HistoryHandler,
	adminHandler *handler.AdminHandler,
) http.Handler {
	mux := http.NewServeMux()

	// Public routes.
	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("/swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	mux.Handle("POST /register", handler.ErrorHandlingMiddleware(userHandler.Register))
	mux.Handle("POST /login", handler.ErrorHandlingMiddleware(userHandler.Login))
	mux.Handle("POST /api/login", handler.ErrorHandlingMiddleware(userHandler.Login))
	mux.Handle("POST /api/token/refresh", handler.ErrorHandlingMiddleware(userHandler.Refresh))

	// Authenticated routes.
	mux.Handle("POST /api/logout", handler.AuthMiddleware(handler.ErrorHandlingMiddleware(userHandler.Logout)))
	mux.Handle("GET /api/stores", handler.AuthMiddleware(handler.ErrorHandlingMiddleware(storeHandler.ListStores)))
	mux.Handle("POST /api/cards", handler.AuthMiddleware(handler.ErrorHandlingMiddleware(storeHandler.IssueCard)))
	mux.Handle("POST /api/transfers", handler.AuthMiddleware(handler.ErrorHandlingMiddleware(transferHandler.CreateTransfer)))
	mux.Handle("POST /api/transfer", handler.AuthMiddleware(handler.ErrorHandlingMiddleware(transferHandler.APITransfer)))
	mux.Handle("POST /api/loans", handler.AuthMiddleware(handler.ErrorHandlingMiddleware(loanHandler.Disburse)))
	mux.Handle("GET /api/history", handler.AuthMiddleware(handler.ErrorHandlingMiddleware(historyHandler.ListHistory)))

	// Admin routes.
	mux.Handle("GET /api/admin/stats", handler.AuthMiddleware(handler.AdminMiddleware(handler.ErrorHandlingMiddleware(adminHandler.Stats))))
	mux.Handle("GET /api/admin/reconcile", handler.AuthMiddleware(handler.AdminMiddleware(handler.ErrorHandlingMiddleware(adminHandler.Reconcile))))

	return mux
}
