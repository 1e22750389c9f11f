package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Routes registers the API on r. Everything except health, register and
// login goes through auth.
func (h *Handler) Routes(r *mux.Router, auth mux.MiddlewareFunc) {
	api := r.PathPrefix("/api").Subrouter()

	// Public routes
	api.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	api.HandleFunc("/auth/register", h.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)

	// Protected routes
	protected := api.NewRoute().Subrouter()
	protected.Use(auth)
	protected.HandleFunc("/auth/me", h.Me).Methods(http.MethodGet)

	protected.HandleFunc("/transactions", listRecords(h, h.svc.ListTransactions)).Methods(http.MethodGet)
	protected.HandleFunc("/transactions", createRecord(h, h.svc.CreateTransaction)).Methods(http.MethodPost)
	protected.HandleFunc("/transactions/upload-csv", h.ImportCSV).Methods(http.MethodPost)
	protected.HandleFunc("/transactions/{id:[0-9]+}", updateRecord(h, h.svc.UpdateTransaction)).Methods(http.MethodPut)
	protected.HandleFunc("/transactions/{id:[0-9]+}", deleteRecord(h, h.svc.DeleteTransaction)).Methods(http.MethodDelete)

	protected.HandleFunc("/bills", listRecords(h, h.svc.ListBills)).Methods(http.MethodGet)
	protected.HandleFunc("/bills", createRecord(h, h.svc.CreateBill)).Methods(http.MethodPost)
	protected.HandleFunc("/bills/{id:[0-9]+}", updateRecord(h, h.svc.UpdateBill)).Methods(http.MethodPut)
	protected.HandleFunc("/bills/{id:[0-9]+}", deleteRecord(h, h.svc.DeleteBill)).Methods(http.MethodDelete)

	protected.HandleFunc("/incomes", listRecords(h, h.svc.ListIncomes)).Methods(http.MethodGet)
	protected.HandleFunc("/incomes", h.CreateIncome).Methods(http.MethodPost)
	protected.HandleFunc("/incomes/{id:[0-9]+}", updateRecord(h, h.svc.UpdateIncome)).Methods(http.MethodPut)
	protected.HandleFunc("/incomes/{id:[0-9]+}", deleteRecord(h, h.svc.DeleteIncome)).Methods(http.MethodDelete)

	protected.HandleFunc("/investments", listRecords(h, h.svc.ListInvestments)).Methods(http.MethodGet)
	protected.HandleFunc("/investments", createRecord(h, h.svc.CreateInvestment)).Methods(http.MethodPost)
	protected.HandleFunc("/investments/{id:[0-9]+}", updateRecord(h, h.svc.UpdateInvestment)).Methods(http.MethodPut)
	protected.HandleFunc("/investments/{id:[0-9]+}", deleteRecord(h, h.svc.DeleteInvestment)).Methods(http.MethodDelete)

	protected.HandleFunc("/budgets", listRecords(h, h.svc.ListBudgets)).Methods(http.MethodGet)
	protected.HandleFunc("/budgets", createRecord(h, h.svc.CreateBudget)).Methods(http.MethodPost)
	protected.HandleFunc("/budgets/{id:[0-9]+}", updateRecord(h, h.svc.UpdateBudget)).Methods(http.MethodPut)
	protected.HandleFunc("/budgets/{id:[0-9]+}", deleteRecord(h, h.svc.DeleteBudget)).Methods(http.MethodDelete)

	protected.HandleFunc("/dashboard", h.Dashboard).Methods(http.MethodGet)
	protected.HandleFunc("/insights", h.Insights).Methods(http.MethodGet)
	protected.HandleFunc("/insights/metrics", h.InsightMetrics).Methods(http.MethodGet)
	protected.HandleFunc("/insights/sip", h.SIPProjection).Methods(http.MethodGet)
	protected.HandleFunc("/savings-projection", h.SavingsProjection).Methods(http.MethodGet)
	protected.HandleFunc("/net-worth-projection", h.NetWorthProjection).Methods(http.MethodGet)
	protected.HandleFunc("/reference-rate", h.ReferenceRate).Methods(http.MethodGet)
	protected.HandleFunc("/import/csv", h.ImportCSV).Methods(http.MethodPost)
}
