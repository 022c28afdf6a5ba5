package http

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"repair-console/internal/auth"
	"repair-console/internal/handlers"
	"repair-console/internal/middleware"
)

func NewRouter(
	taskHandler *handlers.TaskHandler,
	customerHandler *handlers.CustomerHandler,
	catalogHandler *handlers.CatalogHandler,
	reportHandler *handlers.ReportHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Health and metrics (NO AUTHENTICATION REQUIRED)
	r.HandleFunc("/health", healthHandler.Check).Methods("GET")
	r.Handle("/metrics", promhttp.Handler())

	// Protected API routes - Tasks. Every role sees the task screen; the
	// service scopes the list and gates the actions per role.
	tasksAPI := r.PathPrefix("/api/tasks").Subrouter()
	tasksAPI.Use(authMiddleware.Authenticate)
	tasksAPI.HandleFunc("", taskHandler.List).Methods("GET")
	tasksAPI.HandleFunc("", taskHandler.Create).Methods("POST")
	tasksAPI.HandleFunc("/{title}", taskHandler.Get).Methods("GET")
	tasksAPI.HandleFunc("/{title}", taskHandler.Update).Methods("PUT")
	tasksAPI.HandleFunc("/{title}", taskHandler.Delete).Methods("DELETE")
	tasksAPI.HandleFunc("/{title}/status", taskHandler.ChangeStatus).Methods("PUT")
	tasksAPI.HandleFunc("/{title}/actions/{action}", taskHandler.Action).Methods("POST")
	tasksAPI.HandleFunc("/{title}/notes", taskHandler.ListNotes).Methods("GET")
	tasksAPI.HandleFunc("/{title}/notes", taskHandler.AddNote).Methods("POST")
	tasksAPI.HandleFunc("/{title}/payments", taskHandler.ListPayments).Methods("GET")
	tasksAPI.HandleFunc("/{title}/payments", taskHandler.RecordPayment).Methods("POST")

	// Protected API routes - Customers (manager and front desk)
	customersAPI := r.PathPrefix("/api/customers").Subrouter()
	customersAPI.Use(authMiddleware.RequireRole(auth.RoleManager, auth.RoleFrontDesk))
	customersAPI.HandleFunc("", customerHandler.List).Methods("GET")
	customersAPI.HandleFunc("", customerHandler.Create).Methods("POST")
	customersAPI.HandleFunc("/{id}", customerHandler.Get).Methods("GET")
	customersAPI.HandleFunc("/{id}", customerHandler.Update).Methods("PUT")
	customersAPI.HandleFunc("/{id}", customerHandler.Delete).Methods("DELETE")

	// Protected API routes - Catalogs (form selects, all authenticated users)
	catalogAPI := r.PathPrefix("/api/catalog").Subrouter()
	catalogAPI.Use(authMiddleware.Authenticate)
	catalogAPI.HandleFunc("/brands", catalogHandler.Brands).Methods("GET")
	catalogAPI.HandleFunc("/technicians", catalogHandler.Technicians).Methods("GET")
	catalogAPI.HandleFunc("/locations", catalogHandler.Locations).Methods("GET")
	catalogAPI.HandleFunc("/payment-methods", catalogHandler.PaymentMethods).Methods("GET")

	// Protected API routes - Reports (manager and accountant)
	reportsAPI := r.PathPrefix("/api/reports").Subrouter()
	reportsAPI.Use(authMiddleware.RequireRole(auth.RoleManager, auth.RoleAccountant))
	reportsAPI.HandleFunc("", reportHandler.ListKinds).Methods("GET")
	reportsAPI.HandleFunc("/export/zip", reportHandler.GetBundle).Methods("GET")
	reportsAPI.HandleFunc("/{kind}", reportHandler.Get).Methods("GET")
	reportsAPI.HandleFunc("/{kind}/pdf", reportHandler.GetPDF).Methods("GET")
	reportsAPI.HandleFunc("/{kind}/csv", reportHandler.GetCSV).Methods("GET")

	return r
}
