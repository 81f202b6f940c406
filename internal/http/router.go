package http

import (
	"net/http"

	"estate-backend/internal/handlers"
	"estate-backend/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the staff API router (agents and admins)
func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	tenantHandler *handlers.TenantHandler,
	propertyHandler *handlers.PropertyHandler,
	rentalHandler *handlers.RentalHandler,
	paymentHandler *handlers.PaymentHandler,
	commissionHandler *handlers.CommissionHandler,
	renewalHandler *handlers.RenewalHandler,
	maintenanceHandler *handlers.MaintenanceHandler,
	leadHandler *handlers.LeadHandler,
	documentHandler *handlers.DocumentHandler,
	reportHandler *handlers.ReportHandler,
	totpHandler *handlers.TOTPHandler,
	systemSettingHandler *handlers.SystemSettingHandler,
	adminActionLogHandler *handlers.AdminActionLogHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public API routes - Authentication
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/auth/2fa/verify", totpHandler.VerifyLogin).Methods("POST")

	// Public listings - no auth, served from cache when possible
	r.HandleFunc("/api/properties/available", propertyHandler.ListAvailable).Methods("GET")

	// Current user + 2FA management
	authAPI := r.PathPrefix("/api/auth").Subrouter()
	authAPI.Use(authMiddleware.Authenticate)
	authAPI.HandleFunc("/me", authHandler.Me).Methods("GET")
	authAPI.HandleFunc("/logout", authHandler.Logout).Methods("POST")
	authAPI.HandleFunc("/2fa/setup", totpHandler.Setup).Methods("POST")
	authAPI.HandleFunc("/2fa/enable", totpHandler.Enable).Methods("POST")
	authAPI.HandleFunc("/2fa/disable", totpHandler.Disable).Methods("POST")

	// Users (admin only)
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.Use(authMiddleware.Authenticate)
	usersAPI.HandleFunc("", authMiddleware.RequireRole("admin")(http.HandlerFunc(userHandler.ListUsers)).ServeHTTP).Methods("GET")
	usersAPI.HandleFunc("", authMiddleware.RequireRole("admin")(http.HandlerFunc(userHandler.CreateUser)).ServeHTTP).Methods("POST")
	usersAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(userHandler.GetUser)).ServeHTTP).Methods("GET")
	usersAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(userHandler.UpdateUser)).ServeHTTP).Methods("PUT")
	usersAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(userHandler.DeleteUser)).ServeHTTP).Methods("DELETE")
	usersAPI.HandleFunc("/{id}/active", authMiddleware.RequireRole("admin")(http.HandlerFunc(userHandler.SetActive)).ServeHTTP).Methods("PATCH")

	// Tenants
	tenantsAPI := r.PathPrefix("/api/tenants").Subrouter()
	tenantsAPI.Use(authMiddleware.Authenticate)
	tenantsAPI.HandleFunc("", tenantHandler.ListTenants).Methods("GET")
	tenantsAPI.HandleFunc("", tenantHandler.CreateTenant).Methods("POST")
	tenantsAPI.HandleFunc("/{id}", tenantHandler.GetTenant).Methods("GET")
	tenantsAPI.HandleFunc("/{id}", tenantHandler.UpdateTenant).Methods("PUT")
	tenantsAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(tenantHandler.DeleteTenant)).ServeHTTP).Methods("DELETE")
	tenantsAPI.HandleFunc("/{tenant_id}/statement", reportHandler.TenantStatement).Methods("GET")

	// Properties
	propertiesAPI := r.PathPrefix("/api/properties").Subrouter()
	propertiesAPI.Use(authMiddleware.Authenticate)
	propertiesAPI.HandleFunc("", propertyHandler.ListProperties).Methods("GET")
	propertiesAPI.HandleFunc("", propertyHandler.CreateProperty).Methods("POST")
	propertiesAPI.HandleFunc("/{id}", propertyHandler.GetProperty).Methods("GET")
	propertiesAPI.HandleFunc("/{id}", propertyHandler.UpdateProperty).Methods("PUT")
	propertiesAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(propertyHandler.DeleteProperty)).ServeHTTP).Methods("DELETE")
	propertiesAPI.HandleFunc("/{id}/rentals", propertyHandler.GetPropertyRentals).Methods("GET")
	propertiesAPI.HandleFunc("/{id}/status", propertyHandler.SetStatus).Methods("PATCH")

	// Rentals
	rentalsAPI := r.PathPrefix("/api/rentals").Subrouter()
	rentalsAPI.Use(authMiddleware.Authenticate)
	rentalsAPI.HandleFunc("", rentalHandler.ListRentals).Methods("GET")
	rentalsAPI.HandleFunc("", rentalHandler.CreateRental).Methods("POST")
	rentalsAPI.HandleFunc("/{id}", rentalHandler.GetRental).Methods("GET")
	rentalsAPI.HandleFunc("/{id}", rentalHandler.UpdateRental).Methods("PUT")
	rentalsAPI.HandleFunc("/{id}/status", authMiddleware.RequireRole("admin")(http.HandlerFunc(rentalHandler.OverrideStatus)).ServeHTTP).Methods("PATCH")
	rentalsAPI.HandleFunc("/{rental_id}/schedule-monthly", paymentHandler.ScheduleMonthly).Methods("POST")

	// Payments
	paymentsAPI := r.PathPrefix("/api/payments").Subrouter()
	paymentsAPI.Use(authMiddleware.Authenticate)
	paymentsAPI.HandleFunc("", paymentHandler.ListPayments).Methods("GET")
	paymentsAPI.HandleFunc("", paymentHandler.SchedulePayment).Methods("POST")
	paymentsAPI.HandleFunc("/export", reportHandler.ExportPayments).Methods("GET")
	paymentsAPI.HandleFunc("/{id}", paymentHandler.GetPayment).Methods("GET")
	paymentsAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(paymentHandler.DeletePayment)).ServeHTTP).Methods("DELETE")
	paymentsAPI.HandleFunc("/{id}/record", paymentHandler.RecordPayment).Methods("POST")
	paymentsAPI.HandleFunc("/{id}/receipt", reportHandler.PaymentReceipt).Methods("GET")

	// Commissions
	commissionsAPI := r.PathPrefix("/api/commissions").Subrouter()
	commissionsAPI.Use(authMiddleware.Authenticate)
	commissionsAPI.HandleFunc("", commissionHandler.ListCommissions).Methods("GET")
	commissionsAPI.HandleFunc("", authMiddleware.RequireRole("admin")(http.HandlerFunc(commissionHandler.CreateCommission)).ServeHTTP).Methods("POST")
	commissionsAPI.HandleFunc("/earnings/{agent_id}", commissionHandler.GetEarnings).Methods("GET")
	commissionsAPI.HandleFunc("/{id}", commissionHandler.GetCommission).Methods("GET")
	commissionsAPI.HandleFunc("/{id}/paid", authMiddleware.RequireRole("admin")(http.HandlerFunc(commissionHandler.MarkPaid)).ServeHTTP).Methods("PATCH")

	// Renewal requests (staff side)
	renewalsAPI := r.PathPrefix("/api/renewal-requests").Subrouter()
	renewalsAPI.Use(authMiddleware.Authenticate)
	renewalsAPI.HandleFunc("", renewalHandler.ListRequests).Methods("GET")
	renewalsAPI.HandleFunc("/{id}/approve", renewalHandler.Approve).Methods("POST")
	renewalsAPI.HandleFunc("/{id}/reject", renewalHandler.Reject).Methods("POST")

	// Maintenance tickets
	ticketsAPI := r.PathPrefix("/api/tickets").Subrouter()
	ticketsAPI.Use(authMiddleware.Authenticate)
	ticketsAPI.HandleFunc("", maintenanceHandler.ListTickets).Methods("GET")
	ticketsAPI.HandleFunc("", maintenanceHandler.CreateTicket).Methods("POST")
	ticketsAPI.HandleFunc("/{id}", maintenanceHandler.GetTicket).Methods("GET")
	ticketsAPI.HandleFunc("/{id}/status", maintenanceHandler.UpdateStatus).Methods("PATCH")

	// Leads
	leadsAPI := r.PathPrefix("/api/leads").Subrouter()
	leadsAPI.Use(authMiddleware.Authenticate)
	leadsAPI.HandleFunc("", leadHandler.ListLeads).Methods("GET")
	leadsAPI.HandleFunc("", leadHandler.CreateLead).Methods("POST")
	leadsAPI.HandleFunc("/{id}", leadHandler.GetLead).Methods("GET")
	leadsAPI.HandleFunc("/{id}", leadHandler.UpdateLead).Methods("PUT")
	leadsAPI.HandleFunc("/{id}", leadHandler.DeleteLead).Methods("DELETE")
	leadsAPI.HandleFunc("/{id}/assign", leadHandler.AssignLead).Methods("POST")

	// Documents
	documentsAPI := r.PathPrefix("/api/documents").Subrouter()
	documentsAPI.Use(authMiddleware.Authenticate)
	documentsAPI.HandleFunc("", documentHandler.Upload).Methods("POST")
	documentsAPI.HandleFunc("/{entity_type}/{entity_id}", documentHandler.ListByEntity).Methods("GET")
	documentsAPI.HandleFunc("/{id}", documentHandler.Download).Methods("GET")
	documentsAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(documentHandler.Delete)).ServeHTTP).Methods("DELETE")

	// System settings (admin only)
	settingsAPI := r.PathPrefix("/api/settings").Subrouter()
	settingsAPI.Use(authMiddleware.Authenticate)
	settingsAPI.HandleFunc("", authMiddleware.RequireRole("admin")(http.HandlerFunc(systemSettingHandler.ListSettings)).ServeHTTP).Methods("GET")
	settingsAPI.HandleFunc("/{key}", authMiddleware.RequireRole("admin")(http.HandlerFunc(systemSettingHandler.GetSetting)).ServeHTTP).Methods("GET")
	settingsAPI.HandleFunc("/{key}", authMiddleware.RequireRole("admin")(http.HandlerFunc(systemSettingHandler.UpdateSetting)).ServeHTTP).Methods("PUT")

	// Admin action logs (admin only)
	adminLogsAPI := r.PathPrefix("/api/admin-action-logs").Subrouter()
	adminLogsAPI.Use(authMiddleware.Authenticate)
	adminLogsAPI.HandleFunc("", authMiddleware.RequireRole("admin")(http.HandlerFunc(adminActionLogHandler.ListLogs)).ServeHTTP).Methods("GET")

	// Health endpoints (no auth - for probes)
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.HandleFunc("/health/detailed", healthHandler.DetailedHealth).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// NewTenantRouter builds the tenant portal router (port 8081)
func NewTenantRouter(
	tenantPortalHandler *handlers.TenantPortalHandler,
	webhookHandler *handlers.RazorpayWebhookHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public - portal login and session teardown
	r.HandleFunc("/auth/login", tenantPortalHandler.Login).Methods("POST")
	r.HandleFunc("/auth/logout", tenantPortalHandler.Logout).Methods("POST")
	r.Handle("/auth/validate-session", authMiddleware.AuthenticateTenant(http.HandlerFunc(tenantPortalHandler.ValidateSession))).Methods("GET")

	// Public - gateway callbacks (signed, not token-authenticated)
	r.HandleFunc("/webhooks/razorpay", webhookHandler.HandleWebhook).Methods("POST")

	// Protected - everything scoped to the tenant in the token
	portalAPI := r.PathPrefix("/api").Subrouter()
	portalAPI.Use(authMiddleware.AuthenticateTenant)
	portalAPI.HandleFunc("/profile", tenantPortalHandler.Profile).Methods("GET")
	portalAPI.HandleFunc("/profile/password", tenantPortalHandler.ChangePassword).Methods("PUT")
	portalAPI.HandleFunc("/rentals", tenantPortalHandler.MyRentals).Methods("GET")
	portalAPI.HandleFunc("/rentals/{rental_id}/renewal-eligibility", tenantPortalHandler.RenewalEligibility).Methods("GET")
	portalAPI.HandleFunc("/payments", tenantPortalHandler.MyPayments).Methods("GET")
	portalAPI.HandleFunc("/payments/{id}/receipt", tenantPortalHandler.MyReceipt).Methods("GET")
	portalAPI.HandleFunc("/renewal-requests", tenantPortalHandler.MyRenewalRequests).Methods("GET")
	portalAPI.HandleFunc("/renewal-requests", tenantPortalHandler.RequestRenewal).Methods("POST")
	portalAPI.HandleFunc("/renewal-requests/{id}", tenantPortalHandler.CancelRenewal).Methods("DELETE")
	portalAPI.HandleFunc("/tickets", tenantPortalHandler.MyTickets).Methods("GET")
	portalAPI.HandleFunc("/tickets", tenantPortalHandler.OpenTicket).Methods("POST")
	portalAPI.HandleFunc("/online-payments/status", tenantPortalHandler.OnlinePaymentStatus).Methods("GET")
	portalAPI.HandleFunc("/online-payments/order", tenantPortalHandler.CreatePaymentOrder).Methods("POST")
	portalAPI.HandleFunc("/online-payments/verify", tenantPortalHandler.VerifyPayment).Methods("POST")
	portalAPI.HandleFunc("/online-payments/history", tenantPortalHandler.PaymentHistory).Methods("GET")

	// Health endpoints (no auth - for probes)
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.HandleFunc("/health/detailed", healthHandler.DetailedHealth).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
