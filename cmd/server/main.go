package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"estate-backend/internal/auth"
	"estate-backend/internal/cache"
	"estate-backend/internal/config"
	"estate-backend/internal/database"
	"estate-backend/internal/db"
	"estate-backend/internal/handlers"
	"estate-backend/internal/health"
	h "estate-backend/internal/http"
	"estate-backend/internal/jobs"
	"estate-backend/internal/middleware"
	"estate-backend/internal/monitoring"
	"estate-backend/internal/repositories"
	"estate-backend/internal/scheduler"
	"estate-backend/internal/services"
)

func main() {
	mode := flag.String("mode", "staff", "Server mode: staff or tenant")
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	cfg := config.Load()

	if *port != 0 {
		cfg.Server.Port = *port
	} else if *mode == "tenant" {
		// Staff mode uses the config port (8080)
		cfg.Server.Port = 8081
	}

	pool := db.Connect(cfg)
	defer pool.Close()

	// Redis is optional - login falls back to bcrypt-only and listings go
	// uncached when it's missing
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable: %v", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	log.Println("Running database migrations...")
	migrator := database.NewMigrator(pool)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Ops endpoint on its own port
	go monitoring.NewMonitoringServer(pool, 9090).Start()

	jwtManager := auth.NewJWTManager(cfg)
	healthChecker := health.NewHealthChecker(pool)

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	tenantRepo := repositories.NewTenantRepository(pool)
	propertyRepo := repositories.NewPropertyRepository(pool)
	rentalRepo := repositories.NewRentalRepository(pool)
	paymentRepo := repositories.NewPaymentRepository(pool)
	commissionRepo := repositories.NewCommissionRepository(pool)
	renewalRepo := repositories.NewRenewalRequestRepository(pool)
	ticketRepo := repositories.NewMaintenanceTicketRepository(pool)
	leadRepo := repositories.NewLeadRepository(pool)
	documentRepo := repositories.NewDocumentRepository(pool)
	onlineTransactionRepo := repositories.NewOnlineTransactionRepository(pool)
	systemSettingRepo := repositories.NewSystemSettingRepository(pool)
	adminActionLogRepo := repositories.NewAdminActionLogRepository(pool)

	// Services shared by both modes
	rentalService := services.NewRentalService(rentalRepo, propertyRepo, tenantRepo)
	paymentService := services.NewPaymentService(paymentRepo, rentalRepo)
	renewalService := services.NewRenewalService(renewalRepo, rentalRepo, systemSettingRepo)
	reportService := services.NewReportService(tenantRepo, rentalService, paymentRepo)
	razorpayService := services.NewRazorpayService(
		cfg.Razorpay.KeyID,
		cfg.Razorpay.KeySecret,
		cfg.Razorpay.WebhookSecret,
		onlineTransactionRepo,
		paymentRepo,
		systemSettingRepo,
	)

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)
	corsMiddleware := middleware.NewCORS(cfg)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	var handler http.Handler

	if *mode == "tenant" {
		log.Println("Starting in TENANT PORTAL mode")

		tenantPortalService := services.NewTenantPortalService(
			tenantRepo,
			rentalService,
			paymentRepo,
			ticketRepo,
			jwtManager,
		)
		tenantPortalHandler := handlers.NewTenantPortalHandler(
			tenantPortalService,
			renewalService,
			razorpayService,
			reportService,
		)
		webhookHandler := handlers.NewRazorpayWebhookHandler(razorpayService)

		router := h.NewTenantRouter(tenantPortalHandler, webhookHandler, healthHandler, authMiddleware)
		handler = middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	} else {
		log.Println("Starting in STAFF mode")

		userService := services.NewUserService(userRepo, jwtManager)
		propertyService := services.NewPropertyService(propertyRepo)
		commissionService := services.NewCommissionService(commissionRepo, propertyRepo, userRepo)
		totpService := services.NewTOTPService(userRepo)

		r2Config := config.LoadR2()
		if !r2Config.Enabled() {
			log.Println("[Storage] R2 not configured, document uploads disabled")
		}
		storageService := services.NewStorageService(&r2Config, documentRepo)

		authHandler := handlers.NewAuthHandler(userService)
		userHandler := handlers.NewUserHandler(userService, adminActionLogRepo)
		tenantHandler := handlers.NewTenantHandler(tenantRepo)
		propertyHandler := handlers.NewPropertyHandler(propertyService, rentalService)
		rentalHandler := handlers.NewRentalHandler(rentalService, adminActionLogRepo)
		paymentHandler := handlers.NewPaymentHandler(paymentService)
		commissionHandler := handlers.NewCommissionHandler(commissionService)
		renewalHandler := handlers.NewRenewalHandler(renewalService)
		maintenanceHandler := handlers.NewMaintenanceHandler(ticketRepo)
		leadHandler := handlers.NewLeadHandler(leadRepo)
		documentHandler := handlers.NewDocumentHandler(storageService)
		reportHandler := handlers.NewReportHandler(reportService)
		totpHandler := handlers.NewTOTPHandler(totpService, userService, jwtManager)
		systemSettingHandler := handlers.NewSystemSettingHandler(systemSettingRepo, adminActionLogRepo)
		adminActionLogHandler := handlers.NewAdminActionLogHandler(adminActionLogRepo)

		router := h.NewRouter(
			authHandler,
			userHandler,
			tenantHandler,
			propertyHandler,
			rentalHandler,
			paymentHandler,
			commissionHandler,
			renewalHandler,
			maintenanceHandler,
			leadHandler,
			documentHandler,
			reportHandler,
			totpHandler,
			systemSettingHandler,
			adminActionLogHandler,
			healthHandler,
			authMiddleware,
		)
		handler = middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

		// Nightly jobs only run on the staff instance so a two-mode deployment
		// doesn't double-fire them
		overdueJob := jobs.NewMarkOverduePaymentsJob(paymentService)
		renewalJob := jobs.NewRenewalWindowScanJob(rentalRepo, systemSettingRepo)
		sched := scheduler.New(cfg, overdueJob, renewalJob)
		if err := sched.Start(); err != nil {
			log.Fatalf("Failed to start scheduler: %v", err)
		}
		defer sched.Stop()
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s (mode: %s)", addr, *mode)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
