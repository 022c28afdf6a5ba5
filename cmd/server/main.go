package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"repair-console/internal/apiclient"
	"repair-console/internal/archive"
	"repair-console/internal/auth"
	"repair-console/internal/cache"
	"repair-console/internal/config"
	"repair-console/internal/handlers"
	"repair-console/internal/health"
	h "repair-console/internal/http"
	"repair-console/internal/middleware"
	"repair-console/internal/monitoring"
	"repair-console/internal/services"
)

func main() {
	port := flag.Int("port", 0, "override the listen port")
	flag.Parse()

	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	// Redis is optional; the console works without the fetch cache
	if err := cache.Init(); err != nil {
		log.Printf("[Cache] Redis unavailable, running without cache: %v", err)
	}

	// Bearer token for upstream API calls, persisted across restarts
	tokens := auth.NewTokenStore(cfg.API.TokenFile)
	client := apiclient.New(cfg, tokens)

	// Verify upstream connectivity at startup but keep going if it is down;
	// the health endpoint reports the real status
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := client.Ping(ctx); err != nil {
		log.Printf("[Startup] Repair shop API unreachable at %s: %v", cfg.API.BaseURL, err)
	} else {
		log.Printf("[Startup] Connected to repair shop API at %s", cfg.API.BaseURL)
	}
	cancel()

	uploader, err := archive.New(context.Background(), cfg)
	if err != nil {
		log.Printf("[Archive] Object storage disabled: %v", err)
	}

	jwtManager := auth.NewJWTManager(cfg)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager)
	corsMiddleware := middleware.NewCORS(cfg)

	// Services
	taskService := services.NewTaskService(client)
	customerService := services.NewCustomerService(client)
	reportService := services.NewReportService(client, uploader)
	healthChecker := health.NewHealthChecker(client)

	// Handlers
	taskHandler := handlers.NewTaskHandler(taskService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	catalogHandler := handlers.NewCatalogHandler(client)
	reportHandler := handlers.NewReportHandler(reportService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	router := h.NewRouter(
		taskHandler,
		customerHandler,
		catalogHandler,
		reportHandler,
		healthHandler,
		authMiddleware,
	)

	// Monitoring dashboard API on its own port
	monitoringServer := monitoring.NewMonitoringServer(client, cfg.Monitoring.Port)
	go monitoringServer.Start()

	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("[Startup] Console API running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
