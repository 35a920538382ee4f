package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vendora/marketplace-service/internal/config"
	"github.com/vendora/marketplace-service/internal/delivery/httpapi"
	"github.com/vendora/marketplace-service/internal/domain"
	"github.com/vendora/marketplace-service/internal/infrastructure/kafka"
	"github.com/vendora/marketplace-service/internal/infrastructure/logger"
	"github.com/vendora/marketplace-service/internal/infrastructure/metrics"
	"github.com/vendora/marketplace-service/internal/infrastructure/migrate"
	"github.com/vendora/marketplace-service/internal/infrastructure/postgres"
	"github.com/vendora/marketplace-service/internal/infrastructure/postgres/repository"
	"github.com/vendora/marketplace-service/internal/infrastructure/redisx"
	"github.com/vendora/marketplace-service/internal/usecase"
	orderusecase "github.com/vendora/marketplace-service/internal/usecase/order"
	payoutusecase "github.com/vendora/marketplace-service/internal/usecase/payout"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	setupLogger(cfg.LogConfig)

	// Init database
	db := postgres.MustInitDB(cfg)
	if cfg.Migrations.Path != "" {
		if err := migrate.RunMigrations(db, cfg.Migrations.Path); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Kafka publisher: SASL config when credentials are set, plaintext otherwise
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub, err := newPublisher(cfg, brokers)
	if err != nil {
		log.Fatalf("failed to init kafka publisher: %v", err)
	}

	// Tenant cache
	tenantCache := redisx.NewTenantCache(
		cfg.RedisCache.Addr,
		cfg.RedisCache.Password,
		cfg.RedisCache.DB,
		time.Duration(cfg.RedisCache.TTLSeconds)*time.Second,
	)

	m := metrics.NewMarketplaceMetrics()

	// Init repos
	tenantRepo := repository.NewDefaultTenantRepository(db)
	userRepo := repository.NewDefaultUserRepository(db)
	profileRepo := repository.NewDefaultVendorProfileRepository(db)
	productRepo := repository.NewDefaultProductRepository(db)
	orderRepo := repository.NewDefaultOrderRepository(db)
	payoutRepo := repository.NewDefaultPayoutRepository(db)
	auditLogger := logger.NewPGModerationAuditLogger(db)

	// Init usecases
	tenantUC := usecase.NewDefaultTenantUsecase(tenantRepo, tenantCache)
	vendorUC := usecase.NewDefaultVendorUsecase(profileRepo, orderRepo, productRepo)
	productUC := usecase.NewDefaultProductUsecase(productRepo, profileRepo, userRepo, tenantUC, m)
	moderationUC := usecase.NewDefaultModerationUsecase(profileRepo, productRepo, auditLogger, pub, m)
	orderUC := orderusecase.NewDefaultOrderUsecase(orderRepo, productRepo, pub, m)
	payoutUC := payoutusecase.NewDefaultPayoutUsecase(orderRepo, payoutRepo, pub, m)

	router := httpapi.NewRouter(httpapi.Handlers{
		Tenant:  httpapi.NewTenantHandler(tenantUC),
		Vendor:  httpapi.NewVendorHandler(vendorUC),
		Product: httpapi.NewProductHandler(productUC),
		Order:   httpapi.NewOrderHandler(orderUC),
		Payout:  httpapi.NewPayoutHandler(payoutUC),
		Admin:   httpapi.NewAdminHandler(moderationUC),
	})

	// Metrics endpoint on its own port
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.MetricsPort)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Fatalf("metrics server failed: %v", err)
		}
	}()

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}

func newPublisher(cfg *config.MarketplaceConfig, brokers []string) (domain.PublisherPort, error) {
	if cfg.KafkaService.Username == "" {
		return kafka.NewDefaultKafkaPublisher(brokers), nil
	}
	return kafka.NewKafkaPublisher(kafka.KafkaConfig{
		Brokers:    brokers,
		Username:   cfg.KafkaService.Username,
		Password:   cfg.KafkaService.Password,
		Mechanism:  cfg.KafkaService.Mechanism,
		TLSEnabled: cfg.KafkaService.TLSEnabled,
	})
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}
