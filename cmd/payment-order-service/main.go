package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/kartghar/payment-order-service/internal/config"
	"github.com/kartghar/payment-order-service/internal/delivery/http/handlers"
	"github.com/kartghar/payment-order-service/internal/delivery/http/router"
	"github.com/kartghar/payment-order-service/internal/infrastructure/cashfree"
	"github.com/kartghar/payment-order-service/internal/infrastructure/kafka"
	"github.com/kartghar/payment-order-service/internal/infrastructure/logger"
	"github.com/kartghar/payment-order-service/internal/infrastructure/metrics"
	"github.com/kartghar/payment-order-service/internal/infrastructure/migrate"
	"github.com/kartghar/payment-order-service/internal/infrastructure/postgres"
	"github.com/kartghar/payment-order-service/internal/infrastructure/postgres/repository"
	usecase "github.com/kartghar/payment-order-service/internal/usecase/order"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	logger.Setup(cfg.LogConfig)

	// Init database
	db := postgres.MustInitDB(cfg)
	if cfg.OrderDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.OrderDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init repositories
	orderRepo := repository.NewDefaultOrderRepository(db)
	anomalyRepo := repository.NewDefaultWebhookAnomalyRepository(db)

	// Init kafka publisher
	brokers := []string{fmt.Sprintf("%s:%s", cfg.Kafka.Host, cfg.Kafka.Port)}
	orderPublisher := kafka.NewKafkaPublisher(brokers, cfg.Kafka.Topic)
	defer orderPublisher.Close()

	// Init gateway client; credentials travel through config, never globals
	gateway := cashfree.NewClient(cashfree.Config{
		BaseURL:      cfg.Cashfree.BaseURL,
		ClientID:     cfg.Cashfree.ClientID,
		ClientSecret: cfg.Cashfree.ClientSecret,
		APIVersion:   cfg.Cashfree.APIVersion,
		Timeout:      cfg.Cashfree.Timeout,
		ClientURL:    cfg.Cashfree.ClientURL,
		NotifyURL:    cfg.Cashfree.NotifyURL,
	})

	orderMetrics := metrics.NewOrderMetrics()

	// Init order usecase
	uc := usecase.NewDefaultOrderUsecase(
		orderRepo,
		gateway,
		anomalyRepo,
		orderPublisher,
		orderMetrics,
		usecase.PaymentPolicy{
			Currency:             cfg.Payments.Currency,
			RequireCustomerEmail: cfg.Payments.RequireCustomerEmail,
		},
	)

	orderHandler := handlers.NewOrderHandler(uc)
	webhookHandler := handlers.NewWebhookHandler(uc)
	anomalyHandler := handlers.NewAnomalyHandler(anomalyRepo)

	r := router.NewRouter(orderHandler, webhookHandler, anomalyHandler)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("payment-order-service started on %s\n", addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
