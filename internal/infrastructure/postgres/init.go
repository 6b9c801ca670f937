package postgres

import (
	"log"

	"github.com/kartghar/payment-order-service/internal/config"
	"github.com/kartghar/payment-order-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.OrderConfig) *gorm.DB {
	dsn := cfg.OrderDB.Dsn
	// TranslateError makes the driver report unique violations as
	// gorm.ErrDuplicatedKey, which the repository maps to the domain error.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.OrderModel{}, &models.WebhookAnomalyModel{})

	return db
}
