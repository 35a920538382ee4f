package postgres

import (
	"log"

	"github.com/vendora/marketplace-service/internal/config"
	"github.com/vendora/marketplace-service/internal/infrastructure/logger"
	"github.com/vendora/marketplace-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.MarketplaceConfig) *gorm.DB {
	dsn := cfg.MarketplaceDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.TenantModel{},
		&models.TenantDomainModel{},
		&models.UserModel{},
		&models.VendorProfileModel{},
		&models.ProductModel{},
		&models.OrderModel{},
		&models.PayoutModel{},
		&logger.ModerationEvent{},
	)

	return db
}
