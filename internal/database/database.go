package database

import (
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"villagemart/internal/domain/admin"
	"villagemart/internal/domain/analytics"
	"villagemart/internal/domain/customer"
	"villagemart/internal/domain/notification"
	"villagemart/internal/domain/product"
	"villagemart/internal/domain/shopkeeper"
	"villagemart/internal/pkg/logger"
)

func Connect(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		logger.Log.Info().Msg("connecting to PostgreSQL")
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	logger.Log.Info().Str("dsn", dsn).Msg("using SQLite")

	// DriverName "sqlite" routes through modernc.org/sqlite, keeping
	// local development and CI cgo-free.
	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		cfg,
	)
}

// Migrate creates or updates all marketplace tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&customer.Customer{},
		&shopkeeper.Shopkeeper{},
		&admin.Admin{},
		&product.Product{},
		&notification.Notification{},
		&notification.ProductSubscription{},
		&analytics.Order{},
		&analytics.ProductView{},
	)
}
