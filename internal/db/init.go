package db

import (
	"fmt"
	"time"

	"github.com/HackerKing5128/voicecart/internal/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the configured database. The sqlite driver is the
// default for single-binary demo deployments; mysql is available for
// shared environments.
func InitDB(cfg config.Settings) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DB.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.DB.DSN())
	case "sqlite", "":
		dialector = sqlite.Open(cfg.DB.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.DB.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	poolSize := cfg.DB.PoolSize
	if poolSize <= 0 {
		poolSize = 10
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(poolSize)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
