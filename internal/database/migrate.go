package database

import (
	"fmt"

	catalogRepo "github.com/HackerKing5128/voicecart/internal/repository/catalog"
	fraudRepo "github.com/HackerKing5128/voicecart/internal/repository/fraudcase"
	orderRepo "github.com/HackerKing5128/voicecart/internal/repository/order"
	"gorm.io/gorm"
)

// MigrateDB creates or updates the schema for every persisted entity.
func MigrateDB(db *gorm.DB) error {
	err := db.AutoMigrate(
		&catalogRepo.ItemEntity{},
		&orderRepo.OrderEntity{},
		&orderRepo.OrderLineEntity{},
		&fraudRepo.CaseEntity{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
