package repository

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate creates or updates every relational table. It is run on start
// in dev mode and by the seed CLI.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	// The composite unique index does not cover NULL specialty ids.
	err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_pricing_rule_trade_wide
		ON pricing_rules (region_id, trade_id, unit) WHERE specialty_id IS NULL`).Error
	if err != nil {
		return fmt.Errorf("trade-wide rule index: %w", err)
	}
	return nil
}
