package migrations

import (
	"fmt"

	"github.com/axelse03-gif/reybanpac/models"

	"gorm.io/gorm"
)

func MigrateReferrals(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Referral{}); err != nil {
		return fmt.Errorf("migrate referrals: %w", err)
	}
	return nil
}

func MigrateNews(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.NewsItem{}); err != nil {
		return fmt.Errorf("migrate news: %w", err)
	}
	return nil
}

// MigrateAll runs every migration in order.
func MigrateAll(db *gorm.DB) error {
	for _, migrate := range []func(*gorm.DB) error{MigrateReferrals, MigrateNews} {
		if err := migrate(db); err != nil {
			return err
		}
	}
	return nil
}
