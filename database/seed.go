package database

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/korbahq/korba-app/models"
)

// Migrate runs AutoMigrate for every table this service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.MenuItem{},
		&models.Order{},
		&models.SessionRecord{},
	)
}

// SeedMenus upserts the static catalog so the menu endpoints always serve the
// current MenuData, even after the file changes between releases.
func SeedMenus(db *gorm.DB) error {
	for _, item := range models.MenuData {
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&item).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedOrders inserts the fixed dashboard order history if it is not there yet.
func SeedOrders(db *gorm.DB) error {
	for _, order := range models.OrderSeed {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&order).Error; err != nil {
			return err
		}
	}
	return nil
}
