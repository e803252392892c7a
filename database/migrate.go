package database

import (
	"linkbio_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate applies the schema. Dependencies order the list: links and
// subscriptions reference users, click events reference links.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Link{},
		&models.ClickEvent{},
		&models.CustomTheme{},
		&models.Plan{},
		&models.PlanFeature{},
		&models.Subscription{},
		&models.Payment{},
	)
}
