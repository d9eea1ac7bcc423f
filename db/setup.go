package db

import (
	"qr-menu-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the sqlite database at the given path (or DSN).
func Connect(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}

// Migrate auto-migrates every model.
func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&models.User{},
		&models.PasswordReset{},
		&models.Restaurant{},
		&models.Category{},
		&models.Dish{},
		&models.Menu{},
		&models.MenuView{},
		&models.QrScan{},
	)
}
