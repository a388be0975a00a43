package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sefazor/qrtrack-backend/internal/models"
)

// GormConfig is the GORM configuration shared by every connection.
// TranslateError turns driver unique violations into gorm.ErrDuplicatedKey,
// which the repositories map onto their domain errors.
func GormConfig() *gorm.Config {
	return &gorm.Config{TranslateError: true}
}

// NewDatabase opens the Postgres connection described by databaseURL and runs
// the schema migration for the app's models.
func NewDatabase(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), GormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.QrCode{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}
