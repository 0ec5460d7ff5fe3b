// database.go - Handles database connection and setup

package database

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"mini-crm/config"
	"mini-crm/models"
)

// Connect opens the database, runs migrations and seeds the admin user if
// configured. The returned handle is passed to the handlers explicitly so
// tests can run against their own database.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := open(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.User{}, &models.Customer{}, &models.Lead{}); err != nil {
		return nil, err
	}

	if err := seedAdmin(db, cfg); err != nil {
		return nil, err
	}
	return db, nil
}

// open picks the gorm driver from the DSN: postgres connection strings go to
// the postgres driver, anything else is treated as a sqlite file path.
func open(dsn string) (*gorm.DB, error) {
	// TranslateError turns driver-specific unique violations into
	// gorm.ErrDuplicatedKey so handlers can map them to client errors.
	gormCfg := &gorm.Config{TranslateError: true}
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "host=") {
		return gorm.Open(postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), gormCfg)
	}
	return gorm.Open(sqlite.Open(dsn), gormCfg)
}

// seedAdmin creates the admin user when explicitly configured and none
// exists yet. Customers created outside the API keep a nil owner, so the
// seed path is the only source of unowned records.
func seedAdmin(db *gorm.DB, cfg *config.Config) error {
	if !cfg.CreateAdmin || cfg.AdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:     cfg.AdminName,
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Role:     "admin",
	}
	return db.Create(&admin).Error
}
