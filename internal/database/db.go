package database

import (
	"fmt"
	"time"

	"shiptrack/internal/models"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the configured database, runs migrations and returns the
// handle. The handle is passed down explicitly; nothing here keeps a global.
func Open(driver, dsn string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.WithFields(log.Fields{"driver": driver, "attempt": i}).
			Info("connecting to database")

		switch driver {
		case "sqlite":
			db, err = gorm.Open(sqlite.Open(dsn), gormCfg)
		case "postgres":
			db, err = gorm.Open(postgres.Open(dsn), gormCfg)
		default:
			return nil, fmt.Errorf("unknown db driver %q", driver)
		}
		if err == nil {
			break
		}

		log.WithError(err).Warn("database connection failed")
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connect after %d attempts: %w", maxAttempts, err)
	}

	if driver == "sqlite" {
		// sqlite is single-writer, and a pooled second connection to an
		// in-memory dsn would see a different database entirely
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Record{},
		&models.AuditEntry{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// SeedUser provisions a credential if no user with that username exists yet.
// The explicit existence check makes re-running the seed a no-op rather than
// relying on the unique constraint to reject the duplicate.
func SeedUser(db *gorm.DB, username, password string, role models.UserRole) error {
	var count int64
	if err := db.Model(&models.User{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return fmt.Errorf("check seed user %s: %w", username, err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password for %s: %w", username, err)
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("create seed user %s: %w", username, err)
	}

	log.WithFields(log.Fields{"username": username, "role": role}).
		Info("created seed user")
	return nil
}
