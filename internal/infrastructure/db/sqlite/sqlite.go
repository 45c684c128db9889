// Package sqlite implements the repositories over a gorm-managed
// SQLite database. It owns schema migration and the seed data the
// application cannot run without: the protected default role and the
// first admin user.
package sqlite

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gestorlabs/gestor/internal/core/domain"
)

// Config captures the settings for opening the database file.
type Config struct {
	Path  string
	Debug bool
}

// Connect opens (creating if needed) the SQLite database and runs the
// schema migration.
func Connect(cfg Config) (*gorm.DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sqlite mkdir: %w", err)
		}
	}

	gormLogger := logger.Discard
	if cfg.Debug {
		gormLogger = logger.Default
	}

	dsn := cfg.Path + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("sqlite migrate: %w", err)
	}

	return db, nil
}

func migrate(db *gorm.DB) error {
	models := []any{
		&domain.Role{},
		&domain.User{},
		&domain.Client{},
		&domain.Supplier{},
		&domain.Status{},
		&domain.Project{},
		&domain.Transaction{},
		&domain.Task{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return err
		}
	}
	return nil
}

// Seed guarantees the default role (ordinal 0) and a first admin user
// exist. Idempotent: existing rows are left untouched.
func Seed(db *gorm.DB, adminPassword string) error {
	var defaultRole domain.Role
	err := db.Where("ordinal = ?", domain.DefaultRoleOrdinal).First(&defaultRole).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		now := time.Now().UTC()
		defaultRole = domain.Role{
			UUID:      uuid.New(),
			Name:      "padrão",
			Ordinal:   domain.DefaultRoleOrdinal,
			Admin:     true,
			Project:   true,
			Personal:  true,
			Financial: true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := db.Create(&defaultRole).Error; err != nil {
			return fmt.Errorf("seed default role: %w", err)
		}
	} else if err != nil {
		return err
	}

	var count int64
	if err := db.Model(&domain.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	admin := domain.User{
		UUID:         uuid.New(),
		Name:         "Administrador",
		Email:        "admin@localhost",
		CPF:          "000.000.000-00",
		Username:     "admin",
		PasswordHash: string(hash),
		Active:       true,
		AuthUUID:     defaultRole.UUID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	return nil
}
