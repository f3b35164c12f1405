package database

import (
	"errors"

	"github.com/almaspay/backend/internal/model"
	applogger "github.com/almaspay/backend/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Default admin credentials created on first boot. Intended for local and
// staging bootstrap; production deployments change the password immediately.
const (
	DefaultAdminEmail    = "admin@example.com"
	DefaultAdminPassword = "admin123"
)

// SeedAdminUser ensures the default admin account exists. Safe to call on
// every startup.
func SeedAdminUser(db *gorm.DB) error {
	var existing model.User
	err := db.Where("email = ?", DefaultAdminEmail).First(&existing).Error
	if err == nil {
		applogger.GetLogger().Debug("Admin user already exists, skipping seed")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := model.User{
		Email:         DefaultAdminEmail,
		Password:      string(hash),
		FirstName:     "Admin",
		LastName:      "User",
		Role:          "admin",
		IsActive:      true,
		EmailVerified: true,
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	applogger.GetLogger().Info("Admin user seeded", zap.String("email", DefaultAdminEmail))
	return nil
}
